// Package dashboard contains the sales dashboard use cases and the temporal
// aggregation helpers they are built on.
package dashboard

import (
	"strings"
	"time"

	"github.com/sales-dashboard/backend/internal/domain/entity"
)

// RelativeDayClassifier labels M/D/Y date strings relative to a reference day.
//
// The dashboard historically compared the "last week" bucket against today
// without any offset, which makes LastWeek unreachable. That behavior is kept
// unless strict mode is enabled, in which case the bucket matches the day
// exactly seven days before today.
type RelativeDayClassifier struct {
	lastWeekOffsetDays int
}

// NewRelativeDayClassifier creates a classifier. strictLastWeek enables the
// seven-day offset for the LastWeek bucket.
func NewRelativeDayClassifier(strictLastWeek bool) *RelativeDayClassifier {
	c := &RelativeDayClassifier{}
	if strictLastWeek {
		c.lastWeekOffsetDays = lastWeekDays
	}
	return c
}

// Classify compares dateString with today, yesterday and the last-week target,
// all taken on now's calendar. Input that is not a month-first slash date is
// classified as None.
func (c *RelativeDayClassifier) Classify(dateString string, now time.Time) entity.RelativeDay {
	date, ok := parseMonthFirst(strings.TrimSpace(dateString), now.Location())
	if !ok {
		return entity.RelativeDayNone
	}

	today := startOfDay(now)
	switch {
	case sameDay(date, today):
		return entity.RelativeDayToday
	case sameDay(date, today.AddDate(0, 0, -1)):
		return entity.RelativeDayYesterday
	case sameDay(date, today.AddDate(0, 0, -c.lastWeekOffsetDays)):
		return entity.RelativeDayLastWeek
	default:
		return entity.RelativeDayNone
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
