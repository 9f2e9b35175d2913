// Package dashboard contains the sales dashboard use cases and the temporal
// aggregation helpers they are built on.
package dashboard

import (
	"strconv"
	"strings"
	"time"
)

// twoDigitYearPivot splits two-digit years: below the pivot is 20xx, otherwise 19xx.
const twoDigitYearPivot = 70

// freeFormLayouts are tried, in order, once the month-first slash format fails.
var freeFormLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"January 2 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Mon Jan 2 2006",
	"Mon, Jan 2, 2006",
	time.RFC1123,
	time.RFC1123Z,
	"Jan 2006",
	"January 2006",
}

// ParseDate turns a loosely formatted date string into a point in time.
//
// Slash-delimited input is read month-first (M/D/Y). Two-digit years below 70
// resolve to 20xx, the rest to 19xx. Other inputs go through a list of common
// layouts. Empty or unparseable input yields now: the function never fails.
// Dates are built in now's location.
func ParseDate(input string, now time.Time) time.Time {
	input = strings.TrimSpace(input)
	if input == "" {
		return now
	}

	if t, ok := parseMonthFirst(input, now.Location()); ok {
		return t
	}

	if t, ok := parseFreeForm(input, now.Location()); ok {
		return t
	}

	return now
}

// ParseDateNow is ParseDate against the wall clock.
func ParseDateNow(input string) time.Time {
	return ParseDate(input, time.Now())
}

// parseMonthFirst reads "M/D/Y". Extra slash parts are ignored.
func parseMonthFirst(input string, loc *time.Location) (time.Time, bool) {
	parts := strings.Split(input, "/")
	if len(parts) < 3 {
		return time.Time{}, false
	}

	month, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, false
	}

	yearPart := strings.TrimSpace(parts[2])
	year, err := strconv.Atoi(yearPart)
	if err != nil || year < 0 {
		return time.Time{}, false
	}
	if len(yearPart) == 2 {
		year = expandTwoDigitYear(year)
	}

	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	// time.Date normalizes 2/30 into March; treat that as invalid.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func expandTwoDigitYear(yy int) int {
	if yy < twoDigitYearPivot {
		return 2000 + yy
	}
	return 1900 + yy
}

func parseFreeForm(input string, loc *time.Location) (time.Time, bool) {
	for _, layout := range freeFormLayouts {
		if t, err := time.ParseInLocation(layout, input, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
