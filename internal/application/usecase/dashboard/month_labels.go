// Package dashboard contains the sales dashboard use cases and the temporal
// aggregation helpers they are built on.
package dashboard

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sales-dashboard/backend/internal/domain/entity"
)

// monthAbbreviations are the month category labels, in calendar order.
var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Feb",
	time.March:     "Mar",
	time.April:     "Apr",
	time.May:       "May",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Aug",
	time.September: "Sep",
	time.October:   "Oct",
	time.November:  "Nov",
	time.December:  "Dec",
}

// monthLookup holds every accepted spelling, already normalized.
var monthLookup = buildMonthLookup()

func buildMonthLookup() map[string]time.Month {
	lookup := make(map[string]time.Month, 12*5)
	for m := time.January; m <= time.December; m++ {
		lookup[normalizeLabel(m.String())] = m
		lookup[normalizeLabel(monthAbbreviations[m])] = m
		lookup[fmt.Sprintf("%02d", int(m))] = m
		lookup[strconv.Itoa(int(m))] = m
	}
	lookup["sept"] = time.September
	return lookup
}

// MonthCategories returns the twelve month labels of the yearly chart axis.
func MonthCategories() []string {
	categories := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		categories = append(categories, monthAbbreviations[m])
	}
	return categories
}

// QuarterCategories returns the four quarter labels of the quarterly chart axis.
func QuarterCategories() []string {
	categories := make([]string, 0, len(entity.Quarters))
	for _, q := range entity.Quarters {
		categories = append(categories, string(q))
	}
	return categories
}

// ParseMonth recognizes a month label in any case, abbreviated or in full,
// including "Sept" and numeric forms.
func ParseMonth(label string) (time.Month, bool) {
	m, ok := monthLookup[normalizeLabel(label)]
	return m, ok
}

// QuarterForMonth maps a month label to its quarter.
func QuarterForMonth(label string) (entity.Quarter, bool) {
	m, ok := ParseMonth(label)
	if !ok {
		return "", false
	}
	return entity.Quarters[(int(m)-1)/3], true
}

func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
