// Package dashboard contains the sales dashboard use cases and the temporal
// aggregation helpers they are built on.
package dashboard

import (
	"fmt"
	"time"

	domainerror "github.com/sales-dashboard/backend/internal/domain/error"
)

// DefaultStartYear is the first year with sales data.
const DefaultStartYear = 2016

// MinYear and MaxYear bound the calendar years a range can contain.
const (
	MinYear = 1
	MaxYear = 9999
)

// ValidYear reports whether year lies within MinYear and MaxYear.
func ValidYear(year int) bool {
	return year >= MinYear && year <= MaxYear
}

// YearRange returns every year between start and end inclusive, ascending.
// The bounds may be given in either order and are clamped to
// [MinYear, MaxYear]; a range lying entirely outside it is empty.
func YearRange(start, end int) []int {
	if end < start {
		start, end = end, start
	}
	if end < MinYear || start > MaxYear {
		return []int{}
	}
	start = max(start, MinYear)
	end = min(end, MaxYear)

	years := make([]int, 0, end-start+1)
	for y := start; y <= end; y++ {
		years = append(years, y)
	}
	return years
}

// YearRangeDefault returns the years from DefaultStartYear through now's year.
func YearRangeDefault(now time.Time) []int {
	return YearRange(DefaultStartYear, now.Year())
}

// YearRangeStrict is YearRange for callers whose argument order matters:
// an inverted range is reported instead of normalized.
func YearRangeStrict(start, end int) ([]int, error) {
	if end < start {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidRange,
			fmt.Sprintf("end year %d is before start year %d", end, start),
			domainerror.ErrInvalidRange,
		)
	}
	return YearRange(start, end), nil
}
