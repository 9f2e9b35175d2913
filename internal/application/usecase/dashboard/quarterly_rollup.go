// Package dashboard contains the sales dashboard use cases and the temporal
// aggregation helpers they are built on.
package dashboard

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/sales-dashboard/backend/internal/domain/entity"
)

var half = decimal.NewFromFloat(0.5)

// RollupQuarterly sums each year's monthly sales into its four quarters.
//
// Years come out in ascending numeric order. Every year has Q1..Q4, zero when
// no month contributed. Month labels are matched loosely (see ParseMonth);
// unknown labels and non-finite values are skipped. Quarter totals are rounded
// to one decimal. The input is left untouched.
func RollupQuarterly(yearly []entity.MonthlyYearSeries) []entity.QuarterlyYearSeries {
	sorted := sortYearSeries(yearly)

	result := make([]entity.QuarterlyYearSeries, 0, len(sorted))
	for _, year := range sorted {
		sums := make([]decimal.Decimal, len(entity.Quarters))
		for i := range sums {
			sums[i] = decimal.Zero
		}

		for _, point := range year.Data {
			quarter, ok := QuarterForMonth(point.Month)
			if !ok || !point.Value.IsFinite() {
				continue
			}
			idx := quarter.Index()
			sums[idx] = sums[idx].Add(decimal.NewFromFloat(point.Value.Float64()))
		}

		data := make([]entity.QuarterlySeriesPoint, len(entity.Quarters))
		for i, q := range entity.Quarters {
			data[i] = entity.QuarterlySeriesPoint{
				Quarter: q,
				Value:   entity.Amount(roundTenths(sums[i]).InexactFloat64()),
			}
		}

		result = append(result, entity.QuarterlyYearSeries{
			Year: year.Year,
			Data: data,
		})
	}

	return result
}

// roundTenths rounds half toward positive infinity at one decimal place.
func roundTenths(d decimal.Decimal) decimal.Decimal {
	return d.Shift(1).Add(half).Floor().Shift(-1)
}

// sortYearSeries returns a copy of series ordered by ascending numeric year.
// Equal years keep their relative order.
func sortYearSeries[T any](series []entity.YearSeries[T]) []entity.YearSeries[T] {
	sorted := slices.Clone(series)
	slices.SortStableFunc(sorted, func(a, b entity.YearSeries[T]) int {
		return cmp.Compare(a.YearInt(), b.YearInt())
	})
	return sorted
}
