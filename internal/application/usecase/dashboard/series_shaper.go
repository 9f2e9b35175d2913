// Package dashboard contains the sales dashboard use cases and the temporal
// aggregation helpers they are built on.
package dashboard

import (
	"github.com/sales-dashboard/backend/internal/domain/entity"
	domainerror "github.com/sales-dashboard/backend/internal/domain/error"
)

// Palette holds the series colors, assigned by year position and cycled.
var Palette = []string{
	"#4F46E5",
	"#10B981",
	"#F59E0B",
	"#EF4444",
	"#3B82F6",
	"#8B5CF6",
	"#EC4899",
	"#14B8A6",
}

// ShapeSeries builds chart series from raw sales for the given frequency:
// monthly records on a Jan..Dec axis for yearly, quarterly records on a
// Q1..Q4 axis for quarterly.
func ShapeSeries(raw entity.RawSales, frequency entity.Frequency) (entity.ChartData, error) {
	switch frequency {
	case entity.FrequencyYearly:
		return ShapeMonthlySeries(raw.Yearly), nil
	case entity.FrequencyQuarterly:
		return ShapeQuarterlySeries(raw.Quarterly), nil
	default:
		return entity.ChartData{}, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be: yearly or quarterly",
			domainerror.ErrInvalidFrequency,
		)
	}
}

// ShapeMonthlySeries produces one twelve-point series per year, ascending.
// Missing months are zero-filled.
func ShapeMonthlySeries(yearly []entity.MonthlyYearSeries) entity.ChartData {
	categories := MonthCategories()
	sorted := sortYearSeries(yearly)

	series := make([]entity.ChartSeries, 0, len(sorted))
	for i, year := range sorted {
		values := make(map[string]float64, len(year.Data))
		for _, point := range year.Data {
			key := monthKey(point.Month)
			if _, seen := values[key]; seen {
				continue
			}
			values[key] = finiteOrZero(point.Value)
		}
		series = append(series, buildSeries(year.Year, categories, values, paletteColor(i)))
	}

	return entity.ChartData{Categories: categories, Series: series}
}

// ShapeQuarterlySeries produces one four-point series per year, ascending.
// Missing quarters are zero-filled.
func ShapeQuarterlySeries(quarterly []entity.QuarterlyYearSeries) entity.ChartData {
	categories := QuarterCategories()
	sorted := sortYearSeries(quarterly)

	series := make([]entity.ChartSeries, 0, len(sorted))
	for i, year := range sorted {
		values := make(map[string]float64, len(year.Data))
		for _, point := range year.Data {
			key := normalizeLabel(string(point.Quarter))
			if _, seen := values[key]; seen {
				continue
			}
			values[key] = finiteOrZero(point.Value)
		}
		series = append(series, buildSeries(year.Year, categories, values, paletteColor(i)))
	}

	return entity.ChartData{Categories: categories, Series: series}
}

func buildSeries(name string, categories []string, values map[string]float64, color string) entity.ChartSeries {
	points := make([]entity.ChartPoint, len(categories))
	for i, category := range categories {
		points[i] = entity.ChartPoint{
			X:     category,
			Y:     values[normalizeLabel(category)],
			Color: color,
		}
	}
	return entity.ChartSeries{Name: name, Data: points}
}

// monthKey maps any accepted month spelling onto its category label key.
func monthKey(label string) string {
	if m, ok := ParseMonth(label); ok {
		return normalizeLabel(monthAbbreviations[m])
	}
	return normalizeLabel(label)
}

func paletteColor(index int) string {
	return Palette[index%len(Palette)]
}

func finiteOrZero(a entity.Amount) float64 {
	if !a.IsFinite() {
		return 0
	}
	return a.Float64()
}
