// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/sales-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/sales-dashboard/backend/internal/domain/entity"
)

// ShapeChartRequest represents the request body for shaping raw sales.
type ShapeChartRequest struct {
	Frequency string                       `json:"frequency"`
	Yearly    []entity.MonthlyYearSeries   `json:"yearly"`
	Quarterly []entity.QuarterlyYearSeries `json:"quarterly"`
}

// RollupRequest represents the request body for the quarterly rollup.
type RollupRequest struct {
	Yearly []entity.MonthlyYearSeries `json:"yearly"`
}

// SalesChartResponse represents the response for the sales chart API.
type SalesChartResponse struct {
	Data SalesChartData `json:"data"`
}

// SalesChartData represents the data section of the sales chart response.
type SalesChartData struct {
	Frequency  string               `json:"frequency"`
	Categories []string             `json:"categories"`
	Series     []entity.ChartSeries `json:"series"`
}

// RollupResponse represents the response for the rollup API.
type RollupResponse struct {
	Data []entity.QuarterlyYearSeries `json:"data"`
}

// KPIResponse represents the response for the KPI API.
type KPIResponse struct {
	Data KPIData `json:"data"`
}

// KPIData represents the data section of the KPI response.
type KPIData struct {
	Query     entity.KPIQuery     `json:"query"`
	Metrics   entity.SalesMetrics `json:"metrics"`
	Formatted FormattedKPI        `json:"formatted"`
}

// FormattedKPI holds the display strings for the KPI cards.
type FormattedKPI struct {
	TotalSales        string `json:"total_sales"`
	AverageOrderValue string `json:"average_order_value"`
}

// PeriodsResponse represents the response for the periods API.
type PeriodsResponse struct {
	Data PeriodsData `json:"data"`
}

// PeriodsData represents the data section of the periods response.
type PeriodsData struct {
	Timezone string           `json:"timezone"`
	Periods  entity.PeriodSet `json:"periods"`
}

// YearsResponse represents the response for the years API.
type YearsResponse struct {
	Data YearsData `json:"data"`
}

// YearsData represents the data section of the years response.
type YearsData struct {
	Years []int `json:"years"`
}

// RelativeDayResponse represents the response for the relative day API.
type RelativeDayResponse struct {
	Data RelativeDayData `json:"data"`
}

// RelativeDayData represents the data section of the relative day response.
type RelativeDayData struct {
	Date        string             `json:"date"`
	RelativeDay entity.RelativeDay `json:"relative_day"`
}

// ToSalesChartResponse converts a GetSalesChartOutput to SalesChartResponse DTO.
func ToSalesChartResponse(output *dashboard.GetSalesChartOutput) SalesChartResponse {
	return ToChartResponse(output.Frequency, output.Chart)
}

// ToChartResponse wraps shaped chart data for the given frequency.
func ToChartResponse(frequency entity.Frequency, chart entity.ChartData) SalesChartResponse {
	categories := chart.Categories
	if categories == nil {
		categories = []string{}
	}
	series := chart.Series
	if series == nil {
		series = []entity.ChartSeries{}
	}

	return SalesChartResponse{
		Data: SalesChartData{
			Frequency:  string(frequency),
			Categories: categories,
			Series:     series,
		},
	}
}

// ToRollupResponse wraps rolled up quarterly series.
func ToRollupResponse(quarterly []entity.QuarterlyYearSeries) RollupResponse {
	if quarterly == nil {
		quarterly = []entity.QuarterlyYearSeries{}
	}
	return RollupResponse{Data: quarterly}
}

// ToKPIResponse converts a GetKPIOutput to KPIResponse DTO.
func ToKPIResponse(output *dashboard.GetKPIOutput) KPIResponse {
	return KPIResponse{
		Data: KPIData{
			Query:   output.Query,
			Metrics: output.Metrics,
			Formatted: FormattedKPI{
				TotalSales:        output.Formatted.TotalSales,
				AverageOrderValue: output.Formatted.AverageOrderValue,
			},
		},
	}
}

// ToPeriodsResponse converts a GetPeriodsOutput to PeriodsResponse DTO.
func ToPeriodsResponse(output *dashboard.GetPeriodsOutput) PeriodsResponse {
	return PeriodsResponse{
		Data: PeriodsData{
			Timezone: output.Timezone,
			Periods:  output.Periods,
		},
	}
}
