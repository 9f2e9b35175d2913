// Package entity defines the core business entities for the domain layer.
package entity

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount is a monetary or series value as received from the sales backend.
// It accepts JSON numbers, numeric strings and null. Anything that cannot be
// read as a finite number decodes to NaN instead of failing the whole payload.
type Amount float64

// Float64 returns the raw value.
func (a Amount) Float64() float64 {
	return float64(a)
}

// IsFinite reports whether the amount can take part in arithmetic.
func (a Amount) IsFinite() bool {
	f := float64(a)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Amount(math.NaN())
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = Amount(math.NaN())
			return nil
		}
		*a = ParseAmount(s)
		return nil
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*a = Amount(math.NaN())
		return nil
	}
	*a = Amount(f)
	return nil
}

// MarshalJSON implements json.Marshaler. Non-finite amounts are written as null.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.IsFinite() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(a))
}

// ParseAmount converts text to an Amount, returning NaN when it is not numeric.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount(math.NaN())
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Amount(math.NaN())
	}
	return Amount(f)
}

// Quarter identifies a calendar quarter.
type Quarter string

const (
	QuarterQ1 Quarter = "Q1"
	QuarterQ2 Quarter = "Q2"
	QuarterQ3 Quarter = "Q3"
	QuarterQ4 Quarter = "Q4"
)

// Quarters lists the quarters in calendar order.
var Quarters = []Quarter{QuarterQ1, QuarterQ2, QuarterQ3, QuarterQ4}

// Index returns the zero-based position of the quarter, or -1.
func (q Quarter) Index() int {
	for i, candidate := range Quarters {
		if strings.EqualFold(string(q), string(candidate)) {
			return i
		}
	}
	return -1
}

// MonthlySeriesPoint is one month of sales for a year.
type MonthlySeriesPoint struct {
	Month string `json:"month"`
	Value Amount `json:"value"`
}

// QuarterlySeriesPoint is one quarter of sales for a year.
type QuarterlySeriesPoint struct {
	Quarter Quarter `json:"quarter"`
	Value   Amount  `json:"value"`
}

// YearSeries groups the data points of a single year.
// Year is numeric text; duplicate years in a collection are kept as-is.
type YearSeries[T any] struct {
	Year string `json:"year"`
	Data []T    `json:"data"`
}

// YearInt returns the numeric year. Non-numeric years are treated as 0.
func (y YearSeries[T]) YearInt() int {
	n, err := strconv.Atoi(strings.TrimSpace(y.Year))
	if err != nil {
		return 0
	}
	return n
}

// MonthlyYearSeries is a year of monthly sales.
type MonthlyYearSeries = YearSeries[MonthlySeriesPoint]

// QuarterlyYearSeries is a year of quarterly sales.
type QuarterlyYearSeries = YearSeries[QuarterlySeriesPoint]

// Frequency selects the category axis of a sales chart.
type Frequency string

const (
	FrequencyYearly    Frequency = "yearly"
	FrequencyQuarterly Frequency = "quarterly"
)

// IsValid reports whether the frequency is supported.
func (f Frequency) IsValid() bool {
	return f == FrequencyYearly || f == FrequencyQuarterly
}

// ChartPoint is a single plotted value.
type ChartPoint struct {
	X     string  `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color"`
}

// ChartSeries is one named trace of a chart, one per year.
type ChartSeries struct {
	Name string       `json:"name"`
	Data []ChartPoint `json:"data"`
}

// ChartData is what the charting component consumes.
type ChartData struct {
	Categories []string      `json:"categories"`
	Series     []ChartSeries `json:"series"`
}

// RelativeDay labels a date relative to the current day.
type RelativeDay string

const (
	RelativeDayToday     RelativeDay = "Today"
	RelativeDayYesterday RelativeDay = "Yesterday"
	RelativeDayLastWeek  RelativeDay = "LastWeek"
	RelativeDayNone      RelativeDay = "None"
)

// DateRange is an inclusive pair of MM/DD/YYYY dates.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// PeriodSet holds the preset KPI periods for a timezone.
type PeriodSet struct {
	Today     string    `json:"today"`
	Yesterday string    `json:"yesterday"`
	LastWeek  DateRange `json:"last_week"`
	Custom    string    `json:"custom"`
}

// KPIQuery is the window sent to the metrics backend.
// From and To are zone-less wall-clock instants; Timezone is an IANA name.
type KPIQuery struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Timezone string `json:"timezone"`
}

// SalesMetrics is the KPI payload returned by the metrics backend.
type SalesMetrics struct {
	TotalSales        Amount `json:"total_sales"`
	OrderCount        int    `json:"order_count"`
	AverageOrderValue Amount `json:"average_order_value"`
}

// RawSales is the sales payload fetched from the backend, before shaping.
type RawSales struct {
	Yearly    []MonthlyYearSeries   `json:"yearly"`
	Quarterly []QuarterlyYearSeries `json:"quarterly"`
}
