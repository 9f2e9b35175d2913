// Package dashboard contains the sales dashboard use cases and the temporal
// aggregation helpers they are built on.
package dashboard

import (
	"context"
	"time"

	"github.com/sales-dashboard/backend/internal/domain/entity"
)

// SalesRepository defines the interface for reading aggregated sales.
type SalesRepository interface {
	// GetYearlySales returns monthly sales grouped by year.
	GetYearlySales(ctx context.Context) ([]entity.MonthlyYearSeries, error)

	// GetQuarterlySales returns quarterly sales grouped by year.
	GetQuarterlySales(ctx context.Context) ([]entity.QuarterlyYearSeries, error)
}

// MetricsRepository defines the interface for reading KPI metrics.
type MetricsRepository interface {
	// GetSalesMetrics returns the sales KPIs for the query window.
	GetSalesMetrics(ctx context.Context, query entity.KPIQuery) (*entity.SalesMetrics, error)
}

// Clock supplies the current time. Use cases read "now" only through it.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}
