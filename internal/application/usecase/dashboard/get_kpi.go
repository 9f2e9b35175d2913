// Package dashboard contains the sales dashboard use cases and the temporal
// aggregation helpers they are built on.
package dashboard

import (
	"context"
	"fmt"

	"github.com/sales-dashboard/backend/internal/domain/entity"
)

// GetKPIInput represents the input for getting KPI metrics.
// From and To are loosely formatted dates, see ParseDate.
type GetKPIInput struct {
	Timezone string
	From     string
	To       string
}

// GetKPIOutput represents the output of getting KPI metrics.
type GetKPIOutput struct {
	Query     entity.KPIQuery
	Metrics   entity.SalesMetrics
	Formatted FormattedMetrics
}

// FormattedMetrics holds the KPI amounts rendered as US dollars.
type FormattedMetrics struct {
	TotalSales        string
	AverageOrderValue string
}

// GetKPIUseCase handles KPI card lookups.
type GetKPIUseCase struct {
	metricsRepo     MetricsRepository
	clock           Clock
	defaultTimezone string
}

// NewGetKPIUseCase creates a new GetKPIUseCase instance.
func NewGetKPIUseCase(metricsRepo MetricsRepository, clock Clock, defaultTimezone string) *GetKPIUseCase {
	return &GetKPIUseCase{
		metricsRepo:     metricsRepo,
		clock:           clock,
		defaultTimezone: defaultTimezone,
	}
}

// Execute builds the KPI window in the requested timezone and fetches the
// metrics for it.
func (uc *GetKPIUseCase) Execute(ctx context.Context, input GetKPIInput) (*GetKPIOutput, error) {
	timezone := input.Timezone
	if timezone == "" {
		timezone = uc.defaultTimezone
	}

	loc, err := LoadTimezone(timezone)
	if err != nil {
		return nil, err
	}

	query := BuildKPIQuery(input.From, input.To, timezone, uc.clock.Now().In(loc))

	metrics, err := uc.metricsRepo.GetSalesMetrics(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get sales metrics: %w", err)
	}

	return &GetKPIOutput{
		Query:   query,
		Metrics: *metrics,
		Formatted: FormattedMetrics{
			TotalSales:        FormatUSD(metrics.TotalSales),
			AverageOrderValue: FormatUSD(metrics.AverageOrderValue),
		},
	}, nil
}
