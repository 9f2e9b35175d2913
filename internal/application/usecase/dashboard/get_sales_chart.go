// Package dashboard contains the sales dashboard use cases and the temporal
// aggregation helpers they are built on.
package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/sales-dashboard/backend/internal/domain/entity"
	domainerror "github.com/sales-dashboard/backend/internal/domain/error"
)

// GetSalesChartInput represents the input for getting the sales chart.
type GetSalesChartInput struct {
	Frequency entity.Frequency
}

// GetSalesChartOutput represents the output of getting the sales chart.
type GetSalesChartOutput struct {
	Frequency entity.Frequency
	Chart     entity.ChartData
}

// GetSalesChartUseCase handles fetching sales and shaping them for charting.
type GetSalesChartUseCase struct {
	salesRepo SalesRepository
}

// NewGetSalesChartUseCase creates a new GetSalesChartUseCase instance.
func NewGetSalesChartUseCase(salesRepo SalesRepository) *GetSalesChartUseCase {
	return &GetSalesChartUseCase{
		salesRepo: salesRepo,
	}
}

// Execute fetches the sales needed for the frequency and shapes them.
// When the backend has no quarterly figures, they are rolled up from the
// monthly ones.
func (uc *GetSalesChartUseCase) Execute(
	ctx context.Context,
	input GetSalesChartInput,
) (*GetSalesChartOutput, error) {
	if err := validateFrequency(input.Frequency); err != nil {
		return nil, err
	}

	var raw entity.RawSales
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		yearly, err := uc.salesRepo.GetYearlySales(gctx)
		if err != nil {
			return fmt.Errorf("failed to get yearly sales: %w", err)
		}
		raw.Yearly = yearly
		return nil
	})

	if input.Frequency == entity.FrequencyQuarterly {
		g.Go(func() error {
			quarterly, err := uc.salesRepo.GetQuarterlySales(gctx)
			if err != nil {
				return fmt.Errorf("failed to get quarterly sales: %w", err)
			}
			raw.Quarterly = quarterly
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if input.Frequency == entity.FrequencyQuarterly && len(raw.Quarterly) == 0 {
		raw.Quarterly = RollupQuarterly(raw.Yearly)
	}

	chart, err := ShapeSeries(raw, input.Frequency)
	if err != nil {
		return nil, err
	}

	return &GetSalesChartOutput{
		Frequency: input.Frequency,
		Chart:     chart,
	}, nil
}

// validateFrequency validates the requested chart frequency.
func validateFrequency(frequency entity.Frequency) error {
	if frequency == "" {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeMissingFrequency,
			"frequency is required",
			domainerror.ErrMissingFrequency,
		)
	}

	if !frequency.IsValid() {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be: yearly or quarterly",
			domainerror.ErrInvalidFrequency,
		)
	}

	return nil
}
