package dashboard

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sales-dashboard/backend/internal/domain/entity"
	domainerror "github.com/sales-dashboard/backend/internal/domain/error"
)

type fakeSalesRepository struct {
	yearly         []entity.MonthlyYearSeries
	quarterly      []entity.QuarterlyYearSeries
	yearlyErr      error
	quarterlyErr   error
	yearlyCalls    atomic.Int32
	quarterlyCalls atomic.Int32
}

func (f *fakeSalesRepository) GetYearlySales(ctx context.Context) ([]entity.MonthlyYearSeries, error) {
	f.yearlyCalls.Add(1)
	return f.yearly, f.yearlyErr
}

func (f *fakeSalesRepository) GetQuarterlySales(ctx context.Context) ([]entity.QuarterlyYearSeries, error) {
	f.quarterlyCalls.Add(1)
	return f.quarterly, f.quarterlyErr
}

func TestGetSalesChartUseCase_Yearly(t *testing.T) {
	repo := &fakeSalesRepository{
		yearly: []entity.MonthlyYearSeries{
			{Year: "2022", Data: []entity.MonthlySeriesPoint{{Month: "Mar", Value: 3}}},
			{Year: "2021", Data: []entity.MonthlySeriesPoint{{Month: "Jan", Value: 1}}},
		},
	}
	uc := NewGetSalesChartUseCase(repo)

	output, err := uc.Execute(context.Background(), GetSalesChartInput{Frequency: entity.FrequencyYearly})
	require.NoError(t, err)

	assert.Equal(t, entity.FrequencyYearly, output.Frequency)
	require.Len(t, output.Chart.Series, 2)
	assert.Equal(t, "2021", output.Chart.Series[0].Name)
	assert.Equal(t, 3.0, output.Chart.Series[1].Data[2].Y)
	assert.Equal(t, int32(1), repo.yearlyCalls.Load())
	assert.Equal(t, int32(0), repo.quarterlyCalls.Load())
}

func TestGetSalesChartUseCase_QuarterlyFromBackend(t *testing.T) {
	repo := &fakeSalesRepository{
		quarterly: []entity.QuarterlyYearSeries{
			{Year: "2022", Data: []entity.QuarterlySeriesPoint{{Quarter: entity.QuarterQ2, Value: 8}}},
		},
		yearly: []entity.MonthlyYearSeries{
			{Year: "2022", Data: []entity.MonthlySeriesPoint{{Month: "Jan", Value: 100}}},
		},
	}
	uc := NewGetSalesChartUseCase(repo)

	output, err := uc.Execute(context.Background(), GetSalesChartInput{Frequency: entity.FrequencyQuarterly})
	require.NoError(t, err)

	require.Len(t, output.Chart.Series, 1)
	assert.Equal(t, []float64{0, 8, 0, 0}, seriesValues(output.Chart.Series[0]))
}

func TestGetSalesChartUseCase_QuarterlyRolledUp(t *testing.T) {
	repo := &fakeSalesRepository{
		yearly: []entity.MonthlyYearSeries{
			{Year: "2022", Data: []entity.MonthlySeriesPoint{
				{Month: "Jan", Value: 1.5},
				{Month: "Feb", Value: 2.5},
				{Month: "Nov", Value: 10},
			}},
		},
	}
	uc := NewGetSalesChartUseCase(repo)

	output, err := uc.Execute(context.Background(), GetSalesChartInput{Frequency: entity.FrequencyQuarterly})
	require.NoError(t, err)

	require.Len(t, output.Chart.Series, 1)
	assert.Equal(t, []float64{4, 0, 0, 10}, seriesValues(output.Chart.Series[0]))
}

func TestGetSalesChartUseCase_Validation(t *testing.T) {
	uc := NewGetSalesChartUseCase(&fakeSalesRepository{})

	_, err := uc.Execute(context.Background(), GetSalesChartInput{})
	assert.ErrorIs(t, err, domainerror.ErrMissingFrequency)

	_, err = uc.Execute(context.Background(), GetSalesChartInput{Frequency: "monthly"})
	assert.ErrorIs(t, err, domainerror.ErrInvalidFrequency)
}

func TestGetSalesChartUseCase_RepositoryError(t *testing.T) {
	upstreamErr := domainerror.NewDashboardError(
		domainerror.ErrCodeUpstreamUnavailable,
		"sales backend unavailable",
		domainerror.ErrUpstreamUnavailable,
	)
	repo := &fakeSalesRepository{quarterlyErr: upstreamErr}
	uc := NewGetSalesChartUseCase(repo)

	_, err := uc.Execute(context.Background(), GetSalesChartInput{Frequency: entity.FrequencyQuarterly})
	require.Error(t, err)

	var dashErr *domainerror.DashboardError
	require.True(t, errors.As(err, &dashErr))
	assert.Equal(t, domainerror.ErrCodeUpstreamUnavailable, dashErr.Code)
}
