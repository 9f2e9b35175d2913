package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sales-dashboard/backend/internal/domain/entity"
	domainerror "github.com/sales-dashboard/backend/internal/domain/error"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type fakeMetricsRepository struct {
	metrics *entity.SalesMetrics
	err     error
	query   entity.KPIQuery
}

func (f *fakeMetricsRepository) GetSalesMetrics(ctx context.Context, query entity.KPIQuery) (*entity.SalesMetrics, error) {
	f.query = query
	return f.metrics, f.err
}

func TestGetKPIUseCase_Execute(t *testing.T) {
	repo := &fakeMetricsRepository{
		metrics: &entity.SalesMetrics{TotalSales: 1234.5, OrderCount: 10, AverageOrderValue: 123.45},
	}
	clock := fixedClock{now: time.Date(2024, time.January, 5, 20, 30, 0, 0, time.UTC)}
	uc := NewGetKPIUseCase(repo, clock, "EST")

	output, err := uc.Execute(context.Background(), GetKPIInput{
		Timezone: "PST",
		From:     "1/2/24",
	})
	require.NoError(t, err)

	expectedQuery := entity.KPIQuery{
		From:     "2024-01-02T00:00:00",
		To:       "2024-01-05T12:30:00",
		Timezone: "America/Los_Angeles",
	}
	assert.Equal(t, expectedQuery, output.Query)
	assert.Equal(t, expectedQuery, repo.query)
	assert.Equal(t, 10, output.Metrics.OrderCount)
	assert.Equal(t, "$1,234.50", output.Formatted.TotalSales)
	assert.Equal(t, "$123.45", output.Formatted.AverageOrderValue)
}

func TestGetKPIUseCase_DefaultTimezone(t *testing.T) {
	repo := &fakeMetricsRepository{metrics: &entity.SalesMetrics{}}
	clock := fixedClock{now: time.Date(2024, time.January, 5, 20, 30, 0, 0, time.UTC)}
	uc := NewGetKPIUseCase(repo, clock, "EST")

	output, err := uc.Execute(context.Background(), GetKPIInput{From: "2024-01-01", To: "2024-01-03"})
	require.NoError(t, err)

	assert.Equal(t, "America/New_York", output.Query.Timezone)
	assert.Equal(t, "2024-01-01T00:00:00", output.Query.From)
	assert.Equal(t, "2024-01-03T00:00:00", output.Query.To)
	assert.Equal(t, "$0.00", output.Formatted.TotalSales)
}

func TestGetKPIUseCase_Errors(t *testing.T) {
	clock := fixedClock{now: time.Now()}

	t.Run("unknown timezone", func(t *testing.T) {
		uc := NewGetKPIUseCase(&fakeMetricsRepository{}, clock, "PST")
		_, err := uc.Execute(context.Background(), GetKPIInput{Timezone: "Atlantis/Capital"})
		assert.ErrorIs(t, err, domainerror.ErrUnknownTimezone)
	})

	t.Run("repository failure", func(t *testing.T) {
		repoErr := errors.New("boom")
		uc := NewGetKPIUseCase(&fakeMetricsRepository{err: repoErr}, clock, "PST")
		_, err := uc.Execute(context.Background(), GetKPIInput{})
		assert.ErrorIs(t, err, repoErr)
	})
}

func TestGetPeriodsUseCase_Execute(t *testing.T) {
	clock := fixedClock{now: time.Date(2024, time.March, 10, 6, 0, 0, 0, time.UTC)}
	uc := NewGetPeriodsUseCase(clock, "PST")

	output, err := uc.Execute(GetPeriodsInput{})
	require.NoError(t, err)
	assert.Equal(t, "America/Los_Angeles", output.Timezone)
	assert.Equal(t, "03/09/2024", output.Periods.Today)

	output, err = uc.Execute(GetPeriodsInput{Timezone: "EST"})
	require.NoError(t, err)
	assert.Equal(t, "03/10/2024", output.Periods.Today)
}
