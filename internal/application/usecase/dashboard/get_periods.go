// Package dashboard contains the sales dashboard use cases and the temporal
// aggregation helpers they are built on.
package dashboard

import (
	"github.com/sales-dashboard/backend/internal/domain/entity"
)

// GetPeriodsInput represents the input for getting the preset periods.
type GetPeriodsInput struct {
	Timezone string
}

// GetPeriodsOutput represents the output of getting the preset periods.
type GetPeriodsOutput struct {
	Timezone string
	Periods  entity.PeriodSet
}

// GetPeriodsUseCase computes the KPI period presets for a timezone.
type GetPeriodsUseCase struct {
	clock           Clock
	defaultTimezone string
}

// NewGetPeriodsUseCase creates a new GetPeriodsUseCase instance.
func NewGetPeriodsUseCase(clock Clock, defaultTimezone string) *GetPeriodsUseCase {
	return &GetPeriodsUseCase{
		clock:           clock,
		defaultTimezone: defaultTimezone,
	}
}

// Execute returns the presets on the timezone's calendar.
func (uc *GetPeriodsUseCase) Execute(input GetPeriodsInput) (*GetPeriodsOutput, error) {
	timezone := input.Timezone
	if timezone == "" {
		timezone = uc.defaultTimezone
	}

	periods, err := DefaultPeriodSet(uc.clock.Now(), timezone)
	if err != nil {
		return nil, err
	}

	return &GetPeriodsOutput{
		Timezone: ResolveTimezone(timezone),
		Periods:  periods,
	}, nil
}
