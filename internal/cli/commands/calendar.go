package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sales-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/sales-dashboard/backend/internal/domain/entity"
	domainerror "github.com/sales-dashboard/backend/internal/domain/error"
)

type YearsCmd struct {
	start  int
	end    int
	strict bool
	clock  dashboard.Clock
}

func NewYearsCmd(clock dashboard.Clock) *cobra.Command {
	yc := &YearsCmd{clock: clock}
	cmd := &cobra.Command{
		Use:   "years",
		Short: "List the years of a range, inclusive",
		Args:  cobra.NoArgs,
		RunE:  yc.run,
	}

	cmd.Flags().IntVar(&yc.start, "start", dashboard.DefaultStartYear, "First year")
	cmd.Flags().IntVar(&yc.end, "end", 0, "Last year (defaults to the current year)")
	cmd.Flags().BoolVar(&yc.strict, "strict", false, "Fail when end is before start instead of swapping them")

	return cmd
}

func (yc *YearsCmd) run(cmd *cobra.Command, args []string) error {
	end := yc.end
	if !cmd.Flags().Changed("end") {
		end = yc.clock.Now().Year()
	}
	for _, year := range []int{yc.start, end} {
		if !dashboard.ValidYear(year) {
			return domainerror.NewDashboardError(
				domainerror.ErrCodeInvalidYear,
				fmt.Sprintf("year %d is outside %d-%d", year, dashboard.MinYear, dashboard.MaxYear),
				domainerror.ErrInvalidYear,
			)
		}
	}

	if yc.strict {
		years, err := dashboard.YearRangeStrict(yc.start, end)
		if err != nil {
			return err
		}
		return writeJSON(cmd, years)
	}

	return writeJSON(cmd, dashboard.YearRange(yc.start, end))
}

type PeriodsCmd struct {
	timezone string
	clock    dashboard.Clock
}

type periodsOutput struct {
	Timezone string `json:"timezone"`
	entity.PeriodSet
}

func NewPeriodsCmd(clock dashboard.Clock) *cobra.Command {
	pc := &PeriodsCmd{clock: clock}
	cmd := &cobra.Command{
		Use:   "periods",
		Short: "Print the KPI period presets for a timezone",
		Args:  cobra.NoArgs,
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.timezone, "timezone", "PST", "PST, EST or an IANA zone name")

	return cmd
}

func (pc *PeriodsCmd) run(cmd *cobra.Command, args []string) error {
	periods, err := dashboard.DefaultPeriodSet(pc.clock.Now(), pc.timezone)
	if err != nil {
		return err
	}

	return writeJSON(cmd, periodsOutput{
		Timezone:  dashboard.ResolveTimezone(pc.timezone),
		PeriodSet: periods,
	})
}

type ClassifyCmd struct {
	strictLastWeek bool
	clock          dashboard.Clock
}

type classifyOutput struct {
	Date        string             `json:"date"`
	RelativeDay entity.RelativeDay `json:"relative_day"`
}

func NewClassifyCmd(clock dashboard.Clock) *cobra.Command {
	cc := &ClassifyCmd{clock: clock}
	cmd := &cobra.Command{
		Use:   "classify DATE",
		Short: "Label an M/D/Y date as Today, Yesterday, LastWeek or None",
		Args:  cobra.ExactArgs(1),
		RunE:  cc.run,
	}

	cmd.Flags().BoolVar(&cc.strictLastWeek, "strict-last-week", false, "Match LastWeek seven days before today")

	return cmd
}

func (cc *ClassifyCmd) run(cmd *cobra.Command, args []string) error {
	classifier := dashboard.NewRelativeDayClassifier(cc.strictLastWeek)
	return writeJSON(cmd, classifyOutput{
		Date:        args[0],
		RelativeDay: classifier.Classify(args[0], cc.clock.Now()),
	})
}
