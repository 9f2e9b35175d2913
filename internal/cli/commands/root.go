package commands

import (
	"github.com/spf13/cobra"

	"github.com/sales-dashboard/backend/internal/application/usecase/dashboard"
)

// NewRootCmd assembles salesctl. clock supplies "now" for the calendar commands.
func NewRootCmd(clock dashboard.Clock) *cobra.Command {
	root := &cobra.Command{
		Use:           "salesctl",
		Short:         "Offline tools for the sales dashboard aggregation pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		NewShapeCmd(),
		NewRollupCmd(),
		NewYearsCmd(clock),
		NewPeriodsCmd(clock),
		NewClassifyCmd(clock),
		NewUSDCmd(),
	)

	return root
}
