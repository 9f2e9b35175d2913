package commands

import (
	"github.com/spf13/cobra"

	"github.com/sales-dashboard/backend/internal/application/usecase/dashboard"
)

type usdOutput struct {
	Input     string `json:"input"`
	Formatted string `json:"formatted"`
}

func NewUSDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "usd VALUE",
		Short: "Format a number as US dollars",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd, usdOutput{
				Input:     args[0],
				Formatted: dashboard.FormatUSD(args[0]),
			})
		},
	}
}
