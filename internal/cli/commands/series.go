package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sales-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/sales-dashboard/backend/internal/domain/entity"
)

type ShapeCmd struct {
	file      string
	frequency string
}

type shapeOutput struct {
	Frequency entity.Frequency `json:"frequency"`
	entity.ChartData
}

func NewShapeCmd() *cobra.Command {
	sc := &ShapeCmd{}
	cmd := &cobra.Command{
		Use:   "shape",
		Short: "Shape raw yearly/quarterly sales into chart series",
		Args:  cobra.NoArgs,
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.file, "file", "", "JSON file with {yearly, quarterly} sales (stdin when empty)")
	cmd.Flags().StringVar(&sc.frequency, "frequency", string(entity.FrequencyYearly), "Chart frequency (yearly or quarterly)")

	return cmd
}

func (sc *ShapeCmd) run(cmd *cobra.Command, args []string) error {
	var raw entity.RawSales
	if err := readJSONInput(cmd, sc.file, &raw); err != nil {
		return err
	}

	frequency := entity.Frequency(strings.ToLower(strings.TrimSpace(sc.frequency)))
	chart, err := dashboard.ShapeSeries(raw, frequency)
	if err != nil {
		return err
	}

	return writeJSON(cmd, shapeOutput{Frequency: frequency, ChartData: chart})
}

type RollupCmd struct {
	file string
}

func NewRollupCmd() *cobra.Command {
	rc := &RollupCmd{}
	cmd := &cobra.Command{
		Use:   "rollup",
		Short: "Sum monthly sales into quarterly totals",
		Args:  cobra.NoArgs,
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.file, "file", "", "JSON file with a [{year, data:[{month, value}]}] array (stdin when empty)")

	return cmd
}

func (rc *RollupCmd) run(cmd *cobra.Command, args []string) error {
	var yearly []entity.MonthlyYearSeries
	if err := readJSONInput(cmd, rc.file, &yearly); err != nil {
		return err
	}

	quarterly := dashboard.RollupQuarterly(yearly)
	return writeJSON(cmd, quarterly)
}
