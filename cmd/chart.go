package cmd

import (
	"fmt"

	"github.com/theirongolddev/habitgrid/internal/cli"
	"github.com/theirongolddev/habitgrid/internal/progress"
	"github.com/theirongolddev/habitgrid/internal/tui/components"

	"github.com/spf13/cobra"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Daily completion-rate chart for the active month",
	RunE:  runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)
}

func runChart(_ *cobra.Command, _ []string) error {
	hs, closer, err := openHabitStore()
	if err != nil {
		return err
	}
	defer closer()

	snap := hs.Snapshot()
	series := progress.DailySeries(snap, hs.Year(), hs.Month())

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("COMPLETION  %s", cli.MonthLabel(hs.Year(), hs.Month()))))
	fmt.Println()
	fmt.Println(components.LineChart(series, 76, 10, cli.ColorAccent))
	fmt.Println()
	return nil
}
