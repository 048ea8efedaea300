package cmd

import (
	"fmt"

	"github.com/theirongolddev/habitgrid/internal/cli"
	"github.com/theirongolddev/habitgrid/internal/progress"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List habits with month-to-date completion",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	hs, closer, err := openHabitStore()
	if err != nil {
		return err
	}
	defer closer()

	snap := hs.Snapshot()
	year, month := hs.Year(), hs.Month()
	days := progress.DaysInMonth(year, month)
	today := hs.Now()

	elapsed := days
	if today.Year() == year && today.Month() == month {
		elapsed = today.Day()
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(cli.MonthLabel(year, month)))
	fmt.Println()

	if len(snap.Habits) == 0 {
		fmt.Println("  No habits this month.")
		return nil
	}

	rows := make([][]string, 0, len(snap.Habits))
	for _, h := range snap.Habits {
		pct := progress.HabitMonthPercent(h.ID, snap.Data, year, month, today)
		rows = append(rows, []string{
			fmt.Sprintf("%d", h.ID),
			h.Name,
			cli.FormatPercent(pct),
			cli.CompletionStrip(snap.Data[h.ID], days, elapsed),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Habit", "Month", "Days"},
		Rows:    rows,
	}))

	return nil
}
