package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/habitgrid/internal/progress"

	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle ID DAY",
	Short: "Flip a habit's done flag for a day of the month",
	Args:  cobra.ExactArgs(2),
	RunE:  runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}

func runToggle(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid habit id %q: %w", args[0], err)
	}
	day, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid day %q: %w", args[1], err)
	}

	hs, closer, err := openHabitStore()
	if err != nil {
		return err
	}
	defer closer()

	// The grid only ever offers valid cells; the CLI enforces the same
	// bounds explicitly.
	days := progress.DaysInMonth(hs.Year(), hs.Month())
	if day < 1 || day > days {
		return fmt.Errorf("day %d out of range for %s %d (1-%d)", day, hs.Month(), hs.Year(), days)
	}

	if err := hs.ToggleDay(id, day); err != nil {
		return err
	}

	state := "not done"
	if hs.Snapshot().Data.Done(id, day) {
		state = "done"
	}
	name := fmt.Sprintf("habit %d", id)
	if h, ok := hs.HabitByID(id); ok {
		name = fmt.Sprintf("%q", h.Name)
	}
	fmt.Printf("%s %s %d: %s\n", name, hs.Month(), day, state)
	return nil
}
