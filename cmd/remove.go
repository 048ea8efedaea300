package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove ID",
	Aliases: []string{"rm"},
	Short:   "Remove a habit and all its completion entries",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(_ *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid habit id %q: %w", args[0], err)
	}

	hs, closer, err := openHabitStore()
	if err != nil {
		return err
	}
	defer closer()

	h, found := hs.HabitByID(id)
	if err := hs.RemoveHabit(id); err != nil {
		return err
	}

	if found {
		fmt.Printf("Removed %q\n", h.Name)
	} else {
		fmt.Printf("No habit with id %d (nothing to do)\n", id)
	}
	return nil
}
