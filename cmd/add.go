package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a habit to the active month",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	hs, closer, err := openHabitStore()
	if err != nil {
		return err
	}
	defer closer()

	h, err := hs.AddHabit(strings.Join(args, " "))
	if err != nil {
		return err
	}

	fmt.Printf("Added %q (id %d, color %s)\n", h.Name, h.ID, h.Color)
	return nil
}
