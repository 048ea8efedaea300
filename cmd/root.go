// Package cmd wires the habitgrid CLI: the root command launches the
// interactive grid, subcommands cover one-shot reads and mutations.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/habitgrid/internal/config"
	"github.com/theirongolddev/habitgrid/internal/habit"
	"github.com/theirongolddev/habitgrid/internal/store"
	"github.com/theirongolddev/habitgrid/internal/tui"
	"github.com/theirongolddev/habitgrid/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagMonth   string
	flagMemory  bool
)

var rootCmd = &cobra.Command{
	Use:   "habitgrid",
	Short: "Monthly habit tracker for the terminal",
	Long:  "Track daily habits on a month grid: toggle days, watch completion rates, keep streaks honest.",
	RunE:  runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVarP(&flagMonth, "month", "m", "", "Month to operate on, YYYY-MM (default: current)")
	rootCmd.PersistentFlags().BoolVar(&flagMemory, "memory", false, "Ephemeral in-memory storage, nothing written to disk")
}

// openHabitStore opens storage and loads the requested month. The
// returned closer is a no-op for in-memory storage.
func openHabitStore() (*habit.Store, func(), error) {
	cfg, _ := config.Load()

	var storage store.Storage
	closer := func() {}

	if flagMemory {
		storage = store.NewMemory()
	} else {
		dir := flagDataDir
		if dir == "" {
			dir = cfg.General.DataDir
		}
		if dir == "" {
			dir = store.DataDir()
		}
		db, err := store.Open(filepath.Join(dir, "habits.db"))
		if err != nil {
			return nil, nil, err
		}
		storage = db
		closer = func() { _ = db.Close() }
	}

	year, month, err := resolveMonth()
	if err != nil {
		closer()
		return nil, nil, err
	}

	hs := habit.New(storage, time.Now)
	if err := hs.LoadMonth(year, month); err != nil {
		closer()
		return nil, nil, err
	}
	return hs, closer, nil
}

func resolveMonth() (int, time.Month, error) {
	if flagMonth == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", flagMonth)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --month %q, want YYYY-MM: %w", flagMonth, err)
	}
	return t.Year(), t.Month(), nil
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor so background styling always produces ANSI codes.
	lipgloss.SetColorProfile(termenv.TrueColor)

	hs, closer, err := openHabitStore()
	if err != nil {
		return err
	}
	defer closer()

	app := tui.NewApp(hs)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
