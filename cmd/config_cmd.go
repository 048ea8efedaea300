package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/theirongolddev/habitgrid/internal/config"
	"github.com/theirongolddev/habitgrid/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show resolved configuration and storage paths",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dataDir := flagDataDir
	if dataDir == "" {
		dataDir = cfg.General.DataDir
	}
	if dataDir == "" {
		dataDir = store.DataDir()
	}
	dbPath := filepath.Join(dataDir, "habits.db")

	fmt.Printf("Config file:  %s\n", config.ConfigPath())
	fmt.Printf("Theme:        %s\n", cfg.Appearance.Theme)
	fmt.Printf("Data dir:     %s\n", dataDir)
	fmt.Printf("Database:     %s\n", dbPath)

	db, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	keys, err := db.Keys()
	if err != nil {
		return err
	}
	fmt.Printf("Months:       %d stored\n", len(keys))
	for _, k := range keys {
		fmt.Printf("  %s\n", k)
	}
	return nil
}
