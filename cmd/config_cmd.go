// Package cmd implements the subtrack CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/subtrack/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
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

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default currency: %s\n", cfg.General.DefaultCurrency)
	fmt.Printf("    Renewal horizon:  %dd\n", cfg.General.RenewalHorizon)
	fmt.Printf("    Database:         %s\n", config.DBPath(cfg))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Notifications]")
	fmt.Printf("    Enabled:           %v\n", cfg.Notifications.Enabled)
	fmt.Printf("    Default reminder:  %dd before renewal\n", cfg.Notifications.DefaultReminderDays)
	fmt.Printf("    Watch interval:    %dm\n", cfg.Notifications.IntervalMinutes)
	fmt.Println()

	fmt.Println("  [Rates]")
	fmt.Printf("    Auto-update: %v\n", cfg.Rates.AutoUpdate)
	if cfg.Rates.BaseURL != "" {
		fmt.Printf("    Base URL:    %s\n", cfg.Rates.BaseURL)
	}
	fmt.Println()

	fmt.Println("  Run `subtrack setup` to reconfigure.")
	return nil
}
