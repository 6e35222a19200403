package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/subtrack/internal/export"
)

var flagExportFormat string

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export data to CSV or JSON",
	Long:  "Export subscriptions as CSV, or every collection as pretty-printed JSON. The format follows the file extension unless --format is given.",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import a JSON dump, replacing all collections",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportFormat, "format", "", "csv or json")
	rootCmd.AddCommand(exportCmd, importCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	path := args[0]
	format := flagExportFormat
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	switch format {
	case "csv":
		subs, err := e.subs.List()
		if err != nil {
			return err
		}
		if err := export.WriteCSV(f, subs); err != nil {
			return err
		}
		fmt.Printf("\n  Exported %d subscriptions to %s\n\n", len(subs), path)

	case "json":
		subs, err := e.subs.List()
		if err != nil {
			return err
		}
		budgets, err := e.budgets.List()
		if err != nil {
			return err
		}
		cats, err := e.store.Categories()
		if err != nil {
			return err
		}
		settings, err := e.settings.Get()
		if err != nil {
			return err
		}
		dump := export.Dump{
			Subscriptions: subs,
			Budgets:       budgets,
			Categories:    cats,
			Settings:      settings,
		}
		if err := export.WriteJSON(f, dump); err != nil {
			return err
		}
		fmt.Printf("\n  Exported all collections to %s\n\n", path)

	default:
		return fmt.Errorf("unknown export format %q (want csv or json)", format)
	}
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	dump, err := export.ReadJSON(f)
	if err != nil {
		return err
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	if err := export.Restore(e.store, dump); err != nil {
		return err
	}

	fmt.Printf("\n  Imported %d subscriptions, %d budgets, %d categories\n\n",
		len(dump.Subscriptions), len(dump.Budgets), len(dump.Categories))
	return nil
}
