package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/subtrack/internal/config"
	"github.com/theirongolddev/subtrack/internal/service"
	"github.com/theirongolddev/subtrack/internal/store"
)

var (
	flagDataDir  string
	flagCurrency string
	flagAll      bool
)

var rootCmd = &cobra.Command{
	Use:   "subtrack",
	Short: "Subscription and budget tracker",
	Long:  "Track recurring subscriptions, billing cycles, categories, and budgets from your terminal.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVarP(&flagCurrency, "currency", "c", "", "Override display currency")
	rootCmd.PersistentFlags().BoolVarP(&flagAll, "all", "a", false, "Include inactive subscriptions")
}

// env bundles the open store and the services built over it. Every
// command opens one env, uses it, and closes it.
type env struct {
	cfg        config.Config
	store      *store.Store
	subs       *service.Subscriptions
	budgets    *service.Budgets
	categories *service.Categories
	settings   *service.SettingsSvc
}

// openEnv loads config and opens the database, applying flag overrides.
func openEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}

	st, err := store.Open(config.DBPath(cfg))
	if err != nil {
		return nil, err
	}

	return &env{
		cfg:        cfg,
		store:      st,
		subs:       service.NewSubscriptions(st),
		budgets:    service.NewBudgets(st),
		categories: service.NewCategories(st),
		settings:   service.NewSettings(st),
	}, nil
}

func (e *env) close() {
	_ = e.store.Close()
}

// displayCurrency resolves the currency used for aggregate views.
func (e *env) displayCurrency() (string, error) {
	if flagCurrency != "" {
		return flagCurrency, nil
	}
	settings, err := e.settings.Get()
	if err != nil {
		return "", err
	}
	return settings.DefaultCurrency, nil
}
