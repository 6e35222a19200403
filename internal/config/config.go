// Package config loads and saves the subtrack TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all subtrack configuration.
type Config struct {
	General       GeneralConfig       `toml:"general"`
	Appearance    AppearanceConfig    `toml:"appearance"`
	Notifications NotificationsConfig `toml:"notifications"`
	Rates         RatesConfig         `toml:"rates"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DefaultCurrency string `toml:"default_currency"`
	RenewalHorizon  int    `toml:"renewal_horizon_days"`
	DataDir         string `toml:"data_dir,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// NotificationsConfig holds reminder watcher settings.
type NotificationsConfig struct {
	Enabled             bool `toml:"enabled"`
	DefaultReminderDays int  `toml:"default_reminder_days"`
	IntervalMinutes     int  `toml:"interval_minutes"`
}

// RatesConfig holds exchange-rate fetch settings.
type RatesConfig struct {
	BaseURL    string `toml:"base_url,omitempty"`
	AutoUpdate bool   `toml:"auto_update"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultCurrency: "USD",
			RenewalHorizon:  30,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Notifications: NotificationsConfig{
			Enabled:             true,
			DefaultReminderDays: 3,
			IntervalMinutes:     60,
		},
		Rates: RatesConfig{
			AutoUpdate: true,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "subtrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "subtrack")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the directory holding the database, honoring the
// config override and XDG_DATA_HOME.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "subtrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "subtrack")
}

// DBPath returns the full path to the SQLite database.
func DBPath(cfg Config) string {
	return filepath.Join(DataDir(cfg), "subtrack.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
