package service

import (
	"fmt"
	"time"

	"github.com/theirongolddev/subtrack/internal/model"
)

// SettingsSvc manages the single persisted settings record.
type SettingsSvc struct {
	store Storage
	now   func() time.Time
}

// NewSettings creates a settings service over the given store.
func NewSettings(store Storage) *SettingsSvc {
	return &SettingsSvc{store: store, now: time.Now}
}

// Get returns the current settings, applying defaults when unset.
func (s *SettingsSvc) Get() (model.Settings, error) {
	return s.store.Settings()
}

// Save persists the settings record.
func (s *SettingsSvc) Save(settings model.Settings) error {
	if len(settings.DefaultCurrency) != 3 {
		return &ValidationError{Messages: []string{
			fmt.Sprintf("default currency %q is not a 3-letter code", settings.DefaultCurrency),
		}}
	}
	return s.store.SaveSettings(settings)
}

// UpdateRates replaces the rate table for one base currency, keeping all
// other bases intact, and stamps the update time.
func (s *SettingsSvc) UpdateRates(base string, rates map[string]float64) error {
	settings, err := s.store.Settings()
	if err != nil {
		return err
	}
	if settings.Rates == nil {
		settings.Rates = model.RateTable{}
	}
	settings.Rates[base] = rates
	settings.RatesUpdatedAt = s.now()
	return s.store.SaveSettings(settings)
}
