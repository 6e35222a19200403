package model

import "time"

// RateTable maps a base currency to per-currency conversion factors,
// e.g. RateTable["USD"]["EUR"] = 0.91.
type RateTable map[string]map[string]float64

// Settings is the single persisted preferences record.
type Settings struct {
	DefaultCurrency   string    `json:"defaultCurrency"`
	EnabledCurrencies []string  `json:"enabledCurrencies"`
	Rates             RateTable `json:"exchangeRates,omitempty"`
	RatesUpdatedAt    time.Time `json:"ratesUpdatedAt,omitzero"`
	NotifyRenewals    bool      `json:"notifyRenewals"`
	NotifyBudgets     bool      `json:"notifyBudgets"`
	Theme             string    `json:"theme,omitempty"`
}

// DefaultSettings returns the settings used before the user configures anything.
func DefaultSettings() Settings {
	return Settings{
		DefaultCurrency:   "USD",
		EnabledCurrencies: []string{"USD", "EUR", "GBP"},
		NotifyRenewals:    true,
		NotifyBudgets:     true,
	}
}
