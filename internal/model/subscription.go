// Package model defines domain types for subscriptions, budgets, and settings.
package model

import "time"

// CycleType identifies a billing recurrence rule.
type CycleType string

// Supported billing cycle types.
const (
	CycleDaily     CycleType = "daily"
	CycleWeekly    CycleType = "weekly"
	CycleMonthly   CycleType = "monthly"
	CycleQuarterly CycleType = "quarterly"
	CycleYearly    CycleType = "yearly"
	CycleCustom    CycleType = "custom"
)

// KnownCycle reports whether t is one of the supported cycle types.
func KnownCycle(t CycleType) bool {
	switch t {
	case CycleDaily, CycleWeekly, CycleMonthly, CycleQuarterly, CycleYearly, CycleCustom:
		return true
	}
	return false
}

// BillingCycle describes how often a subscription charges.
// CustomDays is meaningful only when Type is CycleCustom.
type BillingCycle struct {
	Type       CycleType `json:"type"`
	CustomDays int       `json:"customDays,omitempty"`
}

// Payment is one entry in a subscription's append-only payment history.
type Payment struct {
	Date     time.Time `json:"date"`
	Amount   float64   `json:"amount"`
	Currency string    `json:"currency"`
}

// Subscription is a recurring charge tracked by the user.
type Subscription struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Cost            float64      `json:"cost"`
	Currency        string       `json:"currency"`
	Cycle           BillingCycle `json:"billingCycle"`
	NextBillingDate time.Time    `json:"nextBillingDate"`
	Category        string       `json:"category"`
	Active          bool         `json:"isActive"`
	ReminderDays    []int        `json:"reminderDays,omitempty"`
	Notes           string       `json:"notes,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
	History         []Payment    `json:"history,omitempty"`
}

// Category groups subscriptions for filtering and budget scoping.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"` // "#RRGGBB"
	Icon      string    `json:"icon,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
