package model

import "time"

// BudgetType identifies what window a budget's cap applies to.
type BudgetType string

// Supported budget types.
const (
	BudgetMonthly  BudgetType = "monthly"
	BudgetYearly   BudgetType = "yearly"
	BudgetCategory BudgetType = "category"
)

// KnownBudgetType reports whether t is a supported budget type.
func KnownBudgetType(t BudgetType) bool {
	return t == BudgetMonthly || t == BudgetYearly || t == BudgetCategory
}

// Period is a fixed date window. End is derived from the budget type at
// creation and never rolls over.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether d falls within the period, both ends inclusive.
func (p Period) Contains(d time.Time) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

// Budget caps spending over a period, optionally scoped to one category.
type Budget struct {
	ID             string     `json:"id"`
	Type           BudgetType `json:"type"`
	Amount         float64    `json:"amount"`
	Currency       string     `json:"currency"`
	Category       string     `json:"category,omitempty"` // empty = all categories
	Period         Period     `json:"period"`
	AlertThreshold float64    `json:"alertThreshold"` // percent, 0-100
	Active         bool       `json:"isActive"`
}

// AlertLevel grades how much of a budget has been consumed.
type AlertLevel string

// Alert levels, lowest to highest severity.
const (
	AlertSuccess AlertLevel = "success"
	AlertInfo    AlertLevel = "info"
	AlertWarning AlertLevel = "warning"
	AlertDanger  AlertLevel = "danger"
)
