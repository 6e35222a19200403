// Package budget evaluates spending against budget definitions.
package budget

import (
	"time"

	"github.com/theirongolddev/subtrack/internal/model"
)

// infoFraction of the alert threshold at which a budget turns informational.
const infoFraction = 0.75

// SpendingFor sums committed spend for a budget over its period: every
// history payment dated inside the window, plus each active subscription's
// cost once when its next billing date also falls inside the window (an
// upcoming unpaid renewal counts as committed spend). A payment and a
// same-period upcoming renewal are both counted.
func SpendingFor(b model.Budget, subs []model.Subscription) float64 {
	var total float64
	for _, s := range subs {
		if b.Category != "" && s.Category != b.Category {
			continue
		}
		for _, p := range s.History {
			if b.Period.Contains(p.Date) {
				total += p.Amount
			}
		}
		if s.Active && b.Period.Contains(s.NextBillingDate) {
			total += s.Cost
		}
	}
	return total
}

// PercentageUsed returns spent as a percentage of amount. A zero amount
// yields 0 rather than dividing. The result is not clamped to 100; display
// layers clamp for progress-bar width.
func PercentageUsed(spent, amount float64) float64 {
	if amount == 0 {
		return 0
	}
	return spent / amount * 100
}

// LevelFor grades consumed spend against the budget's alert threshold.
// Branches are checked highest severity first so ties resolve upward.
func LevelFor(spent float64, b model.Budget) model.AlertLevel {
	pct := PercentageUsed(spent, b.Amount)
	switch {
	case pct >= 100:
		return model.AlertDanger
	case pct >= b.AlertThreshold:
		return model.AlertWarning
	case pct >= infoFraction*b.AlertThreshold:
		return model.AlertInfo
	default:
		return model.AlertSuccess
	}
}

// ShouldAlert reports whether spend has crossed the alert threshold.
func ShouldAlert(spent float64, b model.Budget) bool {
	return PercentageUsed(spent, b.Amount) >= b.AlertThreshold
}

// PeriodFor derives a budget's fixed window from its type. Monthly and
// category budgets cover one calendar month from start, yearly budgets one
// year. The window never rolls over after creation.
func PeriodFor(t model.BudgetType, start time.Time) model.Period {
	months := 1
	if t == model.BudgetYearly {
		months = 12
	}
	return model.Period{Start: start, End: addMonthsClamped(start, months)}
}

// addMonthsClamped mirrors the billing engine's month arithmetic so budget
// windows and renewal dates agree on end-of-month behavior.
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	last := time.Date(first.Year(), first.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}
