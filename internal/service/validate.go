package service

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/subtrack/internal/model"
)

// ValidationError aggregates every failed check for a create or update.
// Nothing commits while any message is present.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// errOrNil returns nil when no messages were collected.
func errOrNil(msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	return &ValidationError{Messages: msgs}
}

func validateSubscription(sub model.Subscription) error {
	var msgs []string
	if strings.TrimSpace(sub.Name) == "" {
		msgs = append(msgs, "name is required")
	}
	if sub.Cost <= 0 {
		msgs = append(msgs, "cost must be positive")
	}
	if len(sub.Currency) != 3 {
		msgs = append(msgs, "currency must be a 3-letter ISO 4217 code")
	}
	if !model.KnownCycle(sub.Cycle.Type) {
		msgs = append(msgs, fmt.Sprintf("unknown billing cycle %q", sub.Cycle.Type))
	}
	if sub.Cycle.Type == model.CycleCustom && sub.Cycle.CustomDays <= 0 {
		msgs = append(msgs, "custom cycle requires a positive day interval")
	}
	if sub.Cycle.Type != model.CycleCustom && sub.Cycle.CustomDays != 0 {
		msgs = append(msgs, "customDays is only valid for custom cycles")
	}
	if sub.NextBillingDate.IsZero() {
		msgs = append(msgs, "next billing date is required")
	}
	for _, d := range sub.ReminderDays {
		if d < 0 {
			msgs = append(msgs, "reminder offsets must not be negative")
			break
		}
	}
	return errOrNil(msgs)
}

func validateBudget(b model.Budget) error {
	var msgs []string
	if !model.KnownBudgetType(b.Type) {
		msgs = append(msgs, fmt.Sprintf("unknown budget type %q", b.Type))
	}
	if b.Amount <= 0 {
		msgs = append(msgs, "amount must be positive")
	}
	if len(b.Currency) != 3 {
		msgs = append(msgs, "currency must be a 3-letter ISO 4217 code")
	}
	if b.AlertThreshold < 0 || b.AlertThreshold > 100 {
		msgs = append(msgs, "alert threshold must be between 0 and 100")
	}
	if b.Type == model.BudgetCategory && b.Category == "" {
		msgs = append(msgs, "category budgets need a category")
	}
	if b.Period.Start.IsZero() {
		msgs = append(msgs, "period start is required")
	}
	return errOrNil(msgs)
}

func validateCategory(c model.Category) error {
	var msgs []string
	if strings.TrimSpace(c.Name) == "" {
		msgs = append(msgs, "name is required")
	}
	if !validHexColor(c.Color) {
		msgs = append(msgs, fmt.Sprintf("color %q is not a #RRGGBB value", c.Color))
	}
	return errOrNil(msgs)
}

func validHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
