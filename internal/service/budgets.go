package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/subtrack/internal/budget"
	"github.com/theirongolddev/subtrack/internal/model"
)

// Budgets manages the budget collection.
type Budgets struct {
	store Storage
	now   func() time.Time
}

// NewBudgets creates a budget service over the given store.
func NewBudgets(store Storage) *Budgets {
	return &Budgets{store: store, now: time.Now}
}

// List returns all budgets.
func (b *Budgets) List() ([]model.Budget, error) {
	return b.store.Budgets()
}

// Create validates and stores a new budget. The period window is derived
// from the budget type here and is immutable afterwards; a zero start
// means "from now".
func (b *Budgets) Create(bud model.Budget) (model.Budget, error) {
	if bud.Period.Start.IsZero() {
		bud.Period.Start = b.now()
	}
	bud.Period = budget.PeriodFor(bud.Type, bud.Period.Start)

	if err := validateBudget(bud); err != nil {
		return model.Budget{}, err
	}

	bud.ID = uuid.NewString()
	budgets, err := b.store.Budgets()
	if err != nil {
		return model.Budget{}, err
	}
	budgets = append(budgets, bud)
	if err := b.store.SaveBudgets(budgets); err != nil {
		return model.Budget{}, err
	}
	return bud, nil
}

// Update validates and replaces an existing budget, keeping its original
// period window.
func (b *Budgets) Update(bud model.Budget) (model.Budget, error) {
	budgets, err := b.store.Budgets()
	if err != nil {
		return model.Budget{}, err
	}
	for i, existing := range budgets {
		if existing.ID != bud.ID {
			continue
		}
		bud.Period = existing.Period
		if err := validateBudget(bud); err != nil {
			return model.Budget{}, err
		}
		budgets[i] = bud
		if err := b.store.SaveBudgets(budgets); err != nil {
			return model.Budget{}, err
		}
		return bud, nil
	}
	return model.Budget{}, fmt.Errorf("budget %s: %w", bud.ID, ErrNotFound)
}

// Delete removes a budget.
func (b *Budgets) Delete(id string) error {
	budgets, err := b.store.Budgets()
	if err != nil {
		return err
	}
	for i, bud := range budgets {
		if bud.ID == id {
			budgets = append(budgets[:i], budgets[i+1:]...)
			return b.store.SaveBudgets(budgets)
		}
	}
	return fmt.Errorf("budget %s: %w", id, ErrNotFound)
}

// Status evaluates one budget against the current subscriptions.
func (b *Budgets) Status(bud model.Budget) (model.BudgetStatus, error) {
	subs, err := b.store.Subscriptions()
	if err != nil {
		return model.BudgetStatus{}, err
	}
	spent := budget.SpendingFor(bud, subs)
	return model.BudgetStatus{
		Budget:      bud,
		Spent:       spent,
		PercentUsed: budget.PercentageUsed(spent, bud.Amount),
		Level:       budget.LevelFor(spent, bud),
	}, nil
}
