package tui

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/subtrack/internal/model"
)

// formValues backs the add-subscription form inputs.
type formValues struct {
	name       string
	cost       string
	currency   string
	cycle      string
	customDays string
	next       string
	category   string
}

// openForm builds and activates the huh form for a new subscription.
func (a App) openForm() (tea.Model, tea.Cmd) {
	vals := &formValues{
		currency: a.settings.DefaultCurrency,
		cycle:    string(model.CycleMonthly),
		next:     time.Now().Format("2006-01-02"),
	}

	catOptions := []huh.Option[string]{huh.NewOption("(none)", "")}
	for _, c := range a.cats {
		catOptions = append(catOptions, huh.NewOption(c.Name, c.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&vals.name),
			huh.NewInput().
				Title("Cost per cycle").
				Value(&vals.cost).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(s, 64)
					if err != nil || v <= 0 {
						return fmt.Errorf("enter a positive number")
					}
					return nil
				}),
			huh.NewInput().
				Title("Currency").
				CharLimit(3).
				Value(&vals.currency),
			huh.NewSelect[string]().
				Title("Billing cycle").
				Options(
					huh.NewOption("Monthly", string(model.CycleMonthly)),
					huh.NewOption("Yearly", string(model.CycleYearly)),
					huh.NewOption("Weekly", string(model.CycleWeekly)),
					huh.NewOption("Quarterly", string(model.CycleQuarterly)),
					huh.NewOption("Daily", string(model.CycleDaily)),
					huh.NewOption("Custom interval", string(model.CycleCustom)),
				).
				Value(&vals.cycle),
			huh.NewInput().
				Title("Custom interval (days)").
				Placeholder("only for custom cycles").
				Value(&vals.customDays),
			huh.NewInput().
				Title("Next billing date").
				Placeholder("YYYY-MM-DD").
				Value(&vals.next),
			huh.NewSelect[string]().
				Title("Category").
				Options(catOptions...).
				Value(&vals.category),
		),
	)

	a.form = form
	a.formVals = vals
	return a, form.Init()
}

// updateForm routes input to the form and commits on completion.
func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		a.form = nil
		a.formVals = nil
		return a, nil
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State != huh.StateCompleted {
		return a, cmd
	}

	vals := a.formVals
	a.form = nil
	a.formVals = nil

	return a, func() tea.Msg {
		cost, err := strconv.ParseFloat(vals.cost, 64)
		if err != nil {
			return ErrMsg{fmt.Errorf("parsing cost: %w", err)}
		}
		next, err := time.Parse("2006-01-02", vals.next)
		if err != nil {
			return ErrMsg{fmt.Errorf("parsing next billing date: %w", err)}
		}
		customDays := 0
		if vals.cycle == string(model.CycleCustom) {
			customDays, err = strconv.Atoi(vals.customDays)
			if err != nil {
				return ErrMsg{fmt.Errorf("parsing custom interval: %w", err)}
			}
		}

		sub, err := a.svc.Subs.Create(model.Subscription{
			Name:     vals.name,
			Cost:     cost,
			Currency: vals.currency,
			Cycle: model.BillingCycle{
				Type:       model.CycleType(vals.cycle),
				CustomDays: customDays,
			},
			NextBillingDate: next,
			Category:        vals.category,
			Active:          true,
		})
		if err != nil {
			return ErrMsg{err}
		}
		return StatusMsg{Text: "added " + sub.Name}
	}
}
