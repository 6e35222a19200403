package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/subtrack/internal/model"
)

// memStore is an in-memory Storage for service tests.
type memStore struct {
	subs     []model.Subscription
	budgets  []model.Budget
	cats     []model.Category
	settings *model.Settings
	failSave bool
}

var errSaveFailed = errors.New("save failed")

func (m *memStore) Subscriptions() ([]model.Subscription, error) { return m.subs, nil }
func (m *memStore) SaveSubscriptions(subs []model.Subscription) error {
	if m.failSave {
		return errSaveFailed
	}
	m.subs = subs
	return nil
}
func (m *memStore) Budgets() ([]model.Budget, error) { return m.budgets, nil }
func (m *memStore) SaveBudgets(budgets []model.Budget) error {
	if m.failSave {
		return errSaveFailed
	}
	m.budgets = budgets
	return nil
}
func (m *memStore) Categories() ([]model.Category, error) { return m.cats, nil }
func (m *memStore) SaveCategories(cats []model.Category) error {
	if m.failSave {
		return errSaveFailed
	}
	m.cats = cats
	return nil
}
func (m *memStore) Settings() (model.Settings, error) {
	if m.settings == nil {
		return model.DefaultSettings(), nil
	}
	return *m.settings, nil
}
func (m *memStore) SaveSettings(s model.Settings) error {
	if m.failSave {
		return errSaveFailed
	}
	m.settings = &s
	return nil
}

func fixedNow(t *testing.T) func() time.Time {
	t.Helper()
	return func() time.Time {
		return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	}
}

func validSub() model.Subscription {
	return model.Subscription{
		Name:            "Netflix",
		Cost:            15.99,
		Currency:        "USD",
		Cycle:           model.BillingCycle{Type: model.CycleMonthly},
		NextBillingDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		Category:        "Entertainment",
		Active:          true,
	}
}

func TestSubscriptionCreateAssignsIdentity(t *testing.T) {
	m := &memStore{}
	svc := NewSubscriptions(m)
	svc.now = fixedNow(t)

	created, err := svc.Create(validSub())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("Create did not assign an id")
	}
	if !created.CreatedAt.Equal(svc.now()) || !created.UpdatedAt.Equal(svc.now()) {
		t.Fatalf("timestamps = %s / %s, want %s", created.CreatedAt, created.UpdatedAt, svc.now())
	}
	if len(m.subs) != 1 {
		t.Fatalf("store has %d subscriptions, want 1", len(m.subs))
	}
}

func TestSubscriptionCreateAggregatesValidationErrors(t *testing.T) {
	svc := NewSubscriptions(&memStore{})

	bad := model.Subscription{
		Name:     "",
		Cost:     -5,
		Currency: "DOLLARS",
		Cycle:    model.BillingCycle{Type: "fortnightly"},
	}
	_, err := svc.Create(bad)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Create err = %v, want *ValidationError", err)
	}
	if len(verr.Messages) < 4 {
		t.Fatalf("got %d validation messages, want all failures collected: %v", len(verr.Messages), verr.Messages)
	}
	for _, want := range []string{"name", "cost", "currency", "cycle"} {
		if !strings.Contains(verr.Error(), want) {
			t.Fatalf("validation error %q missing %q", verr.Error(), want)
		}
	}
}

func TestSubscriptionValidationRejectsCustomDaysMismatch(t *testing.T) {
	svc := NewSubscriptions(&memStore{})

	custom := validSub()
	custom.Cycle = model.BillingCycle{Type: model.CycleCustom}
	if _, err := svc.Create(custom); err == nil {
		t.Fatal("custom cycle without interval accepted")
	}

	monthly := validSub()
	monthly.Cycle = model.BillingCycle{Type: model.CycleMonthly, CustomDays: 14}
	if _, err := svc.Create(monthly); err == nil {
		t.Fatal("monthly cycle with customDays accepted")
	}
}

func TestSubscriptionCreateWritesNothingOnValidationFailure(t *testing.T) {
	m := &memStore{}
	svc := NewSubscriptions(m)

	bad := validSub()
	bad.Cost = 0
	if _, err := svc.Create(bad); err == nil {
		t.Fatal("zero cost accepted")
	}
	if len(m.subs) != 0 {
		t.Fatalf("store has %d subscriptions after failed create, want 0", len(m.subs))
	}
}

func TestSubscriptionUpdatePreservesHistoryAndCreatedAt(t *testing.T) {
	m := &memStore{}
	svc := NewSubscriptions(m)
	svc.now = fixedNow(t)

	created, err := svc.Create(validSub())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	m.subs[0].History = []model.Payment{{Date: svc.now(), Amount: 15.99, Currency: "USD"}}

	changed := created
	changed.Name = "Netflix Premium"
	changed.Cost = 22.99
	changed.History = nil
	changed.CreatedAt = time.Time{}

	updated, err := svc.Update(changed)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Netflix Premium" || updated.Cost != 22.99 {
		t.Fatalf("update not applied: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("CreatedAt = %s, want preserved %s", updated.CreatedAt, created.CreatedAt)
	}
	if len(updated.History) != 1 {
		t.Fatalf("history len = %d, want preserved 1", len(updated.History))
	}
}

func TestSubscriptionUpdateUnknownID(t *testing.T) {
	svc := NewSubscriptions(&memStore{})

	sub := validSub()
	sub.ID = "missing"
	if _, err := svc.Update(sub); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update err = %v, want ErrNotFound", err)
	}
}

func TestSubscriptionDelete(t *testing.T) {
	m := &memStore{}
	svc := NewSubscriptions(m)

	created, err := svc.Create(validSub())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(m.subs) != 0 {
		t.Fatalf("store has %d subscriptions after delete, want 0", len(m.subs))
	}
	if err := svc.Delete(created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestSubscriptionRecordPaymentAdvancesOneCycle(t *testing.T) {
	m := &memStore{}
	svc := NewSubscriptions(m)
	svc.now = fixedNow(t)

	created, err := svc.Create(validSub())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	paid, err := svc.RecordPayment(created.ID)
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	if len(paid.History) != 1 {
		t.Fatalf("history len = %d, want 1", len(paid.History))
	}
	if want := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC); !paid.NextBillingDate.Equal(want) {
		t.Fatalf("NextBillingDate = %s, want %s", paid.NextBillingDate, want)
	}
	if !m.subs[0].NextBillingDate.Equal(paid.NextBillingDate) {
		t.Fatal("advanced date was not persisted")
	}
}

func TestFindByPrefix(t *testing.T) {
	m := &memStore{subs: []model.Subscription{
		{ID: "abcd1234-0000", Name: "One"},
		{ID: "abce5678-0000", Name: "Two"},
	}}
	svc := NewSubscriptions(m)

	got, err := svc.FindByPrefix("abcd1234-0000")
	if err != nil || got.Name != "One" {
		t.Fatalf("exact id lookup = (%+v, %v), want One", got, err)
	}

	got, err = svc.FindByPrefix("abce")
	if err != nil || got.Name != "Two" {
		t.Fatalf("unique prefix lookup = (%+v, %v), want Two", got, err)
	}

	if _, err := svc.FindByPrefix("abc"); err == nil {
		t.Fatal("3-char prefix accepted, want rejection (minimum 4)")
	}

	m.subs = append(m.subs, model.Subscription{ID: "abce9999-0000", Name: "Three"})
	if _, err := svc.FindByPrefix("abce"); err == nil {
		t.Fatal("ambiguous prefix accepted")
	}

	if _, err := svc.FindByPrefix("zzzz"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown prefix err = %v, want ErrNotFound", err)
	}
}

func TestBudgetCreateDerivesPeriod(t *testing.T) {
	m := &memStore{}
	svc := NewBudgets(m)
	svc.now = fixedNow(t)

	created, err := svc.Create(model.Budget{
		Type:           model.BudgetMonthly,
		Amount:         100,
		Currency:       "USD",
		AlertThreshold: 80,
		Active:         true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !created.Period.Start.Equal(svc.now()) {
		t.Fatalf("period start = %s, want now %s", created.Period.Start, svc.now())
	}
	if want := svc.now().AddDate(0, 1, 0); !created.Period.End.Equal(want) {
		t.Fatalf("period end = %s, want %s", created.Period.End, want)
	}
	if created.ID == "" {
		t.Fatal("Create did not assign an id")
	}
}

func TestBudgetCreateValidation(t *testing.T) {
	svc := NewBudgets(&memStore{})

	_, err := svc.Create(model.Budget{
		Type:           "weekly",
		Amount:         -1,
		Currency:       "US",
		AlertThreshold: 150,
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Create err = %v, want *ValidationError", err)
	}
	if len(verr.Messages) < 4 {
		t.Fatalf("got %d validation messages, want all failures: %v", len(verr.Messages), verr.Messages)
	}
}

func TestBudgetCategoryTypeNeedsCategory(t *testing.T) {
	svc := NewBudgets(&memStore{})

	_, err := svc.Create(model.Budget{
		Type:           model.BudgetCategory,
		Amount:         50,
		Currency:       "USD",
		AlertThreshold: 80,
	})
	if err == nil {
		t.Fatal("category budget without category accepted")
	}
}

func TestBudgetUpdateKeepsPeriod(t *testing.T) {
	m := &memStore{}
	svc := NewBudgets(m)
	svc.now = fixedNow(t)

	created, err := svc.Create(model.Budget{
		Type: model.BudgetMonthly, Amount: 100, Currency: "USD", AlertThreshold: 80,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	changed := created
	changed.Amount = 150
	changed.Period = model.Period{} // callers cannot move the window

	updated, err := svc.Update(changed)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Amount != 150 {
		t.Fatalf("amount = %.0f, want 150", updated.Amount)
	}
	if !updated.Period.Start.Equal(created.Period.Start) || !updated.Period.End.Equal(created.Period.End) {
		t.Fatalf("period changed on update: %+v, want %+v", updated.Period, created.Period)
	}
}

func TestCategoriesListSeedsDefaults(t *testing.T) {
	m := &memStore{}
	svc := NewCategories(m)
	svc.now = fixedNow(t)

	cats, err := svc.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(cats) != len(DefaultCategories) {
		t.Fatalf("seeded %d categories, want %d", len(cats), len(DefaultCategories))
	}
	for _, c := range cats {
		if c.ID == "" || c.CreatedAt.IsZero() {
			t.Fatalf("seeded category missing identity: %+v", c)
		}
	}

	// Second call must not re-seed.
	again, err := svc.List()
	if err != nil {
		t.Fatalf("List again: %v", err)
	}
	if len(again) != len(cats) {
		t.Fatalf("second List returned %d categories, want %d", len(again), len(cats))
	}
}

func TestCategoryCreateRejectsDuplicateName(t *testing.T) {
	svc := NewCategories(&memStore{})

	if _, err := svc.Create(model.Category{Name: "Gaming", Color: "#D14D41"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(model.Category{Name: "Gaming", Color: "#4385BE"}); err == nil {
		t.Fatal("duplicate category name accepted")
	}
}

func TestCategoryCreateValidatesColor(t *testing.T) {
	svc := NewCategories(&memStore{})

	for _, color := range []string{"", "red", "#FFF", "#GGGGGG", "D14D41"} {
		if _, err := svc.Create(model.Category{Name: "X" + color, Color: color}); err == nil {
			t.Fatalf("color %q accepted, want rejection", color)
		}
	}
}

func TestSettingsSaveValidatesCurrency(t *testing.T) {
	svc := NewSettings(&memStore{})

	s := model.DefaultSettings()
	s.DefaultCurrency = "EURO"
	if err := svc.Save(s); err == nil {
		t.Fatal("4-letter currency accepted")
	}

	s.DefaultCurrency = "EUR"
	if err := svc.Save(s); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func TestUpdateRatesKeepsOtherBases(t *testing.T) {
	m := &memStore{}
	svc := NewSettings(m)
	svc.now = fixedNow(t)

	if err := svc.UpdateRates("USD", map[string]float64{"EUR": 0.92}); err != nil {
		t.Fatalf("UpdateRates USD: %v", err)
	}
	if err := svc.UpdateRates("EUR", map[string]float64{"USD": 1.09}); err != nil {
		t.Fatalf("UpdateRates EUR: %v", err)
	}

	got, err := svc.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Rates["USD"]["EUR"] != 0.92 || got.Rates["EUR"]["USD"] != 1.09 {
		t.Fatalf("rate table = %+v, want both bases kept", got.Rates)
	}
	if !got.RatesUpdatedAt.Equal(svc.now()) {
		t.Fatalf("RatesUpdatedAt = %s, want %s", got.RatesUpdatedAt, svc.now())
	}
}

func TestDispatcher(t *testing.T) {
	m := &memStore{}
	subs := NewSubscriptions(m)
	subs.now = fixedNow(t)
	d := NewDispatcher(subs)

	created, err := subs.Create(validSub())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	paid, err := d.Dispatch(ActionRecordPayment, created.ID)
	if err != nil {
		t.Fatalf("Dispatch record payment: %v", err)
	}
	if len(paid.History) != 1 {
		t.Fatalf("history len = %d, want 1", len(paid.History))
	}

	paused, err := d.Dispatch(ActionDeactivate, created.ID)
	if err != nil {
		t.Fatalf("Dispatch deactivate: %v", err)
	}
	if paused.Active {
		t.Fatal("subscription still active after deactivate")
	}

	resumed, err := d.Dispatch(ActionActivate, created.ID)
	if err != nil {
		t.Fatalf("Dispatch activate: %v", err)
	}
	if !resumed.Active {
		t.Fatal("subscription not active after activate")
	}

	if _, err := d.Dispatch(ActionDelete, created.ID); err != nil {
		t.Fatalf("Dispatch delete: %v", err)
	}
	if len(m.subs) != 0 {
		t.Fatalf("store has %d subscriptions after delete, want 0", len(m.subs))
	}

	if _, err := d.Dispatch(Action(99), "x"); err == nil {
		t.Fatal("unknown action dispatched without error")
	}
}
