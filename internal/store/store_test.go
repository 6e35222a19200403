package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/theirongolddev/subtrack/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "subtrack.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenCreatesMissingDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "subtrack.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open with missing parent dirs: %v", err)
	}
	defer s.Close()
}

func TestSubscriptionsRoundTrip(t *testing.T) {
	s := openTestStore(t)

	subs, err := s.Subscriptions()
	if err != nil {
		t.Fatalf("Subscriptions on empty store: %v", err)
	}
	if len(subs) != 0 {
		t.Fatalf("empty store returned %d subscriptions, want 0", len(subs))
	}

	next := time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)
	want := []model.Subscription{
		{
			ID:              "abc-123",
			Name:            "Netflix",
			Cost:            15.99,
			Currency:        "USD",
			Cycle:           model.BillingCycle{Type: model.CycleMonthly},
			NextBillingDate: next,
			Category:        "Entertainment",
			Active:          true,
			History: []model.Payment{
				{Date: next.AddDate(0, -1, 0), Amount: 15.99, Currency: "USD"},
			},
		},
	}
	if err := s.SaveSubscriptions(want); err != nil {
		t.Fatalf("SaveSubscriptions: %v", err)
	}

	got, err := s.Subscriptions()
	if err != nil {
		t.Fatalf("Subscriptions: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d subscriptions, want 1", len(got))
	}
	if got[0].ID != "abc-123" || got[0].Name != "Netflix" || got[0].Cost != 15.99 {
		t.Fatalf("round-trip mismatch: %+v", got[0])
	}
	if !got[0].NextBillingDate.Equal(next) {
		t.Fatalf("NextBillingDate = %s, want %s", got[0].NextBillingDate, next)
	}
	if len(got[0].History) != 1 || got[0].History[0].Amount != 15.99 {
		t.Fatalf("history did not survive round-trip: %+v", got[0].History)
	}
}

func TestSaveOverwritesCollection(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveBudgets([]model.Budget{{ID: "b1", Amount: 100}, {ID: "b2", Amount: 50}}); err != nil {
		t.Fatalf("SaveBudgets: %v", err)
	}
	if err := s.SaveBudgets([]model.Budget{{ID: "b2", Amount: 75}}); err != nil {
		t.Fatalf("SaveBudgets second write: %v", err)
	}

	budgets, err := s.Budgets()
	if err != nil {
		t.Fatalf("Budgets: %v", err)
	}
	if len(budgets) != 1 || budgets[0].ID != "b2" || budgets[0].Amount != 75 {
		t.Fatalf("second save did not replace collection: %+v", budgets)
	}
}

func TestSettingsDefaultsWhenMissing(t *testing.T) {
	s := openTestStore(t)

	settings, err := s.Settings()
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if settings.DefaultCurrency != "USD" {
		t.Fatalf("default currency = %q, want USD", settings.DefaultCurrency)
	}
	if !settings.NotifyRenewals || !settings.NotifyBudgets {
		t.Fatal("notification defaults should be enabled")
	}

	settings.DefaultCurrency = "EUR"
	settings.Theme = "catppuccin-mocha"
	if err := s.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	got, err := s.Settings()
	if err != nil {
		t.Fatalf("Settings after save: %v", err)
	}
	if got.DefaultCurrency != "EUR" || got.Theme != "catppuccin-mocha" {
		t.Fatalf("settings round-trip mismatch: %+v", got)
	}
}

func TestCollectionsAreIndependent(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveCategories([]model.Category{{ID: "c1", Name: "Music"}}); err != nil {
		t.Fatalf("SaveCategories: %v", err)
	}

	subs, err := s.Subscriptions()
	if err != nil {
		t.Fatalf("Subscriptions: %v", err)
	}
	if len(subs) != 0 {
		t.Fatalf("writing categories leaked into subscriptions: %+v", subs)
	}
}

func TestFutureSchemaRejected(t *testing.T) {
	s := openTestStore(t)

	_, err := s.db.Exec(`INSERT OR REPLACE INTO collections (name, schema_version, data, updated_at)
		VALUES (?, ?, ?, ?)`, colSubscriptions, SchemaVersion+1, "[]", "2024-01-01T00:00:00Z")
	if err != nil {
		t.Fatalf("seeding future-version row: %v", err)
	}

	if _, err := s.Subscriptions(); !errors.Is(err, ErrFutureSchema) {
		t.Fatalf("reading future-version collection err = %v, want ErrFutureSchema", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subtrack.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.SaveCategories([]model.Category{{ID: "c1", Name: "News"}}); err != nil {
		t.Fatalf("SaveCategories: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	cats, err := s2.Categories()
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(cats) != 1 || cats[0].Name != "News" {
		t.Fatalf("data lost across reopen: %+v", cats)
	}
}
