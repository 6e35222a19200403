package stats

import (
	"math"
	"testing"
	"time"

	"github.com/theirongolddev/subtrack/internal/model"
)

func usdSettings() model.Settings {
	return model.Settings{
		DefaultCurrency: "USD",
		Rates: model.RateTable{
			"USD": {"EUR": 0.5},
		},
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestSummarize(t *testing.T) {
	now := mustDate(t, "2024-03-15")
	subs := []model.Subscription{
		{
			Name: "Netflix", Cost: 15, Currency: "USD", Active: true,
			Cycle:           model.BillingCycle{Type: model.CycleMonthly},
			NextBillingDate: mustDate(t, "2024-03-20"),
			Category:        "Entertainment",
		},
		{
			Name: "Domain", Cost: 120, Currency: "USD", Active: true,
			Cycle:           model.BillingCycle{Type: model.CycleYearly},
			NextBillingDate: mustDate(t, "2024-06-01"),
			Category:        "Cloud",
		},
		{
			Name: "Paused", Cost: 50, Currency: "USD", Active: false,
			Cycle:           model.BillingCycle{Type: model.CycleMonthly},
			NextBillingDate: mustDate(t, "2024-03-16"),
			Category:        "Entertainment",
		},
	}

	s := Summarize(subs, usdSettings(), now)

	if s.TotalCount != 3 || s.ActiveCount != 2 {
		t.Fatalf("counts = %d total / %d active, want 3 / 2", s.TotalCount, s.ActiveCount)
	}
	// Netflix 15 + Domain 120/12 = 25
	if math.Abs(s.MonthlyTotal-25) > 1e-9 {
		t.Fatalf("MonthlyTotal = %.2f, want 25.00", s.MonthlyTotal)
	}
	if math.Abs(s.YearlyTotal-300) > 1e-9 {
		t.Fatalf("YearlyTotal = %.2f, want 300.00", s.YearlyTotal)
	}
	if math.Abs(s.AverageMonthly-12.5) > 1e-9 {
		t.Fatalf("AverageMonthly = %.2f, want 12.50", s.AverageMonthly)
	}
	if s.MostExpensive != "Netflix" {
		t.Fatalf("MostExpensive = %q, want Netflix (highest monthly equivalent)", s.MostExpensive)
	}
	if s.NextRenewal != "Netflix" || s.NextRenewalIn != 5 {
		t.Fatalf("next renewal = %q in %d days, want Netflix in 5 (paused ignored)", s.NextRenewal, s.NextRenewalIn)
	}
	if s.CategoryCount != 2 {
		t.Fatalf("CategoryCount = %d, want 2", s.CategoryCount)
	}
}

func TestSummarizeConvertsCurrencies(t *testing.T) {
	now := mustDate(t, "2024-03-15")
	subs := []model.Subscription{
		{
			Name: "EU Service", Cost: 10, Currency: "EUR", Active: true,
			Cycle:           model.BillingCycle{Type: model.CycleMonthly},
			NextBillingDate: mustDate(t, "2024-04-01"),
		},
	}

	// USD->EUR is 0.5, so 10 EUR converts back as 20 USD.
	s := Summarize(subs, usdSettings(), now)
	if math.Abs(s.MonthlyTotal-20) > 1e-9 {
		t.Fatalf("MonthlyTotal = %.2f, want 20.00 via reverse rate", s.MonthlyTotal)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, usdSettings(), mustDate(t, "2024-03-15"))
	if s.TotalCount != 0 || s.MonthlyTotal != 0 || s.AverageMonthly != 0 {
		t.Fatalf("empty summary not zeroed: %+v", s)
	}
	if s.NextRenewal != "" {
		t.Fatalf("NextRenewal = %q, want empty", s.NextRenewal)
	}
}

func TestByCategory(t *testing.T) {
	subs := []model.Subscription{
		{Name: "Netflix", Cost: 15, Currency: "USD", Active: true, Category: "Entertainment",
			Cycle: model.BillingCycle{Type: model.CycleMonthly}},
		{Name: "Hulu", Cost: 10, Currency: "USD", Active: true, Category: "Entertainment",
			Cycle: model.BillingCycle{Type: model.CycleMonthly}},
		{Name: "Mystery", Cost: 5, Currency: "USD", Active: true, Category: "",
			Cycle: model.BillingCycle{Type: model.CycleMonthly}},
		{Name: "Paused", Cost: 99, Currency: "USD", Active: false, Category: "Cloud",
			Cycle: model.BillingCycle{Type: model.CycleMonthly}},
	}

	out := ByCategory(subs, usdSettings())
	if len(out) != 2 {
		t.Fatalf("got %d categories, want 2 (paused excluded)", len(out))
	}
	if out[0].Category != "Entertainment" || out[0].Count != 2 {
		t.Fatalf("top category = %+v, want Entertainment with 2 subs", out[0])
	}
	if math.Abs(out[0].MonthlyTotal-25) > 1e-9 {
		t.Fatalf("Entertainment total = %.2f, want 25.00", out[0].MonthlyTotal)
	}
	if out[1].Category != "Other" {
		t.Fatalf("uncategorized grouped as %q, want Other", out[1].Category)
	}
	wantShare := 25.0 / 30.0 * 100
	if math.Abs(out[0].SharePercent-wantShare) > 1e-9 {
		t.Fatalf("SharePercent = %.2f, want %.2f", out[0].SharePercent, wantShare)
	}
}

func TestUpcomingRenewals(t *testing.T) {
	now := mustDate(t, "2024-03-15")
	subs := []model.Subscription{
		{Name: "Soon", Active: true, NextBillingDate: mustDate(t, "2024-03-18")},
		{Name: "Overdue", Active: true, NextBillingDate: mustDate(t, "2024-03-10")},
		{Name: "Far", Active: true, NextBillingDate: mustDate(t, "2024-06-01")},
		{Name: "Paused", Active: false, NextBillingDate: mustDate(t, "2024-03-16")},
	}

	out := UpcomingRenewals(subs, now, 30)
	if len(out) != 2 {
		t.Fatalf("got %d renewals, want 2 (horizon and active filters)", len(out))
	}
	if out[0].Subscription.Name != "Overdue" || out[0].DaysLeft != -5 {
		t.Fatalf("first renewal = %s in %d days, want Overdue at -5", out[0].Subscription.Name, out[0].DaysLeft)
	}
	if out[1].Subscription.Name != "Soon" || out[1].DaysLeft != 3 {
		t.Fatalf("second renewal = %s in %d days, want Soon at 3", out[1].Subscription.Name, out[1].DaysLeft)
	}
}

func TestBudgetStatusesSortsBySeverity(t *testing.T) {
	period := model.Period{Start: mustDate(t, "2024-03-01"), End: mustDate(t, "2024-03-31")}
	budgets := []model.Budget{
		{ID: "low", Amount: 100, AlertThreshold: 80, Active: true, Period: period},
		{ID: "high", Amount: 10, AlertThreshold: 80, Active: true, Period: period},
		{ID: "inactive", Amount: 1, AlertThreshold: 80, Active: false, Period: period},
	}
	subs := []model.Subscription{
		{Name: "Netflix", Cost: 15, Active: true, NextBillingDate: mustDate(t, "2024-03-20")},
	}

	out := BudgetStatuses(budgets, subs)
	if len(out) != 2 {
		t.Fatalf("got %d statuses, want 2 (inactive excluded)", len(out))
	}
	if out[0].Budget.ID != "high" {
		t.Fatalf("first status = %s, want the most consumed budget", out[0].Budget.ID)
	}
	if math.Abs(out[0].PercentUsed-150) > 1e-9 {
		t.Fatalf("PercentUsed = %.1f, want 150.0", out[0].PercentUsed)
	}
	if out[0].Level != model.AlertDanger {
		t.Fatalf("Level = %s, want %s", out[0].Level, model.AlertDanger)
	}
}

func TestMonthlyHistoryZeroFills(t *testing.T) {
	now := mustDate(t, "2024-03-15")
	subs := []model.Subscription{
		{
			Name: "Netflix", History: []model.Payment{
				{Date: mustDate(t, "2024-01-10"), Amount: 15, Currency: "USD"},
				{Date: mustDate(t, "2024-01-25"), Amount: 5, Currency: "USD"},
				{Date: mustDate(t, "2024-03-10"), Amount: 15, Currency: "USD"},
				{Date: mustDate(t, "2023-11-10"), Amount: 99, Currency: "USD"}, // outside window
			},
		},
	}

	out := MonthlyHistory(subs, usdSettings(), now, 3)
	if len(out) != 3 {
		t.Fatalf("got %d months, want 3", len(out))
	}
	if got := out[0].Month.Format("2006-01"); got != "2024-01" {
		t.Fatalf("first month = %s, want 2024-01", got)
	}
	if math.Abs(out[0].Total-20) > 1e-9 {
		t.Fatalf("January total = %.2f, want 20.00", out[0].Total)
	}
	if out[1].Total != 0 {
		t.Fatalf("February total = %.2f, want zero-filled 0.00", out[1].Total)
	}
	if math.Abs(out[2].Total-15) > 1e-9 {
		t.Fatalf("March total = %.2f, want 15.00", out[2].Total)
	}
}
