// Package stats computes derived views over subscription and budget records.
package stats

import (
	"sort"
	"time"

	"github.com/theirongolddev/subtrack/internal/billing"
	"github.com/theirongolddev/subtrack/internal/budget"
	"github.com/theirongolddev/subtrack/internal/model"
	"github.com/theirongolddev/subtrack/internal/rates"
)

// Summarize computes aggregate spending figures in the default currency.
// Costs in other currencies convert through the settings rate table; a
// missing rate leaves the amount unconverted.
func Summarize(subs []model.Subscription, settings model.Settings, now time.Time) model.SummaryStats {
	s := model.SummaryStats{Currency: settings.DefaultCurrency}

	categories := make(map[string]struct{})
	var maxMonthly float64
	var nextDue *model.Subscription

	for i, sub := range subs {
		s.TotalCount++
		if sub.Category != "" {
			categories[sub.Category] = struct{}{}
		}
		if !sub.Active {
			continue
		}
		s.ActiveCount++

		monthly := rates.Convert(billing.MonthlyEquivalent(sub), sub.Currency, settings.DefaultCurrency, settings.Rates)
		s.MonthlyTotal += monthly
		if monthly > maxMonthly {
			maxMonthly = monthly
			s.MostExpensive = sub.Name
		}

		if nextDue == nil || sub.NextBillingDate.Before(nextDue.NextBillingDate) {
			nextDue = &subs[i]
		}
	}

	s.YearlyTotal = s.MonthlyTotal * 12
	s.CategoryCount = len(categories)
	if s.ActiveCount > 0 {
		s.AverageMonthly = s.MonthlyTotal / float64(s.ActiveCount)
	}
	if nextDue != nil {
		s.NextRenewal = nextDue.Name
		s.NextRenewalIn = billing.DaysUntilRenewal(now, nextDue.NextBillingDate)
	}

	return s
}

// ByCategory computes the per-category monthly spend breakdown, sorted by
// spend descending. Uncategorized subscriptions group under "Other".
func ByCategory(subs []model.Subscription, settings model.Settings) []model.CategoryStats {
	byName := make(map[string]*model.CategoryStats)
	var total float64

	for _, sub := range subs {
		if !sub.Active {
			continue
		}
		name := sub.Category
		if name == "" {
			name = "Other"
		}
		cs, ok := byName[name]
		if !ok {
			cs = &model.CategoryStats{Category: name}
			byName[name] = cs
		}
		monthly := rates.Convert(billing.MonthlyEquivalent(sub), sub.Currency, settings.DefaultCurrency, settings.Rates)
		cs.Count++
		cs.MonthlyTotal += monthly
		total += monthly
	}

	out := make([]model.CategoryStats, 0, len(byName))
	for _, cs := range byName {
		if total > 0 {
			cs.SharePercent = cs.MonthlyTotal / total * 100
		}
		out = append(out, *cs)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MonthlyTotal != out[j].MonthlyTotal {
			return out[i].MonthlyTotal > out[j].MonthlyTotal
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// UpcomingRenewals returns active subscriptions due within horizon days,
// overdue ones included, sorted soonest first.
func UpcomingRenewals(subs []model.Subscription, now time.Time, horizonDays int) []model.UpcomingRenewal {
	var out []model.UpcomingRenewal
	for _, sub := range subs {
		if !sub.Active {
			continue
		}
		days := billing.DaysUntilRenewal(now, sub.NextBillingDate)
		if days > horizonDays {
			continue
		}
		out = append(out, model.UpcomingRenewal{
			Subscription: sub,
			DueDate:      sub.NextBillingDate,
			DaysLeft:     days,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DaysLeft < out[j].DaysLeft
	})
	return out
}

// BudgetStatuses evaluates every active budget against the subscriptions,
// sorted most severe first.
func BudgetStatuses(budgets []model.Budget, subs []model.Subscription) []model.BudgetStatus {
	var out []model.BudgetStatus
	for _, b := range budgets {
		if !b.Active {
			continue
		}
		spent := budget.SpendingFor(b, subs)
		out = append(out, model.BudgetStatus{
			Budget:      b,
			Spent:       spent,
			PercentUsed: budget.PercentageUsed(spent, b.Amount),
			Level:       budget.LevelFor(spent, b),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PercentUsed > out[j].PercentUsed
	})
	return out
}

// MonthlyHistory sums payment history per calendar month over the last n
// months, oldest first, with empty months zero-filled for charting.
func MonthlyHistory(subs []model.Subscription, settings model.Settings, now time.Time, months int) []model.MonthlySpend {
	if months <= 0 {
		return nil
	}

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)
	out := make([]model.MonthlySpend, months)
	index := make(map[string]int, months)
	for i := range out {
		m := first.AddDate(0, i, 0)
		out[i].Month = m
		index[m.Format("2006-01")] = i
	}

	for _, sub := range subs {
		for _, p := range sub.History {
			if i, ok := index[p.Date.Format("2006-01")]; ok {
				out[i].Total += rates.Convert(p.Amount, p.Currency, settings.DefaultCurrency, settings.Rates)
			}
		}
	}
	return out
}
