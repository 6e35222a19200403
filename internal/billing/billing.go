// Package billing computes renewal dates and cycle-normalized costs.
package billing

import (
	"time"

	"github.com/theirongolddev/subtrack/internal/model"
)

// fallbackCustomDays is used when a custom cycle is missing its interval.
const fallbackCustomDays = 30

// NextBillingDate returns the billing date one cycle after current.
// Calendar-month steps preserve the day of month, clamping to the last
// valid day when the target month is shorter (Jan 31 -> Feb 29 in 2024).
// Unrecognized cycle types advance by one month; validation rejects them
// on write, so this only applies to records that predate validation.
func NextBillingDate(current time.Time, cycle model.BillingCycle) time.Time {
	switch cycle.Type {
	case model.CycleDaily:
		return current.AddDate(0, 0, 1)
	case model.CycleWeekly:
		return current.AddDate(0, 0, 7)
	case model.CycleQuarterly:
		return addMonthsClamped(current, 3)
	case model.CycleYearly:
		return addMonthsClamped(current, 12)
	case model.CycleCustom:
		days := cycle.CustomDays
		if days <= 0 {
			days = fallbackCustomDays
		}
		return current.AddDate(0, 0, days)
	default: // monthly and unknown
		return addMonthsClamped(current, 1)
	}
}

// addMonthsClamped advances by whole calendar months, clamping the day of
// month instead of letting the date normalize into the following month.
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := daysIn(first.Year(), first.Month()); d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysUntilRenewal returns the whole days from now until next, rounding
// partial days up. Negative values mean the renewal is overdue.
func DaysUntilRenewal(now, next time.Time) int {
	diff := next.Sub(now)
	days := diff / (24 * time.Hour)
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return int(days)
}

// RecordPayment appends one history entry at the current billing date and
// advances the subscription by exactly one cycle step.
func RecordPayment(sub *model.Subscription, now time.Time) {
	sub.History = append(sub.History, model.Payment{
		Date:     sub.NextBillingDate,
		Amount:   sub.Cost,
		Currency: sub.Currency,
	})
	sub.NextBillingDate = NextBillingDate(sub.NextBillingDate, sub.Cycle)
	sub.UpdatedAt = now
}

// MonthlyEquivalent normalizes a subscription's cost to a 30-day month.
// The 30-day month and 4-week month are fixed approximations, not
// calendar averages; aggregate views depend on these exact factors.
func MonthlyEquivalent(sub model.Subscription) float64 {
	switch sub.Cycle.Type {
	case model.CycleDaily:
		return sub.Cost * 30
	case model.CycleWeekly:
		return sub.Cost * 4
	case model.CycleQuarterly:
		return sub.Cost / 3
	case model.CycleYearly:
		return sub.Cost / 12
	case model.CycleCustom:
		days := sub.Cycle.CustomDays
		if days <= 0 {
			days = fallbackCustomDays
		}
		return sub.Cost / float64(days) * 30
	default:
		return sub.Cost
	}
}
