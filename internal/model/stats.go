package model

import "time"

// SummaryStats holds aggregate spending figures in the default currency.
type SummaryStats struct {
	Currency       string
	TotalCount     int
	ActiveCount    int
	MonthlyTotal   float64 // sum of monthly equivalents
	YearlyTotal    float64
	MostExpensive  string // subscription name, empty if none
	NextRenewal    string // subscription name, empty if none
	NextRenewalIn  int    // days until that renewal
	CategoryCount  int
	AverageMonthly float64 // per active subscription
}

// CategoryStats is the spending breakdown for one category.
type CategoryStats struct {
	Category     string
	Count        int
	MonthlyTotal float64
	SharePercent float64
}

// UpcomingRenewal is a subscription due within the renewal horizon.
type UpcomingRenewal struct {
	Subscription Subscription
	DueDate      time.Time
	DaysLeft     int // negative when overdue
}

// BudgetStatus is a budget paired with its evaluated spend.
type BudgetStatus struct {
	Budget      Budget
	Spent       float64
	PercentUsed float64
	Level       AlertLevel
}

// MonthlySpend is one month's payment total for trend charts.
type MonthlySpend struct {
	Month time.Time // first day of the month
	Total float64
}
