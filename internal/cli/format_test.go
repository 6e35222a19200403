package cli

import (
	"testing"
	"time"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount   float64
		currency string
		want     string
	}{
		{9.99, "USD", "$9.99"},
		{1234.5, "EUR", "€1,234.50"},
		{0, "USD", "$0.00"},
		{-15.99, "USD", "-$15.99"},
		{19.999, "USD", "$20.00"}, // rounding carries into the next unit
		{1000000, "GBP", "£1,000,000.00"},
		{42.5, "XYZ", "XYZ 42.50"},
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.amount, tt.currency); got != tt.want {
			t.Errorf("FormatMoney(%v, %s) = %q, want %q", tt.amount, tt.currency, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(82.347); got != "82.3%" {
		t.Errorf("FormatPercent(82.347) = %q, want 82.3%%", got)
	}
	if got := FormatPercent(240); got != "240.0%" {
		t.Errorf("FormatPercent(240) = %q, want 240.0%%", got)
	}
}

func TestFormatRelativeDays(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{0, "today"},
		{1, "tomorrow"},
		{3, "in 3d"},
		{-2, "2d overdue"},
	}

	for _, tt := range tests {
		if got := FormatRelativeDays(tt.days); got != tt.want {
			t.Errorf("FormatRelativeDays(%d) = %q, want %q", tt.days, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(time.Time{}); got != "-" {
		t.Errorf("FormatDate(zero) = %q, want -", got)
	}
	d := time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)
	if got := FormatDate(d); got != "2024-03-15" {
		t.Errorf("FormatDate = %q, want 2024-03-15", got)
	}
}

func TestFormatCycle(t *testing.T) {
	if got := FormatCycle("monthly", 0); got != "monthly" {
		t.Errorf("FormatCycle(monthly) = %q", got)
	}
	if got := FormatCycle("custom", 45); got != "every 45d" {
		t.Errorf("FormatCycle(custom, 45) = %q, want every 45d", got)
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("abcd1234-5678-90ef"); got != "abcd1234" {
		t.Errorf("ShortID = %q, want abcd1234", got)
	}
	if got := ShortID("ab"); got != "ab" {
		t.Errorf("ShortID short input = %q, want unchanged", got)
	}
}
