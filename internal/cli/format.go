// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/subtrack/internal/rates"
)

// FormatMoney formats an amount with its currency symbol.
// e.g., (9.99, "USD") -> "$9.99", (1234.5, "EUR") -> "€1,234.50"
func FormatMoney(amount float64, currency string) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	whole := int64(amount)
	cents := int(amount*100+0.5) - int(whole*100)
	if cents >= 100 { // rounding carried into the next unit
		whole++
		cents -= 100
	}
	return fmt.Sprintf("%s%s%s.%02d", sign, rates.Symbol(currency), FormatNumber(whole), cents)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-100 percentage for display.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatRelativeDays renders a day count relative to now.
// e.g., 0 -> "today", 3 -> "in 3d", -2 -> "2d overdue"
func FormatRelativeDays(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("%dd overdue", -days)
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %dd", days)
	}
}

// FormatDate renders a date in the short display format.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

// FormatCycle renders a billing cycle for table cells.
func FormatCycle(cycleType string, customDays int) string {
	if cycleType == "custom" {
		return fmt.Sprintf("every %dd", customDays)
	}
	return cycleType
}

// ShortID returns the first 8 characters of an id for compact display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
