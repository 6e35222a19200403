package rates

import (
	"math"
	"testing"

	"github.com/theirongolddev/subtrack/internal/model"
)

func TestConvert(t *testing.T) {
	table := model.RateTable{
		"USD": {"EUR": 0.92, "GBP": 0.79},
	}

	tests := []struct {
		name   string
		amount float64
		from   string
		to     string
		want   float64
	}{
		{"same currency", 10, "USD", "USD", 10},
		{"direct rate", 10, "USD", "EUR", 9.2},
		{"reverse rate divides", 9.2, "EUR", "USD", 10},
		{"no path returns original", 10, "JPY", "GBP", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert(tt.amount, tt.from, tt.to, table)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("Convert(%.2f, %s, %s) = %.4f, want %.4f", tt.amount, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestConvertNilTable(t *testing.T) {
	if got := Convert(10, "USD", "EUR", nil); got != 10 {
		t.Fatalf("Convert with nil table = %.2f, want original 10.00", got)
	}
}

func TestConvertIgnoresZeroRate(t *testing.T) {
	table := model.RateTable{"USD": {"EUR": 0}}
	if got := Convert(10, "USD", "EUR", table); got != 10 {
		t.Fatalf("Convert through zero rate = %.2f, want original 10.00", got)
	}
}

func TestSymbol(t *testing.T) {
	if got := Symbol("USD"); got != "$" {
		t.Fatalf("Symbol(USD) = %q, want $", got)
	}
	if got := Symbol("EUR"); got != "€" {
		t.Fatalf("Symbol(EUR) = %q, want €", got)
	}
	if got := Symbol("XYZ"); got != "XYZ " {
		t.Fatalf("Symbol(XYZ) = %q, want code fallback with trailing space", got)
	}
}
