package rates

import "github.com/theirongolddev/subtrack/internal/model"

// Convert converts amount from one currency to another using the stored
// rate table. When no conversion path exists the original amount is
// returned unchanged; aggregate views degrade rather than fail.
func Convert(amount float64, from, to string, table model.RateTable) float64 {
	if from == to || table == nil {
		return amount
	}
	if rates, ok := table[from]; ok {
		if r, ok := rates[to]; ok && r > 0 {
			return amount * r
		}
	}
	// Try the reverse direction before giving up.
	if rates, ok := table[to]; ok {
		if r, ok := rates[from]; ok && r > 0 {
			return amount / r
		}
	}
	return amount
}

// Symbol returns the display symbol for a currency code, falling back to
// the code itself.
func Symbol(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return code + " "
}

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"KRW": "₩",
	"INR": "₹",
	"RUB": "₽",
	"BRL": "R$",
	"CAD": "C$",
	"AUD": "A$",
	"CHF": "CHF ",
	"SEK": "kr ",
	"NOK": "kr ",
	"DKK": "kr ",
	"PLN": "zł ",
	"TRY": "₺",
	"MXN": "MX$",
}
