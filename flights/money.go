package flights

import "github.com/shopspring/decimal"

// CurrencyUnknown is the sentinel code used when a scraped price
// carries a currency symbol that is not in the symbol table.
const CurrencyUnknown = "XXX"

// SupportedCurrencies are the target currencies accepted for conversion.
var SupportedCurrencies = []string{"USD", "EUR", "ILS"}

// IsSupportedCurrency reports whether code is a valid conversion target.
func IsSupportedCurrency(code string) bool {
	for _, c := range SupportedCurrencies {
		if c == code {
			return true
		}
	}
	return false
}

// Money is a tagged (amount, currency code) pair. Amounts are exact
// decimals so that conversion and comparison never drift at the cent
// level. Amounts are never negative.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"ILS": "₪",
}

// String renders the price the way the remote caller sees it,
// e.g. "$1250.00", or "XXX 79.90" when the currency is unknown.
func (m Money) String() string {
	if sym, ok := currencySymbols[m.Currency]; ok {
		return sym + m.Amount.StringFixed(2)
	}
	return m.Currency + " " + m.Amount.StringFixed(2)
}
