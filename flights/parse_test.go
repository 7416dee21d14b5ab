package flights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		amount   string
		currency string
		none     bool
	}{
		{name: "Shekel", input: "₪908", amount: "908", currency: "ILS"},
		{name: "Dollar with thousands separator", input: "$1,250", amount: "1250", currency: "USD"},
		{name: "Euro with decimals", input: "€79.90", amount: "79.9", currency: "EUR"},
		{name: "Unknown symbol maps to sentinel", input: "£55", amount: "55", currency: CurrencyUnknown},
		{name: "No symbol maps to sentinel", input: "120", amount: "120", currency: CurrencyUnknown},
		{name: "Empty input", input: "", none: true},
		{name: "No digits", input: "$", none: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParsePrice(tt.input, DefaultSymbols)
			require.NoError(t, err)
			if tt.none {
				assert.Nil(t, m)
				return
			}
			require.NotNil(t, m)
			assert.Equal(t, tt.amount, m.Amount.String())
			assert.Equal(t, tt.currency, m.Currency)
			assert.False(t, m.Amount.IsNegative())
		})
	}
}

func TestParsePrice_BadAmount(t *testing.T) {
	m, err := ParsePrice("$1.2.5", DefaultSymbols)
	assert.Error(t, err)
	assert.Nil(t, m)
}

func TestParsePrice_InjectedSymbols(t *testing.T) {
	symbols := SymbolTable{"£": "GBP"}
	m, err := ParsePrice("£55", symbols)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "GBP", m.Currency)
}

func TestParsePrice_MultipleSymbolsResolveDeterministically(t *testing.T) {
	// A string carrying two known symbols must always resolve to the
	// same currency, run after run.
	for i := 0; i < 20; i++ {
		m, err := ParsePrice("$100 (€92)", DefaultSymbols)
		require.NoError(t, err)
		require.NotNil(t, m)
		assert.Equal(t, "USD", m.Currency)
	}
}

func TestParsePrice_FormatRoundTrip(t *testing.T) {
	m, err := ParsePrice("$100", DefaultSymbols)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "$100.00", m.String())

	m, err = ParsePrice("₪1,234.56", DefaultSymbols)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, "₪1234.56", m.String())
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		minutes int
		ok      bool
	}{
		{name: "Hours and minutes", input: "6 hr 14 min", minutes: 374, ok: true},
		{name: "Hours only", input: "2 hr", minutes: 120, ok: true},
		{name: "Minutes only", input: "45 min", minutes: 45, ok: true},
		{name: "No whitespace", input: "5hr 30min", minutes: 330, ok: true},
		{name: "Unrecognized text contributes zero", input: "1h30m", minutes: 0, ok: true},
		{name: "Empty input", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minutes, ok := ParseDuration(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.minutes, minutes)
		})
	}
}

func TestParseDateTime(t *testing.T) {
	ref := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)

	parsed, err := ParseDateTime("10:10 PM on Mon, Aug 4", ref)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.August, 4, 22, 10, 0, 0, time.UTC), parsed)

	parsed, err = ParseDateTime("6:05 AM on Tue, Dec 30", ref)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.December, 30, 6, 5, 0, 0, time.UTC), parsed)
}

func TestParseDateTime_Errors(t *testing.T) {
	ref := time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
	}{
		{name: "Missing separator", input: "10:10 PM Mon, Aug 4"},
		{name: "Garbage time", input: "late on Mon, Aug 4"},
		{name: "Garbage date", input: "10:10 PM on someday"},
		{name: "Empty", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDateTime(tt.input, ref)
			assert.Error(t, err)
		})
	}
}
