package flights

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ParseError reports a single raw field that could not be parsed. One
// ParseError skips one flight record; it never fails a whole batch.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SymbolTable maps currency symbols found in scraped price strings to
// ISO currency codes.
type SymbolTable map[string]string

// DefaultSymbols covers the symbols the scraper is known to emit.
var DefaultSymbols = SymbolTable{"₪": "ILS", "$": "USD", "€": "EUR"}

var (
	hoursRe     = regexp.MustCompile(`(\d+)\s*hr`)
	minutesRe   = regexp.MustCompile(`(\d+)\s*min`)
	nonAmountRe = regexp.MustCompile(`[^\d.]`)
)

// ParsePrice parses a scraped price string like "₪908" or "$1,250" into
// a Money. An unrecognized symbol maps to the CurrencyUnknown sentinel.
// Empty input, or input with no digits at all, yields (nil, nil).
func ParsePrice(s string, symbols SymbolTable) (*Money, error) {
	if s == "" {
		return nil, nil
	}

	// Fixed lookup order so a string containing several known symbols
	// always resolves to the same currency.
	syms := make([]string, 0, len(symbols))
	for sym := range symbols {
		syms = append(syms, sym)
	}
	sort.Strings(syms)

	code := CurrencyUnknown
	for _, sym := range syms {
		if strings.Contains(s, sym) {
			code = symbols[sym]
			break
		}
	}

	amountStr := nonAmountRe.ReplaceAllString(s, "")
	if amountStr == "" {
		return nil, nil
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("bad amount %q: %w", amountStr, err)
	}

	return &Money{Amount: amount, Currency: code}, nil
}

// ParseDuration parses a scraped duration string like "6 hr 14 min"
// into total minutes. Either segment may be absent and contributes
// zero. Empty input yields ok == false.
func ParseDuration(s string) (minutes int, ok bool) {
	if s == "" {
		return 0, false
	}

	total := 0
	if m := hoursRe.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		total += h * 60
	}
	if m := minutesRe.FindStringSubmatch(s); m != nil {
		mins, _ := strconv.Atoi(m[1])
		total += mins
	}
	return total, true
}

const datetimeLayout = "Mon, Jan 2 2006 3:04 PM"

// ParseDateTime parses a scraped datetime string like
// "10:10 PM on Mon, Aug 4". The scraper never includes a year, so the
// year is taken from ref (the requested departure date).
func ParseDateTime(s string, ref time.Time) (time.Time, error) {
	timePart, datePart, found := strings.Cut(s, " on ")
	if !found {
		return time.Time{}, fmt.Errorf("expected \"<time> on <date>\", got %q", s)
	}

	full := fmt.Sprintf("%s %d %s", datePart, ref.Year(), timePart)
	t, err := time.Parse(datetimeLayout, full)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}
