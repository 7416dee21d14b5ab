package flights

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jonzarecki/fast-flights-mcp/log"
)

// RateSource provides exchange rates between currency codes.
type RateSource interface {
	Rate(ctx context.Context, from, to string) (float64, error)
}

// ConvertPrices rewrites each flight's price into the target currency,
// in place. Flights without a price, or already in the target currency,
// are untouched. A failed rate lookup leaves that one flight's price
// unconverted with a warning; it never aborts the batch. Ordering and
// count are preserved.
func ConvertPrices(ctx context.Context, rates RateSource, results *FlightResults, target string) {
	for i := range results.Flights {
		f := &results.Flights[i]
		if f.Price == nil || f.Price.Currency == target {
			continue
		}

		rate, err := rates.Rate(ctx, f.Price.Currency, target)
		if err != nil {
			log.Warnf(ctx, "Could not convert price for flight %s: %v", f.Name, err)
			continue
		}

		// Rate goes through decimal so float arithmetic never touches
		// the money amount itself.
		amount := f.Price.Amount.Mul(decimal.NewFromFloat(rate))
		f.Price = &Money{Amount: amount, Currency: target}
	}
}
