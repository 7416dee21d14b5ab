// Package flights turns raw scraped flight records into typed values
// and runs the search pipeline over them: normalization, currency
// conversion and filtering.
package flights

import (
	"context"
	"time"

	"github.com/jonzarecki/fast-flights-mcp/fastflights"
	"github.com/jonzarecki/fast-flights-mcp/log"
)

// FlightInfo is one normalized flight. It is immutable after
// construction, except for Price which the currency converter may
// rewrite in place.
//
// INVARIANT: Arrival is never before Departure (overnight arrivals are
// shifted by 24h during normalization).
type FlightInfo struct {
	IsBest          bool
	Name            string
	Departure       time.Time
	Arrival         time.Time
	DurationMinutes *int
	Stops           int
	Price           *Money
	DelayMinutes    *int
}

// FlightResults holds the normalized flights for one search, along
// with the scraper's qualitative price-level indicator for the route.
type FlightResults struct {
	PriceIndicator string
	Flights        []FlightInfo
}

// ParseFlightResults converts a raw scraped batch into a FlightResults.
// ref supplies the year missing from scraped datetime strings; it is
// not the flights' date, since a flight may span midnight. Records that
// fail to parse are logged and skipped, never failing the whole batch.
func ParseFlightResults(ctx context.Context, raw *fastflights.Result, ref time.Time, symbols SymbolTable) *FlightResults {
	if raw == nil || len(raw.Flights) == 0 {
		return &FlightResults{PriceIndicator: "unknown"}
	}

	results := &FlightResults{PriceIndicator: raw.CurrentPrice}
	if results.PriceIndicator == "" {
		results.PriceIndicator = "unknown"
	}

	for _, rf := range raw.Flights {
		info, perr := normalizeFlight(rf, ref, symbols)
		if perr != nil {
			log.Warnf(ctx, "Skipping flight %q due to parsing error: %v", rf.Name, perr)
			continue
		}
		results.Flights = append(results.Flights, info)
	}
	return results
}

// normalizeFlight parses a single raw record. The returned *ParseError
// identifies the exact field that failed, making the skip path explicit
// for the caller.
func normalizeFlight(raw fastflights.Flight, ref time.Time, symbols SymbolTable) (FlightInfo, *ParseError) {
	departure, err := ParseDateTime(raw.Departure, ref)
	if err != nil {
		return FlightInfo{}, &ParseError{Field: "departure", Value: raw.Departure, Err: err}
	}

	arrival, err := ParseDateTime(raw.Arrival, ref)
	if err != nil {
		return FlightInfo{}, &ParseError{Field: "arrival", Value: raw.Arrival, Err: err}
	}

	// Overnight shift: either the scraper marked the arrival as
	// next-day, or the naive parse put arrival before departure.
	if raw.ArrivalTimeAhead == "+1" || arrival.Before(departure) {
		arrival = arrival.Add(24 * time.Hour)
	}

	price, err := ParsePrice(raw.Price, symbols)
	if err != nil {
		return FlightInfo{}, &ParseError{Field: "price", Value: raw.Price, Err: err}
	}

	info := FlightInfo{
		IsBest:    raw.IsBest,
		Name:      raw.Name,
		Departure: departure,
		Arrival:   arrival,
		Stops:     raw.Stops,
		Price:     price,
	}
	if mins, ok := ParseDuration(raw.Duration); ok {
		info.DurationMinutes = &mins
	}
	if mins, ok := ParseDuration(raw.Delay); ok {
		info.DelayMinutes = &mins
	}
	return info, nil
}
