package flights

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jonzarecki/fast-flights-mcp/fastflights"
	"github.com/jonzarecki/fast-flights-mcp/log"
)

// InvalidParameterError reports caller input that failed validation.
// It is raised before any network activity happens.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

// ErrSearchUnavailable is returned when the scraper kept failing with
// transient errors and every retry attempt was exhausted. It is
// distinct from a legitimate empty result.
var ErrSearchUnavailable = errors.New("flight search unavailable")

// Fetcher is the scraper collaborator.
type Fetcher interface {
	Fetch(ctx context.Context, req *fastflights.FetchRequest) (*fastflights.Result, error)
}

// SearchRequest holds the parameters of one flight search. Optional
// filter ceilings are nil when unset.
type SearchRequest struct {
	FromAirport string
	ToAirport   string
	Date        string
	Trip        string
	ReturnDate  string
	Seat        string
	Adults      int
	MaxStops    int

	MaxPrice                 *int
	MaxFlightDurationMinutes *int
	LatestArrivalTime        string
	MaxDelayMinutes          *int
	TargetCurrency           string
}

const dateLayout = "2006-01-02"

// Searcher runs one flight search end to end: validation, fetch with
// retries, normalization, optional currency conversion, filtering.
// A Searcher holds no per-request state, so one instance serves
// concurrent searches.
type Searcher struct {
	Fetcher  Fetcher
	Rates    RateSource
	Symbols  SymbolTable
	Attempts int
	Backoff  time.Duration

	// Overridable in tests
	Now   func() time.Time
	Sleep func(ctx context.Context, d time.Duration) error
}

// NewSearcher creates a Searcher with the default symbol table and
// real clock.
func NewSearcher(fetcher Fetcher, rates RateSource, attempts int, backoff time.Duration) *Searcher {
	return &Searcher{
		Fetcher:  fetcher,
		Rates:    rates,
		Symbols:  DefaultSymbols,
		Attempts: attempts,
		Backoff:  backoff,
		Now:      time.Now,
		Sleep:    sleepContext,
	}
}

// sleepContext pauses for d without starving the caller's goroutine of
// cancellation.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Search validates req, fetches raw flights and runs them through the
// pipeline. An empty Flights slice in the result is a valid outcome.
func (s *Searcher) Search(ctx context.Context, req *SearchRequest) (*FlightResults, error) {
	fromDate, criteria, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	seat := req.Seat
	if seat == "" {
		seat = "economy"
	}

	segments := []fastflights.FlightData{{
		Date:        req.Date,
		FromAirport: req.FromAirport,
		ToAirport:   req.ToAirport,
		MaxStops:    req.MaxStops,
	}}
	if req.Trip == fastflights.TripRoundTrip {
		segments = append(segments, fastflights.FlightData{
			Date:        req.ReturnDate,
			FromAirport: req.ToAirport,
			ToAirport:   req.FromAirport,
			MaxStops:    req.MaxStops,
		})
	}

	raw, err := s.fetchWithRetry(ctx, &fastflights.FetchRequest{
		FlightData: segments,
		Trip:       req.Trip,
		Seat:       seat,
		Passengers: fastflights.Passengers{Adults: req.Adults},
		FetchMode:  "common",
	})
	if err != nil {
		return nil, err
	}

	results := ParseFlightResults(ctx, raw, fromDate, s.symbolTable())

	if req.TargetCurrency != "" {
		target := strings.ToUpper(req.TargetCurrency)
		log.Infof(ctx, "Converting prices to %s", target)
		ConvertPrices(ctx, s.Rates, results, target)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	criteria.Apply(ctx, results)
	return results, nil
}

func (s *Searcher) symbolTable() SymbolTable {
	if s.Symbols != nil {
		return s.Symbols
	}
	return DefaultSymbols
}

// validate fails fast on bad input, before any network activity. It
// returns the parsed departure date and the filter criteria.
func (s *Searcher) validate(req *SearchRequest) (time.Time, Criteria, error) {
	var crit Criteria
	fail := func(param, reason string) (time.Time, Criteria, error) {
		return time.Time{}, Criteria{}, &InvalidParameterError{Param: param, Reason: reason}
	}

	if req.TargetCurrency != "" && !IsSupportedCurrency(strings.ToUpper(req.TargetCurrency)) {
		return fail("target_currency", fmt.Sprintf("unsupported currency %q, supported currencies are %s",
			req.TargetCurrency, strings.Join(SupportedCurrencies, ", ")))
	}

	if req.Trip != fastflights.TripOneWay && req.Trip != fastflights.TripRoundTrip {
		return fail("trip", "must be 'one-way' or 'round-trip'")
	}

	if req.MaxStops != 0 && req.MaxStops != 1 {
		return fail("max_stops", "can only be 0 or 1")
	}

	if req.Adults < 1 || req.Adults > 9 {
		return fail("adults", "must be between 1 and 9")
	}

	if req.Seat != "" {
		known := false
		for _, sc := range fastflights.SeatClasses {
			if sc == req.Seat {
				known = true
				break
			}
		}
		if !known {
			return fail("seat", fmt.Sprintf("must be one of %s", strings.Join(fastflights.SeatClasses, ", ")))
		}
	}

	fromDate, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return fail("date", "must be in YYYY-MM-DD format")
	}
	now := s.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if fromDate.Before(today) {
		return fail("date", "departure date cannot be in the past")
	}

	if req.Trip == fastflights.TripRoundTrip {
		if req.ReturnDate == "" {
			return fail("return_date", "required for a round-trip")
		}
		returnDate, err := time.Parse(dateLayout, req.ReturnDate)
		if err != nil {
			return fail("return_date", "must be in YYYY-MM-DD format")
		}
		if returnDate.Before(fromDate) {
			return fail("return_date", "cannot be before the departure date")
		}
	}

	if req.MaxPrice != nil {
		if *req.MaxPrice <= 0 {
			return fail("max_price", "must be positive")
		}
		crit.MaxPrice = req.MaxPrice
	}
	if req.MaxFlightDurationMinutes != nil {
		if *req.MaxFlightDurationMinutes < 30 || *req.MaxFlightDurationMinutes > 2000 {
			return fail("max_flight_duration_minutes", "must be between 30 and 2000")
		}
		crit.MaxDurationMinutes = req.MaxFlightDurationMinutes
	}
	if req.LatestArrivalTime != "" {
		tod, err := ParseTimeOfDay(req.LatestArrivalTime)
		if err != nil {
			return fail("latest_arrival_time", "must be in HH:MM format")
		}
		crit.LatestArrival = &tod
	}
	if req.MaxDelayMinutes != nil {
		if *req.MaxDelayMinutes < 0 || *req.MaxDelayMinutes > 300 {
			return fail("max_delay_minutes", "must be between 0 and 300")
		}
		crit.MaxDelayMinutes = req.MaxDelayMinutes
	}

	return fromDate, crit, nil
}

// fetchWithRetry retries transient scraper failures with a fixed
// backoff. Non-transient errors (such as an unknown route) are not
// retried. Cancellation stops the loop before the next attempt.
func (s *Searcher) fetchWithRetry(ctx context.Context, req *fastflights.FetchRequest) (*fastflights.Result, error) {
	attempts := s.Attempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := s.Fetcher.Fetch(ctx, req)
		if err == nil {
			log.Infof(ctx, "Successfully fetched flights on attempt %d", attempt)
			return raw, nil
		}

		var transient *fastflights.TransientError
		if !errors.As(err, &transient) {
			return nil, err
		}

		log.Warnf(ctx, "Attempt %d/%d failed: %v", attempt, attempts, err)
		if attempt >= attempts {
			log.Errorf(ctx, "All retries failed")
			return nil, fmt.Errorf("%w: %v", ErrSearchUnavailable, err)
		}

		if err := s.Sleep(ctx, s.Backoff); err != nil {
			return nil, err
		}
	}
}
