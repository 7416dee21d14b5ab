package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jonzarecki/fast-flights-mcp/fastflights"
	"github.com/jonzarecki/fast-flights-mcp/flights"
	"github.com/jonzarecki/fast-flights-mcp/log"
)

// FlightSearcher runs one validated flight search end to end.
type FlightSearcher interface {
	Search(ctx context.Context, req *flights.SearchRequest) (*flights.FlightResults, error)
}

// SearchFlightsInput is the argument payload of the search_flights tool.
type SearchFlightsInput struct {
	FromAirport              string `json:"from_airport"`
	ToAirport                string `json:"to_airport"`
	Date                     string `json:"date"`
	Trip                     string `json:"trip,omitempty"`
	ReturnDate               string `json:"return_date,omitempty"`
	Seat                     string `json:"seat,omitempty"`
	Adults                   int    `json:"adults,omitempty"`
	MaxStops                 *int   `json:"max_stops,omitempty"`
	MaxPrice                 *int   `json:"max_price,omitempty"`
	MaxFlightDurationMinutes *int   `json:"max_flight_duration_minutes,omitempty"`
	LatestArrivalTime        string `json:"latest_arrival_time,omitempty"`
	MaxDelayMinutes          *int   `json:"max_delay_minutes,omitempty"`
	TargetCurrency           string `json:"target_currency,omitempty"`
}

// SearchFlightsTool exposes flight search as a remotely invokable tool
type SearchFlightsTool struct {
	Searcher FlightSearcher
}

// NewSearchFlightsTool initializes and registers the SearchFlightsTool
func NewSearchFlightsTool(searcher FlightSearcher, registry *Registry) *SearchFlightsTool {
	t := &SearchFlightsTool{Searcher: searcher}
	registry.Register(t.definition(), func(ctx context.Context, args map[string]interface{}) (string, error) {
		in := &SearchFlightsInput{}
		b, _ := json.Marshal(args)
		if err := json.Unmarshal(b, in); err != nil {
			return "", fmt.Errorf("failed to parse arguments: %w", err)
		}
		return t.Execute(ctx, in)
	})
	return t
}

func (t *SearchFlightsTool) Name() string {
	return "search_flights"
}

func (t *SearchFlightsTool) definition() mcp.Tool {
	return mcp.NewTool(t.Name(),
		mcp.WithDescription("Searches for flights between two airports on a date, with optional price, duration, arrival-time and delay ceilings. Returns a numbered, human-readable list."),
		mcp.WithString("from_airport", mcp.Required(), mcp.Description("Origin airport 3-letter IATA code"), mcp.Pattern("^[A-Za-z]{3}$")),
		mcp.WithString("to_airport", mcp.Required(), mcp.Description("Destination airport 3-letter IATA code"), mcp.Pattern("^[A-Za-z]{3}$")),
		mcp.WithString("date", mcp.Required(), mcp.Description("Departure date, YYYY-MM-DD"), mcp.Pattern(`^\d{4}-\d{2}-\d{2}$`)),
		mcp.WithString("trip", mcp.Description("Trip type"), mcp.Enum(fastflights.TripOneWay, fastflights.TripRoundTrip), mcp.DefaultString(fastflights.TripOneWay)),
		mcp.WithString("return_date", mcp.Description("Return date for round-trips, YYYY-MM-DD"), mcp.Pattern(`^\d{4}-\d{2}-\d{2}$`)),
		mcp.WithString("seat", mcp.Description("Cabin class"), mcp.Enum(fastflights.SeatClasses...), mcp.DefaultString("economy")),
		mcp.WithNumber("adults", mcp.Description("Number of adult passengers"), mcp.Min(1), mcp.Max(9), mcp.DefaultNumber(1)),
		mcp.WithNumber("max_stops", mcp.Description("Maximum number of stops, 0 or 1"), mcp.Min(0), mcp.Max(1)),
		mcp.WithNumber("max_price", mcp.Description("Price ceiling, interpreted in each flight's listed currency"), mcp.Min(1)),
		mcp.WithNumber("max_flight_duration_minutes", mcp.Description("Total flight duration ceiling in minutes"), mcp.Min(30), mcp.Max(2000)),
		mcp.WithString("latest_arrival_time", mcp.Description("Latest acceptable arrival wall-clock time, HH:MM"), mcp.Pattern(`^\d{2}:\d{2}$`)),
		mcp.WithNumber("max_delay_minutes", mcp.Description("Known-delay ceiling in minutes"), mcp.Min(0), mcp.Max(300)),
		mcp.WithString("target_currency", mcp.Description("Convert prices to this currency"), mcp.Enum(flights.SupportedCurrencies...)),
	)
}

// Execute runs the search and renders the outcome as text. Validation
// failures surface as error text; infrastructure failures and fatal
// fetch errors degrade to plain messages, never to a crash.
func (t *SearchFlightsTool) Execute(ctx context.Context, input *SearchFlightsInput) (string, error) {
	log.Infof(ctx, "Searching flights %s -> %s on %s", input.FromAirport, input.ToAirport, input.Date)

	trip := input.Trip
	if trip == "" {
		trip = fastflights.TripOneWay
	}
	adults := input.Adults
	if adults == 0 {
		adults = 1
	}
	maxStops := 1
	if input.MaxStops != nil {
		maxStops = *input.MaxStops
	}

	results, err := t.Searcher.Search(ctx, &flights.SearchRequest{
		FromAirport:              strings.ToUpper(input.FromAirport),
		ToAirport:                strings.ToUpper(input.ToAirport),
		Date:                     input.Date,
		Trip:                     trip,
		ReturnDate:               input.ReturnDate,
		Seat:                     input.Seat,
		Adults:                   adults,
		MaxStops:                 maxStops,
		MaxPrice:                 input.MaxPrice,
		MaxFlightDurationMinutes: input.MaxFlightDurationMinutes,
		LatestArrivalTime:        input.LatestArrivalTime,
		MaxDelayMinutes:          input.MaxDelayMinutes,
		TargetCurrency:           input.TargetCurrency,
	})
	if err != nil {
		var invalid *flights.InvalidParameterError
		switch {
		case errors.As(err, &invalid):
			return "", err
		case errors.Is(err, flights.ErrSearchUnavailable):
			return "Flight search is temporarily unavailable. Please try again later.", nil
		default:
			log.Errorf(ctx, "Flight search failed: %v", err)
			return "No flights found.", nil
		}
	}

	return FormatResults(results), nil
}

// SeatClassesTool lists the supported cabin classes
type SeatClassesTool struct{}

// NewSeatClassesTool initializes and registers the SeatClassesTool
func NewSeatClassesTool(registry *Registry) *SeatClassesTool {
	t := &SeatClassesTool{}
	registry.Register(t.definition(), func(ctx context.Context, args map[string]interface{}) (string, error) {
		return t.Execute(ctx)
	})
	return t
}

func (t *SeatClassesTool) Name() string {
	return "seat_classes"
}

func (t *SeatClassesTool) definition() mcp.Tool {
	return mcp.NewTool(t.Name(),
		mcp.WithDescription("Lists the seat classes accepted by search_flights."),
	)
}

func (t *SeatClassesTool) Execute(ctx context.Context) (string, error) {
	return "Supported seat classes: " + strings.Join(fastflights.SeatClasses, ", "), nil
}
