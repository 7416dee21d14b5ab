package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jonzarecki/fast-flights-mcp/fastflights"
	"github.com/jonzarecki/fast-flights-mcp/flights"
	"github.com/jonzarecki/fast-flights-mcp/log"
)

// maxListedAirports caps how many airports one response renders.
const maxListedAirports = 20

// SearchAirportsInput is the argument payload of the search_airports tool.
type SearchAirportsInput struct {
	Query string `json:"query"`
}

// SearchAirportsTool exposes the airport directory lookup
type SearchAirportsTool struct{}

// NewSearchAirportsTool initializes and registers the SearchAirportsTool
func NewSearchAirportsTool(registry *Registry) *SearchAirportsTool {
	t := &SearchAirportsTool{}
	registry.Register(t.definition(), func(ctx context.Context, args map[string]interface{}) (string, error) {
		in := &SearchAirportsInput{}
		b, _ := json.Marshal(args)
		if err := json.Unmarshal(b, in); err != nil {
			return "", fmt.Errorf("failed to parse arguments: %w", err)
		}
		return t.Execute(ctx, in)
	})
	return t
}

func (t *SearchAirportsTool) Name() string {
	return "search_airports"
}

func (t *SearchAirportsTool) definition() mcp.Tool {
	return mcp.NewTool(t.Name(),
		mcp.WithDescription("Searches the airport directory by name or IATA code, case-insensitively."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Free-text query matched against airport names and codes")),
	)
}

func (t *SearchAirportsTool) Execute(ctx context.Context, input *SearchAirportsInput) (string, error) {
	matches := fastflights.SearchAirports(input.Query)
	if len(matches) == 0 {
		return "No airports found", nil
	}

	lines := make([]string, 0, maxListedAirports+1)
	for i, a := range matches {
		if i == maxListedAirports {
			break
		}
		lines = append(lines, fmt.Sprintf("%s (%s)", a.Name, a.Code))
	}
	if len(matches) > maxListedAirports {
		lines = append(lines, fmt.Sprintf("...and %d more results", len(matches)-maxListedAirports))
	}
	return strings.Join(lines, "\n"), nil
}

// CompareAirportsInput is the argument payload of the compare_airports tool.
type CompareAirportsInput struct {
	FirstFromAirport  string `json:"first_from_airport"`
	SecondFromAirport string `json:"second_from_airport"`
	ToAirport         string `json:"to_airport"`
	Date              string `json:"date"`
	Seat              string `json:"seat,omitempty"`
	Adults            int    `json:"adults,omitempty"`
}

// CompareAirportsTool runs the same one-way search from two origin
// airports and reports the cheapest option found from each.
type CompareAirportsTool struct {
	Searcher FlightSearcher
}

// NewCompareAirportsTool initializes and registers the CompareAirportsTool
func NewCompareAirportsTool(searcher FlightSearcher, registry *Registry) *CompareAirportsTool {
	t := &CompareAirportsTool{Searcher: searcher}
	registry.Register(t.definition(), func(ctx context.Context, args map[string]interface{}) (string, error) {
		in := &CompareAirportsInput{}
		b, _ := json.Marshal(args)
		if err := json.Unmarshal(b, in); err != nil {
			return "", fmt.Errorf("failed to parse arguments: %w", err)
		}
		return t.Execute(ctx, in)
	})
	return t
}

func (t *CompareAirportsTool) Name() string {
	return "compare_airports"
}

func (t *CompareAirportsTool) definition() mcp.Tool {
	return mcp.NewTool(t.Name(),
		mcp.WithDescription("Compares one-way flight options to the same destination from two different origin airports."),
		mcp.WithString("first_from_airport", mcp.Required(), mcp.Description("First origin airport 3-letter IATA code"), mcp.Pattern("^[A-Za-z]{3}$")),
		mcp.WithString("second_from_airport", mcp.Required(), mcp.Description("Second origin airport 3-letter IATA code"), mcp.Pattern("^[A-Za-z]{3}$")),
		mcp.WithString("to_airport", mcp.Required(), mcp.Description("Destination airport 3-letter IATA code"), mcp.Pattern("^[A-Za-z]{3}$")),
		mcp.WithString("date", mcp.Required(), mcp.Description("Departure date, YYYY-MM-DD"), mcp.Pattern(`^\d{4}-\d{2}-\d{2}$`)),
		mcp.WithString("seat", mcp.Description("Cabin class"), mcp.Enum(fastflights.SeatClasses...), mcp.DefaultString("economy")),
		mcp.WithNumber("adults", mcp.Description("Number of adult passengers"), mcp.Min(1), mcp.Max(9), mcp.DefaultNumber(1)),
	)
}

func (t *CompareAirportsTool) Execute(ctx context.Context, input *CompareAirportsInput) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Comparing flights to %s on %s:\n", strings.ToUpper(input.ToAirport), input.Date)

	// One failed side never hides the other.
	for _, origin := range []string{input.FirstFromAirport, input.SecondFromAirport} {
		b.WriteByte('\n')
		fmt.Fprintf(&b, "From %s: %s\n", strings.ToUpper(origin), t.summarizeFrom(ctx, origin, input))
	}
	return b.String(), nil
}

func (t *CompareAirportsTool) summarizeFrom(ctx context.Context, origin string, input *CompareAirportsInput) string {
	adults := input.Adults
	if adults == 0 {
		adults = 1
	}

	results, err := t.Searcher.Search(ctx, &flights.SearchRequest{
		FromAirport: strings.ToUpper(origin),
		ToAirport:   strings.ToUpper(input.ToAirport),
		Date:        input.Date,
		Trip:        fastflights.TripOneWay,
		Seat:        input.Seat,
		Adults:      adults,
		MaxStops:    1,
	})
	if err != nil {
		log.Warnf(ctx, "Comparison leg from %s failed: %v", origin, err)
		return "search failed: " + err.Error()
	}
	if len(results.Flights) == 0 {
		return "no flights found"
	}

	cheapest := cheapestFlight(results.Flights)
	if cheapest == nil {
		return fmt.Sprintf("%d flight(s), none with a listed price", len(results.Flights))
	}
	return fmt.Sprintf("%d flight(s), cheapest %s on %s (%s -> %s)",
		len(results.Flights), cheapest.Price, cheapest.Name,
		cheapest.Departure.Format(flightTimeFormat), cheapest.Arrival.Format(flightTimeFormat))
}

func cheapestFlight(list []flights.FlightInfo) *flights.FlightInfo {
	var best *flights.FlightInfo
	for i := range list {
		f := &list[i]
		if f.Price == nil {
			continue
		}
		if best == nil || f.Price.Amount.LessThan(best.Price.Amount) {
			best = f
		}
	}
	return best
}
