package tools

import (
	"fmt"
	"strings"

	"github.com/jonzarecki/fast-flights-mcp/flights"
)

// maxListedFlights caps how many flights one response renders.
const maxListedFlights = 10

const flightTimeFormat = "3:04 PM on Mon, Jan 2"

// FormatResults renders a result set as the human-readable text
// returned to the remote caller.
func FormatResults(results *flights.FlightResults) string {
	if results == nil || len(results.Flights) == 0 {
		return "No flights found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d flight(s). Price assessment: %s\n", len(results.Flights), results.PriceIndicator)

	shown := results.Flights
	if len(shown) > maxListedFlights {
		shown = shown[:maxListedFlights]
	}

	for i, f := range shown {
		b.WriteByte('\n')
		fmt.Fprintf(&b, "%d. %s", i+1, f.Name)
		if f.IsBest {
			b.WriteString(" [BEST]")
		}
		fmt.Fprintf(&b, "\n   %s -> %s\n", f.Departure.Format(flightTimeFormat), f.Arrival.Format(flightTimeFormat))

		details := make([]string, 0, 4)
		if f.DurationMinutes != nil {
			details = append(details, "Duration: "+formatMinutes(*f.DurationMinutes))
		}
		details = append(details, fmt.Sprintf("Stops: %d", f.Stops))
		if f.Price != nil {
			details = append(details, "Price: "+f.Price.String())
		}
		if f.DelayMinutes != nil {
			details = append(details, "Delay: "+formatMinutes(*f.DelayMinutes))
		}
		fmt.Fprintf(&b, "   %s\n", strings.Join(details, " | "))
	}

	if hidden := len(results.Flights) - maxListedFlights; hidden > 0 {
		fmt.Fprintf(&b, "\n...and %d more flights\n", hidden)
	}
	return b.String()
}

// formatMinutes renders minutes in the scraper's own style, e.g.
// "5 hr 30 min".
func formatMinutes(mins int) string {
	h, m := mins/60, mins%60
	switch {
	case h == 0:
		return fmt.Sprintf("%d min", m)
	case m == 0:
		return fmt.Sprintf("%d hr", h)
	default:
		return fmt.Sprintf("%d hr %d min", h, m)
	}
}
