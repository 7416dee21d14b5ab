package flights

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonzarecki/fast-flights-mcp/fastflights"
)

var refDate = time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)

func validRawFlight() fastflights.Flight {
	return fastflights.Flight{
		IsBest:    true,
		Name:      "Delta",
		Departure: "10:10 AM on Mon, Aug 4",
		Arrival:   "3:40 PM on Mon, Aug 4",
		Duration:  "5 hr 30 min",
		Stops:     1,
		Price:     "$1,250",
	}
}

func TestParseFlightResults(t *testing.T) {
	ctx := context.Background()

	raw := &fastflights.Result{
		CurrentPrice: "low",
		Flights:      []fastflights.Flight{validRawFlight()},
	}

	results := ParseFlightResults(ctx, raw, refDate, DefaultSymbols)
	assert.Equal(t, "low", results.PriceIndicator)
	require.Len(t, results.Flights, 1)

	f := results.Flights[0]
	assert.True(t, f.IsBest)
	assert.Equal(t, "Delta", f.Name)
	assert.Equal(t, time.Date(2025, time.August, 4, 10, 10, 0, 0, time.UTC), f.Departure)
	assert.Equal(t, time.Date(2025, time.August, 4, 15, 40, 0, 0, time.UTC), f.Arrival)
	require.NotNil(t, f.DurationMinutes)
	assert.Equal(t, 330, *f.DurationMinutes)
	assert.Equal(t, 1, f.Stops)
	require.NotNil(t, f.Price)
	assert.Equal(t, "USD", f.Price.Currency)
	assert.Equal(t, "1250", f.Price.Amount.String())
	assert.Nil(t, f.DelayMinutes)
}

func TestParseFlightResults_EmptyBatch(t *testing.T) {
	ctx := context.Background()

	results := ParseFlightResults(ctx, nil, refDate, DefaultSymbols)
	assert.Equal(t, "unknown", results.PriceIndicator)
	assert.Empty(t, results.Flights)

	results = ParseFlightResults(ctx, &fastflights.Result{}, refDate, DefaultSymbols)
	assert.Equal(t, "unknown", results.PriceIndicator)
	assert.Empty(t, results.Flights)
}

func TestParseFlightResults_SkipsMalformedRecord(t *testing.T) {
	ctx := context.Background()

	bad := validRawFlight()
	bad.Name = "Broken"
	bad.Departure = "not a datetime"

	raw := &fastflights.Result{
		CurrentPrice: "typical",
		Flights:      []fastflights.Flight{validRawFlight(), bad, validRawFlight()},
	}

	results := ParseFlightResults(ctx, raw, refDate, DefaultSymbols)
	require.Len(t, results.Flights, 2)
	for _, f := range results.Flights {
		assert.NotEqual(t, "Broken", f.Name)
	}
}

func TestNormalizeFlight_OvernightShift(t *testing.T) {
	tests := []struct {
		name      string
		departure string
		arrival   string
		ahead     string
		wantShift bool
	}{
		{
			name:      "Marker set",
			departure: "10:10 PM on Mon, Aug 4",
			arrival:   "11:45 PM on Mon, Aug 4",
			ahead:     "+1",
			wantShift: true,
		},
		{
			name:      "Arrival clock earlier than departure",
			departure: "10:10 PM on Mon, Aug 4",
			arrival:   "6:30 AM on Mon, Aug 4",
			wantShift: true,
		},
		{
			name:      "Same-day arrival",
			departure: "8:00 AM on Mon, Aug 4",
			arrival:   "1:00 PM on Mon, Aug 4",
			wantShift: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRawFlight()
			raw.Departure = tt.departure
			raw.Arrival = tt.arrival
			raw.ArrivalTimeAhead = tt.ahead

			info, perr := normalizeFlight(raw, refDate, DefaultSymbols)
			require.Nil(t, perr)

			naive, err := ParseDateTime(tt.arrival, refDate)
			require.NoError(t, err)
			if tt.wantShift {
				assert.Equal(t, naive.Add(24*time.Hour), info.Arrival)
			} else {
				assert.Equal(t, naive, info.Arrival)
			}
			assert.False(t, info.Arrival.Before(info.Departure))
		})
	}
}

func TestNormalizeFlight_ParseErrorIdentifiesField(t *testing.T) {
	raw := validRawFlight()
	raw.Arrival = "garbage"

	_, perr := normalizeFlight(raw, refDate, DefaultSymbols)
	require.NotNil(t, perr)
	assert.Equal(t, "arrival", perr.Field)
	assert.Equal(t, "garbage", perr.Value)

	raw = validRawFlight()
	raw.Price = "$1.2.5"
	_, perr = normalizeFlight(raw, refDate, DefaultSymbols)
	require.NotNil(t, perr)
	assert.Equal(t, "price", perr.Field)
}

func TestNormalizeFlight_Delay(t *testing.T) {
	raw := validRawFlight()
	raw.Delay = "Delayed 45 min"

	info, perr := normalizeFlight(raw, refDate, DefaultSymbols)
	require.Nil(t, perr)
	require.NotNil(t, info.DelayMinutes)
	assert.Equal(t, 45, *info.DelayMinutes)
}
