package flights

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jonzarecki/fast-flights-mcp/log"
)

// TimeOfDay is a wall-clock ceiling, independent of date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses an "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, err
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (t TimeOfDay) minutes() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Criteria are the optional ceilings applied to a result set. A nil
// field is a no-op stage: every flight passes it.
type Criteria struct {
	// MaxPrice is denominated in whatever currency each flight
	// currently holds (the ceiling itself carries no currency).
	MaxPrice           *int
	MaxDurationMinutes *int
	LatestArrival      *TimeOfDay
	MaxDelayMinutes    *int
}

// Apply narrows results.Flights to the flights passing every criterion,
// in place. Relative order is preserved, and re-applying the same
// criteria to the survivors is a no-op.
func (c Criteria) Apply(ctx context.Context, results *FlightResults) {
	original := len(results.Flights)

	kept := results.Flights[:0]
	for _, f := range results.Flights {
		if c.keep(ctx, f) {
			kept = append(kept, f)
		}
	}
	results.Flights = kept

	log.Infof(ctx, "Finished filtering flights. Original count: %d, Filtered count: %d", original, len(kept))
}

func (c Criteria) keep(ctx context.Context, f FlightInfo) bool {
	if c.MaxPrice != nil {
		if f.Price == nil {
			log.Infof(ctx, "Filtering out flight %s due to missing price", f.Name)
			return false
		}
		ceiling := decimal.NewFromInt(int64(*c.MaxPrice))
		if f.Price.Amount.GreaterThan(ceiling) {
			log.Infof(ctx, "Filtering out flight %s due to price: %s > %d %s",
				f.Name, f.Price, *c.MaxPrice, f.Price.Currency)
			return false
		}
	}

	if c.MaxDurationMinutes != nil {
		if f.DurationMinutes == nil || *f.DurationMinutes > *c.MaxDurationMinutes {
			log.Infof(ctx, "Filtering out flight %s due to duration", f.Name)
			return false
		}
	}

	if c.LatestArrival != nil {
		arrival := f.Arrival.Hour()*60 + f.Arrival.Minute()
		if arrival > c.LatestArrival.minutes() {
			log.Infof(ctx, "Filtering out flight %s due to arrival time: %s > %s",
				f.Name, f.Arrival.Format("15:04"), c.LatestArrival)
			return false
		}
	}

	// Unknown delay passes.
	if c.MaxDelayMinutes != nil && f.DelayMinutes != nil && *f.DelayMinutes > *c.MaxDelayMinutes {
		log.Infof(ctx, "Filtering out flight %s due to delay: %dm > %dm",
			f.Name, *f.DelayMinutes, *c.MaxDelayMinutes)
		return false
	}

	return true
}
