package fastflights

// Trip types accepted by the scraper.
const (
	TripOneWay    = "one-way"
	TripRoundTrip = "round-trip"
)

// Seat classes accepted by the scraper.
var SeatClasses = []string{"economy", "premium-economy", "business", "first"}

// FlightData describes one flight segment of a search query.
type FlightData struct {
	Date        string `json:"date"`
	FromAirport string `json:"from_airport"`
	ToAirport   string `json:"to_airport"`
	MaxStops    int    `json:"max_stops"`
}

// Passengers describes the passenger counts for a search query.
type Passengers struct {
	Adults        int `json:"adults"`
	Children      int `json:"children"`
	InfantsInSeat int `json:"infants_in_seat"`
	InfantsOnLap  int `json:"infants_on_lap"`
}

// FetchRequest is the full search query sent to the scrape endpoint.
type FetchRequest struct {
	FlightData []FlightData `json:"flight_data"`
	Trip       string       `json:"trip"`
	Seat       string       `json:"seat"`
	Passengers Passengers   `json:"passengers"`
	FetchMode  string       `json:"fetch_mode"`
}

// Flight is one raw scraped flight. All fields are free text exactly as
// extracted from the results page, except IsBest and Stops.
type Flight struct {
	IsBest           bool   `json:"is_best"`
	Name             string `json:"name"`
	Departure        string `json:"departure"`
	Arrival          string `json:"arrival"`
	ArrivalTimeAhead string `json:"arrival_time_ahead"`
	Duration         string `json:"duration"`
	Stops            int    `json:"stops"`
	Price            string `json:"price"`
	Delay            string `json:"delay,omitempty"`
}

// Result is the raw batch returned by the scrape endpoint.
// CurrentPrice is the qualitative price-level indicator for the route
// ("low", "typical" or "high").
type Result struct {
	CurrentPrice string   `json:"current_price"`
	Flights      []Flight `json:"flights"`
}
