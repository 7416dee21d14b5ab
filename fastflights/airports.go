package fastflights

import "strings"

// Airport is one entry of the embedded airport directory.
type Airport struct {
	Name string
	Code string
}

// Airports is the embedded airport directory, a subset of the airports
// the scrape endpoint understands.
var Airports = []Airport{
	{"Hartsfield Jackson Atlanta International Airport", "ATL"},
	{"Dallas Fort Worth International Airport", "DFW"},
	{"Denver International Airport", "DEN"},
	{"O'Hare International Airport", "ORD"},
	{"Los Angeles International Airport", "LAX"},
	{"John F Kennedy International Airport", "JFK"},
	{"LaGuardia Airport", "LGA"},
	{"Newark Liberty International Airport", "EWR"},
	{"San Francisco International Airport", "SFO"},
	{"Seattle Tacoma International Airport", "SEA"},
	{"Miami International Airport", "MIA"},
	{"Orlando International Airport", "MCO"},
	{"Harry Reid International Airport", "LAS"},
	{"Phoenix Sky Harbor International Airport", "PHX"},
	{"George Bush Intercontinental Airport", "IAH"},
	{"Logan International Airport", "BOS"},
	{"Minneapolis Saint Paul International Airport", "MSP"},
	{"Detroit Metropolitan Wayne County Airport", "DTW"},
	{"Philadelphia International Airport", "PHL"},
	{"Salt Lake City International Airport", "SLC"},
	{"Washington Dulles International Airport", "IAD"},
	{"Ronald Reagan Washington National Airport", "DCA"},
	{"Charlotte Douglas International Airport", "CLT"},
	{"San Diego International Airport", "SAN"},
	{"Tampa International Airport", "TPA"},
	{"Austin Bergstrom International Airport", "AUS"},
	{"Nashville International Airport", "BNA"},
	{"Portland International Airport", "PDX"},
	{"Honolulu Daniel K Inouye International Airport", "HNL"},
	{"Toronto Pearson International Airport", "YYZ"},
	{"Vancouver International Airport", "YVR"},
	{"Montreal Pierre Elliott Trudeau International Airport", "YUL"},
	{"Mexico City International Airport", "MEX"},
	{"Cancun International Airport", "CUN"},
	{"Sao Paulo Guarulhos International Airport", "GRU"},
	{"El Dorado International Airport", "BOG"},
	{"Ministro Pistarini International Airport", "EZE"},
	{"Heathrow Airport", "LHR"},
	{"Gatwick Airport", "LGW"},
	{"Charles de Gaulle Airport", "CDG"},
	{"Orly Airport", "ORY"},
	{"Amsterdam Airport Schiphol", "AMS"},
	{"Frankfurt Airport", "FRA"},
	{"Munich Airport", "MUC"},
	{"Zurich Airport", "ZRH"},
	{"Vienna International Airport", "VIE"},
	{"Adolfo Suarez Madrid Barajas Airport", "MAD"},
	{"Josep Tarradellas Barcelona El Prat Airport", "BCN"},
	{"Leonardo da Vinci Fiumicino Airport", "FCO"},
	{"Milan Malpensa Airport", "MXP"},
	{"Lisbon Humberto Delgado Airport", "LIS"},
	{"Dublin Airport", "DUB"},
	{"Copenhagen Airport", "CPH"},
	{"Oslo Gardermoen Airport", "OSL"},
	{"Stockholm Arlanda Airport", "ARN"},
	{"Helsinki Vantaa Airport", "HEL"},
	{"Athens International Airport", "ATH"},
	{"Istanbul Airport", "IST"},
	{"Ben Gurion Airport", "TLV"},
	{"Dubai International Airport", "DXB"},
	{"Hamad International Airport", "DOH"},
	{"King Abdulaziz International Airport", "JED"},
	{"Cairo International Airport", "CAI"},
	{"O R Tambo International Airport", "JNB"},
	{"Jomo Kenyatta International Airport", "NBO"},
	{"Indira Gandhi International Airport", "DEL"},
	{"Chhatrapati Shivaji Maharaj International Airport", "BOM"},
	{"Suvarnabhumi Airport", "BKK"},
	{"Singapore Changi Airport", "SIN"},
	{"Kuala Lumpur International Airport", "KUL"},
	{"Soekarno Hatta International Airport", "CGK"},
	{"Ninoy Aquino International Airport", "MNL"},
	{"Hong Kong International Airport", "HKG"},
	{"Taiwan Taoyuan International Airport", "TPE"},
	{"Incheon International Airport", "ICN"},
	{"Narita International Airport", "NRT"},
	{"Haneda Airport", "HND"},
	{"Kansai International Airport", "KIX"},
	{"Beijing Capital International Airport", "PEK"},
	{"Shanghai Pudong International Airport", "PVG"},
	{"Sydney Kingsford Smith Airport", "SYD"},
	{"Melbourne Airport", "MEL"},
	{"Auckland Airport", "AKL"},
}

// SearchAirports returns directory entries whose name or code contains
// query, case-insensitively. An empty query matches everything.
func SearchAirports(query string) []Airport {
	query = strings.ToLower(query)

	var matches []Airport
	for _, a := range Airports {
		if strings.Contains(strings.ToLower(a.Name), query) ||
			strings.Contains(strings.ToLower(a.Code), query) {
			matches = append(matches, a)
		}
	}
	return matches
}
