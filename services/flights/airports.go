package flights

import "strings"

// airportCodes maps recognized city names to IATA codes for external API
// queries.
var airportCodes = map[string]string{
	"mumbai":             "BOM",
	"delhi":              "DEL",
	"bangalore":          "BLR",
	"bengaluru":          "BLR",
	"chennai":            "MAA",
	"kolkata":            "CCU",
	"hyderabad":          "HYD",
	"ahmedabad":          "AMD",
	"pune":               "PNQ",
	"kochi":              "COK",
	"cochin":             "COK",
	"goa":                "GOI",
	"jaipur":             "JAI",
	"lucknow":            "LKO",
	"chandigarh":         "IXC",
	"thiruvananthapuram": "TRV",
	"trivandrum":         "TRV",
	"coimbatore":         "CJB",
	"dubai":              "DXB",
	"singapore":          "SIN",
	"london":             "LHR",
	"new york":           "JFK",
	"los angeles":        "LAX",
	"paris":              "CDG",
	"tokyo":              "NRT",
	"sydney":             "SYD",
	"bangkok":            "BKK",
}

// AirportCode returns the IATA code for a city name, or "" if unknown.
func AirportCode(city string) string {
	return airportCodes[strings.ToLower(strings.TrimSpace(city))]
}

// queryLocation prefers the IATA code for external API queries, keeping the
// spoken city name for places the map does not know.
func queryLocation(city string) string {
	if code := AirportCode(city); code != "" {
		return code
	}
	return city
}
