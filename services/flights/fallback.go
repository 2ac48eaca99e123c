package flights

import (
	"sort"
	"strings"

	"aerovoice/models"
)

// routeTable is the static availability data used when the external API is
// unreachable or returns nothing. Keys are "origin-destination", lowercase.
var routeTable = map[string][]models.FlightOffer{
	"mumbai-delhi": {
		{Flight: "AI101", Carrier: "AirIndia", Time: "06:00", Duration: "2h 15m", Price: 4500, Class: "Economy", Aircraft: "Boeing 737", Stops: 0, SeatsAvailable: 25},
		{Flight: "AI103", Carrier: "AirIndia", Time: "09:30", Duration: "2h 15m", Price: 5200, Class: "Economy", Aircraft: "Airbus A320", Stops: 0, SeatsAvailable: 20},
		{Flight: "AI105", Carrier: "AirIndia", Time: "12:45", Duration: "2h 15m", Price: 8500, Class: "Business", Aircraft: "Boeing 787", Stops: 0, SeatsAvailable: 8},
	},
	"mumbai-singapore": {
		{Flight: "SQ001", Carrier: "SingaporeAir", Time: "02:30", Duration: "5h 30m", Price: 28500, Class: "Economy", Aircraft: "Boeing 787-10", Stops: 0, SeatsAvailable: 60},
		{Flight: "SQ003", Carrier: "SingaporeAir", Time: "09:30", Duration: "5h 30m", Price: 65000, Class: "Business", Aircraft: "Airbus A350", Stops: 0, SeatsAvailable: 12},
		{Flight: "SQ005", Carrier: "SingaporeAir", Time: "14:15", Duration: "5h 30m", Price: 32000, Class: "Economy", Aircraft: "Boeing 777-300ER", Stops: 0, SeatsAvailable: 48},
		{Flight: "SQ007", Carrier: "SingaporeAir", Time: "19:45", Duration: "5h 30m", Price: 72000, Class: "Business", Aircraft: "Airbus A380", Stops: 0, SeatsAvailable: 10},
	},
	"delhi-singapore": {
		{Flight: "SQ011", Carrier: "SingaporeAir", Time: "01:45", Duration: "5h 45m", Price: 30000, Class: "Economy", Aircraft: "Boeing 787-10", Stops: 0, SeatsAvailable: 55},
		{Flight: "SQ013", Carrier: "SingaporeAir", Time: "08:30", Duration: "5h 45m", Price: 68000, Class: "Business", Aircraft: "Airbus A350", Stops: 0, SeatsAvailable: 9},
		{Flight: "SQ015", Carrier: "SingaporeAir", Time: "15:00", Duration: "5h 45m", Price: 33500, Class: "Economy", Aircraft: "Boeing 777-300ER", Stops: 0, SeatsAvailable: 40},
	},
	"singapore-london": {
		{Flight: "SQ301", Carrier: "SingaporeAir", Time: "23:55", Duration: "13h 30m", Price: 120000, Class: "Economy", Aircraft: "Airbus A350", Stops: 0, SeatsAvailable: 70},
		{Flight: "SQ303", Carrier: "SingaporeAir", Time: "09:20", Duration: "13h 30m", Price: 350000, Class: "Business", Aircraft: "Airbus A380", Stops: 0, SeatsAvailable: 16},
	},
	"singapore-new york": {
		{Flight: "SQ401", Carrier: "SingaporeAir", Time: "19:00", Duration: "18h 00m", Price: 250000, Class: "Economy", Aircraft: "Boeing 777-300ER", Stops: 1, SeatsAvailable: 90},
		{Flight: "SQ403", Carrier: "SingaporeAir", Time: "23:15", Duration: "18h 00m", Price: 600000, Class: "Business", Aircraft: "Airbus A350", Stops: 1, SeatsAvailable: 18},
	},
	"mumbai-bangkok": {
		{Flight: "TG301", Carrier: "ThaiAir", Time: "04:00", Duration: "4h 30m", Price: 18500, Class: "Economy", Aircraft: "Boeing 787-8", Stops: 0, SeatsAvailable: 44},
		{Flight: "TG303", Carrier: "ThaiAir", Time: "10:30", Duration: "4h 30m", Price: 42000, Class: "Business", Aircraft: "Airbus A350", Stops: 0, SeatsAvailable: 8},
	},
	"bangalore-dubai": {
		{Flight: "EK101", Carrier: "Emirates", Time: "03:15", Duration: "4h 15m", Price: 22000, Class: "Economy", Aircraft: "Boeing 777-300ER", Stops: 0, SeatsAvailable: 60},
		{Flight: "EK103", Carrier: "Emirates", Time: "08:45", Duration: "4h 15m", Price: 52000, Class: "Business", Aircraft: "Airbus A380", Stops: 0, SeatsAvailable: 12},
	},
	"delhi-london": {
		{Flight: "BA101", Carrier: "BritishAir", Time: "02:00", Duration: "9h 30m", Price: 45000, Class: "Economy", Aircraft: "Boeing 787-9", Stops: 0, SeatsAvailable: 60},
		{Flight: "BA103", Carrier: "BritishAir", Time: "10:00", Duration: "9h 30m", Price: 125000, Class: "Business", Aircraft: "Airbus A350", Stops: 0, SeatsAvailable: 14},
	},
	"mumbai-paris": {
		{Flight: "AF201", Carrier: "AirFrance", Time: "01:30", Duration: "10h 15m", Price: 48000, Class: "Economy", Aircraft: "Boeing 787-9", Stops: 0, SeatsAvailable: 55},
	},
	"delhi-new york": {
		{Flight: "AI191", Carrier: "AirIndia", Time: "01:00", Duration: "15h 30m", Price: 85000, Class: "Economy", Aircraft: "Boeing 777-300ER", Stops: 0, SeatsAvailable: 80},
	},
	"delhi-sydney": {
		{Flight: "QF401", Carrier: "Qantas", Time: "04:00", Duration: "13h 30m", Price: 75000, Class: "Economy", Aircraft: "Boeing 787-9", Stops: 0, SeatsAvailable: 70},
	},
	"kolkata-chennai": {
		{Flight: "6E201", Carrier: "IndiGo", Time: "06:20", Duration: "1h 50m", Price: 4800, Class: "Economy", Aircraft: "Airbus A320", Stops: 0, SeatsAvailable: 32},
		{Flight: "UK501", Carrier: "Vistara", Time: "15:30", Duration: "1h 45m", Price: 12500, Class: "Business", Aircraft: "Airbus A320neo", Stops: 0, SeatsAvailable: 8},
		{Flight: "6E203", Carrier: "IndiGo", Time: "19:10", Duration: "1h 55m", Price: 5200, Class: "Economy", Aircraft: "Airbus A320", Stops: 0, SeatsAvailable: 28},
	},
	"chennai-kolkata": {
		{Flight: "6E202", Carrier: "IndiGo", Time: "07:00", Duration: "1h 50m", Price: 5000, Class: "Economy", Aircraft: "Airbus A320", Stops: 0, SeatsAvailable: 30},
		{Flight: "UK502", Carrier: "Vistara", Time: "16:15", Duration: "1h 45m", Price: 12800, Class: "Business", Aircraft: "Airbus A320neo", Stops: 0, SeatsAvailable: 6},
		{Flight: "6E204", Carrier: "IndiGo", Time: "20:05", Duration: "1h 55m", Price: 5400, Class: "Economy", Aircraft: "Airbus A320", Stops: 0, SeatsAvailable: 25},
	},
}

// sortedRoutes keeps the origin/destination fallback scans deterministic.
var sortedRoutes = func() []string {
	keys := make([]string, 0, len(routeTable))
	for k := range routeTable {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}()

// RouteKey builds the lowercase "origin-destination" key used by the table.
func RouteKey(origin, destination string) string {
	return strings.ToLower(origin) + "-" + strings.ToLower(destination)
}

// LocalFlights returns the raw table entry for a route, without any class
// filter or fallback. Used by the availability endpoint.
func LocalFlights(origin, destination string) []models.FlightOffer {
	return routeTable[RouteKey(origin, destination)]
}

// FallbackFlights resolves offers from the static table with a widening
// cascade: exact route, then the swapped route, then any route sharing the
// origin, then any route sharing the destination. Results are class-filtered
// at every stage; an empty slice means no alternative exists.
func FallbackFlights(origin, destination, class string) []models.FlightOffer {
	o := strings.ToLower(origin)
	d := strings.ToLower(destination)

	if offers := FilterByClass(routeTable[o+"-"+d], class); len(offers) > 0 {
		return offers
	}
	if offers := FilterByClass(routeTable[d+"-"+o], class); len(offers) > 0 {
		return offers
	}
	for _, route := range sortedRoutes {
		if strings.HasPrefix(route, o+"-") {
			if offers := FilterByClass(routeTable[route], class); len(offers) > 0 {
				return offers
			}
		}
	}
	for _, route := range sortedRoutes {
		if strings.HasSuffix(route, "-"+d) {
			if offers := FilterByClass(routeTable[route], class); len(offers) > 0 {
				return offers
			}
		}
	}
	return nil
}
