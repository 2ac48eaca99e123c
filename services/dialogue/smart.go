package dialogue

import (
	"regexp"
	"time"
)

// SmartBooking is the itinerary captured from a single out-of-order command
// such as "book flight from mumbai to singapore tomorrow".
type SmartBooking struct {
	Origin      string
	Destination string
	Date        string // empty when no date was spoken
}

var (
	fromClause = regexp.MustCompile(`from\s+(\w+)`)
	toClause   = regexp.MustCompile(`to\s+(\w+)`)
)

// DetectSmartBooking scans an utterance for an origin/destination pair and an
// optional date, regardless of the current step. Both cities must resolve for
// a detection; the date is independent and optional.
func DetectSmartBooking(input string, now time.Time) (*SmartBooking, bool) {
	var origin, destination string

	if m := fromClause.FindStringSubmatch(input); m != nil {
		origin, _ = ExtractCity(m[1])
	}
	// "to" also shows up in infinitives ("i want to fly from ..."), so the
	// last to-clause is the destination.
	if ms := toClause.FindAllStringSubmatch(input, -1); len(ms) > 0 {
		destination, _ = ExtractCity(ms[len(ms)-1][1])
	}
	if origin == "" || destination == "" {
		return nil, false
	}

	date, _ := ExtractDate(input, now)
	return &SmartBooking{Origin: origin, Destination: destination, Date: date}, true
}
