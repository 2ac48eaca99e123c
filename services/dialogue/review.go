package dialogue

import (
	"fmt"
	"strconv"
	"strings"

	"aerovoice/models"
)

// formatAmount renders a fare with thousands separators, dropping a zero
// fraction ("65,000", "1,234.50").
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return b.String() + frac
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

// BuildReviewSummary renders the confirmation summary read back before
// payment. The field order is fixed: the same context always produces the
// same text.
func BuildReviewSummary(c *models.ConversationContext) string {
	flight := c.SelectedFlight
	total := flight.Price * float64(c.Passengers)

	var b strings.Builder
	b.WriteString("Here's your booking summary: ")
	fmt.Fprintf(&b, "Flight %s operated by %s, ", flight.Flight, flight.Aircraft)
	fmt.Fprintf(&b, "departing %s at %s, ", c.Origin, flight.Time)
	fmt.Fprintf(&b, "arriving %s, flight duration %s. ", c.Destination, flight.Duration)
	fmt.Fprintf(&b, "Travel date: %s. ", c.TravelDate)
	fmt.Fprintf(&b, "%d passenger%s in %s class. ", c.Passengers, plural(c.Passengers), c.ClassPreference)
	fmt.Fprintf(&b, "Passenger name: %s. ", c.PassengerName)
	fmt.Fprintf(&b, "Contact: %s, %s. ", c.Email, c.Phone)
	fmt.Fprintf(&b, "Seat: %s %s. ", c.SeatNumber, c.SeatPreference)
	fmt.Fprintf(&b, "Meal: %s. ", c.MealPreference)
	if c.AssistanceNeeded && c.AssistanceType != "" {
		fmt.Fprintf(&b, "Special assistance: %s. ", c.AssistanceType)
	}
	fmt.Fprintf(&b, "Total fare: %s rupees. ", formatAmount(total))
	b.WriteString("Say confirm to proceed with booking.")
	return b.String()
}

// describeAvailability builds the spoken digest of an availability result:
// one representative flight per time-of-day bucket.
func describeAvailability(offers []models.FlightOffer, class string) string {
	if len(offers) == 0 {
		return "I found some flights. Would you prefer morning, afternoon, or evening?"
	}

	var morning, afternoon, evening *models.FlightOffer
	for i := range offers {
		h := offers[i].DepartureHour()
		switch {
		case h >= 5 && h < 12:
			if morning == nil {
				morning = &offers[i]
			}
		case h >= 12 && h < 18:
			if afternoon == nil {
				afternoon = &offers[i]
			}
		default:
			if evening == nil {
				evening = &offers[i]
			}
		}
	}

	var options []string
	describe := func(label string, f *models.FlightOffer) {
		if f == nil {
			return
		}
		options = append(options, fmt.Sprintf("%s: Flight %s at %s, %s, %s, %s rupees",
			label, f.Flight, f.Time, f.Duration, f.Aircraft, formatAmount(f.Price)))
	}
	describe("Morning", morning)
	describe("Afternoon", afternoon)
	describe("Evening", evening)

	return fmt.Sprintf("I found %d %s flights. %s. Which time works for you?",
		len(offers), class, strings.Join(options, ". "))
}

// flightDetails narrates a selected flight with price, duration, aircraft and
// seat availability.
func flightDetails(f *models.FlightOffer) string {
	priceText := "price not available"
	if f.Price > 0 {
		priceText = "₹" + formatAmount(f.Price)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Selected %s operated by %s, departing at %s", f.Flight, f.Carrier, f.Time)
	if f.Duration != "" {
		fmt.Fprintf(&b, ", duration %s", f.Duration)
	}
	b.WriteString(".")
	if f.Aircraft != "" {
		fmt.Fprintf(&b, " Aircraft: %s.", f.Aircraft)
	}
	fmt.Fprintf(&b, " Price: %s.", priceText)
	if f.SeatsAvailable > 0 {
		fmt.Fprintf(&b, " Seats available: %d.", f.SeatsAvailable)
	}
	return b.String()
}
