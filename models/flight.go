package models

// FlightOffer is a single bookable flight returned by an availability lookup.
// Offers are immutable once returned.
type FlightOffer struct {
	Flight         string  `json:"flight"`
	Carrier        string  `json:"carrier"`
	Time           string  `json:"time"` // departure, 24h "HH:MM"
	Duration       string  `json:"duration,omitempty"`
	Price          float64 `json:"price"`
	Class          string  `json:"class"`
	Aircraft       string  `json:"aircraft,omitempty"`
	Stops          int     `json:"stops"`
	SeatsAvailable int     `json:"seats_available,omitempty"`

	// Unscheduled marks a synthesized placeholder offer, produced when the
	// caller named a time of day but no live inventory existed. Such offers
	// carry a zero price and must be treated as unpriced, not free.
	Unscheduled bool `json:"unscheduled,omitempty"`
}

// DepartureHour returns the 24h departure hour, or -1 if the time field is
// not parseable.
func (f FlightOffer) DepartureHour() int {
	if len(f.Time) < 2 {
		return -1
	}
	h := 0
	for i := 0; i < len(f.Time) && f.Time[i] != ':'; i++ {
		c := f.Time[i]
		if c < '0' || c > '9' {
			return -1
		}
		h = h*10 + int(c-'0')
	}
	if h > 23 {
		return -1
	}
	return h
}
