package models

import "time"

// Step identifies a stage in the booking conversation. The flow is linear:
// each successful extraction moves the session to the next step, with the
// smart-booking shortcut and auto-fill skips as the only forward jumps.
type Step int

const (
	StepWelcome Step = iota
	StepOrigin
	StepDestination
	StepDate
	StepPassengers
	StepClass
	StepFlightSelection
	StepPassengerName
	StepEmail
	StepPhone
	StepSeatSelection
	StepMeal
	StepAssistance
	StepReview
	StepPayment
	StepComplete
)

var stepNames = [...]string{
	"welcome", "origin", "destination", "date", "passengers", "class",
	"flight_selection", "passenger_name", "email", "phone", "seat_selection",
	"meal", "assistance", "review", "payment", "complete",
}

func (s Step) String() string {
	if s < StepWelcome || s > StepComplete {
		return "unknown"
	}
	return stepNames[s]
}

// HistoryEntry is one recorded utterance. The history log is append-only and
// never pruned for the lifetime of the session.
type HistoryEntry struct {
	Utterance string    `json:"user"`
	Time      time.Time `json:"time"`
}

// ConversationContext is the per-session booking state. It is owned by the
// dialogue engine; all mutation happens under the session store's per-key
// lock.
type ConversationContext struct {
	SessionID       string `json:"sessionId"`
	Step            Step   `json:"step"`
	VoiceIdentified bool   `json:"voiceIdentified"`

	Origin          string `json:"origin,omitempty"`
	Destination     string `json:"destination,omitempty"`
	TravelDate      string `json:"travelDate,omitempty"`
	Passengers      int    `json:"passengers"`
	ClassPreference string `json:"classPreference"`

	SelectedFlight *FlightOffer `json:"selectedFlight,omitempty"`

	PassengerName  string `json:"passengerName,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	SeatPreference string `json:"seatPreference,omitempty"`
	SeatNumber     string `json:"seatNumber,omitempty"`
	MealPreference string `json:"mealPreference,omitempty"`

	AssistanceNeeded bool   `json:"assistanceNeeded"`
	AssistanceType   string `json:"assistanceType,omitempty"`

	PaymentConfirmed bool   `json:"paymentConfirmed"`
	BookingID        string `json:"bookingId,omitempty"`

	// AutoFilled records which slots were seeded from an identified user
	// profile. A slot listed here always carries a non-empty value.
	AutoFilled []string `json:"autoFilled"`

	History []HistoryEntry `json:"history"`

	// LastFlightsLookup caches the most recent availability result, scoped to
	// the current class preference.
	LastFlightsLookup []FlightOffer `json:"lastFlightsLookup,omitempty"`
}

// IsAutoFilled reports whether the named slot was seeded from a profile.
func (c *ConversationContext) IsAutoFilled(slot string) bool {
	for _, s := range c.AutoFilled {
		if s == slot {
			return true
		}
	}
	return false
}

// MarkAutoFilled adds a slot to the auto-filled set, once.
func (c *ConversationContext) MarkAutoFilled(slot string) {
	if !c.IsAutoFilled(slot) {
		c.AutoFilled = append(c.AutoFilled, slot)
	}
}

// ClearAutoFilled removes a slot from the auto-filled set.
func (c *ConversationContext) ClearAutoFilled(slot string) {
	for i, s := range c.AutoFilled {
		if s == slot {
			c.AutoFilled = append(c.AutoFilled[:i], c.AutoFilled[i+1:]...)
			return
		}
	}
}

// DialogueResult is what the engine returns for a single utterance.
type DialogueResult struct {
	ResponseText string         `json:"response"`
	Intent       string         `json:"intent"`
	Advanced     bool           `json:"advance"`
	AutoListen   bool           `json:"auto_listen"`
	Entities     map[string]any `json:"entities,omitempty"`

	Flights        []FlightOffer `json:"flights,omitempty"`
	SelectedFlight *FlightOffer  `json:"selected_flight,omitempty"`
	SmartFilled    bool          `json:"smart_filled,omitempty"`

	Cancelled       bool    `json:"booking_cancelled,omitempty"`
	BookingComplete bool    `json:"booking_complete,omitempty"`
	BookingID       string  `json:"booking_id,omitempty"`
	TotalAmount     float64 `json:"total_amount,omitempty"`
}

// SessionStatus is returned by the status endpoint.
type SessionStatus struct {
	Active  bool                 `json:"active"`
	Context *ConversationContext `json:"context,omitempty"`
}
