package dialogue

import (
	"context"
	"errors"
	"testing"
	"time"

	"aerovoice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLookup returns a fixed availability result and records the last search.
type stubLookup struct {
	offers     []models.FlightOffer
	lastOrigin string
	lastDest   string
}

func (s *stubLookup) Search(_ context.Context, origin, destination, class, date string) ([]models.FlightOffer, error) {
	s.lastOrigin = origin
	s.lastDest = destination
	return s.offers, nil
}

var testClock = time.Date(2025, 8, 28, 10, 0, 0, 0, time.UTC)

func newTestEngine(offers []models.FlightOffer) (*DefaultDialogueEngine, *stubLookup) {
	lookup := &stubLookup{offers: offers}
	e := NewDefaultDialogueEngine(NewMemorySessionStore(), lookup, nil)
	e.Now = func() time.Time { return testClock }
	return e, lookup
}

func businessOffers() []models.FlightOffer {
	return []models.FlightOffer{
		{Flight: "SQ003", Carrier: "SingaporeAir", Time: "09:30", Duration: "5h 30m", Price: 65000, Class: "Business", Aircraft: "Airbus A350", SeatsAvailable: 12},
		{Flight: "SQ007", Carrier: "SingaporeAir", Time: "19:45", Duration: "5h 30m", Price: 72000, Class: "Business", Aircraft: "Airbus A380", SeatsAvailable: 10},
	}
}

// say runs one utterance and fails the test on a store error.
func say(t *testing.T, e *DefaultDialogueEngine, session, utterance string) *models.DialogueResult {
	t.Helper()
	result, err := e.ProcessInput(context.Background(), session, utterance, nil)
	require.NoError(t, err)
	return result
}

func TestFullBookingFlow(t *testing.T) {
	e, _ := newTestEngine(businessOffers())
	session := "flow-1"

	r := say(t, e, session, "start booking")
	assert.Equal(t, "start_booking", r.Intent)
	assert.True(t, r.Advanced)

	r = say(t, e, session, "mumbai")
	assert.Equal(t, "set_origin", r.Intent)
	assert.Equal(t, "Mumbai", r.Entities["origin"])

	r = say(t, e, session, "singapore")
	assert.Equal(t, "set_destination", r.Intent)

	r = say(t, e, session, "tomorrow")
	assert.Equal(t, "set_date", r.Intent)
	assert.Equal(t, "2025-08-29", r.Entities["date"])

	r = say(t, e, session, "two")
	assert.Equal(t, "set_passengers", r.Intent)
	assert.Equal(t, 2, r.Entities["passengers"])

	r = say(t, e, session, "business")
	assert.Equal(t, "set_class", r.Intent)
	require.Len(t, r.Flights, 2)
	assert.Contains(t, r.ResponseText, "I found 2 Business flights.")

	r = say(t, e, session, "the morning flight")
	assert.Equal(t, "select_flight", r.Intent)
	require.NotNil(t, r.SelectedFlight)
	assert.Equal(t, "SQ003", r.SelectedFlight.Flight)

	r = say(t, e, session, "my name is raj kumar")
	assert.Equal(t, "set_name", r.Intent)
	assert.Equal(t, "Raj Kumar", r.Entities["name"])

	r = say(t, e, session, "raj@example.com")
	assert.Equal(t, "set_email", r.Intent)

	r = say(t, e, session, "9876543210")
	assert.Equal(t, "set_phone", r.Intent)

	r = say(t, e, session, "window")
	assert.Equal(t, "select_seat", r.Intent)
	assert.Equal(t, "12A", r.Entities["seat_number"])

	r = say(t, e, session, "vegetarian")
	assert.Equal(t, "set_meal", r.Intent)

	r = say(t, e, session, "no")
	assert.Equal(t, "no_assistance", r.Intent)
	assert.Contains(t, r.ResponseText, "Here's your booking summary:")
	assert.Contains(t, r.ResponseText, "Total fare: 130,000 rupees.")

	r = say(t, e, session, "confirm")
	assert.Equal(t, "confirm_booking", r.Intent)
	assert.Equal(t, float64(130000), r.TotalAmount)
	assert.Contains(t, r.ResponseText, "Total amount: ₹130,000.")

	r = say(t, e, session, "proceed to payment")
	assert.Equal(t, "payment_success", r.Intent)
	assert.True(t, r.BookingComplete)
	assert.Equal(t, "BK20250828100000", r.BookingID)

	status, err := e.Status(context.Background(), session)
	require.NoError(t, err)
	require.True(t, status.Active)
	assert.Equal(t, models.StepComplete, status.Context.Step)
	assert.True(t, status.Context.PaymentConfirmed)
}

func TestSmartBookingShortcut(t *testing.T) {
	e, lookup := newTestEngine(businessOffers())
	session := "smart-1"

	r := say(t, e, session, "book flight from mumbai to singapore tomorrow")
	assert.Equal(t, "smart_booking", r.Intent)
	assert.True(t, r.SmartFilled)
	assert.Contains(t, r.ResponseText, "Booking flight from Mumbai to Singapore on 2025-08-29")

	status, err := e.Status(context.Background(), session)
	require.NoError(t, err)
	require.True(t, status.Active)
	assert.Equal(t, models.StepPassengers, status.Context.Step)
	assert.Equal(t, "Mumbai", status.Context.Origin)
	assert.Equal(t, "Singapore", status.Context.Destination)
	assert.Equal(t, "2025-08-29", status.Context.TravelDate)

	// The shortcut lands on passengers; the flow continues normally.
	r = say(t, e, session, "one passenger")
	assert.Equal(t, "set_passengers", r.Intent)

	r = say(t, e, session, "business class")
	assert.Equal(t, "set_class", r.Intent)
	assert.Equal(t, "Mumbai", lookup.lastOrigin)
	assert.Equal(t, "Singapore", lookup.lastDest)
}

func TestSmartBookingWithoutDateLandsOnDate(t *testing.T) {
	e, _ := newTestEngine(businessOffers())
	session := "smart-2"

	r := say(t, e, session, "flight from delhi to london")
	assert.Equal(t, "smart_booking", r.Intent)

	status, err := e.Status(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, models.StepDate, status.Context.Step)
	assert.Empty(t, status.Context.TravelDate)
}

func TestIdentifiedCallerAutoFillFlow(t *testing.T) {
	e, _ := newTestEngine(businessOffers())
	session := "vip-1"
	profile := &models.UserProfile{
		UserID:      "user_raj",
		Name:        "Raj Kumar",
		Email:       "raj@example.com",
		Phone:       "9876543210",
		Preferences: models.TravelPreferences{Seat: "Window", Meal: "Vegetarian", Class: "Business"},
	}

	r, err := e.ProcessInput(context.Background(), session, "book flight from mumbai to singapore tomorrow", profile)
	require.NoError(t, err)
	assert.Equal(t, "smart_booking", r.Intent)
	assert.Contains(t, r.ResponseText, "I have your details: Raj Kumar, raj@example.com.")

	say(t, e, session, "one")
	say(t, e, session, "business")
	r = say(t, e, session, "the morning flight")
	assert.Equal(t, "select_flight", r.Intent)

	// Confirming the stored name jumps past the contact steps.
	r = say(t, e, session, "yes")
	assert.Equal(t, "confirm_autofill", r.Intent)
	assert.Contains(t, r.ResponseText, "Great! Using Raj Kumar.")

	status, err := e.Status(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, models.StepSeatSelection, status.Context.Step)
	assert.Equal(t, "raj@example.com", status.Context.Email)
	assert.Equal(t, "9876543210", status.Context.Phone)
}

func TestAutoFilledNameRejection(t *testing.T) {
	e, _ := newTestEngine(businessOffers())
	session := "vip-2"

	convo := NewConversation(session, &models.UserProfile{Name: "Raj Kumar", Email: "raj@example.com"})
	convo.Step = models.StepPassengerName
	convo.MarkAutoFilled("name")
	require.NoError(t, e.Store.Save(context.Background(), session, convo))

	r := say(t, e, session, "different name")
	assert.Equal(t, "request_new_name", r.Intent)
	assert.False(t, r.Advanced)

	status, err := e.Status(context.Background(), session)
	require.NoError(t, err)
	assert.Empty(t, status.Context.PassengerName)
	assert.False(t, status.Context.IsAutoFilled("name"))

	r = say(t, e, session, "priya sharma")
	assert.Equal(t, "set_name", r.Intent)
	assert.Equal(t, "Priya Sharma", r.Entities["name"])
}

func TestAutoFilledEmailSkipsOnAnyInput(t *testing.T) {
	e, _ := newTestEngine(businessOffers())
	session := "vip-3"

	convo := NewConversation(session, &models.UserProfile{Name: "Raj Kumar", Email: "raj@example.com"})
	convo.Step = models.StepEmail
	convo.MarkAutoFilled("email")
	require.NoError(t, e.Store.Save(context.Background(), session, convo))

	r := say(t, e, session, "sure")
	assert.Equal(t, "skip_email", r.Intent)
	assert.True(t, r.Advanced)
	assert.Contains(t, r.ResponseText, "Using email: raj@example.com.")

	status, err := e.Status(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, models.StepPhone, status.Context.Step)
}

func TestGoBack(t *testing.T) {
	e, _ := newTestEngine(businessOffers())
	session := "nav-1"

	r := say(t, e, session, "go back")
	assert.Equal(t, "go_back_fail", r.Intent)
	assert.Equal(t, "Already at the beginning.", r.ResponseText)
	assert.False(t, r.Advanced)

	say(t, e, session, "start booking")
	say(t, e, session, "mumbai")
	r = say(t, e, session, "go back")
	assert.Equal(t, "go_back", r.Intent)

	status, err := e.Status(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, models.StepOrigin, status.Context.Step)
}

func TestCancelEndsAnywhere(t *testing.T) {
	e, _ := newTestEngine(businessOffers())
	session := "nav-2"

	say(t, e, session, "start booking")
	say(t, e, session, "mumbai")
	r := say(t, e, session, "cancel")
	assert.True(t, r.Cancelled)
	assert.Equal(t, "Booking cancelled. Thank you!", r.ResponseText)
}

func TestHelpRepeatsPrompt(t *testing.T) {
	e, _ := newTestEngine(businessOffers())
	session := "nav-3"

	say(t, e, session, "start booking")
	r := say(t, e, session, "help")
	assert.Equal(t, "help", r.Intent)
	assert.Contains(t, r.ResponseText, Prompt(models.StepOrigin))
	assert.Contains(t, r.ResponseText, "Or say 'cancel' to stop, 'go back' to return.")
}

func TestRepromptOnUnclearInput(t *testing.T) {
	e, _ := newTestEngine(businessOffers())
	session := "nav-4"

	say(t, e, session, "start booking")
	say(t, e, session, "mumbai")
	say(t, e, session, "singapore")
	r := say(t, e, session, "hmm")
	assert.Equal(t, "date_unclear", r.Intent)
	assert.False(t, r.Advanced)
	assert.True(t, r.AutoListen)

	status, err := e.Status(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, models.StepDate, status.Context.Step)
}

func TestResetDestroysSession(t *testing.T) {
	e, _ := newTestEngine(businessOffers())
	session := "nav-5"

	say(t, e, session, "start booking")
	require.NoError(t, e.Reset(context.Background(), session))

	status, err := e.Status(context.Background(), session)
	require.NoError(t, err)
	assert.False(t, status.Active)
	assert.Nil(t, status.Context)
}

func TestStatusUnknownSession(t *testing.T) {
	e, _ := newTestEngine(nil)

	status, err := e.Status(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, status.Active)
}

func TestHistoryIsAppendOnly(t *testing.T) {
	e, _ := newTestEngine(businessOffers())
	session := "hist-1"

	say(t, e, session, "start booking")
	say(t, e, session, "mumbai")
	say(t, e, session, "hmm")

	status, err := e.Status(context.Background(), session)
	require.NoError(t, err)
	require.Len(t, status.Context.History, 3)
	assert.Equal(t, "start booking", status.Context.History[0].Utterance)
	assert.Equal(t, "hmm", status.Context.History[2].Utterance)
}

// bookingRecorder captures Create calls and can fail them on demand.
type bookingRecorder struct {
	created   []models.Booking
	createErr error
}

func (r *bookingRecorder) Create(_ context.Context, b models.Booking) (string, error) {
	if r.createErr != nil {
		return "", r.createErr
	}
	r.created = append(r.created, b)
	return b.BookingID, nil
}

func (r *bookingRecorder) GetByID(_ context.Context, _ string) (*models.Booking, error) {
	return nil, nil
}

func (r *bookingRecorder) GetByPhone(_ context.Context, _ string) ([]models.Booking, error) {
	return nil, nil
}

func (r *bookingRecorder) UpdateStatus(_ context.Context, _, _ string) error {
	return nil
}

func paymentReadyContext(session string) *models.ConversationContext {
	return &models.ConversationContext{
		SessionID:       session,
		Step:            models.StepPayment,
		Origin:          "Mumbai",
		Destination:     "Singapore",
		TravelDate:      "2025-08-29",
		Passengers:      2,
		ClassPreference: "Business",
		PassengerName:   "Raj Kumar",
		Email:           "raj@example.com",
		Phone:           "9876543210",
		SeatPreference:  "Window",
		SeatNumber:      "12A",
		MealPreference:  "Vegetarian",
		SelectedFlight: &models.FlightOffer{
			Flight: "SQ003", Carrier: "SingaporeAir", Time: "09:30",
			Duration: "5h 30m", Price: 65000, Class: "Business", Aircraft: "Airbus A350",
		},
	}
}

func TestPaymentPersistsBooking(t *testing.T) {
	repo := &bookingRecorder{}
	e := NewDefaultDialogueEngine(NewMemorySessionStore(), &stubLookup{}, repo)
	e.Now = func() time.Time { return testClock }
	session := "pay-1"
	require.NoError(t, e.Store.Save(context.Background(), session, paymentReadyContext(session)))

	r := say(t, e, session, "proceed to payment")
	assert.Equal(t, "payment_success", r.Intent)

	require.Len(t, repo.created, 1)
	b := repo.created[0]
	assert.Equal(t, "BK20250828100000", b.BookingID)
	assert.Equal(t, "Mumbai", b.Origin)
	assert.Equal(t, "Singapore", b.Destination)
	assert.Equal(t, "SQ003", b.Flight.Flight)
	assert.Equal(t, 2, b.Passengers)
	assert.Equal(t, float64(130000), b.TotalAmount)
	assert.Equal(t, "confirmed", b.Status)
	assert.Empty(t, b.AssistanceType)
	assert.Equal(t, testClock, b.CreatedAt)
}

func TestPaymentPersistsAssistanceOnlyWhenNeeded(t *testing.T) {
	repo := &bookingRecorder{}
	e := NewDefaultDialogueEngine(NewMemorySessionStore(), &stubLookup{}, repo)
	e.Now = func() time.Time { return testClock }
	session := "pay-2"
	convo := paymentReadyContext(session)
	convo.AssistanceNeeded = true
	convo.AssistanceType = "Wheelchair"
	require.NoError(t, e.Store.Save(context.Background(), session, convo))

	say(t, e, session, "pay")
	require.Len(t, repo.created, 1)
	assert.Equal(t, "Wheelchair", repo.created[0].AssistanceType)
}

// A persistence failure is logged, never surfaced: the caller still gets a
// successful payment result.
func TestPaymentSucceedsWhenPersistenceFails(t *testing.T) {
	repo := &bookingRecorder{createErr: errors.New("mongo down")}
	e := NewDefaultDialogueEngine(NewMemorySessionStore(), &stubLookup{}, repo)
	e.Now = func() time.Time { return testClock }
	session := "pay-3"
	require.NoError(t, e.Store.Save(context.Background(), session, paymentReadyContext(session)))

	r := say(t, e, session, "proceed to payment")
	assert.Equal(t, "payment_success", r.Intent)
	assert.True(t, r.BookingComplete)
	assert.Equal(t, "BK20250828100000", r.BookingID)
	assert.Empty(t, repo.created)
}

func TestWelcomeGreetings(t *testing.T) {
	e, _ := newTestEngine(nil)

	r := say(t, e, "greet-1", "hello there")
	assert.Equal(t, "greeting", r.Intent)

	profile := &models.UserProfile{Name: "Raj Kumar"}
	r2, err := e.ProcessInput(context.Background(), "greet-2", "hello", profile)
	require.NoError(t, err)
	assert.Equal(t, "greeting_identified", r2.Intent)
	assert.Contains(t, r2.ResponseText, "Hello Raj Kumar!")
}
