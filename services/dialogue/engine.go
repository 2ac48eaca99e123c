package dialogue

import (
	"context"
	"fmt"
	"strings"

	"aerovoice/models"
	"aerovoice/services/flights"
	"aerovoice/utils"

	"go.uber.org/zap"
)

// NewConversation builds a fresh context for a session, seeded from an
// identified caller's profile when one is available.
func NewConversation(sessionID string, profile *models.UserProfile) *models.ConversationContext {
	convo := &models.ConversationContext{
		SessionID:       sessionID,
		Step:            models.StepWelcome,
		Passengers:      1,
		ClassPreference: "Economy",
		AutoFilled:      []string{},
	}
	if profile != nil {
		convo.VoiceIdentified = true
		convo.PassengerName = profile.Name
		convo.Email = profile.Email
		convo.Phone = profile.Phone
		convo.SeatPreference = profile.Preferences.Seat
		convo.MealPreference = profile.Preferences.Meal
		if profile.Preferences.Class != "" {
			convo.ClassPreference = profile.Preferences.Class
		}
	}
	return convo
}

// ProcessInput handles one utterance for a session, creating the session on
// first contact. Processing is serialized per session id so concurrent
// requests against the same session cannot interleave their read-modify-write
// of the context.
func (e *DefaultDialogueEngine) ProcessInput(ctx context.Context, sessionID, utterance string, profile *models.UserProfile) (*models.DialogueResult, error) {
	lock := e.locks.get(sessionID)
	lock.Lock()
	defer lock.Unlock()

	convo, err := e.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session %q: %w", sessionID, err)
	}
	if convo == nil {
		convo = NewConversation(sessionID, profile)
	}

	result := e.process(ctx, convo, utterance)

	if err := e.Store.Save(ctx, sessionID, convo); err != nil {
		return nil, fmt.Errorf("save session %q: %w", sessionID, err)
	}
	return result, nil
}

// Status reports whether a session exists and exposes its context.
func (e *DefaultDialogueEngine) Status(ctx context.Context, sessionID string) (*models.SessionStatus, error) {
	convo, err := e.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session %q: %w", sessionID, err)
	}
	if convo == nil {
		return &models.SessionStatus{Active: false}, nil
	}
	return &models.SessionStatus{Active: true, Context: convo}, nil
}

// Reset destroys a session. Resetting an unknown session is a no-op.
func (e *DefaultDialogueEngine) Reset(ctx context.Context, sessionID string) error {
	if err := e.Store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session %q: %w", sessionID, err)
	}
	e.locks.drop(sessionID)
	return nil
}

// process runs one utterance through the global commands, the smart-booking
// shortcut and the current step's slot extractor, mutating convo in place.
func (e *DefaultDialogueEngine) process(ctx context.Context, convo *models.ConversationContext, utterance string) *models.DialogueResult {
	input := strings.ToLower(strings.TrimSpace(utterance))
	convo.History = append(convo.History, models.HistoryEntry{Utterance: input, Time: e.Now()})

	// Global commands take priority over everything.
	if matchIntent(input, cancelWords) {
		return &models.DialogueResult{
			ResponseText: "Booking cancelled. Thank you!",
			Intent:       "cancel",
			Cancelled:    true,
		}
	}
	if matchIntent(input, backWords) {
		if convo.Step > models.StepWelcome {
			convo.Step--
			return &models.DialogueResult{
				ResponseText: "Going back. " + Prompt(convo.Step),
				Intent:       "go_back",
				AutoListen:   true,
			}
		}
		return &models.DialogueResult{
			ResponseText: "Already at the beginning.",
			Intent:       "go_back_fail",
			AutoListen:   true,
		}
	}
	if matchIntent(input, helpWords) {
		return &models.DialogueResult{
			ResponseText: Prompt(convo.Step) + " Or say 'cancel' to stop, 'go back' to return.",
			Intent:       "help",
			AutoListen:   true,
		}
	}

	// A full itinerary in one utterance can short-circuit the early steps.
	if convo.Step < models.StepPassengers {
		if booking, ok := DetectSmartBooking(input, e.Now()); ok {
			return e.handleSmartBooking(convo, booking)
		}
	}

	switch convo.Step {
	case models.StepWelcome:
		return e.handleWelcome(convo, input)
	case models.StepOrigin:
		return e.handleOrigin(convo, input)
	case models.StepDestination:
		return e.handleDestination(convo, input)
	case models.StepDate:
		return e.handleDate(convo, input)
	case models.StepPassengers:
		return e.handlePassengers(convo, input)
	case models.StepClass:
		return e.handleClass(ctx, convo, input)
	case models.StepFlightSelection:
		return e.handleFlightSelection(ctx, convo, input)
	case models.StepPassengerName:
		return e.handlePassengerName(convo, input)
	case models.StepEmail:
		return e.handleEmail(convo, input)
	case models.StepPhone:
		return e.handlePhone(convo, input)
	case models.StepSeatSelection:
		return e.handleSeatSelection(convo, input)
	case models.StepMeal:
		return e.handleMeal(convo, input)
	case models.StepAssistance:
		return e.handleAssistance(convo, input)
	case models.StepReview:
		return e.handleReview(convo, input)
	case models.StepPayment:
		return e.handlePayment(ctx, convo, input)
	default:
		return &models.DialogueResult{
			ResponseText: "Your booking is complete! Have a great flight!",
			Intent:       "complete",
		}
	}
}

func (e *DefaultDialogueEngine) handleWelcome(convo *models.ConversationContext, input string) *models.DialogueResult {
	if matchIntent(input, greetingWords) {
		if convo.VoiceIdentified {
			return &models.DialogueResult{
				ResponseText: fmt.Sprintf("Hello %s! Ready to book your flight? Just say where and when.", convo.PassengerName),
				Intent:       "greeting_identified",
				AutoListen:   true,
			}
		}
		return &models.DialogueResult{ResponseText: Prompt(models.StepWelcome), Intent: "greeting", AutoListen: true}
	}
	if matchIntent(input, startWords) {
		convo.Step = models.StepOrigin
		return &models.DialogueResult{
			ResponseText: Prompt(models.StepOrigin),
			Intent:       "start_booking",
			Advanced:     true,
			AutoListen:   true,
		}
	}
	return &models.DialogueResult{ResponseText: Prompt(models.StepWelcome), Intent: "unknown", AutoListen: true}
}

func (e *DefaultDialogueEngine) handleOrigin(convo *models.ConversationContext, input string) *models.DialogueResult {
	origin, ok := ExtractCity(input)
	if !ok {
		return reprompt("Please say your departure city clearly.", "origin_unclear")
	}
	convo.Origin = origin
	convo.Step = models.StepDestination
	return &models.DialogueResult{
		ResponseText: fmt.Sprintf("Flying from %s. %s", origin, Prompt(models.StepDestination)),
		Intent:       "set_origin",
		Entities:     map[string]any{"origin": origin},
		Advanced:     true,
		AutoListen:   true,
	}
}

func (e *DefaultDialogueEngine) handleDestination(convo *models.ConversationContext, input string) *models.DialogueResult {
	destination, ok := ExtractCity(input)
	if !ok {
		return reprompt("Please say your destination city.", "destination_unclear")
	}
	convo.Destination = destination
	convo.Step = models.StepDate
	return &models.DialogueResult{
		ResponseText: fmt.Sprintf("To %s. %s", destination, Prompt(models.StepDate)),
		Intent:       "set_destination",
		Entities:     map[string]any{"destination": destination},
		Advanced:     true,
		AutoListen:   true,
	}
}

func (e *DefaultDialogueEngine) handleDate(convo *models.ConversationContext, input string) *models.DialogueResult {
	travelDate, ok := ExtractDate(input, e.Now())
	if !ok {
		return reprompt("Please say your travel date.", "date_unclear")
	}
	convo.TravelDate = travelDate
	convo.Step = models.StepPassengers
	return &models.DialogueResult{
		ResponseText: fmt.Sprintf("Travel date: %s. %s", travelDate, Prompt(models.StepPassengers)),
		Intent:       "set_date",
		Entities:     map[string]any{"date": travelDate},
		Advanced:     true,
		AutoListen:   true,
	}
}

func (e *DefaultDialogueEngine) handlePassengers(convo *models.ConversationContext, input string) *models.DialogueResult {
	passengers, ok := ExtractNumber(input)
	if !ok || passengers <= 0 {
		return reprompt("Please say the number of passengers.", "passengers_unclear")
	}
	convo.Passengers = passengers
	convo.Step = models.StepClass
	return &models.DialogueResult{
		ResponseText: fmt.Sprintf("%d passenger%s. %s", passengers, plural(passengers), Prompt(models.StepClass)),
		Intent:       "set_passengers",
		Entities:     map[string]any{"passengers": passengers},
		Advanced:     true,
		AutoListen:   true,
	}
}

// handleClass records the cabin class and runs the availability lookup; the
// class-filtered result is cached on the context and narrated as a
// time-of-day digest.
func (e *DefaultDialogueEngine) handleClass(ctx context.Context, convo *models.ConversationContext, input string) *models.DialogueResult {
	classPref, ok := ExtractClass(input)
	if !ok {
		return reprompt("Please say Economy or Business.", "class_unclear")
	}
	convo.ClassPreference = classPref

	offers, err := e.Flights.Search(ctx, convo.Origin, convo.Destination, classPref, convo.TravelDate)
	if err != nil {
		// The lookup degrades internally; an error here still leaves the
		// dialogue able to proceed on time-of-day keywords alone.
		utils.GetLogger().Warn("Availability lookup failed",
			zap.String("origin", convo.Origin),
			zap.String("destination", convo.Destination),
			zap.Error(err))
		offers = nil
	}
	convo.LastFlightsLookup = offers
	convo.Step = models.StepFlightSelection

	return &models.DialogueResult{
		ResponseText: fmt.Sprintf("%s class selected. %s", classPref, describeAvailability(offers, classPref)),
		Intent:       "set_class",
		Entities:     map[string]any{"class": classPref},
		Flights:      offers,
		Advanced:     true,
		AutoListen:   true,
	}
}

func (e *DefaultDialogueEngine) handleFlightSelection(ctx context.Context, convo *models.ConversationContext, input string) *models.DialogueResult {
	candidates := flights.FilterByClass(convo.LastFlightsLookup, convo.ClassPreference)
	if len(candidates) == 0 {
		if offers, err := e.Flights.Search(ctx, convo.Origin, convo.Destination, convo.ClassPreference, convo.TravelDate); err == nil {
			convo.LastFlightsLookup = offers
			candidates = offers
		}
	}

	flight := MatchFlight(input, candidates, convo.ClassPreference)
	if flight == nil {
		return reprompt("Please say morning, afternoon, or evening.", "flight_unclear")
	}
	convo.SelectedFlight = flight
	convo.Step = models.StepPassengerName

	return &models.DialogueResult{
		ResponseText:   flightDetails(flight) + " " + Prompt(models.StepPassengerName),
		Intent:         "select_flight",
		Entities:       map[string]any{"flight": flight},
		SelectedFlight: flight,
		Advanced:       true,
		AutoListen:     true,
	}
}

// handlePassengerName honors the auto-fill confirmation flow: an identified
// caller's stored name is confirmed or discarded before any extraction runs.
// Confirming jumps past the contact steps entirely.
func (e *DefaultDialogueEngine) handlePassengerName(convo *models.ConversationContext, input string) *models.DialogueResult {
	if convo.PassengerName != "" && convo.IsAutoFilled("name") {
		if matchIntent(input, affirmWords) {
			convo.Step = models.StepSeatSelection
			return &models.DialogueResult{
				ResponseText: fmt.Sprintf("Great! Using %s. %s", convo.PassengerName, Prompt(models.StepSeatSelection)),
				Intent:       "confirm_autofill",
				Advanced:     true,
				AutoListen:   true,
			}
		}
		if matchIntent(input, rejectWords) {
			convo.PassengerName = ""
			convo.ClearAutoFilled("name")
			return reprompt("Please say the passenger name.", "request_new_name")
		}
	}

	name, ok := ExtractName(input)
	if !ok {
		return reprompt("Please say the full name clearly.", "name_unclear")
	}
	convo.PassengerName = name
	convo.Step = models.StepEmail
	return &models.DialogueResult{
		ResponseText: fmt.Sprintf("Passenger name: %s. %s", name, Prompt(models.StepEmail)),
		Intent:       "set_name",
		Entities:     map[string]any{"name": name},
		Advanced:     true,
		AutoListen:   true,
	}
}

func (e *DefaultDialogueEngine) handleEmail(convo *models.ConversationContext, input string) *models.DialogueResult {
	if convo.Email != "" && convo.IsAutoFilled("email") {
		convo.Step = models.StepPhone
		return &models.DialogueResult{
			ResponseText: fmt.Sprintf("Using email: %s. %s", convo.Email, Prompt(models.StepPhone)),
			Intent:       "skip_email",
			Advanced:     true,
			AutoListen:   true,
		}
	}

	email, ok := ExtractEmail(input)
	if !ok {
		return reprompt("Please say your email address.", "email_unclear")
	}
	convo.Email = email
	convo.Step = models.StepPhone
	return &models.DialogueResult{
		ResponseText: fmt.Sprintf("Email: %s. %s", email, Prompt(models.StepPhone)),
		Intent:       "set_email",
		Entities:     map[string]any{"email": email},
		Advanced:     true,
		AutoListen:   true,
	}
}

func (e *DefaultDialogueEngine) handlePhone(convo *models.ConversationContext, input string) *models.DialogueResult {
	if convo.Phone != "" && convo.IsAutoFilled("phone") {
		convo.Step = models.StepSeatSelection
		return &models.DialogueResult{
			ResponseText: fmt.Sprintf("Using phone: %s. %s", convo.Phone, Prompt(models.StepSeatSelection)),
			Intent:       "skip_phone",
			Advanced:     true,
			AutoListen:   true,
		}
	}

	phone, ok := ExtractPhone(input)
	if !ok {
		return reprompt("Please say your 10-digit phone number.", "phone_unclear")
	}
	convo.Phone = phone
	convo.Step = models.StepSeatSelection
	return &models.DialogueResult{
		ResponseText: fmt.Sprintf("Phone: %s. %s", phone, Prompt(models.StepSeatSelection)),
		Intent:       "set_phone",
		Entities:     map[string]any{"phone": phone},
		Advanced:     true,
		AutoListen:   true,
	}
}

func (e *DefaultDialogueEngine) handleSeatSelection(convo *models.ConversationContext, input string) *models.DialogueResult {
	seat, ok := ExtractSeatPreference(input)
	if !ok {
		return reprompt("Please say window, aisle, or middle.", "seat_unclear")
	}
	convo.SeatPreference = seat
	convo.SeatNumber = AssignSeat(seat)
	convo.Step = models.StepMeal
	return &models.DialogueResult{
		ResponseText: fmt.Sprintf("%s seat - %s assigned. %s", seat, convo.SeatNumber, Prompt(models.StepMeal)),
		Intent:       "select_seat",
		Entities:     map[string]any{"seat": seat, "seat_number": convo.SeatNumber},
		Advanced:     true,
		AutoListen:   true,
	}
}

func (e *DefaultDialogueEngine) handleMeal(convo *models.ConversationContext, input string) *models.DialogueResult {
	meal, ok := ExtractMeal(input)
	if !ok {
		return reprompt("Please say vegetarian, non-vegetarian, or vegan.", "meal_unclear")
	}
	convo.MealPreference = meal
	convo.Step = models.StepAssistance
	return &models.DialogueResult{
		ResponseText: fmt.Sprintf("%s meal noted. %s", meal, Prompt(models.StepAssistance)),
		Intent:       "set_meal",
		Entities:     map[string]any{"meal": meal},
		Advanced:     true,
		AutoListen:   true,
	}
}

func (e *DefaultDialogueEngine) handleAssistance(convo *models.ConversationContext, input string) *models.DialogueResult {
	if matchIntent(input, noAssistWords) {
		convo.AssistanceNeeded = false
		convo.Step = models.StepReview
		return &models.DialogueResult{
			ResponseText: "No assistance needed. " + BuildReviewSummary(convo),
			Intent:       "no_assistance",
			Advanced:     true,
			AutoListen:   true,
		}
	}
	assistance, ok := ExtractAssistance(input)
	if !ok {
		return reprompt("Say wheelchair, visual aid, hearing assistance, or no.", "assistance_unclear")
	}
	convo.AssistanceNeeded = true
	convo.AssistanceType = assistance
	convo.Step = models.StepReview
	return &models.DialogueResult{
		ResponseText: fmt.Sprintf("%s assistance arranged. %s", assistance, BuildReviewSummary(convo)),
		Intent:       "set_assistance",
		Entities:     map[string]any{"assistance": assistance},
		Advanced:     true,
		AutoListen:   true,
	}
}

func (e *DefaultDialogueEngine) handleReview(convo *models.ConversationContext, input string) *models.DialogueResult {
	if matchIntent(input, confirmWords) {
		convo.Step = models.StepPayment
		total := convo.SelectedFlight.Price * float64(convo.Passengers)
		return &models.DialogueResult{
			ResponseText: fmt.Sprintf("Confirmed! Total amount: ₹%s. %s", formatAmount(total), Prompt(models.StepPayment)),
			Intent:       "confirm_booking",
			TotalAmount:  total,
			Advanced:     true,
			AutoListen:   true,
		}
	}
	if matchIntent(input, changeWords) {
		return reprompt("What would you like to change?", "request_change")
	}
	return reprompt("Say confirm to proceed or change to modify.", "review_unclear")
}

func (e *DefaultDialogueEngine) handlePayment(ctx context.Context, convo *models.ConversationContext, input string) *models.DialogueResult {
	if !matchIntent(input, payWords) {
		return reprompt("Say proceed to payment when ready.", "payment_pending")
	}
	convo.PaymentConfirmed = true
	convo.BookingID = "BK" + e.Now().Format("20060102150405")
	convo.Step = models.StepComplete

	e.persistBooking(ctx, convo)

	return &models.DialogueResult{
		ResponseText:    Prompt(models.StepComplete),
		Intent:          "payment_success",
		Advanced:        true,
		BookingComplete: true,
		BookingID:       convo.BookingID,
	}
}

// persistBooking records the completed reservation. Persistence failures are
// logged and never surfaced to the caller.
func (e *DefaultDialogueEngine) persistBooking(ctx context.Context, convo *models.ConversationContext) {
	if e.Bookings == nil || convo.SelectedFlight == nil {
		return
	}
	booking := models.Booking{
		BookingID:      convo.BookingID,
		Origin:         convo.Origin,
		Destination:    convo.Destination,
		TravelDate:     convo.TravelDate,
		Flight:         *convo.SelectedFlight,
		Passengers:     convo.Passengers,
		Class:          convo.ClassPreference,
		PassengerName:  convo.PassengerName,
		Email:          convo.Email,
		Phone:          convo.Phone,
		SeatNumber:     convo.SeatNumber,
		SeatPreference: convo.SeatPreference,
		MealPreference: convo.MealPreference,
		TotalAmount:    convo.SelectedFlight.Price * float64(convo.Passengers),
		Status:         "confirmed",
		CreatedAt:      e.Now(),
	}
	if convo.AssistanceNeeded {
		booking.AssistanceType = convo.AssistanceType
	}
	if _, err := e.Bookings.Create(ctx, booking); err != nil {
		utils.GetLogger().Error("Failed to persist booking",
			zap.String("bookingId", convo.BookingID),
			zap.Error(err))
	}
}

// handleSmartBooking applies a single-command itinerary: cities always, date
// when spoken, profile-seeded slots marked auto-filled, and the step jumped
// forward. The date is mandatory before flight search, so a missing date
// lands on the date step.
func (e *DefaultDialogueEngine) handleSmartBooking(convo *models.ConversationContext, booking *SmartBooking) *models.DialogueResult {
	convo.Origin = booking.Origin
	convo.Destination = booking.Destination
	if booking.Date != "" {
		convo.TravelDate = booking.Date
	}

	for _, s := range []struct{ slot, value string }{
		{"name", convo.PassengerName},
		{"email", convo.Email},
		{"phone", convo.Phone},
		{"seat", convo.SeatPreference},
		{"meal", convo.MealPreference},
	} {
		if s.value != "" {
			convo.MarkAutoFilled(s.slot)
		}
	}

	msg := fmt.Sprintf("Perfect! Booking flight from %s to %s", booking.Origin, booking.Destination)
	if booking.Date != "" {
		msg += fmt.Sprintf(" on %s", booking.Date)
	}
	if convo.VoiceIdentified {
		msg += fmt.Sprintf(". I have your details: %s, %s. ", convo.PassengerName, convo.Email)
	} else {
		msg += ". "
	}

	if booking.Date == "" {
		convo.Step = models.StepDate
	} else {
		convo.Step = models.StepPassengers
	}

	entities := map[string]any{"origin": booking.Origin, "destination": booking.Destination}
	if booking.Date != "" {
		entities["date"] = booking.Date
	}

	return &models.DialogueResult{
		ResponseText: msg + Prompt(convo.Step),
		Intent:       "smart_booking",
		Entities:     entities,
		SmartFilled:  true,
		Advanced:     true,
		AutoListen:   true,
	}
}

func reprompt(text, intent string) *models.DialogueResult {
	return &models.DialogueResult{ResponseText: text, Intent: intent, AutoListen: true}
}
