package dialogue

import (
	"strings"

	"aerovoice/models"
)

// stepPrompts is the static step table shared by all sessions.
var stepPrompts = [...]string{
	models.StepWelcome:         `Welcome to Voice Airline Booking! I'll help you book your flight. Say "start booking" to begin, or say "help" for assistance.`,
	models.StepOrigin:          "Great! Where are you flying from? Please say your departure city.",
	models.StepDestination:     "And where would you like to fly to? Please say your destination city.",
	models.StepDate:            `When would you like to travel? You can say "today", "tomorrow", or a specific date.`,
	models.StepPassengers:      "How many passengers will be traveling?",
	models.StepClass:           "Would you prefer Economy or Business class?",
	models.StepFlightSelection: "I found some flights for you. Which time slot works best?",
	models.StepPassengerName:   "Please tell me the passenger's full name.",
	models.StepEmail:           "What's your email address for the booking confirmation?",
	models.StepPhone:           "Please provide your phone number.",
	models.StepSeatSelection:   "Would you like a window seat, aisle seat, or middle seat?",
	models.StepMeal:            "Any meal preference? We have vegetarian, non-vegetarian, or vegan options.",
	models.StepAssistance:      "Do you need any special assistance like wheelchair, visual aid, or hearing assistance?",
	models.StepReview:          `Let me confirm your booking details. Say "confirm" to proceed or "change" to modify.`,
	models.StepPayment:         `Your total amount is shown. Say "proceed to payment" when ready.`,
	models.StepComplete:        "Payment successful! Your booking is confirmed. You'll receive an email confirmation shortly. Thank you for choosing us!",
}

// Prompt returns the spoken prompt for a step.
func Prompt(s models.Step) string {
	if s < models.StepWelcome || s > models.StepComplete {
		return stepPrompts[models.StepWelcome]
	}
	return stepPrompts[s]
}

// Intent keyword families, checked as substrings of the lowercased utterance.
var (
	cancelWords   = []string{"cancel", "stop", "exit", "quit", "end"}
	backWords     = []string{"go back", "previous", "back"}
	helpWords     = []string{"help", "what do i say", "what should i say"}
	greetingWords = []string{"hello", "hi", "hey", "good morning", "good afternoon"}
	startWords    = []string{"start", "begin", "book", "booking"}
	affirmWords   = []string{"yes", "correct", "ok", "confirm"}
	rejectWords   = []string{"no", "change", "different"}
	confirmWords  = []string{"confirm", "yes", "proceed", "correct"}
	changeWords   = []string{"change", "modify", "edit", "wrong"}
	payWords      = []string{"proceed", "payment", "pay", "confirm payment"}
	noAssistWords = []string{"no", "none", "not needed", "no thanks"}
)

// matchIntent reports whether any keyword occurs in the utterance.
func matchIntent(input string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(input, k) {
			return true
		}
	}
	return false
}
