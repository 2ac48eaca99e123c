package dialogue

import (
	"context"
	"time"

	bookingRepo "aerovoice/database/repository/booking"
	"aerovoice/models"
	"aerovoice/services/flights"
)

// DialogueEngine drives the booking conversation for any number of sessions.
type DialogueEngine interface {
	ProcessInput(ctx context.Context, sessionID, utterance string, profile *models.UserProfile) (*models.DialogueResult, error)
	Status(ctx context.Context, sessionID string) (*models.SessionStatus, error)
	Reset(ctx context.Context, sessionID string) error
}

// DefaultDialogueEngine implements DialogueEngine over a session store, a
// flight lookup collaborator and an optional booking repository for
// persisting completed reservations.
type DefaultDialogueEngine struct {
	Store    SessionStore
	Flights  flights.LookupService
	Bookings bookingRepo.BookingRepository

	// Now supplies the clock for date extraction and booking ids.
	Now func() time.Time

	locks *sessionLocks
}

func NewDefaultDialogueEngine(store SessionStore, lookup flights.LookupService, bookings bookingRepo.BookingRepository) *DefaultDialogueEngine {
	return &DefaultDialogueEngine{
		Store:    store,
		Flights:  lookup,
		Bookings: bookings,
		Now:      time.Now,
		locks:    newSessionLocks(),
	}
}
