package profile

import (
	"context"
	"errors"
	"fmt"

	"aerovoice/models"
	"aerovoice/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// sampleProfiles is the demo fallback used when no database is wired or the
// lookup misses, mirroring the seeded development data.
var sampleProfiles = map[string]models.UserProfile{
	"9876543210": {
		UserID: "user_sample_1",
		Name:   "Raj Kumar",
		Email:  "raj.kumar@example.com",
		Phone:  "9876543210",
		Preferences: models.TravelPreferences{
			Seat:  "Window",
			Meal:  "Vegetarian",
			Class: "Economy",
		},
		History: []models.RouteFrequency{
			{Route: "mumbai-singapore", Frequency: 5},
			{Route: "delhi-london", Frequency: 2},
		},
	},
}

// Identify resolves a caller by phone number, standing in for the voice
// identification pipeline. Repository failures degrade to the sample set and
// are logged, never surfaced.
func (s *DefaultProfileService) Identify(ctx context.Context, phone string) (*models.UserProfile, error) {
	if s.Repo != nil {
		p, err := s.Repo.GetByPhone(ctx, phone)
		if err != nil {
			utils.GetLogger().Warn("Profile lookup failed, using sample fallback",
				zap.String("phone", phone), zap.Error(err))
		} else if p != nil {
			return p, nil
		}
	}
	if p, ok := sampleProfiles[phone]; ok {
		return &p, nil
	}
	return nil, nil
}

// GetByID returns a saved profile by user ID, or nil when unknown.
func (s *DefaultProfileService) GetByID(ctx context.Context, userID string) (*models.UserProfile, error) {
	if s.Repo != nil {
		p, err := s.Repo.GetByID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("get profile %q: %w", userID, err)
		}
		if p != nil {
			return p, nil
		}
	}
	for _, p := range sampleProfiles {
		if p.UserID == userID {
			return &p, nil
		}
	}
	return nil, nil
}

// SaveFromContext persists the contact and preference slots of a finished
// conversation as a reusable profile and returns its ID.
func (s *DefaultProfileService) SaveFromContext(ctx context.Context, convo *models.ConversationContext) (string, error) {
	if convo.Phone == "" {
		return "", errors.New("conversation has no phone number to key the profile")
	}

	p := models.UserProfile{
		UserID: "user_" + uuid.New().String()[:10],
		Name:   convo.PassengerName,
		Email:  convo.Email,
		Phone:  convo.Phone,
		Preferences: models.TravelPreferences{
			Seat:  convo.SeatPreference,
			Meal:  convo.MealPreference,
			Class: convo.ClassPreference,
		},
	}

	if s.Repo != nil {
		existing, err := s.Repo.GetByPhone(ctx, convo.Phone)
		if err == nil && existing != nil {
			p.UserID = existing.UserID
			p.History = existing.History
		}
		if err := s.Repo.Upsert(ctx, p); err != nil {
			return "", fmt.Errorf("save profile: %w", err)
		}
	}
	return p.UserID, nil
}
