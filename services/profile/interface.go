package profile

import (
	"context"

	profileRepo "aerovoice/database/repository/profile"
	"aerovoice/models"
)

// ProfileService resolves and persists caller profiles. A nil profile with a
// nil error means the caller is unknown.
type ProfileService interface {
	Identify(ctx context.Context, phone string) (*models.UserProfile, error)
	GetByID(ctx context.Context, userID string) (*models.UserProfile, error)
	SaveFromContext(ctx context.Context, convo *models.ConversationContext) (string, error)
}

// DefaultProfileService is the production implementation. The repository may
// be nil in development, in which case only the built-in sample profiles
// resolve.
type DefaultProfileService struct {
	Repo profileRepo.ProfileRepository
}
