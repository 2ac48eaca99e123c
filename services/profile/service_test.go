package profile

import (
	"context"
	"testing"

	"aerovoice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory ProfileRepository keyed by phone.
type fakeRepo struct {
	byPhone map[string]models.UserProfile
	saved   []models.UserProfile
}

func (r *fakeRepo) GetByID(_ context.Context, userID string) (*models.UserProfile, error) {
	for _, p := range r.byPhone {
		if p.UserID == userID {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) GetByPhone(_ context.Context, phone string) (*models.UserProfile, error) {
	if p, ok := r.byPhone[phone]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *fakeRepo) Upsert(_ context.Context, p models.UserProfile) error {
	if r.byPhone == nil {
		r.byPhone = make(map[string]models.UserProfile)
	}
	r.byPhone[p.Phone] = p
	r.saved = append(r.saved, p)
	return nil
}

func TestIdentifySampleFallback(t *testing.T) {
	svc := &DefaultProfileService{}

	p, err := svc.Identify(context.Background(), "9876543210")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Raj Kumar", p.Name)

	p, err = svc.Identify(context.Background(), "0000000000")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestIdentifyPrefersRepository(t *testing.T) {
	repo := &fakeRepo{byPhone: map[string]models.UserProfile{
		"9876543210": {UserID: "user_db", Name: "Raj K", Phone: "9876543210"},
	}}
	svc := &DefaultProfileService{Repo: repo}

	p, err := svc.Identify(context.Background(), "9876543210")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "user_db", p.UserID)
}

func TestSaveFromContext(t *testing.T) {
	repo := &fakeRepo{}
	svc := &DefaultProfileService{Repo: repo}

	convo := &models.ConversationContext{
		PassengerName:   "Priya Sharma",
		Email:           "priya@example.com",
		Phone:           "9123456780",
		SeatPreference:  "Aisle",
		MealPreference:  "Vegan",
		ClassPreference: "Economy",
	}

	userID, err := svc.SaveFromContext(context.Background(), convo)
	require.NoError(t, err)
	assert.NotEmpty(t, userID)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, "Priya Sharma", repo.saved[0].Name)
	assert.Equal(t, "Aisle", repo.saved[0].Preferences.Seat)
}

func TestSaveFromContextKeepsExistingID(t *testing.T) {
	repo := &fakeRepo{byPhone: map[string]models.UserProfile{
		"9123456780": {
			UserID:  "user_existing",
			Phone:   "9123456780",
			History: []models.RouteFrequency{{Route: "mumbai-delhi", Frequency: 3}},
		},
	}}
	svc := &DefaultProfileService{Repo: repo}

	convo := &models.ConversationContext{PassengerName: "Priya Sharma", Phone: "9123456780"}
	userID, err := svc.SaveFromContext(context.Background(), convo)
	require.NoError(t, err)
	assert.Equal(t, "user_existing", userID)
	require.Len(t, repo.saved, 1)
	assert.Len(t, repo.saved[0].History, 1)
}

func TestSaveFromContextRequiresPhone(t *testing.T) {
	svc := &DefaultProfileService{}
	_, err := svc.SaveFromContext(context.Background(), &models.ConversationContext{PassengerName: "Anon"})
	assert.Error(t, err)
}
