package profileRepo

import (
	"context"
	"time"

	"aerovoice/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID returns a saved profile by its user ID, or nil when unknown.
func (r *mongoProfileRepo) GetByID(ctx context.Context, userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByPhone returns a saved profile by phone number, or nil when unknown.
func (r *mongoProfileRepo) GetByPhone(ctx context.Context, phone string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.coll.FindOne(ctx, bson.M{"phone": phone}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert creates or updates a profile keyed by user ID.
func (r *mongoProfileRepo) Upsert(ctx context.Context, profile models.UserProfile) error {
	profile.UpdatedAt = time.Now()
	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"userId": profile.UserID},
		bson.M{"$set": profile},
		opts,
	)
	return err
}
