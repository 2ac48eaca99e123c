package profileRepo

import (
	"context"

	"aerovoice/database"
	"aerovoice/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, userID string) (*models.UserProfile, error)
	GetByPhone(ctx context.Context, phone string) (*models.UserProfile, error)
	Upsert(ctx context.Context, profile models.UserProfile) error
}

type mongoProfileRepo struct {
	coll *mongo.Collection
}

// NewMongoProfileRepo returns a ProfileRepository backed by MongoDB.
func NewMongoProfileRepo() ProfileRepository {
	db := database.MongoClient.Database("aerovoice")
	return &mongoProfileRepo{
		coll: db.Collection("profiles"),
	}
}
