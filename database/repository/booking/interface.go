package bookingRepo

import (
	"context"

	"aerovoice/database"
	"aerovoice/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	GetByPhone(ctx context.Context, phone string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID, status string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("aerovoice")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
