// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"sparkle/database"
	"sparkle/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// WindowFilter selects bookings whose scheduled date lies in [From, To].
// Dates are "YYYY-MM-DD" strings, which order lexically.
type WindowFilter struct {
	From      string
	To        string
	CleanerID string // optional
	// IncludeCancelled keeps cancelled bookings in the result.
	IncludeCancelled bool
}

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	ListWindow(ctx context.Context, filter WindowFilter) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return NewBookingRepo(database.Database())
}

// NewBookingRepo constructs a repository on an explicit database.
func NewBookingRepo(db *mongo.Database) BookingRepository {
	return &mongoBookingRepo{coll: db.Collection("bookings")}
}
