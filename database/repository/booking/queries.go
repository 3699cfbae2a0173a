// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"sparkle/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func windowQuery(f WindowFilter) bson.M {
	filter := bson.M{
		"scheduledDate": bson.M{"$gte": f.From, "$lte": f.To},
	}
	if f.CleanerID != "" {
		filter["cleaner.id"] = f.CleanerID
	}
	if !f.IncludeCancelled {
		filter["status"] = bson.M{"$ne": models.BookingStatusCancelled}
	}
	return filter
}

// ListWindow fetches every booking in the window in one read, ordered by date
// and start time.
func (r *mongoBookingRepo) ListWindow(ctx context.Context, f WindowFilter) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "scheduledDate", Value: 1},
		{Key: "scheduledTime", Value: 1},
	})
	cursor, err := r.coll.Find(ctx, windowQuery(f), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
