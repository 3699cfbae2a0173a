// FILE: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Calendar window queries (primary query pattern).
		{
			Keys:    bson.D{{Key: "scheduledDate", Value: 1}, {Key: "scheduledTime", Value: 1}},
			Options: options.Index().SetName("scheduled_date_time_idx"),
		},
		// Cleaner portal: own schedule.
		{
			Keys:    bson.D{{Key: "cleaner.id", Value: 1}, {Key: "scheduledDate", Value: 1}},
			Options: options.Index().SetName("cleaner_date_idx"),
		},
	}

	if _, err := db.Collection("bookings").Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
