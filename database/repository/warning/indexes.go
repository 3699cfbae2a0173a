// FILE: database/repository/warning/indexes.go
package warningRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the pricing_warnings collection.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// One document per warning subject; Record upserts on this key.
		{
			Keys:    bson.D{{Key: "kind", Value: 1}, {Key: "serviceType", Value: 1}, {Key: "subject", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("kind_service_subject_idx"),
		},
	}

	if _, err := db.Collection("pricing_warnings").Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create pricing warning indexes: %w", err)
	}
	return nil
}
