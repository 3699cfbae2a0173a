// FILE: database/repository/pricingrule/indexes.go
package pricingRuleRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the pricing_rules collection.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Admin listing: scoped rules in display order.
		{
			Keys:    bson.D{{Key: "serviceType", Value: 1}, {Key: "displayOrder", Value: 1}},
			Options: options.Index().SetName("service_type_order_idx"),
		},
	}

	if _, err := db.Collection("pricing_rules").Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create pricing rule indexes: %w", err)
	}
	return nil
}
