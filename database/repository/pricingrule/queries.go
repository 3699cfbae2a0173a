// File: database/repository/pricingrule/queries.go
package pricingRuleRepo

import (
	"context"
	"fmt"
	"time"

	"sparkle/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var displayOrder = options.Find().SetSort(bson.D{
	{Key: "displayOrder", Value: 1},
	{Key: "createdAt", Value: 1},
})

func (r *mongoPricingRuleRepo) find(ctx context.Context, filter bson.M) ([]models.PricingRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, displayOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pricing rules: %w", err)
	}
	defer cursor.Close(ctx)

	rules := []models.PricingRule{}
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, fmt.Errorf("error decoding pricing rules: %w", err)
	}
	return rules, nil
}

func (r *mongoPricingRuleRepo) List(ctx context.Context, serviceType string) ([]models.PricingRule, error) {
	filter := bson.M{}
	if serviceType != "" {
		filter = bson.M{"$or": bson.A{
			bson.M{"serviceType": serviceType},
			bson.M{"serviceType": nil},
		}}
	}
	return r.find(ctx, filter)
}

func (r *mongoPricingRuleRepo) All(ctx context.Context) ([]models.PricingRule, error) {
	return r.find(ctx, bson.M{})
}
