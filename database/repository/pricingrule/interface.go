// File: database/repository/pricingrule/interface.go
package pricingRuleRepo

import (
	"context"

	"sparkle/database"
	"sparkle/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PricingRuleRepository persists admin-editable pricing rules.
type PricingRuleRepository interface {
	Create(ctx context.Context, rule *models.PricingRule) error
	Update(ctx context.Context, rule *models.PricingRule) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.PricingRule, error)
	// List returns the rules that apply to serviceType (its own plus the
	// unscoped ones) in display order. An empty serviceType lists everything.
	List(ctx context.Context, serviceType string) ([]models.PricingRule, error)
	// All returns every rule in a single read.
	All(ctx context.Context) ([]models.PricingRule, error)
}

type mongoPricingRuleRepo struct {
	coll *mongo.Collection
}

// NewMongoPricingRuleRepo constructs a MongoDB PricingRuleRepository.
func NewMongoPricingRuleRepo() PricingRuleRepository {
	return NewPricingRuleRepo(database.Database())
}

// NewPricingRuleRepo constructs a repository on an explicit database.
func NewPricingRuleRepo(db *mongo.Database) PricingRuleRepository {
	return &mongoPricingRuleRepo{coll: db.Collection("pricing_rules")}
}
