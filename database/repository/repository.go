package repository

import (
	"context"

	bookingRepo "sparkle/database/repository/booking"
	pricingRuleRepo "sparkle/database/repository/pricingrule"
	warningRepo "sparkle/database/repository/warning"

	"go.mongodb.org/mongo-driver/mongo"
)

// Re-export the PricingRuleRepository interface and constructor.
type PricingRuleRepository = pricingRuleRepo.PricingRuleRepository

var NewMongoPricingRuleRepo = pricingRuleRepo.NewMongoPricingRuleRepo

// Re-export the BookingRepository interface and constructor.
type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo

// Re-export the WarningRepository interface and constructor.
type WarningRepository = warningRepo.WarningRepository

var NewMongoWarningRepo = warningRepo.NewMongoWarningRepo

// EnsureIndexes creates the indexes of every collection the server uses.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, ensure := range []func(context.Context, *mongo.Database) error{
		pricingRuleRepo.EnsureIndexes,
		bookingRepo.EnsureIndexes,
		warningRepo.EnsureIndexes,
	} {
		if err := ensure(ctx, db); err != nil {
			return err
		}
	}
	return nil
}
