// File: database/repository/warning/interface.go
package warningRepo

import (
	"context"
	"time"

	"sparkle/database"
	"sparkle/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Occurrence is one sighting of several warning subjects, such as the
// unmatched extras of a single quote.
type Occurrence struct {
	Kind        string
	ServiceType string
	Subjects    []string
	SeenAt      time.Time
	// TaskID identifies the delivery. A retried delivery with the same
	// TaskID is not counted twice.
	TaskID string
}

// WarningRepository stores pricing configuration warnings for the admin portal.
type WarningRepository interface {
	// Record counts one more occurrence of (kind, serviceType, subject) for
	// every subject in a single write.
	Record(ctx context.Context, o Occurrence) error
	List(ctx context.Context) ([]models.PricingWarning, error)
	Delete(ctx context.Context, id string) error
}

type mongoWarningRepo struct {
	coll *mongo.Collection
}

// NewMongoWarningRepo constructs a MongoDB WarningRepository.
func NewMongoWarningRepo() WarningRepository {
	return NewWarningRepo(database.Database())
}

// NewWarningRepo constructs a repository on an explicit database.
func NewWarningRepo(db *mongo.Database) WarningRepository {
	return &mongoWarningRepo{coll: db.Collection("pricing_warnings")}
}
