// File: database/repository/warning/crud.go
package warningRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sparkle/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// recentTaskLimit bounds how many delivery ids a warning remembers.
const recentTaskLimit = 50

const duplicateKeyCode = 11000

func recordFilter(o Occurrence, subject string) bson.M {
	filter := bson.M{"kind": o.Kind, "serviceType": o.ServiceType, "subject": subject}
	if o.TaskID != "" {
		filter["taskIds"] = bson.M{"$ne": o.TaskID}
	}
	return filter
}

func recordUpdate(o Occurrence) bson.M {
	update := bson.M{
		"$inc":         bson.M{"occurrences": 1},
		"$set":         bson.M{"lastSeen": o.SeenAt},
		"$setOnInsert": bson.M{"id": uuid.New().String(), "firstSeen": o.SeenAt},
	}
	if o.TaskID != "" {
		update["$push"] = bson.M{"taskIds": bson.M{"$each": []string{o.TaskID}, "$slice": -recentTaskLimit}}
	}
	return update
}

// alreadyRecorded reports whether every failed write hit the unique subject
// index. That happens when the filter skipped a document already carrying
// the task id and the upsert then collided with it.
func alreadyRecorded(err error) bool {
	var bwe mongo.BulkWriteException
	if !errors.As(err, &bwe) || bwe.WriteConcernError != nil || len(bwe.WriteErrors) == 0 {
		return false
	}
	for _, we := range bwe.WriteErrors {
		if we.Code != duplicateKeyCode {
			return false
		}
	}
	return true
}

func (r *mongoWarningRepo) Record(ctx context.Context, o Occurrence) error {
	if len(o.Subjects) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	writes := make([]mongo.WriteModel, 0, len(o.Subjects))
	for _, subject := range o.Subjects {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(recordFilter(o, subject)).
			SetUpdate(recordUpdate(o)).
			SetUpsert(true))
	}

	_, err := r.coll.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	if err != nil && !alreadyRecorded(err) {
		return fmt.Errorf("failed to record pricing warnings: %w", err)
	}
	return nil
}

func (r *mongoWarningRepo) List(ctx context.Context) ([]models.PricingWarning, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "lastSeen", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pricing warnings: %w", err)
	}
	defer cursor.Close(ctx)

	warnings := []models.PricingWarning{}
	if err := cursor.All(ctx, &warnings); err != nil {
		return nil, fmt.Errorf("error decoding pricing warnings: %w", err)
	}
	return warnings, nil
}

func (r *mongoWarningRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete pricing warning: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
