package bookingRepo

import (
	"testing"

	"sparkle/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestWindowQuery(t *testing.T) {
	q := windowQuery(WindowFilter{From: "2026-03-29", To: "2026-05-09"})
	assert.Equal(t, bson.M{"$gte": "2026-03-29", "$lte": "2026-05-09"}, q["scheduledDate"])
	assert.Equal(t, bson.M{"$ne": models.BookingStatusCancelled}, q["status"])
	assert.NotContains(t, q, "cleaner.id")
}

func TestWindowQueryScopedToCleaner(t *testing.T) {
	q := windowQuery(WindowFilter{From: "2026-04-01", To: "2026-04-30", CleanerID: "c-1", IncludeCancelled: true})
	assert.Equal(t, "c-1", q["cleaner.id"])
	assert.NotContains(t, q, "status")
}
