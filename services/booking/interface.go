package booking

import (
	"context"

	"sparkle/models"
	"sparkle/services/pricing"
)

// DraftStore persists wizard drafts between save points.
type DraftStore interface {
	Load(ctx context.Context, id string) (*models.BookingDraft, error)
	Save(ctx context.Context, draft *models.BookingDraft) error
	Delete(ctx context.Context, id string) error
}

// DraftView is a draft together with the quote for its current contents.
// Quote is nil until a service type has been chosen.
type DraftView struct {
	Draft models.BookingDraft `json:"draft"`
	Quote *pricing.Result     `json:"quote,omitempty"`
}

// DraftService drives the booking wizard.
type DraftService interface {
	Start(ctx context.Context, clientID string) (*DraftView, error)
	Load(ctx context.Context, id string) (*DraftView, error)
	Apply(ctx context.Context, id string, patch models.DraftPatch) (*DraftView, error)
	Discard(ctx context.Context, id string) error
}

// BookingService turns completed drafts into bookings and reads them back.
type BookingService interface {
	Submit(ctx context.Context, draftID, clientID string) (*models.Booking, error)
	ListWindow(ctx context.Context, from, to, cleanerID string) ([]models.Booking, error)
}
