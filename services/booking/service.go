package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "sparkle/database/repository/booking"
	"sparkle/models"
	"sparkle/services/pricing"
	"sparkle/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService creates bookings from drafts. The price and
// duration are evaluated once, at submission, and stored on the booking.
type DefaultBookingService struct {
	Drafts   DraftStore
	Bookings bookingRepo.BookingRepository
	Pricing  pricing.PricingService
	Logger   *zap.Logger
	Now      func() time.Time
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now()
}

// Submit books a complete draft for clientID and removes the draft.
func (s *DefaultBookingService) Submit(ctx context.Context, draftID, clientID string) (*models.Booking, error) {
	d, err := s.Drafts.Load(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if err := checkReachable(d, models.StepReview); err != nil {
		return nil, err
	}
	if d.ClientID != "" && clientID != "" && d.ClientID != clientID {
		return nil, ErrDraftNotFound
	}
	// Drafts outlive the day they were scheduled on.
	if err := checkDate(d.Date, s.now()); err != nil {
		return nil, err
	}

	quote, err := s.Pricing.Quote(ctx, configurationOf(d))
	if err != nil {
		return nil, fmt.Errorf("failed to price draft %s: %w", draftID, err)
	}

	b := &models.Booking{
		ID:              uuid.New().String(),
		ClientID:        clientID,
		ServiceType:     d.ServiceType,
		ScheduledDate:   d.Date,
		ScheduledTime:   d.Time,
		DurationMinutes: quote.DurationMinutes,
		SquareFootage:   d.SquareFootage,
		Bedrooms:        d.Bedrooms,
		Bathrooms:       d.Bathrooms,
		Extras:          d.Extras,
		BasePrice:       quote.Base,
		ExtrasPrice:     quote.Extras,
		FinalPrice:      quote.Total,
		Contact:         d.Contact,
		Notes:           d.Notes,
		Status:          models.BookingStatusScheduled,
		CreatedAt:       s.now(),
	}
	if err := s.Bookings.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err := s.Drafts.Delete(ctx, draftID); err != nil {
		s.logger().Warn("Submit: failed to delete draft", zap.String("draftID", draftID), zap.Error(err))
	}
	s.logger().Info("Booking created",
		zap.String("bookingID", b.ID),
		zap.String("serviceType", b.ServiceType),
		zap.String("date", b.ScheduledDate),
		zap.Float64("finalPrice", b.FinalPrice))
	return b, nil
}

// ListWindow returns non-cancelled bookings scheduled between from and to
// inclusive, optionally for a single cleaner.
func (s *DefaultBookingService) ListWindow(ctx context.Context, from, to, cleanerID string) ([]models.Booking, error) {
	if _, err := time.Parse(utils.DateLayout, from); err != nil {
		return nil, &pricing.ValidationError{Field: "from", Reason: "must be YYYY-MM-DD"}
	}
	if _, err := time.Parse(utils.DateLayout, to); err != nil {
		return nil, &pricing.ValidationError{Field: "to", Reason: "must be YYYY-MM-DD"}
	}
	if from > to {
		return nil, &pricing.ValidationError{Field: "from", Reason: "must not be after to"}
	}
	return s.Bookings.ListWindow(ctx, bookingRepo.WindowFilter{From: from, To: to, CleanerID: cleanerID})
}
