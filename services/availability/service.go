package availability

import (
	"context"
	"fmt"

	bookingRepo "sparkle/database/repository/booking"

	"go.uber.org/zap"
)

// AvailabilityService serves the scheduling calendar from fresh booking reads.
type AvailabilityService interface {
	MonthCalendar(ctx context.Context, month YearMonth, cleanerID string) (Calendar, error)
	DaySchedule(ctx context.Context, day Day, cleanerID string) ([]ScheduledBooking, error)
}

// DefaultAvailabilityService is the production implementation. Results are
// recomputed on every call; nothing is cached.
type DefaultAvailabilityService struct {
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

func (s *DefaultAvailabilityService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// MonthCalendar loads the bookings covering month's whole grid, including the
// spill-over days of adjacent months, and summarises them.
func (s *DefaultAvailabilityService) MonthCalendar(ctx context.Context, month YearMonth, cleanerID string) (Calendar, error) {
	from, to := Window(month)
	bookings, err := s.Bookings.ListWindow(ctx, bookingRepo.WindowFilter{
		From:      from.String(),
		To:        to.String(),
		CleanerID: cleanerID,
	})
	if err != nil {
		return Calendar{}, fmt.Errorf("failed to load bookings for %s: %w", month, err)
	}
	s.logger().Debug("MonthCalendar: bookings loaded",
		zap.String("month", month.String()),
		zap.String("cleanerID", cleanerID),
		zap.Int("bookings", len(bookings)))

	return BuildCalendar(bookings, month), nil
}

// DaySchedule returns the bookings on day, earliest first.
func (s *DefaultAvailabilityService) DaySchedule(ctx context.Context, day Day, cleanerID string) ([]ScheduledBooking, error) {
	bookings, err := s.Bookings.ListWindow(ctx, bookingRepo.WindowFilter{
		From:      day.String(),
		To:        day.String(),
		CleanerID: cleanerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", day, err)
	}
	return DetailFor(bookings, day), nil
}
