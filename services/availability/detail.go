package availability

import (
	"sort"
	"strings"
	"time"

	"sparkle/models"
	"sparkle/utils"
)

// Unassigned labels bookings without a cleaner.
const Unassigned = "Unassigned"

// ScheduledBooking is a booking as shown in a day's schedule.
type ScheduledBooking struct {
	models.Booking
	CleanerName string `json:"cleanerName"`
}

// CleanerName renders a cleaner for display.
func CleanerName(c *models.CleanerRef) string {
	if c == nil {
		return Unassigned
	}
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// startMinute parses "HH:MM"; ok is false for unparseable times.
func startMinute(s string) (int, bool) {
	t, err := time.Parse(utils.TimeLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// DetailFor returns the bookings scheduled on day, earliest first. Bookings
// with an unreadable start time sort last; ties keep their input order.
func DetailFor(bookings []models.Booking, day Day) []ScheduledBooking {
	out := []ScheduledBooking{}
	for _, b := range bookings {
		d, err := ParseDay(b.ScheduledDate)
		if err != nil || d != day {
			continue
		}
		out = append(out, ScheduledBooking{Booking: b, CleanerName: CleanerName(b.Cleaner)})
	}

	sort.SliceStable(out, func(i, j int) bool {
		mi, okI := startMinute(out[i].ScheduledTime)
		mj, okJ := startMinute(out[j].ScheduledTime)
		if okI != okJ {
			return okI
		}
		return mi < mj
	})
	return out
}
