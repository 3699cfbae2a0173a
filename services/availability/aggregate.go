package availability

import (
	"sparkle/models"
)

// DayBusySummary is the booking load on one calendar day.
type DayBusySummary struct {
	Date      Day  `json:"date"`
	InMonth   bool `json:"inMonth"`
	Count     int  `json:"count"`
	BusyLevel int  `json:"busyLevel"`
}

// Calendar is a month's grid in display order.
type Calendar struct {
	Month YearMonth        `json:"month"`
	Days  []DayBusySummary `json:"days"`
}

// BusyLevel discretises a day's booking count: 0 for none, 1 for 1-2,
// 2 for 3-4 and 3 for five or more.
func BusyLevel(count int) int {
	switch {
	case count <= 0:
		return 0
	case count <= 2:
		return 1
	case count <= 4:
		return 2
	default:
		return 3
	}
}

// countByDay buckets bookings on their exact scheduled day. Bookings whose
// date does not parse are left out.
func countByDay(bookings []models.Booking) map[Day]int {
	counts := make(map[Day]int, len(bookings))
	for _, b := range bookings {
		d, err := ParseDay(b.ScheduledDate)
		if err != nil {
			continue
		}
		counts[d]++
	}
	return counts
}

// BuildCalendar summarises bookings for every cell of month's grid.
func BuildCalendar(bookings []models.Booking, month YearMonth) Calendar {
	counts := countByDay(bookings)
	grid := Grid(month)

	cal := Calendar{Month: month, Days: make([]DayBusySummary, len(grid))}
	for i, d := range grid {
		n := counts[d]
		cal.Days[i] = DayBusySummary{
			Date:      d,
			InMonth:   d.Year == month.Year && d.Month == month.Month,
			Count:     n,
			BusyLevel: BusyLevel(n),
		}
	}
	return cal
}

// Aggregate is BuildCalendar keyed by day.
func Aggregate(bookings []models.Booking, month YearMonth) map[Day]DayBusySummary {
	cal := BuildCalendar(bookings, month)
	out := make(map[Day]DayBusySummary, len(cal.Days))
	for _, s := range cal.Days {
		out[s.Date] = s
	}
	return out
}
