package availability

import (
	"fmt"
	"time"

	"sparkle/utils"
)

// GridSize is the number of cells in a month view: six full weeks.
const GridSize = 42

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// NewYearMonth validates a year/month pair coming from a request.
func NewYearMonth(year, month int) (YearMonth, error) {
	if month < 1 || month > 12 {
		return YearMonth{}, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	if year < 1 || year > 9999 {
		return YearMonth{}, fmt.Errorf("year out of range: %d", year)
	}
	return YearMonth{Year: year, Month: time.Month(month)}, nil
}

func (m YearMonth) first() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (m YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// ParseYearMonth parses a "YYYY-MM" month.
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, err
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

// Day is a civil calendar date with no time or zone.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

func dayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// ParseDay parses a "YYYY-MM-DD" date.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(utils.DateLayout, s)
	if err != nil {
		return Day{}, err
	}
	return dayOf(t), nil
}

func (d Day) time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the day n days later (or earlier for negative n).
func (d Day) AddDays(n int) Day {
	return dayOf(d.time().AddDate(0, 0, n))
}

// Weekday reports the day of the week.
func (d Day) Weekday() time.Weekday {
	return d.time().Weekday()
}

func (d Day) String() string {
	return d.time().Format(utils.DateLayout)
}

// MarshalText renders the day as "YYYY-MM-DD" so it can key JSON objects.
func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Day) UnmarshalText(b []byte) error {
	parsed, err := ParseDay(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Grid returns the 42 days shown for month, starting on the Sunday on or
// before the 1st and spilling into the adjacent months as needed.
func Grid(month YearMonth) []Day {
	first := month.first()
	start := first.AddDate(0, 0, -int(first.Weekday()))

	days := make([]Day, GridSize)
	for i := range days {
		days[i] = dayOf(start.AddDate(0, 0, i))
	}
	return days
}

// Window returns the first and last day of month's grid.
func Window(month YearMonth) (Day, Day) {
	grid := Grid(month)
	return grid[0], grid[len(grid)-1]
}
