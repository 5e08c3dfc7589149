package domain

import (
	"fmt"
	"time"
)

// DayLayout is the canonical calendar-day string form used everywhere:
// storage columns, generator keys, CLI flags.
const DayLayout = "2006-01-02"

// Day is a calendar date with no time-of-day component. It is anchored at
// midnight UTC so that whole-day arithmetic can never shift across a DST
// transition or the local timezone; mixing local time.Time values into date
// math is exactly the off-by-one-day bug class this type exists to remove.
type Day struct {
	t time.Time
}

// NewDay constructs a Day from year, month, day.
func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDay parses a YYYY-MM-DD string into a Day.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("parsing day %q: %w", s, err)
	}
	return Day{t: t.UTC()}, nil
}

// MustDay parses a YYYY-MM-DD string and panics on failure. Test and
// fixture use only.
func MustDay(s string) Day {
	d, err := ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DayOf truncates an instant to its UTC calendar date.
func DayOf(t time.Time) Day {
	u := t.UTC()
	return NewDay(u.Year(), u.Month(), u.Day())
}

// Today returns the current UTC calendar date.
func Today() Day {
	return DayOf(time.Now())
}

// AddDays returns the day n whole days after d. Negative n moves backward.
func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

// DaysUntil returns the number of whole days from d to other.
// Negative when other precedes d.
func (d Day) DaysUntil(other Day) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

func (d Day) Before(other Day) bool { return d.t.Before(other.t) }
func (d Day) After(other Day) bool  { return d.t.After(other.t) }
func (d Day) Equal(other Day) bool  { return d.t.Equal(other.t) }

// IsZero reports whether d is the zero Day.
func (d Day) IsZero() bool { return d.t.IsZero() }

// Time returns the midnight-UTC instant for d.
func (d Day) Time() time.Time { return d.t }

// Weekday returns the day of week for d.
func (d Day) Weekday() time.Weekday { return d.t.Weekday() }

// String renders d as YYYY-MM-DD.
func (d Day) String() string { return d.t.Format(DayLayout) }

// Format renders d with an arbitrary time layout.
func (d Day) Format(layout string) string { return d.t.Format(layout) }

// DayRange enumerates count consecutive days starting at start, inclusive.
// Returns nil for count <= 0.
func DayRange(start Day, count int) []Day {
	if count <= 0 {
		return nil
	}
	days := make([]Day, count)
	for i := 0; i < count; i++ {
		days[i] = start.AddDays(i)
	}
	return days
}
