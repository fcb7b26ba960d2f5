package planner

import (
	"time"
)

// DayLayout is the calendar date form used everywhere in the document.
const DayLayout = "2006-01-02"

// TimeSlotLayout is the optional HH:MM slot on a note.
const TimeSlotLayout = "15:04"

// Day is a calendar date in YYYY-MM-DD form. The zero value "" means unset.
type Day string

// ParseDay validates s as a calendar date.
func ParseDay(s string) (Day, error) {
	if _, err := time.Parse(DayLayout, s); err != nil {
		return "", err
	}
	return Day(s), nil
}

// DayOf truncates t to its calendar date.
func DayOf(t time.Time) Day {
	return Day(t.Format(DayLayout))
}

// Today returns the current calendar date.
func Today() Day {
	return DayOf(time.Now())
}

// Valid reports whether d parses as a calendar date.
func (d Day) Valid() bool {
	_, err := time.Parse(DayLayout, string(d))
	return err == nil
}

// Time returns midnight of d in UTC. Invalid days yield the zero time.
func (d Day) Time() time.Time {
	t, _ := time.Parse(DayLayout, string(d))
	return t
}

// AddDays returns d shifted by n calendar days.
func (d Day) AddDays(n int) Day {
	return DayOf(d.Time().AddDate(0, 0, n))
}

// WeekStart returns the Sunday at or before d.
func (d Day) WeekStart() Day {
	t := d.Time()
	return DayOf(t.AddDate(0, 0, -int(t.Weekday())))
}

// String implements fmt.Stringer.
func (d Day) String() string {
	return string(d)
}

// WeekDays returns the seven days of the week containing d, starting
// on Sunday.
func (d Day) WeekDays() []Day {
	start := d.WeekStart()
	days := make([]Day, 7)
	for i := range days {
		days[i] = start.AddDays(i)
	}
	return days
}

// ValidTimeSlot reports whether s is an HH:MM slot. The empty slot is valid.
func ValidTimeSlot(s string) bool {
	if s == "" {
		return true
	}
	_, err := time.Parse(TimeSlotLayout, s)
	return err == nil
}
