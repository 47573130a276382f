package timetricks

import (
	"time"
)

const (
	dayFormat   = "20060102"
	shortFormat = "01/02"
)

func SameDay(t time.Time, t2 time.Time) bool {
	return t.Format(dayFormat) == t2.Format(dayFormat)
}

func Today(t time.Time) bool {
	return SameDay(t, time.Now().In(t.Location()))
}

func Tomorrow(t time.Time) bool {
	return Today(t.Add(-24 * time.Hour))
}

// Day names the calendar day of t relative to now: "Today", "Tomorrow", a
// weekday within the coming week, or a short month/day otherwise.
func Day(t time.Time) string {
	switch {
	case Today(t):
		return "Today"
	case Tomorrow(t):
		return "Tomorrow"
	case withinWeek(t):
		return t.Weekday().String()
	default:
		return t.Format(shortFormat)
	}
}

func TrimClock(t time.Time) time.Time {
	h, m, s := t.Clock()
	return t.Add(-1 *
		(time.Duration(h)*time.Hour +
			time.Duration(m)*time.Minute +
			time.Duration(s)*time.Second))
}

// TrimToHour zeroes the minutes, seconds and nanoseconds of t on its own wall
// clock. Unlike t.Truncate(time.Hour) this is correct in zones whose offset is
// not a whole number of hours, and it keeps t's offset inside the hour that
// repeats when clocks go back.
func TrimToHour(t time.Time) time.Time {
	return t.Add(-1 *
		(time.Duration(t.Minute())*time.Minute +
			time.Duration(t.Second())*time.Second +
			time.Duration(t.Nanosecond())))
}

// HourKey is the string form used to join hourly series. It keeps the UTC
// offset so the repeated hour of a DST fall-back stays distinct.
func HourKey(t time.Time) string {
	return TrimToHour(t).Format(time.RFC3339)
}

func withinWeek(t time.Time) bool {
	// Start of today minus a minute in case t falls at midnight, through the
	// first minute of next week.
	now := TrimClock(time.Now().In(t.Location()))
	return t.After(now.Add(-1*time.Minute)) && t.Before(now.Add(7*24*time.Hour+time.Minute))
}
