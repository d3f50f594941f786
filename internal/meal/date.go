package meal

import (
	"time"
)

// Dates are timezone-naive calendar days. Inputs arrive as YYYY-MM-DD and
// are interpreted in UTC; stored timestamps are normalized to UTC midnight
// on write, so create and query always agree on the day bucket no matter
// what time-of-day a client serializes.

// ParseDay parses a YYYY-MM-DD string into the UTC midnight of that day.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

// DayFloor truncates a timestamp to the start of its UTC calendar day.
func DayFloor(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayRange returns the inclusive [start, end] instants of t's calendar
// day. Every query shape is built by composing this one function.
func DayRange(t time.Time) (time.Time, time.Time) {
	start := DayFloor(t)
	return start, start.Add(24*time.Hour - time.Nanosecond)
}

// WeekRange returns the inclusive [start, end] instants of the 7-calendar-
// day window beginning at t's day.
func WeekRange(t time.Time) (time.Time, time.Time) {
	start := DayFloor(t)
	_, end := DayRange(start.AddDate(0, 0, 6))
	return start, end
}
