package utils

import (
	"time"
)

const (
	dayLayout     = "2006-01-02"
	secondsPerDay = 24 * 60 * 60
)

// TruncateToDateUTC returns midnight UTC of the calendar date t falls on in UTC.
func TruncateToDateUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts whole calendar days from start to end (both truncated to UTC dates).
// Negative when end is before start.
func DaysBetween(start, end time.Time) int {
	s := TruncateToDateUTC(start).Unix()
	e := TruncateToDateUTC(end).Unix()
	// both are UTC midnights, so the difference is a whole number of days
	return int((e - s) / secondsPerDay)
}

// DateRange lists every UTC calendar date from start to end inclusive.
func DateRange(start, end time.Time) []time.Time {
	n := DaysBetween(start, end)
	if n < 0 {
		return nil
	}
	s := TruncateToDateUTC(start)
	out := make([]time.Time, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, s.AddDate(0, 0, i))
	}
	return out
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func FormatRFC3339Ptr(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := FormatRFC3339(*t)
	return &s
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

// FromUnixSeconds converts a stored epoch value in seconds. Zero stays the zero time.
func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).UTC()
}

func NowUnixSeconds() int64 { return time.Now().Unix() }

// ValidTimeZone reports whether name resolves to an IANA location.
func ValidTimeZone(name string) bool {
	if name == "" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}
