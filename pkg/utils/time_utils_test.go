package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTruncateToDateUTC(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 08:00 in Tokyo is still the previous day in UTC
	got := TruncateToDateUTC(time.Date(2025, 3, 2, 8, 0, 0, 0, tokyo))
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestDateRange(t *testing.T) {
	start := time.Date(2024, 2, 28, 15, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC)

	days := DateRange(start, end)
	if assert.Len(t, days, 3) {
		assert.Equal(t, "2024-02-28", FormatDate(days[0]))
		assert.Equal(t, "2024-02-29", FormatDate(days[1]))
		assert.Equal(t, "2024-03-01", FormatDate(days[2]))
	}

	assert.Len(t, DateRange(start, start), 1)
	assert.Nil(t, DateRange(end, start))
}

func TestDaysBetweenLongSpans(t *testing.T) {
	// every 400 year Gregorian cycle has 146097 days
	assert.Equal(t, 146097, DaysBetween(time.Date(1800, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2200, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, -146097, DaysBetween(time.Date(2200, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(1800, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 10958, DaysBetween(time.Date(2000, 1, 1, 23, 0, 0, 0, time.UTC), time.Date(2030, 1, 1, 1, 0, 0, 0, time.UTC)))
	assert.Len(t, DateRange(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)), 10959)
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "", FormatRFC3339(time.Time{}))
	assert.Nil(t, FormatRFC3339Ptr(nil))
	assert.Equal(t, "2025-05-01T07:00:00Z", *FormatRFC3339Ptr(ptrTime(time.Date(2025, 5, 1, 9, 0, 0, 0, time.FixedZone("CEST", 2*60*60)))))
	assert.True(t, FromUnixSeconds(0).IsZero())
	assert.True(t, ValidTimeZone("Europe/Lisbon"))
	assert.False(t, ValidTimeZone("Mars/Olympus"))
	assert.False(t, ValidTimeZone(""))
}

func ptrTime(t time.Time) *time.Time { return &t }
