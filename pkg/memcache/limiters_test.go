package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimitersBurstThenDeny(t *testing.T) {
	s := NewLimiters(60, 2, time.Minute)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	assert.True(t, s.Allow("1.2.3.4"))
	assert.True(t, s.Allow("1.2.3.4"))
	assert.False(t, s.Allow("1.2.3.4"))

	// other keys have their own bucket
	assert.True(t, s.Allow("5.6.7.8"))

	// one token per second at 60/min
	now = now.Add(time.Second)
	assert.True(t, s.Allow("1.2.3.4"))
}

func TestLimitersSweep(t *testing.T) {
	s := NewLimiters(10, 1, time.Minute)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	s.Allow("a")
	now = now.Add(30 * time.Second)
	s.Allow("b")
	now = now.Add(45 * time.Second)

	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())
}
