package memcache

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LimiterStore hands out one token bucket per key.
type LimiterStore interface {
	// Allow consumes a token from the bucket of key.
	Allow(key string) bool
	// Sweep drops buckets idle for longer than the store ttl and returns how many were removed.
	Sweep() int
	Len() int
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type Limiters struct {
	mu    sync.Mutex
	data  map[string]*entry
	limit rate.Limit
	burst int
	ttl   time.Duration
	now   func() time.Time
}

// NewLimiters allows perMinute events per key with the given burst.
func NewLimiters(perMinute, burst int, ttl time.Duration) *Limiters {
	return &Limiters{
		data:  make(map[string]*entry),
		limit: rate.Limit(float64(perMinute) / 60),
		burst: burst,
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *Limiters) Allow(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.data[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.data[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

func (s *Limiters) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for key, e := range s.data {
		if e.lastSeen.Before(cutoff) {
			delete(s.data, key)
			removed++
		}
	}
	return removed
}

func (s *Limiters) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}
