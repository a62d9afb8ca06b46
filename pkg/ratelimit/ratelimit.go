package ratelimit

import (
	"sync"
	"time"
)

// Limiter is a sliding-window counter keyed by client IP. It is built
// once per process and injected into the auth service; state never
// leaves the struct.
type Limiter struct {
	mu       sync.Mutex
	window   time.Duration
	limit    int
	attempts map[string][]time.Time
	now      func() time.Time
}

func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		window:   window,
		limit:    limit,
		attempts: make(map[string][]time.Time),
		now:      time.Now,
	}
}

// Allow records an attempt for key and reports whether it is within the
// limit. Entries older than the window are pruned before counting.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	kept := l.attempts[key][:0]
	for _, ts := range l.attempts[key] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= l.limit {
		l.attempts[key] = kept
		return false
	}

	l.attempts[key] = append(kept, now)
	return true
}
