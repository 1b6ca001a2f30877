// Package ratelimit implements sliding-window admission control for outbound
// quota-bearing calls. Each quota-bearing call site owns its own Limiter.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter admits at most maxCalls calls within a rolling window. Timestamps
// are recorded only when a call is admitted; a denied check has no side
// effects.
type Limiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	accepts []time.Time
	now     func() time.Time
}

// New constructs a Limiter with the given quota.
func New(maxCalls int, window time.Duration) *Limiter {
	return &Limiter{
		max:     maxCalls,
		window:  window,
		accepts: make([]time.Time, 0, maxCalls),
		now:     time.Now,
	}
}

// Allow reports whether a call may proceed right now and, if so, records it.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.pruneLocked(now)
	if len(l.accepts) >= l.max {
		return false
	}
	l.accepts = append(l.accepts, now)
	return true
}

// RetryAfter returns how long until the next slot frees up, or zero when a
// call would be admitted immediately.
func (l *Limiter) RetryAfter() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.pruneLocked(now)
	if len(l.accepts) < l.max {
		return 0
	}
	wait := l.window - now.Sub(l.accepts[0])
	if wait < 0 {
		return 0
	}
	return wait
}

// pruneLocked drops accepted timestamps older than now-window. Entries are
// appended in order, so the slice stays sorted.
func (l *Limiter) pruneLocked(now time.Time) {
	cutoff := now.Add(-l.window)
	idx := 0
	for idx < len(l.accepts) && !l.accepts[idx].After(cutoff) {
		idx++
	}
	if idx > 0 {
		l.accepts = append(l.accepts[:0], l.accepts[idx:]...)
	}
}
