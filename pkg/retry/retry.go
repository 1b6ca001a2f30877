// Package retry provides a bounded retry policy with a linear per-attempt
// backoff, built on cenkalti/backoff. The delay before retry n is Base*n, so a
// 2s base sleeps 2s then 4s across three attempts.
package retry

import (
	"context"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
)

// Config parameterizes a retry loop.
type Config struct {
	// MaxAttempts bounds the total number of calls, including the first.
	MaxAttempts int
	// Base is multiplied by the attempt number to produce each sleep.
	Base time.Duration
	// Retryable decides whether an error is worth another attempt. A nil
	// predicate retries everything.
	Retryable func(error) bool
}

// Linear is a backoff.BackOff whose intervals grow by a fixed base per
// attempt: base, 2*base, 3*base, ...
type Linear struct {
	Base    time.Duration
	attempt int
}

// NextBackOff returns the next sleep interval.
func (l *Linear) NextBackOff() time.Duration {
	l.attempt++
	return time.Duration(l.attempt) * l.Base
}

// Reset rewinds the interval progression.
func (l *Linear) Reset() {
	l.attempt = 0
}

// Do runs op until it succeeds, a non-retryable error occurs, the attempt
// budget is spent, or ctx is cancelled. The attempt number passed to op starts
// at 1.
func Do[T any](ctx context.Context, cfg Config, op func(ctx context.Context, attempt int) (T, error)) (T, error) {
	var out T
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	attempt := 0
	operation := func() error {
		attempt++
		value, err := op(ctx, attempt)
		if err != nil {
			if cfg.Retryable != nil && !cfg.Retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		out = value
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(&Linear{Base: cfg.Base}, uint64(cfg.MaxAttempts-1)),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return out, err
	}
	return out, nil
}
