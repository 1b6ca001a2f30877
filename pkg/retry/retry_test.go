package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// The policy is linear, not exponential: a 2s base sleeps 2s, 4s, 6s.
func TestLinearBackoffGrowsPerAttempt(t *testing.T) {
	l := &Linear{Base: 2 * time.Second}

	require.Equal(t, 2*time.Second, l.NextBackOff())
	require.Equal(t, 4*time.Second, l.NextBackOff())
	require.Equal(t, 6*time.Second, l.NextBackOff())

	l.Reset()
	require.Equal(t, 2*time.Second, l.NextBackOff())
}

func TestDoReturnsFirstSuccess(t *testing.T) {
	calls := 0
	got, err := Do(context.Background(), Config{MaxAttempts: 3, Base: time.Millisecond}, func(ctx context.Context, attempt int) (string, error) {
		calls++
		require.Equal(t, calls, attempt)
		return "ok", nil
	})
	require.NoError(t, err)
	require.Equal(t, "ok", got)
	require.Equal(t, 1, calls)
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	transient := errors.New("overloaded")
	calls := 0
	got, err := Do(context.Background(), Config{MaxAttempts: 3, Base: time.Millisecond, Retryable: func(err error) bool { return errors.Is(err, transient) }}, func(ctx context.Context, attempt int) (int, error) {
		calls++
		if attempt < 3 {
			return 0, transient
		}
		return attempt, nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, got)
	require.Equal(t, 3, calls)
}

func TestDoExhaustsAttemptBudget(t *testing.T) {
	transient := errors.New("overloaded")
	calls := 0
	_, err := Do(context.Background(), Config{MaxAttempts: 3, Base: time.Millisecond, Retryable: func(error) bool { return true }}, func(ctx context.Context, attempt int) (int, error) {
		calls++
		return 0, transient
	})
	require.ErrorIs(t, err, transient)
	require.Equal(t, 3, calls)
}

func TestDoStopsOnNonRetryableError(t *testing.T) {
	fatal := errors.New("bad request")
	calls := 0
	_, err := Do(context.Background(), Config{MaxAttempts: 3, Base: time.Millisecond, Retryable: func(error) bool { return false }}, func(ctx context.Context, attempt int) (int, error) {
		calls++
		return 0, fatal
	})
	require.ErrorIs(t, err, fatal)
	require.Equal(t, 1, calls)
}

func TestDoHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	transient := errors.New("overloaded")
	calls := 0
	_, err := Do(ctx, Config{MaxAttempts: 5, Base: time.Hour, Retryable: func(error) bool { return true }}, func(ctx context.Context, attempt int) (int, error) {
		calls++
		cancel()
		return 0, transient
	})
	require.Error(t, err)
	require.Equal(t, 1, calls)
}
