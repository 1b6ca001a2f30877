package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestLimiter(maxCalls int, window time.Duration, clock *fakeClock) *Limiter {
	l := New(maxCalls, window)
	l.now = clock.Now
	return l
}

func TestLimiterDeniesBeyondQuota(t *testing.T) {
	clock := &fakeClock{base: time.Unix(1_700_000_000, 0)}
	l := newTestLimiter(2, time.Second, clock)

	require.True(t, l.Allow())
	clock.advance(10 * time.Millisecond)
	require.True(t, l.Allow())
	clock.advance(10 * time.Millisecond)
	require.False(t, l.Allow())
	require.Equal(t, 980*time.Millisecond, l.RetryAfter())
}

func TestLimiterReadmitsAfterWindow(t *testing.T) {
	clock := &fakeClock{base: time.Unix(1_700_000_000, 0)}
	l := newTestLimiter(2, time.Second, clock)

	require.True(t, l.Allow())
	clock.advance(10 * time.Millisecond)
	require.True(t, l.Allow())
	clock.advance(10 * time.Millisecond)
	require.False(t, l.Allow())

	clock.advance(990 * time.Millisecond) // t=1010ms, first accept expired
	require.True(t, l.Allow())
}

func TestLimiterDeniedCheckConsumesNoSlot(t *testing.T) {
	clock := &fakeClock{base: time.Unix(1_700_000_000, 0)}
	l := newTestLimiter(1, time.Minute, clock)

	require.True(t, l.Allow())
	for i := 0; i < 5; i++ {
		clock.advance(time.Second)
		require.False(t, l.Allow())
	}

	clock.advance(time.Minute)
	require.True(t, l.Allow())
}

func TestRetryAfterZeroWhenBelowQuota(t *testing.T) {
	clock := &fakeClock{base: time.Unix(1_700_000_000, 0)}
	l := newTestLimiter(3, time.Minute, clock)

	require.Equal(t, time.Duration(0), l.RetryAfter())
	require.True(t, l.Allow())
	require.Equal(t, time.Duration(0), l.RetryAfter())
}

func TestLimiterConcurrentAdmission(t *testing.T) {
	l := New(10, time.Minute)

	admitted := make(chan bool, 50)
	for i := 0; i < 50; i++ {
		go func() {
			admitted <- l.Allow()
		}()
	}

	granted := 0
	for i := 0; i < 50; i++ {
		if <-admitted {
			granted++
		}
	}
	require.Equal(t, 10, granted)
}

type fakeClock struct {
	base   time.Time
	offset time.Duration
}

func (c *fakeClock) Now() time.Time {
	return c.base.Add(c.offset)
}

func (c *fakeClock) advance(d time.Duration) {
	c.offset += d
}
