package countdown

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestDiscountDefaults(t *testing.T) {
	c := NewDiscount(start, 0, time.Time{})
	assert.Equal(t, start.Add(DefaultDiscountSpan), c.EndsAt)

	r := c.Remaining(start)
	assert.Equal(t, 25, r.Days)
	assert.Zero(t, r.Hours)
	assert.Zero(t, c.Progress(start))
}

func TestDiscountConfiguredEnd(t *testing.T) {
	end := start.Add(90 * time.Minute)
	c := NewDiscount(start, time.Hour, end)
	assert.Equal(t, end, c.EndsAt)
	assert.Zero(t, c.Progress(start))
}

func TestRemainingSplit(t *testing.T) {
	c := Countdown{EndsAt: start.Add(26*time.Hour + 3*time.Minute + 4*time.Second), Span: 48 * time.Hour}
	r := c.Remaining(start)
	assert.Equal(t, Remaining{Days: 1, Hours: 2, Minutes: 3, Seconds: 4, Total: r.Total}, r)
	assert.Equal(t, "1d 02h 03m 04s", r.String())
	assert.InDelta(t, 45.72, c.Progress(start), 0.01)
}

func TestRemainingNeverNegative(t *testing.T) {
	c := NewDiscount(start, time.Hour, time.Time{})
	s := c.Snapshot(start.Add(5 * time.Hour))
	assert.True(t, s.Expired)
	assert.Equal(t, Remaining{}, s.Remaining)
	assert.Equal(t, float64(100), s.Progress)
}

func TestEveryStopsWhenFnDeclines(t *testing.T) {
	calls := 0
	Every(context.Background(), time.Millisecond, func(time.Time) bool {
		calls++
		return calls < 3
	})
	assert.Equal(t, 3, calls)
}

func TestEveryStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		Every(ctx, time.Millisecond, func(time.Time) bool { return true })
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "Every did not return after cancel")
	}
}
