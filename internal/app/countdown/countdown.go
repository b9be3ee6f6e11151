package countdown

import (
	"context"
	"fmt"
	"time"
)

// DefaultDiscountSpan is how long the launch discount runs.
const DefaultDiscountSpan = 25 * 24 * time.Hour

// Every calls fn on each tick of interval until ctx is done or fn returns false.
// fn is also called once immediately.
func Every(ctx context.Context, interval time.Duration, fn func(now time.Time) bool) {
	if interval <= 0 {
		interval = time.Second
	}
	if !fn(time.Now()) {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if !fn(now) {
				return
			}
		}
	}
}

// Remaining is the time left split into display units.
type Remaining struct {
	Days    int           `json:"days"`
	Hours   int           `json:"hours"`
	Minutes int           `json:"minutes"`
	Seconds int           `json:"seconds"`
	Total   time.Duration `json:"-"`
}

func (r Remaining) Done() bool { return r.Total <= 0 }

func (r Remaining) String() string {
	return fmt.Sprintf("%dd %02dh %02dm %02ds", r.Days, r.Hours, r.Minutes, r.Seconds)
}

func split(d time.Duration) Remaining {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return Remaining{
		Days:    int(secs / 86400),
		Hours:   int(secs % 86400 / 3600),
		Minutes: int(secs % 3600 / 60),
		Seconds: int(secs % 60),
		Total:   d,
	}
}

// Countdown runs for Span and finishes at EndsAt.
type Countdown struct {
	EndsAt time.Time
	Span   time.Duration
}

// NewDiscount starts a span-long countdown at start, unless endsAt is set.
func NewDiscount(start time.Time, span time.Duration, endsAt time.Time) Countdown {
	if span <= 0 {
		span = DefaultDiscountSpan
	}
	if endsAt.IsZero() {
		endsAt = start.Add(span)
	}
	return Countdown{EndsAt: endsAt, Span: span}
}

func (c Countdown) Remaining(now time.Time) Remaining {
	return split(c.EndsAt.Sub(now))
}

// Progress is the elapsed share of the span in percent, within [0, 100].
func (c Countdown) Progress(now time.Time) float64 {
	if c.Span <= 0 {
		return 100
	}
	left := c.EndsAt.Sub(now)
	if left <= 0 {
		return 100
	}
	if left >= c.Span {
		return 0
	}
	return float64(c.Span-left) / float64(c.Span) * 100
}

// Snapshot is the countdown state served to clients.
type Snapshot struct {
	EndsAt    time.Time `json:"ends_at"`
	Remaining Remaining `json:"remaining"`
	Progress  float64   `json:"progress"`
	Expired   bool      `json:"expired"`
}

func (c Countdown) Snapshot(now time.Time) Snapshot {
	r := c.Remaining(now)
	return Snapshot{
		EndsAt:    c.EndsAt,
		Remaining: r,
		Progress:  c.Progress(now),
		Expired:   r.Done(),
	}
}
