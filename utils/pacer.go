package utils

import (
	"context"
	"time"
)

// Pacer caps a loop at a target rate. Call Start at the top of each
// iteration and Wait at the bottom.
type Pacer struct {
	interval time.Duration
	start    time.Time
	now      func() time.Time
}

// NewPacer returns a pacer for fps iterations per second
func NewPacer(fps float64) *Pacer {
	return &Pacer{
		interval: time.Duration(float64(time.Second) / fps),
		now:      time.Now,
	}
}

// Interval returns the target iteration length
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// Start marks the beginning of an iteration
func (p *Pacer) Start() {
	p.start = p.now()
}

// Wait blocks until the iteration has lasted at least one interval, or ctx is done
func (p *Pacer) Wait(ctx context.Context) error {
	remaining := p.interval - p.now().Sub(p.start)
	if remaining <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(remaining)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
