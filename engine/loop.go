package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/glyph-globe/status"
)

// Loop is the cooperative frame loop: one goroutine selects over the frame ticker
// and an input channel, so handlers, due tasks and frames never interleave
type Loop[E any] struct {
	clock    TimeProvider
	sched    *Scheduler
	interval time.Duration
	events   <-chan E

	// OnEvent handles one input item between frames, returning false stops the loop
	OnEvent func(ev E) bool
	// OnFrame draws one frame
	OnFrame func(now time.Time)

	statFrames *atomic.Int64
	statMillis *status.Float
}

// NewLoop creates a loop ticking at fps, reading input from events
// reg may be nil
func NewLoop[E any](clock TimeProvider, sched *Scheduler, fps int, events <-chan E, reg *status.Registry) *Loop[E] {
	if fps <= 0 {
		fps = 1
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Loop[E]{
		clock:      clock,
		sched:      sched,
		interval:   time.Second / time.Duration(fps),
		events:     events,
		statFrames: reg.Int("loop.frames"),
		statMillis: reg.Float(status.FrameMillis),
	}
}

// Interval returns the frame period
func (l *Loop[E]) Interval() time.Duration {
	return l.interval
}

// Run blocks until ctx is canceled, the input channel closes, or OnEvent returns false
// Returns ctx.Err() on cancellation and nil otherwise
func (l *Loop[E]) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-l.events:
			if !ok {
				return nil
			}
			if l.OnEvent != nil && !l.OnEvent(ev) {
				return nil
			}
			l.sched.RunDue(l.clock.Now())

		case <-ticker.C:
			l.Step()
		}
	}
}

// Step runs due tasks then draws one frame
func (l *Loop[E]) Step() {
	start := l.clock.Now()
	l.sched.RunDue(start)
	if l.OnFrame != nil {
		l.OnFrame(start)
	}
	l.statFrames.Add(1)
	l.statMillis.Set(float64(l.clock.Now().Sub(start).Microseconds()) / 1000)
}
