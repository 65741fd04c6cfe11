package engine

import (
	"time"
)

// FrameClock measures wall-clock delta between frames and flags stalls
// A delta above the stall threshold skips the frame and rebases the clock
type FrameClock struct {
	clock     Clock
	threshold time.Duration
	last      time.Time
	started   bool
	skipped   uint64
}

// NewFrameClock creates a frame clock over the given time source
func NewFrameClock(clock Clock, threshold time.Duration) *FrameClock {
	return &FrameClock{
		clock:     clock,
		threshold: threshold,
	}
}

// Advance returns the delta since the previous call
// ok is false when the frame stalled; the returned delta is the stalled gap
// The first call establishes the baseline and returns zero delta
func (f *FrameClock) Advance() (dt time.Duration, ok bool) {
	now := f.clock.Now()
	if !f.started {
		f.started = true
		f.last = now
		return 0, true
	}

	dt = now.Sub(f.last)
	f.last = now
	if dt < 0 {
		return 0, true
	}
	if dt > f.threshold {
		f.skipped++
		return dt, false
	}
	return dt, true
}

// Reset forgets the baseline; the next Advance starts fresh
func (f *FrameClock) Reset() {
	f.started = false
}

// Skipped returns the number of stalled frames
func (f *FrameClock) Skipped() uint64 {
	return f.skipped
}
