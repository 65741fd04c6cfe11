package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/chaos-merge/parameter"
)

// Clock is the time source read by the frame clock
type Clock interface {
	Now() time.Time
}

// SystemClock reads wall time with its monotonic component
type SystemClock struct{}

func NewSystemClock() SystemClock { return SystemClock{} }

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to, for tests and offline replays
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (m *ManualClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Set jumps to t, which may lie in the past
func (m *ManualClock) Set(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// AdvanceFrames moves forward by n frame intervals
func (m *ManualClock) AdvanceFrames(n int) {
	m.Advance(time.Duration(n) * parameter.FrameUpdateInterval)
}
