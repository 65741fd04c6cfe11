package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/chaos-merge/parameter"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestSystemClockMonotonic(t *testing.T) {
	c := NewSystemClock()
	t1 := c.Now()
	time.Sleep(5 * time.Millisecond)
	if d := c.Now().Sub(t1); d < 5*time.Millisecond {
		t.Errorf("Expected at least 5ms elapsed, got %v", d)
	}
}

func TestManualClockSetAndAdvance(t *testing.T) {
	m := NewManualClock(epoch)
	if !m.Now().Equal(epoch) {
		t.Errorf("Expected %v, got %v", epoch, m.Now())
	}

	m.Advance(16 * time.Millisecond)
	m.AdvanceFrames(3)
	want := epoch.Add(16*time.Millisecond + 3*parameter.FrameUpdateInterval)
	if !m.Now().Equal(want) {
		t.Errorf("Expected %v, got %v", want, m.Now())
	}

	m.Set(epoch.Add(-time.Second))
	if !m.Now().Before(epoch) {
		t.Errorf("Expected Set to move backwards, got %v", m.Now())
	}
}

func TestManualClockConcurrentAdvance(t *testing.T) {
	m := NewManualClock(epoch)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				m.Advance(time.Millisecond)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				_ = m.Now()
			}
		}()
	}
	wg.Wait()

	if want := epoch.Add(100 * time.Millisecond); !m.Now().Equal(want) {
		t.Errorf("Expected %v, got %v", want, m.Now())
	}
}

func TestClockImplementations(t *testing.T) {
	var _ Clock = SystemClock{}
	var _ Clock = &ManualClock{}
}
