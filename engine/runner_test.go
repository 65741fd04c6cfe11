package engine

import (
	"context"
	"testing"
	"time"

	"github.com/lixenwraith/chaos-merge/event"
	"github.com/lixenwraith/chaos-merge/status"
)

// recordingHandler captures routed events
type recordingHandler struct {
	types []event.EventType
	got   []event.Event
}

func (h *recordingHandler) HandleEvent(_ *Simulation, ev event.Event) {
	h.got = append(h.got, ev)
}

func (h *recordingHandler) EventTypes() []event.EventType {
	return h.types
}

func newTestRunner(t *testing.T) (*Runner, *event.Queue, *ManualClock, *status.Registry) {
	t.Helper()
	sim := newTestSim(t, quietConfig())
	commands := event.NewQueue()
	mock := NewManualClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	reg := status.NewRegistry()
	return NewRunner(sim, commands, mock, reg), commands, mock, reg
}

func TestRunnerFrame(t *testing.T) {
	r, commands, mock, reg := newTestRunner(t)

	var frames []Frame
	r.OnFrame(func(f Frame) {
		frames = append(frames, f)
	})

	commands.Push(event.Event{Type: event.EventBurst, Payload: &event.BurstPayload{Count: 5}})
	if !r.RunFrame() {
		t.Fatal("Expected first frame to step")
	}
	mock.Advance(16 * time.Millisecond)
	if !r.RunFrame() {
		t.Fatal("Expected second frame to step")
	}

	if len(frames) != 2 {
		t.Fatalf("Expected 2 frame callbacks, got %d", len(frames))
	}
	last := frames[1]
	if last.Population != 5 || len(last.Sprites) != 5 {
		t.Errorf("Expected 5 bodies, got population %d sprites %d", last.Population, len(last.Sprites))
	}
	if last.Tick != 2 {
		t.Errorf("Expected tick 2, got %d", last.Tick)
	}
	if last.DT != 16*time.Millisecond {
		t.Errorf("Expected dt 16ms, got %v", last.DT)
	}
	if last.FPS < 62 || last.FPS > 63 {
		t.Errorf("Expected fps near 62.5, got %v", last.FPS)
	}
	if r.Frames() != 2 {
		t.Errorf("Expected 2 frames, got %d", r.Frames())
	}

	if got := reg.Ints.Get(status.MetricPopulation).Load(); got != 5 {
		t.Errorf("Expected population metric 5, got %d", got)
	}
	if got := reg.Ints.Get(status.MetricTick).Load(); got != 2 {
		t.Errorf("Expected tick metric 2, got %d", got)
	}
}

func TestRunnerSkipsStalledFrame(t *testing.T) {
	r, commands, mock, reg := newTestRunner(t)
	h := &recordingHandler{types: []event.EventType{event.EventFrameSkipped}}
	r.RegisterEventHandler(h)

	r.RunFrame()
	mock.Advance(time.Second)
	commands.Push(event.Event{Type: event.EventToggleAttractor})

	if r.RunFrame() {
		t.Error("Expected stalled frame to skip")
	}
	if r.Simulation().Tick() != 1 {
		t.Errorf("Expected tick to stay at 1, got %d", r.Simulation().Tick())
	}
	// Commands still apply during a stall
	if !r.Simulation().AttractorState().Active {
		t.Error("Expected attractor toggled during stalled frame")
	}
	if len(h.got) != 1 {
		t.Fatalf("Expected 1 frame skipped event, got %d", len(h.got))
	}
	p, ok := h.got[0].Payload.(*event.FrameSkippedPayload)
	if !ok || p.Delta != time.Second {
		t.Errorf("Expected 1s skipped delta, got %+v", h.got[0].Payload)
	}
	if got := reg.Ints.Get(status.MetricFramesSkipped).Load(); got != 1 {
		t.Errorf("Expected skipped metric 1, got %d", got)
	}
}

func TestRunnerDispatchesSimulationEvents(t *testing.T) {
	r, commands, _, _ := newTestRunner(t)
	h := &recordingHandler{types: []event.EventType{event.EventMute, event.EventSetTexture}}
	r.RegisterEventHandler(h)

	commands.Push(event.Event{Type: event.EventMute})
	commands.Push(event.Event{Type: event.EventSetTexture, Payload: &event.TexturePayload{Mode: "ring"}})
	r.RunFrame()

	if len(h.got) != 2 {
		t.Fatalf("Expected 2 forwarded events, got %d", len(h.got))
	}
	if h.got[0].Type != event.EventMute || h.got[1].Type != event.EventSetTexture {
		t.Errorf("Expected mute then texture, got %v then %v", h.got[0].Type, h.got[1].Type)
	}
}

func TestRunnerRunStopsOnCancel(t *testing.T) {
	sim := newTestSim(t, quietConfig())
	r := NewRunner(sim, event.NewQueue(), NewSystemClock(), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := r.Run(ctx)
	if err != context.DeadlineExceeded {
		t.Errorf("Expected deadline exceeded, got %v", err)
	}
	if r.Frames() == 0 {
		t.Error("Expected at least one frame before cancel")
	}
}
