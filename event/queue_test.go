package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/chaos-merge/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	for i := 0; i < 10; i++ {
		q.Push(Event{Type: EventBurst, Payload: &BurstPayload{Count: i}})
	}

	if q.Len() != 10 {
		t.Fatalf("Expected 10 pending, got %d", q.Len())
	}

	events := q.Consume()
	if len(events) != 10 {
		t.Fatalf("Expected 10 events, got %d", len(events))
	}
	for i, ev := range events {
		if got := ev.Payload.(*BurstPayload).Count; got != i {
			t.Errorf("Expected count %d at position %d, got %d", i, i, got)
		}
	}

	if q.Len() != 0 {
		t.Errorf("Expected empty queue, got %d", q.Len())
	}
	if got := q.Consume(); got != nil {
		t.Errorf("Expected nil on empty consume, got %v", got)
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(Event{Type: EventBurst, Payload: &BurstPayload{Count: i}})
	}

	events := q.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(events))
	}
	if first := events[0].Payload.(*BurstPayload).Count; first != 10 {
		t.Errorf("Expected oldest surviving event 10, got %d", first)
	}
	if q.Dropped() == 0 {
		t.Error("Expected dropped counter to advance")
	}
}

func TestConsumeIntoBounded(t *testing.T) {
	q := NewQueue()
	for i := 0; i < 5; i++ {
		q.Emit(EventReset, nil, 0)
	}

	buf := q.ConsumeInto(nil, 3)
	if len(buf) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(buf))
	}
	if q.Len() != 2 {
		t.Errorf("Expected 2 remaining, got %d", q.Len())
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Emit(EventToggleAttractor, nil, 0)
			}
		}()
	}
	wg.Wait()

	if got := len(q.Consume()); got != 400 {
		t.Errorf("Expected 400 events, got %d", got)
	}
}

type countingHandler struct {
	seen []EventType
}

func (h *countingHandler) HandleEvent(_ int, ev Event) { h.seen = append(h.seen, ev.Type) }
func (h *countingHandler) EventTypes() []EventType {
	return []EventType{EventMerged, EventSplit}
}

func TestRouterDispatch(t *testing.T) {
	q := NewQueue()
	r := NewRouter[int](q)
	h := &countingHandler{}
	r.Register(h)

	q.Emit(EventMerged, &MergedPayload{}, 1)
	q.Emit(EventCulled, &CulledPayload{}, 1)
	q.Emit(EventSplit, &SplitPayload{}, 1)

	if n := r.DispatchAll(0); n != 3 {
		t.Errorf("Expected 3 consumed, got %d", n)
	}
	if len(h.seen) != 2 || h.seen[0] != EventMerged || h.seen[1] != EventSplit {
		t.Errorf("Expected [Merged Split], got %v", h.seen)
	}
	if r.Routes(EventCulled) != 0 || r.Routes(EventMerged) != 1 {
		t.Errorf("Expected routes 0 and 1, got %d and %d", r.Routes(EventCulled), r.Routes(EventMerged))
	}
}

func TestRouterObserversAndFuncs(t *testing.T) {
	q := NewQueue()
	r := NewRouter[int](q)

	var culled, all int
	r.Register(HandlerFunc[int]{
		Types: []EventType{EventCulled},
		Fn:    func(ctx int, ev Event) { culled += ctx },
	})
	r.Observe(func(_ int, ev Event) { all++ })

	q.Emit(EventCulled, &CulledPayload{}, 2)
	q.Emit(EventMerged, &MergedPayload{}, 2)
	r.DispatchAll(10)

	if culled != 10 {
		t.Errorf("Expected culled handler to see ctx 10, got %d", culled)
	}
	if all != 2 {
		t.Errorf("Expected observer to see 2 events, got %d", all)
	}
}

func TestEventTypeNames(t *testing.T) {
	if EventMerged.String() != "EventMerged" {
		t.Errorf("Expected EventMerged, got %s", EventMerged.String())
	}
	if et, ok := GetEventType("eventburst"); !ok || et != EventBurst {
		t.Errorf("Expected case-insensitive lookup of EventBurst, got %v %v", et, ok)
	}
	if !EventReset.IsCommand() || EventSplit.IsCommand() {
		t.Error("Expected command/notification partition to hold")
	}
}
