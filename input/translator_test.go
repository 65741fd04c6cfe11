package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chaos-merge/event"
	"github.com/lixenwraith/chaos-merge/render"
)

// gridView maps each cell to a 10x20 arena block
type gridView struct {
	w, h float64
}

func (v *gridView) ScreenToArena(col, row int) (float64, float64) {
	return float64(col)*10 + 5, float64(row)*20 + 10
}

func (v *gridView) SetArena(w, h float64) {
	v.w, v.h = w, h
}

func TestTranslatorGesture(t *testing.T) {
	q := event.NewQueue()
	tr := NewTranslator(q, &gridView{})

	tr.Handle(mouse(1, 1, tcell.Button1))
	tr.Handle(mouse(4, 2, tcell.Button1))
	tr.Handle(mouse(6, 2, tcell.ButtonNone))

	evs := q.Consume()
	want := []struct {
		typ  event.EventType
		x, y float64
	}{
		{event.EventDragStart, 15, 30},
		{event.EventDragMove, 45, 50},
		{event.EventDragRelease, 65, 50},
	}
	if len(evs) != len(want) {
		t.Fatalf("Expected %d commands, got %d", len(want), len(evs))
	}
	for i, w := range want {
		p, ok := evs[i].Payload.(*event.PointPayload)
		if evs[i].Type != w.typ || !ok || p.X != w.x || p.Y != w.y {
			t.Errorf("Command %d: expected %s at (%v, %v), got %s %+v", i, w.typ, w.x, w.y, evs[i].Type, evs[i].Payload)
		}
	}
}

func TestTranslatorKeys(t *testing.T) {
	q := event.NewQueue()
	tr := NewTranslator(q, &gridView{})

	for _, r := range "grct m" {
		if !tr.Handle(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)) {
			t.Fatalf("Unexpected quit on %q", r)
		}
	}

	want := []event.EventType{
		event.EventToggleAttractor,
		event.EventReset,
		event.EventClear,
		event.EventSetTexture,
		event.EventBurst,
		event.EventToggleMute,
	}
	evs := q.Consume()
	if len(evs) != len(want) {
		t.Fatalf("Expected %d commands, got %d", len(want), len(evs))
	}
	for i, w := range want {
		if evs[i].Type != w {
			t.Errorf("Command %d: expected %s, got %s", i, w, evs[i].Type)
		}
	}
	if p, ok := evs[3].Payload.(*event.TexturePayload); !ok || p.Mode != "" {
		t.Errorf("Expected empty texture payload to cycle, got %+v", evs[3].Payload)
	}
}

func TestTranslatorQuit(t *testing.T) {
	q := event.NewQueue()
	tr := NewTranslator(q, &gridView{})

	if tr.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Expected Esc to quit")
	}
	if q.Len() != 0 {
		t.Errorf("Expected no commands on quit, got %d", q.Len())
	}
}

func TestTranslatorResize(t *testing.T) {
	q := event.NewQueue()
	view := &gridView{}
	tr := NewTranslator(q, view)

	tr.Handle(tcell.NewEventResize(100, 31))

	ww, wh := render.ArenaForScreen(100, 31)
	if view.w != ww || view.h != wh {
		t.Errorf("Expected viewport arena %vx%v, got %vx%v", ww, wh, view.w, view.h)
	}
	evs := q.Consume()
	if len(evs) != 1 || evs[0].Type != event.EventResize {
		t.Fatalf("Expected one resize command, got %v", evs)
	}
	p := evs[0].Payload.(*event.ResizePayload)
	if p.Width != ww || p.Height != wh {
		t.Errorf("Expected resize to %vx%v, got %vx%v", ww, wh, p.Width, p.Height)
	}
}

func TestTranslatorAttractor(t *testing.T) {
	q := event.NewQueue()
	tr := NewTranslator(q, &gridView{})

	tr.Handle(mouse(2, 3, tcell.Button2))
	evs := q.Consume()
	if len(evs) != 1 || evs[0].Type != event.EventMoveAttractor {
		t.Fatalf("Expected attractor move, got %v", evs)
	}
	p := evs[0].Payload.(*event.PointPayload)
	if p.X != 25 || p.Y != 70 {
		t.Errorf("Expected attractor at (25, 70), got (%v, %v)", p.X, p.Y)
	}
}
