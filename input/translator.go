package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chaos-merge/event"
	"github.com/lixenwraith/chaos-merge/render"
)

// Viewport maps terminal cells onto arena coordinates
// Implemented by render.TerminalRenderer
type Viewport interface {
	ScreenToArena(col, row int) (x, y float64)
	SetArena(width, height float64)
}

// Translator turns terminal input into simulation commands
// Runs on the input goroutine; the command queue is the only shared state
type Translator struct {
	machine  *Machine
	commands *event.Queue
	view     Viewport
}

// NewTranslator creates a translator pushing onto commands
func NewTranslator(commands *event.Queue, view Viewport) *Translator {
	return &Translator{
		machine:  NewMachine(),
		commands: commands,
		view:     view,
	}
}

// Machine returns the underlying parser
func (t *Translator) Machine() *Machine {
	return t.machine
}

// Handle processes one terminal event, returns false when the user asked to quit
func (t *Translator) Handle(ev tcell.Event) bool {
	in := t.machine.Process(ev)
	if in == nil {
		return true
	}
	switch in.Type {
	case IntentQuit:
		return false
	case IntentResize:
		w, h := render.ArenaForScreen(in.Col, in.Row)
		t.view.SetArena(w, h)
		t.push(event.EventResize, &event.ResizePayload{Width: w, Height: h})
	case IntentPointerPress:
		t.push(event.EventDragStart, t.point(in))
	case IntentPointerDrag:
		t.push(event.EventDragMove, t.point(in))
	case IntentPointerRelease:
		t.push(event.EventDragRelease, t.point(in))
	case IntentMoveAttractor:
		t.push(event.EventMoveAttractor, t.point(in))
	case IntentToggleAttractor:
		t.push(event.EventToggleAttractor, nil)
	case IntentReset:
		t.push(event.EventReset, nil)
	case IntentClear:
		t.push(event.EventClear, nil)
	case IntentBurst:
		t.push(event.EventBurst, nil)
	case IntentCycleTexture:
		t.push(event.EventSetTexture, &event.TexturePayload{})
	case IntentToggleMute:
		t.push(event.EventToggleMute, nil)
	}
	return true
}

func (t *Translator) point(in *Intent) *event.PointPayload {
	x, y := t.view.ScreenToArena(in.Col, in.Row)
	return &event.PointPayload{X: x, Y: y}
}

func (t *Translator) push(et event.EventType, payload any) {
	t.commands.Push(event.Event{Type: et, Payload: payload})
}
