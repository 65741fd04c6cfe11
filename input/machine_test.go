package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func mouse(x, y int, btn tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, btn, tcell.ModNone)
}

func TestMachineKeys(t *testing.T) {
	m := NewMachine()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want IntentType
	}{
		{"attractor", tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone), IntentToggleAttractor},
		{"reset", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), IntentReset},
		{"clear", tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), IntentClear},
		{"burst", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), IntentBurst},
		{"texture", tcell.NewEventKey(tcell.KeyRune, 't', tcell.ModNone), IntentCycleTexture},
		{"mute", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), IntentToggleMute},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone), IntentQuit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := m.Process(tt.ev)
			if in == nil || in.Type != tt.want {
				t.Errorf("Expected intent %d, got %+v", tt.want, in)
			}
		})
	}

	if in := m.Process(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)); in != nil {
		t.Errorf("Expected unbound key to yield nil, got %+v", in)
	}
}

func TestMachineResize(t *testing.T) {
	m := NewMachine()
	in := m.Process(tcell.NewEventResize(120, 40))
	if in == nil || in.Type != IntentResize || in.Col != 120 || in.Row != 40 {
		t.Errorf("Expected resize 120x40, got %+v", in)
	}
}

func TestMachineDragGesture(t *testing.T) {
	m := NewMachine()

	steps := []struct {
		ev   *tcell.EventMouse
		want IntentType
	}{
		{mouse(5, 5, tcell.ButtonNone), IntentNone},
		{mouse(5, 5, tcell.Button1), IntentPointerPress},
		{mouse(5, 5, tcell.Button1), IntentNone}, // no motion
		{mouse(8, 6, tcell.Button1), IntentPointerDrag},
		{mouse(9, 6, tcell.ButtonNone), IntentPointerRelease},
		{mouse(10, 6, tcell.ButtonNone), IntentNone},
	}
	for i, s := range steps {
		in := m.Process(s.ev)
		got := IntentNone
		if in != nil {
			got = in.Type
		}
		if got != s.want {
			t.Fatalf("Step %d: expected intent %d, got %d", i, s.want, got)
		}
	}
	if m.Pointer() != PointerIdle {
		t.Errorf("Expected idle pointer after release, got %d", m.Pointer())
	}
}

func TestMachineReleaseCarriesPosition(t *testing.T) {
	m := NewMachine()
	m.Process(mouse(1, 1, tcell.Button1))
	in := m.Process(mouse(7, 3, tcell.ButtonNone))
	if in == nil || in.Col != 7 || in.Row != 3 {
		t.Errorf("Expected release at (7, 3), got %+v", in)
	}
}

func TestMachineRightButtonSteersAttractor(t *testing.T) {
	m := NewMachine()

	in := m.Process(mouse(3, 4, tcell.Button2))
	if in == nil || in.Type != IntentMoveAttractor {
		t.Fatalf("Expected attractor move on press, got %+v", in)
	}
	if in := m.Process(mouse(3, 4, tcell.Button2)); in != nil {
		t.Errorf("Expected no intent without motion, got %+v", in)
	}
	in = m.Process(mouse(6, 4, tcell.Button2))
	if in == nil || in.Type != IntentMoveAttractor || in.Col != 6 {
		t.Errorf("Expected attractor move to column 6, got %+v", in)
	}
}

func TestMachineWheelIgnored(t *testing.T) {
	m := NewMachine()
	if in := m.Process(mouse(2, 2, tcell.WheelUp)); in != nil {
		t.Errorf("Expected wheel to be ignored, got %+v", in)
	}
}

func TestLoadKeyConfig(t *testing.T) {
	data := []byte(`
[keys]
a = "toggle_attractor"
space = "none"
x = "Burst"

[special]
"Ctrl-Q" = "quit"
`)
	override, err := LoadKeyConfig(data)
	if err != nil {
		t.Fatalf("LoadKeyConfig failed: %v", err)
	}

	m := NewMachine()
	m.KeyTable().Merge(override)

	check := func(ev *tcell.EventKey, want IntentType) {
		t.Helper()
		got := IntentNone
		if in := m.Process(ev); in != nil {
			got = in.Type
		}
		if got != want {
			t.Errorf("Expected intent %d, got %d", want, got)
		}
	}
	check(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), IntentToggleAttractor)
	check(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), IntentBurst)
	check(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), IntentNone)
	check(tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModNone), IntentQuit)
	// Untouched defaults survive
	check(tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone), IntentToggleAttractor)
}

func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad toml", "[keys\n"},
		{"unknown action", "[keys]\na = \"fly\"\n"},
		{"multi rune key", "[keys]\nab = \"reset\"\n"},
		{"unknown special", "[special]\n\"Hyper-Z\" = \"quit\"\n"},
		{"unknown section", "[mouse]\nleft = \"reset\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadKeyConfig([]byte(tt.data)); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestActionName(t *testing.T) {
	if got := ActionName(IntentBurst); got != "burst" {
		t.Errorf("Expected burst, got %q", got)
	}
	if got := ActionName(IntentPointerDrag); got != "" {
		t.Errorf("Expected empty name for pointer intent, got %q", got)
	}
}
