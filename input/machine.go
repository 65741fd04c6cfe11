package input

import "github.com/gdamore/tcell/v2"

// Machine is the input state machine
// Parses tcell events into semantic Intent
type Machine struct {
	keyTable *KeyTable
	pointer  PointerState

	lastCol, lastRow int
}

// NewMachine creates a new input machine with the default bindings
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// SetKeyTable replaces the active bindings
func (m *Machine) SetKeyTable(kt *KeyTable) {
	if kt != nil {
		m.keyTable = kt
	}
}

// KeyTable returns the active bindings
func (m *Machine) KeyTable() *KeyTable {
	return m.keyTable
}

// Pointer returns the current button state
func (m *Machine) Pointer() PointerState {
	return m.pointer
}

// Reset drops any gesture in progress
func (m *Machine) Reset() {
	m.pointer = PointerIdle
}

// Process parses a terminal event and returns an Intent
// Returns nil if the event maps to nothing
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		return &Intent{Type: IntentResize, Col: cols, Row: rows}
	case *tcell.EventKey:
		if it := m.keyTable.Lookup(ev); it != IntentNone {
			return &Intent{Type: it}
		}
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventError:
		return &Intent{Type: IntentQuit}
	}
	return nil
}

// processMouse turns button transitions into gesture intents
// tcell reports state, not edges, so edges are derived from the previous state
func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	col, row := ev.Position()
	next := pointerStateOf(ev.Buttons())
	prev := m.pointer
	moved := col != m.lastCol || row != m.lastRow
	m.pointer = next
	m.lastCol, m.lastRow = col, row

	switch {
	case prev == PointerLeft && next != PointerLeft:
		return &Intent{Type: IntentPointerRelease, Col: col, Row: row}
	case next == PointerLeft && prev != PointerLeft:
		return &Intent{Type: IntentPointerPress, Col: col, Row: row}
	case next == PointerLeft && moved:
		return &Intent{Type: IntentPointerDrag, Col: col, Row: row}
	case next == PointerRight && (prev != PointerRight || moved):
		return &Intent{Type: IntentMoveAttractor, Col: col, Row: row}
	}
	return nil
}
