package input

import "github.com/gdamore/tcell/v2"

// PointerState tracks which buttons the parser believes are held
type PointerState uint8

const (
	PointerIdle  PointerState = iota // No button held
	PointerLeft                      // Left button held, gesture in progress
	PointerRight                     // Right button held, steering the attractor
)

// pointerStateOf reduces a tcell button mask to the state it implies
// Left wins when both buttons are reported
func pointerStateOf(buttons tcell.ButtonMask) PointerState {
	switch {
	case buttons&tcell.Button1 != 0:
		return PointerLeft
	case buttons&tcell.Button2 != 0:
		return PointerRight
	default:
		return PointerIdle
	}
}
