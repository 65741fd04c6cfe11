package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C
	IntentResize // Terminal resize event

	// Pointer gestures, Col/Row carry the cell
	IntentPointerPress   // Left button down
	IntentPointerDrag    // Motion with left button held
	IntentPointerRelease // Left button up
	IntentMoveAttractor  // Right button press or drag

	// Simulation commands
	IntentToggleAttractor // g
	IntentReset           // r
	IntentClear           // c
	IntentBurst           // Space

	// Cosmetic
	IntentCycleTexture // t
	IntentToggleMute   // m
)

// Intent is a parsed input action
type Intent struct {
	Type     IntentType
	Col, Row int // Pointer cell, or new size for IntentResize
}
