package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/chaos-merge/event"
)

// InputState is one tick of polled pointer and keyboard state
type InputState struct {
	X, Y        int
	LeftDown    bool // pressed this tick
	LeftUp      bool // released this tick
	LeftHeld    bool
	RightHeld   bool
	JustPressed []ebiten.Key
}

// keyCommands maps keys to simulation commands
var keyCommands = map[ebiten.Key]event.EventType{
	ebiten.KeyG:     event.EventToggleAttractor,
	ebiten.KeyR:     event.EventReset,
	ebiten.KeyC:     event.EventClear,
	ebiten.KeySpace: event.EventBurst,
	ebiten.KeyT:     event.EventSetTexture,
	ebiten.KeyM:     event.EventToggleMute,
}

// quitKeys end the game loop
var quitKeys = map[ebiten.Key]bool{
	ebiten.KeyQ:      true,
	ebiten.KeyEscape: true,
}

// pollInput reads ebiten input state, must run inside Update
func pollInput(keys []ebiten.Key) InputState {
	x, y := ebiten.CursorPosition()
	return InputState{
		X:           x,
		Y:           y,
		LeftDown:    inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		LeftUp:      inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		LeftHeld:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		RightHeld:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		JustPressed: inpututil.AppendJustPressedKeys(keys[:0]),
	}
}

// apply turns polled input into commands, returns false when the user asked to quit
// Window pixels map 1:1 onto arena units
func (g *Game) apply(in InputState) bool {
	x, y := float64(in.X), float64(in.Y)
	moved := in.X != g.lastX || in.Y != g.lastY
	g.lastX, g.lastY = in.X, in.Y

	switch {
	case in.LeftDown:
		g.push(event.EventDragStart, &event.PointPayload{X: x, Y: y})
	case in.LeftUp:
		g.push(event.EventDragRelease, &event.PointPayload{X: x, Y: y})
	case in.LeftHeld && moved:
		g.push(event.EventDragMove, &event.PointPayload{X: x, Y: y})
	}
	if in.RightHeld && (moved || !g.rightHeld) {
		g.push(event.EventMoveAttractor, &event.PointPayload{X: x, Y: y})
	}
	g.rightHeld = in.RightHeld

	for _, k := range in.JustPressed {
		if quitKeys[k] {
			return false
		}
		et, ok := keyCommands[k]
		if !ok {
			continue
		}
		var payload any
		if et == event.EventSetTexture {
			payload = &event.TexturePayload{}
		}
		g.push(et, payload)
	}
	return true
}

func (g *Game) push(et event.EventType, payload any) {
	g.commands.Push(event.Event{Type: et, Payload: payload})
}
