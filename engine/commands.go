package engine

import (
	"github.com/lixenwraith/chaos-merge/event"
	"github.com/lixenwraith/chaos-merge/parameter"
	"github.com/lixenwraith/chaos-merge/vmath"
)

// dragState tracks one pointer gesture from press to release
type dragState struct {
	active         bool
	grabbed        bool
	id             BodyID
	startX, startY float64
}

// ApplyCommands drains up to CommandDrainMax inbound commands and applies them in FIFO order
// Cosmetic commands (texture, mute) are forwarded to the outbound queue for handlers
// Returns the number of commands consumed
func (s *Simulation) ApplyCommands(q *event.Queue) int {
	if q == nil {
		return 0
	}
	s.cmdBuf = q.ConsumeInto(s.cmdBuf[:0], parameter.CommandDrainMax)
	for _, ev := range s.cmdBuf {
		s.ApplyCommand(ev)
	}
	n := len(s.cmdBuf)
	clear(s.cmdBuf)
	return n
}

// ApplyCommand applies one inbound command; malformed payloads are ignored
func (s *Simulation) ApplyCommand(ev event.Event) {
	switch ev.Type {
	case event.EventSpawnAt:
		if p, ok := ev.Payload.(*event.SpawnPayload); ok {
			s.NewBody().At(p.X, p.Y).Velocity(p.VX, p.VY).Spawn()
		}
	case event.EventDragStart:
		if p, ok := ev.Payload.(*event.PointPayload); ok {
			s.dragStart(p.X, p.Y)
		}
	case event.EventDragMove:
		if p, ok := ev.Payload.(*event.PointPayload); ok {
			s.dragMove(p.X, p.Y)
		}
	case event.EventDragRelease:
		if p, ok := ev.Payload.(*event.PointPayload); ok {
			s.dragRelease(p.X, p.Y)
		}
	case event.EventToggleAttractor:
		s.ToggleAttractor()
	case event.EventMoveAttractor:
		if p, ok := ev.Payload.(*event.PointPayload); ok {
			s.SetAttractor(p.X, p.Y)
		}
	case event.EventReset:
		s.Reset()
	case event.EventClear:
		s.Clear()
	case event.EventBurst:
		n := s.cfg.BurstCount
		if p, ok := ev.Payload.(*event.BurstPayload); ok && p.Count > 0 {
			n = p.Count
		}
		s.Burst(n)
	case event.EventResize:
		if p, ok := ev.Payload.(*event.ResizePayload); ok {
			s.Resize(p.Width, p.Height)
		}
	case event.EventSetTexture, event.EventMute, event.EventUnmute, event.EventToggleMute:
		s.emit(ev.Type, ev.Payload)
	}
}

// dragStart grabs the topmost body under the point, freezing it
func (s *Simulation) dragStart(x, y float64) {
	s.drag = dragState{active: true, startX: x, startY: y}
	id, ok := s.BodyAt(x, y)
	if !ok {
		return
	}
	s.drag.grabbed = true
	s.drag.id = id
	s.hold(id)
}

// dragMove carries the grabbed body to the point, clamped into the arena
func (s *Simulation) dragMove(x, y float64) {
	if !s.drag.active || !s.drag.grabbed {
		return
	}
	i, ok := s.bodies.Lookup(s.drag.id)
	if !ok {
		// absorbed or split while held
		s.drag.grabbed = false
		return
	}
	if !vmath.IsFinite(x) || !vmath.IsFinite(y) {
		return
	}
	s.bodies.x[i], s.bodies.y[i] = s.clampCenter(x, y, s.bodies.r[i])
	s.hold(s.drag.id)
}

// dragRelease throws the grabbed body with the gesture delta, or spawns on empty arena
func (s *Simulation) dragRelease(x, y float64) {
	if !s.drag.active {
		return
	}
	d := s.drag
	s.drag = dragState{}

	dx, dy := x-d.startX, y-d.startY
	vx, vy := dx/s.cfg.DragVelocityDivisor, dy/s.cfg.DragVelocityDivisor

	if d.grabbed {
		s.ApplyExternalVelocity(d.id, vx, vy)
		return
	}
	if dx*dx+dy*dy > parameter.DragSpawnMinSq {
		s.NewBody().At(d.startX, d.startY).Radius(parameter.DragSpawnRadius).Velocity(vx, vy).Spawn()
		return
	}
	s.NewBody().At(x, y).Spawn()
}

// hold zeroes velocity and refreshes spawn immunity of a held body
func (s *Simulation) hold(id BodyID) {
	i, ok := s.bodies.Lookup(id)
	if !ok {
		return
	}
	s.bodies.vx[i], s.bodies.vy[i] = 0, 0
	s.bodies.immunity[i] = int32(s.cfg.SpawnImmunity)
}

// Dragging reports whether a gesture currently holds a body
func (s *Simulation) Dragging() (BodyID, bool) {
	return s.drag.id, s.drag.active && s.drag.grabbed
}
