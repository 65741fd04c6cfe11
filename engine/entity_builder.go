package engine

import (
	"github.com/lixenwraith/chaos-merge/parameter"
	"github.com/lixenwraith/chaos-merge/vmath"
)

// BodyBuilder provides a fluent interface for spawning a body
// Attributes left unset are drawn from the variant's spawn defaults
//
// Example usage:
//
//	id, ok := sim.NewBody().
//	    At(100, 200).
//	    Radius(20).
//	    Spawn()
type BodyBuilder struct {
	sim      *Simulation
	x, y     float64
	vx, vy   float64
	r        float64
	hasPos   bool
	hasVel   bool
	hasR     bool
	fragment bool
	spawned  bool
}

// NewBody starts a builder bound to this simulation
func (s *Simulation) NewBody() *BodyBuilder {
	return &BodyBuilder{sim: s}
}

// At sets the center, clamped into the arena on Spawn
func (b *BodyBuilder) At(x, y float64) *BodyBuilder {
	b.x, b.y = x, y
	b.hasPos = vmath.IsFinite(x) && vmath.IsFinite(y)
	return b
}

// Radius sets the radius, non-positive values fall back to the default range
func (b *BodyBuilder) Radius(r float64) *BodyBuilder {
	b.r = r
	b.hasR = r > 0 && vmath.IsFinite(r)
	return b
}

// Velocity sets the initial velocity
func (b *BodyBuilder) Velocity(vx, vy float64) *BodyBuilder {
	b.vx, b.vy = vx, vy
	b.hasVel = vmath.IsFinite(vx) && vmath.IsFinite(vy)
	return b
}

// Fragment marks the body as an explosion fragment
func (b *BodyBuilder) Fragment() *BodyBuilder {
	b.fragment = true
	return b
}

// Spawn commits the body and returns its id
// Returns false at MaxPopulation; a builder spawns at most once
func (b *BodyBuilder) Spawn() (BodyID, bool) {
	if b.spawned {
		panic("body already spawned - builder cannot be reused")
	}
	s := b.sim
	cfg := &s.cfg
	if cfg.MaxPopulation > 0 && s.bodies.Live() >= cfg.MaxPopulation {
		return 0, false
	}
	b.spawned = true

	r := b.r
	if !b.hasR {
		r = vmath.RandRange(s.rng, cfg.SpawnRadiusMin, cfg.SpawnRadiusMax)
	}

	x, y := b.x, b.y
	if !b.hasPos {
		x = s.rng.Float64() * cfg.Width
		y = s.rng.Float64() * cfg.Height
	}
	x, y = s.clampCenter(x, y, r)

	vx, vy := b.vx, b.vy
	if !b.hasVel {
		vx = vmath.RandSigned(s.rng, cfg.SpawnSpeed)
		vy = vmath.RandSigned(s.rng, cfg.SpawnSpeed)
	}

	i := s.bodies.add(bodyInit{
		x: x, y: y, vx: vx, vy: vy,
		r:        r,
		hue:      s.randomHue(),
		immunity: int32(cfg.SpawnImmunity),
		group:    parameter.NoGroup,
		fragment: b.fragment,
	})
	s.counters.Spawned++
	return s.bodies.ids[i], true
}
