package engine

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/chaos-merge/event"
	"github.com/lixenwraith/chaos-merge/parameter"
	"github.com/lixenwraith/chaos-merge/physics"
	"github.com/lixenwraith/chaos-merge/vmath"
)

// Attractor is the optional point pulling bodies toward itself
type Attractor struct {
	X, Y   float64
	Active bool
}

// Counters are cumulative lifecycle totals since construction or Reset
type Counters struct {
	Spawned    uint64
	Merges     uint64
	Splits     uint64
	Explosions uint64
	Culled     uint64
	Repaired   uint64 // non-finite state repaired by the guard
	Peak       int    // highest population observed at the end of a step
}

// Simulation owns every body and advances them one frame per Step
// Not safe for concurrent use: input goroutines talk to it through an event.Queue
type Simulation struct {
	cfg    parameter.Physics
	bodies *BodyStore
	grid   *SpatialGrid
	rng    *rand.Rand

	attractor Attractor
	profile   physics.AttractorProfile

	tick      uint64
	nextGroup int64
	counters  Counters

	out  *event.Queue // outbound notifications, nil = discard
	drag dragState

	// Per-step scratch, reused across ticks
	consumed []bool
	order    []int
	cmdBuf   []event.Event
}

// Option configures a Simulation at construction
type Option func(*Simulation)

// WithSeed makes the random stream deterministic
func WithSeed(seed uint64) Option {
	return func(s *Simulation) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithEvents attaches the outbound notification queue
func WithEvents(q *event.Queue) Option {
	return func(s *Simulation) {
		s.out = q
	}
}

// WithoutInitialBodies skips seeding InitialCount bodies
func WithoutInitialBodies() Option {
	return func(s *Simulation) {
		s.cfg.InitialCount = 0
	}
}

// NewSimulation validates cfg and seeds the initial population
func NewSimulation(cfg parameter.Physics, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid physics config %q: %w", cfg.Name, err)
	}

	s := &Simulation{
		cfg:    cfg.Clone(),
		bodies: NewBodyStore(parameter.InitialBodyCapacity),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	s.profile = physics.NewAttractorProfile(&s.cfg)
	s.attractor = Attractor{X: s.cfg.Width / 2, Y: s.cfg.Height / 2}
	s.grid = NewSpatialGrid(s.cfg.GridMinCells, s.cfg.Width, s.cfg.Height)

	s.seed()
	return s, nil
}

func (s *Simulation) seed() {
	for i := 0; i < s.cfg.InitialCount; i++ {
		s.Spawn()
	}
}

// Config returns a copy of the active physics record
func (s *Simulation) Config() parameter.Physics {
	return s.cfg.Clone()
}

// Population returns the live body count
func (s *Simulation) Population() int {
	return s.bodies.Live()
}

// Tick returns the number of steps taken since construction or Reset
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// Counters returns lifecycle totals
func (s *Simulation) Counters() Counters {
	return s.counters
}

// Size returns the arena dimensions
func (s *Simulation) Size() (width, height float64) {
	return s.cfg.Width, s.cfg.Height
}

// AttractorState returns the current attractor
func (s *Simulation) AttractorState() Attractor {
	return s.attractor
}

// SetAttractor moves the attractor, clamped into the arena
func (s *Simulation) SetAttractor(x, y float64) {
	if !vmath.IsFinite(x) || !vmath.IsFinite(y) {
		return
	}
	s.attractor.X = vmath.Clamp(x, 0, s.cfg.Width)
	s.attractor.Y = vmath.Clamp(y, 0, s.cfg.Height)
}

// ToggleAttractor flips the attractor and returns the new state
func (s *Simulation) ToggleAttractor() bool {
	s.attractor.Active = !s.attractor.Active
	return s.attractor.Active
}

// Resize changes the arena, re-clamps every body and the attractor
// The grid is rebuilt on the next pair pass
func (s *Simulation) Resize(width, height float64) {
	if width <= 0 || height <= 0 || !vmath.IsFinite(width) || !vmath.IsFinite(height) {
		return
	}
	s.cfg.Width = width
	s.cfg.Height = height
	b := s.bodies
	for i := 0; i < b.Len(); i++ {
		b.x[i], b.y[i] = s.clampCenter(b.x[i], b.y[i], b.r[i])
	}
	s.SetAttractor(s.attractor.X, s.attractor.Y)
}

// Clear removes every body
func (s *Simulation) Clear() {
	s.bodies.Clear()
	s.drag = dragState{}
}

// Reset clears the arena, zeroes tick and counters, and reseeds the initial population
func (s *Simulation) Reset() {
	s.Clear()
	s.tick = 0
	s.counters = Counters{}
	s.seed()
}

// Burst spawns up to n random bodies and returns how many were created
func (s *Simulation) Burst(n int) int {
	created := 0
	for i := 0; i < n; i++ {
		if _, ok := s.Spawn(); !ok {
			break
		}
		created++
	}
	return created
}

// Spawn creates one body with every attribute drawn at random
func (s *Simulation) Spawn() (BodyID, bool) {
	return s.NewBody().Spawn()
}

// Body returns a read-only view of a live body
func (s *Simulation) Body(id BodyID) (BodyView, bool) {
	i, ok := s.bodies.Lookup(id)
	if !ok {
		return BodyView{}, false
	}
	return s.bodies.view(i), true
}

// BodyAt returns the topmost body containing the point
func (s *Simulation) BodyAt(x, y float64) (BodyID, bool) {
	b := s.bodies
	for i := b.Len() - 1; i >= 0; i-- {
		if b.dead[i] {
			continue
		}
		if vmath.PointInCircle(x, y, b.x[i], b.y[i], b.r[i]) {
			return b.ids[i], true
		}
	}
	return 0, false
}

// ApplyExternalVelocity overwrites a body's velocity, false for unknown ids or non-finite input
func (s *Simulation) ApplyExternalVelocity(id BodyID, vx, vy float64) bool {
	if !vmath.IsFinite(vx) || !vmath.IsFinite(vy) {
		return false
	}
	i, ok := s.bodies.Lookup(id)
	if !ok {
		return false
	}
	s.bodies.vx[i] = vx
	s.bodies.vy[i] = vy
	return true
}

// Step advances the simulation by one frame
// dt is seconds when the variant uses wall-clock time, ignored otherwise
func (s *Simulation) Step(dt float64) {
	if !s.cfg.UseDeltaTime {
		dt = parameter.UnitStep
	}
	if !vmath.IsFinite(dt) || dt < 0 {
		dt = 0
	}
	s.tick++

	s.integrate(dt)
	s.applyAttractor(dt)

	s.resolvePairs()
	s.bodies.Compact()

	s.splitOversized()
	s.bodies.Compact()

	s.explode()
	s.bodies.Compact()

	s.cull()
	s.bodies.Compact()

	s.advanceCounters()

	if pop := s.bodies.Live(); pop > s.counters.Peak {
		s.counters.Peak = pop
	}
}

// clampCenter keeps a circle inside the arena, centering it on axes it cannot fit
func (s *Simulation) clampCenter(x, y, r float64) (float64, float64) {
	return vmath.Clamp(x, r, s.cfg.Width-r), vmath.Clamp(y, r, s.cfg.Height-r)
}

func (s *Simulation) randomHue() float64 {
	return s.rng.Float64() * 360
}

func (s *Simulation) emit(t event.EventType, payload any) {
	if s.out == nil {
		return
	}
	s.out.Emit(t, payload, s.tick)
}
