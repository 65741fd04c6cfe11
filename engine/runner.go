package engine

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/chaos-merge/event"
	"github.com/lixenwraith/chaos-merge/parameter"
	"github.com/lixenwraith/chaos-merge/status"
)

// Frame is what the draw callback receives once per completed tick
// Sprites is reused across frames, callers must copy to retain
type Frame struct {
	Sprites    []Sprite
	Tick       uint64
	Population int
	DT         time.Duration
	FPS        float64
}

// Runner ties the frame clock, command drain, step, event dispatch and draw callback together
// One goroutine owns the simulation; producers only touch the command queue
type Runner struct {
	sim      *Simulation
	commands *event.Queue
	router   *event.Router[*Simulation]
	clock    *FrameClock
	interval time.Duration
	onFrame  func(Frame)

	sprites []Sprite
	fps     float64
	frames  atomic.Uint64
	running atomic.Bool

	// Cached metric pointers
	statPopulation *atomic.Int64
	statTick       *atomic.Int64
	statPeak       *atomic.Int64
	statMerges     *atomic.Int64
	statSplits     *atomic.Int64
	statExplosions *atomic.Int64
	statCulled     *atomic.Int64
	statSkipped    *atomic.Int64
	statDropped    *atomic.Int64
	statFPS        *status.Float
	statAttractor  *atomic.Bool
}

// NewRunner wires a runner around sim
// The simulation's outbound queue is created when it has none
func NewRunner(sim *Simulation, commands *event.Queue, clock Clock, reg *status.Registry) *Runner {
	if sim.out == nil {
		sim.out = event.NewQueue()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Runner{
		sim:      sim,
		commands: commands,
		router:   event.NewRouter[*Simulation](sim.out),
		clock:    NewFrameClock(clock, parameter.StallThreshold),
		interval: parameter.FrameUpdateInterval,

		statPopulation: reg.Ints.Get(status.MetricPopulation),
		statTick:       reg.Ints.Get(status.MetricTick),
		statPeak:       reg.Ints.Get(status.MetricPeak),
		statMerges:     reg.Ints.Get(status.MetricMerges),
		statSplits:     reg.Ints.Get(status.MetricSplits),
		statExplosions: reg.Ints.Get(status.MetricExplosions),
		statCulled:     reg.Ints.Get(status.MetricCulled),
		statSkipped:    reg.Ints.Get(status.MetricFramesSkipped),
		statDropped:    reg.Ints.Get(status.MetricCommandsDropped),
		statFPS:        reg.Floats.Get(status.MetricFPS),
		statAttractor:  reg.Bools.Get(status.MetricAttractor),
	}
}

// RegisterEventHandler adds an outbound event handler, must be called before Run
func (r *Runner) RegisterEventHandler(h event.Handler[*Simulation]) {
	r.router.Register(h)
}

// ObserveEvents sees every outbound event after its handlers, must be called before Run
func (r *Runner) ObserveEvents(fn func(*Simulation, event.Event)) {
	r.router.Observe(fn)
}

// OnFrame sets the draw callback, must be called before Run
func (r *Runner) OnFrame(fn func(Frame)) {
	r.onFrame = fn
}

// Simulation returns the owned simulation
// Only safe to touch from the runner goroutine or after Run returns
func (r *Runner) Simulation() *Simulation {
	return r.sim
}

// Frames returns the number of completed frames
func (r *Runner) Frames() uint64 {
	return r.frames.Load()
}

// RunFrame executes one frame and reports whether the simulation stepped
// Commands are applied even for stalled frames so input is never lost
func (r *Runner) RunFrame() bool {
	dt, ok := r.clock.Advance()
	r.sim.ApplyCommands(r.commands)

	if !ok {
		r.sim.out.Emit(event.EventFrameSkipped, &event.FrameSkippedPayload{Delta: dt}, r.sim.tick)
		r.router.DispatchAll(r.sim)
		r.statSkipped.Store(int64(r.clock.Skipped()))
		return false
	}

	r.sim.Step(dt.Seconds())
	r.router.DispatchAll(r.sim)

	if dt > 0 {
		r.fps = r.statFPS.Blend(float64(time.Second)/float64(dt), 0.1)
	}

	r.sprites = r.sim.SnapshotInto(r.sprites)
	r.publish()
	r.frames.Add(1)

	if r.onFrame != nil {
		r.onFrame(Frame{
			Sprites:    r.sprites,
			Tick:       r.sim.Tick(),
			Population: len(r.sprites),
			DT:         dt,
			FPS:        r.fps,
		})
	}
	return true
}

// publish copies simulation state into the metrics registry
func (r *Runner) publish() {
	c := r.sim.Counters()
	r.statPopulation.Store(int64(r.sim.Population()))
	r.statTick.Store(int64(r.sim.Tick()))
	r.statPeak.Store(int64(c.Peak))
	r.statMerges.Store(int64(c.Merges))
	r.statSplits.Store(int64(c.Splits))
	r.statExplosions.Store(int64(c.Explosions))
	r.statCulled.Store(int64(c.Culled))
	r.statAttractor.Store(r.sim.AttractorState().Active)
	if r.commands != nil {
		r.statDropped.Store(int64(r.commands.Dropped()))
	}
}

// Run ticks at the frame interval until ctx is cancelled
func (r *Runner) Run(ctx context.Context) error {
	if !r.running.CompareAndSwap(false, true) {
		return nil
	}
	defer r.running.Store(false)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.clock.Reset()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.RunFrame()
		}
	}
}

// TraceEvent logs one outbound event with the population at dispatch time
func TraceEvent(sim *Simulation, ev event.Event) {
	log.Printf("tick %d %s pop %d", ev.Tick, ev.Type, sim.Population())
}
