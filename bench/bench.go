// Package bench runs independent seeded simulations headless and summarizes them
package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgravesa/go-parallel/parallel"

	"github.com/lixenwraith/chaos-merge/engine"
	"github.com/lixenwraith/chaos-merge/parameter"
)

// ctxCheckEvery is the number of steps between cancellation checks
const ctxCheckEvery = 64

// ErrNoRuns is returned when Options asks for zero seeds or ticks
var ErrNoRuns = errors.New("bench: seeds and ticks must be positive")

// Options configures a benchmark
type Options struct {
	Physics  parameter.Physics
	Seeds    int    // independent runs
	BaseSeed uint64 // run i uses BaseSeed+i
	Ticks    int    // steps per run
	Parallel int    // goroutines, <= 0 means one per run

	// Record receives every frame of the first run, called from a worker goroutine
	Record func(engine.Frame)
}

// Result is the outcome of one run
type Result struct {
	Seed       uint64
	Ticks      int
	Population int
	Peak       int
	Merges     uint64
	Splits     uint64
	Explosions uint64
	Culled     uint64
	Elapsed    time.Duration
	NsPerStep  float64
	Err        error
}

// Run executes opts.Seeds simulations in parallel and returns their results in seed order
// Each run owns its simulation; nothing is shared between workers
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Seeds <= 0 || opts.Ticks <= 0 {
		return nil, ErrNoRuns
	}
	if err := opts.Physics.Validate(); err != nil {
		return nil, fmt.Errorf("bench: %w", err)
	}
	p := opts.Parallel
	if p <= 0 || p > opts.Seeds {
		p = opts.Seeds
	}

	results := make([]Result, opts.Seeds)
	parallel.WithNumGoroutines(p).For(opts.Seeds, func(i, _ int) {
		var record func(engine.Frame)
		if i == 0 {
			record = opts.Record
		}
		results[i] = runOne(ctx, opts.Physics.Clone(), opts.BaseSeed+uint64(i), opts.Ticks, record)
	})

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

func runOne(ctx context.Context, cfg parameter.Physics, seed uint64, ticks int, record func(engine.Frame)) Result {
	res := Result{Seed: seed}
	sim, err := engine.NewSimulation(cfg, engine.WithSeed(seed))
	if err != nil {
		res.Err = err
		return res
	}

	dt := parameter.FrameUpdateInterval.Seconds()
	var sprites []engine.Sprite
	start := time.Now()
	for t := 0; t < ticks; t++ {
		if t%ctxCheckEvery == 0 && ctx.Err() != nil {
			res.Err = ctx.Err()
			break
		}
		sim.Step(dt)
		res.Ticks++
		if record != nil {
			sprites = sim.SnapshotInto(sprites)
			record(engine.Frame{
				Sprites:    sprites,
				Tick:       sim.Tick(),
				Population: len(sprites),
				DT:         parameter.FrameUpdateInterval,
			})
		}
	}
	res.Elapsed = time.Since(start)

	c := sim.Counters()
	res.Population = sim.Population()
	res.Peak = c.Peak
	res.Merges = c.Merges
	res.Splits = c.Splits
	res.Explosions = c.Explosions
	res.Culled = c.Culled
	if res.Ticks > 0 {
		res.NsPerStep = float64(res.Elapsed.Nanoseconds()) / float64(res.Ticks)
	}
	return res
}
