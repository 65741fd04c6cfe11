package parameter

import "time"

// Frame Loop & Timing
const (
	// TickRate is the target simulation frame rate
	TickRate = 60

	// FrameUpdateInterval is the ticker period of the runner (~60 FPS)
	FrameUpdateInterval = time.Second / TickRate

	// StallThreshold is the wall-clock delta above which a frame is skipped
	// Covers tab switches, debugger pauses and suspended terminals
	StallThreshold = 200 * time.Millisecond

	// UnitStep is the integration step for variants that ignore wall-clock delta
	UnitStep = 1.0

	// CommandDrainMax bounds commands applied per tick so a flood cannot starve stepping
	CommandDrainMax = 256
)

// Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 2048

	// EventBufferMask is the bitmask for fast modulo operations (2048 - 1)
	EventBufferMask = 2047
)

// Body Store
const (
	// InitialBodyCapacity pre-sizes the structure-of-arrays store
	InitialBodyCapacity = 1024

	// NoGroup marks a body that belongs to no split group
	NoGroup = -1
)

// Benchmark Defaults
const (
	BenchDefaultSeeds    = 8
	BenchDefaultTicks    = 2000
	BenchDefaultParallel = 4

	// BenchSampleEvery controls how often a recorded frame is written during a bench run
	BenchSampleEvery = 10
)
