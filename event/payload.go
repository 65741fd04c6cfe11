package event

import "time"

// PointPayload carries an arena position
type PointPayload struct {
	X, Y float64
}

// SpawnPayload places one body with an explicit velocity
type SpawnPayload struct {
	X, Y   float64
	VX, VY float64
}

// BurstPayload adds Count random bodies
type BurstPayload struct {
	Count int
}

// ResizePayload carries new arena dimensions
type ResizePayload struct {
	Width, Height float64
}

// TexturePayload selects a draw texture by name
type TexturePayload struct {
	Mode string
}

// MergedPayload describes one merge
type MergedPayload struct {
	Survivor uint64
	Absorbed uint64
	X, Y     float64
	Radius   float64 // survivor radius after merge
}

// SplitPayload describes one split
type SplitPayload struct {
	Parent   uint64
	Group    int64
	Children int
	X, Y     float64
	Radius   float64 // parent radius
}

// ExplodedPayload describes one explosion
type ExplodedPayload struct {
	Parent    uint64
	Fragments int
	X, Y      float64
	Radius    float64
	Fuse      bool // triggered by an expired fuse rather than speed
}

// CulledPayload reports a population control pass
type CulledPayload struct {
	Removed    int
	Population int
}

// FrameSkippedPayload reports a dropped stalled frame
type FrameSkippedPayload struct {
	Delta time.Duration
}
