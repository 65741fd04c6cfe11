package vmath

import "math"

// Float constants shared by simulation and render math
const (
	TwoPi = 2 * math.Pi

	// Epsilon is the degenerate-geometry threshold for distances and magnitudes
	Epsilon = 1e-9
)

// --- Scalar helpers ---

// Clamp limits v to [lo, hi]
// Returns the midpoint when the range is inverted (lo > hi)
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b by t in [0, 1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Sq returns v*v
func Sq(v float64) float64 { return v * v }

// IsFinite reports whether v is neither NaN nor ±Inf
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// WrapDegrees maps any angle in degrees into [0, 360)
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// math.Mod can return 360 for tiny negative inputs after the add
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// --- Randomness ---

// Source is the minimal random source consumed by geometry helpers
// Satisfied by *golang.org/x/exp/rand.Rand
type Source interface {
	Float64() float64
}

// RandRange returns a uniform value in [lo, hi)
func RandRange(rng Source, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// RandAngle returns a uniform angle in [0, 2π)
func RandAngle(rng Source) float64 {
	return rng.Float64() * TwoPi
}

// RandSigned returns a uniform value in [-span/2, span/2)
func RandSigned(rng Source, span float64) float64 {
	return (rng.Float64() - 0.5) * span
}
