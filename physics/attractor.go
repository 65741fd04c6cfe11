package physics

import (
	"math"

	"github.com/lixenwraith/chaos-merge/parameter"
)

// AttractorProfile defines the pull toward a point
type AttractorProfile struct {
	Law         parameter.AttractorLaw
	Strength    float64
	MinDistance float64 // pull skipped at or below, guards the singularity
	MaxDistance float64 // pull skipped beyond, 0 = unlimited
}

// NewAttractorProfile extracts the attractor fields of a physics record
func NewAttractorProfile(p *parameter.Physics) AttractorProfile {
	return AttractorProfile{
		Law:         p.AttractorLaw,
		Strength:    p.AttractorStrength,
		MinDistance: p.AttractorMinDistance,
		MaxDistance: p.AttractorMaxDistance,
	}
}

// AttractorAccel returns the acceleration a body at (x, y) receives toward (ax, ay)
// ok is false when the body is outside the active distance band
func AttractorAccel(x, y, ax, ay float64, profile *AttractorProfile) (accX, accY float64, ok bool) {
	dx := ax - x
	dy := ay - y
	distSq := dx*dx + dy*dy

	minSq := profile.MinDistance * profile.MinDistance
	if distSq <= minSq || distSq == 0 {
		return 0, 0, false
	}
	if profile.MaxDistance > 0 && distSq > profile.MaxDistance*profile.MaxDistance {
		return 0, 0, false
	}

	switch profile.Law {
	case parameter.AttractorLinear:
		return dx * profile.Strength, dy * profile.Strength, true
	default:
		// unit direction times strength/d²
		dist := math.Sqrt(distSq)
		mag := profile.Strength / distSq
		return dx / dist * mag, dy / dist * mag, true
	}
}
