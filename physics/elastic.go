package physics

import (
	"math"

	"github.com/lixenwraith/chaos-merge/vmath"
)

// Body is the mutable view of one circle used by pair resolution
type Body struct {
	X, Y   *float64
	VX, VY *float64
	R      float64
}

// ResolveElastic applies a 2-D elastic impulse between overlapping circles with mass ∝ r²,
// separates them along the contact normal and scales both velocities by boost
// Returns false for coincident centers or pairs already separating
func ResolveElastic(a, b Body, boost float64) bool {
	dx := *b.X - *a.X
	dy := *b.Y - *a.Y
	distSq := dx*dx + dy*dy
	if distSq < vmath.Epsilon {
		return false
	}
	dist := math.Sqrt(distSq)
	nx, ny := dx/dist, dy/dist

	ma := a.R * a.R
	mb := b.R * b.R
	total := ma + mb

	// Positional separation split by inverse mass
	overlap := a.R + b.R - dist
	if overlap > 0 {
		*a.X -= nx * overlap * mb / total
		*a.Y -= ny * overlap * mb / total
		*b.X += nx * overlap * ma / total
		*b.Y += ny * overlap * ma / total
	}

	// Relative velocity along the normal, positive when approaching
	approach := (*a.VX-*b.VX)*nx + (*a.VY-*b.VY)*ny
	if approach <= 0 {
		return false
	}

	impulse := 2 * approach / total
	*a.VX -= impulse * mb * nx
	*a.VY -= impulse * mb * ny
	*b.VX += impulse * ma * nx
	*b.VY += impulse * ma * ny

	*a.VX *= boost
	*a.VY *= boost
	*b.VX *= boost
	*b.VY *= boost
	return true
}
