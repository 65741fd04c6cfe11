package physics

import (
	"github.com/lixenwraith/chaos-merge/vmath"
)

// Integrate advances position by velocity: p = p + v*dt
func Integrate(x, y *float64, vx, vy, dt float64) {
	*x += vx * dt
	*y += vy * dt
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(vx, vy *float64, dx, dy float64) {
	*vx += dx
	*vy += dy
}

// ReflectAxis clamps a circle center into [r, extent-r] along one axis and turns the
// velocity component inward, amplified by gain. Returns true if reflection occurred
// A circle wider than the extent is parked at the center of the axis
func ReflectAxis(pos, vel *float64, r, extent, gain float64) bool {
	lo, hi := r, extent-r
	if lo > hi {
		mid := extent / 2
		bounced := *pos != mid
		*pos = mid
		if bounced {
			*vel = -*vel * gain
		}
		return bounced
	}
	if *pos < lo {
		*pos = lo
		*vel = abs(*vel) * gain
		return true
	}
	if *pos > hi {
		*pos = hi
		*vel = -abs(*vel) * gain
		return true
	}
	return false
}

// ReflectBounds handles both axis boundary collisions, returns true if any reflection occurred
// boost scales both velocity components once when either axis bounced
func ReflectBounds(x, y, vx, vy *float64, r, width, height, gain, boost float64) bool {
	rx := ReflectAxis(x, vx, r, width, gain)
	ry := ReflectAxis(y, vy, r, height, gain)
	if rx || ry {
		*vx *= boost
		*vy *= boost
		return true
	}
	return false
}

// Sanitize repairs non-finite state: velocity is zeroed, position reset to (cx, cy)
// Returns true if anything was repaired
func Sanitize(x, y, vx, vy *float64, cx, cy float64) bool {
	repaired := false
	if !vmath.IsFinite(*vx) || !vmath.IsFinite(*vy) {
		*vx, *vy = 0, 0
		repaired = true
	}
	if !vmath.IsFinite(*x) || !vmath.IsFinite(*y) {
		*x, *y = cx, cy
		repaired = true
	}
	return repaired
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
