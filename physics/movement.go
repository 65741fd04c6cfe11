package physics

import (
	"math"

	"github.com/lixenwraith/chaos-merge/vmath"
)

// CapSpeed limits the velocity vector magnitude to maxSpeed
// Returns true if velocity was clamped, maxSpeed <= 0 disables the cap
func CapSpeed(velX, velY *float64, maxSpeed float64) bool {
	if maxSpeed <= 0 {
		return false
	}
	magSq := vmath.MagnitudeSq(*velX, *velY)
	if magSq > maxSpeed*maxSpeed {
		mag := math.Sqrt(magSq)
		if mag == 0 {
			return false
		}
		scale := maxSpeed / mag
		*velX *= scale
		*velY *= scale
		return true
	}
	return false
}

// SpeedSq returns the squared speed, the key used for explosion and culling
func SpeedSq(vx, vy float64) float64 {
	return vmath.MagnitudeSq(vx, vy)
}
