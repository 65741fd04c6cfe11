package vmath

import "math"

// MagnitudeSq returns x² + y² without sqrt
func MagnitudeSq(x, y float64) float64 {
	return x*x + y*y
}

// Magnitude returns the Euclidean length of (x, y)
func Magnitude(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// DistanceSq returns the squared distance between two points
func DistanceSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Normalize2D returns the unit vector of (x, y), zero-safe
// Vectors shorter than Epsilon return (0, 0)
func Normalize2D(x, y float64) (nx, ny float64) {
	mag := Magnitude(x, y)
	if mag < Epsilon {
		return 0, 0
	}
	return x / mag, y / mag
}

// ClampMagnitude limits vector to maxMag while preserving direction
// Returns unchanged vector if magnitude <= maxMag
func ClampMagnitude(x, y, maxMag float64) (cx, cy float64) {
	magSq := MagnitudeSq(x, y)
	if magSq <= maxMag*maxMag || magSq == 0 {
		return x, y
	}
	scale := maxMag / math.Sqrt(magSq)
	return x * scale, y * scale
}

// ScaleVector multiplies vector by scalar factor
func ScaleVector(x, y, factor float64) (sx, sy float64) {
	return x * factor, y * factor
}

// DotProduct returns x1*x2 + y1*y2
func DotProduct(x1, y1, x2, y2 float64) float64 {
	return x1*x2 + y1*y2
}

// FromAngle returns a vector of length mag pointing at angle (radians)
func FromAngle(angle, mag float64) (x, y float64) {
	return math.Cos(angle) * mag, math.Sin(angle) * mag
}

// RotateVector rotates vector by angle in radians
func RotateVector(x, y, angle float64) (rx, ry float64) {
	sin, cos := math.Sincos(angle)
	return x*cos - y*sin, x*sin + y*cos
}

// Reflect returns velocity reflected off surface with given unit normal
// vel' = vel - 2 * dot(vel, normal) * normal
func Reflect(velX, velY, normalX, normalY float64) (rx, ry float64) {
	dot2 := 2 * DotProduct(velX, velY, normalX, normalY)
	return velX - dot2*normalX, velY - dot2*normalY
}
