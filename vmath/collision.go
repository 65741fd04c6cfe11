package vmath

import "math"

// CirclesOverlap reports whether two circles intersect (strictly closer than the radius sum)
// Also returns the squared center distance for reuse by the caller
func CirclesOverlap(ax, ay, ar, bx, by, br float64) (distSq float64, overlap bool) {
	distSq = DistanceSq(ax, ay, bx, by)
	sum := ar + br
	return distSq, distSq < sum*sum
}

// CombinedRadius returns the radius whose area equals the two input areas combined
func CombinedRadius(ra, rb float64) float64 {
	return math.Sqrt(ra*ra + rb*rb)
}

// PointInCircle reports whether (px, py) lies inside or on the circle
func PointInCircle(px, py, cx, cy, r float64) bool {
	return DistanceSq(px, py, cx, cy) <= r*r
}
