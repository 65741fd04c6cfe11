package vmath

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"inside", 5, 0, 10, 5},
		{"below", -1, 0, 10, 0},
		{"above", 11, 0, 10, 10},
		{"inverted range", 3, 10, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestWrapDegrees(t *testing.T) {
	cases := map[float64]float64{
		0:    0,
		359:  359,
		360:  0,
		362:  2,
		-2:   358,
		-720: 0,
	}
	for in, want := range cases {
		if got := WrapDegrees(in); math.Abs(got-want) > 1e-9 {
			t.Errorf("WrapDegrees(%v): expected %v, got %v", in, want, got)
		}
	}
}

func TestNormalize2DZeroSafe(t *testing.T) {
	nx, ny := Normalize2D(0, 0)
	if nx != 0 || ny != 0 {
		t.Errorf("Expected zero vector, got (%v, %v)", nx, ny)
	}

	nx, ny = Normalize2D(3, 4)
	if math.Abs(nx-0.6) > 1e-12 || math.Abs(ny-0.8) > 1e-12 {
		t.Errorf("Expected (0.6, 0.8), got (%v, %v)", nx, ny)
	}
}

func TestClampMagnitude(t *testing.T) {
	x, y := ClampMagnitude(30, 40, 5)
	if math.Abs(Magnitude(x, y)-5) > 1e-9 {
		t.Errorf("Expected magnitude 5, got %v", Magnitude(x, y))
	}

	x, y = ClampMagnitude(1, 1, 5)
	if x != 1 || y != 1 {
		t.Errorf("Expected unchanged vector, got (%v, %v)", x, y)
	}
}

func TestCirclesOverlap(t *testing.T) {
	if _, ok := CirclesOverlap(0, 0, 10, 5, 0, 10); !ok {
		t.Error("Expected overlap for centers 5 apart with radius 10 each")
	}
	if _, ok := CirclesOverlap(0, 0, 10, 20, 0, 10); ok {
		t.Error("Expected no overlap for touching circles")
	}
	if got := CombinedRadius(10, 10); math.Abs(got*got-200) > 1e-9 {
		t.Errorf("Expected r² = 200, got %v", got*got)
	}
}

func TestReflect(t *testing.T) {
	rx, ry := Reflect(-5, 2, 1, 0)
	if rx != 5 || ry != 2 {
		t.Errorf("Expected (5, 2), got (%v, %v)", rx, ry)
	}
}
