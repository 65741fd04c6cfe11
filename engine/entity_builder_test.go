package engine

import (
	"math"
	"testing"

	"github.com/lixenwraith/chaos-merge/vmath"
)

func TestBodyBuilder(t *testing.T) {
	sim := newTestSim(t, quietConfig())

	id, ok := sim.NewBody().At(200, 100).Radius(12).Velocity(1, 2).Fragment().Spawn()
	if !ok {
		t.Fatal("Expected spawn to succeed")
	}
	if id == 0 {
		t.Error("Expected non-zero body ID")
	}

	b, ok := sim.Body(id)
	if !ok {
		t.Fatal("Expected body to exist")
	}
	if b.X != 200 || b.Y != 100 || b.Radius != 12 {
		t.Errorf("Expected (200, 100) r 12, got (%v, %v) r %v", b.X, b.Y, b.Radius)
	}
	if b.VX != 1 || b.VY != 2 {
		t.Errorf("Expected velocity (1, 2), got (%v, %v)", b.VX, b.VY)
	}
	if !b.Fragment {
		t.Error("Expected fragment flag")
	}
	if sim.Counters().Spawned != 1 {
		t.Errorf("Expected 1 spawned, got %d", sim.Counters().Spawned)
	}
}

func TestBodyBuilderRandomDefaults(t *testing.T) {
	cfg := quietConfig()
	sim := newTestSim(t, cfg)

	for i := 0; i < 50; i++ {
		id := mustSpawn(t, sim.NewBody())
		b, _ := sim.Body(id)
		if b.X < b.Radius || b.X > cfg.Width-b.Radius || b.Y < b.Radius || b.Y > cfg.Height-b.Radius {
			t.Errorf("Expected body inside arena, got (%v, %v) r %v", b.X, b.Y, b.Radius)
		}
		if b.VX < -cfg.SpawnSpeed || b.VX > cfg.SpawnSpeed || b.VY < -cfg.SpawnSpeed || b.VY > cfg.SpawnSpeed {
			t.Errorf("Expected velocity within spawn speed, got (%v, %v)", b.VX, b.VY)
		}
		if b.Hue < 0 || b.Hue >= 360 {
			t.Errorf("Expected hue in [0, 360), got %v", b.Hue)
		}
	}
}

func TestBodyBuilderPanicsOnReuse(t *testing.T) {
	sim := newTestSim(t, quietConfig())
	b := sim.NewBody().At(10, 10)
	mustSpawn(t, b)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on builder reuse")
		}
	}()
	b.Spawn()
}

func TestBodyBuilderIgnoresNonFinite(t *testing.T) {
	sim := newTestSim(t, quietConfig())
	id := mustSpawn(t, sim.NewBody().At(math.NaN(), 10).Velocity(math.Inf(1), 0))
	b, _ := sim.Body(id)
	if !vmath.IsFinite(b.X) || !vmath.IsFinite(b.VX) {
		t.Errorf("Expected finite defaults, got x %v vx %v", b.X, b.VX)
	}
}
