package engine

import (
	"math"

	"golang.org/x/exp/slices"

	"github.com/lixenwraith/chaos-merge/event"
	"github.com/lixenwraith/chaos-merge/parameter"
	"github.com/lixenwraith/chaos-merge/physics"
	"github.com/lixenwraith/chaos-merge/vmath"
)

// integrate moves every body, reflects it off the walls and repairs non-finite state
func (s *Simulation) integrate(dt float64) {
	b := s.bodies
	cfg := &s.cfg
	cx, cy := cfg.Width/2, cfg.Height/2
	for i := 0; i < b.Len(); i++ {
		physics.Integrate(&b.x[i], &b.y[i], b.vx[i], b.vy[i], dt)
		if physics.Sanitize(&b.x[i], &b.y[i], &b.vx[i], &b.vy[i], cx, cy) {
			s.counters.Repaired++
		}
		physics.ReflectBounds(&b.x[i], &b.y[i], &b.vx[i], &b.vy[i],
			b.r[i], cfg.Width, cfg.Height, cfg.BounceGain, cfg.BounceBoost)
		physics.CapSpeed(&b.vx[i], &b.vy[i], cfg.SpeedLimit)
	}
}

// applyAttractor pulls eligible bodies toward the attractor, throttled at high population
func (s *Simulation) applyAttractor(dt float64) {
	if !s.attractor.Active || s.cfg.AttractorStrength == 0 {
		return
	}
	b := s.bodies
	every := parameter.Interval(1, s.cfg.AttractorThrottle, b.Len())
	if s.tick%uint64(every) != 0 {
		return
	}

	for i := 0; i < b.Len(); i++ {
		if b.fragment[i] || b.r[i] < s.cfg.AttractorMinRadius {
			continue
		}
		ax, ay, ok := physics.AttractorAccel(b.x[i], b.y[i], s.attractor.X, s.attractor.Y, &s.profile)
		if !ok {
			continue
		}
		b.vx[i] += ax * dt
		b.vy[i] += ay * dt
		if physics.Sanitize(&b.x[i], &b.y[i], &b.vx[i], &b.vy[i], s.cfg.Width/2, s.cfg.Height/2) {
			s.counters.Repaired++
		}
		physics.CapSpeed(&b.vx[i], &b.vy[i], s.cfg.SpeedLimit)
	}
}

// pairEligible reports whether slot i may take part in pair resolution this step
func (s *Simulation) pairEligible(i int) bool {
	b := s.bodies
	return !b.dead[i] && !s.consumed[i] && b.cooldown[i] == 0 && b.r[i] >= s.cfg.MergeMinRadius
}

// graceBlocked reports whether two siblings of one split are still inside their grace period
func (s *Simulation) graceBlocked(i, j int) bool {
	b := s.bodies
	if b.group[i] == parameter.NoGroup || b.group[i] != b.group[j] {
		return false
	}
	grace := int32(s.cfg.GraceTicks)
	return b.splitAge[i] < grace || b.splitAge[j] < grace
}

// resolvePairs buckets bodies into the grid and merges or bounces overlapping pairs
// Each unordered pair is visited once, from its lower slot
func (s *Simulation) resolvePairs() {
	b := s.bodies
	n := b.Len()
	if n < 2 {
		return
	}
	every := parameter.Interval(s.cfg.MergeInterval, s.cfg.MergeThrottle, n)
	if s.tick%uint64(every) != 0 {
		return
	}

	side := TargetSide(n, s.cfg.GridOccupancy, s.cfg.GridMinCells, s.cfg.GridMaxCells)
	s.grid.Resize(side, s.cfg.Width, s.cfg.Height)
	s.grid.Build(b.x, b.y)

	s.consumed = resetBools(s.consumed, n)
	elastic := s.cfg.CollisionMode == parameter.CollisionElastic

	for i := 0; i < n; i++ {
		if !s.pairEligible(i) {
			continue
		}
		s.grid.ForEachNeighbor(i, func(j int) bool {
			if !s.pairEligible(j) || s.graceBlocked(i, j) {
				return true
			}
			if _, hit := vmath.CirclesOverlap(b.x[i], b.y[i], b.r[i], b.x[j], b.y[j], b.r[j]); !hit {
				return true
			}

			if elastic {
				s.bounce(i, j)
				return true
			}
			if s.cfg.MergeProbability < 1 && s.rng.Float64() >= s.cfg.MergeProbability {
				return true
			}
			s.merge(i, j)
			return false
		})
	}
}

// merge absorbs slot j into slot i
func (s *Simulation) merge(i, j int) {
	b := s.bodies
	cfg := &s.cfg

	var vx, vy float64
	switch cfg.MergeVelocity {
	case parameter.MergeVelocityAverage:
		vx = (b.vx[i] + b.vx[j]) / 2
		vy = (b.vy[i] + b.vy[j]) / 2
	default:
		if physics.SpeedSq(b.vx[i], b.vy[i]) >= physics.SpeedSq(b.vx[j], b.vy[j]) {
			vx, vy = b.vx[i], b.vy[i]
		} else {
			vx, vy = b.vx[j], b.vy[j]
		}
	}

	r := vmath.CombinedRadius(b.r[i], b.r[j])
	x, y := s.clampCenter((b.x[i]+b.x[j])/2, (b.y[i]+b.y[j])/2, r)

	b.x[i], b.y[i] = x, y
	b.vx[i], b.vy[i] = vx*cfg.MergeGain, vy*cfg.MergeGain
	b.r[i] = r
	b.cooldown[i] = int32(cfg.MergeCooldown)
	b.group[i] = parameter.NoGroup
	b.splitAge[i] = 0
	if cfg.FuseMax > 0 {
		b.fuse[i] = int32(cfg.FuseMin + s.rng.Intn(cfg.FuseMax-cfg.FuseMin+1))
	}

	b.kill(j)
	s.consumed[i] = true
	s.consumed[j] = true
	s.counters.Merges++

	s.emit(event.EventMerged, &event.MergedPayload{
		Survivor: uint64(b.ids[i]),
		Absorbed: uint64(b.ids[j]),
		X:        x,
		Y:        y,
		Radius:   r,
	})
}

// bounce resolves an elastic contact and keeps both centers inside the arena
func (s *Simulation) bounce(i, j int) {
	b := s.bodies
	physics.ResolveElastic(
		physics.Body{X: &b.x[i], Y: &b.y[i], VX: &b.vx[i], VY: &b.vy[i], R: b.r[i]},
		physics.Body{X: &b.x[j], Y: &b.y[j], VX: &b.vx[j], VY: &b.vy[j], R: b.r[j]},
		s.cfg.ElasticBoost,
	)
	b.x[i], b.y[i] = s.clampCenter(b.x[i], b.y[i], b.r[i])
	b.x[j], b.y[j] = s.clampCenter(b.x[j], b.y[j], b.r[j])
	physics.CapSpeed(&b.vx[i], &b.vy[i], s.cfg.SpeedLimit)
	physics.CapSpeed(&b.vx[j], &b.vy[j], s.cfg.SpeedLimit)
}

// childRadius derives split child radius from the parent
func (s *Simulation) childRadius(r float64) float64 {
	switch s.cfg.SplitRadiusRule {
	case parameter.SplitRadiusArea:
		return r / math.Sqrt(float64(s.cfg.SplitFanOut))
	case parameter.SplitRadiusBase:
		return s.cfg.SpawnRadiusMax
	default:
		return r / 2
	}
}

// splitOversized replaces every body above SplitRadius with a fan of children sharing a new group
func (s *Simulation) splitOversized() {
	cfg := &s.cfg
	if cfg.SplitRadius <= 0 {
		return
	}
	b := s.bodies
	n := b.Len()
	for i := 0; i < n; i++ {
		if b.dead[i] || b.r[i] <= cfg.SplitRadius {
			continue
		}

		px, py, pr, hue := b.x[i], b.y[i], b.r[i], b.hue[i]
		childR := s.childRadius(pr)
		offset := childR * cfg.SplitOffset
		group := s.nextGroup
		s.nextGroup++

		base := vmath.RandAngle(s.rng)
		step := vmath.TwoPi / float64(cfg.SplitFanOut)
		for k := 0; k < cfg.SplitFanOut; k++ {
			angle := base + float64(k)*step
			if cfg.SplitAngles == parameter.SplitAnglesRandom {
				angle = vmath.RandAngle(s.rng)
			}
			ox, oy := vmath.FromAngle(angle, offset)
			vx, vy := vmath.FromAngle(angle, cfg.SplitSpeed)
			x, y := s.clampCenter(px+ox, py+oy, childR)
			b.add(bodyInit{
				x: x, y: y, vx: vx, vy: vy,
				r:        childR,
				hue:      hue,
				cooldown: int32(cfg.ChildCooldown),
				immunity: int32(cfg.SplitImmunity),
				group:    group,
			})
		}

		b.kill(i)
		s.counters.Splits++
		s.emit(event.EventSplit, &event.SplitPayload{
			Parent:   uint64(b.ids[i]),
			Group:    group,
			Children: cfg.SplitFanOut,
			X:        px,
			Y:        py,
			Radius:   pr,
		})
	}
}

// explode fragments fast non-immune bodies and bodies whose fuse expires this tick
func (s *Simulation) explode() {
	cfg := &s.cfg
	if cfg.FragmentCount == 0 {
		return
	}
	b := s.bodies
	n := b.Len()
	for i := 0; i < n; i++ {
		if b.dead[i] {
			continue
		}
		fused := b.fuse[i] == 1
		fast := cfg.ExplodeSpeedSq > 0 &&
			b.immunity[i] == 0 &&
			!(b.fragment[i] && cfg.FragmentsExempt) &&
			physics.SpeedSq(b.vx[i], b.vy[i]) > cfg.ExplodeSpeedSq
		if !fused && !fast {
			continue
		}

		px, py, pr := b.x[i], b.y[i], b.r[i]
		pvx, pvy := b.vx[i], b.vy[i]
		fragR := cfg.FragmentRadius
		if fragR <= 0 {
			fragR = pr / cfg.FragmentRadiusDivisor
		}
		x, y := s.clampCenter(px, py, fragR)

		for k := 0; k < cfg.FragmentCount; k++ {
			speed := vmath.RandRange(s.rng, cfg.FragmentSpeedMin, cfg.FragmentSpeedMax)
			vx, vy := vmath.FromAngle(vmath.RandAngle(s.rng), speed)
			if cfg.FragmentInheritVelocity {
				vx += pvx
				vy += pvy
			}
			b.add(bodyInit{
				x: x, y: y, vx: vx, vy: vy,
				r:        fragR,
				hue:      s.randomHue(),
				cooldown: int32(cfg.ChildCooldown),
				immunity: int32(cfg.SpawnImmunity),
				group:    parameter.NoGroup,
				fragment: true,
			})
		}

		b.kill(i)
		s.counters.Explosions++
		s.emit(event.EventExploded, &event.ExplodedPayload{
			Parent:    uint64(b.ids[i]),
			Fragments: cfg.FragmentCount,
			X:         px,
			Y:         py,
			Radius:    pr,
			Fuse:      fused,
		})
	}
}

// cull enforces HardCap with the configured policy
func (s *Simulation) cull() {
	cfg := &s.cfg
	b := s.bodies
	live := b.Live()
	if cfg.HardCap <= 0 || cfg.CullPolicy == parameter.CullNone || live <= cfg.HardCap {
		return
	}
	excess := live - cfg.HardCap

	s.order = s.order[:0]
	for i := 0; i < b.Len(); i++ {
		if !b.dead[i] {
			s.order = append(s.order, i)
		}
	}

	switch cfg.CullPolicy {
	case parameter.CullRandom:
		// Partial Fisher-Yates: the first excess entries become the victims
		for k := 0; k < excess; k++ {
			r := k + s.rng.Intn(len(s.order)-k)
			s.order[k], s.order[r] = s.order[r], s.order[k]
		}
		for _, i := range s.order[:excess] {
			b.kill(i)
		}
	default:
		// Keep the HardCap fastest, slowest go first
		slices.SortFunc(s.order, func(a, c int) int {
			sa := physics.SpeedSq(b.vx[a], b.vy[a])
			sc := physics.SpeedSq(b.vx[c], b.vy[c])
			switch {
			case sa < sc:
				return -1
			case sa > sc:
				return 1
			default:
				return 0
			}
		})
		for _, i := range s.order[:excess] {
			b.kill(i)
		}
	}

	s.counters.Culled += uint64(excess)
	s.emit(event.EventCulled, &event.CulledPayload{
		Removed:    excess,
		Population: b.Live(),
	})
}

// advanceCounters ticks cooldown, immunity, fuse and split age, and drifts hue
func (s *Simulation) advanceCounters() {
	b := s.bodies
	drift := s.cfg.HueDrift
	for i := 0; i < b.Len(); i++ {
		if b.cooldown[i] > 0 {
			b.cooldown[i]--
		}
		if b.immunity[i] > 0 {
			b.immunity[i]--
		}
		if b.fuse[i] > 0 {
			b.fuse[i]--
		}
		if b.group[i] != parameter.NoGroup {
			b.splitAge[i]++
		}
		if drift != 0 {
			b.hue[i] = vmath.WrapDegrees(b.hue[i] + drift)
		}
	}
}

func resetBools(buf []bool, n int) []bool {
	if cap(buf) < n {
		return make([]bool, n)
	}
	buf = buf[:n]
	clear(buf)
	return buf
}
