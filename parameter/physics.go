package parameter

import (
	"errors"
	"fmt"
)

// CollisionMode selects how an overlapping pair is resolved
type CollisionMode string

const (
	CollisionMerge   CollisionMode = "merge"
	CollisionElastic CollisionMode = "elastic"
)

// MergeVelocityRule selects the velocity of a merged body
type MergeVelocityRule string

const (
	// MergeVelocityFastest keeps the faster parent's velocity
	MergeVelocityFastest MergeVelocityRule = "fastest"
	// MergeVelocityAverage takes the mean of both parents
	MergeVelocityAverage MergeVelocityRule = "average"
)

// SplitRadiusRule derives child radius from parent radius
type SplitRadiusRule string

const (
	// SplitRadiusHalf gives each child r/2
	SplitRadiusHalf SplitRadiusRule = "half"
	// SplitRadiusArea gives each child r/sqrt(n), conserving total area
	SplitRadiusArea SplitRadiusRule = "area"
	// SplitRadiusBase gives each child SpawnRadiusMax
	SplitRadiusBase SplitRadiusRule = "base"
)

// SplitAngleRule selects child emission angles
type SplitAngleRule string

const (
	// SplitAnglesEven spaces children evenly from a random base angle
	SplitAnglesEven SplitAngleRule = "even"
	// SplitAnglesRandom draws every child angle independently
	SplitAnglesRandom SplitAngleRule = "random"
)

// CullPolicy selects the population safety valve
type CullPolicy string

const (
	CullNone    CullPolicy = "none"
	CullFastest CullPolicy = "fastest"
	CullRandom  CullPolicy = "random"
)

// AttractorLaw selects the attractor acceleration profile
type AttractorLaw string

const (
	// AttractorInverseSquare accelerates by strength/d² toward the point
	AttractorInverseSquare AttractorLaw = "inverse_square"
	// AttractorLinear accelerates by strength*d toward the point (spring)
	AttractorLinear AttractorLaw = "linear"
)

// ThrottleTier runs an expensive phase every Every ticks once population reaches Population
type ThrottleTier struct {
	Population int `toml:"population"`
	Every      int `toml:"every"`
}

// Physics is the full tunable record of one simulation variant
// Zero thresholds disable the corresponding feature where noted
type Physics struct {
	Name string `toml:"name"`

	// Arena and population
	Width         float64 `toml:"width"`
	Height        float64 `toml:"height"`
	InitialCount  int     `toml:"initial_count"`
	MaxPopulation int     `toml:"max_population"` // spawn ceiling, 0 = unlimited
	UseDeltaTime  bool    `toml:"use_delta_time"` // false = unit step per frame

	// Spawn defaults
	SpawnRadiusMin float64 `toml:"spawn_radius_min"`
	SpawnRadiusMax float64 `toml:"spawn_radius_max"`
	SpawnSpeed     float64 `toml:"spawn_speed"` // per-axis span of (rand-0.5)*SpawnSpeed
	SpawnImmunity  int     `toml:"spawn_immunity"`
	HueDrift       float64 `toml:"hue_drift"`   // degrees per tick
	SpeedLimit     float64 `toml:"speed_limit"` // 0 = uncapped

	// Boundary
	BounceGain  float64 `toml:"bounce_gain"`  // bounced axis amplification, >= 1
	BounceBoost float64 `toml:"bounce_boost"` // both axes, applied once per bouncing tick

	// Attractor
	AttractorLaw         AttractorLaw   `toml:"attractor_law"`
	AttractorStrength    float64        `toml:"attractor_strength"`
	AttractorMinRadius   float64        `toml:"attractor_min_radius"`
	AttractorMinDistance float64        `toml:"attractor_min_distance"`
	AttractorMaxDistance float64        `toml:"attractor_max_distance"` // 0 = unlimited
	AttractorThrottle    []ThrottleTier `toml:"attractor_throttle"`

	// Broad phase grid
	GridMinCells  int     `toml:"grid_min_cells"`
	GridMaxCells  int     `toml:"grid_max_cells"`
	GridOccupancy float64 `toml:"grid_occupancy"` // target bodies per cell

	// Pair resolution
	CollisionMode    CollisionMode     `toml:"collision_mode"`
	MergeProbability float64           `toml:"merge_probability"`
	MergeGain        float64           `toml:"merge_gain"`
	MergeVelocity    MergeVelocityRule `toml:"merge_velocity"`
	MergeCooldown    int               `toml:"merge_cooldown"`
	MergeMinRadius   float64           `toml:"merge_min_radius"`
	MergeInterval    int               `toml:"merge_interval"`
	MergeThrottle    []ThrottleTier    `toml:"merge_throttle"`
	GraceTicks       int               `toml:"grace_ticks"`
	ElasticBoost     float64           `toml:"elastic_boost"`
	FuseMin          int               `toml:"fuse_min"` // ticks, 0 = merged bodies carry no fuse
	FuseMax          int               `toml:"fuse_max"`

	// Splitting
	SplitRadius     float64         `toml:"split_radius"` // 0 = never split
	SplitFanOut     int             `toml:"split_fan_out"`
	SplitOffset     float64         `toml:"split_offset"` // multiple of child radius
	SplitSpeed      float64         `toml:"split_speed"`
	SplitRadiusRule SplitRadiusRule `toml:"split_radius_rule"`
	SplitAngles     SplitAngleRule  `toml:"split_angles"`
	SplitImmunity   int             `toml:"split_immunity"`
	ChildCooldown   int             `toml:"child_cooldown"` // merge cooldown for split children and fragments

	// Explosion
	ExplodeSpeedSq          float64 `toml:"explode_speed_sq"` // 0 = velocity never triggers
	FragmentCount           int     `toml:"fragment_count"`
	FragmentRadiusDivisor   float64 `toml:"fragment_radius_divisor"`
	FragmentRadius          float64 `toml:"fragment_radius"` // fixed radius, overrides divisor when > 0
	FragmentSpeedMin        float64 `toml:"fragment_speed_min"`
	FragmentSpeedMax        float64 `toml:"fragment_speed_max"`
	FragmentInheritVelocity bool    `toml:"fragment_inherit_velocity"`
	FragmentsExempt         bool    `toml:"fragments_exempt"`

	// Population control
	HardCap    int        `toml:"hard_cap"` // 0 = no cap
	CullPolicy CullPolicy `toml:"cull_policy"`

	// Input
	DragVelocityDivisor float64 `toml:"drag_velocity_divisor"`
	BurstCount          int     `toml:"burst_count"`
}

// Interval returns the tick interval for a phase at the given population
// The highest tier whose population threshold is reached wins
func Interval(base int, tiers []ThrottleTier, population int) int {
	every := base
	reached := -1
	for _, t := range tiers {
		if population >= t.Population && t.Population > reached {
			reached = t.Population
			every = t.Every
		}
	}
	if every < 1 {
		every = 1
	}
	return every
}

// Clone returns a deep copy, tier slices included
func (p Physics) Clone() Physics {
	c := p
	c.AttractorThrottle = append([]ThrottleTier(nil), p.AttractorThrottle...)
	c.MergeThrottle = append([]ThrottleTier(nil), p.MergeThrottle...)
	return c
}

// Validate reports every impossible value in the record
func (p *Physics) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if p.Width <= 0 || p.Height <= 0 {
		fail("arena must be positive, got %vx%v", p.Width, p.Height)
	}
	if p.InitialCount < 0 {
		fail("initial_count must be >= 0, got %d", p.InitialCount)
	}
	if p.SpawnRadiusMin <= 0 || p.SpawnRadiusMax < p.SpawnRadiusMin {
		fail("spawn radius range invalid: [%v, %v]", p.SpawnRadiusMin, p.SpawnRadiusMax)
	}
	if p.BounceGain < 1 {
		fail("bounce_gain must be >= 1, got %v", p.BounceGain)
	}
	if p.BounceBoost < 1 {
		fail("bounce_boost must be >= 1, got %v", p.BounceBoost)
	}
	if p.GridMinCells < 1 || p.GridMaxCells < p.GridMinCells {
		fail("grid cell range invalid: [%d, %d]", p.GridMinCells, p.GridMaxCells)
	}
	if p.GridOccupancy <= 0 {
		fail("grid_occupancy must be > 0, got %v", p.GridOccupancy)
	}
	if p.MergeProbability < 0 || p.MergeProbability > 1 {
		fail("merge_probability must be in [0, 1], got %v", p.MergeProbability)
	}
	if p.MergeInterval < 1 {
		fail("merge_interval must be >= 1, got %d", p.MergeInterval)
	}
	if p.MergeCooldown < 0 || p.GraceTicks < 0 || p.SpawnImmunity < 0 || p.SplitImmunity < 0 || p.ChildCooldown < 0 {
		fail("tick counters must be >= 0")
	}
	if p.FuseMin < 0 || p.FuseMax < p.FuseMin {
		fail("fuse range invalid: [%d, %d]", p.FuseMin, p.FuseMax)
	}
	if p.SplitRadius > 0 && p.SplitFanOut < 2 {
		fail("split_fan_out must be >= 2 when splitting is enabled, got %d", p.SplitFanOut)
	}
	if p.SplitRadius > 0 && p.SplitRadiusRule == SplitRadiusBase && p.SpawnRadiusMax >= p.SplitRadius {
		fail("split_radius_rule base needs spawn_radius_max < split_radius, got %v >= %v", p.SpawnRadiusMax, p.SplitRadius)
	}
	if p.FragmentCount < 0 {
		fail("fragment_count must be >= 0, got %d", p.FragmentCount)
	}
	if p.FragmentCount > 0 && p.FragmentRadius <= 0 && p.FragmentRadiusDivisor <= 0 {
		fail("fragments need fragment_radius or fragment_radius_divisor > 0")
	}
	if p.FragmentSpeedMax < p.FragmentSpeedMin {
		fail("fragment speed range invalid: [%v, %v]", p.FragmentSpeedMin, p.FragmentSpeedMax)
	}
	if p.HardCap < 0 || p.MaxPopulation < 0 {
		fail("population limits must be >= 0")
	}
	if p.DragVelocityDivisor <= 0 {
		fail("drag_velocity_divisor must be > 0, got %v", p.DragVelocityDivisor)
	}

	switch p.CollisionMode {
	case CollisionMerge, CollisionElastic:
	default:
		fail("unknown collision_mode %q", p.CollisionMode)
	}
	switch p.MergeVelocity {
	case MergeVelocityFastest, MergeVelocityAverage:
	default:
		fail("unknown merge_velocity %q", p.MergeVelocity)
	}
	switch p.SplitRadiusRule {
	case SplitRadiusHalf, SplitRadiusArea, SplitRadiusBase:
	default:
		fail("unknown split_radius_rule %q", p.SplitRadiusRule)
	}
	switch p.SplitAngles {
	case SplitAnglesEven, SplitAnglesRandom:
	default:
		fail("unknown split_angles %q", p.SplitAngles)
	}
	switch p.CullPolicy {
	case CullNone, CullFastest, CullRandom:
	default:
		fail("unknown cull_policy %q", p.CullPolicy)
	}
	switch p.AttractorLaw {
	case AttractorInverseSquare, AttractorLinear:
	default:
		fail("unknown attractor_law %q", p.AttractorLaw)
	}

	return errors.Join(errs...)
}
