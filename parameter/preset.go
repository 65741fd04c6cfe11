package parameter

import "sort"

// Variant names
const (
	VariantCanvas  = "canvas"
	VariantWebGL   = "webgl"
	VariantElastic = "elastic"
)

// DefaultVariant is used when no variant is requested
const DefaultVariant = VariantWebGL

var presets = map[string]func() Physics{
	VariantCanvas:  Canvas,
	VariantWebGL:   WebGL,
	VariantElastic: Elastic,
}

// Preset returns a fresh copy of the named variant
func Preset(name string) (Physics, bool) {
	fn, ok := presets[name]
	if !ok {
		return Physics{}, false
	}
	return fn(), true
}

// Variants lists preset names in sorted order
func Variants() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the default variant
func Default() Physics {
	return WebGL()
}

// Canvas is the wall-clock variant: velocities in units per second, probabilistic
// merges that average velocity and arm a fuse, fuse bursts into base-size bodies
func Canvas() Physics {
	return Physics{
		Name:          VariantCanvas,
		Width:         1280,
		Height:        720,
		InitialCount:  10,
		MaxPopulation: 20000,
		UseDeltaTime:  true,

		SpawnRadiusMin: 22,
		SpawnRadiusMax: 22,
		SpawnSpeed:     500,
		SpawnImmunity:  0,
		HueDrift:       0,
		SpeedLimit:     20000,

		BounceGain:  1.15,
		BounceBoost: 1.0,

		AttractorLaw:         AttractorLinear,
		AttractorStrength:    0.4,
		AttractorMinRadius:   0,
		AttractorMinDistance: 1,
		AttractorMaxDistance: 0,

		GridMinCells:  12,
		GridMaxCells:  32,
		GridOccupancy: 3,

		CollisionMode:    CollisionMerge,
		MergeProbability: 0.12,
		MergeGain:        1.0,
		MergeVelocity:    MergeVelocityAverage,
		MergeCooldown:    42,
		MergeMinRadius:   0,
		MergeInterval:    1,
		GraceTicks:       42,
		ElasticBoost:     1.0,
		FuseMin:          60,
		FuseMax:          300,

		SplitRadius:     75,
		SplitFanOut:     12,
		SplitOffset:     0,
		SplitSpeed:      300,
		SplitRadiusRule: SplitRadiusBase,
		SplitAngles:     SplitAnglesRandom,
		SplitImmunity:   0,
		ChildCooldown:   42,

		ExplodeSpeedSq:          0,
		FragmentCount:           12,
		FragmentRadius:          22,
		FragmentRadiusDivisor:   3,
		FragmentSpeedMin:        200,
		FragmentSpeedMax:        400,
		FragmentInheritVelocity: true,
		FragmentsExempt:         false,

		HardCap:    5000,
		CullPolicy: CullFastest,

		DragVelocityDivisor: 10.0 / TickRate,
		BurstCount:          DefaultBurstCount,
	}
}

// WebGL is the unit-step variant: merge on contact every third tick, split above
// radius 50, explode fast non-immune bodies into three minis
func WebGL() Physics {
	return Physics{
		Name:          VariantWebGL,
		Width:         1280,
		Height:        720,
		InitialCount:  10,
		MaxPopulation: 250000,
		UseDeltaTime:  false,

		SpawnRadiusMin: 15,
		SpawnRadiusMax: 35,
		SpawnSpeed:     4,
		SpawnImmunity:  30,
		HueDrift:       2,
		SpeedLimit:     1000,

		BounceGain:  1.1,
		BounceBoost: 1.02,

		AttractorLaw:         AttractorInverseSquare,
		AttractorStrength:    0.08,
		AttractorMinRadius:   10,
		AttractorMinDistance: 1,
		AttractorMaxDistance: 200,
		AttractorThrottle: []ThrottleTier{
			{Population: 5000, Every: 5},
			{Population: 50000, Every: 10},
		},

		GridMinCells:  12,
		GridMaxCells:  32,
		GridOccupancy: 3,

		CollisionMode:    CollisionMerge,
		MergeProbability: 1,
		MergeGain:        1.03,
		MergeVelocity:    MergeVelocityFastest,
		MergeCooldown:    100,
		MergeMinRadius:   5,
		MergeInterval:    3,
		MergeThrottle: []ThrottleTier{
			{Population: 50000, Every: 10},
		},
		GraceTicks:   120,
		ElasticBoost: 1.0,

		SplitRadius:     50,
		SplitFanOut:     2,
		SplitOffset:     1.2,
		SplitSpeed:      7,
		SplitRadiusRule: SplitRadiusHalf,
		SplitAngles:     SplitAnglesEven,
		SplitImmunity:   30,

		ExplodeSpeedSq:        625,
		FragmentCount:         3,
		FragmentRadiusDivisor: 3,
		FragmentSpeedMin:      10,
		FragmentSpeedMax:      15,
		FragmentsExempt:       true,

		HardCap:    200000,
		CullPolicy: CullFastest,

		DragVelocityDivisor: 10,
		BurstCount:          DefaultBurstCount,
	}
}

// Elastic keeps the unit-step arena but bounces colliding pairs apart instead of merging
func Elastic() Physics {
	p := WebGL()
	p.Name = VariantElastic
	p.CollisionMode = CollisionElastic
	p.ElasticBoost = 1.01
	p.MergeInterval = 1
	p.MergeThrottle = []ThrottleTier{{Population: 50000, Every: 3}}
	p.MergeCooldown = 0
	p.MergeMinRadius = 0
	p.GraceTicks = 30
	return p
}
