package status

// Metric keys shared by producers (runner, audio, renderers) and readers (HUDs, bench)
const (
	// Simulation gauges and totals
	MetricPopulation = "sim.population"
	MetricTick       = "sim.tick"
	MetricPeak       = "sim.peak"
	MetricMerges     = "sim.merges"
	MetricSplits     = "sim.splits"
	MetricExplosions = "sim.explosions"
	MetricCulled     = "sim.culled"
	MetricAttractor  = "sim.attractor"

	// Frame loop
	MetricFPS             = "engine.fps"
	MetricFramesSkipped   = "engine.frames_skipped"
	MetricCommandsDropped = "engine.commands_dropped"

	// Surfaces
	MetricMuted       = "audio.muted"
	MetricAudioActive = "audio.active"
	MetricVoices      = "audio.voices"
	MetricTexture     = "render.texture"
	MetricVariant     = "sim.variant"

	// Recording
	MetricFramesRecorded = "record.frames"
)
