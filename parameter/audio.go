package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Audio Mixing
const (
	// MaxVoices caps concurrently playing tones, extra triggers are dropped
	MaxVoices = 8

	// MinSoundGap between consecutive tones of the same kind
	MinSoundGap = 30 * time.Millisecond

	// DefaultMasterVolume on the 0-100 scale
	DefaultMasterVolume = 40

	// ToneAmplitude is the peak of a single voice before master volume
	ToneAmplitude = 0.25
)

// Merge Tone
const (
	MergeToneMinHz    = 220.0
	MergeToneMaxHz    = 660.0
	MergeToneDuration = 50 * time.Millisecond
)

// Split Tone
const (
	SplitToneMinHz    = 150.0
	SplitToneMaxHz    = 350.0
	SplitToneDuration = 100 * time.Millisecond
)

// Explosion Tone
const (
	ExplodeToneMinHz    = 440.0
	ExplodeToneMaxHz    = 880.0
	ExplodeToneDuration = 50 * time.Millisecond
)

// Tone Envelope
const (
	ToneAttack  = 5 * time.Millisecond
	ToneRelease = 20 * time.Millisecond
)

// Pitch glide as end/start frequency ratio, and noise share of the explosion voice
const (
	MergeGlide   = 1.5
	SplitGlide   = 0.6
	ExplodeGlide = 0.5
	ExplodeNoise = 0.6
)
