package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/chaos-merge/parameter"
)

// Voice describes one event tone: a sine gliding from StartHz to EndHz, optionally mixed with noise
type Voice struct {
	StartHz, EndHz float64
	Noise          float64 // 0 pure tone, 1 pure noise
	Duration       time.Duration
	Attack         time.Duration
	Release        time.Duration
	Seed           uint64
}

type voiceStreamer struct {
	v       Voice
	rate    beep.SampleRate
	total   int
	attack  int
	release int
	pos     int
	phase   float64
	rng     *rand.Rand
}

// NewVoice renders v at rate
// Attack and release share the length evenly when together they exceed it
func NewVoice(v Voice, rate beep.SampleRate) beep.Streamer {
	total := rate.N(v.Duration)
	att, rel := rate.N(v.Attack), rate.N(v.Release)
	if att+rel > total {
		att = total / 2
		rel = total - att
	}
	return &voiceStreamer{
		v:       v,
		rate:    rate,
		total:   total,
		attack:  att,
		release: rel,
		rng:     rand.New(rand.NewSource(v.Seed)),
	}
}

// gain is the envelope level at the current position
func (s *voiceStreamer) gain() float64 {
	g := 1.0
	if s.pos < s.attack {
		g = float64(s.pos) / float64(s.attack)
	}
	if left := s.total - s.pos; s.release > 0 && left <= s.release {
		g = math.Min(g, float64(left)/float64(s.release))
	}
	return g
}

func (s *voiceStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= s.total {
		return 0, false
	}
	n := 0
	for n < len(samples) && s.pos < s.total {
		t := float64(s.pos) / float64(s.total)
		hz := s.v.StartHz + (s.v.EndHz-s.v.StartHz)*t

		v := math.Sin(2 * math.Pi * s.phase)
		if s.v.Noise > 0 {
			v = v*(1-s.v.Noise) + (s.rng.Float64()*2-1)*s.v.Noise
		}
		v *= s.gain()
		samples[n] = [2]float64{v, v}

		s.phase += hz / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
		n++
	}
	return n, true
}

func (s *voiceStreamer) Err() error { return nil }

// withGain scales s linearly; beep volume is logarithmic so zero maps to Silent
func withGain(s beep.Streamer, g float64) beep.Streamer {
	if g <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(g)}
}

type toneShape struct {
	minHz, maxHz float64
	duration     time.Duration
	glide        float64
	noise        float64
}

var toneShapes = [soundTypeCount]toneShape{
	SoundMerge:   {parameter.MergeToneMinHz, parameter.MergeToneMaxHz, parameter.MergeToneDuration, parameter.MergeGlide, 0},
	SoundSplit:   {parameter.SplitToneMinHz, parameter.SplitToneMaxHz, parameter.SplitToneDuration, parameter.SplitGlide, 0},
	SoundExplode: {parameter.ExplodeToneMinHz, parameter.ExplodeToneMaxHz, parameter.ExplodeToneDuration, parameter.ExplodeGlide, parameter.ExplodeNoise},
}

// ToneRange returns the starting pitch band and duration of a sound type
func ToneRange(kind SoundType) (minHz, maxHz float64, duration time.Duration) {
	if kind < 0 || kind >= soundTypeCount {
		return 0, 0, 0
	}
	s := toneShapes[kind]
	return s.minHz, s.maxHz, s.duration
}

// VoiceFor builds the voice of kind starting at freq
func VoiceFor(kind SoundType, freq float64, seed uint64) (Voice, bool) {
	if kind < 0 || kind >= soundTypeCount {
		return Voice{}, false
	}
	s := toneShapes[kind]
	return Voice{
		StartHz:  freq,
		EndHz:    freq * s.glide,
		Noise:    s.noise,
		Duration: s.duration,
		Attack:   parameter.ToneAttack,
		Release:  parameter.ToneRelease,
		Seed:     seed,
	}, true
}

// CreateTone renders the voice of kind at freq, scaled by voice and master volume
func CreateTone(kind SoundType, freq float64, cfg *AudioConfig) beep.Streamer {
	v, ok := VoiceFor(kind, freq, math.Float64bits(freq))
	if !ok {
		return nil
	}
	return withGain(NewVoice(v, beep.SampleRate(cfg.SampleRate)), parameter.ToneAmplitude*cfg.MasterVolume)
}
