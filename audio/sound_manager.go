package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/chaos-merge/engine"
	"github.com/lixenwraith/chaos-merge/event"
	"github.com/lixenwraith/chaos-merge/parameter"
	"github.com/lixenwraith/chaos-merge/status"
)

// SoundManager plays short tones for merges, splits and explosions
// Safe for concurrent use; Play never blocks on the audio device
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	lastPlay    [soundTypeCount]time.Time
	rng         *rand.Rand
	now         func() time.Time
	sink        func(beep.Streamer) // hands a voice to the output, set by Initialize

	muted  atomic.Bool
	voices atomic.Int32

	statMuted  *atomic.Bool
	statActive *atomic.Bool
	statVoices *atomic.Int64
}

// NewSoundManager creates a sound manager; reg may be nil
func NewSoundManager(cfg *AudioConfig, reg *status.Registry) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &SoundManager{
		cfg:        cfg,
		mixer:      &beep.Mixer{},
		rng:        rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		now:        time.Now,
		statMuted:  reg.Bools.Get(status.MetricMuted),
		statActive: reg.Bools.Get(status.MetricAudioActive),
		statVoices: reg.Ints.Get(status.MetricVoices),
	}
}

// Initialize opens the speaker and starts the shared mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sr := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(sr, sr.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.sink = func(s beep.Streamer) {
		speaker.Lock()
		sm.mixer.Add(s)
		speaker.Unlock()
	}
	sm.initialized = true
	sm.statActive.Store(true)
	return nil
}

// Cleanup stops all voices
// beep keeps the device open for the process lifetime, clearing it silences output
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	sm.mixer.Clear()
	sm.voices.Store(0)
	sm.statVoices.Store(0)
	sm.sink = nil
	sm.initialized = false
	sm.statActive.Store(false)
}

// Play starts one tone of the given kind at a random pitch within its band
// Returns ErrNotInitialized, ErrMuted or ErrThrottled when the tone is dropped
func (sm *SoundManager) Play(kind SoundType) error {
	minHz, maxHz, _ := ToneRange(kind)

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	if sm.muted.Load() {
		return ErrMuted
	}
	now := sm.now()
	if now.Sub(sm.lastPlay[kind]) < parameter.MinSoundGap {
		return ErrThrottled
	}
	if sm.voices.Load() >= parameter.MaxVoices {
		return ErrThrottled
	}

	freq := minHz + sm.rng.Float64()*(maxHz-minHz)
	tone := CreateTone(kind, freq, sm.cfg)
	if tone == nil {
		return nil
	}

	sm.lastPlay[kind] = now
	sm.statVoices.Store(int64(sm.voices.Add(1)))
	sm.sink(beep.Seq(tone, beep.Callback(func() {
		sm.statVoices.Store(int64(sm.voices.Add(-1)))
	})))
	return nil
}

// Mute silences new tones
func (sm *SoundManager) Mute() {
	sm.muted.Store(true)
	sm.statMuted.Store(true)
}

// Unmute re-enables tones
func (sm *SoundManager) Unmute() {
	sm.muted.Store(false)
	sm.statMuted.Store(false)
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	for {
		cur := sm.muted.Load()
		if sm.muted.CompareAndSwap(cur, !cur) {
			sm.statMuted.Store(!cur)
			return !cur
		}
	}
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// IsRunning reports whether the speaker is open
func (sm *SoundManager) IsRunning() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Voices returns the number of tones currently playing
func (sm *SoundManager) Voices() int {
	return int(sm.voices.Load())
}

// HandleEvent implements event.Handler
// Dropped tones are expected under load and not reported
func (sm *SoundManager) HandleEvent(_ *engine.Simulation, ev event.Event) {
	switch ev.Type {
	case event.EventMerged:
		_ = sm.Play(SoundMerge)
	case event.EventSplit:
		_ = sm.Play(SoundSplit)
	case event.EventExploded:
		_ = sm.Play(SoundExplode)
	case event.EventMute:
		sm.Mute()
	case event.EventUnmute:
		sm.Unmute()
	case event.EventToggleMute:
		sm.ToggleMute()
	}
}

// EventTypes implements event.Handler
func (sm *SoundManager) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMerged,
		event.EventSplit,
		event.EventExploded,
		event.EventMute,
		event.EventUnmute,
		event.EventToggleMute,
	}
}
