package audio

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/chaos-merge/status"
)

// AudioService wraps SoundManager as a Service
// Handles graceful degradation when no audio device is available
type AudioService struct {
	manager  *SoundManager
	cfg      *AudioConfig
	disabled atomic.Bool
	getenv   func(string) string
}

// NewService creates a new audio service
func NewService() *AudioService {
	return &AudioService{}
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *AudioService) Dependencies() []string {
	return []string{"status"}
}

// Init implements Service
// Accepted args: bool initial mute state, *status.Registry for metrics
// Configuration comes from CHAOS_AUDIO_* environment variables
func (s *AudioService) Init(args ...any) error {
	var (
		muted bool
		reg   *status.Registry
	)
	for _, arg := range args {
		switch v := arg.(type) {
		case bool:
			muted = v
		case *status.Registry:
			reg = v
		}
	}

	s.cfg = LoadAudioConfig(s.getenv)
	s.manager = NewSoundManager(s.cfg, reg)
	if muted {
		s.manager.Mute()
	}
	if !s.cfg.Enabled {
		s.disabled.Store(true)
	}
	return nil
}

// Start implements Service
// Opens the speaker; sets disabled on failure (no error returned)
func (s *AudioService) Start() error {
	if s.disabled.Load() || s.manager == nil {
		return nil
	}
	if err := s.manager.Initialize(); err != nil {
		log.Printf("audio: speaker unavailable, running silent: %v", err)
		s.disabled.Store(true)
	}
	return nil
}

// Stop implements Service
func (s *AudioService) Stop() error {
	if s.manager != nil {
		s.manager.Cleanup()
	}
	return nil
}

// IsDisabled returns true if audio output is unavailable
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// Manager returns the sound manager, nil before Init
// A disabled manager still tracks mute state for the HUD
func (s *AudioService) Manager() *SoundManager {
	return s.manager
}
