package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/chaos-merge/parameter"
)

// AudioConfig holds output settings
type AudioConfig struct {
	Enabled      bool    // false = never open the speaker
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
}

// DefaultAudioConfig returns the compiled-in defaults
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: float64(parameter.DefaultMasterVolume) / 100.0,
		SampleRate:   parameter.AudioSampleRate,
	}
}

// LoadAudioConfig loads audio configuration from environment variables
// getenv nil means os.Getenv; malformed values keep the default
func LoadAudioConfig(getenv func(string) string) *AudioConfig {
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg := DefaultAudioConfig()

	if enabled := getenv("CHAOS_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume on a 0-100 scale
	if volume := getenv("CHAOS_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	if sampleRate := getenv("CHAOS_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
