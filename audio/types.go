package audio

import (
	"errors"
)

// SoundType represents the tone played for one lifecycle event
type SoundType int

const (
	SoundMerge   SoundType = iota // Two bodies became one
	SoundSplit                    // Oversized body fanned out
	SoundExplode                  // Body burst into fragments
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"merge", "split", "explode"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio output not initialized")
	ErrMuted          = errors.New("audio muted")
	ErrThrottled      = errors.New("tone dropped by rate limit")
)
