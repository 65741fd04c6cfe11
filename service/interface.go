package service

// Service is a long-lived subsystem owned by a Hub (metrics, audio output, frame recorder)
//
// The hub calls Init once in dependency order, then Start, and Stop on shutdown
// Stop may be called again after a failed Start and must tolerate it
type Service interface {
	Name() string
	// Dependencies names services whose Init must run first
	Dependencies() []string
	// Init takes service-specific args, e.g. the mute flag or the recording path
	Init(args ...any) error
	Start() error
	Stop() error
}
