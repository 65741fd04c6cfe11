package parameter

// Terminal Layout
const (
	// HUDHeight is the number of rows reserved at the bottom for the status line
	HUDHeight = 1

	// PixelsPerCellX maps arena units to terminal columns
	// Rows carry two half-block pixels each
	PixelsPerCellX = 8.0
	PixelsPerCellY = 8.0
)

// Texture Modes
const (
	TextureSolid = "solid"
	TextureNoise = "noise"
	TextureRing  = "ring"
)

// TextureModes is the cycle order for the texture toggle
var TextureModes = []string{TextureSolid, TextureNoise, TextureRing}

// Noise Texture
const (
	NoiseAlpha   = 2.0
	NoiseBeta    = 2.0
	NoiseOctaves = 3

	// NoiseScale converts arena units into noise space
	NoiseScale = 0.05

	// NoiseShade is the brightness swing applied by the noise texture
	NoiseShade = 0.35
)

// Window Surface
const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "chaos-merge"
)

// Input
const (
	// DefaultBurstCount is added per burst command when the config leaves it unset
	DefaultBurstCount = 100

	// DragSpawnMinSq is the squared gesture length above which a release over empty
	// arena throws a new body instead of spawning a random one
	DragSpawnMinSq = 100.0

	// DragSpawnRadius is the radius of a body thrown from empty arena
	DragSpawnRadius = 20.0
)

// HUD Symbols
const (
	AudioStr     = "♫ on"
	MutedStr     = "♫ off"
	AttractorStr = "◉"
)
