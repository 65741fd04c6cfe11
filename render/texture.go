package render

import (
	"github.com/aquilax/go-perlin"

	"github.com/lixenwraith/chaos-merge/engine"
	"github.com/lixenwraith/chaos-merge/parameter"
)

// Texture shades the pixels of one body according to the active mode
type Texture struct {
	mode  string
	noise *perlin.Perlin
}

// NewTexture creates a texture in the given mode; unknown modes fall back to solid
func NewTexture(mode string, seed int64) *Texture {
	t := &Texture{
		mode:  parameter.TextureSolid,
		noise: perlin.NewPerlin(parameter.NoiseAlpha, parameter.NoiseBeta, parameter.NoiseOctaves, seed),
	}
	t.SetMode(mode)
	return t
}

// Mode returns the active mode name
func (t *Texture) Mode() string {
	return t.mode
}

// SetMode switches mode, returns false for unknown names
func (t *Texture) SetMode(mode string) bool {
	for _, m := range parameter.TextureModes {
		if m == mode {
			t.mode = mode
			return true
		}
	}
	return false
}

// Cycle advances to the next mode and returns it
func (t *Texture) Cycle() string {
	modes := parameter.TextureModes
	for i, m := range modes {
		if m == t.mode {
			t.mode = modes[(i+1)%len(modes)]
			return t.mode
		}
	}
	t.mode = modes[0]
	return t.mode
}

// Shade returns the color of the pixel at offset (dx, dy) from the sprite center
// ring is the outline thickness in arena units; ok is false for unpainted pixels
func (t *Texture) Shade(sp *engine.Sprite, dx, dy, ring float64) (c RGB, ok bool) {
	switch t.mode {
	case parameter.TextureRing:
		inner := sp.Radius - ring
		if inner > 0 && dx*dx+dy*dy < inner*inner {
			return RGB{}, false
		}
		return RGB{sp.R, sp.G, sp.B}, true
	case parameter.TextureNoise:
		// Offset by id so neighbouring bodies do not share a pattern
		ox := float64(sp.ID%97) * 13.7
		n := t.noise.Noise2D(dx*parameter.NoiseScale+ox, dy*parameter.NoiseScale)
		v := 1 - parameter.NoiseShade*(1-n)/2
		return HueValue(sp.Hue, v), true
	default:
		return RGB{sp.R, sp.G, sp.B}, true
	}
}
