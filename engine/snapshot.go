package engine

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Sprite is the draw record of one body
type Sprite struct {
	ID     BodyID  `msgpack:"id"`
	X      float64 `msgpack:"x"`
	Y      float64 `msgpack:"y"`
	Radius float64 `msgpack:"r"`
	Hue    float64 `msgpack:"h"`
	R      uint8   `msgpack:"cr"`
	G      uint8   `msgpack:"cg"`
	B      uint8   `msgpack:"cb"`
}

// RGBA returns the sprite color as an opaque image/color value
func (sp Sprite) RGBA() color.RGBA {
	return color.RGBA{R: sp.R, G: sp.G, B: sp.B, A: 0xff}
}

// HueColor converts a hue in degrees to a fully saturated, full value color
func HueColor(hue float64) (r, g, b uint8) {
	return colorful.Hsv(hue, 1, 1).Clamped().RGB255()
}

// Snapshot returns a fresh draw list of every live body
// Never mutates simulation state
func (s *Simulation) Snapshot() []Sprite {
	return s.SnapshotInto(make([]Sprite, 0, s.bodies.Live()))
}

// SnapshotInto appends the draw list to dst[:0] and returns it
func (s *Simulation) SnapshotInto(dst []Sprite) []Sprite {
	dst = dst[:0]
	b := s.bodies
	for i := 0; i < b.Len(); i++ {
		if b.dead[i] {
			continue
		}
		sp := Sprite{
			ID:     b.ids[i],
			X:      b.x[i],
			Y:      b.y[i],
			Radius: b.r[i],
			Hue:    b.hue[i],
		}
		sp.R, sp.G, sp.B = HueColor(sp.Hue)
		dst = append(dst, sp)
	}
	return dst
}
