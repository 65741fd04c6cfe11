package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RgbBackground is the arena background (Tokyo Night)
var RgbBackground = RGB{26, 27, 38}

// RgbHUD is the status line foreground
var RgbHUD = RGB{169, 177, 214}

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// HueValue returns a fully saturated color at the given hue and value
// value is clamped to [0, 1]
func HueValue(hue, value float64) RGB {
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}
	r, g, b := colorful.Hsv(hue, 1, value).Clamped().RGB255()
	return RGB{r, g, b}
}
