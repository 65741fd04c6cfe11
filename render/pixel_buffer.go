package render

import (
	"github.com/gdamore/tcell/v2"
)

const (
	upperHalf = '▀'
	lowerHalf = '▄'
)

// PixelBuffer is a framebuffer of half-block pixels, two per terminal row
type PixelBuffer struct {
	pixels []RGB
	set    []bool
	width  int // pixels per row == terminal columns
	height int // pixel rows == 2 * terminal rows
}

// NewPixelBuffer creates a buffer for cols x rows terminal cells
func NewPixelBuffer(cols, rows int) *PixelBuffer {
	b := &PixelBuffer{}
	b.Resize(cols, rows)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *PixelBuffer) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	size := cols * rows * 2
	if cap(b.pixels) < size {
		b.pixels = make([]RGB, size)
		b.set = make([]bool, size)
	} else {
		b.pixels = b.pixels[:size]
		b.set = b.set[:size]
	}
	b.width = cols
	b.height = rows * 2
	b.Clear()
}

// Bounds returns the pixel dimensions
func (b *PixelBuffer) Bounds() (width, height int) {
	return b.width, b.height
}

// Clear unsets every pixel
func (b *PixelBuffer) Clear() {
	clear(b.set)
}

// Set paints one pixel, out of range writes are dropped
func (b *PixelBuffer) Set(x, y int, c RGB) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := y*b.width + x
	b.pixels[i] = c
	b.set[i] = true
}

// Get returns a pixel and whether it was painted this frame
func (b *PixelBuffer) Get(x, y int) (RGB, bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return RGB{}, false
	}
	i := y*b.width + x
	return b.pixels[i], b.set[i]
}

// Flush writes every cell to the screen, pairing pixel rows into half-blocks
func (b *PixelBuffer) Flush(screen tcell.Screen, bg RGB) {
	bgColor := RGBToTcell(bg)
	empty := tcell.StyleDefault.Background(bgColor)
	for row := 0; row < b.height/2; row++ {
		top := 2 * row * b.width
		bottom := top + b.width
		for x := 0; x < b.width; x++ {
			ts, bs := b.set[top+x], b.set[bottom+x]
			switch {
			case ts && bs:
				style := tcell.StyleDefault.
					Foreground(RGBToTcell(b.pixels[top+x])).
					Background(RGBToTcell(b.pixels[bottom+x]))
				screen.SetContent(x, row, upperHalf, nil, style)
			case ts:
				style := empty.Foreground(RGBToTcell(b.pixels[top+x]))
				screen.SetContent(x, row, upperHalf, nil, style)
			case bs:
				style := empty.Foreground(RGBToTcell(b.pixels[bottom+x]))
				screen.SetContent(x, row, lowerHalf, nil, style)
			default:
				screen.SetContent(x, row, ' ', nil, empty)
			}
		}
	}
}
