package render

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chaos-merge/engine"
	"github.com/lixenwraith/chaos-merge/event"
	"github.com/lixenwraith/chaos-merge/parameter"
	"github.com/lixenwraith/chaos-merge/status"
)

// ArenaForScreen returns the arena size that maps one pixel to PixelsPerCell units
// The bottom HUDHeight rows are reserved for the status line
func ArenaForScreen(cols, rows int) (width, height float64) {
	rows -= parameter.HUDHeight
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return float64(cols) * parameter.PixelsPerCellX, float64(rows*2) * parameter.PixelsPerCellY
}

// TerminalRenderer draws simulation frames with half-block pixels and a status line
// Render and HandleEvent must be called from the frame loop goroutine
type TerminalRenderer struct {
	screen  tcell.Screen
	buf     *PixelBuffer
	texture *Texture

	cols, rows int
	arenaW     atomic.Uint64 // float64 bits, read by the input goroutine
	arenaH     atomic.Uint64

	statMuted     *atomic.Bool
	statAttractor *atomic.Bool
	statPeak      *atomic.Int64
	statMerges    *atomic.Int64
	statSplits    *atomic.Int64
	statExplode   *atomic.Int64
	statVariant   *status.Label
	statTexture   *status.Label

	hud strings.Builder
}

// NewTerminalRenderer creates a renderer over screen; reg may be nil
func NewTerminalRenderer(screen tcell.Screen, texture string, reg *status.Registry) *TerminalRenderer {
	if reg == nil {
		reg = status.NewRegistry()
	}
	r := &TerminalRenderer{
		screen:        screen,
		buf:           NewPixelBuffer(0, 0),
		texture:       NewTexture(texture, 1),
		statMuted:     reg.Bools.Get(status.MetricMuted),
		statAttractor: reg.Bools.Get(status.MetricAttractor),
		statPeak:      reg.Ints.Get(status.MetricPeak),
		statMerges:    reg.Ints.Get(status.MetricMerges),
		statSplits:    reg.Ints.Get(status.MetricSplits),
		statExplode:   reg.Ints.Get(status.MetricExplosions),
		statVariant:   reg.Strings.Get(status.MetricVariant),
		statTexture:   reg.Strings.Get(status.MetricTexture),
	}
	r.statTexture.Store(r.texture.Mode())
	r.syncSize()
	return r
}

// syncSize picks up terminal resizes, returns true if the size changed
func (r *TerminalRenderer) syncSize() bool {
	cols, rows := r.screen.Size()
	if cols == r.cols && rows == r.rows {
		return false
	}
	r.cols, r.rows = cols, rows
	r.buf.Resize(cols, max(rows-parameter.HUDHeight, 0))
	if r.arenaW.Load() == 0 {
		r.SetArena(ArenaForScreen(cols, rows))
	}
	return true
}

// SetArena sets the arena size mapped onto the pixel grid
func (r *TerminalRenderer) SetArena(width, height float64) {
	r.arenaW.Store(math.Float64bits(width))
	r.arenaH.Store(math.Float64bits(height))
}

// Arena returns the arena size mapped onto the pixel grid
func (r *TerminalRenderer) Arena() (width, height float64) {
	return math.Float64frombits(r.arenaW.Load()), math.Float64frombits(r.arenaH.Load())
}

// scale returns arena units per pixel on each axis
func (r *TerminalRenderer) scale() (sx, sy float64) {
	w, h := r.Arena()
	pw, ph := r.buf.Bounds()
	if pw == 0 || ph == 0 {
		return parameter.PixelsPerCellX, parameter.PixelsPerCellY
	}
	return w / float64(pw), h / float64(ph)
}

// ScreenToArena maps a terminal cell to the arena point at its center
func (r *TerminalRenderer) ScreenToArena(col, row int) (x, y float64) {
	w, h := r.Arena()
	cols := max(r.cols, 1)
	rows := max(r.rows-parameter.HUDHeight, 1)
	return (float64(col) + 0.5) * w / float64(cols), (float64(row) + 0.5) * h / float64(rows)
}

// Texture returns the active texture mode
func (r *TerminalRenderer) Texture() string {
	return r.texture.Mode()
}

// Render draws one frame and shows it
func (r *TerminalRenderer) Render(f engine.Frame) {
	r.syncSize()
	r.buf.Clear()
	sx, sy := r.scale()
	for i := range f.Sprites {
		r.drawSprite(&f.Sprites[i], sx, sy)
	}
	r.buf.Flush(r.screen, RgbBackground)
	r.drawHUD(f)
	r.screen.Show()
}

// drawSprite rasterizes a filled circle by testing pixel centers
// Bodies smaller than a pixel still paint their center pixel
func (r *TerminalRenderer) drawSprite(sp *engine.Sprite, sx, sy float64) {
	rad := sp.Radius
	x0 := int(math.Floor((sp.X - rad) / sx))
	x1 := int(math.Floor((sp.X + rad) / sx))
	y0 := int(math.Floor((sp.Y - rad) / sy))
	y1 := int(math.Floor((sp.Y + rad) / sy))
	ring := 1.5 * math.Max(sx, sy)

	painted := false
	r2 := rad * rad
	for py := y0; py <= y1; py++ {
		dy := (float64(py)+0.5)*sy - sp.Y
		for px := x0; px <= x1; px++ {
			dx := (float64(px)+0.5)*sx - sp.X
			if dx*dx+dy*dy > r2 {
				continue
			}
			if c, ok := r.texture.Shade(sp, dx, dy, ring); ok {
				r.buf.Set(px, py, c)
				painted = true
			}
		}
	}
	if !painted {
		r.buf.Set(int(sp.X/sx), int(sp.Y/sy), RGB{sp.R, sp.G, sp.B})
	}
}

// FormatHUD builds the status line text
func FormatHUD(sb *strings.Builder, f engine.Frame, peak, merges, splits, explosions int64, variant, texture string, attractor, muted bool) string {
	sb.Reset()
	fmt.Fprintf(sb, " %s  pop %d  peak %d  tick %d  fps %.0f  merges %d  splits %d  bursts %d  %s",
		variant, f.Population, peak, f.Tick, f.FPS, merges, splits, explosions, texture)
	if attractor {
		sb.WriteString("  " + parameter.AttractorStr)
	}
	if muted {
		sb.WriteString("  " + parameter.MutedStr)
	} else {
		sb.WriteString("  " + parameter.AudioStr)
	}
	return sb.String()
}

func (r *TerminalRenderer) drawHUD(f engine.Frame) {
	if r.rows < parameter.HUDHeight {
		return
	}
	text := FormatHUD(&r.hud, f,
		r.statPeak.Load(), r.statMerges.Load(), r.statSplits.Load(), r.statExplode.Load(),
		r.statVariant.Load(), r.texture.Mode(), r.statAttractor.Load(), r.statMuted.Load())

	row := r.rows - parameter.HUDHeight
	style := tcell.StyleDefault.Foreground(RGBToTcell(RgbHUD)).Background(tcell.ColorBlack)
	col := 0
	for _, ch := range text {
		if col >= r.cols {
			break
		}
		r.screen.SetContent(col, row, ch, nil, style)
		col++
	}
	for ; col < r.cols; col++ {
		r.screen.SetContent(col, row, ' ', nil, style)
	}
}

// HandleEvent implements event.Handler for texture selection
// An empty mode cycles to the next texture, unknown names are ignored
func (r *TerminalRenderer) HandleEvent(_ *engine.Simulation, ev event.Event) {
	if ev.Type != event.EventSetTexture {
		return
	}
	p, _ := ev.Payload.(*event.TexturePayload)
	if p == nil || p.Mode == "" {
		r.texture.Cycle()
	} else {
		r.texture.SetMode(p.Mode)
	}
	r.statTexture.Store(r.texture.Mode())
}

// EventTypes implements event.Handler
func (r *TerminalRenderer) EventTypes() []event.EventType {
	return []event.EventType{event.EventSetTexture}
}
