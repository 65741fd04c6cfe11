// Package gui is the windowed surface: ebiten drawing and mouse/keyboard input
package gui

import (
	"image/color"
	"strings"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/chaos-merge/engine"
	"github.com/lixenwraith/chaos-merge/event"
	"github.com/lixenwraith/chaos-merge/parameter"
	"github.com/lixenwraith/chaos-merge/render"
	"github.com/lixenwraith/chaos-merge/status"
)

var (
	colorBackground = color.RGBA{26, 27, 38, 255}
	colorHUD        = color.RGBA{169, 177, 214, 255}
	colorAttractor  = color.RGBA{255, 255, 255, 160}
)

// Game implements ebiten.Game over a Runner
// Update and Draw run on the ebiten game goroutine, which also owns the simulation
type Game struct {
	runner   *engine.Runner
	commands *event.Queue
	texture  *render.Texture

	frame         engine.Frame
	width, height int
	hooks         []func(engine.Frame)

	lastX, lastY int
	rightHeld    bool
	keys         []ebiten.Key

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

// NewGame wires a game to runner; reg may be nil
func NewGame(runner *engine.Runner, commands *event.Queue, texture string, reg *status.Registry) *Game {
	if reg == nil {
		reg = status.NewRegistry()
	}
	g := &Game{
		runner:        runner,
		commands:      commands,
		texture:       render.NewTexture(texture, 1),
		statMuted:     reg.Bools.Get(status.MetricMuted),
		statAttractor: reg.Bools.Get(status.MetricAttractor),
		statPeak:      reg.Ints.Get(status.MetricPeak),
		statMerges:    reg.Ints.Get(status.MetricMerges),
		statSplits:    reg.Ints.Get(status.MetricSplits),
		statExplode:   reg.Ints.Get(status.MetricExplosions),
		statVariant:   reg.Strings.Get(status.MetricVariant),
		statTexture:   reg.Strings.Get(status.MetricTexture),
	}
	g.statTexture.Store(g.texture.Mode())
	if runner != nil {
		runner.RegisterEventHandler(g)
		runner.OnFrame(g.onFrame)
	}
	return g
}

func (g *Game) onFrame(f engine.Frame) {
	g.frame = f
	for _, fn := range g.hooks {
		fn(f)
	}
}

// OnFrame adds a callback run after each stepped frame, on the game goroutine
func (g *Game) OnFrame(fn func(engine.Frame)) {
	g.hooks = append(g.hooks, fn)
}

// Texture returns the active texture mode
func (g *Game) Texture() string {
	return g.texture.Mode()
}

// Update implements ebiten.Game
func (g *Game) Update() error {
	in := pollInput(g.keys)
	g.keys = in.JustPressed
	if !g.apply(in) {
		return ebiten.Termination
	}
	g.runner.RunFrame()
	return nil
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	for i := range g.frame.Sprites {
		g.drawSprite(screen, &g.frame.Sprites[i])
	}
	if a := g.runner.Simulation().AttractorState(); a.Active {
		vector.StrokeCircle(screen, float32(a.X), float32(a.Y), 6, 2, colorAttractor, true)
	}
	hud := render.FormatHUD(&g.hud, g.frame,
		g.statPeak.Load(), g.statMerges.Load(), g.statSplits.Load(), g.statExplode.Load(),
		g.statVariant.Load(), g.texture.Mode(), g.statAttractor.Load(), g.statMuted.Load())
	text.Draw(screen, hud, basicfont.Face7x13, 4, g.height-6, colorHUD)
}

func (g *Game) drawSprite(screen *ebiten.Image, sp *engine.Sprite) {
	cx, cy, r := float32(sp.X), float32(sp.Y), float32(sp.Radius)
	fill := sp.RGBA()
	switch g.texture.Mode() {
	case parameter.TextureRing:
		vector.StrokeCircle(screen, cx, cy, r, 2, fill, true)
	case parameter.TextureNoise:
		vector.DrawFilledCircle(screen, cx, cy, r, fill, true)
		c := render.HueValue(sp.Hue, 1-parameter.NoiseShade)
		vector.DrawFilledCircle(screen, cx, cy, r*0.6, color.RGBA{c.R, c.G, c.B, 255}, true)
	default:
		vector.DrawFilledCircle(screen, cx, cy, r, fill, true)
	}
}

// Layout implements ebiten.Game, a window resize becomes an arena resize
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.push(event.EventResize, &event.ResizePayload{
			Width:  float64(outsideWidth),
			Height: float64(outsideHeight),
		})
	}
	return outsideWidth, outsideHeight
}

// HandleEvent implements event.Handler for texture selection
func (g *Game) HandleEvent(_ *engine.Simulation, ev event.Event) {
	if ev.Type != event.EventSetTexture {
		return
	}
	p, _ := ev.Payload.(*event.TexturePayload)
	if p == nil || p.Mode == "" {
		g.texture.Cycle()
	} else {
		g.texture.SetMode(p.Mode)
	}
	g.statTexture.Store(g.texture.Mode())
}

// EventTypes implements event.Handler
func (g *Game) EventTypes() []event.EventType {
	return []event.EventType{event.EventSetTexture}
}
