package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chaos-merge/engine"
	"github.com/lixenwraith/chaos-merge/event"
	"github.com/lixenwraith/chaos-merge/parameter"
	"github.com/lixenwraith/chaos-merge/status"
)

func newTestScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func sprite(id engine.BodyID, x, y, r, hue float64) engine.Sprite {
	sp := engine.Sprite{ID: id, X: x, Y: y, Radius: r, Hue: hue}
	sp.R, sp.G, sp.B = engine.HueColor(hue)
	return sp
}

func rowText(screen tcell.SimulationScreen, row, cols int) string {
	var sb strings.Builder
	for x := 0; x < cols; x++ {
		ch, _, _, _ := screen.GetContent(x, row)
		sb.WriteRune(ch)
	}
	return sb.String()
}

func TestArenaForScreen(t *testing.T) {
	w, h := ArenaForScreen(80, 25)
	if w != 640 || h != 384 {
		t.Errorf("Expected 640x384, got %vx%v", w, h)
	}
	w, h = ArenaForScreen(0, 0)
	if w <= 0 || h <= 0 {
		t.Errorf("Expected positive arena for degenerate screen, got %vx%v", w, h)
	}
}

func TestPixelBufferFlush(t *testing.T) {
	screen := newTestScreen(t, 3, 1)
	buf := NewPixelBuffer(3, 1)
	red, blue := RGB{255, 0, 0}, RGB{0, 0, 255}

	buf.Set(0, 0, red)
	buf.Set(0, 1, blue)
	buf.Set(1, 0, red)
	buf.Set(2, 1, blue)
	buf.Set(5, 5, red) // dropped
	buf.Flush(screen, RgbBackground)

	ch, _, style, _ := screen.GetContent(0, 0)
	fg, bg, _ := style.Decompose()
	if ch != upperHalf || fg != RGBToTcell(red) || bg != RGBToTcell(blue) {
		t.Errorf("Expected red over blue half-block, got %q fg %v bg %v", ch, fg, bg)
	}
	ch, _, style, _ = screen.GetContent(1, 0)
	_, bg, _ = style.Decompose()
	if ch != upperHalf || bg != RGBToTcell(RgbBackground) {
		t.Errorf("Expected upper half over background, got %q bg %v", ch, bg)
	}
	ch, _, _, _ = screen.GetContent(2, 0)
	if ch != lowerHalf {
		t.Errorf("Expected lower half, got %q", ch)
	}

	buf.Clear()
	if _, ok := buf.Get(0, 0); ok {
		t.Error("Expected cleared pixel")
	}
}

func TestRenderFilledCircle(t *testing.T) {
	screen := newTestScreen(t, 40, 21)
	reg := status.NewRegistry()
	r := NewTerminalRenderer(screen, parameter.TextureSolid, reg)

	w, h := r.Arena()
	if w != 320 || h != 320 {
		t.Fatalf("Expected 320x320 arena, got %vx%v", w, h)
	}

	sp := sprite(1, 160, 160, 40, 120)
	r.Render(engine.Frame{Sprites: []engine.Sprite{sp}, Population: 1, Tick: 7})

	// Arena center lands on column 20, terminal row 10
	ch, _, style, _ := screen.GetContent(20, 10)
	fg, _, _ := style.Decompose()
	if ch != upperHalf || fg != RGBToTcell(RGB{sp.R, sp.G, sp.B}) {
		t.Errorf("Expected body color at center, got %q fg %v", ch, fg)
	}
	if ch, _, _, _ := screen.GetContent(0, 0); ch != ' ' {
		t.Errorf("Expected empty corner, got %q", ch)
	}

	hud := rowText(screen, 20, 40)
	if !strings.Contains(hud, "pop 1") {
		t.Errorf("Expected HUD with population, got %q", hud)
	}
}

func TestRenderRingLeavesCenterEmpty(t *testing.T) {
	screen := newTestScreen(t, 40, 21)
	r := NewTerminalRenderer(screen, parameter.TextureRing, nil)

	r.Render(engine.Frame{Sprites: []engine.Sprite{sprite(1, 160, 160, 80, 200)}})

	if ch, _, _, _ := screen.GetContent(20, 10); ch != ' ' {
		t.Errorf("Expected hollow center, got %q", ch)
	}
	// Left edge of the ring at x = 80 → column 10
	if ch, _, _, _ := screen.GetContent(10, 10); ch == ' ' {
		t.Error("Expected outline pixel on the ring edge")
	}
}

func TestRenderTinyBodyVisible(t *testing.T) {
	screen := newTestScreen(t, 40, 21)
	r := NewTerminalRenderer(screen, parameter.TextureSolid, nil)

	r.Render(engine.Frame{Sprites: []engine.Sprite{sprite(1, 101, 101, 1, 0)}})
	if ch, _, _, _ := screen.GetContent(12, 6); ch == ' ' {
		t.Error("Expected sub-pixel body to paint its center pixel")
	}
}

func TestNoiseTextureBounded(t *testing.T) {
	tex := NewTexture(parameter.TextureNoise, 3)
	sp := sprite(5, 0, 0, 50, 30)
	base := HueValue(sp.Hue, 1)
	floor := HueValue(sp.Hue, 1-parameter.NoiseShade-0.05)
	for dx := -50.0; dx <= 50; dx += 5 {
		for dy := -50.0; dy <= 50; dy += 5 {
			c, ok := tex.Shade(&sp, dx, dy, 1)
			if !ok {
				t.Fatal("Expected noise texture to paint every pixel")
			}
			if c.R > base.R || c.R < floor.R {
				t.Fatalf("Expected red channel in [%d, %d], got %d", floor.R, base.R, c.R)
			}
		}
	}
}

func TestTextureCycleAndEvents(t *testing.T) {
	screen := newTestScreen(t, 10, 5)
	reg := status.NewRegistry()
	r := NewTerminalRenderer(screen, "bogus", reg)

	if r.Texture() != parameter.TextureSolid {
		t.Errorf("Expected unknown texture to fall back to solid, got %s", r.Texture())
	}

	r.HandleEvent(nil, event.Event{Type: event.EventSetTexture})
	if r.Texture() != parameter.TextureNoise {
		t.Errorf("Expected cycle to noise, got %s", r.Texture())
	}
	r.HandleEvent(nil, event.Event{Type: event.EventSetTexture, Payload: &event.TexturePayload{Mode: parameter.TextureRing}})
	if r.Texture() != parameter.TextureRing {
		t.Errorf("Expected ring, got %s", r.Texture())
	}
	if got := reg.Strings.Get(status.MetricTexture).Load(); got != parameter.TextureRing {
		t.Errorf("Expected texture metric ring, got %s", got)
	}
	r.HandleEvent(nil, event.Event{Type: event.EventSetTexture})
	if r.Texture() != parameter.TextureSolid {
		t.Errorf("Expected cycle to wrap to solid, got %s", r.Texture())
	}
}

func TestScreenToArena(t *testing.T) {
	screen := newTestScreen(t, 40, 21)
	r := NewTerminalRenderer(screen, parameter.TextureSolid, nil)

	x, y := r.ScreenToArena(0, 0)
	if x != 4 || y != 8 {
		t.Errorf("Expected (4, 8), got (%v, %v)", x, y)
	}
	r.SetArena(640, 640)
	x, y = r.ScreenToArena(39, 19)
	if x != 632 || y != 624 {
		t.Errorf("Expected (632, 624), got (%v, %v)", x, y)
	}
}

func TestFormatHUD(t *testing.T) {
	var sb strings.Builder
	f := engine.Frame{Population: 42, Tick: 9, FPS: 59.6}
	got := FormatHUD(&sb, f, 50, 3, 2, 1, "webgl", "noise", true, true)
	for _, want := range []string{"webgl", "pop 42", "peak 50", "tick 9", "fps 60", "merges 3", "noise", parameter.AttractorStr, parameter.MutedStr} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected HUD to contain %q, got %q", want, got)
		}
	}
}
