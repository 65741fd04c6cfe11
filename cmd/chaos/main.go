package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chaos-merge/audio"
	"github.com/lixenwraith/chaos-merge/config"
	"github.com/lixenwraith/chaos-merge/core"
	"github.com/lixenwraith/chaos-merge/engine"
	"github.com/lixenwraith/chaos-merge/event"
	"github.com/lixenwraith/chaos-merge/input"
	"github.com/lixenwraith/chaos-merge/manifest"
	"github.com/lixenwraith/chaos-merge/record"
	"github.com/lixenwraith/chaos-merge/render"
	"github.com/lixenwraith/chaos-merge/service"
	"github.com/lixenwraith/chaos-merge/status"
)

var (
	variantFlag = flag.String("variant", "", "Physics preset: canvas, webgl, elastic")
	configFlag  = flag.String("config", "", "TOML config file")
	seedFlag    = flag.Uint64("seed", 0, "Random seed, wall clock when unset")
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/chaos.log")
	colorFlag   = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	muteFlag    = flag.Bool("mute", false, "Start with sound muted")
	textureFlag = flag.String("texture", "solid", "Body texture: solid, noise, ring")
	keysFlag    = flag.String("keys", "", "TOML keymap overrides")
	recordFlag  = flag.String("record", "", "Record frames to a msgpack file")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "chaos: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if logFile := core.SetupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(config.Options{Variant: *variantFlag, Path: *configFlag})
	if err != nil {
		return err
	}
	seed := cfg.EffectiveSeed(*seedFlag, flagSet("seed"))

	keymap, err := loadKeymap(*keysFlag)
	if err != nil {
		return err
	}

	applyColorMode(*colorFlag)
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	// Terminal must be restored before a crash report is printed
	core.SetCrashReset(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cols, rows := screen.Size()
	physics := cfg.Physics
	physics.Width, physics.Height = render.ArenaForScreen(cols, rows)

	manifest.RegisterServices()
	hub, err := manifest.BuildHub(manifest.ActiveServices())
	if err != nil {
		return err
	}
	reg := service.MustGet[*status.Service](hub, "status").Registry()
	err = hub.InitAll(map[string][]any{
		"status": {cfg.Variant},
		"audio":  {*muteFlag, reg},
		"recorder": {*recordFlag, reg, record.Header{
			Variant: cfg.Variant,
			Width:   physics.Width,
			Height:  physics.Height,
			Seed:    seed,
		}},
	})
	if err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer func() {
		if err := hub.StopAll(); err != nil {
			log.Printf("service shutdown: %v", err)
		}
	}()

	commands := event.NewQueue()
	sim, err := engine.NewSimulation(physics, engine.WithSeed(seed))
	if err != nil {
		return err
	}
	log.Printf("variant %s seed %d arena %.0fx%.0f", cfg.Variant, seed, physics.Width, physics.Height)

	renderer := render.NewTerminalRenderer(screen, *textureFlag, reg)
	renderer.SetArena(physics.Width, physics.Height)

	recorder := service.MustGet[*record.Service](hub, "recorder")
	sound := service.MustGet[*audio.AudioService](hub, "audio")

	runner := engine.NewRunner(sim, commands, engine.NewSystemClock(), reg)
	runner.RegisterEventHandler(renderer)
	runner.RegisterEventHandler(sound.Manager())
	if *debugFlag {
		runner.ObserveEvents(engine.TraceEvent)
	}
	runner.OnFrame(func(f engine.Frame) {
		renderer.Render(f)
		recorder.Record(f)
	})

	translator := input.NewTranslator(commands, renderer)
	translator.Machine().KeyTable().Merge(keymap)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Input polling owns the terminal event stream; it only talks to the sim through commands
	core.Go(func() {
		defer cancel()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			if !translator.Handle(ev) {
				return
			}
		}
	})

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	c := sim.Counters()
	log.Printf("exit after %d frames: peak %d merges %d splits %d explosions %d culled %d",
		runner.Frames(), c.Peak, c.Merges, c.Splits, c.Explosions, c.Culled)
	for _, e := range reg.Snapshot() {
		log.Printf("  %s = %s", e.Key, e.Value)
	}
	return nil
}

// flagSet reports whether a flag was given on the command line
func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// loadKeymap reads optional keymap overrides
func loadKeymap(path string) (*input.KeyTable, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}
	return input.LoadKeyConfig(data)
}

// applyColorMode steers tcell's color detection through its environment switches
func applyColorMode(mode string) {
	switch mode {
	case "truecolor", "true", "24bit":
		os.Setenv("COLORTERM", "truecolor")
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}
}
