package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/chaos-merge/audio"
	"github.com/lixenwraith/chaos-merge/config"
	"github.com/lixenwraith/chaos-merge/core"
	"github.com/lixenwraith/chaos-merge/engine"
	"github.com/lixenwraith/chaos-merge/event"
	"github.com/lixenwraith/chaos-merge/gui"
	"github.com/lixenwraith/chaos-merge/manifest"
	"github.com/lixenwraith/chaos-merge/record"
	"github.com/lixenwraith/chaos-merge/service"
	"github.com/lixenwraith/chaos-merge/status"
)

var (
	variantFlag = flag.String("variant", "", "Physics preset: canvas, webgl, elastic")
	configFlag  = flag.String("config", "", "TOML config file")
	seedFlag    = flag.Uint64("seed", 0, "Random seed, wall clock when unset")
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/chaos.log")
	muteFlag    = flag.Bool("mute", false, "Start with sound muted")
	textureFlag = flag.String("texture", "solid", "Body texture: solid, noise, ring")
	recordFlag  = flag.String("record", "", "Record frames to a msgpack file")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "chaos-window: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if logFile := core.SetupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Load(config.Options{Variant: *variantFlag, Path: *configFlag})
	if err != nil {
		return err
	}
	seed := cfg.EffectiveSeed(*seedFlag, flagSet("seed"))
	physics := cfg.Physics

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

	runner := engine.NewRunner(sim, commands, engine.NewSystemClock(), reg)
	runner.RegisterEventHandler(service.MustGet[*audio.AudioService](hub, "audio").Manager())
	if *debugFlag {
		runner.ObserveEvents(engine.TraceEvent)
	}

	game := gui.NewGame(runner, commands, *textureFlag, reg)
	recorder := service.MustGet[*record.Service](hub, "recorder")
	game.OnFrame(recorder.Record)

	ebiten.SetWindowTitle("chaos-merge: " + cfg.Variant)
	ebiten.SetWindowSize(int(physics.Width), int(physics.Height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.DefaultTPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
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
