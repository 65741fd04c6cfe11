package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/lixenwraith/chaos-merge/bench"
	"github.com/lixenwraith/chaos-merge/config"
	"github.com/lixenwraith/chaos-merge/core"
	"github.com/lixenwraith/chaos-merge/engine"
	"github.com/lixenwraith/chaos-merge/record"
)

var (
	variantFlag  = flag.String("variant", "", "Physics preset: canvas, webgl, elastic")
	configFlag   = flag.String("config", "", "TOML config file")
	seedFlag     = flag.Uint64("seed", 1, "Seed of the first run, run i uses seed+i")
	seedsFlag    = flag.Int("seeds", 8, "Number of independent runs")
	ticksFlag    = flag.Int("ticks", 2000, "Steps per run")
	parallelFlag = flag.Int("parallel", runtime.NumCPU(), "Concurrent runs")
	recordFlag   = flag.String("record", "", "Record the first run to a msgpack file")
	replayFlag   = flag.String("replay", "", "Summarize a recording instead of running")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/chaos.log")
)

func main() {
	flag.Parse()
	if logFile := core.SetupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	var err error
	if *replayFlag != "" {
		err = replay(*replayFlag)
	} else {
		err = runBench()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "chaos-bench: %v\n", err)
		os.Exit(1)
	}
}

func runBench() error {
	cfg, err := config.Load(config.Options{Variant: *variantFlag, Path: *configFlag})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := bench.Options{
		Physics:  cfg.Physics,
		Seeds:    *seedsFlag,
		BaseSeed: *seedFlag,
		Ticks:    *ticksFlag,
		Parallel: *parallelFlag,
	}

	var (
		writer *record.Writer
		werr   error
	)
	if *recordFlag != "" {
		f, err := os.Create(*recordFlag)
		if err != nil {
			return err
		}
		defer f.Close()
		writer, err = record.NewWriter(f, record.Header{
			Variant: cfg.Variant,
			Width:   cfg.Physics.Width,
			Height:  cfg.Physics.Height,
			Seed:    *seedFlag,
		})
		if err != nil {
			return err
		}
		opts.Record = func(fr engine.Frame) {
			if werr == nil {
				werr = writer.WriteFrame(fr)
			}
		}
	}

	log.Printf("bench %s: %d runs x %d ticks, parallel %d", cfg.Variant, opts.Seeds, opts.Ticks, opts.Parallel)
	results, err := bench.Run(ctx, opts)
	if results != nil {
		fmt.Print(bench.Report(cfg.Variant, results, bench.Summarize(results)))
	}
	if err != nil {
		return err
	}

	if writer != nil {
		if werr != nil {
			return werr
		}
		if err := writer.Flush(); err != nil {
			return err
		}
		fmt.Printf("recorded %d frames of session %s to %s\n", writer.Frames(), writer.Header().Session, *recordFlag)
	}
	return nil
}

func replay(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r, err := record.NewReader(f)
	if err != nil {
		return err
	}
	st, err := bench.Replay(r)
	if err != nil {
		return err
	}
	fmt.Print(bench.ReportReplay(st))
	return nil
}
