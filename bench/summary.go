package bench

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stat summarizes one metric across runs
type Stat struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summary aggregates successful runs
type Summary struct {
	Runs       int
	Failed     int
	Population Stat
	Peak       Stat
	Merges     Stat
	Splits     Stat
	Explosions Stat
	NsPerStep  Stat
}

// Summarize computes per-metric statistics over runs without an error
func Summarize(results []Result) Summary {
	var s Summary
	var pop, peak, merges, splits, explosions, ns []float64
	for _, r := range results {
		if r.Err != nil {
			s.Failed++
			continue
		}
		s.Runs++
		pop = append(pop, float64(r.Population))
		peak = append(peak, float64(r.Peak))
		merges = append(merges, float64(r.Merges))
		splits = append(splits, float64(r.Splits))
		explosions = append(explosions, float64(r.Explosions))
		ns = append(ns, r.NsPerStep)
	}
	s.Population = describe(pop)
	s.Peak = describe(peak)
	s.Merges = describe(merges)
	s.Splits = describe(splits)
	s.Explosions = describe(explosions)
	s.NsPerStep = describe(ns)
	return s
}

func describe(x []float64) Stat {
	if len(x) == 0 {
		return Stat{}
	}
	mean, std := stat.MeanStdDev(x, nil)
	// Sample deviation is undefined for a single run
	if math.IsNaN(std) {
		std = 0
	}
	return Stat{Mean: mean, StdDev: std, Min: floats.Min(x), Max: floats.Max(x)}
}
