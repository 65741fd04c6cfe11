package bench

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lixenwraith/chaos-merge/record"
)

// ReplayStats summarizes a recorded stream
type ReplayStats struct {
	Header    record.Header
	Frames    int
	FirstTick uint64
	LastTick  uint64
	Peak      int
	MeanPop   float64
	MaxRadius float64
	FinalPop  int
	TickGaps  int // frames whose tick does not follow the previous one
}

// Replay reads every frame of r and summarizes it
func Replay(r *record.Reader) (ReplayStats, error) {
	st := ReplayStats{Header: r.Header()}
	var popSum float64
	for {
		f, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return st, err
		}
		if st.Frames == 0 {
			st.FirstTick = f.Tick
		} else if f.Tick != st.LastTick+1 {
			st.TickGaps++
		}
		st.Frames++
		st.LastTick = f.Tick
		st.FinalPop = f.Population
		st.Peak = max(st.Peak, f.Population)
		popSum += float64(f.Population)
		for _, sp := range f.Sprites {
			st.MaxRadius = max(st.MaxRadius, sp.Radius)
		}
	}
	if st.Frames > 0 {
		st.MeanPop = popSum / float64(st.Frames)
	}
	return st, nil
}

// ReportReplay renders replay statistics
func ReportReplay(st ReplayStats) string {
	var sb strings.Builder
	h := st.Header
	sb.WriteString(titleStyle.Render(fmt.Sprintf("session %s", h.Session)))
	sb.WriteString("\n")
	line := func(k, v string) {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("%-12s", k)))
		sb.WriteString(cellStyle.Render(v))
		sb.WriteString("\n")
	}
	line("variant", h.Variant)
	line("arena", fmt.Sprintf("%.0fx%.0f", h.Width, h.Height))
	line("seed", fmt.Sprint(h.Seed))
	line("created", h.Created.Format("2006-01-02 15:04:05"))
	line("frames", fmt.Sprint(st.Frames))
	line("ticks", fmt.Sprintf("%d..%d", st.FirstTick, st.LastTick))
	line("population", fmt.Sprintf("final %d, peak %d, mean %.1f", st.FinalPop, st.Peak, st.MeanPop))
	line("max radius", fmt.Sprintf("%.1f", st.MaxRadius))
	if st.TickGaps > 0 {
		sb.WriteString(errStyle.Render(fmt.Sprintf("%d tick gaps", st.TickGaps)))
		sb.WriteString("\n")
	}
	return sb.String()
}
