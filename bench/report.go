package bench

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Padding(0, 1)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// Report renders per-run rows and the summary as styled tables
func Report(variant string, results []Result, s Summary) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("chaos-merge bench: %s, %d runs", variant, len(results))))
	sb.WriteString("\n")

	failed := make(map[int]bool)
	runs := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		Headers("seed", "ticks", "pop", "peak", "merges", "splits", "bursts", "culled", "ns/step").
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case failed[row]:
				return errStyle
			default:
				return cellStyle
			}
		})
	for i, r := range results {
		if r.Err != nil {
			failed[i] = true
			runs.Row(fmt.Sprint(r.Seed), fmt.Sprint(r.Ticks), "error", r.Err.Error(), "", "", "", "", "")
			continue
		}
		runs.Row(
			fmt.Sprint(r.Seed),
			fmt.Sprint(r.Ticks),
			fmt.Sprint(r.Population),
			fmt.Sprint(r.Peak),
			fmt.Sprint(r.Merges),
			fmt.Sprint(r.Splits),
			fmt.Sprint(r.Explosions),
			fmt.Sprint(r.Culled),
			fmt.Sprintf("%.0f", r.NsPerStep),
		)
	}
	sb.WriteString(runs.String())
	sb.WriteString("\n")

	summary := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		Headers("metric", "mean", "stddev", "min", "max").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, m := range []struct {
		name string
		st   Stat
	}{
		{"population", s.Population},
		{"peak", s.Peak},
		{"merges", s.Merges},
		{"splits", s.Splits},
		{"explosions", s.Explosions},
		{"ns/step", s.NsPerStep},
	} {
		summary.Row(m.name,
			fmt.Sprintf("%.1f", m.st.Mean),
			fmt.Sprintf("%.1f", m.st.StdDev),
			fmt.Sprintf("%.0f", m.st.Min),
			fmt.Sprintf("%.0f", m.st.Max))
	}
	sb.WriteString(summary.String())
	if s.Failed > 0 {
		sb.WriteString("\n")
		sb.WriteString(errStyle.Render(fmt.Sprintf("%d runs failed", s.Failed)))
	}
	sb.WriteString("\n")
	return sb.String()
}
