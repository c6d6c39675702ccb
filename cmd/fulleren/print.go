package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/stat"

	"github.com/dgrzelec/fulleren/anneal"
	"github.com/dgrzelec/fulleren/cluster"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(18)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

// printRunSummary renders the energy trace chart and the final statistics of
// one annealing run.
func printRunSummary(w io.Writer, c *cluster.Cluster, res anneal.Result) {
	var b strings.Builder
	b.WriteString(headerStyle.Render("annealing finished") + "\n")

	if len(res.Trace) > 1 {
		series := make([]float64, len(res.Trace))
		for i, s := range res.Trace {
			series[i] = s.Energy
		}
		chart := asciigraph.Plot(series,
			asciigraph.Height(10),
			asciigraph.Width(64),
			asciigraph.Caption("total energy"))
		b.WriteString(graphStyle.Render(chart) + "\n")
	}

	n := float64(c.Len())
	row(&b, "atoms", "%d", c.Len())
	row(&b, "final energy", "%.5f", res.FinalEnergy)
	row(&b, "energy per atom", "%.5f", res.FinalEnergy/n)
	row(&b, "mean radius", "%.5f", res.FinalMeanRadius)
	row(&b, "local accept", "%.3f", acceptRatio(res.LocalAccepted, res.LocalRejected))
	row(&b, "global accept", "%.3f", acceptRatio(res.GlobalAccepted, res.GlobalRejected))
	if tail := tailEnergies(res.Trace); len(tail) > 1 {
		row(&b, "tail mean energy", "%.5f", stat.Mean(tail, nil))
		row(&b, "tail energy sd", "%.5f", stat.StdDev(tail, nil))
	}
	fmt.Fprint(w, b.String())
}

// printSweepTable renders the cluster-size sweep as a two-column table.
func printSweepTable(w io.Writer, sizes []int, perAtomE []float64) {
	var b strings.Builder
	b.WriteString(headerStyle.Render("size sweep") + "\n")
	b.WriteString(labelStyle.Render("N") + valueStyle.Render("E/N") + "\n")
	for i, n := range sizes {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%d", n)) +
			valueStyle.Render(fmt.Sprintf("%.5f", perAtomE[i])) + "\n")
	}
	fmt.Fprint(w, b.String())
}

// row appends one aligned label/value line.
func row(b *strings.Builder, label, format string, v any) {
	b.WriteString(labelStyle.Render(label) + valueStyle.Render(fmt.Sprintf(format, v)) + "\n")
}

// acceptRatio folds accept/reject counters into an acceptance fraction.
func acceptRatio(accepted, rejected int) float64 {
	total := accepted + rejected
	if total == 0 {
		return 0
	}
	return float64(accepted) / float64(total)
}

// tailEnergies returns the energies of the last tenth of the trace, where
// the walk is coldest and the statistics say the most about the minimum.
func tailEnergies(trace []anneal.Sample) []float64 {
	if len(trace) < 2 {
		return nil
	}
	start := len(trace) - len(trace)/10
	if start >= len(trace) {
		start = len(trace) - 2
	}
	tail := make([]float64, 0, len(trace)-start)
	for _, s := range trace[start:] {
		tail = append(tail, s.Energy)
	}
	return tail
}
