package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// FieldChart renders a field snapshot as a terminal plot. The x slice is
// used only for axis labels; data wider than the plot is resampled.
func FieldChart(x, field []float64, caption string) string {
	if len(field) == 0 {
		return ""
	}
	chart := asciigraph.Plot(resample(field, plotWidth),
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption))
	var s strings.Builder
	s.WriteString(chart)
	if len(x) > 1 {
		s.WriteString(fmt.Sprintf("\nx: %.3g .. %.3g", x[0], x[len(x)-1]))
	}
	return s.String()
}

// EnergyChart renders the per-step energy log.
func EnergyChart(energy []float64) string {
	if len(energy) < 2 {
		return ""
	}
	return asciigraph.Plot(resample(energy, plotWidth),
		asciigraph.Height(energyHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("Total energy"))
}
