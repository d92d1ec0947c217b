// Package diagram renders shear and moment diagrams for a beam span,
// both as terminal ASCII plots and as exported image files.
package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// BeamDiagramData holds the series produced by the structural analysis
// step. The three slices are parallel and of equal length.
type BeamDiagramData struct {
	X      []float64 // stations along the span (ft)
	Shear  []float64 // kip
	Moment []float64 // kip-ft

	SpanLength   float64 // ft
	FactoredLoad float64 // kip/ft
}

// DrawASCIIShearDiagram plots the shear envelope across the span.
func DrawASCIIShearDiagram(data BeamDiagramData) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  SHEAR DIAGRAM (kip)\n")
	sb.WriteString("  ───────────────────\n")
	graph := asciigraph.Plot(data.Shear,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Offset(4),
		asciigraph.Caption(fmt.Sprintf("x = 0 to %.1f ft", data.SpanLength)),
	)
	sb.WriteString(graph)
	sb.WriteString("\n")
	if len(data.Shear) > 0 {
		sb.WriteString(fmt.Sprintf("\n  V = +%.2f kip at left support, %.2f kip at right support\n",
			data.Shear[0], data.Shear[len(data.Shear)-1]))
	}

	return sb.String()
}

// DrawASCIIMomentDiagram plots the moment envelope across the span.
func DrawASCIIMomentDiagram(data BeamDiagramData) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  MOMENT DIAGRAM (kip-ft)\n")
	sb.WriteString("  ───────────────────────\n")
	graph := asciigraph.Plot(data.Moment,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Offset(4),
		asciigraph.Caption(fmt.Sprintf("x = 0 to %.1f ft", data.SpanLength)),
	)
	sb.WriteString(graph)
	sb.WriteString("\n")

	maxM := 0.0
	for _, m := range data.Moment {
		if m > maxM {
			maxM = m
		}
	}
	sb.WriteString(fmt.Sprintf("\n  Mmax = %.2f kip-ft at midspan\n", maxM))

	return sb.String()
}

// DrawLoadingSketch draws the analysis model: a simple span under
// uniform load.
func DrawLoadingSketch(data BeamDiagramData) string {
	var sb strings.Builder

	span := 50

	sb.WriteString("\n")
	sb.WriteString("  LOADING\n")
	sb.WriteString("  ───────\n")
	sb.WriteString(fmt.Sprintf("   wu = %.2f kip/ft\n", data.FactoredLoad))
	sb.WriteString("   " + strings.Repeat("▼ ", span/2) + "\n")
	sb.WriteString("   " + strings.Repeat("━", span) + "\n")
	sb.WriteString("   ▲" + strings.Repeat(" ", span-2) + "▲\n")
	sb.WriteString(fmt.Sprintf("   ├%s┤\n", strings.Repeat("─", span-2)))
	sb.WriteString(fmt.Sprintf("   L = %.1f ft\n", data.SpanLength))

	return sb.String()
}

// DrawSummaryBox creates a bordered summary box for results.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
