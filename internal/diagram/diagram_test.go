package diagram

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() BeamDiagramData {
	return BeamDiagramData{
		X:            []float64{0, 5, 10, 15, 20},
		Shear:        []float64{25, 12.5, 0, -12.5, -25},
		Moment:       []float64{0, 93.75, 125, 93.75, 0},
		SpanLength:   20,
		FactoredLoad: 2.5,
	}
}

func TestDrawASCIIShearDiagram(t *testing.T) {
	out := DrawASCIIShearDiagram(sampleData())

	assert.Contains(t, out, "SHEAR DIAGRAM (kip)")
	assert.Contains(t, out, "x = 0 to 20.0 ft")
	assert.Contains(t, out, "V = +25.00 kip at left support, -25.00 kip at right support")
}

func TestDrawASCIIMomentDiagram(t *testing.T) {
	out := DrawASCIIMomentDiagram(sampleData())

	assert.Contains(t, out, "MOMENT DIAGRAM (kip-ft)")
	assert.Contains(t, out, "Mmax = 125.00 kip-ft at midspan")
}

func TestDrawLoadingSketch(t *testing.T) {
	out := DrawLoadingSketch(sampleData())

	assert.Contains(t, out, "wu = 2.50 kip/ft")
	assert.Contains(t, out, "L = 20.0 ft")
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("FINAL DIMENSIONS", []string{
		"Depth (h) = 16 in.",
		"Width (b) = 10 in.",
	})

	assert.Contains(t, out, "FINAL DIMENSIONS")
	assert.Contains(t, out, "Depth (h) = 16 in.")
	assert.Contains(t, out, "╔")
	assert.Contains(t, out, "╚")
}

func TestExportBeamDiagrams(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "beam.png")

	err := ExportBeamDiagrams(sampleData(), target)
	require.NoError(t, err)

	for _, name := range []string{"beam.png", "beam_shear.png"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "expected %s to exist", name)
		assert.Greater(t, info.Size(), int64(0))
	}
}
