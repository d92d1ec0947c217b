package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ExportBeamDiagrams exports the shear and moment diagrams to image
// files. The moment diagram goes to the given filename; the shear
// diagram to the same name with a "_shear" suffix. Format follows the
// extension (png, svg, pdf).
func ExportBeamDiagrams(data BeamDiagramData, filename string) error {
	ext := filepath.Ext(filename)
	base := filename[:len(filename)-len(ext)]
	if ext == "" {
		ext = ".png"
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	if err := exportSeries(data.X, data.Moment, seriesStyle{
		title:  fmt.Sprintf("Moment Diagram (wu = %.2f kip/ft, L = %.1f ft)", data.FactoredLoad, data.SpanLength),
		yLabel: "M (kip-ft)",
		color:  color.RGBA{R: 0, G: 0, B: 200, A: 255},
		invert: true,
	}, base+ext); err != nil {
		return err
	}

	return exportSeries(data.X, data.Shear, seriesStyle{
		title:  fmt.Sprintf("Shear Diagram (wu = %.2f kip/ft, L = %.1f ft)", data.FactoredLoad, data.SpanLength),
		yLabel: "V (kip)",
		color:  color.RGBA{R: 200, G: 0, B: 0, A: 255},
	}, base+"_shear"+ext)
}

type seriesStyle struct {
	title  string
	yLabel string
	color  color.RGBA
	invert bool // moment diagrams are drawn on the tension side
}

func exportSeries(x, y []float64, style seriesStyle, filename string) error {
	p := plot.New()
	p.Title.Text = style.title
	p.X.Label.Text = "x (ft)"
	p.Y.Label.Text = style.yLabel
	if style.invert {
		p.Y.Scale = invertedScale{}
	}

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i] = plotter.XY{X: x[i], Y: y[i]}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = style.color
	p.Add(line)

	// Baseline at zero
	zero, err := plotter.NewLine(plotter.XYs{
		{X: x[0], Y: 0},
		{X: x[len(x)-1], Y: 0},
	})
	if err != nil {
		return err
	}
	zero.LineStyle.Width = vg.Points(1)
	zero.LineStyle.Color = color.Gray{Y: 128}
	zero.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(zero)

	p.Add(plotter.NewGrid())

	return p.Save(8*vg.Inch, 4*vg.Inch, filename)
}

// invertedScale flips the axis so sagging moments plot downward, the
// structural drawing convention.
type invertedScale struct{}

func (invertedScale) Normalize(min, max, x float64) float64 {
	return (max - x) / (max - min)
}
