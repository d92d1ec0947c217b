// Package analysis implements structural analysis of simply supported
// beams under uniform load: reactions, maximum shear and moment, and
// shear/moment diagram ordinates.
package analysis

import (
	"fmt"
	"math"

	"github.com/jinxindev/simplybeam/internal/step"
)

const stepName = "structural_analysis"

// DefaultNumPoints is the diagram sampling density when the caller does
// not ask for a specific one.
const DefaultNumPoints = 21

// StructuralAnalysis is step 3 of the pipeline.
type StructuralAnalysis struct{}

var _ step.Step = (*StructuralAnalysis)(nil)

// New creates the structural analysis step.
func New() *StructuralAnalysis { return &StructuralAnalysis{} }

func (s *StructuralAnalysis) Name() string { return stepName }

// Reactions holds the support reactions of the simple span.
type Reactions struct {
	Ra          float64 `json:"Ra"`
	Rb          float64 `json:"Rb"`
	Formula     string  `json:"formula"`
	Calculation string  `json:"calculation"`
	Units       string  `json:"units"`
}

// Extreme is a maximum force value with its location on the span.
type Extreme struct {
	Value       float64 `json:"value"`
	Location    string  `json:"location"`
	Formula     string  `json:"formula"`
	Calculation string  `json:"calculation"`
	Units       string  `json:"units"`
}

// Maxima holds the peak shear and moment.
type Maxima struct {
	Shear  Extreme `json:"shear"`
	Moment Extreme `json:"moment"`
}

// DiagramUnits labels the diagram series.
type DiagramUnits struct {
	X      string `json:"x"`
	Shear  string `json:"shear"`
	Moment string `json:"moment"`
}

// Diagram is three parallel series of equal length sampling the span.
// Every value is rounded to two decimals.
type Diagram struct {
	X      []float64    `json:"x_coordinates"`
	Shear  []float64    `json:"shear_values"`
	Moment []float64    `json:"moment_values"`
	Units  DiagramUnits `json:"units"`
}

// DesignResult is the output of StructuralAnalysis.Design.
type DesignResult struct {
	step.Trail

	Reactions Reactions `json:"reactions"`
	Maxima    Maxima    `json:"maximum_values"`
	Diagram   Diagram   `json:"diagrams"`
}

// Design analyzes a simply supported beam under uniform load.
//
// Required parameters:
//   - span_length: feet, positive
//   - factored_load: kip/ft, positive
//
// Optional:
//   - num_points: diagram sampling density, integer >= 2, default 21
func (s *StructuralAnalysis) Design(params step.Params) (step.Result, error) {
	res, err := s.design(params)
	if err != nil {
		return nil, step.WrapDesign(stepName, err)
	}
	return res, nil
}

func (s *StructuralAnalysis) design(params step.Params) (*DesignResult, error) {
	if err := step.RequireParams(params, "span_length", "factored_load"); err != nil {
		return nil, err
	}
	L, err := params.PositiveFloat("span_length")
	if err != nil {
		return nil, err
	}
	wu, err := params.PositiveFloat("factored_load")
	if err != nil {
		return nil, err
	}
	numPoints := DefaultNumPoints
	if params.Has("num_points") {
		numPoints, err = params.Int("num_points")
		if err != nil || numPoints < 2 {
			return nil, step.NewInputError("num_points", "must be an integer >= 2")
		}
	}

	inputs := map[string]any{
		"span_length":   L,
		"factored_load": wu,
		"num_points":    numPoints,
	}
	res := &DesignResult{Trail: step.NewTrail(stepName, inputs)}

	// Reactions: symmetric, half the total load each.
	reaction := wu * L / 2
	res.Reactions = Reactions{
		Ra:          reaction,
		Rb:          reaction,
		Formula:     "R = wu*L/2",
		Calculation: fmt.Sprintf("R = %.2f * %.2f / 2 = %.2f kip", wu, L, reaction),
		Units:       "kip",
	}
	res.Explain(fmt.Sprintf(
		"For simply supported beam with uniform load: Reactions = %.2f kip at both supports", reaction))

	maxShear := wu * L / 2
	maxMoment := wu * L * L / 8
	res.Maxima = Maxima{
		Shear: Extreme{
			Value:       maxShear,
			Location:    "at supports",
			Formula:     "Vmax = wu*L/2",
			Calculation: fmt.Sprintf("%.2f * %.2f / 2 = %.2f kip", wu, L, maxShear),
			Units:       "kip",
		},
		Moment: Extreme{
			Value:       maxMoment,
			Location:    "midspan",
			Formula:     "Mmax = wu*L²/8",
			Calculation: fmt.Sprintf("%.2f * %.2f² / 8 = %.2f kip-ft", wu, L, maxMoment),
			Units:       "kip-ft",
		},
	}
	res.Explain(fmt.Sprintf("Maximum shear: %.2f kip at supports", maxShear))
	res.Explain(fmt.Sprintf("Maximum moment: %.2f kip-ft at midspan", maxMoment))

	res.Diagram = sampleDiagram(wu, L, numPoints)
	res.Explain(fmt.Sprintf(
		"Generated %d data points for shear/moment diagrams using standard beam equations", numPoints))

	return res, nil
}

// sampleDiagram evaluates V(x) = wu*(L/2 - x) and M(x) = wu*x*(L-x)/2 at
// numPoints equally spaced stations over [0, L].
func sampleDiagram(wu, L float64, numPoints int) Diagram {
	d := Diagram{
		X:      make([]float64, numPoints),
		Shear:  make([]float64, numPoints),
		Moment: make([]float64, numPoints),
		Units:  DiagramUnits{X: "ft", Shear: "kip", Moment: "kip-ft"},
	}
	dx := L / float64(numPoints-1)
	for i := 0; i < numPoints; i++ {
		x := float64(i) * dx
		d.X[i] = round2(x)
		d.Shear[i] = round2(wu * (L/2 - x))
		d.Moment[i] = round2(wu * x * (L - x) / 2)
	}
	return d
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Verify has no meaning for structural analysis; the forces follow
// directly from statics.
func (s *StructuralAnalysis) Verify(step.Params) (*step.Verification, error) {
	return step.NotImplementedVerification(stepName, "Verification not required for structural analysis"), nil
}

// CheckRequirements is an extension point not yet exercised.
func (s *StructuralAnalysis) CheckRequirements(step.Result) step.Requirement {
	return step.Requirement{Passed: true, Message: "Requirements checking not implemented for structural analysis"}
}
