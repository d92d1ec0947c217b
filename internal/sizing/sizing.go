// Package sizing implements preliminary member sizing for rectangular
// reinforced-concrete beams per ACI 318-19 Table 9.3.1.1.
package sizing

import (
	"fmt"

	"github.com/jinxindev/simplybeam/internal/aci"
	"github.com/jinxindev/simplybeam/internal/step"
)

const stepName = "preliminary_sizing"

// PreliminarySizing is step 1 of the pipeline: it proposes beam
// dimensions from the span length alone.
type PreliminarySizing struct{}

var _ step.Step = (*PreliminarySizing)(nil)

// New creates the preliminary sizing step.
func New() *PreliminarySizing { return &PreliminarySizing{} }

func (s *PreliminarySizing) Name() string { return stepName }

// DimensionCalc records how one dimension was derived.
type DimensionCalc struct {
	Formula    string  `json:"formula"`
	Calculated float64 `json:"calculated"`
	Rounded    int     `json:"rounded"`
	Units      string  `json:"units"`
}

// WidthCalc records the practical width band and the selected width.
type WidthCalc struct {
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Ideal       float64 `json:"ideal"`
	Recommended int     `json:"recommended"`
	Units       string  `json:"units"`
}

// Dimensions is the sizing summary: final depth and width in inches.
type Dimensions struct {
	Depth int    `json:"depth"`
	Width int    `json:"width"`
	Units string `json:"units"`
}

// DesignResult is the output of PreliminarySizing.Design.
type DesignResult struct {
	step.Trail

	Depth           DimensionCalc `json:"depth_calculation"`
	Width           WidthCalc     `json:"width_calculation"`
	FinalDimensions Dimensions    `json:"final_dimensions"`
}

// Design proposes beam dimensions for a span.
//
// Required parameters:
//   - span_length: clear span in inches, positive
//
// Optional:
//   - support_condition: one of the ACI Table 9.3.1.1 conditions,
//     default simply_supported
func (s *PreliminarySizing) Design(params step.Params) (step.Result, error) {
	res, err := s.design(params)
	if err != nil {
		return nil, step.WrapDesign(stepName, err)
	}
	return res, nil
}

func (s *PreliminarySizing) design(params step.Params) (*DesignResult, error) {
	if err := step.RequireParams(params, "span_length"); err != nil {
		return nil, err
	}
	span, err := params.PositiveFloat("span_length")
	if err != nil {
		return nil, err
	}

	condition := aci.SimplySupported
	if params.Has("support_condition") {
		condition, err = params.String("support_condition")
		if err != nil {
			return nil, err
		}
	}
	factor, err := aci.MinDepthFactor(condition)
	if err != nil {
		return nil, err
	}

	inputs := map[string]any{
		"span_length":       span,
		"support_condition": condition,
	}
	res := &DesignResult{Trail: step.NewTrail(stepName, inputs)}

	// Minimum depth, rounded up to an even inch for constructability.
	minDepth := span * factor
	depth := aci.RoundUpEven(minDepth)
	res.Depth = DimensionCalc{
		Formula:    aci.MinDepthFormula(condition),
		Calculated: minDepth,
		Rounded:    depth,
		Units:      "inches",
	}
	res.Explain(fmt.Sprintf(
		"Minimum depth per ACI 318-19 Table 9.3.1.1: %.2f in. => Rounded to %d in. for constructability",
		minDepth, depth))

	// Practical width band is h/2 to 2h/3; pick the midpoint and keep the
	// rounded value inside the (rounded) band.
	h := float64(depth)
	minB := h * aci.MinWidthRatio
	maxB := h * aci.MaxWidthRatio
	idealB := (minB + maxB) / 2
	width := clampInt(aci.RoundUpEven(idealB), aci.RoundUpEven(minB), aci.RoundUpEven(maxB))
	res.Width = WidthCalc{
		Min:         minB,
		Max:         maxB,
		Ideal:       idealB,
		Recommended: width,
		Units:       "inches",
	}
	res.Explain(fmt.Sprintf(
		"Width range: %.1f-%.1f in. (Practical: h/2 to 2h/3). Selected width: %d in. (rounded even number)",
		minB, maxB, width))

	res.FinalDimensions = Dimensions{Depth: depth, Width: width, Units: "inches"}
	return res, nil
}

// Verify checks proposed dimensions against the code minimums.
//
// Required parameters: span_length, depth, width (inches, all positive).
func (s *PreliminarySizing) Verify(proposed step.Params) (*step.Verification, error) {
	v, err := s.verify(proposed)
	if err != nil {
		return nil, step.WrapVerification(stepName, err)
	}
	return v, nil
}

func (s *PreliminarySizing) verify(proposed step.Params) (*step.Verification, error) {
	if err := step.RequireParams(proposed, "span_length", "depth", "width"); err != nil {
		return nil, err
	}
	span, err := proposed.PositiveFloat("span_length")
	if err != nil {
		return nil, err
	}
	h, err := proposed.PositiveFloat("depth")
	if err != nil {
		return nil, err
	}
	b, err := proposed.PositiveFloat("width")
	if err != nil {
		return nil, err
	}

	factor, _ := aci.MinDepthFactor(aci.SimplySupported)

	v := &step.Verification{
		Step:     stepName,
		Provided: map[string]any{"depth": h, "width": b, "units": "inches"},
		Checks:   make(map[string]step.Check),
	}

	minH := span * factor
	depthOK := h >= minH
	v.Checks["depth"] = step.Check{
		Required: fmt.Sprintf(">= %.1f in. (L/16)", minH),
		Status:   passFail(depthOK),
		Explanation: fmt.Sprintf(
			"ACI 318-19 Table 9.3.1.1 minimum depth: %.1f in. (L/16). Provided: %g in. | Status: %s",
			minH, h, passFail(depthOK)),
	}

	minB := h * aci.MinWidthRatio
	maxB := h * aci.MaxWidthRatio
	widthOK := b >= minB && b <= maxB
	v.Checks["width"] = step.Check{
		Required: fmt.Sprintf("%.1f-%.1f in. (h/2 to 2h/3)", minB, maxB),
		Status:   passFail(widthOK),
		Explanation: fmt.Sprintf(
			"Recommended width range: %.1f to %.1f in. Provided: %g in. | Status: %s",
			minB, maxB, b, passFail(widthOK)),
	}

	v.Passed = depthOK && widthOK
	if v.Passed {
		v.Message = "All requirements met"
	} else {
		v.Message = "Fails 1+ requirements"
	}
	return v, nil
}

// CheckRequirements is an extension point not yet exercised.
func (s *PreliminarySizing) CheckRequirements(step.Result) step.Requirement {
	return step.Requirement{Passed: true, Message: "Requirements check not implemented"}
}

func passFail(ok bool) string {
	if ok {
		return step.StatusPass
	}
	return step.StatusFail
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
