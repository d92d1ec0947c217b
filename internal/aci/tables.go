// Package aci collects the ACI 318-19 constants and tables used by the
// design steps: minimum member depths, practical width limits, and the
// strength design load combinations.
package aci

import (
	"math"

	"github.com/jinxindev/simplybeam/internal/step"
)

// Support conditions for non-prestressed beams, ACI 318-19 Table 9.3.1.1.
const (
	SimplySupported    = "simply_supported"
	OneEndContinuous   = "one_end_continuous"
	BothEndsContinuous = "both_ends_continuous"
	Cantilever         = "cantilever"
)

// minDepthFactors maps each support condition to its minimum overall
// depth as a fraction of span, per ACI 318-19 Table 9.3.1.1. Members
// sized at or above these depths need no deflection calculation.
var minDepthFactors = map[string]float64{
	SimplySupported:    1.0 / 16.0,
	OneEndContinuous:   1.0 / 18.5,
	BothEndsContinuous: 1.0 / 21.0,
	Cantilever:         1.0 / 8.0,
}

// minDepthFormulas are the symbolic forms shown in calculation trails.
var minDepthFormulas = map[string]string{
	SimplySupported:    "L/16",
	OneEndContinuous:   "L/18.5",
	BothEndsContinuous: "L/21",
	Cantilever:         "L/8",
}

// MinDepthFormula returns the symbolic Table 9.3.1.1 expression for a
// support condition, e.g. "L/16".
func MinDepthFormula(condition string) string {
	return minDepthFormulas[condition]
}

// SupportConditions lists the accepted support_condition values.
var SupportConditions = []string{
	SimplySupported,
	OneEndContinuous,
	BothEndsContinuous,
	Cantilever,
}

// MinDepthFactor returns the Table 9.3.1.1 depth factor for a support
// condition.
func MinDepthFactor(condition string) (float64, error) {
	f, ok := minDepthFactors[condition]
	if !ok {
		return 0, step.NewInputError("support_condition",
			"must be one of: simply_supported, one_end_continuous, both_ends_continuous, cantilever")
	}
	return f, nil
}

// Practical width limits for rectangular beams as a fraction of depth.
const (
	MinWidthRatio = 1.0 / 2.0 // b >= h/2
	MaxWidthRatio = 2.0 / 3.0 // b <= 2h/3
)

// RoundUpEven rounds up to the nearest even integer. Beam dimensions are
// specified in 2-inch increments, so the result is always an even integer
// greater than or equal to the input.
func RoundUpEven(v float64) int {
	rounded := int(math.Ceil(v))
	if rounded%2 != 0 {
		rounded++
	}
	return rounded
}
