package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jinxindev/simplybeam/internal/step"
)

func designFor(t *testing.T, params step.Params) *DesignResult {
	t.Helper()
	result, err := New().Design(params)
	require.NoError(t, err)
	return result.(*DesignResult)
}

func TestDesignTwentyFootSpan(t *testing.T) {
	res := designFor(t, step.Params{
		"span_length":   20.0,
		"factored_load": 2.5,
	})

	assert.InDelta(t, 25.0, res.Reactions.Ra, 1e-9)
	assert.InDelta(t, 25.0, res.Reactions.Rb, 1e-9)
	assert.Equal(t, "kip", res.Reactions.Units)

	assert.InDelta(t, 25.0, res.Maxima.Shear.Value, 1e-9)
	assert.Equal(t, "at supports", res.Maxima.Shear.Location)

	assert.InDelta(t, 125.0, res.Maxima.Moment.Value, 1e-9)
	assert.Equal(t, "midspan", res.Maxima.Moment.Location)
	assert.Equal(t, "2.50 * 20.00² / 8 = 125.00 kip-ft", res.Maxima.Moment.Calculation)
}

func TestDesignDiagramSeries(t *testing.T) {
	res := designFor(t, step.Params{
		"span_length":   20.0,
		"factored_load": 2.5,
	})
	d := res.Diagram

	// Default density, three parallel series.
	require.Len(t, d.X, DefaultNumPoints)
	require.Len(t, d.Shear, DefaultNumPoints)
	require.Len(t, d.Moment, DefaultNumPoints)

	// Endpoints: full shear at the left support, reversed at the right.
	assert.Equal(t, 0.0, d.X[0])
	assert.Equal(t, 25.0, d.Shear[0])
	assert.Equal(t, 20.0, d.X[len(d.X)-1])
	assert.Equal(t, -25.0, d.Shear[len(d.Shear)-1])
	assert.Equal(t, 0.0, d.Moment[0])
	assert.Equal(t, 0.0, d.Moment[len(d.Moment)-1])

	// Midspan carries the peak moment.
	mid := len(d.X) / 2
	assert.Equal(t, 10.0, d.X[mid])
	assert.Equal(t, 125.0, d.Moment[mid])
	assert.Equal(t, 0.0, d.Shear[mid])

	assert.Equal(t, "ft", d.Units.X)
	assert.Equal(t, "kip", d.Units.Shear)
	assert.Equal(t, "kip-ft", d.Units.Moment)
}

func TestDesignDiagramRounding(t *testing.T) {
	// Awkward span forces fractional stations; all values must carry at
	// most two decimals.
	res := designFor(t, step.Params{
		"span_length":   7.0,
		"factored_load": 1.37,
		"num_points":    4,
	})

	for _, series := range [][]float64{res.Diagram.X, res.Diagram.Shear, res.Diagram.Moment} {
		require.Len(t, series, 4)
		for _, v := range series {
			// Rounding again must be a no-op.
			assert.Equal(t, math.Round(v*100)/100, v, "value %v not rounded", v)
		}
	}
}

func TestDesignCustomNumPoints(t *testing.T) {
	res := designFor(t, step.Params{
		"span_length":   20.0,
		"factored_load": 2.5,
		"num_points":    2,
	})

	require.Len(t, res.Diagram.X, 2)
	assert.Equal(t, []float64{0.0, 20.0}, res.Diagram.X)
	assert.Equal(t, []float64{25.0, -25.0}, res.Diagram.Shear)
	assert.Equal(t, 2, res.Inputs["num_points"])
}

func TestDesignNumPointsValidation(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"too small", 1},
		{"zero", 0},
		{"negative", -5},
		{"fractional", 10.5},
		{"non-numeric", "many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Design(step.Params{
				"span_length":   20.0,
				"factored_load": 2.5,
				"num_points":    tt.value,
			})

			var inputErr *step.InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, "num_points", inputErr.Param)
		})
	}
}

func TestDesignValidation(t *testing.T) {
	tests := []struct {
		name      string
		params    step.Params
		wantParam string
	}{
		{"missing span", step.Params{"factored_load": 2.5}, "span_length"},
		{"missing load", step.Params{"span_length": 20.0}, "factored_load"},
		{"zero load", step.Params{"span_length": 20.0, "factored_load": 0.0}, "factored_load"},
		{"negative span", step.Params{"span_length": -20.0, "factored_load": 2.5}, "span_length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Design(tt.params)

			var designErr *step.DesignError
			require.ErrorAs(t, err, &designErr)
			assert.Equal(t, "structural_analysis", designErr.Step)

			var inputErr *step.InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.wantParam, inputErr.Param)
		})
	}
}

func TestVerifyNotImplemented(t *testing.T) {
	v, err := New().Verify(step.Params{})
	require.NoError(t, err)
	assert.Equal(t, step.StatusNotImplemented, v.Status)
	assert.True(t, v.Passed)
}

func TestCheckRequirementsPlaceholder(t *testing.T) {
	req := New().CheckRequirements(nil)
	assert.True(t, req.Passed)
}
