package sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jinxindev/simplybeam/internal/aci"
	"github.com/jinxindev/simplybeam/internal/step"
)

func designFor(t *testing.T, span float64) *DesignResult {
	t.Helper()
	result, err := New().Design(step.Params{"span_length": span})
	require.NoError(t, err)
	return result.(*DesignResult)
}

func TestDesignTwentyFootSpan(t *testing.T) {
	// 240 in. span: L/16 = 15 -> depth 16; band 8-10.67 -> width 10
	res := designFor(t, 240)

	assert.Equal(t, 16, res.FinalDimensions.Depth)
	assert.Equal(t, 10, res.FinalDimensions.Width)
	assert.Equal(t, "inches", res.FinalDimensions.Units)

	assert.Equal(t, "L/16", res.Depth.Formula)
	assert.InDelta(t, 15.0, res.Depth.Calculated, 1e-9)
	assert.Len(t, res.Explanations(), 2)
}

func TestDesignDepthAndWidthProperties(t *testing.T) {
	spans := []float64{36, 100, 144, 240, 300, 480, 75.5, 1000}

	for _, span := range spans {
		res := designFor(t, span)

		depth := res.FinalDimensions.Depth
		width := res.FinalDimensions.Width

		// Depth: even integer at or above L/16.
		assert.Zero(t, depth%2, "span %v: depth %d not even", span, depth)
		assert.GreaterOrEqual(t, float64(depth), span/16, "span %v", span)

		// Width: even integer inside the rounded practical band.
		h := float64(depth)
		assert.Zero(t, width%2, "span %v: width %d not even", span, width)
		assert.GreaterOrEqual(t, width, aci.RoundUpEven(h/2), "span %v", span)
		assert.LessOrEqual(t, width, aci.RoundUpEven(2*h/3), "span %v", span)
	}
}

func TestDesignSupportConditions(t *testing.T) {
	// Cantilever minimum is L/8, twice the simply supported depth.
	result, err := New().Design(step.Params{
		"span_length":       240.0,
		"support_condition": aci.Cantilever,
	})
	require.NoError(t, err)
	res := result.(*DesignResult)
	assert.Equal(t, 30, res.FinalDimensions.Depth)
	assert.Equal(t, "L/8", res.Depth.Formula)

	_, err = New().Design(step.Params{
		"span_length":       240.0,
		"support_condition": "propped",
	})
	var designErr *step.DesignError
	require.ErrorAs(t, err, &designErr)
	var inputErr *step.InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "support_condition", inputErr.Param)
}

func TestDesignValidation(t *testing.T) {
	tests := []struct {
		name      string
		params    step.Params
		wantParam string
	}{
		{"missing span", step.Params{}, "span_length"},
		{"zero span", step.Params{"span_length": 0.0}, "span_length"},
		{"negative span", step.Params{"span_length": -240.0}, "span_length"},
		{"non-numeric span", step.Params{"span_length": "long"}, "span_length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Design(tt.params)

			// Validation failures surface as a DesignError tagged with
			// the step, still carrying the original InputError.
			var designErr *step.DesignError
			require.ErrorAs(t, err, &designErr)
			assert.Equal(t, "preliminary_sizing", designErr.Step)

			var inputErr *step.InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.wantParam, inputErr.Param)
		})
	}
}

func TestVerifyPassing(t *testing.T) {
	v, err := New().Verify(step.Params{
		"span_length": 240.0,
		"depth":       16.0,
		"width":       9.0,
	})
	require.NoError(t, err)

	assert.True(t, v.Passed)
	assert.Equal(t, "All requirements met", v.Message)
	assert.Equal(t, step.StatusPass, v.Checks["depth"].Status)
	assert.Equal(t, step.StatusPass, v.Checks["width"].Status)
}

func TestVerifyDepthBoundaryInclusive(t *testing.T) {
	// depth exactly L/16 passes the depth check
	v, err := New().Verify(step.Params{
		"span_length": 240.0,
		"depth":       15.0,
		"width":       9.0,
	})
	require.NoError(t, err)
	assert.Equal(t, step.StatusPass, v.Checks["depth"].Status)
}

func TestVerifyWidthBoundariesInclusive(t *testing.T) {
	for _, width := range []float64{8.0, 32.0 / 3.0} { // h/2 and 2h/3 for h=16
		v, err := New().Verify(step.Params{
			"span_length": 240.0,
			"depth":       16.0,
			"width":       width,
		})
		require.NoError(t, err)
		assert.Equal(t, step.StatusPass, v.Checks["width"].Status, "width %v", width)
	}
}

func TestVerifyFailing(t *testing.T) {
	v, err := New().Verify(step.Params{
		"span_length": 240.0,
		"depth":       12.0, // below L/16 = 15
		"width":       20.0, // above 2h/3 = 8
	})
	require.NoError(t, err)

	assert.False(t, v.Passed)
	assert.Equal(t, "Fails 1+ requirements", v.Message)
	assert.Equal(t, step.StatusFail, v.Checks["depth"].Status)
	assert.Equal(t, step.StatusFail, v.Checks["width"].Status)
}

func TestVerifyValidation(t *testing.T) {
	// First missing parameter in required order is the one reported.
	_, err := New().Verify(step.Params{"span_length": 240.0})

	var verifyErr *step.VerificationError
	require.ErrorAs(t, err, &verifyErr)
	assert.Equal(t, "preliminary_sizing", verifyErr.Step)

	var inputErr *step.InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "depth", inputErr.Param)

	_, err = New().Verify(step.Params{
		"span_length": 240.0,
		"depth":       -16.0,
		"width":       10.0,
	})
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "depth", inputErr.Param)
	assert.Equal(t, "must be positive", inputErr.Message)
}

func TestCheckRequirementsPlaceholder(t *testing.T) {
	req := New().CheckRequirements(nil)
	assert.True(t, req.Passed)
	assert.Contains(t, req.Message, "not implemented")
}
