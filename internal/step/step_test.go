package step

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsFloat(t *testing.T) {
	p := Params{
		"span":   240.0,
		"count":  21,
		"label":  "beam",
		"factor": float32(1.5),
	}

	v, err := p.Float("span")
	require.NoError(t, err)
	assert.Equal(t, 240.0, v)

	// Integers widen to float64
	v, err = p.Float("count")
	require.NoError(t, err)
	assert.Equal(t, 21.0, v)

	v, err = p.Float("factor")
	require.NoError(t, err)
	assert.InDelta(t, 1.5, v, 1e-9)

	_, err = p.Float("label")
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "label", inputErr.Param)
	assert.Equal(t, "must be a number", inputErr.Message)

	_, err = p.Float("missing")
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "missing", inputErr.Param)
}

func TestParamsPositiveFloat(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		wantErr string
	}{
		{"positive", 2.5, ""},
		{"zero", 0.0, "must be positive"},
		{"negative", -1.0, "must be positive"},
		{"non-numeric", "nope", "must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Params{"load": tt.value}
			_, err := p.PositiveFloat("load")
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var inputErr *InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, "load", inputErr.Param)
			assert.Equal(t, tt.wantErr, inputErr.Message)
		})
	}
}

func TestParamsInt(t *testing.T) {
	p := Params{"n": 21, "whole": 10.0, "frac": 10.5, "text": "x"}

	n, err := p.Int("n")
	require.NoError(t, err)
	assert.Equal(t, 21, n)

	// Whole-valued floats are accepted
	n, err = p.Int("whole")
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	var inputErr *InputError
	_, err = p.Int("frac")
	require.ErrorAs(t, err, &inputErr)

	_, err = p.Int("text")
	require.ErrorAs(t, err, &inputErr)
}

func TestRequireParamsReportsFirstMissing(t *testing.T) {
	p := Params{"b": 1.0}

	err := RequireParams(p, "a", "b", "c")
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "a", inputErr.Param)
	assert.Equal(t, "required parameter missing", inputErr.Message)

	assert.NoError(t, RequireParams(p, "b"))
}

func TestDesignErrorWrapsCause(t *testing.T) {
	cause := NewInputError("span_length", "required parameter missing")
	err := WrapDesign("preliminary_sizing", cause)

	assert.Equal(t, "preliminary_sizing", err.Step)
	assert.Contains(t, err.Error(), "preliminary_sizing")
	assert.Contains(t, err.Message, "span_length")

	// The original InputError stays reachable through Unwrap.
	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, "span_length", inputErr.Param)
}

func TestVerificationErrorWrapsCause(t *testing.T) {
	cause := NewInputError("depth", "must be positive")
	err := WrapVerification("preliminary_sizing", cause)

	assert.Contains(t, err.Error(), "verification error in preliminary_sizing")

	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, "depth", inputErr.Param)
}

func TestNotImplementedVerification(t *testing.T) {
	v := NotImplementedVerification("load_analysis", "Verification not required for load analysis")

	assert.Equal(t, StatusNotImplemented, v.Status)
	assert.True(t, v.Passed)
	assert.Equal(t, "load_analysis", v.Step)
}

func TestTrailOrdering(t *testing.T) {
	trail := NewTrail("test_step", map[string]any{"x": 1.0})
	trail.Explain("first")
	trail.Explain("second")
	trail.Explain("third")

	assert.Equal(t, []string{"first", "second", "third"}, trail.Explanations())
	assert.Equal(t, "test_step", trail.StepName())
}
