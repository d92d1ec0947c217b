// Package loads implements factored load combination analysis per
// ACI 318-19 Table 5.3.1.
package loads

import (
	"fmt"

	"github.com/jinxindev/simplybeam/internal/aci"
	"github.com/jinxindev/simplybeam/internal/step"
)

const stepName = "load_analysis"

// LoadAnalysis is step 2 of the pipeline: it evaluates the eligible
// strength design load combinations and picks the controlling one.
type LoadAnalysis struct{}

var _ step.Step = (*LoadAnalysis)(nil)

// New creates the load analysis step.
func New() *LoadAnalysis { return &LoadAnalysis{} }

func (s *LoadAnalysis) Name() string { return stepName }

// serviceLoads holds the unfactored loads in kip/ft. Dead load is always
// required; the rest are nil when the caller did not supply them. A nil
// load is excluded from the combinations entirely, which is not the same
// as contributing zero: presence decides which equations apply.
type serviceLoads struct {
	Dead    float64
	Live    *float64
	Roof    *float64
	Snow    *float64
	Rain    *float64
	Wind    *float64
	Seismic *float64
}

var optionalLoads = []string{
	"live_load", "roof_live_load", "snow_load", "rain_load", "wind_load", "seismic_load",
}

// Combination is one evaluated load combination.
type Combination struct {
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	Formula     string  `json:"formula"`
	Calculation string  `json:"calculation"`
	Value       float64 `json:"value"`
	Units       string  `json:"units"`
}

// Controlling identifies the governing combination.
type Controlling struct {
	Combination string  `json:"combination"`
	Value       float64 `json:"value"`
	Units       string  `json:"units"`
}

// DesignResult is the output of LoadAnalysis.Design. Combinations keeps
// the code's equation order U1..U7.
type DesignResult struct {
	step.Trail

	Combinations []Combination `json:"load_combinations"`
	Controlling  *Controlling  `json:"controlling_load"`
}

// Combination looks up an evaluated combination by key.
func (r *DesignResult) Combination(key string) (Combination, bool) {
	for _, c := range r.Combinations {
		if c.Key == key {
			return c, true
		}
	}
	return Combination{}, false
}

// Design evaluates the eligible ACI 318-19 Table 5.3.1 combinations.
//
// Required parameters:
//   - dead_load: kip/ft, positive
//
// Optional (kip/ft, evaluated only when supplied):
//   - live_load, roof_live_load, snow_load, rain_load, wind_load, seismic_load
func (s *LoadAnalysis) Design(params step.Params) (step.Result, error) {
	res, err := s.design(params)
	if err != nil {
		return nil, step.WrapDesign(stepName, err)
	}
	return res, nil
}

func (s *LoadAnalysis) design(params step.Params) (*DesignResult, error) {
	loads, err := parseLoads(params)
	if err != nil {
		return nil, err
	}

	inputs := map[string]any{"dead_load": loads.Dead}
	for _, name := range optionalLoads {
		if params.Has(name) {
			v, _ := params.Float(name)
			inputs[name] = v
		}
	}
	res := &DesignResult{Trail: step.NewTrail(stepName, inputs)}

	D := loads.Dead
	L := loads.Live
	Lr := loads.Roof
	S := loads.Snow
	R := loads.Rain
	W := loads.Wind
	E := loads.Seismic

	// U1: 1.4D, always applies.
	res.add("U1", 1.4*D, fmt.Sprintf("1.4 * %.2f", D))

	// U2: 1.2D + 1.6L + 0.5(Lr/S/R), applies when a live load is given.
	if L != nil {
		add := maxPresent(0, Lr, S, R)
		res.add("U2", 1.2*D+1.6**L+0.5*add,
			fmt.Sprintf("1.2*%.2f + 1.6*%.2f + 0.5*%.2f", D, *L, add))
	}

	// U3: 1.2D + 1.6(Lr/S/R) + (L or 0.5W), applies when any roof-level
	// load is given. The secondary term pools L and 0.5W over those
	// actually present.
	if Lr != nil || S != nil || R != nil {
		primary := maxPresent(0, Lr, S, R)
		var halfW *float64
		if W != nil {
			v := 0.5 * *W
			halfW = &v
		}
		secondary := maxPresent(0, L, halfW)
		res.add("U3", 1.2*D+1.6*primary+secondary,
			fmt.Sprintf("1.2*%.2f + 1.6*%.2f + %.2f", D, primary, secondary))
	}

	// U4: 1.2D + 1.0W + L + 0.5(Lr/S/R), applies when wind is given.
	if W != nil {
		add := maxPresent(0, Lr, S, R)
		res.add("U4", 1.2*D+1.0**W+orZero(L)+0.5*add,
			fmt.Sprintf("1.2*%.2f + 1.0*%.2f + %.2f + 0.5*%.2f", D, *W, orZero(L), add))
	}

	// U5: 1.2D + 1.0E + L + 0.2S, applies when seismic is given.
	if E != nil {
		res.add("U5", 1.2*D+1.0**E+orZero(L)+0.2*orZero(S),
			fmt.Sprintf("1.2*%.2f + 1.0*%.2f + %.2f + %.2f", D, *E, orZero(L), 0.2*orZero(S)))
	}

	// U6: 0.9D + 1.0W, wind uplift.
	if W != nil {
		res.add("U6", 0.9*D+1.0**W, fmt.Sprintf("0.9*%.2f + 1.0*%.2f", D, *W))
	}

	// U7: 0.9D + 1.0E, seismic uplift.
	if E != nil {
		res.add("U7", 0.9*D+1.0**E, fmt.Sprintf("0.9*%.2f + 1.0*%.2f", D, *E))
	}

	res.setControlling()
	return res, nil
}

func (r *DesignResult) add(key string, value float64, calculation string) {
	def, _ := aci.Definition(key)
	r.Combinations = append(r.Combinations, Combination{
		Key:         key,
		Name:        def.Name,
		Formula:     def.Formula,
		Calculation: calculation,
		Value:       value,
		Units:       "kip/ft",
	})
	r.Explain(fmt.Sprintf("Calculated %s: %.2f kip/ft (%s)", def.Name, value, def.Formula))
}

// setControlling records the combination with the maximum factored load.
// Ties go to the earliest combination in equation order.
func (r *DesignResult) setControlling() {
	if len(r.Combinations) == 0 {
		return
	}
	maxVal := r.Combinations[0].Value
	for _, c := range r.Combinations[1:] {
		if c.Value > maxVal {
			maxVal = c.Value
		}
	}
	for _, c := range r.Combinations {
		if c.Value == maxVal {
			r.Controlling = &Controlling{Combination: c.Key, Value: maxVal, Units: "kip/ft"}
			r.Explain(fmt.Sprintf("Controlling load: %s (%s) = %.2f kip/ft", c.Key, c.Name, maxVal))
			return
		}
	}
}

// Verify has no meaning for load analysis; the combinations are fully
// determined by the inputs.
func (s *LoadAnalysis) Verify(step.Params) (*step.Verification, error) {
	return step.NotImplementedVerification(stepName, "Verification not required for load analysis"), nil
}

// CheckRequirements is an extension point not yet exercised.
func (s *LoadAnalysis) CheckRequirements(step.Result) step.Requirement {
	return step.Requirement{Passed: true, Message: "Requirements checking not implemented for load analysis"}
}

func parseLoads(params step.Params) (*serviceLoads, error) {
	if err := step.RequireParams(params, "dead_load"); err != nil {
		return nil, err
	}
	dead, err := params.PositiveFloat("dead_load")
	if err != nil {
		return nil, err
	}
	loads := &serviceLoads{Dead: dead}
	targets := map[string]**float64{
		"live_load":      &loads.Live,
		"roof_live_load": &loads.Roof,
		"snow_load":      &loads.Snow,
		"rain_load":      &loads.Rain,
		"wind_load":      &loads.Wind,
		"seismic_load":   &loads.Seismic,
	}
	for _, name := range optionalLoads {
		if !params.Has(name) {
			continue
		}
		v, err := params.PositiveFloat(name)
		if err != nil {
			return nil, err
		}
		*targets[name] = &v
	}
	return loads, nil
}

// maxPresent returns the largest of the present values, or def when none
// are present. Absent loads do not contribute a zero candidate.
func maxPresent(def float64, vals ...*float64) float64 {
	best := def
	found := false
	for _, v := range vals {
		if v == nil {
			continue
		}
		if !found || *v > best {
			best = *v
			found = true
		}
	}
	return best
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
