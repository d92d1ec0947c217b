// Package step defines the shared contract for beam design pipeline steps:
// the Step interface, the Params input map, the error taxonomy, and the
// calculation trail common to every result.
package step

// Verification status values.
const (
	StatusNotImplemented = "not_implemented"
	StatusPass           = "PASS"
	StatusFail           = "FAIL"
)

// Step is the contract shared by every design step in the pipeline.
type Step interface {
	// Name identifies the step in error messages and reports.
	Name() string

	// Design performs the step's forward calculation. Any failure,
	// including input validation, is returned as a *DesignError tagged
	// with the step name.
	Design(params Params) (Result, error)

	// Verify checks a caller-supplied candidate design against code
	// requirements. Steps without a meaningful verification return a
	// Verification with StatusNotImplemented rather than an error.
	Verify(proposed Params) (*Verification, error)

	// CheckRequirements re-checks a results structure against code
	// criteria. Currently a placeholder in every step; kept as an
	// extension point so the call surface stays uniform.
	CheckRequirements(results Result) Requirement
}

// Result is the common surface of every step's typed result struct.
type Result interface {
	StepName() string
	Explanations() []string
}

// Check is a single pass/fail requirement check within a verification.
type Check struct {
	Required    string `json:"required"`
	Status      string `json:"status"`
	Explanation string `json:"explanation"`
}

// Verification is the structured report returned by Verify.
type Verification struct {
	Step     string           `json:"step"`
	Status   string           `json:"status,omitempty"`
	Provided map[string]any   `json:"provided,omitempty"`
	Checks   map[string]Check `json:"checks,omitempty"`
	Passed   bool             `json:"passed"`
	Message  string           `json:"message"`
}

// NotImplementedVerification is the deliberate no-op report for steps
// where verification has no meaning.
func NotImplementedVerification(stepName, reason string) *Verification {
	return &Verification{
		Step:    stepName,
		Status:  StatusNotImplemented,
		Passed:  true,
		Message: reason,
	}
}

// Requirement is the placeholder result of CheckRequirements.
type Requirement struct {
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// Trail carries the parts every design result shares: an echo of the
// inputs that were used and an ordered, append-only list of explanation
// strings mirroring the computation order.
type Trail struct {
	Step     string         `json:"step"`
	Inputs   map[string]any `json:"inputs"`
	Explains []string       `json:"explanations"`
}

// NewTrail creates a Trail echoing the given inputs.
func NewTrail(stepName string, inputs map[string]any) Trail {
	return Trail{Step: stepName, Inputs: inputs}
}

// Explain appends one explanation line. Order is significant.
func (t *Trail) Explain(line string) {
	t.Explains = append(t.Explains, line)
}

func (t *Trail) StepName() string { return t.Step }

func (t *Trail) Explanations() []string { return t.Explains }
