package step

import "fmt"

// InputError reports an invalid or missing caller-supplied parameter.
type InputError struct {
	Param   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input parameter %q: %s", e.Param, e.Message)
}

// NewInputError creates an InputError for the named parameter.
func NewInputError(param, message string) *InputError {
	return &InputError{Param: param, Message: message}
}

// DesignError wraps any failure raised during a Design call, tagged with
// the step that raised it.
type DesignError struct {
	Step    string
	Message string
	Err     error
}

func (e *DesignError) Error() string {
	return fmt.Sprintf("design error in %s: %s", e.Step, e.Message)
}

func (e *DesignError) Unwrap() error { return e.Err }

// WrapDesign tags an error with step context. The original message is
// preserved so callers still see the root cause.
func WrapDesign(step string, err error) *DesignError {
	return &DesignError{Step: step, Message: err.Error(), Err: err}
}

// VerificationError wraps any failure raised during a Verify call.
type VerificationError struct {
	Step    string
	Message string
	Err     error
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("verification error in %s: %s", e.Step, e.Message)
}

func (e *VerificationError) Unwrap() error { return e.Err }

// WrapVerification tags an error with step context, preserving the cause.
func WrapVerification(step string, err error) *VerificationError {
	return &VerificationError{Step: step, Message: err.Error(), Err: err}
}
