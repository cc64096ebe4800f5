package scenario

import "fmt"

// Validator checks a generated scenario for usability.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, e.g. "structural".
	Name() string

	// Validate checks the scenario and returns nil if it passes.
	Validate(s *Scenario, input Input) *ValidationError
}

// ValidationError describes why a scenario failed validation.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
