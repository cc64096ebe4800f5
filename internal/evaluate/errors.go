package evaluate

import "fmt"

// EvaluationError reports a failed grading call: the LLM call errored,
// the payload failed to parse, or the scores were unusable.
type EvaluationError struct {
	Err error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation: %v", e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
