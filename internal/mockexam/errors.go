package mockexam

import "fmt"

// GenerationError reports a failed mock-exam generation: the LLM call
// errored, the payload failed to parse, or no usable questions came back.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("mock exam generation: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
