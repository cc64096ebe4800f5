package scenario

import "fmt"

// GenerationError reports a failed scenario generation: the LLM call
// errored, the payload failed to parse, or a validator rejected it.
type GenerationError struct {
	Op  string // "generate" or "twist"
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("scenario %s: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
