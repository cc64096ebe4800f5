package session

// ValidationError reports a rejected user action: input outside the
// accepted set, or an action the current state does not allow. The
// engine is never mutated when one is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
