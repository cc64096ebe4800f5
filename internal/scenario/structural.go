package scenario

import "strings"

// StructuralValidator checks that both fields are present, within length
// limits, and that the question actually poses a question.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(s *Scenario, _ Input) *ValidationError {
	if strings.TrimSpace(s.Situation) == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "scenario_text is empty",
			Retryable: true,
		}
	}
	if len(s.Situation) > 3000 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "scenario_text exceeds 3000 characters",
			Retryable: true,
		}
	}
	if strings.TrimSpace(s.Question) == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text is empty",
			Retryable: true,
		}
	}
	if len(s.Question) > 600 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text exceeds 600 characters",
			Retryable: true,
		}
	}
	if !strings.Contains(s.Question, "?") {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text does not pose a question",
			Retryable: true,
		}
	}
	return nil
}
