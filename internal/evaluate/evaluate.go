package evaluate

import (
	"context"

	"github.com/mbhatt/taxtutor/internal/scenario"
)

// PassMark is the total score required to clear a scenario round.
const PassMark = 90

// Rubric holds the six weighted sub-scores. The weights sum to 100:
// 30/30/15/10/10/5 in field order.
type Rubric struct {
	TechnicalAccuracy int // 0-30
	Completeness      int // 0-30
	UseOfAuthority    int // 0-15
	Clarity           int // 0-10
	Terminology       int // 0-10
	Presentation      int // 0-5
}

// Sum returns the weighted total implied by the sub-scores.
func (r Rubric) Sum() int {
	return r.TechnicalAccuracy + r.Completeness + r.UseOfAuthority +
		r.Clarity + r.Terminology + r.Presentation
}

// Feedback holds the graded commentary as three string lists.
type Feedback struct {
	Positive   []string
	Corrective []string
	Takeaways  []string
}

// Result is the outcome of grading one free-text answer.
//
// When TotalScore is at or above PassMark the grader leaves
// KnowledgePoints and DetailedExplanation empty; below the mark both are
// populated so the learner can study before retrying. That contract is
// enforced by the grading prompt, not locally.
type Result struct {
	TotalScore          int
	Scores              Rubric
	Feedback            Feedback
	KnowledgePoints     []string
	DetailedExplanation string
}

// Passed reports whether the result clears the pass mark.
func (r *Result) Passed() bool {
	return r.TotalScore >= PassMark
}

// Input holds everything the evaluator needs to grade an answer.
type Input struct {
	Scenario     *scenario.Scenario
	Answer       string
	PassedTopics []string
}

// Evaluator grades free-text answers against the fixed rubric.
type Evaluator interface {
	// Evaluate grades the answer. Returns a *EvaluationError when the
	// response is absent, empty, or fails shape validation.
	Evaluate(ctx context.Context, input Input) (*Result, error)
}
