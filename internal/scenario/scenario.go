package scenario

import (
	"context"

	"github.com/mbhatt/taxtutor/internal/curriculum"
)

// Scenario is a generated client fact pattern with its study question.
// Scenarios are ephemeral: they live only inside the active session and
// are replaced wholesale when a twist is generated.
type Scenario struct {
	// Situation is the client fact pattern shown to the learner.
	Situation string

	// Question is the single focused question the learner must answer.
	Question string
}

// Input holds all context needed to generate a scenario.
type Input struct {
	// Lesson is the study topic the scenario must exercise.
	Lesson curriculum.Lesson

	// PassedTopics are topics the learner has already passed. Included in
	// the prompt so scenarios can assume mastered material.
	PassedTopics []string

	// Previous is the scenario being twisted. Nil for first generation.
	Previous *Scenario

	// Twist requests a variation of Previous: same client, one material
	// fact changed so the correct analysis changes.
	Twist bool
}

// Generator produces tax scenarios using an LLM provider.
type Generator interface {
	// Generate produces a single scenario for the given input context.
	// Returns a validated Scenario or a *GenerationError.
	Generate(ctx context.Context, input Input) (*Scenario, error)
}
