package lesson

import (
	"time"

	"github.com/mbhatt/taxtutor/internal/evaluate"
	"github.com/mbhatt/taxtutor/internal/refs"
	"github.com/mbhatt/taxtutor/internal/scenario"
)

// scenarioResolvedMsg is sent when scenario generation and the
// best-effort reference lookup both finish.
type scenarioResolvedMsg struct {
	Scenario *scenario.Scenario
	Refs     []refs.Reference
	Err      error
}

// evaluationResolvedMsg is sent when grading finishes.
type evaluationResolvedMsg struct {
	Result *evaluate.Result
	Err    error
}

// twistResolvedMsg is sent when twist generation finishes.
type twistResolvedMsg struct {
	Scenario *scenario.Scenario
	Err      error
}

// spinnerTickMsg is sent at short intervals to animate the busy indicator.
type spinnerTickMsg time.Time
