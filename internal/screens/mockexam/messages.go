package mockexam

import (
	"time"

	exam "github.com/mbhatt/taxtutor/internal/mockexam"
)

// examReadyMsg carries the generated question batch back to the screen.
type examReadyMsg struct {
	Questions []exam.Question
	Err       error
}

// spinnerTickMsg advances the generation spinner.
type spinnerTickMsg time.Time
