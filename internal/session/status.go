package session

// Status identifies where the learner is in the tutoring loop.
type Status int

const (
	StatusIdle           Status = iota // Lesson selected, nothing in flight
	StatusGenerating                   // Scenario request in flight
	StatusAwaitingAnswer               // Scenario displayed, waiting for the learner
	StatusEvaluating                   // Grading request in flight
	StatusTopicPassed                  // Current lesson passed, ready to advance
	StatusCompleted                    // Every lesson in the plan passed
	StatusGeneratingExam               // Mock-exam batch request in flight
	StatusExamInProgress               // Mock exam underway
	StatusExamCompleted                // Mock exam scored, results shown
)
