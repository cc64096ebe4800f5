// Package mockexam generates and scores multiple-choice mock exams
// sampled across the lessons a learner has passed.
package mockexam

import (
	"slices"
	"strings"
)

// Letter identifies one of the four answer options.
type Letter string

const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"
)

// Letters returns the four option letters in display order.
func Letters() []Letter {
	return []Letter{LetterA, LetterB, LetterC, LetterD}
}

// ParseLetter normalizes raw learner input to an option letter.
// Whitespace is trimmed and case is folded. Returns false for anything
// that is not exactly one of A, B, C, or D.
func ParseLetter(s string) (Letter, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return LetterA, true
	case "B":
		return LetterB, true
	case "C":
		return LetterC, true
	case "D":
		return LetterD, true
	}
	return "", false
}

// index returns the option slot for a letter, or -1.
func (l Letter) index() int {
	switch l {
	case LetterA:
		return 0
	case LetterB:
		return 1
	case LetterC:
		return 2
	case LetterD:
		return 3
	}
	return -1
}

// Question is a single four-option exam question.
type Question struct {
	Text          string
	Options       [4]string // indexed A through D
	CorrectAnswer Letter
	Topic         string
}

// Option returns the text of the option the letter addresses.
func (q Question) Option(l Letter) string {
	i := l.index()
	if i < 0 {
		return ""
	}
	return q.Options[i]
}

// CorrectText returns the text of the correct option.
func (q Question) CorrectText() string {
	return q.Option(q.CorrectAnswer)
}

// Exam is an in-progress mock exam: an ordered question sequence, a
// cursor, and the answers submitted so far (one per answered question,
// same order).
type Exam struct {
	questions []Question
	cursor    int
	answers   []Letter
}

// NewExam starts an exam at the first question.
func NewExam(questions []Question) *Exam {
	return &Exam{questions: slices.Clone(questions)}
}

// Len returns the number of questions.
func (e *Exam) Len() int {
	return len(e.questions)
}

// Cursor returns the index of the question awaiting an answer.
func (e *Exam) Cursor() int {
	return e.cursor
}

// Current returns the question at the cursor, if the exam is not done.
func (e *Exam) Current() (Question, bool) {
	if e.cursor >= len(e.questions) {
		return Question{}, false
	}
	return e.questions[e.cursor], true
}

// Submit records an answer for the current question and advances.
func (e *Exam) Submit(l Letter) {
	if e.cursor >= len(e.questions) {
		return
	}
	e.answers = append(e.answers, l)
	e.cursor++
}

// Done reports whether every question has been answered.
func (e *Exam) Done() bool {
	return e.cursor >= len(e.questions)
}

// Questions returns a copy of the question sequence.
func (e *Exam) Questions() []Question {
	return slices.Clone(e.questions)
}

// Answers returns a copy of the submitted answers.
func (e *Exam) Answers() []Letter {
	return slices.Clone(e.answers)
}

// Results scores the exam as it stands.
func (e *Exam) Results() Summary {
	return Score(e.questions, e.answers)
}
