package mockexam

import "math"

// NoAnswer marks a question position with no submitted answer.
const NoAnswer = "no answer"

const (
	minQuestions = 5
	maxQuestions = 15
)

// QuestionCount returns the exam size for a given passed-lesson count:
// half the passed lessons, clamped to [5, 15].
func QuestionCount(passedCount int) int {
	n := passedCount / 2
	if n < minQuestions {
		return minQuestions
	}
	if n > maxQuestions {
		return maxQuestions
	}
	return n
}

// MissedQuestion records one incorrectly answered position for review.
type MissedQuestion struct {
	Number        int // 1-based position in the exam
	Question      Question
	LearnerAnswer string // the submitted letter, or NoAnswer
	CorrectLetter Letter
	CorrectText   string
}

// Summary is the scored outcome of a completed exam.
type Summary struct {
	Correct int
	Total   int
	Percent float64
	Missed  []MissedQuestion
}

// Score grades submitted answers against the question sequence. Percent
// is rounded to one decimal place and zero when there are no questions.
// Missed positions appear in original question order; positions without
// a submitted answer carry the NoAnswer sentinel.
func Score(questions []Question, answers []Letter) Summary {
	s := Summary{Total: len(questions)}

	for i, q := range questions {
		var learner string
		answered := i < len(answers)
		if answered {
			learner = string(answers[i])
		} else {
			learner = NoAnswer
		}

		if answered && answers[i] == q.CorrectAnswer {
			s.Correct++
			continue
		}

		s.Missed = append(s.Missed, MissedQuestion{
			Number:        i + 1,
			Question:      q,
			LearnerAnswer: learner,
			CorrectLetter: q.CorrectAnswer,
			CorrectText:   q.CorrectText(),
		})
	}

	if s.Total > 0 {
		s.Percent = math.Round(float64(s.Correct)/float64(s.Total)*1000) / 10
	}
	return s
}
