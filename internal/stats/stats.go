// Package stats aggregates persisted study data into the figures shown
// by the stats command: curriculum completion, score averages, and
// mock-exam history. Aggregation is pure so it can be tested without a
// database.
package stats

import (
	"time"

	"github.com/mbhatt/taxtutor/internal/curriculum"
	"github.com/mbhatt/taxtutor/internal/progress"
	"github.com/mbhatt/taxtutor/internal/review"
	"github.com/mbhatt/taxtutor/internal/store"
)

// PhaseProgress counts passed lessons within one exam part.
type PhaseProgress struct {
	Phase  curriculum.Phase
	Passed int
	Total  int
}

// CurriculumStats summarizes progress through the study plan.
type CurriculumStats struct {
	Total         int
	Passed        int
	AverageScore  float64 // mean score across passed lessons, 0 when none passed
	RefreshersDue int
	NextDay       int    // day number of the active lesson, 0 once complete
	NextTopic     string
	Phases        []PhaseProgress
}

// Curriculum rolls tracker records up into curriculum statistics.
func Curriculum(records []progress.Record, now time.Time) CurriculumStats {
	cs := CurriculumStats{Total: len(records)}

	scoreSum := 0
	for _, r := range records {
		switch r.Status {
		case progress.StatusPassed:
			cs.Passed++
			scoreSum += r.Score
		case progress.StatusActive:
			cs.NextDay = r.Lesson.Day
			cs.NextTopic = r.Lesson.Topic
		}
	}
	if cs.Passed > 0 {
		cs.AverageScore = float64(scoreSum) / float64(cs.Passed)
	}
	cs.RefreshersDue = len(review.Due(records, now))

	for _, p := range curriculum.AllPhases() {
		pp := PhaseProgress{Phase: p}
		for _, r := range records {
			if r.Lesson.Phase != p {
				continue
			}
			pp.Total++
			if r.Status == progress.StatusPassed {
				pp.Passed++
			}
		}
		if pp.Total > 0 {
			cs.Phases = append(cs.Phases, pp)
		}
	}
	return cs
}

// ExamResult is one completed mock exam.
type ExamResult struct {
	When    time.Time
	Correct int
	Total   int
	Percent float64
}

// ExamStats summarizes completed mock exams.
type ExamStats struct {
	Attempts    int
	BestPercent float64
	LastPercent float64 // most recent attempt
	History     []ExamResult
}

// Exams filters session events down to completed mock exams. Events
// arrive newest first from the store and keep that order.
func Exams(events []store.SessionEvent) ExamStats {
	var es ExamStats
	for _, e := range events {
		if e.Action != "mock_exam" {
			continue
		}
		es.Attempts++
		if es.Attempts == 1 {
			es.LastPercent = e.Percent
		}
		if e.Percent > es.BestPercent {
			es.BestPercent = e.Percent
		}
		es.History = append(es.History, ExamResult{
			When:    e.Timestamp,
			Correct: e.Score,
			Total:   e.Total,
			Percent: e.Percent,
		})
	}
	return es
}
