package stats

import (
	"testing"
	"time"

	"github.com/mbhatt/taxtutor/internal/curriculum"
	"github.com/mbhatt/taxtutor/internal/progress"
	"github.com/mbhatt/taxtutor/internal/review"
	"github.com/mbhatt/taxtutor/internal/store"
)

func record(day int, phase curriculum.Phase, status progress.Status, score int) progress.Record {
	return progress.Record{
		Lesson: curriculum.Lesson{Day: day, Phase: phase, Topic: "Topic"},
		Status: status,
		Score:  score,
	}
}

func TestCurriculumCounts(t *testing.T) {
	now := time.Now()
	records := []progress.Record{
		record(1, curriculum.PhaseIndividuals, progress.StatusPassed, 92),
		record(2, curriculum.PhaseIndividuals, progress.StatusPassed, 96),
		record(3, curriculum.PhaseBusinesses, progress.StatusActive, 0),
		record(4, curriculum.PhaseBusinesses, progress.StatusLocked, 0),
		record(5, curriculum.PhaseRepresentation, progress.StatusLocked, 0),
	}
	records[2].Lesson.Topic = "Partnership basis"

	cs := Curriculum(records, now)

	if cs.Total != 5 || cs.Passed != 2 {
		t.Fatalf("Total=%d Passed=%d, want 5 and 2", cs.Total, cs.Passed)
	}
	if cs.AverageScore != 94 {
		t.Errorf("AverageScore = %.1f, want 94", cs.AverageScore)
	}
	if cs.NextDay != 3 || cs.NextTopic != "Partnership basis" {
		t.Errorf("next lesson = day %d %q, want day 3 Partnership basis", cs.NextDay, cs.NextTopic)
	}

	if len(cs.Phases) != 3 {
		t.Fatalf("got %d phases, want 3", len(cs.Phases))
	}
	if cs.Phases[0].Phase != curriculum.PhaseIndividuals || cs.Phases[0].Passed != 2 || cs.Phases[0].Total != 2 {
		t.Errorf("individuals phase = %+v", cs.Phases[0])
	}
	if cs.Phases[1].Passed != 0 || cs.Phases[1].Total != 2 {
		t.Errorf("businesses phase = %+v", cs.Phases[1])
	}
}

func TestCurriculumNothingPassed(t *testing.T) {
	records := []progress.Record{
		record(1, curriculum.PhaseIndividuals, progress.StatusActive, 0),
		record(2, curriculum.PhaseIndividuals, progress.StatusLocked, 0),
	}

	cs := Curriculum(records, time.Now())

	if cs.Passed != 0 || cs.AverageScore != 0 {
		t.Errorf("Passed=%d AverageScore=%.1f, want zeros", cs.Passed, cs.AverageScore)
	}
	if cs.NextDay != 1 {
		t.Errorf("NextDay = %d, want 1", cs.NextDay)
	}
}

func TestCurriculumCountsRefreshers(t *testing.T) {
	now := time.Now()
	stale := now.Add(-time.Duration(review.RefreshAfterDays+3) * 24 * time.Hour)
	fresh := now.Add(-24 * time.Hour)

	old := record(1, curriculum.PhaseIndividuals, progress.StatusPassed, 90)
	old.PassedAt = &stale
	recent := record(2, curriculum.PhaseIndividuals, progress.StatusPassed, 95)
	recent.PassedAt = &fresh

	cs := Curriculum([]progress.Record{old, recent}, now)

	if cs.RefreshersDue != 1 {
		t.Errorf("RefreshersDue = %d, want 1", cs.RefreshersDue)
	}
}

func TestExamsFiltersAndOrders(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	events := []store.SessionEvent{
		{Action: "mock_exam", Timestamp: base.Add(48 * time.Hour), Score: 14, Total: 20, Percent: 70},
		{Action: "lesson_passed", Timestamp: base.Add(24 * time.Hour), Day: 9, Score: 93},
		{Action: "mock_exam", Timestamp: base, Score: 17, Total: 20, Percent: 85},
		{Action: "lesson_start", Timestamp: base, Day: 9},
	}

	es := Exams(events)

	if es.Attempts != 2 {
		t.Fatalf("Attempts = %d, want 2", es.Attempts)
	}
	if es.LastPercent != 70 {
		t.Errorf("LastPercent = %.0f, want 70 (newest first)", es.LastPercent)
	}
	if es.BestPercent != 85 {
		t.Errorf("BestPercent = %.0f, want 85", es.BestPercent)
	}
	if len(es.History) != 2 || es.History[0].Correct != 14 || es.History[1].Correct != 17 {
		t.Errorf("History = %+v", es.History)
	}
}

func TestExamsEmpty(t *testing.T) {
	es := Exams(nil)
	if es.Attempts != 0 || es.BestPercent != 0 || len(es.History) != 0 {
		t.Errorf("want zero-value stats, got %+v", es)
	}
}
