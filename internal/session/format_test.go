package session

import (
	"strings"
	"testing"

	"github.com/mbhatt/taxtutor/internal/curriculum"
	"github.com/mbhatt/taxtutor/internal/evaluate"
	"github.com/mbhatt/taxtutor/internal/scenario"
)

func TestFormatScenario(t *testing.T) {
	sc := &scenario.Scenario{Situation: "Jane is single.", Question: "What status applies?"}

	got := formatScenario(sc)
	want := "Jane is single.\n\nWhat status applies?"
	if got != want {
		t.Errorf("formatScenario = %q, want %q", got, want)
	}
}

func TestFailedRoundText_IncludesAllSections(t *testing.T) {
	r := &evaluate.Result{
		TotalScore: 72,
		Feedback: evaluate.Feedback{
			Positive:   []string{"Identified the right form"},
			Corrective: []string{"Cite the authority"},
			Takeaways:  []string{"Circular 230 governs practice"},
		},
	}

	got := failedRoundText(r)
	for _, want := range []string{
		"Score: 72/100",
		"You need 90",
		"What worked:",
		"Identified the right form",
		"What to fix:",
		"Cite the authority",
		"Takeaways:",
		"Circular 230 governs practice",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("failedRoundText missing %q:\n%s", want, got)
		}
	}
}

func TestFailedRoundText_SkipsEmptySections(t *testing.T) {
	r := &evaluate.Result{TotalScore: 40}

	got := failedRoundText(r)
	if strings.Contains(got, "What worked:") || strings.Contains(got, "What to fix:") {
		t.Errorf("empty feedback lists should be omitted:\n%s", got)
	}
}

func TestPassedTopicText(t *testing.T) {
	lesson := curriculum.Lesson{Topic: "Estimated tax payments"}
	r := &evaluate.Result{TotalScore: 95}

	got := passedTopicText(r, lesson)
	if !strings.Contains(got, "Score: 95/100") || !strings.Contains(got, "Estimated tax payments") {
		t.Errorf("passedTopicText = %q", got)
	}
}

func TestKnowledgePointsText(t *testing.T) {
	got := knowledgePointsText([]string{"first", "second"})

	if strings.Count(got, "•") != 2 {
		t.Errorf("expected two bullets:\n%s", got)
	}
}

func TestErrSummary_NilError(t *testing.T) {
	if got := errSummary(nil); got != "empty response" {
		t.Errorf("errSummary(nil) = %q", got)
	}
}
