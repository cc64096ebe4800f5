package scenario

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mbhatt/taxtutor/internal/curriculum"
)

func testLesson() curriculum.Lesson {
	return curriculum.Lesson{
		Week: 1, Day: 2,
		Phase:       curriculum.PhaseIndividuals,
		Topic:       "Filing status",
		Description: "The five filing statuses, qualifying rules, and year-of-change situations.",
		Citation:    "IRC §2; Pub 501",
		ExamPart:    curriculum.Part1,
	}
}

func TestBuildUserMessage_MinimalContext(t *testing.T) {
	input := Input{Lesson: testLesson()}
	msg := buildUserMessage(input, DefaultConfig())

	if !strings.Contains(msg, "Topic: Filing status") {
		t.Error("missing topic")
	}
	if !strings.Contains(msg, "Authority: IRC §2; Pub 501") {
		t.Error("missing citation anchor")
	}
	if !strings.Contains(msg, "Exam part: SEE Part 1: Individuals") {
		t.Error("missing exam part")
	}
	if !strings.Contains(msg, "Topics already mastered by this candidate:\nNone yet") {
		t.Error("expected 'None yet' for empty mastery context")
	}
	if strings.Contains(msg, "Previous scenario:") {
		t.Error("non-twist prompt must not include a previous scenario")
	}
}

func TestBuildUserMessage_MasteryContext(t *testing.T) {
	input := Input{
		Lesson:       testLesson(),
		PassedTopics: []string{"Filing requirements and due dates", "Dependents"},
	}
	msg := buildUserMessage(input, DefaultConfig())

	for _, topic := range input.PassedTopics {
		if !strings.Contains(msg, topic) {
			t.Errorf("expected message to contain %q", topic)
		}
	}
}

func TestBuildUserMessage_TruncatesMasteryContext(t *testing.T) {
	topics := make([]string, 20)
	for i := range topics {
		topics[i] = fmt.Sprintf("Topic number %02d", i)
	}
	input := Input{Lesson: testLesson(), PassedTopics: topics}
	cfg := DefaultConfig() // MaxPassedTopics = 15
	msg := buildUserMessage(input, cfg)

	// First 5 should be dropped (20 - 15 = 5).
	for _, topic := range topics[:5] {
		if strings.Contains(msg, topic) {
			t.Errorf("expected old topic %q to be truncated", topic)
		}
	}
	for _, topic := range topics[5:] {
		if !strings.Contains(msg, topic) {
			t.Errorf("expected recent topic %q to be present", topic)
		}
	}
}

func TestBuildUserMessage_Twist(t *testing.T) {
	prev := &Scenario{
		Situation: "Maria files as head of household and claims her son.",
		Question:  "Does Maria qualify for head of household status?",
	}
	input := Input{Lesson: testLesson(), Previous: prev, Twist: true}
	msg := buildUserMessage(input, DefaultConfig())

	if !strings.Contains(msg, prev.Situation) {
		t.Error("twist prompt must include the previous scenario text")
	}
	if !strings.Contains(msg, prev.Question) {
		t.Error("twist prompt must include the previous question")
	}
	if !strings.Contains(msg, "Introduce a twist") {
		t.Error("twist prompt must include the twist instruction")
	}
}

func TestBuildUserMessage_TwistFlagWithoutPrevious(t *testing.T) {
	// A twist without a previous scenario degrades to a plain generation.
	input := Input{Lesson: testLesson(), Twist: true}
	msg := buildUserMessage(input, DefaultConfig())
	if strings.Contains(msg, "Previous scenario:") {
		t.Error("twist without previous must not emit a previous-scenario block")
	}
}
