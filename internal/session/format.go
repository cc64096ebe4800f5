package session

import (
	"fmt"
	"strings"

	"github.com/mbhatt/taxtutor/internal/curriculum"
	"github.com/mbhatt/taxtutor/internal/evaluate"
	"github.com/mbhatt/taxtutor/internal/scenario"
)

// referencesIntro heads the transcript entry carrying citation links.
const referencesIntro = "Authoritative references for this topic:"

// formatScenario renders a scenario and its question as one tutor message.
func formatScenario(sc *scenario.Scenario) string {
	return sc.Situation + "\n\n" + sc.Question
}

func formatTwist(sc *scenario.Scenario) string {
	return "Well done. Same client, but one fact has changed:\n\n" + formatScenario(sc)
}

func retryText(original *scenario.Scenario) string {
	return "Take another look at the original scenario and try again:\n\n" + formatScenario(original)
}

func noReferencesText(lesson curriculum.Lesson) string {
	return fmt.Sprintf("No references came back for this topic. Start from the study plan citation: %s.", lesson.Citation)
}

func passedRoundText(r *evaluate.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Score: %d/100. You cleared this round.", r.TotalScore)
	writeBullets(&b, "What worked:", r.Feedback.Positive)
	return b.String()
}

func passedTopicText(r *evaluate.Result, lesson curriculum.Lesson) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Score: %d/100. Topic passed: %s.", r.TotalScore, lesson.Topic)
	writeBullets(&b, "What worked:", r.Feedback.Positive)
	return b.String()
}

func failedRoundText(r *evaluate.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Score: %d/100. You need %d to pass.", r.TotalScore, evaluate.PassMark)
	writeBullets(&b, "What worked:", r.Feedback.Positive)
	writeBullets(&b, "What to fix:", r.Feedback.Corrective)
	writeBullets(&b, "Takeaways:", r.Feedback.Takeaways)
	return b.String()
}

func knowledgePointsText(points []string) string {
	var b strings.Builder
	b.WriteString("Study these before you retry:")
	for _, p := range points {
		b.WriteString("\n• ")
		b.WriteString(p)
	}
	return b.String()
}

func modelAnswerText(explanation string) string {
	return "A model answer for comparison:\n\n" + explanation
}

func generationFailedText(err error) string {
	return fmt.Sprintf("Scenario generation failed (%s). Start the lesson again to retry.", errSummary(err))
}

func evaluationFailedText(err error) string {
	return fmt.Sprintf("Grading failed (%s). Your answer was not scored; submit it again.", errSummary(err))
}

func twistFailedText(err error) string {
	return fmt.Sprintf("Could not generate a variation (%s). Keep working the current scenario.", errSummary(err))
}

func examFailedText(err error) string {
	return fmt.Sprintf("Mock exam generation failed (%s). Try again from the home screen.", errSummary(err))
}

func errSummary(err error) string {
	if err == nil {
		return "empty response"
	}
	return err.Error()
}

func writeBullets(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n\n")
	b.WriteString(heading)
	for _, it := range items {
		b.WriteString("\n• ")
		b.WriteString(it)
	}
}
