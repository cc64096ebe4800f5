package mockexam

import (
	"fmt"
	"strings"

	"github.com/mbhatt/taxtutor/internal/curriculum"
)

const systemPrompt = `You are writing multiple-choice questions in the style of the IRS Special Enrollment Examination.

Rules:
- Each question has a self-contained stem and exactly four options in A-D order.
- Exactly one option is correct. Distractors must be plausible: common misreadings of the rule, near-miss thresholds, or the right rule applied to the wrong party.
- Spread the questions across the listed mastered topics. Set each question's topic field to the topic it samples, copied verbatim from the list.
- Match SEE conventions: no "all of the above", no negatively worded stems unless testing an exception, amounts and dates concrete.
- Plain text only, no markdown. Option texts must not start with their letter.`

// buildUserMessage constructs the generation request for one exam.
func buildUserMessage(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write exactly %d questions.\n", req.Count)
	b.WriteString("\nMastered topics to sample:\n")
	for i, l := range req.Lessons {
		fmt.Fprintf(&b, "%d. %s (%s; authority: %s)\n", i+1, l.Topic, curriculum.PartDisplayName(l.ExamPart), l.Citation)
	}

	return strings.TrimRight(b.String(), "\n")
}
