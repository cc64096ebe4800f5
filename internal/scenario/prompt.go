package scenario

import (
	"fmt"
	"strings"

	"github.com/mbhatt/taxtutor/internal/curriculum"
)

const systemPrompt = `You are an experienced Enrolled Agent exam tutor creating practice scenarios for candidates preparing for the IRS Special Enrollment Examination.

Rules:
- Generate a single realistic client scenario for the given study topic: a named client, concrete dollar amounts, dates, and filing facts.
- The scenario must be answerable using the cited authority for the topic. Do not require facts outside the scenario.
- Ask exactly one focused question. The candidate answers in free text and is graded on technical accuracy, completeness, and use of authority.
- Write plain text. No markdown, no bullet lists, no headers.
- Use current-law concepts as tested on the SEE. Dollar amounts should be plausible, not round placeholders.
- You may assume the candidate has mastered the listed prior topics and build on them.
- When a previous scenario and the twist instruction are given, keep the same client and overall fact pattern but change one material fact so that the correct analysis changes. Do not reuse the previous question verbatim.`

// buildUserMessage constructs the user message from Input and Config limits.
func buildUserMessage(input Input, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Lesson.Topic)
	fmt.Fprintf(&b, "Description: %s\n", input.Lesson.Description)
	fmt.Fprintf(&b, "Exam part: %s\n", curriculum.PartDisplayName(input.Lesson.ExamPart))
	fmt.Fprintf(&b, "Authority: %s\n", input.Lesson.Citation)

	b.WriteString("\nTopics already mastered by this candidate:\n")
	b.WriteString(buildMasteryContext(input.PassedTopics, cfg.MaxPassedTopics))

	if input.Twist && input.Previous != nil {
		b.WriteString("\n\nPrevious scenario:\n")
		b.WriteString(input.Previous.Situation)
		b.WriteString("\n\nPrevious question:\n")
		b.WriteString(input.Previous.Question)
		b.WriteString("\n\nThe candidate answered the previous question correctly. Introduce a twist: change one material fact and ask how the analysis changes.")
	}

	return b.String()
}

// buildMasteryContext formats passed topics for the prompt, keeping only
// the most recent entries when the list exceeds the limit.
func buildMasteryContext(topics []string, max int) string {
	if len(topics) == 0 {
		return "None yet"
	}
	if max > 0 && len(topics) > max {
		topics = topics[len(topics)-max:]
	}
	var b strings.Builder
	for i, tp := range topics {
		fmt.Fprintf(&b, "%d. %s\n", i+1, tp)
	}
	return strings.TrimRight(b.String(), "\n")
}
