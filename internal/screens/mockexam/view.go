package mockexam

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	exam "github.com/mbhatt/taxtutor/internal/mockexam"
	"github.com/mbhatt/taxtutor/internal/session"
	"github.com/mbhatt/taxtutor/internal/transcript"
	"github.com/mbhatt/taxtutor/internal/ui/components"
	"github.com/mbhatt/taxtutor/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *MockExamScreen) View(width, height int) string {
	switch s.eng.Status() {
	case session.StatusGeneratingExam:
		return s.renderGenerating(width)
	case session.StatusExamInProgress:
		return s.renderExam(width, height)
	case session.StatusExamCompleted:
		return s.renderResults(width, height)
	}
	if s.lockedMsg != "" {
		return renderLocked(s.lockedMsg, width)
	}
	return s.renderFailed(width)
}

func (s *MockExamScreen) renderGenerating(width int) string {
	frame := spinnerFrames[s.spinFrame%len(spinnerFrames)]
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\n\n\n%s Assembling your mock exam...", frame))
}

func renderLocked(msg string, width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render("Mock exam locked"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(msg))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Esc returns to the menu."))
	return b.String()
}

// renderFailed shows the generation failure recorded by the engine.
func (s *MockExamScreen) renderFailed(width int) string {
	reason := "The exam could not be generated."
	if last, ok := s.eng.Transcript().Last(); ok && last.Sender == transcript.SenderSystem {
		reason = last.Text
	}

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render("Generation failed"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(reason))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Enter retries · Esc returns to the menu."))
	return b.String()
}

func (s *MockExamScreen) renderExam(width, height int) string {
	e := s.eng.Exam()
	if e == nil {
		return ""
	}

	var b strings.Builder

	// Position line and progress bar.
	position := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", e.Cursor()+1, e.Len()))
	b.WriteString(position)
	b.WriteString("\n")

	barWidth := width - 8
	if barWidth > 60 {
		barWidth = 60
	}
	bar := components.NewProgressBar("", float64(e.Cursor())/float64(e.Len()), false, barWidth)
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	if q, ok := e.Current(); ok {
		topic := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  Topic: %s", q.Topic))
		b.WriteString(topic)
		b.WriteString("\n\n")
	}

	// The selector owns question text and options.
	choice := s.mc.View()
	wrapped := lipgloss.NewStyle().Width(max(width-4, 20)).Render(choice)
	for _, line := range strings.Split(wrapped, "\n") {
		b.WriteString("  " + line + "\n")
	}

	return b.String()
}

func (s *MockExamScreen) renderResults(width, height int) string {
	summary := s.eng.ExamSummary()
	if summary == nil {
		return ""
	}

	lines := buildResultLines(summary, width)

	// Clamp the scroll window to the content.
	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}

	end := s.scroll + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[s.scroll:end], "\n")
}

// buildResultLines renders the score card and the missed-question review
// as a flat line list so the viewport can scroll it.
func buildResultLines(summary *exam.Summary, width int) []string {
	var lines []string

	verdictColor := theme.Success
	verdict := "On track. Keep this pace to test day."
	switch {
	case summary.Percent < 50:
		verdictColor = theme.Error
		verdict = "Below the line. Revisit the missed topics before drilling again."
	case summary.Percent < 70:
		verdictColor = theme.Accent
		verdict = "Close. The review below shows where the points went."
	}

	score := lipgloss.NewStyle().
		Foreground(verdictColor).
		Bold(true).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(verdictColor).
		Padding(0, 2).
		Render(fmt.Sprintf("SCORE  %d/%d  (%.1f%%)", summary.Correct, summary.Total, summary.Percent))

	lines = append(lines, "")
	lines = append(lines, strings.Split(lipgloss.PlaceHorizontal(width, lipgloss.Center, score), "\n")...)
	lines = append(lines, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(verdict))
	lines = append(lines, "")

	if len(summary.Missed) == 0 {
		lines = append(lines, lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Render("Perfect run — nothing to review."))
	} else {
		header := lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render(fmt.Sprintf("  MISSED QUESTIONS (%d)", len(summary.Missed)))
		lines = append(lines, header, "")

		for _, m := range summary.Missed {
			lines = append(lines, missedQuestionLines(m, width)...)
		}
	}

	done := components.NewButton("BACK TO MENU", true, nil)
	lines = append(lines, "")
	lines = append(lines, strings.Split(lipgloss.PlaceHorizontal(width, lipgloss.Center, done.View()), "\n")...)
	return lines
}

// missedQuestionLines reuses the selector's reveal rendering: correct
// option in green, the learner's wrong pick in red.
func missedQuestionLines(m exam.MissedQuestion, width int) []string {
	chosen := -1
	if letter, ok := exam.ParseLetter(m.LearnerAnswer); ok {
		chosen = letterIndex(letter)
	}

	mc := components.MultiChoice{
		Question:     fmt.Sprintf("Q%d. %s", m.Number, m.Question.Text),
		Options:      m.Question.Options[:],
		CorrectIndex: letterIndex(m.CorrectLetter),
		Submitted:    true,
		ChosenIndex:  chosen,
	}

	var lines []string
	wrapped := lipgloss.NewStyle().Width(max(width-6, 20)).Render(mc.View())
	for _, line := range strings.Split(wrapped, "\n") {
		lines = append(lines, "  "+line)
	}
	if chosen < 0 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("    (no answer submitted)"))
	}
	if m.Question.Topic != "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("    Topic: %s", m.Question.Topic)))
	}
	lines = append(lines, "")
	return lines
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
