package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mbhatt/taxtutor/internal/progress"
	"github.com/mbhatt/taxtutor/internal/session"
	"github.com/mbhatt/taxtutor/internal/transcript"
	"github.com/mbhatt/taxtutor/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *LessonScreen) View(width, height int) string {
	if s.eng.Status() == session.StatusCompleted {
		return renderCompleted(width)
	}

	var b strings.Builder

	infoLine := s.renderInfoLine(width)
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	input := s.renderInputArea(width)

	// Transcript fills whatever the info line and input area leave over.
	used := lipgloss.Height(infoLine) + 1 + lipgloss.Height(input) + 2
	transcriptHeight := height - used
	if transcriptHeight < 3 {
		transcriptHeight = 3
	}
	b.WriteString(s.renderTranscript(width, transcriptHeight))
	b.WriteString("\n\n")
	b.WriteString(input)

	return b.String()
}

// renderInfoLine shows the lesson identity on the left and the twist
// round on the right.
func (s *LessonScreen) renderInfoLine(width int) string {
	lesson := s.eng.CurrentLesson()

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Day %d · %s", lesson.Day, lesson.Topic))

	round := s.eng.Tracker().CurrentRecord().TwistsCompleted + 1
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Round %d/%d", round, progress.MaxTwists+1))

	line := left
	rightPad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if rightPad > 0 {
		line += strings.Repeat(" ", rightPad) + right
	}
	return line
}

// renderTranscript renders the conversation, keeping only the last
// lines that fit so the newest exchange is always visible.
func (s *LessonScreen) renderTranscript(width, height int) string {
	entries := s.eng.Transcript().Entries()
	if len(entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n  The tutor will open with a scenario.")
	}

	var lines []string
	bodyStyle := lipgloss.NewStyle().Width(max(width-4, 20)).Foreground(theme.Text)
	refStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	for _, e := range entries {
		lines = append(lines, "  "+senderLabel(e.Sender))
		body := bodyStyle.Render(e.Text)
		for _, l := range strings.Split(body, "\n") {
			lines = append(lines, "  "+l)
		}
		for _, r := range e.Refs {
			lines = append(lines, refStyle.Render(fmt.Sprintf("    • %s — %s", r.Title, r.URI)))
		}
		lines = append(lines, "")
	}

	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return strings.Join(lines, "\n")
}

func senderLabel(sender transcript.Sender) string {
	switch sender {
	case transcript.SenderLearner:
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("YOU")
	case transcript.SenderSystem:
		return lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("NOTICE")
	default:
		return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("TUTOR")
	}
}

// renderInputArea picks the bottom section for the current status.
func (s *LessonScreen) renderInputArea(width int) string {
	switch s.eng.Status() {
	case session.StatusAwaitingAnswer:
		return "  " + strings.ReplaceAll(s.answer.View(), "\n", "\n  ")

	case session.StatusGenerating, session.StatusEvaluating:
		frame := spinnerFrames[s.spinFrame%len(spinnerFrames)]
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %s %s", frame, s.busyText))

	case session.StatusTopicPassed:
		return s.renderPassedBanner(width)

	default:
		// Idle here means an earlier generation failed.
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  Press Enter to request a new scenario.")
	}
}

func (s *LessonScreen) renderPassedBanner(width int) string {
	lesson := s.eng.CurrentLesson()

	banner := lipgloss.NewStyle().
		Foreground(theme.Success).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Success).
		Padding(0, 2).
		Render(fmt.Sprintf("✔ TOPIC PASSED — %s", lesson.Topic))

	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Ctrl+N for the next topic · Esc for the menu")

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, banner) +
		"\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, hint)
}

func renderCompleted(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render("Curriculum complete!"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("Every topic in the 60-day plan is passed.\nKeep drilling mock exams until test day."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Esc returns to the menu."))

	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
