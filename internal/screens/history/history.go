package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/mbhatt/taxtutor/internal/router"
	"github.com/mbhatt/taxtutor/internal/screen"
	"github.com/mbhatt/taxtutor/internal/store"
	"github.com/mbhatt/taxtutor/internal/ui/layout"
	"github.com/mbhatt/taxtutor/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []sessionGroup
	Err      error
}

// sessionGroup is one sitting of the app: every event recorded under the
// same session ID, oldest first.
type sessionGroup struct {
	ID     string
	Events []store.SessionEvent
	Passed int
	Exams  int
}

// HistoryScreen displays past study sessions and what happened in them.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []sessionGroup
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		events, err := s.eventRepo.QuerySessionEvents(context.Background(), store.QueryOpts{Limit: 200})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Sessions: groupBySession(events)}
	}
}

// groupBySession buckets events by session ID. Input is newest first, so
// groups come out newest session first; within a group events are flipped
// back to chronological order.
func groupBySession(events []store.SessionEvent) []sessionGroup {
	index := make(map[string]int)
	var groups []sessionGroup

	for _, ev := range events {
		i, ok := index[ev.SessionID]
		if !ok {
			i = len(groups)
			index[ev.SessionID] = i
			groups = append(groups, sessionGroup{ID: ev.SessionID})
		}
		groups[i].Events = append(groups[i].Events, ev)
		switch ev.Action {
		case "lesson_passed":
			groups[i].Passed++
		case "mock_exam":
			groups[i].Exams++
		}
	}

	for i := range groups {
		evs := groups[i].Events
		for a, b := 0, len(evs)-1; a < b; a, b = a+1, b-1 {
			evs[a], evs[b] = evs[b], evs[a]
		}
	}
	return groups
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No study history yet. Start tutoring!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s", prefix, sessionDate(sess), sessionSummary(sess))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, ev := range sess.Events {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					eventStyle(ev).Render("    "+eventLine(ev))))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func sessionDate(sess sessionGroup) string {
	if len(sess.Events) == 0 {
		return "unknown"
	}
	return sess.Events[0].Timestamp.Local().Format("Jan 02, 2006 15:04")
}

func sessionSummary(sess sessionGroup) string {
	parts := []string{fmt.Sprintf("%d events", len(sess.Events))}
	if sess.Passed > 0 {
		parts = append(parts, fmt.Sprintf("%d passed", sess.Passed))
	}
	if sess.Exams > 0 {
		label := "mock exam"
		if sess.Exams > 1 {
			label = "mock exams"
		}
		parts = append(parts, fmt.Sprintf("%d %s", sess.Exams, label))
	}
	return strings.Join(parts, " · ")
}

func eventLine(ev store.SessionEvent) string {
	switch ev.Action {
	case "lesson_start":
		return fmt.Sprintf("▸ Started Day %d — %s", ev.Day, ev.Topic)
	case "lesson_passed":
		return fmt.Sprintf("✔ Passed Day %d — %s (%d/100)", ev.Day, ev.Topic, ev.Score)
	case "mock_exam":
		return fmt.Sprintf("◆ Mock exam %d/%d (%.0f%%)", ev.Score, ev.Total, ev.Percent)
	default:
		return "▸ " + ev.Action
	}
}

func eventStyle(ev store.SessionEvent) lipgloss.Style {
	switch ev.Action {
	case "lesson_passed":
		return lipgloss.NewStyle().Foreground(theme.Success)
	case "mock_exam":
		return lipgloss.NewStyle().Foreground(theme.Accent)
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim)
	}
}
