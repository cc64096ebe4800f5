package curriculum

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	curr "github.com/mbhatt/taxtutor/internal/curriculum"
	"github.com/mbhatt/taxtutor/internal/evaluate"
	"github.com/mbhatt/taxtutor/internal/progress"
	"github.com/mbhatt/taxtutor/internal/refs"
	"github.com/mbhatt/taxtutor/internal/review"
	"github.com/mbhatt/taxtutor/internal/router"
	"github.com/mbhatt/taxtutor/internal/scenario"
	"github.com/mbhatt/taxtutor/internal/screen"
	lessonscreen "github.com/mbhatt/taxtutor/internal/screens/lesson"
	"github.com/mbhatt/taxtutor/internal/screens/placeholder"
	"github.com/mbhatt/taxtutor/internal/session"
	"github.com/mbhatt/taxtutor/internal/ui/layout"
	"github.com/mbhatt/taxtutor/internal/ui/theme"
)

type rowKind int

const (
	rowPhaseHeader rowKind = iota
	rowLesson
)

// row is one display line; lesson rows keep only the tracker index so
// status and score stay live between renders.
type row struct {
	kind  rowKind
	phase curr.Phase
	index int
}

// CurriculumScreen displays the 60-day study plan grouped by phase.
type CurriculumScreen struct {
	eng       *session.Engine
	generator scenario.Generator
	evaluator evaluate.Evaluator
	lookup    refs.Lookup

	rows         []row
	cursor       int
	scrollOffset int
	errMsg       string
}

var _ screen.Screen = (*CurriculumScreen)(nil)
var _ screen.KeyHintProvider = (*CurriculumScreen)(nil)

// New creates a curriculum screen over the engine's tracker. The cursor
// starts on the active lesson.
func New(eng *session.Engine, generator scenario.Generator, evaluator evaluate.Evaluator, lookup refs.Lookup) *CurriculumScreen {
	var rows []row
	var lastPhase curr.Phase
	for i, rec := range eng.Tracker().Records() {
		if i == 0 || rec.Lesson.Phase != lastPhase {
			rows = append(rows, row{kind: rowPhaseHeader, phase: rec.Lesson.Phase})
			lastPhase = rec.Lesson.Phase
		}
		rows = append(rows, row{kind: rowLesson, phase: rec.Lesson.Phase, index: i})
	}

	s := &CurriculumScreen{
		eng:       eng,
		generator: generator,
		evaluator: evaluator,
		lookup:    lookup,
		rows:      rows,
	}

	current := eng.Tracker().Current()
	for i, r := range s.rows {
		if r.kind == rowLesson && r.index == current {
			s.cursor = i
			break
		}
	}

	return s
}

func (s *CurriculumScreen) Init() tea.Cmd {
	return nil
}

func (s *CurriculumScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		s.errMsg = ""
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextPhase()
		case "shift+tab":
			s.prevPhase()
		case "enter":
			return s, s.openLesson()
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *CurriculumScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return ""
	}

	listHeight := height
	if s.errMsg != "" {
		listHeight -= 2
	}
	s.adjustScroll(listHeight)

	records := s.eng.Tracker().Records()
	now := time.Now()

	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= listHeight {
			break
		}

		switch r.kind {
		case rowPhaseHeader:
			lines = append(lines, renderPhaseHeader(r.phase, width))
		case rowLesson:
			lines = append(lines, renderLessonRow(records[r.index], i == s.cursor, now, width))
		}
		visible++
	}

	out := strings.Join(lines, "\n")
	if s.errMsg != "" {
		out += "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("  "+s.errMsg)
	}
	return out
}

func (s *CurriculumScreen) Title() string {
	return "Curriculum"
}

// KeyHints returns the key binding hints for the footer.
func (s *CurriculumScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Phase"},
		{Key: "Enter", Description: "Study"},
		{Key: "Esc", Description: "Back"},
	}
}

// moveCursor moves the cursor by delta, skipping phase headers.
func (s *CurriculumScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowLesson {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextPhase jumps the cursor to the first lesson of the next phase.
func (s *CurriculumScreen) nextPhase() {
	currentPhase := s.rows[s.cursor].phase
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowLesson && s.rows[i].phase != currentPhase {
			s.cursor = i
			return
		}
	}
}

// prevPhase jumps the cursor to the first lesson of the previous phase.
func (s *CurriculumScreen) prevPhase() {
	currentPhase := s.rows[s.cursor].phase

	prevStart := -1
	var prevPhase curr.Phase
	for i := s.cursor - 1; i >= 0; i-- {
		if s.rows[i].kind == rowLesson && s.rows[i].phase != currentPhase {
			prevPhase = s.rows[i].phase
			prevStart = i
			break
		}
	}
	if prevStart < 0 {
		return
	}

	for i := prevStart; i >= 0; i-- {
		if s.rows[i].kind != rowLesson || s.rows[i].phase != prevPhase {
			s.cursor = i + 1
			return
		}
	}
	s.cursor = 0
	if s.rows[0].kind != rowLesson {
		s.moveCursor(1)
	}
}

// adjustScroll ensures the cursor is visible within the viewport.
func (s *CurriculumScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	// Show the phase header above the cursor if possible.
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowPhaseHeader {
		headerRow--
	}

	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

// openLesson activates the lesson under the cursor and pushes the
// tutoring screen for it.
func (s *CurriculumScreen) openLesson() tea.Cmd {
	r := s.rows[s.cursor]
	if r.kind != rowLesson {
		return nil
	}

	if err := s.eng.SelectLesson(r.index); err != nil {
		s.errMsg = err.Error()
		return nil
	}

	if s.generator == nil || s.evaluator == nil {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: placeholder.New("Lesson")}
		}
	}
	eng, generator, evaluator, lookup := s.eng, s.generator, s.evaluator, s.lookup
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: lessonscreen.New(eng, generator, evaluator, lookup),
		}
	}
}

// renderPhaseHeader renders a phase section header.
func renderPhaseHeader(phase curr.Phase, width int) string {
	name := strings.ToUpper(curr.PhaseDisplayName(phase))
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(name)
}

// renderLessonRow renders a single lesson line.
func renderLessonRow(rec progress.Record, selected bool, now time.Time, width int) string {
	icon := rec.Status.Icon()
	day := fmt.Sprintf("Day %2d", rec.Lesson.Day)

	// Right-hand column: score for passed lessons, lifecycle label
	// otherwise, with a refresher badge when the pass has gone stale.
	status := rec.Status.Label()
	if rec.Status == progress.StatusPassed {
		status = fmt.Sprintf("%d/100", rec.Score)
		if review.IsDue(rec, now) {
			status = "⚡ " + status
		}
	}

	padding := 4
	iconWidth := 3
	dayWidth := 7
	statusWidth := 10
	spacing := 6
	topicWidth := width - padding - iconWidth - dayWidth - statusWidth - spacing
	if topicWidth < 10 {
		topicWidth = 10
	}

	topic := rec.Lesson.Topic
	if len(topic) > topicWidth {
		topic = topic[:topicWidth-1] + "…"
	}

	var topicStyle, dayStyle, statusStyle lipgloss.Style
	if selected {
		topicStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		dayStyle = lipgloss.NewStyle().Foreground(theme.Primary)
		statusStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	} else {
		switch rec.Status {
		case progress.StatusPassed:
			topicStyle = lipgloss.NewStyle().Foreground(theme.Success)
			dayStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			statusStyle = lipgloss.NewStyle().Foreground(theme.Success)
		case progress.StatusActive:
			topicStyle = lipgloss.NewStyle().Foreground(theme.Text)
			dayStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			statusStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
		default:
			topicStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			dayStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			statusStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	topicPadded := fmt.Sprintf("%-*s", topicWidth, topic)
	return fmt.Sprintf("  %s%s %s  %s  %s",
		cursor,
		icon,
		dayStyle.Render(day),
		topicStyle.Render(topicPadded),
		statusStyle.Render(fmt.Sprintf("%9s", status)),
	)
}
