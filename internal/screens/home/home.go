package home

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mbhatt/taxtutor/internal/evaluate"
	"github.com/mbhatt/taxtutor/internal/mockexam"
	"github.com/mbhatt/taxtutor/internal/refs"
	"github.com/mbhatt/taxtutor/internal/review"
	"github.com/mbhatt/taxtutor/internal/router"
	"github.com/mbhatt/taxtutor/internal/scenario"
	"github.com/mbhatt/taxtutor/internal/screen"
	curriculumscreen "github.com/mbhatt/taxtutor/internal/screens/curriculum"
	"github.com/mbhatt/taxtutor/internal/screens/history"
	lessonscreen "github.com/mbhatt/taxtutor/internal/screens/lesson"
	mockexamscreen "github.com/mbhatt/taxtutor/internal/screens/mockexam"
	"github.com/mbhatt/taxtutor/internal/screens/placeholder"
	"github.com/mbhatt/taxtutor/internal/session"
	"github.com/mbhatt/taxtutor/internal/store"
	"github.com/mbhatt/taxtutor/internal/ui/components"
)

// menu item positions, used for the disabled map
const (
	itemStartTutoring = iota
	itemCurriculum
	itemMockExam
	itemHistory
	itemExit
)

// HomeScreen is the main dashboard of the application.
type HomeScreen struct {
	eng        *session.Engine
	generator  scenario.Generator
	evaluator  evaluate.Evaluator
	lookup     refs.Lookup
	examGen    mockexam.Generator
	events     store.EventRepo
	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. Generator, evaluator, lookup, examGen and
// events may be nil; the affected menu entries fall back to a placeholder.
func New(eng *session.Engine, generator scenario.Generator, evaluator evaluate.Evaluator, lookup refs.Lookup, examGen mockexam.Generator, events store.EventRepo) *HomeScreen {
	menuLabels := []string{"START TUTORING", "CURRICULUM", "MOCK EXAM", "HISTORY", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[itemStartTutoring], Action: func() tea.Cmd {
			if generator == nil || evaluator == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Start Tutoring")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: lessonscreen.New(eng, generator, evaluator, lookup),
				}
			}
		}},
		{Label: menuLabels[itemCurriculum], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: curriculumscreen.New(eng, generator, evaluator, lookup),
				}
			}
		}},
		{Label: menuLabels[itemMockExam], Action: func() tea.Cmd {
			if examGen == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Mock Exam")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: mockexamscreen.New(eng, examGen)}
			}
		}},
		{Label: menuLabels[itemHistory], Action: func() tea.Cmd {
			if events == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("History")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(events)}
			}
		}},
		{Label: menuLabels[itemExit], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		eng:        eng,
		generator:  generator,
		evaluator:  evaluator,
		lookup:     lookup,
		examGen:    examGen,
		events:     events,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// The exam gate depends on live progress, so refresh it before the
	// menu handles navigation or enter.
	h.menu.Items[itemMockExam].Disabled = h.examLocked()

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	tracker := h.eng.Tracker()
	passed := tracker.PassedCount()
	total := tracker.Len()
	current := h.eng.CurrentLesson()
	reviewsDue := len(review.Due(tracker.Records(), time.Now()))

	var sections []string

	// 1. Title
	sections = append(sections, renderTitle(cw, compact))

	// 2. Current lesson card (full mode only)
	if !compact {
		sections = append(sections, renderStatusCard(current, h.nudge(passed, reviewsDue), cw))
	}

	// 3. Stats bar (double-bordered, same width)
	sections = append(sections, renderStatsBar(passed, total, current.Day, reviewsDue, cw, compact))

	// 4. Missing-key banner
	if h.generator == nil || h.evaluator == nil {
		sections = append(sections, renderLLMBanner(cw))
	}

	// 5. Menu (same width box)
	disabled := map[int]bool{itemMockExam: h.examLocked()}
	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw, disabled))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw, disabled))
	}

	content := strings.Join(sections, "\n\n")

	return renderHomeFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) examLocked() bool {
	return h.eng.Tracker().PassedCount() < session.MinPassedForExam
}

// nudge picks the one-line call to action under the current topic.
func (h *HomeScreen) nudge(passed, reviewsDue int) string {
	if remaining := session.MinPassedForExam - passed; remaining > 0 {
		if remaining == 1 {
			return "Pass 1 more topic to unlock the mock exam"
		}
		return fmt.Sprintf("Pass %d more topics to unlock the mock exam", remaining)
	}
	if reviewsDue > 0 {
		if reviewsDue == 1 {
			return "1 passed topic is due for a refresher"
		}
		return fmt.Sprintf("%d passed topics are due for a refresher", reviewsDue)
	}
	if h.eng.Tracker().AllPassed() {
		return "Plan complete. Drill mock exams until test day"
	}
	return "Pick up where you left off"
}
