package mockexam

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	exam "github.com/mbhatt/taxtutor/internal/mockexam"
	"github.com/mbhatt/taxtutor/internal/router"
	"github.com/mbhatt/taxtutor/internal/screen"
	"github.com/mbhatt/taxtutor/internal/session"
	"github.com/mbhatt/taxtutor/internal/ui/components"
	"github.com/mbhatt/taxtutor/internal/ui/layout"
)

// MockExamScreen runs a timed-feel multiple-choice drill across passed
// topics. Answers are committed one at a time with no going back, like
// the real thing; results and missed-question review come at the end.
type MockExamScreen struct {
	eng     *session.Engine
	examGen exam.Generator

	mc        components.MultiChoice
	lockedMsg string
	spinFrame int
	scroll    int
}

var _ screen.Screen = (*MockExamScreen)(nil)
var _ screen.KeyHintProvider = (*MockExamScreen)(nil)

// New creates a mock exam screen backed by the shared engine.
func New(eng *session.Engine, examGen exam.Generator) *MockExamScreen {
	return &MockExamScreen{eng: eng, examGen: examGen}
}

func (s *MockExamScreen) Init() tea.Cmd {
	if s.examGen == nil {
		s.lockedMsg = "LLM provider not configured"
		return nil
	}
	return s.start()
}

func (s *MockExamScreen) Title() string {
	return "Mock Exam"
}

func (s *MockExamScreen) KeyHints() []layout.KeyHint {
	switch s.eng.Status() {
	case session.StatusGeneratingExam:
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case session.StatusExamInProgress:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Abandon"},
		}
	case session.StatusExamCompleted:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *MockExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case examReadyMsg:
		s.eng.ResolveMockExam(msg.Questions, msg.Err)
		if s.eng.Status() == session.StatusExamInProgress {
			s.mc = s.freshChoice()
		}
		return s, nil

	case spinnerTickMsg:
		if s.eng.Status() != session.StatusGeneratingExam {
			return s, nil
		}
		s.spinFrame++
		return s, spinnerTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *MockExamScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// A generation in flight must resolve before leaving, otherwise
		// its result could be mistaken for a later exam's.
		if s.eng.InputLocked() {
			return s, nil
		}
		s.eng.ExitMockExam()
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "enter":
		switch s.eng.Status() {
		case session.StatusExamInProgress:
			return s.submitAnswer()
		case session.StatusExamCompleted:
			s.eng.ExitMockExam()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case session.StatusIdle, session.StatusTopicPassed, session.StatusCompleted:
			return s, s.start()
		}
		return s, nil

	case "up", "k", "down", "j":
		switch s.eng.Status() {
		case session.StatusExamInProgress:
			var cmd tea.Cmd
			s.mc, cmd = s.mc.Update(msg)
			return s, cmd
		case session.StatusExamCompleted:
			if msg.String() == "up" || msg.String() == "k" {
				s.scroll--
			} else {
				s.scroll++
			}
			if s.scroll < 0 {
				s.scroll = 0
			}
		}
	}
	return s, nil
}

// start asks the engine to open an exam and dispatches generation.
// Gate failures (not enough passed lessons) land in lockedMsg.
func (s *MockExamScreen) start() tea.Cmd {
	req, err := s.eng.StartMockExam()
	if err != nil {
		s.lockedMsg = err.Error()
		return nil
	}
	s.lockedMsg = ""
	s.scroll = 0
	return tea.Batch(s.generate(*req), spinnerTick())
}

func (s *MockExamScreen) generate(req exam.Request) tea.Cmd {
	gen := s.examGen
	return func() tea.Msg {
		questions, err := gen.Generate(context.Background(), req)
		return examReadyMsg{Questions: questions, Err: err}
	}
}

// submitAnswer commits the highlighted option. Enter never reaches the
// MultiChoice component mid-exam, so it never reveals the answer key.
func (s *MockExamScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	letter := exam.Letters()[s.mc.Selected]
	if err := s.eng.SubmitMockAnswer(string(letter)); err != nil {
		return s, nil
	}
	if s.eng.Status() == session.StatusExamInProgress {
		s.mc = s.freshChoice()
	}
	return s, nil
}

// freshChoice builds the selector for the question at the exam cursor.
func (s *MockExamScreen) freshChoice() components.MultiChoice {
	q, ok := s.eng.Exam().Current()
	if !ok {
		return components.MultiChoice{}
	}
	return components.NewMultiChoice(q.Text, q.Options[:], letterIndex(q.CorrectAnswer))
}

func letterIndex(l exam.Letter) int {
	for i, candidate := range exam.Letters() {
		if candidate == l {
			return i
		}
	}
	return -1
}

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
