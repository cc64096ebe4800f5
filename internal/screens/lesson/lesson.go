package lesson

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mbhatt/taxtutor/internal/evaluate"
	"github.com/mbhatt/taxtutor/internal/refs"
	"github.com/mbhatt/taxtutor/internal/router"
	"github.com/mbhatt/taxtutor/internal/scenario"
	"github.com/mbhatt/taxtutor/internal/screen"
	"github.com/mbhatt/taxtutor/internal/session"
	"github.com/mbhatt/taxtutor/internal/ui/components"
	"github.com/mbhatt/taxtutor/internal/ui/layout"
)

// LessonScreen runs the scenario, answer, grading loop for the engine's
// current lesson. All tutoring state lives in the engine, so the screen
// can be left and re-entered without losing the conversation.
type LessonScreen struct {
	eng       *session.Engine
	generator scenario.Generator
	evaluator evaluate.Evaluator
	lookup    refs.Lookup

	answer    components.TextArea
	busyText  string
	spinFrame int
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a lesson screen backed by the shared engine.
func New(eng *session.Engine, generator scenario.Generator, evaluator evaluate.Evaluator, lookup refs.Lookup) *LessonScreen {
	return &LessonScreen{
		eng:       eng,
		generator: generator,
		evaluator: evaluator,
		lookup:    lookup,
		answer:    components.NewTextArea("Walk through your analysis...", 60, 4),
	}
}

func (s *LessonScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{s.answer.Init()}
	if s.eng.Status() == session.StatusIdle {
		if cmd := s.startLesson(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (s *LessonScreen) Title() string {
	return "Lesson"
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	switch s.eng.Status() {
	case session.StatusAwaitingAnswer:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Ctrl+J", Description: "New line"},
			{Key: "Esc", Description: "Back"},
		}
	case session.StatusTopicPassed:
		return []layout.KeyHint{
			{Key: "Ctrl+N", Description: "Next topic"},
			{Key: "Esc", Description: "Back"},
		}
	case session.StatusIdle:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Try again"},
			{Key: "Esc", Description: "Back"},
		}
	case session.StatusCompleted:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case scenarioResolvedMsg:
		s.eng.ResolveScenario(msg.Scenario, msg.Refs, msg.Err)
		return s, nil

	case evaluationResolvedMsg:
		if twist := s.eng.ResolveEvaluation(msg.Result, msg.Err); twist != nil {
			return s, s.generateTwist(*twist)
		}
		return s, nil

	case twistResolvedMsg:
		s.eng.ResolveTwist(msg.Scenario, msg.Err)
		return s, nil

	case spinnerTickMsg:
		if !s.eng.InputLocked() {
			return s, nil
		}
		s.spinFrame++
		return s, spinnerTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Non-key messages (cursor blink) still reach the textarea.
	var cmd tea.Cmd
	s.answer, cmd = s.answer.Update(msg)
	return s, cmd
}

func (s *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Leaving mid-request would strand the engine: the resolution
		// message lands on whatever screen is active and gets dropped.
		if s.eng.InputLocked() {
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "enter":
		switch s.eng.Status() {
		case session.StatusAwaitingAnswer:
			return s.submit()
		case session.StatusIdle:
			// Generation failed earlier; try the round again.
			return s, s.startLesson()
		}
		return s, nil

	case "ctrl+n":
		return s.advance()
	}

	if s.eng.Status() == session.StatusAwaitingAnswer {
		var cmd tea.Cmd
		s.answer, cmd = s.answer.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *LessonScreen) submit() (screen.Screen, tea.Cmd) {
	text := s.answer.Value()
	if text == "" {
		return s, nil
	}
	input, err := s.eng.SubmitAnswer(text)
	if err != nil {
		return s, nil
	}
	s.answer.Reset()
	s.busyText = "Grading your answer..."
	return s, tea.Batch(s.evaluate(*input), spinnerTick())
}

func (s *LessonScreen) advance() (screen.Screen, tea.Cmd) {
	if s.eng.Status() != session.StatusTopicPassed {
		return s, nil
	}
	if err := s.eng.Advance(); err != nil {
		return s, nil
	}
	if s.eng.Status() != session.StatusIdle {
		// No lesson follows; the completed view takes over.
		return s, nil
	}
	return s, s.startLesson()
}

// startLesson asks the engine to open a round and dispatches the
// generation work it describes.
func (s *LessonScreen) startLesson() tea.Cmd {
	if s.generator == nil || s.evaluator == nil {
		return nil
	}
	input, err := s.eng.StartLesson()
	if err != nil {
		return nil
	}
	s.busyText = "Preparing a client scenario..."
	return tea.Batch(s.generate(*input), spinnerTick())
}

// generate runs scenario generation and the reference lookup
// concurrently and joins them into one message.
func (s *LessonScreen) generate(input scenario.Input) tea.Cmd {
	generator, lookup := s.generator, s.lookup
	return func() tea.Msg {
		ctx := context.Background()

		refCh := make(chan []refs.Reference, 1)
		go func() {
			if lookup == nil {
				refCh <- nil
				return
			}
			references, err := lookup.References(ctx, input.Lesson)
			if err != nil {
				refCh <- nil
				return
			}
			refCh <- references
		}()

		sc, err := generator.Generate(ctx, input)
		references := <-refCh
		return scenarioResolvedMsg{Scenario: sc, Refs: references, Err: err}
	}
}

func (s *LessonScreen) evaluate(input evaluate.Input) tea.Cmd {
	evaluator := s.evaluator
	return func() tea.Msg {
		result, err := evaluator.Evaluate(context.Background(), input)
		return evaluationResolvedMsg{Result: result, Err: err}
	}
}

func (s *LessonScreen) generateTwist(input scenario.Input) tea.Cmd {
	generator := s.generator
	s.busyText = "Twisting the facts..."
	return tea.Batch(func() tea.Msg {
		sc, err := generator.Generate(context.Background(), input)
		return twistResolvedMsg{Scenario: sc, Err: err}
	}, spinnerTick())
}

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
