package lesson

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mbhatt/taxtutor/internal/curriculum"
	"github.com/mbhatt/taxtutor/internal/evaluate"
	"github.com/mbhatt/taxtutor/internal/progress"
	"github.com/mbhatt/taxtutor/internal/refs"
	"github.com/mbhatt/taxtutor/internal/router"
	"github.com/mbhatt/taxtutor/internal/scenario"
	sess "github.com/mbhatt/taxtutor/internal/session"
)

// fakeGenerator implements scenario.Generator for testing.
type fakeGenerator struct {
	scenario *scenario.Scenario
	err      error
	inputs   []scenario.Input
}

func (f *fakeGenerator) Generate(_ context.Context, input scenario.Input) (*scenario.Scenario, error) {
	f.inputs = append(f.inputs, input)
	if f.err != nil {
		return nil, f.err
	}
	sc := *f.scenario
	return &sc, nil
}

// fakeEvaluator implements evaluate.Evaluator for testing.
type fakeEvaluator struct {
	result *evaluate.Result
	err    error
}

func (f *fakeEvaluator) Evaluate(_ context.Context, _ evaluate.Input) (*evaluate.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	r := *f.result
	return &r, nil
}

// fakeLookup implements refs.Lookup for testing.
type fakeLookup struct {
	refs []refs.Reference
}

func (f *fakeLookup) References(_ context.Context, _ curriculum.Lesson) ([]refs.Reference, error) {
	return f.refs, nil
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScenario() *scenario.Scenario {
	return &scenario.Scenario{
		Situation: "A client filed single but married in December.",
		Question:  "What filing statuses are available?",
	}
}

func testLessonScreen() (*LessonScreen, *fakeGenerator, *fakeEvaluator) {
	gen := &fakeGenerator{scenario: testScenario()}
	eval := &fakeEvaluator{result: &evaluate.Result{TotalScore: 95}}
	lookup := &fakeLookup{refs: []refs.Reference{{Title: "Pub 501", URI: "https://www.irs.gov/pub501"}}}

	eng := sess.New(progress.NewTracker(curriculum.Lessons()))
	return New(eng, gen, eval, lookup), gen, eval
}

// resolveScenario drives the screen through a completed generation.
func resolveScenario(t *testing.T, s *LessonScreen) {
	t.Helper()
	s.Update(scenarioResolvedMsg{Scenario: testScenario(), Refs: nil})
	if s.eng.Status() != sess.StatusAwaitingAnswer {
		t.Fatalf("status after resolve = %v, want awaiting answer", s.eng.Status())
	}
}

func TestLessonScreen_Title(t *testing.T) {
	s, _, _ := testLessonScreen()
	if s.Title() != "Lesson" {
		t.Errorf("Title = %q, want %q", s.Title(), "Lesson")
	}
}

func TestInitStartsGeneration(t *testing.T) {
	s, _, _ := testLessonScreen()

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected a command from Init")
	}
	if s.eng.Status() != sess.StatusGenerating {
		t.Errorf("status = %v, want generating", s.eng.Status())
	}
}

func TestInitWithoutGeneratorStaysIdle(t *testing.T) {
	s, _, _ := testLessonScreen()
	s.generator = nil

	s.Init()
	if s.eng.Status() != sess.StatusIdle {
		t.Errorf("status = %v, want idle", s.eng.Status())
	}
}

func TestScenarioResolvedShowsPrompt(t *testing.T) {
	s, _, _ := testLessonScreen()
	s.Init()

	sc := testScenario()
	s.Update(scenarioResolvedMsg{Scenario: sc, Refs: []refs.Reference{{Title: "Pub 501", URI: "https://www.irs.gov/pub501"}}})

	if s.eng.Status() != sess.StatusAwaitingAnswer {
		t.Fatalf("status = %v, want awaiting answer", s.eng.Status())
	}
	view := s.View(100, 40)
	if !strings.Contains(view, "filing statuses") {
		t.Error("expected scenario question in view")
	}
	if !strings.Contains(view, "Pub 501") {
		t.Error("expected reference citation in view")
	}
}

func TestScenarioErrorReturnsToIdle(t *testing.T) {
	s, _, _ := testLessonScreen()
	s.Init()

	s.Update(scenarioResolvedMsg{Err: errors.New("provider down")})

	if s.eng.Status() != sess.StatusIdle {
		t.Errorf("status = %v, want idle after failed generation", s.eng.Status())
	}
	view := s.View(100, 40)
	if !strings.Contains(view, "Press Enter") {
		t.Error("expected retry hint in view")
	}
}

func TestSubmitEmptyAnswerIgnored(t *testing.T) {
	s, _, _ := testLessonScreen()
	s.Init()
	resolveScenario(t, s)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no command for empty answer")
	}
	if s.eng.Status() != sess.StatusAwaitingAnswer {
		t.Errorf("status = %v, want awaiting answer", s.eng.Status())
	}
}

func TestSubmitAnswerDispatchesEvaluation(t *testing.T) {
	s, _, _ := testLessonScreen()
	s.Init()
	resolveScenario(t, s)

	s.answer.Model.SetValue("They may file jointly or separately.")
	_, cmd := s.Update(specialKey(tea.KeyEnter))

	if cmd == nil {
		t.Fatal("expected an evaluation command")
	}
	if s.eng.Status() != sess.StatusEvaluating {
		t.Errorf("status = %v, want evaluating", s.eng.Status())
	}
	if s.answer.Value() != "" {
		t.Error("expected the input to be cleared after submit")
	}
}

func TestPassedEvaluationDispatchesTwist(t *testing.T) {
	s, _, _ := testLessonScreen()
	s.Init()
	resolveScenario(t, s)
	s.answer.Model.SetValue("Joint or separate returns.")
	s.Update(specialKey(tea.KeyEnter))

	_, cmd := s.Update(evaluationResolvedMsg{Result: &evaluate.Result{TotalScore: 95}})

	if cmd == nil {
		t.Fatal("expected a twist generation command")
	}
	if s.eng.Status() != sess.StatusGenerating {
		t.Errorf("status = %v, want generating twist", s.eng.Status())
	}
	if got := s.eng.Tracker().CurrentRecord().TwistsCompleted; got != 1 {
		t.Errorf("twists completed = %d, want 1", got)
	}
}

func TestFailedEvaluationKeepsAwaiting(t *testing.T) {
	s, _, _ := testLessonScreen()
	s.Init()
	resolveScenario(t, s)
	s.answer.Model.SetValue("No idea.")
	s.Update(specialKey(tea.KeyEnter))

	_, cmd := s.Update(evaluationResolvedMsg{Result: &evaluate.Result{TotalScore: 40}})

	if cmd != nil {
		t.Error("expected no follow-up command after a failed attempt")
	}
	if s.eng.Status() != sess.StatusAwaitingAnswer {
		t.Errorf("status = %v, want awaiting answer for retry", s.eng.Status())
	}
}

func TestFullRoundPassesTopic(t *testing.T) {
	s, _, _ := testLessonScreen()
	s.Init()
	resolveScenario(t, s)

	// Three passing answers: the opening scenario plus two twists.
	for round := 0; round < 3; round++ {
		s.answer.Model.SetValue("A passing analysis.")
		s.Update(specialKey(tea.KeyEnter))
		s.Update(evaluationResolvedMsg{Result: &evaluate.Result{TotalScore: 95}})
		if round < 2 {
			s.Update(twistResolvedMsg{Scenario: testScenario()})
		}
	}

	if s.eng.Status() != sess.StatusTopicPassed {
		t.Fatalf("status = %v, want topic passed", s.eng.Status())
	}
	view := s.View(100, 40)
	if !strings.Contains(view, "TOPIC PASSED") {
		t.Error("expected pass banner in view")
	}
}

func TestAdvanceMovesToNextLesson(t *testing.T) {
	s, _, _ := testLessonScreen()
	s.Init()
	resolveScenario(t, s)
	for round := 0; round < 3; round++ {
		s.answer.Model.SetValue("A passing analysis.")
		s.Update(specialKey(tea.KeyEnter))
		s.Update(evaluationResolvedMsg{Result: &evaluate.Result{TotalScore: 95}})
		if round < 2 {
			s.Update(twistResolvedMsg{Scenario: testScenario()})
		}
	}

	_, cmd := s.advance()
	if cmd == nil {
		t.Fatal("expected the next lesson to start generating")
	}
	if got := s.eng.Tracker().Current(); got != 1 {
		t.Errorf("current lesson index = %d, want 1", got)
	}
	if s.eng.Status() != sess.StatusGenerating {
		t.Errorf("status = %v, want generating", s.eng.Status())
	}
}

func TestEscBlockedWhileBusy(t *testing.T) {
	s, _, _ := testLessonScreen()
	s.Init()

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd != nil {
		t.Error("expected esc to be ignored while a request is in flight")
	}
}

func TestEscPopsWhenUnlocked(t *testing.T) {
	s, _, _ := testLessonScreen()
	s.Init()
	resolveScenario(t, s)

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command from esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg from esc")
	}
}

func TestStaleTickStopsWhenUnlocked(t *testing.T) {
	s, _, _ := testLessonScreen()
	s.Init()
	resolveScenario(t, s)

	_, cmd := s.Update(spinnerTickMsg{})
	if cmd != nil {
		t.Error("expected spinner to stop once input is unlocked")
	}
}

func TestKeyHintsFollowStatus(t *testing.T) {
	s, _, _ := testLessonScreen()
	s.Init()

	if hints := s.KeyHints(); len(hints) == 0 {
		t.Error("expected hints while generating")
	}
	resolveScenario(t, s)
	found := false
	for _, h := range s.KeyHints() {
		if h.Key == "Enter" {
			found = true
		}
	}
	if !found {
		t.Error("expected an Enter hint while awaiting an answer")
	}
}
