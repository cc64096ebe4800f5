// Package session drives the tutoring loop as an explicit state machine.
// Every mutation happens inside an Engine method; collaborator calls are
// described by returned request values and their outcomes fed back through
// the Resolve methods, so the engine itself never blocks on the network.
package session

import (
	"fmt"

	"github.com/mbhatt/taxtutor/internal/curriculum"
	"github.com/mbhatt/taxtutor/internal/evaluate"
	"github.com/mbhatt/taxtutor/internal/mockexam"
	"github.com/mbhatt/taxtutor/internal/progress"
	"github.com/mbhatt/taxtutor/internal/refs"
	"github.com/mbhatt/taxtutor/internal/scenario"
	"github.com/mbhatt/taxtutor/internal/store"
	"github.com/mbhatt/taxtutor/internal/transcript"
)

// MinPassedForExam is the passed-lesson count required to sit a mock exam.
const MinPassedForExam = 5

// Engine owns the session state: the progress tracker, the transcript,
// the active scenario, and the mock exam when one is running.
//
// Methods that reject an action return a *ValidationError and leave the
// engine unchanged. Resolve methods ignore results that arrive after the
// state has moved on.
type Engine struct {
	tracker *progress.Tracker
	log     *transcript.Log
	status  Status

	// scenario is the fact pattern answers are graded against; after a
	// twist it holds the twisted version. original keeps the round's
	// first scenario for re-display after a failing attempt.
	scenario *scenario.Scenario
	original *scenario.Scenario

	exam    *mockexam.Exam
	summary *mockexam.Summary

	// Persist, when set, receives the full progress collection after
	// every mutation. Writes are fire-and-forget.
	Persist func(rows []store.LessonProgressData)

	// Record, when set, receives notable session events for history.
	Record func(data store.SessionEventData)
}

// New creates an idle engine over the given tracker.
func New(tracker *progress.Tracker) *Engine {
	return &Engine{
		tracker: tracker,
		log:     transcript.NewLog(),
		status:  StatusIdle,
	}
}

// Status returns the current state.
func (e *Engine) Status() Status {
	return e.status
}

// Tracker returns the progress tracker.
func (e *Engine) Tracker() *progress.Tracker {
	return e.tracker
}

// Transcript returns the conversation log.
func (e *Engine) Transcript() *transcript.Log {
	return e.log
}

// Scenario returns the scenario answers are currently graded against.
func (e *Engine) Scenario() *scenario.Scenario {
	return e.scenario
}

// Exam returns the running mock exam, nil outside exam states.
func (e *Engine) Exam() *mockexam.Exam {
	return e.exam
}

// ExamSummary returns the scored results of the last completed exam.
func (e *Engine) ExamSummary() *mockexam.Summary {
	return e.summary
}

// CurrentLesson returns the lesson the pointer addresses.
func (e *Engine) CurrentLesson() curriculum.Lesson {
	return e.tracker.CurrentRecord().Lesson
}

// InputLocked reports whether a collaborator call is in flight. The UI
// disables input while locked so events cannot overlap.
func (e *Engine) InputLocked() bool {
	switch e.status {
	case StatusGenerating, StatusEvaluating, StatusGeneratingExam:
		return true
	}
	return false
}

// StartLesson begins a scenario round for the current lesson. The caller
// dispatches the returned generation input plus a best-effort reference
// lookup for the same lesson, then reports back via ResolveScenario.
func (e *Engine) StartLesson() (*scenario.Input, error) {
	if e.status != StatusIdle {
		return nil, &ValidationError{Message: "a lesson can only be started from the home state"}
	}
	e.status = StatusGenerating

	lesson := e.CurrentLesson()
	e.recordEvent(store.SessionEventData{Action: "lesson_start", Day: lesson.Day, Topic: lesson.Topic})

	return &scenario.Input{
		Lesson:       lesson,
		PassedTopics: e.passedTopics(),
	}, nil
}

// ResolveScenario feeds back the generation started by StartLesson.
// References are best-effort: an empty list gets a fallback note rather
// than failing the scenario.
func (e *Engine) ResolveScenario(sc *scenario.Scenario, references []refs.Reference, err error) {
	if e.status != StatusGenerating {
		return
	}
	if err != nil || sc == nil {
		e.log.Append(transcript.SenderSystem, generationFailedText(err))
		e.status = StatusIdle
		return
	}

	e.scenario = sc
	e.original = sc
	e.log.Append(transcript.SenderTutor, formatScenario(sc))
	if len(references) > 0 {
		e.log.AppendWithRefs(transcript.SenderTutor, referencesIntro, references)
	} else {
		e.log.Append(transcript.SenderTutor, noReferencesText(e.CurrentLesson()))
	}
	e.status = StatusAwaitingAnswer
}

// SubmitAnswer records the learner's answer and moves to grading. The
// caller dispatches the returned evaluation input and reports back via
// ResolveEvaluation.
func (e *Engine) SubmitAnswer(text string) (*evaluate.Input, error) {
	if e.status != StatusAwaitingAnswer || e.scenario == nil {
		return nil, &ValidationError{Message: "there is no open question to answer"}
	}
	e.log.Append(transcript.SenderLearner, text)
	e.status = StatusEvaluating

	return &evaluate.Input{
		Scenario:     e.scenario,
		Answer:       text,
		PassedTopics: e.passedTopics(),
	}, nil
}

// ResolveEvaluation applies a grading outcome. A passing score inside the
// twist budget returns the twist generation input the caller must
// dispatch and report back via ResolveTwist; every other outcome returns
// nil. A failing attempt re-displays the round's original scenario, and
// leaves both the lesson status and the twist counter untouched.
func (e *Engine) ResolveEvaluation(result *evaluate.Result, err error) *scenario.Input {
	if e.status != StatusEvaluating {
		return nil
	}
	if err != nil || result == nil {
		e.log.Append(transcript.SenderSystem, evaluationFailedText(err))
		e.status = StatusAwaitingAnswer
		return nil
	}

	if result.Passed() {
		if e.tracker.CurrentRecord().TwistsCompleted < progress.MaxTwists {
			e.tracker.IncrementTwists()
			e.persistProgress()
			e.log.Append(transcript.SenderTutor, passedRoundText(result))
			e.status = StatusGenerating
			return &scenario.Input{
				Lesson:       e.CurrentLesson(),
				PassedTopics: e.passedTopics(),
				Previous:     e.scenario,
				Twist:        true,
			}
		}

		lesson := e.CurrentLesson()
		e.tracker.MarkPassed(result.TotalScore)
		e.persistProgress()
		e.recordEvent(store.SessionEventData{
			Action: "lesson_passed",
			Day:    lesson.Day,
			Topic:  lesson.Topic,
			Score:  result.TotalScore,
		})
		e.log.Append(transcript.SenderTutor, passedTopicText(result, lesson))
		e.status = StatusTopicPassed
		return nil
	}

	e.log.Append(transcript.SenderTutor, failedRoundText(result))
	if len(result.KnowledgePoints) > 0 {
		e.log.Append(transcript.SenderTutor, knowledgePointsText(result.KnowledgePoints))
	}
	if result.DetailedExplanation != "" {
		e.log.Append(transcript.SenderTutor, modelAnswerText(result.DetailedExplanation))
	}
	if e.original != nil {
		e.log.Append(transcript.SenderTutor, retryText(e.original))
	}
	e.status = StatusAwaitingAnswer
	return nil
}

// ResolveTwist feeds back the twist generation requested by
// ResolveEvaluation. On failure the learner keeps the previous scenario
// and can answer it again.
func (e *Engine) ResolveTwist(sc *scenario.Scenario, err error) {
	if e.status != StatusGenerating {
		return
	}
	if err != nil || sc == nil {
		e.log.Append(transcript.SenderSystem, twistFailedText(err))
		e.status = StatusAwaitingAnswer
		return
	}
	e.scenario = sc
	e.log.Append(transcript.SenderTutor, formatTwist(sc))
	e.status = StatusAwaitingAnswer
}

// Advance moves to the lesson after the current one, the generic "next"
// action. With no following lesson the plan is complete; once completed,
// further advances are no-ops.
func (e *Engine) Advance() error {
	switch e.status {
	case StatusTopicPassed, StatusIdle:
	case StatusCompleted:
		return nil
	default:
		return &ValidationError{Message: "cannot advance while a round is in progress"}
	}

	if !e.tracker.HasNext() {
		e.status = StatusCompleted
		return nil
	}
	if err := e.tracker.Activate(e.tracker.Current() + 1); err != nil {
		return err
	}
	e.persistProgress()
	e.clearSession()
	e.status = StatusIdle
	return nil
}

// SelectLesson jumps to the lesson at position i. Selecting the current
// lesson is a no-op; anything else demotes the active lesson, promotes
// the target unless it is already passed, and starts a fresh transcript.
func (e *Engine) SelectLesson(i int) error {
	switch e.status {
	case StatusIdle, StatusAwaitingAnswer, StatusTopicPassed, StatusCompleted:
	default:
		return &ValidationError{Message: "cannot switch lessons right now"}
	}
	if i == e.tracker.Current() {
		return nil
	}
	if err := e.tracker.Activate(i); err != nil {
		return &ValidationError{Message: err.Error()}
	}
	e.persistProgress()
	e.clearSession()
	e.status = StatusIdle
	return nil
}

// StartMockExam begins mock-exam generation. The guard rejects before any
// state is touched: at least MinPassedForExam lessons must be passed and
// no scenario round may be in flight.
func (e *Engine) StartMockExam() (*mockexam.Request, error) {
	switch e.status {
	case StatusIdle, StatusTopicPassed, StatusCompleted:
	default:
		return nil, &ValidationError{Message: "finish the current round before starting a mock exam"}
	}
	passed := e.tracker.PassedCount()
	if passed < MinPassedForExam {
		return nil, &ValidationError{
			Message: fmt.Sprintf("pass at least %d lessons to unlock the mock exam (you have %d)", MinPassedForExam, passed),
		}
	}

	e.clearSession()
	e.status = StatusGeneratingExam
	return &mockexam.Request{
		Lessons: e.tracker.PassedLessons(),
		Count:   mockexam.QuestionCount(passed),
	}, nil
}

// ResolveMockExam feeds back the generated question batch.
func (e *Engine) ResolveMockExam(questions []mockexam.Question, err error) {
	if e.status != StatusGeneratingExam {
		return
	}
	if err != nil || len(questions) == 0 {
		e.log.Append(transcript.SenderSystem, examFailedText(err))
		e.status = StatusIdle
		return
	}
	e.exam = mockexam.NewExam(questions)
	e.summary = nil
	e.status = StatusExamInProgress
}

// SubmitMockAnswer records one answer letter. Anything outside A-D is
// rejected inline without advancing the cursor or growing the answer
// sequence.
func (e *Engine) SubmitMockAnswer(raw string) error {
	if e.status != StatusExamInProgress || e.exam == nil {
		return &ValidationError{Message: "no mock exam is in progress"}
	}
	letter, ok := mockexam.ParseLetter(raw)
	if !ok {
		return &ValidationError{Message: "answer must be A, B, C, or D"}
	}

	e.exam.Submit(letter)
	if e.exam.Done() {
		s := e.exam.Results()
		e.summary = &s
		e.recordEvent(store.SessionEventData{
			Action:  "mock_exam",
			Score:   s.Correct,
			Total:   s.Total,
			Percent: s.Percent,
		})
		e.status = StatusExamCompleted
	}
	return nil
}

// ExitMockExam abandons or closes the mock exam. Lesson progress is
// never touched by mock-exam participation.
func (e *Engine) ExitMockExam() {
	switch e.status {
	case StatusGeneratingExam, StatusExamInProgress, StatusExamCompleted:
	default:
		return
	}
	e.exam = nil
	e.summary = nil
	e.log.Clear()
	e.status = StatusIdle
}

// passedTopics lists the topics of passed lessons, the mastery context
// for generation and grading prompts.
func (e *Engine) passedTopics() []string {
	lessons := e.tracker.PassedLessons()
	topics := make([]string, len(lessons))
	for i, l := range lessons {
		topics[i] = l.Topic
	}
	return topics
}

// clearSession wipes the transcript and scenario on lesson changes and
// mock-exam transitions.
func (e *Engine) clearSession() {
	e.log.Clear()
	e.scenario = nil
	e.original = nil
}

func (e *Engine) persistProgress() {
	if e.Persist != nil {
		e.Persist(e.tracker.Export())
	}
}

func (e *Engine) recordEvent(data store.SessionEventData) {
	if e.Record != nil {
		e.Record(data)
	}
}
