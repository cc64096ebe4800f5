package curriculum

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	curr "github.com/mbhatt/taxtutor/internal/curriculum"
	"github.com/mbhatt/taxtutor/internal/progress"
	"github.com/mbhatt/taxtutor/internal/review"
	"github.com/mbhatt/taxtutor/internal/router"
	"github.com/mbhatt/taxtutor/internal/screens/placeholder"
	"github.com/mbhatt/taxtutor/internal/session"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testScreen() (*CurriculumScreen, *session.Engine) {
	eng := session.New(progress.NewTracker(curr.Lessons()))
	return New(eng, nil, nil, nil), eng
}

func TestRowsCoverEveryLesson(t *testing.T) {
	s, eng := testScreen()

	lessons := 0
	headers := 0
	for _, r := range s.rows {
		switch r.kind {
		case rowLesson:
			lessons++
		case rowPhaseHeader:
			headers++
		}
	}
	if lessons != eng.Tracker().Len() {
		t.Errorf("lesson rows = %d, want %d", lessons, eng.Tracker().Len())
	}
	if headers != len(curr.AllPhases()) {
		t.Errorf("phase headers = %d, want %d", headers, len(curr.AllPhases()))
	}
}

func TestCursorStartsOnActiveLesson(t *testing.T) {
	s, eng := testScreen()

	r := s.rows[s.cursor]
	if r.kind != rowLesson {
		t.Fatal("cursor must start on a lesson row")
	}
	if r.index != eng.Tracker().Current() {
		t.Errorf("cursor lesson index = %d, want %d", r.index, eng.Tracker().Current())
	}
}

func TestMoveCursorSkipsHeaders(t *testing.T) {
	s, _ := testScreen()

	// Walk down across a phase boundary; the cursor must never rest on
	// a header row.
	for i := 0; i < len(s.rows); i++ {
		s.Update(keyPress('j'))
		if s.rows[s.cursor].kind != rowLesson {
			t.Fatalf("cursor on header row at position %d", s.cursor)
		}
	}
}

func TestTabJumpsToNextPhase(t *testing.T) {
	s, _ := testScreen()
	startPhase := s.rows[s.cursor].phase

	s.Update(specialKey(tea.KeyTab))

	r := s.rows[s.cursor]
	if r.phase == startPhase {
		t.Error("expected the cursor to leave the starting phase")
	}
	if r.kind != rowLesson {
		t.Error("expected the cursor on a lesson row")
	}
}

func TestEnterActivatesSelectedLesson(t *testing.T) {
	s, eng := testScreen()

	// Move a few lessons down, then open.
	for i := 0; i < 3; i++ {
		s.Update(keyPress('j'))
	}
	target := s.rows[s.cursor].index

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a push command from enter")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := msg.Screen.(*placeholder.PlaceholderScreen); !ok {
		t.Error("expected placeholder push without a generator")
	}
	if eng.Tracker().Current() != target {
		t.Errorf("active lesson = %d, want %d", eng.Tracker().Current(), target)
	}
}

func TestEscPops(t *testing.T) {
	s, _ := testScreen()

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command from esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg from esc")
	}
}

func TestPassedRowShowsScoreAndRefresher(t *testing.T) {
	now := time.Now()
	stale := now.AddDate(0, 0, -(review.RefreshAfterDays + 1))
	rec := progress.Record{
		Lesson:   curr.Lessons()[0],
		Status:   progress.StatusPassed,
		Score:    93,
		PassedAt: &stale,
	}

	line := renderLessonRow(rec, false, now, 100)
	if !strings.Contains(line, "93/100") {
		t.Error("expected the score in a passed row")
	}
	if !strings.Contains(line, "⚡") {
		t.Error("expected a refresher badge on a stale pass")
	}
}

func TestViewScrollsToCursor(t *testing.T) {
	s, _ := testScreen()

	// Jump near the end and render a short viewport.
	for i := 0; i < len(s.rows); i++ {
		s.Update(keyPress('j'))
	}
	view := s.View(100, 10)

	if view == "" {
		t.Fatal("expected non-empty view")
	}
	if got := strings.Count(view, "\n") + 1; got > 10 {
		t.Errorf("view lines = %d, want at most 10", got)
	}
}
