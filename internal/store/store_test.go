package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database handle")
	}
	if s.ProgressRepo() == nil {
		t.Fatal("expected non-nil progress repo")
	}
	if s.EventRepo() == nil {
		t.Fatal("expected non-nil event repo")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"lesson_progress", "llm_events", "session_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

func TestProgressLoadEmpty(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rows, err := s.ProgressRepo().Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("rows = %d, want 0", len(rows))
	}
}

func TestProgressSaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	passedAt := "2026-08-20T10:15:00Z"
	err := repo.Save(ctx, []LessonProgressData{
		{Day: 1, Status: "passed", Score: 94, TwistsCompleted: 2, PassedAt: &passedAt},
		{Day: 2, Status: "active", Score: 61, TwistsCompleted: 1},
		{Day: 3, Status: "locked"},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	rows, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}

	first := rows[0]
	if first.Day != 1 || first.Status != "passed" || first.Score != 94 || first.TwistsCompleted != 2 {
		t.Errorf("unexpected first row: %+v", first)
	}
	if first.PassedAt == nil || *first.PassedAt != passedAt {
		t.Errorf("passed_at = %v, want %q", first.PassedAt, passedAt)
	}
	if rows[1].PassedAt != nil {
		t.Errorf("day 2 passed_at = %v, want nil", rows[1].PassedAt)
	}
	if rows[2].Day != 3 || rows[2].Status != "locked" {
		t.Errorf("unexpected third row: %+v", rows[2])
	}
}

func TestProgressSaveReplacesAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	err := repo.Save(ctx, []LessonProgressData{
		{Day: 1, Status: "active"},
		{Day: 2, Status: "locked"},
	})
	if err != nil {
		t.Fatalf("first save: %v", err)
	}

	err = repo.Save(ctx, []LessonProgressData{
		{Day: 1, Status: "passed", Score: 92},
	})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	rows, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Status != "passed" || rows[0].Score != 92 {
		t.Errorf("unexpected row after replace: %+v", rows[0])
	}
}

func TestProgressSaveEmptyClears(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	err := repo.Save(ctx, []LessonProgressData{{Day: 1, Status: "active"}})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(ctx, nil); err != nil {
		t.Fatalf("save empty: %v", err)
	}

	rows, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("rows = %d, want 0", len(rows))
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "scenario-generation",
		InputTokens:  1200,
		OutputTokens: 450,
		LatencyMs:    1800,
		Success:      true,
		RequestBody:  `{"prompt":"generate"}`,
		ResponseBody: `{"situation":"..."}`,
	})
	if err != nil {
		t.Fatalf("append first: %v", err)
	}
	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "answer-evaluation",
		Success:      false,
		ErrorMessage: "rate limited",
	})
	if err != nil {
		t.Fatalf("append second: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}

	// Newest first.
	newest := events[0]
	if newest.Purpose != "answer-evaluation" {
		t.Errorf("newest purpose = %q, want answer-evaluation", newest.Purpose)
	}
	if newest.Success {
		t.Error("newest success = true, want false")
	}
	if newest.ErrorMessage != "rate limited" {
		t.Errorf("error message = %q", newest.ErrorMessage)
	}
	if newest.Timestamp.IsZero() {
		t.Error("timestamp not recorded")
	}

	oldest := events[1]
	if oldest.InputTokens != 1200 || oldest.OutputTokens != 450 {
		t.Errorf("tokens = %d/%d, want 1200/450", oldest.InputTokens, oldest.OutputTokens)
	}
	if oldest.RequestBody != `{"prompt":"generate"}` {
		t.Errorf("request body = %q", oldest.RequestBody)
	}
	if oldest.ResponseBody != `{"situation":"..."}` {
		t.Errorf("response body = %q", oldest.ResponseBody)
	}
}

func TestQueryLLMEventsLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "openai",
			Model:    "gpt-5",
			Purpose:  "mock-exam-generation",
			Success:  true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].ID <= events[1].ID {
		t.Errorf("order: id %d before %d, want newest first", events[0].ID, events[1].ID)
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "google",
		Model:    "gemini-2.0-flash",
		Purpose:  "reference-lookup",
		Success:  true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected non-nil event")
	}
	if got.Purpose != "reference-lookup" {
		t.Errorf("purpose = %q", got.Purpose)
	}

	missing, err := repo.GetLLMEvent(ctx, events[0].ID+999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []LLMRequestEventData{
		{Model: "claude-sonnet-4-5", Purpose: "answer-evaluation", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Model: "claude-sonnet-4-5", Purpose: "answer-evaluation", InputTokens: 300, OutputTokens: 100, LatencyMs: 400, Success: true},
		{Model: "gpt-5", Purpose: "scenario-generation", InputTokens: 80, OutputTokens: 600, LatencyMs: 900, Success: true},
	}
	for i, data := range appends {
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("groups = %d, want 2", len(usage))
	}

	// Alphabetical by purpose.
	eval := usage[0]
	if eval.Purpose != "answer-evaluation" {
		t.Fatalf("first purpose = %q", eval.Purpose)
	}
	if eval.Calls != 2 {
		t.Errorf("calls = %d, want 2", eval.Calls)
	}
	if eval.InputTokens != 400 || eval.OutputTokens != 150 {
		t.Errorf("tokens = %d/%d, want 400/150", eval.InputTokens, eval.OutputTokens)
	}
	if eval.AvgLatencyMs != 300 {
		t.Errorf("avg latency = %d, want 300", eval.AvgLatencyMs)
	}

	gen := usage[1]
	if gen.Purpose != "scenario-generation" || gen.Calls != 1 {
		t.Errorf("second group = %+v", gen)
	}
}

func TestLLMUsageByModel(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []LLMRequestEventData{
		{Model: "claude-sonnet-4-5", Purpose: "answer-evaluation", InputTokens: 10, OutputTokens: 20, Success: true},
		{Model: "gpt-5", Purpose: "answer-evaluation", InputTokens: 30, OutputTokens: 40, Success: true},
		{Model: "gpt-5", Purpose: "mock-exam-generation", InputTokens: 50, OutputTokens: 60, Success: true},
	}
	for i, data := range appends {
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	usage, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("groups = %d, want 2", len(usage))
	}
	if usage[0].Model != "claude-sonnet-4-5" || usage[0].Calls != 1 {
		t.Errorf("first group = %+v", usage[0])
	}
	if usage[1].Model != "gpt-5" || usage[1].Calls != 2 {
		t.Errorf("second group = %+v", usage[1])
	}
	if usage[1].InputTokens != 80 || usage[1].OutputTokens != 100 {
		t.Errorf("gpt-5 tokens = %d/%d, want 80/100", usage[1].InputTokens, usage[1].OutputTokens)
	}
}

func TestAppendAndQuerySessionEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "abc-123",
		Action:    "lesson_start",
		Day:       4,
		Topic:     "Filing status & dependents",
	})
	if err != nil {
		t.Fatalf("append first: %v", err)
	}
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "abc-123",
		Action:    "mock_exam",
		Score:     9,
		Total:     12,
		Percent:   75.0,
	})
	if err != nil {
		t.Fatalf("append second: %v", err)
	}

	events, err := repo.QuerySessionEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}

	exam := events[0]
	if exam.Action != "mock_exam" {
		t.Errorf("newest action = %q, want mock_exam", exam.Action)
	}
	if exam.Score != 9 || exam.Total != 12 {
		t.Errorf("score = %d/%d, want 9/12", exam.Score, exam.Total)
	}
	if exam.Percent != 75.0 {
		t.Errorf("percent = %v, want 75", exam.Percent)
	}

	start := events[1]
	if start.Action != "lesson_start" || start.Day != 4 {
		t.Errorf("oldest event = %+v", start)
	}
	if start.Topic != "Filing status & dependents" {
		t.Errorf("topic = %q", start.Topic)
	}
	if start.Timestamp.IsZero() {
		t.Error("timestamp not recorded")
	}
}
