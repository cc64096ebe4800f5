package scenario

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mbhatt/taxtutor/internal/llm"
)

func validScenarioJSON() json.RawMessage {
	return json.RawMessage(`{
		"scenario_text": "Dana, single and 34, earned $68,400 in wages during 2024 and received a $1,200 state refund. She itemized last year and deducted $9,800 of state income tax.",
		"question_text": "How much of the state refund, if any, must Dana include in gross income?"
	}`)
}

func TestGenerate_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validScenarioJSON()})
	gen := New(mock, DefaultConfig())

	s, err := gen.Generate(context.Background(), Input{Lesson: testLesson()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(s.Situation, "Dana") {
		t.Errorf("unexpected situation: %q", s.Situation)
	}
	if !strings.Contains(s.Question, "gross income") {
		t.Errorf("unexpected question: %q", s.Question)
	}
	if mock.CallCount() != 1 {
		t.Errorf("call count = %d, want 1", mock.CallCount())
	}
}

func TestGenerate_SendsSchemaAndContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validScenarioJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Input{
		Lesson:       testLesson(),
		PassedTopics: []string{"Dependents"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "tax-scenario" {
		t.Fatalf("expected tax-scenario schema, got %+v", req.Schema)
	}
	if len(req.Messages) != 1 {
		t.Fatalf("expected one user message, got %d", len(req.Messages))
	}
	if !strings.Contains(req.Messages[0].Content, "Dependents") {
		t.Error("mastery context missing from prompt")
	}
	if req.System == "" {
		t.Error("system prompt missing")
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	wantErr := errors.New("boom")
	mock := llm.NewMockProvider(llm.MockResponse{Err: wantErr})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Input{Lesson: testLesson()})
	if err == nil {
		t.Fatal("expected error")
	}
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected *GenerationError, got %T", err)
	}
	if genErr.Op != "generate" {
		t.Errorf("op = %q, want generate", genErr.Op)
	}
	if !errors.Is(err, wantErr) {
		t.Error("expected wrapped provider error")
	}
}

func TestGenerate_TwistOpLabel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	gen := New(mock, DefaultConfig())

	prev := &Scenario{Situation: "s", Question: "q?"}
	_, err := gen.Generate(context.Background(), Input{Lesson: testLesson(), Previous: prev, Twist: true})
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected *GenerationError, got %T", err)
	}
	if genErr.Op != "twist" {
		t.Errorf("op = %q, want twist", genErr.Op)
	}
}

func TestGenerate_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{not json`)})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Input{Lesson: testLesson()})
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected *GenerationError, got %T", err)
	}
}

func TestGenerate_EmptyFieldsRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"scenario_text":"", "question_text":"Why?"}`),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Input{Lesson: testLesson()})
	if err == nil {
		t.Fatal("expected validation failure for empty scenario_text")
	}
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected *GenerationError, got %T", err)
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected wrapped *ValidationError, got %v", err)
	}
	if valErr.Validator != "structural" {
		t.Errorf("validator = %q, want structural", valErr.Validator)
	}
}
