package mockexam

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mbhatt/taxtutor/internal/curriculum"
	"github.com/mbhatt/taxtutor/internal/llm"
)

// Request holds the context for generating one mock exam.
type Request struct {
	// Lessons are the passed lessons to sample questions across.
	Lessons []curriculum.Lesson

	// Count is the number of questions to request, from QuestionCount.
	Count int
}

// Generator produces mock-exam questions using an LLM provider.
type Generator interface {
	// Generate produces the question batch. Returns at least one question
	// or a *GenerationError.
	Generate(ctx context.Context, req Request) ([]Question, error)
}

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the whole batch.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns recommended generator defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.8,
	}
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// examOutput is the raw LLM response before validation.
type examOutput struct {
	Questions []struct {
		QuestionText  string   `json:"question_text"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correct_answer"`
		Topic         string   `json:"topic"`
	} `json:"questions"`
}

// Generate produces the question batch for the given request.
func (g *LLMGenerator) Generate(ctx context.Context, req Request) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "mock-exam-generation")

	llmReq := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req)},
		},
		Schema:      ExamSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, llmReq)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	var raw examOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &GenerationError{Err: err}
	}
	if len(raw.Questions) == 0 {
		return nil, &GenerationError{Err: fmt.Errorf("no questions in response")}
	}

	questions := make([]Question, 0, len(raw.Questions))
	for i, rq := range raw.Questions {
		letter, ok := ParseLetter(rq.CorrectAnswer)
		if !ok {
			return nil, &GenerationError{Err: fmt.Errorf("question %d: correct_answer %q is not A-D", i+1, rq.CorrectAnswer)}
		}
		if rq.QuestionText == "" {
			return nil, &GenerationError{Err: fmt.Errorf("question %d: empty question_text", i+1)}
		}
		if len(rq.Options) != 4 {
			return nil, &GenerationError{Err: fmt.Errorf("question %d: got %d options, want 4", i+1, len(rq.Options))}
		}
		q := Question{
			Text:          rq.QuestionText,
			CorrectAnswer: letter,
			Topic:         rq.Topic,
		}
		for j, opt := range rq.Options {
			if opt == "" {
				return nil, &GenerationError{Err: fmt.Errorf("question %d: option %d is empty", i+1, j+1)}
			}
			q.Options[j] = opt
		}
		questions = append(questions, q)
	}

	return questions, nil
}
