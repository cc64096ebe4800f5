package scenario

import (
	"context"
	"encoding/json"

	"github.com/mbhatt/taxtutor/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// scenarioOutput is the raw LLM response before validation.
type scenarioOutput struct {
	ScenarioText string `json:"scenario_text"`
	QuestionText string `json:"question_text"`
}

// Generate produces a single scenario for the given input context.
func (g *LLMGenerator) Generate(ctx context.Context, input Input) (*Scenario, error) {
	op := "generate"
	if input.Twist {
		op = "twist"
	}
	ctx = llm.WithPurpose(ctx, "scenario-generation")

	userMsg := buildUserMessage(input, g.config)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      ScenarioSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &GenerationError{Op: op, Err: err}
	}

	var raw scenarioOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &GenerationError{Op: op, Err: err}
	}

	s := &Scenario{
		Situation: raw.ScenarioText,
		Question:  raw.QuestionText,
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(s, input); verr != nil {
			return nil, &GenerationError{Op: op, Err: verr}
		}
	}

	return s, nil
}
