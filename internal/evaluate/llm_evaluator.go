package evaluate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mbhatt/taxtutor/internal/llm"
)

// Config controls the behavior of the LLMEvaluator.
type Config struct {
	// MaxTokens is the token budget for the grading response.
	MaxTokens int

	// Temperature controls grading randomness. Kept low so repeated
	// grading of the same answer stays stable.
	Temperature float64
}

// DefaultConfig returns recommended evaluator defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.2,
	}
}

// LLMEvaluator implements Evaluator using the LLM provider.
type LLMEvaluator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMEvaluator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMEvaluator {
	return &LLMEvaluator{provider: provider, config: cfg}
}

// evaluationOutput is the raw LLM response before consistency checks.
type evaluationOutput struct {
	TotalScore int `json:"total_score"`
	Scores     struct {
		TechnicalAccuracy int `json:"technical_accuracy"`
		Completeness      int `json:"completeness"`
		UseOfAuthority    int `json:"use_of_authority"`
		Clarity           int `json:"clarity"`
		Terminology       int `json:"terminology"`
		Presentation      int `json:"presentation"`
	} `json:"scores"`
	Feedback struct {
		Positive   []string `json:"positive"`
		Corrective []string `json:"corrective"`
		Takeaways  []string `json:"takeaways"`
	} `json:"feedback"`
	KnowledgePoints     []string `json:"knowledge_points"`
	DetailedExplanation string   `json:"detailed_explanation"`
}

// Evaluate grades one answer against the rubric.
func (e *LLMEvaluator) Evaluate(ctx context.Context, input Input) (*Result, error) {
	if input.Scenario == nil {
		return nil, &EvaluationError{Err: fmt.Errorf("no scenario to grade against")}
	}
	ctx = llm.WithPurpose(ctx, "answer-evaluation")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      EvaluationSchema,
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, &EvaluationError{Err: err}
	}

	var raw evaluationOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &EvaluationError{Err: err}
	}

	res := &Result{
		TotalScore: raw.TotalScore,
		Scores: Rubric{
			TechnicalAccuracy: raw.Scores.TechnicalAccuracy,
			Completeness:      raw.Scores.Completeness,
			UseOfAuthority:    raw.Scores.UseOfAuthority,
			Clarity:           raw.Scores.Clarity,
			Terminology:       raw.Scores.Terminology,
			Presentation:      raw.Scores.Presentation,
		},
		Feedback: Feedback{
			Positive:   raw.Feedback.Positive,
			Corrective: raw.Feedback.Corrective,
			Takeaways:  raw.Feedback.Takeaways,
		},
		KnowledgePoints:     raw.KnowledgePoints,
		DetailedExplanation: raw.DetailedExplanation,
	}

	// Graders sometimes report a total that disagrees with their own
	// sub-scores. The sub-scores are schema-bounded, so their sum wins
	// when the reported total is out of range.
	if res.TotalScore < 0 || res.TotalScore > 100 {
		res.TotalScore = res.Scores.Sum()
	}

	return res, nil
}
