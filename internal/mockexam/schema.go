package mockexam

import "github.com/mbhatt/taxtutor/internal/llm"

// ExamSchema defines the JSON schema for mock-exam generation responses.
var ExamSchema = &llm.Schema{
	Name:        "mock-exam",
	Description: "A batch of four-option multiple-choice SEE practice questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_text": map[string]any{
							"type":        "string",
							"description": "The question stem, self-contained, exam style",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"minItems":    4,
							"maxItems":    4,
							"description": "Exactly four option texts in A-D order, without letter prefixes",
						},
						"correct_answer": map[string]any{
							"type": "string",
							"enum": []any{"A", "B", "C", "D"},
						},
						"topic": map[string]any{
							"type":        "string",
							"description": "The mastered topic this question samples",
						},
					},
					"required":             []any{"question_text", "options", "correct_answer", "topic"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
