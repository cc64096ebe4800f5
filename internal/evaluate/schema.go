package evaluate

import "github.com/mbhatt/taxtutor/internal/llm"

// EvaluationSchema defines the JSON schema for grading responses.
var EvaluationSchema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "A rubric-graded evaluation of a candidate's free-text answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"total_score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Sum of the six sub-scores",
			},
			"scores": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"technical_accuracy": map[string]any{"type": "integer", "minimum": 0, "maximum": 30},
					"completeness":       map[string]any{"type": "integer", "minimum": 0, "maximum": 30},
					"use_of_authority":   map[string]any{"type": "integer", "minimum": 0, "maximum": 15},
					"clarity":            map[string]any{"type": "integer", "minimum": 0, "maximum": 10},
					"terminology":        map[string]any{"type": "integer", "minimum": 0, "maximum": 10},
					"presentation":       map[string]any{"type": "integer", "minimum": 0, "maximum": 5},
				},
				"required": []any{
					"technical_accuracy", "completeness", "use_of_authority",
					"clarity", "terminology", "presentation",
				},
				"additionalProperties": false,
			},
			"feedback": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"positive":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"corrective": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"takeaways":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
				"required":             []any{"positive", "corrective", "takeaways"},
				"additionalProperties": false,
			},
			"knowledge_points": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Key rules the candidate missed. Empty when total_score >= 90.",
			},
			"detailed_explanation": map[string]any{
				"type":        "string",
				"description": "A model answer walking through the correct analysis. Empty when total_score >= 90.",
			},
		},
		"required": []any{
			"total_score", "scores", "feedback",
			"knowledge_points", "detailed_explanation",
		},
		"additionalProperties": false,
	},
}
