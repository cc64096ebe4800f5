package scenario

import "github.com/mbhatt/taxtutor/internal/llm"

// ScenarioSchema defines the JSON schema for LLM scenario generation responses.
var ScenarioSchema = &llm.Schema{
	Name:        "tax-scenario",
	Description: "A realistic client tax scenario with a single study question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"scenario_text": map[string]any{
				"type":        "string",
				"description": "The client fact pattern: who the client is, the relevant amounts, dates, and events. Plain text, no markdown.",
			},
			"question_text": map[string]any{
				"type":        "string",
				"description": "One focused question asking the candidate to analyze the scenario and state the correct tax treatment.",
			},
		},
		"required":             []any{"scenario_text", "question_text"},
		"additionalProperties": false,
	},
}
