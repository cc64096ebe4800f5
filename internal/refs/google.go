package refs

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/mbhatt/taxtutor/internal/curriculum"
)

// GoogleLookup finds citations with a search-grounded Gemini call and
// harvests the grounding chunks rather than the generated text.
type GoogleLookup struct {
	client *genai.Client
	model  string
}

// NewGoogleLookup creates a lookup backed by the Gemini API.
func NewGoogleLookup(ctx context.Context, apiKey, model string) (*GoogleLookup, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GoogleLookup{client: client, model: model}, nil
}

// References runs one grounded query for the lesson's topic and citation.
func (g *GoogleLookup) References(ctx context.Context, lesson curriculum.Lesson) ([]Reference, error) {
	prompt := fmt.Sprintf(
		"Find the authoritative IRS sources for the exam topic %q. The study plan cites: %s. Prefer irs.gov publications, form instructions, and Circular 230.",
		lesson.Topic, lesson.Citation,
	)

	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	}}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("reference lookup: %w", err)
	}

	return extractReferences(result), nil
}

// extractReferences pulls web sources out of the grounding metadata.
func extractReferences(result *genai.GenerateContentResponse) []Reference {
	if result == nil {
		return nil
	}
	var found []Reference
	for _, cand := range result.Candidates {
		if cand == nil || cand.GroundingMetadata == nil {
			continue
		}
		for _, chunk := range cand.GroundingMetadata.GroundingChunks {
			if chunk == nil || chunk.Web == nil {
				continue
			}
			title := chunk.Web.Title
			if title == "" {
				title = chunk.Web.URI
			}
			found = append(found, Reference{Title: title, URI: chunk.Web.URI})
		}
	}
	return dedupe(found)
}
