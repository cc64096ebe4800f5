package refs

import (
	"context"

	"github.com/mbhatt/taxtutor/internal/curriculum"
)

// Lookup finds citations for a lesson topic.
type Lookup interface {
	// References returns citations for the lesson. A failed lookup
	// returns an error; callers degrade to an empty list and a fallback
	// message rather than failing the lesson.
	References(ctx context.Context, lesson curriculum.Lesson) ([]Reference, error)
}

// maxReferences caps how many citations a lookup returns.
const maxReferences = 4

// dedupe drops duplicate URIs, preserving first-seen order, and applies
// the reference cap.
func dedupe(in []Reference) []Reference {
	seen := make(map[string]bool, len(in))
	var out []Reference
	for _, r := range in {
		if r.URI == "" || seen[r.URI] {
			continue
		}
		seen[r.URI] = true
		out = append(out, r)
		if len(out) == maxReferences {
			break
		}
	}
	return out
}
