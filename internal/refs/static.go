package refs

import (
	"context"
	"net/url"

	"github.com/mbhatt/taxtutor/internal/curriculum"
)

// StaticLookup serves the study plan's own citation for a lesson plus an
// IRS site search link. It never fails and needs no network access, so it
// is the fallback when search grounding is not configured.
type StaticLookup struct{}

func NewStaticLookup() *StaticLookup {
	return &StaticLookup{}
}

func (s *StaticLookup) References(_ context.Context, lesson curriculum.Lesson) ([]Reference, error) {
	found := []Reference{
		{
			Title: lesson.Citation,
			URI:   "https://www.irs.gov/site-index-search?search=" + url.QueryEscape(lesson.Topic),
		},
	}
	return dedupe(found), nil
}
