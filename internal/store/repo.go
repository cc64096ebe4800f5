package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To
}

// LessonProgressData is one curriculum day's persisted progress row.
// PassedAt is RFC 3339 or nil while the lesson is still open.
type LessonProgressData struct {
	Day             int
	Status          string
	Score           int
	TwistsCompleted int
	PassedAt        *string
}

// ProgressRepo manages the learner's curriculum progress. Save replaces
// the whole set, so the rows on disk always describe one consistent run.
type ProgressRepo interface {
	// Load returns all progress rows ordered by day.
	Load(ctx context.Context) ([]LessonProgressData, error)

	// Save atomically replaces all progress rows.
	Save(ctx context.Context, rows []LessonProgressData) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// SessionEventData captures one study milestone: a lesson started, a
// topic passed, or a mock exam finished.
type SessionEventData struct {
	SessionID string
	Action    string
	Day       int
	Topic     string
	Score     int
	Total     int
	Percent   float64
}

// SessionEvent is a stored study milestone.
type SessionEvent struct {
	ID        int
	Timestamp time.Time
	SessionID string
	Action    string
	Day       int
	Topic     string
	Score     int
	Total     int
	Percent   float64
}

// PurposeUsage aggregates LLM calls by purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM calls by model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendSessionEvent records a study milestone.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// QuerySessionEvents returns study milestones, newest first.
	QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionEvent, error)

	// LLMUsageByPurpose aggregates LLM usage per request purpose.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates LLM usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
