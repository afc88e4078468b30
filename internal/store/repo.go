package store

import (
	"context"
	"time"
)

// StudySession is a persisted record of actual study activity. It is logged
// by the student after the fact and never touched by the plan generator.
type StudySession struct {
	ID               int
	Topic            string
	DurationMinutes  float64
	Completed        bool
	Date             time.Time
	Notes            string
	DifficultyRating int // 1-5, 0 when unrated
	FocusLevel       int // 1-10, 0 when unrated
}

// CreateSessionData holds the fields for a new study-session record.
// Date defaults to now when zero; DifficultyRating and FocusLevel are
// optional and omitted when zero.
type CreateSessionData struct {
	Topic            string
	DurationMinutes  float64
	Completed        bool
	Date             time.Time
	Notes            string
	DifficultyRating int
	FocusLevel       int
}

// SessionUpdate describes a partial update; nil fields are left unchanged.
type SessionUpdate struct {
	Completed        *bool
	Notes            *string
	DifficultyRating *int
	FocusLevel       *int
}

// SessionQueryOpts filters session listings.
type SessionQueryOpts struct {
	Limit         int    // max results (0 = unlimited)
	Topic         string // exact topic match when non-empty
	CompletedOnly bool
}

// SessionRepo manages persisted study-session records.
type SessionRepo interface {
	// Create stores a new record and returns it with its assigned id.
	Create(ctx context.Context, data CreateSessionData) (*StudySession, error)

	// Get returns the record with the given id, or nil if it doesn't exist.
	Get(ctx context.Context, id int) (*StudySession, error)

	// List returns records newest first.
	List(ctx context.Context, opts SessionQueryOpts) ([]StudySession, error)

	// Update applies a partial update and returns the updated record.
	Update(ctx context.Context, id int, upd SessionUpdate) (*StudySession, error)

	// Delete removes the record with the given id.
	Delete(ctx context.Context, id int) error
}

// LLMRequestEventData captures a single LLM API call.
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

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns the event with the given id, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)
}
