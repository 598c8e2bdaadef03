package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotVersion is the current SnapshotData layout version.
const SnapshotVersion = 1

// SkillMasteryData is the persisted per-skill mastery state.
type SkillMasteryData struct {
	SkillID       string `json:"skill_id"`
	Window        []bool `json:"window"`
	TotalAttempts int    `json:"total_attempts"`
	CorrectCount  int    `json:"correct_count"`
}

// MasterySnapshotData is the mastery tracker's persisted state.
type MasterySnapshotData struct {
	Skills map[string]*SkillMasteryData `json:"skills"`
}

// FsrsCardData is the persisted spaced-repetition state for one fact.
// Timestamps are RFC3339 strings so the JSON stays readable.
type FsrsCardData struct {
	FactID     string  `json:"fact_id"`
	Difficulty float64 `json:"difficulty"`
	Stability  float64 `json:"stability"`
	Reps       int     `json:"reps"`
	Lapses     int     `json:"lapses"`
	LastReview string  `json:"last_review"`
	Due        string  `json:"due"`
}

// FsrsSnapshotData is the scheduler's persisted state.
type FsrsSnapshotData struct {
	Cards map[string]*FsrsCardData `json:"cards"`
}

// PaceSessionData is one persisted per-session WPM figure, the input
// the cross-session trend is rebuilt from.
type PaceSessionData struct {
	At         string  `json:"at"` // RFC3339
	WPM        float64 `json:"wpm"`
	Confidence string  `json:"confidence"`
	Nivel      int     `json:"nivel"`
}

// PaceSnapshotData is the chronological session WPM history.
type PaceSnapshotData struct {
	Sessions []PaceSessionData `json:"sessions"`
}

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version int                  `json:"version"`
	Mastery *MasterySnapshotData `json:"mastery,omitempty"`
	Fsrs    *FsrsSnapshotData    `json:"fsrs,omitempty"`
	Pace    *PaceSnapshotData    `json:"pace,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AttemptEventData captures one practice attempt.
type AttemptEventData struct {
	SessionID string
	SkillID   string
	Kind      string
	Correct   bool
	LatencyMs int
}

// ReviewEventData captures one spaced-repetition review.
type ReviewEventData struct {
	FactID         string
	Rating         int
	Stability      float64
	Difficulty     float64
	Retrievability float64
	IntervalDays   int
	Due            time.Time
}

// ReadingEventData captures one sanitized page reading.
type ReadingEventData struct {
	SessionID string
	PageIndex int
	WordCount int
	ElapsedMs int
	WPM       float64
	Flag      string
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID    string
	Action       string // start or end
	Attempts     int
	Correct      int
	DurationSecs int
	WPM          float64
	Confidence   string
	Nivel        int
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
}

// LLMEvent is a persisted LLM request event as returned by queries.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token usage for one purpose label.
type LLMUsage struct {
	Purpose      string
	Requests     int
	InputTokens  int
	OutputTokens int
	Failures     int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttempt records a practice attempt.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// AppendReview records a spaced-repetition review result.
	AppendReview(ctx context.Context, data ReviewEventData) error

	// AppendReading records a sanitized page reading.
	AppendReading(ctx context.Context, data ReadingEventData) error

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// SkillAccuracy returns the all-time accuracy for a skill and the
	// number of attempts it is based on.
	SkillAccuracy(ctx context.Context, skillID string) (float64, int, error)

	// RecentSkillIDs returns distinct skill ids from the most recent
	// attempts, newest first.
	RecentSkillIDs(ctx context.Context, limit int) ([]string, error)

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// LLMUsageByPurpose aggregates LLM usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
}
