// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "latency_ms", Type: field.TypeInt},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_skill_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
			{
				Name:    "attemptevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[6]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// ReadingEventsColumns holds the columns for the "reading_events" table.
	ReadingEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "page_index", Type: field.TypeInt},
		{Name: "word_count", Type: field.TypeInt},
		{Name: "elapsed_ms", Type: field.TypeInt},
		{Name: "wpm", Type: field.TypeFloat64},
		{Name: "flag", Type: field.TypeString},
	}
	// ReadingEventsTable holds the schema information for the "reading_events" table.
	ReadingEventsTable = &schema.Table{
		Name:       "reading_events",
		Columns:    ReadingEventsColumns,
		PrimaryKey: []*schema.Column{ReadingEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "readingevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReadingEventsColumns[1]},
			},
			{
				Name:    "readingevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReadingEventsColumns[2]},
			},
			{
				Name:    "readingevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ReadingEventsColumns[3]},
			},
			{
				Name:    "readingevent_flag",
				Unique:  false,
				Columns: []*schema.Column{ReadingEventsColumns[8]},
			},
		},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "fact_id", Type: field.TypeString},
		{Name: "rating", Type: field.TypeInt},
		{Name: "stability", Type: field.TypeFloat64},
		{Name: "difficulty", Type: field.TypeFloat64},
		{Name: "retrievability", Type: field.TypeFloat64},
		{Name: "interval_days", Type: field.TypeInt},
		{Name: "due", Type: field.TypeTime},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[2]},
			},
			{
				Name:    "reviewevent_fact_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3]},
			},
			{
				Name:    "reviewevent_due",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[9]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "wpm", Type: field.TypeFloat64, Default: 0},
		{Name: "confidence", Type: field.TypeString, Default: ""},
		{Name: "nivel", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		LlmRequestEventsTable,
		ReadingEventsTable,
		ReviewEventsTable,
		SessionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
