package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("attempts").
			Default(0).
			Comment("Total attempts (on end only)"),
		field.Int("correct").
			Default(0).
			Comment("Total correct (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
		field.Float("wpm").
			Default(0).
			Comment("Robust session WPM (on end only, 0 when no reading)"),
		field.String("confidence").
			Default("").
			Comment("WPM confidence: high, medium, low (on end only)"),
		field.Int("nivel").
			Default(0).
			Comment("Reading level the session ran at"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
