package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReadingEvent records one sanitized page reading within a session.
type ReadingEvent struct {
	ent.Schema
}

func (ReadingEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReadingEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.Int("page_index").
			Comment("Zero-based page position in the story"),
		field.Int("word_count").
			Comment("Words on the page"),
		field.Int("elapsed_ms").
			Comment("Time the page was open"),
		field.Float("wpm").
			Comment("Computed words per minute"),
		field.String("flag").
			NotEmpty().
			Comment("valid, too_fast, or too_slow"),
	}
}

func (ReadingEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("flag"),
	}
}
