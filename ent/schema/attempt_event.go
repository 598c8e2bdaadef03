package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single practice attempt within a session.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("skill_id").
			NotEmpty().
			Comment("Skill this exercise drilled"),
		field.String("kind").
			NotEmpty().
			Comment("Exercise kind: letra, silaba, palabra, dictado"),
		field.Bool("correct").
			Comment("Whether the attempt was correct"),
		field.Int("latency_ms").
			Comment("Milliseconds to answer"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("skill_id"),
		index.Fields("correct"),
	}
}
