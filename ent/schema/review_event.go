package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records one spaced-repetition review and the scheduler
// state it produced, enough to audit or rebuild a fact's history.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("fact_id").
			NotEmpty().
			Comment("Reviewed fact (letter, syllable, sight word)"),
		field.Int("rating").
			Comment("1=again 2=hard 3=good 4=easy"),
		field.Float("stability").
			Comment("Post-review memory stability in days"),
		field.Float("difficulty").
			Comment("Post-review difficulty in [1,10]"),
		field.Float("retrievability").
			Comment("Estimated recall probability at review time"),
		field.Int("interval_days").
			Comment("Days until the next review"),
		field.Time("due").
			Comment("Next due date"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("fact_id"),
		index.Fields("due"),
	}
}
