package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Achievement records an earned badge. A learner earns each type at
// most once per scope (the scope lives in data, e.g. the mastered
// topic).
type Achievement struct {
	ent.Schema
}

func (Achievement) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("achievement_type").
			NotEmpty().
			Comment("first_assessment, perfect_score, topic_mastery"),
		field.JSON("data", map[string]any{}).
			Optional().
			Comment("Type-specific detail, e.g. {\"topic\": \"algebra\"}"),
		field.Time("earned_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Achievement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "achievement_type"),
	}
}
