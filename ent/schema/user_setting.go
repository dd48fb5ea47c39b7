package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserSetting holds per-learner preferences. One row per user.
type UserSetting struct {
	ent.Schema
}

func (UserSetting) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Unique().
			NotEmpty(),
		field.Int("preferred_difficulty").
			Default(1).
			Comment("Default difficulty for new assessments, 1-3"),
		field.Int("daily_goal").
			Default(10).
			Comment("Target questions per day"),
	}
}

func (UserSetting) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
