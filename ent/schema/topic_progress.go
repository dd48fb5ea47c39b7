package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TopicProgress is the per-learner, per-topic mastery aggregate. One
// row per (user_id, topic), updated on every recorded assessment.
type TopicProgress struct {
	ent.Schema
}

func (TopicProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("topic").
			NotEmpty(),
		field.Int("total_questions_attempted").
			Default(0).
			Comment("Lifetime attempted count across sessions"),
		field.Int("correct_answers").
			Default(0).
			Comment("Lifetime correct count across sessions"),
		field.Int("mastery_level").
			Default(0).
			Comment("Lifetime correct percentage 0-100, derived on update"),
		field.Time("last_practiced_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (TopicProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic").Unique(),
		index.Fields("user_id"),
	}
}
