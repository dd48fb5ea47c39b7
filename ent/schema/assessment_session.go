package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentSession records one completed quiz with its final score.
type AssessmentSession struct {
	ent.Schema
}

func (AssessmentSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			Immutable().
			Comment("UUID assigned when the quiz was started"),
		field.String("user_id").
			NotEmpty().
			Comment("Learner identity (anonymous cookie ID)"),
		field.String("topic").
			NotEmpty().
			Comment("Topic the assessment covered"),
		field.Int("difficulty").
			Default(1).
			Comment("Difficulty level 1-3"),
		field.Int("total_questions").
			Comment("Questions served in the session"),
		field.Int("correct_answers").
			Comment("Questions answered correctly"),
		field.Int("score_percentage").
			Comment("Rounded percentage score 0-100"),
		field.Int("time_spent_seconds").
			Default(0).
			Comment("Total time from start to last answer"),
		field.Time("completed_at").
			Default(time.Now).
			Immutable().
			Comment("When the session was scored"),
	}
}

func (AssessmentSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "topic"),
		index.Fields("completed_at"),
	}
}
