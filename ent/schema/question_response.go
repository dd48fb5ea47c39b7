package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestionResponse records one answered question within an assessment.
// Question text is denormalized so sessions over generated questions
// stay reviewable after the generation is gone.
type QuestionResponse struct {
	ent.Schema
}

func (QuestionResponse) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the owning assessment session"),
		field.String("question_text").
			NotEmpty().
			Comment("The prompt as shown to the learner"),
		field.String("correct_answer").
			Comment("Expected answer at the time of asking"),
		field.String("user_answer").
			Comment("Raw submission, empty when skipped"),
		field.Bool("is_correct").
			Comment("Verdict from normalized comparison"),
		field.Int("time_spent_seconds").
			Default(0).
			Comment("Seconds spent on this question"),
	}
}

func (QuestionResponse) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
