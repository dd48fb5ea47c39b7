// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AchievementsColumns holds the columns for the "achievements" table.
	AchievementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "achievement_type", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "earned_at", Type: field.TypeTime},
	}
	// AchievementsTable holds the schema information for the "achievements" table.
	AchievementsTable = &schema.Table{
		Name:       "achievements",
		Columns:    AchievementsColumns,
		PrimaryKey: []*schema.Column{AchievementsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "achievement_user_id",
				Unique:  false,
				Columns: []*schema.Column{AchievementsColumns[1]},
			},
			{
				Name:    "achievement_user_id_achievement_type",
				Unique:  false,
				Columns: []*schema.Column{AchievementsColumns[1], AchievementsColumns[2]},
			},
		},
	}
	// AssessmentSessionsColumns holds the columns for the "assessment_sessions" table.
	AssessmentSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeInt, Default: 1},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "correct_answers", Type: field.TypeInt},
		{Name: "score_percentage", Type: field.TypeInt},
		{Name: "time_spent_seconds", Type: field.TypeInt, Default: 0},
		{Name: "completed_at", Type: field.TypeTime},
	}
	// AssessmentSessionsTable holds the schema information for the "assessment_sessions" table.
	AssessmentSessionsTable = &schema.Table{
		Name:       "assessment_sessions",
		Columns:    AssessmentSessionsColumns,
		PrimaryKey: []*schema.Column{AssessmentSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentsession_user_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentSessionsColumns[2]},
			},
			{
				Name:    "assessmentsession_user_id_topic",
				Unique:  false,
				Columns: []*schema.Column{AssessmentSessionsColumns[2], AssessmentSessionsColumns[3]},
			},
			{
				Name:    "assessmentsession_completed_at",
				Unique:  false,
				Columns: []*schema.Column{AssessmentSessionsColumns[9]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[7]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// QuestionResponsesColumns holds the columns for the "question_responses" table.
	QuestionResponsesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_text", Type: field.TypeString},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "user_answer", Type: field.TypeString},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "time_spent_seconds", Type: field.TypeInt, Default: 0},
	}
	// QuestionResponsesTable holds the schema information for the "question_responses" table.
	QuestionResponsesTable = &schema.Table{
		Name:       "question_responses",
		Columns:    QuestionResponsesColumns,
		PrimaryKey: []*schema.Column{QuestionResponsesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questionresponse_session_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionResponsesColumns[1]},
			},
		},
	}
	// TopicProgressesColumns holds the columns for the "topic_progresses" table.
	TopicProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "total_questions_attempted", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "mastery_level", Type: field.TypeInt, Default: 0},
		{Name: "last_practiced_at", Type: field.TypeTime},
	}
	// TopicProgressesTable holds the schema information for the "topic_progresses" table.
	TopicProgressesTable = &schema.Table{
		Name:       "topic_progresses",
		Columns:    TopicProgressesColumns,
		PrimaryKey: []*schema.Column{TopicProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topicprogress_user_id_topic",
				Unique:  true,
				Columns: []*schema.Column{TopicProgressesColumns[1], TopicProgressesColumns[2]},
			},
			{
				Name:    "topicprogress_user_id",
				Unique:  false,
				Columns: []*schema.Column{TopicProgressesColumns[1]},
			},
		},
	}
	// UserSettingsColumns holds the columns for the "user_settings" table.
	UserSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "preferred_difficulty", Type: field.TypeInt, Default: 1},
		{Name: "daily_goal", Type: field.TypeInt, Default: 10},
	}
	// UserSettingsTable holds the schema information for the "user_settings" table.
	UserSettingsTable = &schema.Table{
		Name:       "user_settings",
		Columns:    UserSettingsColumns,
		PrimaryKey: []*schema.Column{UserSettingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "usersetting_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserSettingsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AchievementsTable,
		AssessmentSessionsTable,
		LlmRequestEventsTable,
		QuestionResponsesTable,
		TopicProgressesTable,
		UserSettingsTable,
	}
)

func init() {
}
