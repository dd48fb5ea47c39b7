// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mathmentor/mathmentor/ent/achievement"
	"github.com/mathmentor/mathmentor/ent/assessmentsession"
	"github.com/mathmentor/mathmentor/ent/llmrequestevent"
	"github.com/mathmentor/mathmentor/ent/questionresponse"
	"github.com/mathmentor/mathmentor/ent/schema"
	"github.com/mathmentor/mathmentor/ent/topicprogress"
	"github.com/mathmentor/mathmentor/ent/usersetting"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementFields := schema.Achievement{}.Fields()
	_ = achievementFields
	// achievementDescUserID is the schema descriptor for user_id field.
	achievementDescUserID := achievementFields[0].Descriptor()
	// achievement.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	achievement.UserIDValidator = achievementDescUserID.Validators[0].(func(string) error)
	// achievementDescAchievementType is the schema descriptor for achievement_type field.
	achievementDescAchievementType := achievementFields[1].Descriptor()
	// achievement.AchievementTypeValidator is a validator for the "achievement_type" field. It is called by the builders before save.
	achievement.AchievementTypeValidator = achievementDescAchievementType.Validators[0].(func(string) error)
	// achievementDescEarnedAt is the schema descriptor for earned_at field.
	achievementDescEarnedAt := achievementFields[3].Descriptor()
	// achievement.DefaultEarnedAt holds the default value on creation for the earned_at field.
	achievement.DefaultEarnedAt = achievementDescEarnedAt.Default.(func() time.Time)
	assessmentsessionFields := schema.AssessmentSession{}.Fields()
	_ = assessmentsessionFields
	// assessmentsessionDescUserID is the schema descriptor for user_id field.
	assessmentsessionDescUserID := assessmentsessionFields[1].Descriptor()
	// assessmentsession.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	assessmentsession.UserIDValidator = assessmentsessionDescUserID.Validators[0].(func(string) error)
	// assessmentsessionDescTopic is the schema descriptor for topic field.
	assessmentsessionDescTopic := assessmentsessionFields[2].Descriptor()
	// assessmentsession.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	assessmentsession.TopicValidator = assessmentsessionDescTopic.Validators[0].(func(string) error)
	// assessmentsessionDescDifficulty is the schema descriptor for difficulty field.
	assessmentsessionDescDifficulty := assessmentsessionFields[3].Descriptor()
	// assessmentsession.DefaultDifficulty holds the default value on creation for the difficulty field.
	assessmentsession.DefaultDifficulty = assessmentsessionDescDifficulty.Default.(int)
	// assessmentsessionDescTimeSpentSeconds is the schema descriptor for time_spent_seconds field.
	assessmentsessionDescTimeSpentSeconds := assessmentsessionFields[7].Descriptor()
	// assessmentsession.DefaultTimeSpentSeconds holds the default value on creation for the time_spent_seconds field.
	assessmentsession.DefaultTimeSpentSeconds = assessmentsessionDescTimeSpentSeconds.Default.(int)
	// assessmentsessionDescCompletedAt is the schema descriptor for completed_at field.
	assessmentsessionDescCompletedAt := assessmentsessionFields[8].Descriptor()
	// assessmentsession.DefaultCompletedAt holds the default value on creation for the completed_at field.
	assessmentsession.DefaultCompletedAt = assessmentsessionDescCompletedAt.Default.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	questionresponseFields := schema.QuestionResponse{}.Fields()
	_ = questionresponseFields
	// questionresponseDescSessionID is the schema descriptor for session_id field.
	questionresponseDescSessionID := questionresponseFields[0].Descriptor()
	// questionresponse.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	questionresponse.SessionIDValidator = questionresponseDescSessionID.Validators[0].(func(string) error)
	// questionresponseDescQuestionText is the schema descriptor for question_text field.
	questionresponseDescQuestionText := questionresponseFields[1].Descriptor()
	// questionresponse.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	questionresponse.QuestionTextValidator = questionresponseDescQuestionText.Validators[0].(func(string) error)
	// questionresponseDescTimeSpentSeconds is the schema descriptor for time_spent_seconds field.
	questionresponseDescTimeSpentSeconds := questionresponseFields[5].Descriptor()
	// questionresponse.DefaultTimeSpentSeconds holds the default value on creation for the time_spent_seconds field.
	questionresponse.DefaultTimeSpentSeconds = questionresponseDescTimeSpentSeconds.Default.(int)
	topicprogressFields := schema.TopicProgress{}.Fields()
	_ = topicprogressFields
	// topicprogressDescUserID is the schema descriptor for user_id field.
	topicprogressDescUserID := topicprogressFields[0].Descriptor()
	// topicprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	topicprogress.UserIDValidator = topicprogressDescUserID.Validators[0].(func(string) error)
	// topicprogressDescTopic is the schema descriptor for topic field.
	topicprogressDescTopic := topicprogressFields[1].Descriptor()
	// topicprogress.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	topicprogress.TopicValidator = topicprogressDescTopic.Validators[0].(func(string) error)
	// topicprogressDescTotalQuestionsAttempted is the schema descriptor for total_questions_attempted field.
	topicprogressDescTotalQuestionsAttempted := topicprogressFields[2].Descriptor()
	// topicprogress.DefaultTotalQuestionsAttempted holds the default value on creation for the total_questions_attempted field.
	topicprogress.DefaultTotalQuestionsAttempted = topicprogressDescTotalQuestionsAttempted.Default.(int)
	// topicprogressDescCorrectAnswers is the schema descriptor for correct_answers field.
	topicprogressDescCorrectAnswers := topicprogressFields[3].Descriptor()
	// topicprogress.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	topicprogress.DefaultCorrectAnswers = topicprogressDescCorrectAnswers.Default.(int)
	// topicprogressDescMasteryLevel is the schema descriptor for mastery_level field.
	topicprogressDescMasteryLevel := topicprogressFields[4].Descriptor()
	// topicprogress.DefaultMasteryLevel holds the default value on creation for the mastery_level field.
	topicprogress.DefaultMasteryLevel = topicprogressDescMasteryLevel.Default.(int)
	// topicprogressDescLastPracticedAt is the schema descriptor for last_practiced_at field.
	topicprogressDescLastPracticedAt := topicprogressFields[5].Descriptor()
	// topicprogress.DefaultLastPracticedAt holds the default value on creation for the last_practiced_at field.
	topicprogress.DefaultLastPracticedAt = topicprogressDescLastPracticedAt.Default.(func() time.Time)
	// topicprogress.UpdateDefaultLastPracticedAt holds the default value on update for the last_practiced_at field.
	topicprogress.UpdateDefaultLastPracticedAt = topicprogressDescLastPracticedAt.UpdateDefault.(func() time.Time)
	usersettingFields := schema.UserSetting{}.Fields()
	_ = usersettingFields
	// usersettingDescUserID is the schema descriptor for user_id field.
	usersettingDescUserID := usersettingFields[0].Descriptor()
	// usersetting.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	usersetting.UserIDValidator = usersettingDescUserID.Validators[0].(func(string) error)
	// usersettingDescPreferredDifficulty is the schema descriptor for preferred_difficulty field.
	usersettingDescPreferredDifficulty := usersettingFields[1].Descriptor()
	// usersetting.DefaultPreferredDifficulty holds the default value on creation for the preferred_difficulty field.
	usersetting.DefaultPreferredDifficulty = usersettingDescPreferredDifficulty.Default.(int)
	// usersettingDescDailyGoal is the schema descriptor for daily_goal field.
	usersettingDescDailyGoal := usersettingFields[2].Descriptor()
	// usersetting.DefaultDailyGoal holds the default value on creation for the daily_goal field.
	usersetting.DefaultDailyGoal = usersettingDescDailyGoal.Default.(int)
}
