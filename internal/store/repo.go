package store

import (
	"context"
	"time"
)

// AssessmentRecord is one completed quiz plus its per-question detail,
// written atomically by AssessmentRepo.Record.
type AssessmentRecord struct {
	SessionID        string           `json:"session_id"`
	UserID           string           `json:"-"`
	Topic            string           `json:"topic"`
	Difficulty       int              `json:"difficulty"`
	TotalQuestions   int              `json:"total_questions"`
	CorrectAnswers   int              `json:"correct_answers"`
	ScorePercentage  int              `json:"score_percentage"`
	TimeSpentSeconds int              `json:"time_spent_seconds"`
	CompletedAt      time.Time        `json:"completed_at"`
	Responses        []ResponseRecord `json:"responses,omitempty"`
}

// ResponseRecord is one answered question within an assessment.
type ResponseRecord struct {
	QuestionText     string `json:"question_text"`
	CorrectAnswer    string `json:"correct_answer"`
	UserAnswer       string `json:"user_answer"`
	IsCorrect        bool   `json:"is_correct"`
	TimeSpentSeconds int    `json:"time_spent_seconds"`
}

// AssessmentRepo persists completed assessments.
type AssessmentRepo interface {
	// Record writes the session row and its responses in one
	// transaction. A duplicate session ID is an error.
	Record(ctx context.Context, rec AssessmentRecord) error

	// RecentByUser returns up to limit sessions, newest first.
	RecentByUser(ctx context.Context, userID string, limit int) ([]AssessmentRecord, error)

	// BySession returns one of the user's sessions with its
	// per-question responses attached, or nil when the user has no
	// session with that id.
	BySession(ctx context.Context, userID, sessionID string) (*AssessmentRecord, error)

	// CountByUser returns how many assessments the user has completed.
	CountByUser(ctx context.Context, userID string) (int, error)
}

// TopicProgressData is the per-topic mastery aggregate.
type TopicProgressData struct {
	UserID                  string    `json:"-"`
	Topic                   string    `json:"topic"`
	TotalQuestionsAttempted int       `json:"total_questions_attempted"`
	CorrectAnswers          int       `json:"correct_answers"`
	MasteryLevel            int       `json:"mastery_level"`
	LastPracticedAt         time.Time `json:"last_practiced_at"`
}

// ProgressRepo maintains per-topic aggregates.
type ProgressRepo interface {
	// Get returns the row for (userID, topic), or nil if the learner
	// has never practiced the topic.
	Get(ctx context.Context, userID, topic string) (*TopicProgressData, error)

	// Upsert inserts or replaces the row for (data.UserID, data.Topic).
	Upsert(ctx context.Context, data TopicProgressData) error

	// ByUser returns all topic rows for the learner.
	ByUser(ctx context.Context, userID string) ([]TopicProgressData, error)
}

// AchievementData is one earned badge.
type AchievementData struct {
	UserID   string         `json:"-"`
	Type     string         `json:"achievement_type"`
	Data     map[string]any `json:"data,omitempty"`
	EarnedAt time.Time      `json:"earned_at"`
}

// AchievementRepo persists earned badges.
type AchievementRepo interface {
	// Award records the badge. Idempotence is the caller's concern;
	// use Has before awarding.
	Award(ctx context.Context, a AchievementData) error

	// Has reports whether the user already earned this type with a
	// matching data payload (nil matchData means any payload).
	Has(ctx context.Context, userID, achievementType string, matchData map[string]any) (bool, error)

	// ByUser returns all badges for the learner, newest first.
	ByUser(ctx context.Context, userID string) ([]AchievementData, error)
}

// SettingData holds per-learner preferences.
type SettingData struct {
	UserID              string `json:"-"`
	PreferredDifficulty int    `json:"preferred_difficulty"`
	DailyGoal           int    `json:"daily_goal"`
}

// SettingsRepo persists learner preferences.
type SettingsRepo interface {
	// Get returns the user's settings, or the defaults when none are
	// stored.
	Get(ctx context.Context, userID string) (SettingData, error)

	// Set inserts or replaces the user's settings.
	Set(ctx context.Context, data SettingData) error
}
