// Package progress turns scored sessions into durable learner history:
// assessment rows, per-topic mastery aggregates, and achievements.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/mathmentor/mathmentor/internal/quiz"
	"github.com/mathmentor/mathmentor/internal/store"
)

// Achievement types.
const (
	FirstAssessment = "first_assessment"
	PerfectScore    = "perfect_score"
	TopicMastery    = "topic_mastery"
)

// Mastery thresholds.
const (
	// masteryLevel and question floor for the topic_mastery badge.
	masteryBadgeLevel     = 80
	masteryBadgeQuestions = 20

	// Ceiling and attempt floor that mark a topic as weak.
	weakMasteryLevel = 60
	weakMinAttempts  = 5
)

// Service coordinates the three progress repositories.
type Service struct {
	assessments  store.AssessmentRepo
	progress     store.ProgressRepo
	achievements store.AchievementRepo

	now func() time.Time
}

// NewService creates a progress service over the given repositories.
func NewService(assessments store.AssessmentRepo, progress store.ProgressRepo, achievements store.AchievementRepo) *Service {
	return &Service{
		assessments:  assessments,
		progress:     progress,
		achievements: achievements,
		now:          time.Now,
	}
}

// CompletedAssessment is one scored session ready for recording. The
// API layer builds it from client submissions; server-driven flows use
// FromSession.
type CompletedAssessment struct {
	SessionID       string
	Topic           string
	Difficulty      int
	Report          quiz.Report
	DurationSeconds int

	// QuestionSeconds is optional per-question timing; indices beyond
	// its length record as zero.
	QuestionSeconds []int
}

// FromSession builds a CompletedAssessment from a finished quiz session.
func FromSession(sess *quiz.Session, report quiz.Report) CompletedAssessment {
	ca := CompletedAssessment{
		SessionID:       sess.ID,
		Topic:           sess.Topic,
		Difficulty:      sess.Difficulty,
		Report:          report,
		DurationSeconds: int(sess.Duration().Seconds()),
	}
	for i := range report.PerQuestion {
		ca.QuestionSeconds = append(ca.QuestionSeconds, int(sess.QuestionElapsed(i).Seconds()))
	}
	return ca
}

// RecordAssessment persists one scored session for the user: the
// session row with per-question detail, the recomputed topic aggregate,
// and any newly earned achievements, which it returns.
//
// Mastery is the lifetime correct percentage over all recorded
// sessions for the topic, not a moving average.
func (s *Service) RecordAssessment(ctx context.Context, userID string, ca CompletedAssessment) ([]store.AchievementData, error) {
	now := s.now().UTC()

	rec := store.AssessmentRecord{
		SessionID:        ca.SessionID,
		UserID:           userID,
		Topic:            ca.Topic,
		Difficulty:       ca.Difficulty,
		TotalQuestions:   ca.Report.Total,
		CorrectAnswers:   ca.Report.Correct,
		ScorePercentage:  ca.Report.Percentage,
		TimeSpentSeconds: ca.DurationSeconds,
		CompletedAt:      now,
	}
	for i, qr := range ca.Report.PerQuestion {
		seconds := 0
		if i < len(ca.QuestionSeconds) {
			seconds = ca.QuestionSeconds[i]
		}
		rec.Responses = append(rec.Responses, store.ResponseRecord{
			QuestionText:     qr.Prompt,
			CorrectAnswer:    qr.CorrectAnswer,
			UserAnswer:       qr.UserAnswer,
			IsCorrect:        qr.Correct,
			TimeSpentSeconds: seconds,
		})
	}

	if err := s.assessments.Record(ctx, rec); err != nil {
		return nil, fmt.Errorf("record assessment: %w", err)
	}

	updated, err := s.applyToTopic(ctx, userID, ca.Topic, ca.Report, now)
	if err != nil {
		return nil, err
	}

	earned, err := s.evaluateAchievements(ctx, userID, ca.Report, updated, now)
	if err != nil {
		return nil, err
	}
	return earned, nil
}

// applyToTopic folds the report into the (userID, topic) aggregate and
// returns the updated row.
func (s *Service) applyToTopic(ctx context.Context, userID, topic string, report quiz.Report, now time.Time) (store.TopicProgressData, error) {
	existing, err := s.progress.Get(ctx, userID, topic)
	if err != nil {
		return store.TopicProgressData{}, fmt.Errorf("load topic progress: %w", err)
	}

	updated := store.TopicProgressData{UserID: userID, Topic: topic}
	if existing != nil {
		updated = *existing
	}
	updated.TotalQuestionsAttempted += report.Total
	updated.CorrectAnswers += report.Correct
	updated.MasteryLevel = quiz.Percentage(updated.CorrectAnswers, updated.TotalQuestionsAttempted)
	updated.LastPracticedAt = now

	if err := s.progress.Upsert(ctx, updated); err != nil {
		return store.TopicProgressData{}, fmt.Errorf("update topic progress: %w", err)
	}
	return updated, nil
}

// evaluateAchievements awards whatever the just-recorded assessment
// newly qualifies for.
func (s *Service) evaluateAchievements(ctx context.Context, userID string, report quiz.Report, topic store.TopicProgressData, now time.Time) ([]store.AchievementData, error) {
	var earned []store.AchievementData

	award := func(achievementType string, data map[string]any) error {
		a := store.AchievementData{UserID: userID, Type: achievementType, Data: data, EarnedAt: now}
		if err := s.achievements.Award(ctx, a); err != nil {
			return fmt.Errorf("award %s: %w", achievementType, err)
		}
		earned = append(earned, a)
		return nil
	}

	count, err := s.assessments.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count assessments: %w", err)
	}
	if count == 1 {
		if err := award(FirstAssessment, nil); err != nil {
			return nil, err
		}
	}

	if report.Percentage == 100 && report.Total > 0 {
		has, err := s.achievements.Has(ctx, userID, PerfectScore, nil)
		if err != nil {
			return nil, fmt.Errorf("check perfect score: %w", err)
		}
		if !has {
			if err := award(PerfectScore, nil); err != nil {
				return nil, err
			}
		}
	}

	if topic.MasteryLevel >= masteryBadgeLevel && topic.TotalQuestionsAttempted >= masteryBadgeQuestions {
		scope := map[string]any{"topic": topic.Topic}
		has, err := s.achievements.Has(ctx, userID, TopicMastery, scope)
		if err != nil {
			return nil, fmt.Errorf("check topic mastery: %w", err)
		}
		if !has {
			if err := award(TopicMastery, scope); err != nil {
				return nil, err
			}
		}
	}

	return earned, nil
}

// Summary is the data behind the progress dashboard.
type Summary struct {
	Topics       []store.TopicProgressData `json:"topics"`
	Recent       []store.AssessmentRecord  `json:"recent_sessions"`
	Achievements []store.AchievementData   `json:"achievements"`
}

// Summary returns the learner's per-topic aggregates, recent sessions,
// and earned achievements.
func (s *Service) Summary(ctx context.Context, userID string) (Summary, error) {
	topics, err := s.progress.ByUser(ctx, userID)
	if err != nil {
		return Summary{}, fmt.Errorf("load topics: %w", err)
	}
	recent, err := s.assessments.RecentByUser(ctx, userID, 10)
	if err != nil {
		return Summary{}, fmt.Errorf("load recent sessions: %w", err)
	}
	badges, err := s.achievements.ByUser(ctx, userID)
	if err != nil {
		return Summary{}, fmt.Errorf("load achievements: %w", err)
	}
	return Summary{Topics: topics, Recent: recent, Achievements: badges}, nil
}

// Assessment returns one of the learner's recorded sessions with its
// per-question detail, for reviewing past mistakes. It is nil when the
// learner has no session with that id.
func (s *Service) Assessment(ctx context.Context, userID, sessionID string) (*store.AssessmentRecord, error) {
	rec, err := s.assessments.BySession(ctx, userID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load assessment: %w", err)
	}
	return rec, nil
}

// WeakTopics returns topics with enough attempts to judge and low
// mastery, feeding the weak-area practice flow.
func (s *Service) WeakTopics(ctx context.Context, userID string) ([]string, error) {
	topics, err := s.progress.ByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load topics: %w", err)
	}

	var weak []string
	for _, tp := range topics {
		if tp.TotalQuestionsAttempted >= weakMinAttempts && tp.MasteryLevel < weakMasteryLevel {
			weak = append(weak, tp.Topic)
		}
	}
	return weak, nil
}
