package store

import (
	"context"
	"fmt"

	"github.com/mathmentor/mathmentor/ent"
	"github.com/mathmentor/mathmentor/ent/assessmentsession"
	"github.com/mathmentor/mathmentor/ent/questionresponse"
)

// assessmentRepo implements AssessmentRepo using the ent client.
type assessmentRepo struct {
	client *ent.Client
}

func (r *assessmentRepo) Record(ctx context.Context, rec AssessmentRecord) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	_, err = tx.AssessmentSession.Create().
		SetSessionID(rec.SessionID).
		SetUserID(rec.UserID).
		SetTopic(rec.Topic).
		SetDifficulty(rec.Difficulty).
		SetTotalQuestions(rec.TotalQuestions).
		SetCorrectAnswers(rec.CorrectAnswers).
		SetScorePercentage(rec.ScorePercentage).
		SetTimeSpentSeconds(rec.TimeSpentSeconds).
		SetCompletedAt(rec.CompletedAt).
		Save(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("save assessment session: %w", err))
	}

	builders := make([]*ent.QuestionResponseCreate, 0, len(rec.Responses))
	for _, resp := range rec.Responses {
		builders = append(builders, tx.QuestionResponse.Create().
			SetSessionID(rec.SessionID).
			SetQuestionText(resp.QuestionText).
			SetCorrectAnswer(resp.CorrectAnswer).
			SetUserAnswer(resp.UserAnswer).
			SetIsCorrect(resp.IsCorrect).
			SetTimeSpentSeconds(resp.TimeSpentSeconds))
	}
	if _, err := tx.QuestionResponse.CreateBulk(builders...).Save(ctx); err != nil {
		return rollback(tx, fmt.Errorf("save question responses: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit assessment: %w", err)
	}
	return nil
}

func (r *assessmentRepo) RecentByUser(ctx context.Context, userID string, limit int) ([]AssessmentRecord, error) {
	q := r.client.AssessmentSession.Query().
		Where(assessmentsession.UserID(userID)).
		Order(ent.Desc(assessmentsession.FieldCompletedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}

	out := make([]AssessmentRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, recordFromRow(row))
	}
	return out, nil
}

func (r *assessmentRepo) BySession(ctx context.Context, userID, sessionID string) (*AssessmentRecord, error) {
	row, err := r.client.AssessmentSession.Query().
		Where(
			assessmentsession.UserID(userID),
			assessmentsession.SessionID(sessionID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query assessment: %w", err)
	}

	rec := recordFromRow(row)
	rec.Responses, err = r.ResponsesBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func recordFromRow(row *ent.AssessmentSession) AssessmentRecord {
	return AssessmentRecord{
		SessionID:        row.SessionID,
		UserID:           row.UserID,
		Topic:            row.Topic,
		Difficulty:       row.Difficulty,
		TotalQuestions:   row.TotalQuestions,
		CorrectAnswers:   row.CorrectAnswers,
		ScorePercentage:  row.ScorePercentage,
		TimeSpentSeconds: row.TimeSpentSeconds,
		CompletedAt:      row.CompletedAt,
	}
}

func (r *assessmentRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	n, err := r.client.AssessmentSession.Query().
		Where(assessmentsession.UserID(userID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count assessments: %w", err)
	}
	return n, nil
}

// ResponsesBySession returns the per-question detail for one session,
// in insertion order.
func (r *assessmentRepo) ResponsesBySession(ctx context.Context, sessionID string) ([]ResponseRecord, error) {
	rows, err := r.client.QuestionResponse.Query().
		Where(questionresponse.SessionID(sessionID)).
		Order(ent.Asc(questionresponse.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query responses: %w", err)
	}

	out := make([]ResponseRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, ResponseRecord{
			QuestionText:     row.QuestionText,
			CorrectAnswer:    row.CorrectAnswer,
			UserAnswer:       row.UserAnswer,
			IsCorrect:        row.IsCorrect,
			TimeSpentSeconds: row.TimeSpentSeconds,
		})
	}
	return out, nil
}

// rollback rolls the transaction back, preferring the original error.
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w (rollback failed: %v)", err, rerr)
	}
	return err
}
