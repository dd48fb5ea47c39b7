package store

import (
	"context"
	"fmt"

	"github.com/mathmentor/mathmentor/ent"
	"github.com/mathmentor/mathmentor/ent/topicprogress"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Get(ctx context.Context, userID, topic string) (*TopicProgressData, error) {
	row, err := r.client.TopicProgress.Query().
		Where(topicprogress.UserID(userID), topicprogress.Topic(topic)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query topic progress: %w", err)
	}
	return entProgressToData(row), nil
}

func (r *progressRepo) Upsert(ctx context.Context, data TopicProgressData) error {
	err := r.client.TopicProgress.Create().
		SetUserID(data.UserID).
		SetTopic(data.Topic).
		SetTotalQuestionsAttempted(data.TotalQuestionsAttempted).
		SetCorrectAnswers(data.CorrectAnswers).
		SetMasteryLevel(data.MasteryLevel).
		SetLastPracticedAt(data.LastPracticedAt).
		OnConflictColumns(topicprogress.FieldUserID, topicprogress.FieldTopic).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert topic progress: %w", err)
	}
	return nil
}

func (r *progressRepo) ByUser(ctx context.Context, userID string) ([]TopicProgressData, error) {
	rows, err := r.client.TopicProgress.Query().
		Where(topicprogress.UserID(userID)).
		Order(ent.Asc(topicprogress.FieldTopic)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query user progress: %w", err)
	}

	out := make([]TopicProgressData, 0, len(rows))
	for _, row := range rows {
		out = append(out, *entProgressToData(row))
	}
	return out, nil
}

func entProgressToData(row *ent.TopicProgress) *TopicProgressData {
	return &TopicProgressData{
		UserID:                  row.UserID,
		Topic:                   row.Topic,
		TotalQuestionsAttempted: row.TotalQuestionsAttempted,
		CorrectAnswers:          row.CorrectAnswers,
		MasteryLevel:            row.MasteryLevel,
		LastPracticedAt:         row.LastPracticedAt,
	}
}
