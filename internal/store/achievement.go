package store

import (
	"context"
	"fmt"

	"github.com/mathmentor/mathmentor/ent"
	"github.com/mathmentor/mathmentor/ent/achievement"
)

// achievementRepo implements AchievementRepo using the ent client.
type achievementRepo struct {
	client *ent.Client
}

func (r *achievementRepo) Award(ctx context.Context, a AchievementData) error {
	create := r.client.Achievement.Create().
		SetUserID(a.UserID).
		SetAchievementType(a.Type).
		SetEarnedAt(a.EarnedAt)
	if a.Data != nil {
		create = create.SetData(a.Data)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("save achievement: %w", err)
	}
	return nil
}

func (r *achievementRepo) Has(ctx context.Context, userID, achievementType string, matchData map[string]any) (bool, error) {
	rows, err := r.client.Achievement.Query().
		Where(
			achievement.UserID(userID),
			achievement.AchievementType(achievementType),
		).
		All(ctx)
	if err != nil {
		return false, fmt.Errorf("query achievements: %w", err)
	}

	if matchData == nil {
		return len(rows) > 0, nil
	}
	for _, row := range rows {
		if dataMatches(row.Data, matchData) {
			return true, nil
		}
	}
	return false, nil
}

func (r *achievementRepo) ByUser(ctx context.Context, userID string) ([]AchievementData, error) {
	rows, err := r.client.Achievement.Query().
		Where(achievement.UserID(userID)).
		Order(ent.Desc(achievement.FieldEarnedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query achievements: %w", err)
	}

	out := make([]AchievementData, 0, len(rows))
	for _, row := range rows {
		out = append(out, AchievementData{
			UserID:   row.UserID,
			Type:     row.AchievementType,
			Data:     row.Data,
			EarnedAt: row.EarnedAt,
		})
	}
	return out, nil
}

// dataMatches reports whether every key in want is present in got with
// an equal value. JSON round-tripping makes all numbers float64, so
// comparison goes through fmt.
func dataMatches(got, want map[string]any) bool {
	for k, v := range want {
		gv, ok := got[k]
		if !ok || fmt.Sprint(gv) != fmt.Sprint(v) {
			return false
		}
	}
	return true
}
