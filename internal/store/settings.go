package store

import (
	"context"
	"fmt"

	"github.com/mathmentor/mathmentor/ent"
	"github.com/mathmentor/mathmentor/ent/usersetting"
)

// Default preferences for learners who never saved any.
const (
	DefaultPreferredDifficulty = 1
	DefaultDailyGoal           = 10
)

// settingsRepo implements SettingsRepo using the ent client.
type settingsRepo struct {
	client *ent.Client
}

func (r *settingsRepo) Get(ctx context.Context, userID string) (SettingData, error) {
	row, err := r.client.UserSetting.Query().
		Where(usersetting.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return SettingData{
				UserID:              userID,
				PreferredDifficulty: DefaultPreferredDifficulty,
				DailyGoal:           DefaultDailyGoal,
			}, nil
		}
		return SettingData{}, fmt.Errorf("query settings: %w", err)
	}
	return SettingData{
		UserID:              row.UserID,
		PreferredDifficulty: row.PreferredDifficulty,
		DailyGoal:           row.DailyGoal,
	}, nil
}

func (r *settingsRepo) Set(ctx context.Context, data SettingData) error {
	err := r.client.UserSetting.Create().
		SetUserID(data.UserID).
		SetPreferredDifficulty(data.PreferredDifficulty).
		SetDailyGoal(data.DailyGoal).
		OnConflictColumns(usersetting.FieldUserID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
