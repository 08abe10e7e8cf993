package sqlite

import (
	"context"
	"fmt"
	"strconv"

	"github.com/julianstephens/lifetrack/internal/constants"
	apperrors "github.com/julianstephens/lifetrack/internal/errors"
	"github.com/julianstephens/lifetrack/internal/models"
)

// DefaultSettings returns the settings written by Init on first run.
func DefaultSettings() models.Settings {
	return models.Settings{
		Timezone:          constants.DefaultTimezone,
		HygieneThreshold:  constants.DefaultHygieneThreshold,
		WorkoutStreakMode: models.WorkoutStreakMode(constants.DefaultWorkoutStreakMode),
	}
}

func (s *Store) GetSettings(ctx context.Context) (models.Settings, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, apperrors.Storage("get settings", err)
	}
	defer rows.Close()

	settings := DefaultSettings()
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, apperrors.Storage("get settings", err)
		}
		switch key {
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingHygieneThreshold:
			n, err := strconv.Atoi(value)
			if err != nil {
				return models.Settings{}, fmt.Errorf("parsing %s: %w", key, err)
			}
			settings.HygieneThreshold = n
		case constants.SettingWorkoutStreakMode:
			settings.WorkoutStreakMode = models.WorkoutStreakMode(value)
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, apperrors.Storage("get settings", err)
	}

	if count == 0 {
		return models.Settings{}, apperrors.NotFoundf("settings")
	}
	return settings, nil
}

func (s *Store) SaveSettings(ctx context.Context, settings models.Settings) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.Storage("save settings", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, "INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return apperrors.Storage("save settings", err)
	}
	defer stmt.Close()

	pairs := [][2]string{
		{constants.SettingTimezone, settings.Timezone},
		{constants.SettingHygieneThreshold, strconv.Itoa(settings.HygieneThreshold)},
		{constants.SettingWorkoutStreakMode, string(settings.WorkoutStreakMode)},
	}
	for _, p := range pairs {
		if _, err := stmt.ExecContext(ctx, p[0], p[1]); err != nil {
			return apperrors.Storage("save settings", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.Storage("save settings", err)
	}
	return nil
}
