// Package export writes a JSON snapshot of every collection.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
)

type Snapshot struct {
	App                string                     `json:"app"`
	Version            string                     `json:"version"`
	ExportedAt         time.Time                  `json:"exported_at"`
	Dopamine           []models.DopamineEntry     `json:"dopamine_entries"`
	HygieneHabits      []models.HygieneHabit      `json:"hygiene_habits"`
	HygieneCompletions []models.HygieneCompletion `json:"hygiene_completions"`
	WorkoutTemplates   []models.WorkoutTemplate   `json:"workout_templates"`
	WorkoutExercises   []models.WorkoutExercise   `json:"workout_exercises"`
	WorkoutHistory     []models.WorkoutHistory    `json:"workout_history"`
	Moods              []models.MoodEntry         `json:"mood_entries"`
	FocusSessions      []models.FocusSession      `json:"focus_sessions"`
	Goals              []models.Goal              `json:"goals"`
	DailyCompletions   []models.DailyCompletion   `json:"daily_completions"`
}

// Build reads every collection. Dated records are ordered by date.
func Build(ctx context.Context, store storage.Collections, now time.Time) (*Snapshot, error) {
	snap := &Snapshot{App: constants.AppName, Version: constants.Version, ExportedAt: now}
	byDate := storage.All().Asc("date")

	var err error
	if snap.Dopamine, err = store.Dopamine().Find(ctx, byDate); err != nil {
		return nil, err
	}
	if snap.HygieneHabits, err = store.HygieneHabits().Find(ctx, storage.All().Asc("sort_order")); err != nil {
		return nil, err
	}
	if snap.HygieneCompletions, err = store.HygieneCompletions().Find(ctx, byDate); err != nil {
		return nil, err
	}
	if snap.WorkoutTemplates, err = store.WorkoutTemplates().Find(ctx, storage.All()); err != nil {
		return nil, err
	}
	if snap.WorkoutExercises, err = store.WorkoutExercises().Find(ctx, storage.All()); err != nil {
		return nil, err
	}
	if snap.WorkoutHistory, err = store.WorkoutHistory().Find(ctx, byDate); err != nil {
		return nil, err
	}
	if snap.Moods, err = store.Moods().Find(ctx, byDate); err != nil {
		return nil, err
	}
	if snap.FocusSessions, err = store.FocusSessions().Find(ctx, byDate); err != nil {
		return nil, err
	}
	if snap.Goals, err = store.Goals().Find(ctx, storage.All()); err != nil {
		return nil, err
	}
	if snap.DailyCompletions, err = store.DailyCompletions().Find(ctx, byDate); err != nil {
		return nil, err
	}
	return snap, nil
}

// Write encodes snap as indented JSON.
func Write(w io.Writer, snap *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

// WriteFile writes snap to path via a temp file and rename.
func WriteFile(path string, snap *Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := Write(f, snap); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write export: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write export: %w", err)
	}
	return os.Rename(tmp, path)
}
