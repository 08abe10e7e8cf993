package tracker

import (
	"context"

	"github.com/julianstephens/lifetrack/internal/logger"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
)

var defaultExercises = []models.WorkoutExercise{
	{Name: "Squats", Order: 1, TargetSets: 3, TargetReps: 10},
	{Name: "Push-ups", Order: 2, TargetSets: 3, TargetReps: 15},
	{Name: "Pull-ups", Order: 3, TargetSets: 3, TargetReps: 8},
}

// SeedResult reports which collections SeedDefaults populated.
type SeedResult struct {
	Template bool
	Goals    bool
}

// SeedDefaults adds the starter workout template and goals. Each is only
// seeded into an empty collection, so repeated calls are no-ops.
func (s *Service) SeedDefaults(ctx context.Context) (SeedResult, error) {
	var res SeedResult
	now := s.now()

	err := s.store.WithTx(ctx, func(tx storage.Collections) error {
		n, err := tx.WorkoutTemplates().Count(ctx, storage.All())
		if err != nil {
			return err
		}
		if n == 0 {
			id, err := tx.WorkoutTemplates().Add(ctx, models.WorkoutTemplate{Name: "Full Body Workout"})
			if err != nil {
				return err
			}
			for _, ex := range defaultExercises {
				ex.TemplateID = id
				if _, err := tx.WorkoutExercises().Add(ctx, ex); err != nil {
					return err
				}
			}
			res.Template = true
		}

		n, err = tx.Goals().Count(ctx, storage.All())
		if err != nil {
			return err
		}
		if n == 0 {
			goals := []models.Goal{
				{
					Title:       "30-Day Dopamine Control",
					Description: "Maintain dopamine control for 30 consecutive days",
					Type:        models.GoalStreak,
					TargetValue: 30,
					Deadline:    now.AddDate(0, 0, 30),
				},
				{
					Title:       "Perfect Hygiene Week",
					Description: "Complete all hygiene habits for 7 days",
					Type:        models.GoalCompletion,
					TargetValue: 7,
					Deadline:    now.AddDate(0, 0, 7),
				},
			}
			for _, g := range goals {
				if _, err := tx.Goals().Add(ctx, g); err != nil {
					return err
				}
			}
			res.Goals = true
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}
	if res.Template || res.Goals {
		logger.Info("Seeded defaults", "template", res.Template, "goals", res.Goals)
	}
	return res, nil
}
