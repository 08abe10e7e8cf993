package tracker

import (
	"context"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/logger"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/streak"
	"github.com/julianstephens/lifetrack/internal/validation"
)

func (s *Service) AddGoal(ctx context.Context, goal models.Goal) (models.Goal, error) {
	if err := validation.Struct(goal); err != nil {
		return models.Goal{}, err
	}
	goal.Completed = goal.CurrentValue >= goal.TargetValue
	id, err := s.store.Goals().Add(ctx, goal)
	if err != nil {
		return models.Goal{}, err
	}
	return s.store.Goals().Get(ctx, id)
}

func (s *Service) Goals(ctx context.Context) ([]models.Goal, error) {
	return s.store.Goals().Find(ctx, storage.All())
}

func (s *Service) DeleteGoal(ctx context.Context, id string) error {
	return s.store.Goals().Delete(ctx, id)
}

// RefreshGoals recomputes every goal's progress. Streak goals follow the
// current dopamine streak; completion goals count consecutive days ending
// today with every habit done.
func (s *Service) RefreshGoals(ctx context.Context) ([]models.Goal, error) {
	var out []models.Goal
	err := s.store.WithTx(ctx, func(tx storage.Collections) error {
		engine := s.engine.With(tx)

		dopamine, err := engine.CurrentStreak(ctx, models.DomainDopamine)
		if err != nil {
			return err
		}
		rates, err := engine.HygieneRates(ctx)
		if err != nil {
			return err
		}
		perfect := streak.Backward(s.now(), constants.StreakLookbackDays, func(d string) bool { return rates[d] == 100 })

		goals, err := tx.Goals().Find(ctx, storage.All())
		if err != nil {
			return err
		}
		for _, g := range goals {
			current := g.CurrentValue
			switch g.Type {
			case models.GoalStreak:
				current = dopamine
			case models.GoalCompletion:
				current = perfect
			}
			done := current >= g.TargetValue
			if current != g.CurrentValue || done != g.Completed {
				if err := tx.Goals().Update(ctx, g.ID, storage.Fields{"current_value": current, "completed": done}); err != nil {
					return err
				}
				g.CurrentValue, g.Completed = current, done
			}
			out = append(out, g)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("Refreshed goals", "count", len(out))
	return out, nil
}
