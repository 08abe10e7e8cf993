package tracker

import (
	"context"
	"fmt"

	apperrors "github.com/julianstephens/lifetrack/internal/errors"
	"github.com/julianstephens/lifetrack/internal/logger"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/validation"
)

// AddHabit appends a habit after the current last one. Today's summary is
// refreshed since the habit count changes the hygiene rate.
func (s *Service) AddHabit(ctx context.Context, name, description string) (models.HygieneHabit, error) {
	habit := models.HygieneHabit{Name: name, Description: description}
	if err := validation.Struct(habit); err != nil {
		return models.HygieneHabit{}, err
	}

	err := s.store.WithTx(ctx, func(tx storage.Collections) error {
		existing, err := tx.HygieneHabits().Find(ctx, storage.All())
		if err != nil {
			return err
		}
		habit.Order = nextOrder(existing, func(h models.HygieneHabit) int { return h.Order })
		id, err := tx.HygieneHabits().Add(ctx, habit)
		if err != nil {
			return err
		}
		habit, err = tx.HygieneHabits().Get(ctx, id)
		return err
	})
	if err != nil {
		return models.HygieneHabit{}, err
	}
	logger.Debug("Added habit", "id", habit.ID, "name", habit.Name, "order", habit.Order)
	return habit, s.refresh(ctx, s.today())
}

// Habits returns every habit in display order.
func (s *Service) Habits(ctx context.Context) ([]models.HygieneHabit, error) {
	return s.store.HygieneHabits().Find(ctx, storage.All().Asc("sort_order"))
}

// SetHabitCompletion marks habitID done or not done on date. There is at
// most one completion per habit and date.
func (s *Service) SetHabitCompletion(ctx context.Context, habitID, date string, completed bool) (models.HygieneCompletion, error) {
	rec := models.HygieneCompletion{HabitID: habitID, Date: date, Completed: completed}
	if err := validation.Struct(rec); err != nil {
		return models.HygieneCompletion{}, err
	}

	err := s.store.WithTx(ctx, func(tx storage.Collections) error {
		if _, err := tx.HygieneHabits().Get(ctx, habitID); err != nil {
			return err
		}
		existing, err := tx.HygieneCompletions().First(ctx, storage.Where("habit_id", habitID).And("date", date))
		switch {
		case err == nil:
			if err := tx.HygieneCompletions().Update(ctx, existing.ID, storage.Fields{"completed": completed}); err != nil {
				return err
			}
			rec, err = tx.HygieneCompletions().Get(ctx, existing.ID)
			return err
		case apperrors.IsNotFound(err):
			id, err := tx.HygieneCompletions().Add(ctx, rec)
			if err != nil {
				return err
			}
			rec, err = tx.HygieneCompletions().Get(ctx, id)
			return err
		default:
			return err
		}
	})
	if err != nil {
		return models.HygieneCompletion{}, err
	}
	return rec, s.refresh(ctx, date)
}

// HabitCompleted reports whether habitID is marked done on date.
func (s *Service) HabitCompleted(ctx context.Context, habitID, date string) (bool, error) {
	c, err := s.store.HygieneCompletions().First(ctx, storage.Where("habit_id", habitID).And("date", date))
	if apperrors.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return c.Completed, nil
}

// DeleteHabit removes the habit and all of its completions atomically.
func (s *Service) DeleteHabit(ctx context.Context, id string) error {
	var removed int64
	err := s.store.WithTx(ctx, func(tx storage.Collections) error {
		if _, err := tx.HygieneHabits().Get(ctx, id); err != nil {
			return err
		}
		var err error
		removed, err = tx.HygieneCompletions().DeleteWhere(ctx, storage.Where("habit_id", id))
		if err != nil {
			return fmt.Errorf("%w: removing completions of habit %s: %w", apperrors.ErrReferentialIntegrity, id, err)
		}
		if err := tx.HygieneHabits().Delete(ctx, id); err != nil {
			return fmt.Errorf("%w: removing habit %s: %w", apperrors.ErrReferentialIntegrity, id, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.Info("Deleted habit", "id", id, "completions_removed", removed)
	return s.refresh(ctx, s.today())
}
