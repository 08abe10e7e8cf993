package tracker

import (
	"context"

	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/validation"
)

func (s *Service) AddTemplate(ctx context.Context, name string) (models.WorkoutTemplate, error) {
	tmpl := models.WorkoutTemplate{Name: name}
	if err := validation.Struct(tmpl); err != nil {
		return models.WorkoutTemplate{}, err
	}
	id, err := s.store.WorkoutTemplates().Add(ctx, tmpl)
	if err != nil {
		return models.WorkoutTemplate{}, err
	}
	return s.store.WorkoutTemplates().Get(ctx, id)
}

func (s *Service) Templates(ctx context.Context) ([]models.WorkoutTemplate, error) {
	return s.store.WorkoutTemplates().Find(ctx, storage.All())
}

// AddExercise appends ex to the end of its template.
func (s *Service) AddExercise(ctx context.Context, ex models.WorkoutExercise) (models.WorkoutExercise, error) {
	if err := validation.Struct(ex); err != nil {
		return models.WorkoutExercise{}, err
	}

	err := s.store.WithTx(ctx, func(tx storage.Collections) error {
		if _, err := tx.WorkoutTemplates().Get(ctx, ex.TemplateID); err != nil {
			return err
		}
		siblings, err := tx.WorkoutExercises().Find(ctx, storage.Where("template_id", ex.TemplateID))
		if err != nil {
			return err
		}
		ex.Order = nextOrder(siblings, func(e models.WorkoutExercise) int { return e.Order })
		id, err := tx.WorkoutExercises().Add(ctx, ex)
		if err != nil {
			return err
		}
		ex, err = tx.WorkoutExercises().Get(ctx, id)
		return err
	})
	if err != nil {
		return models.WorkoutExercise{}, err
	}
	return ex, nil
}

// Exercises returns the exercises of templateID in order.
func (s *Service) Exercises(ctx context.Context, templateID string) ([]models.WorkoutExercise, error) {
	return s.store.WorkoutExercises().Find(ctx, storage.Where("template_id", templateID).Asc("sort_order"))
}

// LogWorkout records the outcome for date, replacing any earlier one.
func (s *Service) LogWorkout(ctx context.Context, date string, typ models.WorkoutType) (models.WorkoutHistory, error) {
	rec := models.WorkoutHistory{Date: date, Type: typ}
	if err := validation.Struct(rec); err != nil {
		return models.WorkoutHistory{}, err
	}

	var saved models.WorkoutHistory
	err := s.store.WithTx(ctx, func(tx storage.Collections) error {
		var err error
		saved, err = upsertByDate(ctx, tx.WorkoutHistory(), date, rec,
			func(w models.WorkoutHistory) string { return w.ID },
			storage.Fields{"type": typ})
		return err
	})
	if err != nil {
		return models.WorkoutHistory{}, err
	}
	return saved, s.refresh(ctx, date)
}

func (s *Service) DeleteWorkout(ctx context.Context, id string) error {
	var date string
	err := s.store.WithTx(ctx, func(tx storage.Collections) error {
		w, err := tx.WorkoutHistory().Get(ctx, id)
		if err != nil {
			return err
		}
		date = w.Date
		return tx.WorkoutHistory().Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	return s.refresh(ctx, date)
}

// WorkoutHistory returns the latest limit entries, newest first. A limit
// of 0 returns everything.
func (s *Service) WorkoutHistory(ctx context.Context, limit int) ([]models.WorkoutHistory, error) {
	return s.store.WorkoutHistory().Find(ctx, storage.All().Descending("date").Take(limit))
}
