// Package completion maintains the per-date DailyCompletion records derived
// from dopamine, workout and hygiene entries.
package completion

import (
	"context"

	apperrors "github.com/julianstephens/lifetrack/internal/errors"
	"github.com/julianstephens/lifetrack/internal/logger"
	"github.com/julianstephens/lifetrack/internal/metrics"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/utils"
	"github.com/julianstephens/lifetrack/internal/validation"
)

type Cache struct {
	store  storage.Store
	engine *metrics.Engine
}

func New(store storage.Store, engine *metrics.Engine) *Cache {
	return &Cache{store: store, engine: engine}
}

// Refresh recomputes the record for date (today when empty) and upserts it
// in one transaction. The record's id and CreatedAt survive updates, so
// repeated refreshes without intervening writes leave it unchanged.
func (c *Cache) Refresh(ctx context.Context, date string) (models.DailyCompletion, error) {
	var out models.DailyCompletion
	err := c.store.WithTx(ctx, func(tx storage.Collections) error {
		rec, err := Upsert(ctx, tx, c.engine, date)
		out = rec
		return err
	})
	if err != nil {
		return models.DailyCompletion{}, err
	}
	logger.Debug("Refreshed daily completion", "date", out.Date, "total", out.TotalCompletion)
	return out, nil
}

// Upsert derives and writes the record for date through tx. Callers that
// already hold a transaction use it to refresh atomically with their write.
func Upsert(ctx context.Context, tx storage.Collections, engine *metrics.Engine, date string) (models.DailyCompletion, error) {
	st, err := engine.With(tx).DayStatus(ctx, date)
	if err != nil {
		return models.DailyCompletion{}, err
	}
	fresh := fromStatus(st)

	existing, err := tx.DailyCompletions().First(ctx, storage.Where("date", st.Date))
	switch {
	case err == nil:
		if existing.SameStatus(fresh) {
			return existing, nil
		}
		err = tx.DailyCompletions().Update(ctx, existing.ID, storage.Fields{
			"dopamine_completed": fresh.DopamineCompleted,
			"workout_completed":  fresh.WorkoutCompleted,
			"hygiene_completed":  fresh.HygieneCompleted,
			"total_completion":   fresh.TotalCompletion,
		})
		if err != nil {
			return models.DailyCompletion{}, err
		}
		fresh.ID, fresh.CreatedAt = existing.ID, existing.CreatedAt
		return fresh, nil
	case apperrors.IsNotFound(err):
		id, err := tx.DailyCompletions().Add(ctx, fresh)
		if err != nil {
			return models.DailyCompletion{}, err
		}
		return tx.DailyCompletions().Get(ctx, id)
	default:
		return models.DailyCompletion{}, err
	}
}

// Verify reports whether the stored record for date matches a fresh
// derivation. A missing record never matches.
func (c *Cache) Verify(ctx context.Context, date string) (bool, models.DailyCompletion, error) {
	st, err := c.engine.With(c.store).DayStatus(ctx, date)
	if err != nil {
		return false, models.DailyCompletion{}, err
	}
	fresh := fromStatus(st)

	stored, err := c.store.DailyCompletions().First(ctx, storage.Where("date", st.Date))
	if apperrors.IsNotFound(err) {
		return false, fresh, nil
	}
	if err != nil {
		return false, fresh, err
	}
	return stored.SameStatus(fresh), fresh, nil
}

// Rebuild refreshes every date from from through to inclusive and returns
// how many records were refreshed.
func (c *Cache) Rebuild(ctx context.Context, from, to string) (int, error) {
	if err := validation.Date("from", from); err != nil {
		return 0, err
	}
	if err := validation.Date("to", to); err != nil {
		return 0, err
	}
	if from > to {
		return 0, apperrors.Validationf("start date %s is after end date %s", from, to)
	}
	n := 0
	for date := from; date <= to; {
		if _, err := c.Refresh(ctx, date); err != nil {
			return n, err
		}
		n++
		next, err := utils.ShiftDateKey(date, 1)
		if err != nil {
			return n, apperrors.Validationf("%v", err)
		}
		date = next
	}
	logger.Info("Rebuilt daily completions", "from", from, "to", to, "count", n)
	return n, nil
}

func fromStatus(st metrics.DayStatus) models.DailyCompletion {
	return models.DailyCompletion{
		Date:              st.Date,
		DopamineCompleted: st.DopamineCompleted,
		WorkoutCompleted:  st.WorkoutCompleted,
		HygieneCompleted:  st.HygieneCompleted,
		TotalCompletion:   st.Total,
	}
}
