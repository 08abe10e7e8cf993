package metrics

import (
	"context"

	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/utils"
)

// WorkoutStats summarises workout history relative to today. Weeks start
// on Sunday; consistency is completed days this month over elapsed days.
// Entries dated after today are ignored by every counter.
func (e *Engine) WorkoutStats(ctx context.Context) (models.WorkoutStats, error) {
	history, err := e.store.WorkoutHistory().Find(ctx, storage.Where("type", models.WorkoutCompleted))
	if err != nil {
		return models.WorkoutStats{}, err
	}

	now := e.now()
	today := utils.DateKey(now)
	weekStart := utils.DateKey(utils.StartOfWeek(now))
	monthStart := utils.DateKey(utils.StartOfMonth(now))

	var stats models.WorkoutStats
	for _, w := range history {
		if w.Date > today {
			continue
		}
		stats.TotalCompleted++
		if w.Date >= weekStart {
			stats.WeeklyCompleted++
		}
		if w.Date >= monthStart {
			stats.MonthlyCompleted++
		}
	}
	stats.Consistency = percent(stats.MonthlyCompleted, now.Day())

	if stats.CurrentStreak, err = e.CurrentStreak(ctx, models.DomainWorkout); err != nil {
		return models.WorkoutStats{}, err
	}
	if stats.LongestStreak, err = e.LongestStreak(ctx, models.DomainWorkout); err != nil {
		return models.WorkoutStats{}, err
	}
	return stats, nil
}
