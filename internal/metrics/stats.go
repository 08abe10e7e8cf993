package metrics

import (
	"context"

	apperrors "github.com/julianstephens/lifetrack/internal/errors"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/utils"
	"github.com/julianstephens/lifetrack/internal/validation"
)

// DailyStats builds the one-day snapshot for date (today when empty).
// Domains without an entry are left nil.
func (e *Engine) DailyStats(ctx context.Context, date string) (models.DailyStats, error) {
	st, err := e.DayStatus(ctx, date)
	if err != nil {
		return models.DailyStats{}, err
	}
	out := models.DailyStats{Date: st.Date, OverallCompletion: st.Total}

	if d, err := e.store.Dopamine().First(ctx, storage.Where("date", st.Date)); err == nil {
		out.Dopamine = &models.DopamineStats{Status: d.Status, Notes: d.Notes}
	} else if !apperrors.IsNotFound(err) {
		return models.DailyStats{}, err
	}

	if w, err := e.store.WorkoutHistory().First(ctx, storage.Where("date", st.Date)); err == nil {
		out.Workout = &models.WorkoutDay{Type: w.Type}
	} else if !apperrors.IsNotFound(err) {
		return models.DailyStats{}, err
	}

	if m, err := e.store.Moods().First(ctx, storage.Where("date", st.Date)); err == nil {
		out.Mood = &models.MoodStats{Mood: m.Mood, Energy: m.Energy, Numb: m.Numb}
	} else if !apperrors.IsNotFound(err) {
		return models.DailyStats{}, err
	}

	habits, err := e.store.HygieneHabits().Count(ctx, storage.All())
	if err != nil {
		return models.DailyStats{}, err
	}
	out.Hygiene = models.HygieneStats{Completion: st.HygieneRate, TotalHabits: habits}

	sessions, err := e.store.FocusSessions().Find(ctx, storage.Where("date", st.Date))
	if err != nil {
		return models.DailyStats{}, err
	}
	out.Focus.Sessions = len(sessions)
	for _, s := range sessions {
		out.Focus.TotalDuration += s.Duration
	}

	return out, nil
}

// FocusMinutes sums focus session durations on date (today when empty).
func (e *Engine) FocusMinutes(ctx context.Context, date string) (int, error) {
	date = e.dateOrToday(date)
	if err := validation.Date("date", date); err != nil {
		return 0, err
	}
	sessions, err := e.store.FocusSessions().Find(ctx, storage.Where("date", date))
	if err != nil {
		return 0, err
	}
	total := 0
	for _, s := range sessions {
		total += s.Duration
	}
	return total, nil
}

// WeeklyProductivity returns the seven days ending today, oldest first.
// Dopamine and workout are 0 or 100; hygiene is the day's percentage.
func (e *Engine) WeeklyProductivity(ctx context.Context) ([]models.DaySeries, error) {
	rates, err := e.HygieneRates(ctx)
	if err != nil {
		return nil, err
	}
	dop, err := e.store.Dopamine().Find(ctx, storage.Where("status", models.DopaminePassed))
	if err != nil {
		return nil, err
	}
	passed := make(map[string]bool, len(dop))
	for _, d := range dop {
		passed[d.Date] = true
	}
	history, err := e.store.WorkoutHistory().Find(ctx, storage.All())
	if err != nil {
		return nil, err
	}
	worked := make(map[string]bool, len(history))
	for _, w := range history {
		worked[w.Date] = w.Type.Satisfied()
	}

	today := utils.StartOfDay(e.now())
	out := make([]models.DaySeries, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		key := utils.DateKey(day)
		out = append(out, models.DaySeries{
			Date:     key,
			Weekday:  day.Weekday().String()[:3],
			Dopamine: boolPercent(passed[key]),
			Workout:  boolPercent(worked[key]),
			Hygiene:  rates[key],
		})
	}
	return out, nil
}

func boolPercent(ok bool) int {
	if ok {
		return 100
	}
	return 0
}

// HabitConsistency returns, per habit in display order, the share of the
// last days days (ending today) on which it was completed.
func (e *Engine) HabitConsistency(ctx context.Context, days int) ([]models.HabitRate, error) {
	if days <= 0 {
		return nil, apperrors.Validationf("days must be greater than 0 (got %d)", days)
	}
	habits, err := e.store.HygieneHabits().Find(ctx, storage.All().Asc("sort_order"))
	if err != nil {
		return nil, err
	}

	today := utils.StartOfDay(e.now())
	end := utils.DateKey(today)
	start := utils.DateKey(today.AddDate(0, 0, -(days - 1)))

	out := make([]models.HabitRate, 0, len(habits))
	for _, h := range habits {
		done, err := e.store.HygieneCompletions().Find(ctx, storage.Where("habit_id", h.ID).And("completed", true))
		if err != nil {
			return nil, err
		}
		n := 0
		for _, c := range done {
			if c.Date >= start && c.Date <= end {
				n++
			}
		}
		out = append(out, models.HabitRate{HabitID: h.ID, Name: h.Name, Rate: percent(n, days)})
	}
	return out, nil
}

// MoodTrend returns the most recent limit mood entries, oldest first.
func (e *Engine) MoodTrend(ctx context.Context, limit int) ([]models.MoodEntry, error) {
	entries, err := e.store.Moods().Find(ctx, storage.All().Descending("date").Take(limit))
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// WorkoutFrequency counts completed workouts per Sunday-first week for the
// last weeks weeks, the current week included, oldest first. Weeks without
// a workout are reported as zero.
func (e *Engine) WorkoutFrequency(ctx context.Context, weeks int) ([]models.WeekCount, error) {
	if weeks <= 0 {
		return nil, apperrors.Validationf("weeks must be greater than 0 (got %d)", weeks)
	}
	history, err := e.store.WorkoutHistory().Find(ctx, storage.Where("type", models.WorkoutCompleted))
	if err != nil {
		return nil, err
	}

	now := e.now()
	today := utils.DateKey(now)
	current := utils.StartOfWeek(now)
	out := make([]models.WeekCount, weeks)
	index := make(map[string]int, weeks)
	for i := range out {
		start := utils.DateKey(current.AddDate(0, 0, -7*(weeks-1-i)))
		out[i].WeekStart = start
		index[start] = i
	}

	for _, w := range history {
		if w.Date > today {
			continue
		}
		day, err := utils.ParseDateInLocation(w.Date, now.Location())
		if err != nil {
			continue
		}
		if i, ok := index[utils.DateKey(utils.StartOfWeek(day))]; ok {
			out[i].Completed++
		}
	}
	return out, nil
}

// MoodEnergy returns energy and mood for the most recent limit mood
// entries, oldest first.
func (e *Engine) MoodEnergy(ctx context.Context, limit int) ([]models.MoodPoint, error) {
	if limit <= 0 {
		return nil, apperrors.Validationf("limit must be greater than 0 (got %d)", limit)
	}
	entries, err := e.MoodTrend(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]models.MoodPoint, len(entries))
	for i, m := range entries {
		out[i] = models.MoodPoint{Date: m.Date, Energy: m.Energy, Mood: m.Mood}
	}
	return out, nil
}
