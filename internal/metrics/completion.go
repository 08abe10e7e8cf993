package metrics

import (
	"context"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/validation"
)

// DayStatus is the derived outcome of one day across the three daily checks.
type DayStatus struct {
	Date              string
	DopamineCompleted bool
	WorkoutCompleted  bool
	HygieneCompleted  bool
	HygieneRate       int
	Total             int
}

// DayStatus derives the daily checks for date (today when empty):
// dopamine passed, workout completed or rest, hygiene at or above threshold.
func (e *Engine) DayStatus(ctx context.Context, date string) (DayStatus, error) {
	date = e.dateOrToday(date)
	if err := validation.Date("date", date); err != nil {
		return DayStatus{}, err
	}
	st := DayStatus{Date: date}

	dop, err := e.store.Dopamine().Find(ctx, storage.Where("date", date).Take(1))
	if err != nil {
		return DayStatus{}, err
	}
	st.DopamineCompleted = len(dop) > 0 && dop[0].Passed()

	workouts, err := e.store.WorkoutHistory().Find(ctx, storage.Where("date", date).Take(1))
	if err != nil {
		return DayStatus{}, err
	}
	st.WorkoutCompleted = len(workouts) > 0 && workouts[0].Type.Satisfied()

	st.HygieneRate, err = e.HygieneCompletion(ctx, date)
	if err != nil {
		return DayStatus{}, err
	}
	st.HygieneCompleted = st.HygieneRate >= e.opts.HygieneThreshold

	checks := 0
	for _, ok := range []bool{st.DopamineCompleted, st.WorkoutCompleted, st.HygieneCompleted} {
		if ok {
			checks++
		}
	}
	st.Total = percent(checks, constants.DailyChecks)
	return st, nil
}

// TodayCompletion returns the overall completion percentage for date.
func (e *Engine) TodayCompletion(ctx context.Context, date string) (int, error) {
	st, err := e.DayStatus(ctx, date)
	if err != nil {
		return 0, err
	}
	return st.Total, nil
}

// HygieneCompletion returns the percentage of current habits completed on
// date. It is 0 when no habits exist. Completions for deleted habits are
// ignored.
func (e *Engine) HygieneCompletion(ctx context.Context, date string) (int, error) {
	date = e.dateOrToday(date)
	habits, err := e.habitIDs(ctx)
	if err != nil {
		return 0, err
	}
	if len(habits) == 0 {
		return 0, nil
	}

	done, err := e.store.HygieneCompletions().Find(ctx, storage.Where("date", date).And("completed", true))
	if err != nil {
		return 0, err
	}
	n := 0
	for _, c := range done {
		if habits[c.HabitID] {
			n++
		}
	}
	return percent(n, len(habits)), nil
}

func (e *Engine) habitIDs(ctx context.Context) (map[string]bool, error) {
	habits, err := e.store.HygieneHabits().Find(ctx, storage.All())
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool, len(habits))
	for _, h := range habits {
		ids[h.ID] = true
	}
	return ids, nil
}

// HygieneRates returns the completion percentage for every date that has at
// least one completed habit. Dates absent from the map are at 0.
func (e *Engine) HygieneRates(ctx context.Context) (map[string]int, error) {
	habits, err := e.habitIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(habits) == 0 {
		return map[string]int{}, nil
	}

	done, err := e.store.HygieneCompletions().Find(ctx, storage.Where("completed", true))
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, c := range done {
		if habits[c.HabitID] {
			counts[c.Date]++
		}
	}
	rates := make(map[string]int, len(counts))
	for date, n := range counts {
		rates[date] = percent(n, len(habits))
	}
	return rates, nil
}
