package metrics

import (
	"context"
	"sort"

	"github.com/julianstephens/lifetrack/internal/constants"
	apperrors "github.com/julianstephens/lifetrack/internal/errors"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/streak"
)

// CurrentStreak counts consecutive qualifying days ending today.
// A day without an entry ends the streak, including today.
func (e *Engine) CurrentStreak(ctx context.Context, domain models.Domain) (int, error) {
	qualifies, err := e.currentQualifier(ctx, domain)
	if err != nil {
		return 0, err
	}
	return streak.Backward(e.now(), constants.StreakLookbackDays, qualifies), nil
}

func (e *Engine) currentQualifier(ctx context.Context, domain models.Domain) (func(string) bool, error) {
	switch domain {
	case models.DomainDopamine:
		entries, err := e.store.Dopamine().Find(ctx, storage.All())
		if err != nil {
			return nil, err
		}
		passed := make(map[string]bool, len(entries))
		for _, en := range entries {
			passed[en.Date] = en.Passed()
		}
		return func(d string) bool { return passed[d] }, nil

	case models.DomainWorkout:
		history, err := e.store.WorkoutHistory().Find(ctx, storage.All())
		if err != nil {
			return nil, err
		}
		ok := make(map[string]bool, len(history))
		for _, w := range history {
			ok[w.Date] = e.opts.WorkoutStreak != models.WorkoutStreakCompleted || w.Type == models.WorkoutCompleted
		}
		return func(d string) bool { return ok[d] }, nil

	case models.DomainHygiene:
		rates, err := e.HygieneRates(ctx)
		if err != nil {
			return nil, err
		}
		return func(d string) bool {
			r, ok := rates[d]
			return ok && r >= e.opts.HygieneThreshold
		}, nil
	}
	return nil, apperrors.Validationf("streaks are not tracked for %q", domain)
}

// LongestStreak returns the longest run of qualifying entries in date order.
// Only recorded days are considered: a gap between two qualifying entries
// does not break the run, a non-qualifying entry does.
func (e *Engine) LongestStreak(ctx context.Context, domain models.Domain) (int, error) {
	var outcomes []bool

	switch domain {
	case models.DomainDopamine:
		entries, err := e.store.Dopamine().Find(ctx, storage.All().Asc("date"))
		if err != nil {
			return 0, err
		}
		for _, en := range entries {
			outcomes = append(outcomes, en.Passed())
		}

	case models.DomainWorkout:
		history, err := e.store.WorkoutHistory().Find(ctx, storage.All().Asc("date"))
		if err != nil {
			return 0, err
		}
		for _, w := range history {
			outcomes = append(outcomes, w.Type == models.WorkoutCompleted)
		}

	case models.DomainHygiene:
		rates, err := e.HygieneRates(ctx)
		if err != nil {
			return 0, err
		}
		dates := make([]string, 0, len(rates))
		for d := range rates {
			dates = append(dates, d)
		}
		sort.Strings(dates)
		for _, d := range dates {
			outcomes = append(outcomes, rates[d] >= e.opts.HygieneThreshold)
		}

	default:
		return 0, apperrors.Validationf("streaks are not tracked for %q", domain)
	}

	return streak.Longest(outcomes), nil
}
