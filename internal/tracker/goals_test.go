package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "github.com/julianstephens/lifetrack/internal/errors"
	"github.com/julianstephens/lifetrack/internal/metrics"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/storage/sqlite"
	"github.com/julianstephens/lifetrack/internal/testutil"
)

func TestSeedDefaults(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)

	res, err := svc.SeedDefaults(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Template || !res.Goals {
		t.Errorf("expected both collections seeded: %+v", res)
	}

	templates, _ := svc.Templates(ctx)
	if len(templates) != 1 || templates[0].Name != "Full Body Workout" {
		t.Fatalf("unexpected templates: %+v", templates)
	}
	exercises, _ := svc.Exercises(ctx, templates[0].ID)
	want := []models.WorkoutExercise{
		{Name: "Squats", Order: 1, TargetSets: 3, TargetReps: 10},
		{Name: "Push-ups", Order: 2, TargetSets: 3, TargetReps: 15},
		{Name: "Pull-ups", Order: 3, TargetSets: 3, TargetReps: 8},
	}
	if len(exercises) != len(want) {
		t.Fatalf("expected %d exercises, got %d", len(want), len(exercises))
	}
	for i, w := range want {
		got := exercises[i]
		if got.Name != w.Name || got.Order != w.Order || got.TargetSets != w.TargetSets || got.TargetReps != w.TargetReps {
			t.Errorf("exercise %d = %+v, want %+v", i, got, w)
		}
	}

	goals, _ := svc.Goals(ctx)
	if len(goals) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(goals))
	}
	now := testutil.Date(t, today)
	if goals[0].Type != models.GoalStreak || goals[0].TargetValue != 30 || !goals[0].Deadline.Equal(now.AddDate(0, 0, 30).Truncate(time.Second)) {
		t.Errorf("unexpected streak goal: %+v", goals[0])
	}
	if goals[1].Type != models.GoalCompletion || goals[1].TargetValue != 7 {
		t.Errorf("unexpected completion goal: %+v", goals[1])
	}

	res, err = svc.SeedDefaults(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.Template || res.Goals {
		t.Errorf("second seed should be a no-op: %+v", res)
	}
	if n, _ := store.WorkoutExercises().Count(ctx, storage.All()); n != 3 {
		t.Errorf("expected 3 exercises after reseed, got %d", n)
	}
}

func TestRefreshGoals(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	for _, d := range []string{"2023-12-30", "2023-12-31", today} {
		if _, err := svc.LogDopamine(ctx, models.DopamineEntry{Date: d, Status: models.DopaminePassed}); err != nil {
			t.Fatal(err)
		}
	}
	habit, _ := svc.AddHabit(ctx, "Shower", "")
	for _, d := range []string{"2023-12-31", today} {
		if _, err := svc.SetHabitCompletion(ctx, habit.ID, d, true); err != nil {
			t.Fatal(err)
		}
	}

	streakGoal, err := svc.AddGoal(ctx, models.Goal{Title: "3 clean days", Type: models.GoalStreak, TargetValue: 3})
	if err != nil {
		t.Fatal(err)
	}
	hygieneGoal, err := svc.AddGoal(ctx, models.Goal{Title: "Perfect week", Type: models.GoalCompletion, TargetValue: 7})
	if err != nil {
		t.Fatal(err)
	}

	goals, err := svc.RefreshGoals(ctx)
	if err != nil {
		t.Fatal(err)
	}
	byID := map[string]models.Goal{}
	for _, g := range goals {
		byID[g.ID] = g
	}

	if g := byID[streakGoal.ID]; g.CurrentValue != 3 || !g.Completed {
		t.Errorf("streak goal: %+v", g)
	}
	if g := byID[hygieneGoal.ID]; g.CurrentValue != 2 || g.Completed {
		t.Errorf("completion goal: %+v", g)
	}

	stored, _ := svc.Goals(ctx)
	for _, g := range stored {
		if g != byID[g.ID] {
			t.Errorf("stored goal differs from returned:\n%+v\n%+v", g, byID[g.ID])
		}
	}
}

func TestGoalValidationAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	if _, err := svc.AddGoal(ctx, models.Goal{Title: "x", Type: "weekly", TargetValue: 1}); !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("expected ErrValidation for bad type, got %v", err)
	}
	if _, err := svc.AddGoal(ctx, models.Goal{Title: "x", Type: models.GoalStreak}); !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("expected ErrValidation for zero target, got %v", err)
	}

	g, err := svc.AddGoal(ctx, models.Goal{Title: "x", Type: models.GoalStreak, TargetValue: 1})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteGoal(ctx, g.ID); err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteGoal(ctx, g.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// brokenCacheStore fails every DailyCompletion lookup while leaving the
// other collections intact.
type brokenCacheStore struct {
	*sqlite.Store
}

func (b brokenCacheStore) WithTx(ctx context.Context, fn func(tx storage.Collections) error) error {
	return b.Store.WithTx(ctx, func(tx storage.Collections) error {
		return fn(brokenCache{tx})
	})
}

type brokenCache struct {
	storage.Collections
}

func (brokenCache) DailyCompletions() storage.Collection[models.DailyCompletion] {
	return failingCompletions{}
}

type failingCompletions struct {
	storage.Collection[models.DailyCompletion]
}

func (failingCompletions) First(context.Context, storage.Query) (models.DailyCompletion, error) {
	return models.DailyCompletion{}, apperrors.Storage("find daily_completions", errors.New("disk I/O error"))
}

func TestCacheFailureKeepsPrimaryWrite(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore(t)
	svc := NewService(brokenCacheStore{store}, testutil.Clock(t, today), metrics.DefaultOptions())

	saved, err := svc.LogDopamine(ctx, models.DopamineEntry{Date: today, Status: models.DopaminePassed})
	if !errors.Is(err, apperrors.ErrCacheRefresh) {
		t.Fatalf("expected ErrCacheRefresh, got %v", err)
	}
	if !apperrors.IsWarning(err) {
		t.Error("cache failure should be reported as a warning")
	}
	if saved.ID == "" {
		t.Fatal("saved record should be returned alongside the warning")
	}

	got, err := store.Dopamine().Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("primary write was rolled back: %v", err)
	}
	if got.Status != models.DopaminePassed {
		t.Errorf("unexpected stored entry: %+v", got)
	}
	if n, _ := store.DailyCompletions().Count(ctx, storage.All()); n != 0 {
		t.Errorf("expected no cached records, got %d", n)
	}
}
