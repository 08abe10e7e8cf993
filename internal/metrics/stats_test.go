package metrics

import (
	"context"
	"errors"
	"reflect"
	"testing"

	apperrors "github.com/julianstephens/lifetrack/internal/errors"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/testutil"
)

func seedWorkouts(f *fixture) {
	f.workout("2024-02-20", models.WorkoutCompleted)
	f.workout("2024-03-01", models.WorkoutCompleted)
	f.workout("2024-03-09", models.WorkoutCompleted)
	f.workout("2024-03-10", models.WorkoutCompleted)
	f.workout("2024-03-11", models.WorkoutRest)
	f.workout("2024-03-12", models.WorkoutCompleted)
	f.workout("2024-03-13", models.WorkoutCompleted)
}

func TestWorkoutStats(t *testing.T) {
	tests := []struct {
		name string
		mode models.WorkoutStreakMode
		want models.WorkoutStats
	}{
		{
			name: "any logged day extends streak",
			mode: models.WorkoutStreakLogged,
			want: models.WorkoutStats{WeeklyCompleted: 3, MonthlyCompleted: 5, TotalCompleted: 6, Consistency: 38, CurrentStreak: 5, LongestStreak: 4},
		},
		{
			name: "only completed days extend streak",
			mode: models.WorkoutStreakCompleted,
			want: models.WorkoutStats{WeeklyCompleted: 3, MonthlyCompleted: 5, TotalCompleted: 6, Consistency: 38, CurrentStreak: 2, LongestStreak: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.WorkoutStreak = tt.mode
			e, f := newEngine(t, opts)
			seedWorkouts(f)

			got, err := e.WorkoutStats(context.Background())
			if err != nil {
				t.Fatalf("WorkoutStats failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("WorkoutStats() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWorkoutStatsIgnoresFutureEntries(t *testing.T) {
	e, f := newEngine(t, DefaultOptions())
	f.workout(today, models.WorkoutCompleted)
	f.workout("2024-03-14", models.WorkoutCompleted)
	f.workout("2024-04-02", models.WorkoutCompleted)

	got, err := e.WorkoutStats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got.TotalCompleted != 1 || got.WeeklyCompleted != 1 || got.MonthlyCompleted != 1 {
		t.Errorf("future entries counted: %+v", got)
	}
}

func TestWorkoutFrequency(t *testing.T) {
	tests := []struct {
		name  string
		weeks int
		want  []models.WeekCount
	}{
		{
			name:  "three weeks",
			weeks: 3,
			want: []models.WeekCount{
				{WeekStart: "2024-02-25", Completed: 1},
				{WeekStart: "2024-03-03", Completed: 1},
				{WeekStart: "2024-03-10", Completed: 3},
			},
		},
		{
			name:  "current week only",
			weeks: 1,
			want:  []models.WeekCount{{WeekStart: "2024-03-10", Completed: 3}},
		},
		{
			name:  "empty weeks are zero",
			weeks: 5,
			want: []models.WeekCount{
				{WeekStart: "2024-02-11", Completed: 0},
				{WeekStart: "2024-02-18", Completed: 1},
				{WeekStart: "2024-02-25", Completed: 1},
				{WeekStart: "2024-03-03", Completed: 1},
				{WeekStart: "2024-03-10", Completed: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, f := newEngine(t, DefaultOptions())
			seedWorkouts(f)
			f.workout("2024-03-16", models.WorkoutCompleted) // after today

			got, err := e.WorkoutFrequency(context.Background(), tt.weeks)
			if err != nil {
				t.Fatalf("WorkoutFrequency failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WorkoutFrequency(%d) = %+v, want %+v", tt.weeks, got, tt.want)
			}
		})
	}

	e, _ := newEngine(t, DefaultOptions())
	if _, err := e.WorkoutFrequency(context.Background(), 0); !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("expected ErrValidation for zero weeks, got %v", err)
	}
}

func TestMoodEnergy(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  []models.MoodPoint
	}{
		{
			name:  "limit smaller than history",
			limit: 2,
			want: []models.MoodPoint{
				{Date: "2024-03-12", Energy: 2, Mood: 4},
				{Date: "2024-03-13", Energy: 5, Mood: 3},
			},
		},
		{
			name:  "limit larger than history",
			limit: 30,
			want: []models.MoodPoint{
				{Date: "2024-03-11", Energy: 1, Mood: 2},
				{Date: "2024-03-12", Energy: 2, Mood: 4},
				{Date: "2024-03-13", Energy: 5, Mood: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, f := newEngine(t, DefaultOptions())
			testutil.MustMood(t, f.Store, "2024-03-13", 3, 5, 1)
			testutil.MustMood(t, f.Store, "2024-03-11", 2, 1, 4)
			testutil.MustMood(t, f.Store, "2024-03-12", 4, 2, 2)

			got, err := e.MoodEnergy(context.Background(), tt.limit)
			if err != nil {
				t.Fatalf("MoodEnergy failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MoodEnergy(%d) = %+v, want %+v", tt.limit, got, tt.want)
			}
		})
	}

	e, _ := newEngine(t, DefaultOptions())
	if _, err := e.MoodEnergy(context.Background(), 0); !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("expected ErrValidation for zero limit, got %v", err)
	}
}

func TestDailyStats(t *testing.T) {
	ctx := context.Background()
	e, f := newEngine(t, DefaultOptions())

	empty, err := e.DailyStats(ctx, today)
	if err != nil {
		t.Fatal(err)
	}
	if empty.Dopamine != nil || empty.Workout != nil || empty.Mood != nil {
		t.Errorf("expected nil sections for an empty day: %+v", empty)
	}
	if empty.OverallCompletion != 0 || empty.Hygiene.TotalHabits != 0 {
		t.Errorf("unexpected empty-day values: %+v", empty)
	}

	f.dopamine(today, models.DopaminePassed)
	f.workout(today, models.WorkoutCompleted)
	h := f.habit("Shower", 1)
	f.habit("Brush", 2)
	f.completion(h, today, true)
	testutil.MustMood(t, f.Store, today, 4, 3, 2)
	testutil.MustFocus(t, f.Store, today, 25)
	testutil.MustFocus(t, f.Store, today, 50)
	testutil.MustFocus(t, f.Store, "2024-03-12", 90)

	got, err := e.DailyStats(ctx, today)
	if err != nil {
		t.Fatal(err)
	}
	if got.Dopamine == nil || got.Dopamine.Status != models.DopaminePassed {
		t.Errorf("dopamine: %+v", got.Dopamine)
	}
	if got.Workout == nil || got.Workout.Type != models.WorkoutCompleted {
		t.Errorf("workout: %+v", got.Workout)
	}
	if got.Hygiene != (models.HygieneStats{Completion: 50, TotalHabits: 2}) {
		t.Errorf("hygiene: %+v", got.Hygiene)
	}
	if got.Mood == nil || *got.Mood != (models.MoodStats{Mood: 4, Energy: 3, Numb: 2}) {
		t.Errorf("mood: %+v", got.Mood)
	}
	if got.Focus != (models.FocusStats{Sessions: 2, TotalDuration: 75}) {
		t.Errorf("focus: %+v", got.Focus)
	}
	if got.OverallCompletion != 67 {
		t.Errorf("overall = %d, want 67", got.OverallCompletion)
	}

	minutes, err := e.FocusMinutes(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if minutes != 75 {
		t.Errorf("FocusMinutes() = %d, want 75", minutes)
	}
}

func TestWeeklyProductivity(t *testing.T) {
	e, f := newEngine(t, DefaultOptions())
	h := f.habit("Shower", 1)
	f.habit("Brush", 2)
	f.dopamine(today, models.DopaminePassed)
	f.dopamine("2024-03-12", models.DopamineFailed)
	f.workout("2024-03-07", models.WorkoutRest)
	f.workout("2024-03-06", models.WorkoutCompleted) // outside the window
	f.completion(h, "2024-03-10", true)

	days, err := e.WeeklyProductivity(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if days[0].Date != "2024-03-07" || days[0].Weekday != "Thu" || days[6].Date != today {
		t.Errorf("unexpected window: first=%+v last=%+v", days[0], days[6])
	}
	if days[0].Workout != 100 {
		t.Errorf("rest day should count as workout: %+v", days[0])
	}
	if days[3].Hygiene != 50 {
		t.Errorf("hygiene on 03-10 = %d, want 50", days[3].Hygiene)
	}
	if days[5].Dopamine != 0 || days[6].Dopamine != 100 {
		t.Errorf("dopamine series wrong: %+v %+v", days[5], days[6])
	}
}

func TestHabitConsistency(t *testing.T) {
	e, f := newEngine(t, DefaultOptions())
	floss := f.habit("Floss", 2)
	shower := f.habit("Shower", 1)
	for i := 0; i < 7; i++ {
		f.completion(shower, testutil.Shift(t, today, -i), true)
	}
	f.completion(floss, today, true)
	f.completion(floss, "2024-03-12", false)
	f.completion(floss, "2024-03-01", true) // outside the window

	rates, err := e.HabitConsistency(context.Background(), 7)
	if err != nil {
		t.Fatal(err)
	}
	if len(rates) != 2 {
		t.Fatalf("expected 2 rates, got %d", len(rates))
	}
	if rates[0].Name != "Shower" || rates[0].Rate != 100 {
		t.Errorf("first rate: %+v", rates[0])
	}
	if rates[1].Name != "Floss" || rates[1].Rate != 14 {
		t.Errorf("second rate: %+v", rates[1])
	}

	if _, err := e.HabitConsistency(context.Background(), 0); err == nil {
		t.Error("expected error for zero days")
	}
}

func TestMoodTrend(t *testing.T) {
	e, f := newEngine(t, DefaultOptions())
	for i, d := range []string{"2024-03-10", "2024-03-12", "2024-03-11", "2024-03-13"} {
		testutil.MustMood(t, f.Store, d, i+1, 3, 3)
	}

	trend, err := e.MoodTrend(context.Background(), 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"2024-03-11", "2024-03-12", "2024-03-13"}
	if len(trend) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(trend))
	}
	for i, d := range want {
		if trend[i].Date != d {
			t.Errorf("entry %d: expected %s, got %s", i, d, trend[i].Date)
		}
	}
}

func TestHygieneStreaks(t *testing.T) {
	ctx := context.Background()
	e, f := newEngine(t, DefaultOptions())
	h := f.habit("Shower", 1)
	for _, d := range []string{"2024-03-11", "2024-03-12", today} {
		f.completion(h, d, true)
	}

	current, err := e.CurrentStreak(ctx, models.DomainHygiene)
	if err != nil {
		t.Fatal(err)
	}
	if current != 3 {
		t.Errorf("CurrentStreak(hygiene) = %d, want 3", current)
	}
	longest, _ := e.LongestStreak(ctx, models.DomainHygiene)
	if longest != 3 {
		t.Errorf("LongestStreak(hygiene) = %d, want 3", longest)
	}
}

func TestOptionsFromSettings(t *testing.T) {
	got := OptionsFromSettings(models.Settings{})
	if got != DefaultOptions() {
		t.Errorf("empty settings should map to defaults, got %+v", got)
	}
	got = OptionsFromSettings(models.Settings{HygieneThreshold: 60, WorkoutStreakMode: models.WorkoutStreakCompleted})
	if got.HygieneThreshold != 60 || got.WorkoutStreak != models.WorkoutStreakCompleted {
		t.Errorf("unexpected options: %+v", got)
	}
}
