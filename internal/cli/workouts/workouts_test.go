package workouts

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/storage/sqlite"
)

func setup(t *testing.T) (*cli.Context, *sqlite.Store, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	var out bytes.Buffer
	ctx := cli.NewContext(context.Background(), store)
	ctx.Out = &out
	ctx.Now = func() time.Time { return time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC) }
	return ctx, store, &out
}

func TestWorkoutLogHistoryStats(t *testing.T) {
	ctx, store, out := setup(t)

	for _, c := range []WorkoutLogCmd{
		{Type: "completed", Date: "2024-03-11"},
		{Type: "rest", Date: "2024-03-12"},
		{Type: "completed"},
	} {
		if err := c.Run(ctx); err != nil {
			t.Fatal(err)
		}
	}

	out.Reset()
	if err := (&WorkoutHistoryCmd{Limit: 2}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "2024-03-13  completed") {
		t.Errorf("unexpected history:\n%s", out.String())
	}

	out.Reset()
	if err := (&WorkoutStatsCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Current streak: 3 days") {
		t.Errorf("unexpected stats:\n%s", out.String())
	}

	w, err := store.WorkoutHistory().First(context.Background(), storage.Where("date", "2024-03-12"))
	if err != nil {
		t.Fatal(err)
	}
	if err := (&WorkoutDeleteCmd{ID: w.ID, Yes: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}
}

func TestTemplatesAndExercises(t *testing.T) {
	ctx, _, out := setup(t)

	if err := (&TemplateAddCmd{Name: "Upper"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"Bench", "Rows"} {
		if err := (&ExerciseAddCmd{Template: "upper", Name: name, Sets: 4, Reps: 8}).Run(ctx); err != nil {
			t.Fatal(err)
		}
	}
	if !strings.Contains(out.String(), "Added Rows to Upper as #2") {
		t.Errorf("unexpected output:\n%s", out.String())
	}

	out.Reset()
	if err := (&TemplateListCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "1. Bench 4x8") || !strings.Contains(out.String(), "2. Rows 4x8") {
		t.Errorf("unexpected list:\n%s", out.String())
	}

	if err := (&ExerciseAddCmd{Template: "Legs", Name: "Squat"}).Run(ctx); err == nil {
		t.Error("expected error for unknown template")
	}
}

func TestWorkoutDeleteDeclined(t *testing.T) {
	ctx, store, _ := setup(t)
	bg := context.Background()
	id, err := store.WorkoutHistory().Add(bg, models.WorkoutHistory{Date: "2024-03-12", Type: models.WorkoutCompleted})
	if err != nil {
		t.Fatal(err)
	}
	ctx.Prompt = func(string) (bool, error) { return false, nil }
	if err := (&WorkoutDeleteCmd{ID: id}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if n, _ := store.WorkoutHistory().Count(bg, storage.All()); n != 1 {
		t.Errorf("declined delete removed the workout")
	}
}
