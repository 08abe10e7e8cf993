package mood

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/lifetrack/internal/cli"
	apperrors "github.com/julianstephens/lifetrack/internal/errors"
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
	ctx.Now = func() time.Time { return time.Date(2024, 1, 1, 21, 0, 0, 0, time.UTC) }
	return ctx, store, &out
}

func TestMoodLogOverwritesDay(t *testing.T) {
	ctx, store, out := setup(t)
	bg := context.Background()

	if err := (&MoodLogCmd{Mood: 2, Energy: 2, Numb: 4, Notes: "flat"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if err := (&MoodLogCmd{Mood: 4, Energy: 3, Numb: 1, Notes: "better"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if n, _ := store.Moods().Count(bg, storage.All()); n != 1 {
		t.Errorf("expected one mood entry, got %d", n)
	}

	out.Reset()
	if err := (&MoodListCmd{Limit: 10}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "2024-01-01  mood 4  energy 3  numb 1  better") {
		t.Errorf("unexpected list:\n%s", out.String())
	}

	e, err := store.Moods().First(bg, storage.All())
	if err != nil {
		t.Fatal(err)
	}
	if err := (&MoodDeleteCmd{ID: e.ID, Yes: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}
}

func TestMoodLogRejectsOutOfRange(t *testing.T) {
	ctx, _, _ := setup(t)
	if err := (&MoodLogCmd{Mood: 6, Energy: 3, Numb: 3, Notes: "x"}).Run(ctx); !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestFocusAddList(t *testing.T) {
	ctx, _, out := setup(t)

	for _, m := range []int{25, 45} {
		if err := (&FocusAddCmd{Minutes: m}).Run(ctx); err != nil {
			t.Fatal(err)
		}
	}
	if err := (&FocusAddCmd{Minutes: 0}).Run(ctx); !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("expected ErrValidation for 0 minutes, got %v", err)
	}

	out.Reset()
	if err := (&FocusListCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "2024-01-01: 70 min in 2 session(s)") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestMoodDeleteDeclined(t *testing.T) {
	ctx, store, _ := setup(t)
	bg := context.Background()
	id, err := store.Moods().Add(bg, models.MoodEntry{Date: "2024-01-01", Mood: 3, Energy: 3, Numb: 3})
	if err != nil {
		t.Fatal(err)
	}
	ctx.Prompt = func(string) (bool, error) { return false, nil }
	if err := (&MoodDeleteCmd{ID: id}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if n, _ := store.Moods().Count(bg, storage.All()); n != 1 {
		t.Errorf("declined delete removed the mood entry")
	}
}
