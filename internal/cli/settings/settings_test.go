package settings

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/lifetrack/internal/cli"
	apperrors "github.com/julianstephens/lifetrack/internal/errors"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/storage/sqlite"
	"github.com/julianstephens/lifetrack/internal/testutil"
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
	return ctx, store, &out
}

func ptr[T any](v T) *T { return &v }

func TestSettingsList(t *testing.T) {
	ctx, _, out := setup(t)
	if err := (&SettingsCmd{List: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Timezone:", "Local", "80%", "logged"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("list missing %q:\n%s", want, out.String())
		}
	}
}

func TestSettingsUpdate(t *testing.T) {
	ctx, store, _ := setup(t)

	cmd := &SettingsCmd{
		Timezone:          ptr("America/New_York"),
		HygieneThreshold:  ptr(60),
		WorkoutStreakMode: ptr("completed"),
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatal(err)
	}
	got, err := store.GetSettings(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := models.Settings{Timezone: "America/New_York", HygieneThreshold: 60, WorkoutStreakMode: models.WorkoutStreakCompleted}
	if got != want {
		t.Errorf("settings = %+v, want %+v", got, want)
	}
}

func TestSettingsRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		cmd  SettingsCmd
	}{
		{"timezone", SettingsCmd{Timezone: ptr("Mars/Olympus")}},
		{"threshold too high", SettingsCmd{HygieneThreshold: ptr(101)}},
		{"threshold zero", SettingsCmd{HygieneThreshold: ptr(0)}},
		{"streak mode", SettingsCmd{WorkoutStreakMode: ptr("sometimes")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, store, _ := setup(t)
			if err := tt.cmd.Run(ctx); !errors.Is(err, apperrors.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
			got, _ := store.GetSettings(context.Background())
			if got != sqlite.DefaultSettings() {
				t.Errorf("invalid update was saved: %+v", got)
			}
		})
	}
}

func TestThresholdChangeRebuildsSummaries(t *testing.T) {
	ctx, store, out := setup(t)
	ctx.Now = testutil.Clock(t, "2024-01-15")

	svc, err := ctx.Service()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.LogDopamine(ctx, models.DopamineEntry{Date: "2024-01-15", Status: models.DopaminePassed}); err != nil {
		t.Fatal(err)
	}
	var ids []string
	for _, name := range []string{"Shower", "Brush", "Floss"} {
		h, err := svc.AddHabit(ctx, name, "")
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, h.ID)
	}
	for _, date := range []string{"2024-01-14", "2024-01-15"} {
		for _, id := range ids[:2] {
			if _, err := svc.SetHabitCompletion(ctx, id, date, true); err != nil {
				t.Fatal(err)
			}
		}
	}

	before, err := store.DailyCompletions().First(context.Background(), storage.Where("date", "2024-01-15"))
	if err != nil {
		t.Fatal(err)
	}
	if before.HygieneCompleted || before.TotalCompletion != 33 {
		t.Fatalf("unexpected summary before change: %+v", before)
	}

	if err := (&SettingsCmd{HygieneThreshold: ptr(50)}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Rebuilt 2 daily summaries") {
		t.Errorf("expected rebuild message:\n%s", out.String())
	}

	svc, err = ctx.Service()
	if err != nil {
		t.Fatal(err)
	}
	if got := svc.Engine().Options().HygieneThreshold; got != 50 {
		t.Errorf("service threshold = %d, want 50", got)
	}
	for _, date := range []string{"2024-01-14", "2024-01-15"} {
		ok, fresh, err := svc.Cache().Verify(ctx, date)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Errorf("summary for %s is stale after threshold change: %+v", date, fresh)
		}
	}
	after, err := store.DailyCompletions().First(context.Background(), storage.Where("date", "2024-01-15"))
	if err != nil {
		t.Fatal(err)
	}
	if !after.HygieneCompleted || after.TotalCompletion != 67 {
		t.Errorf("summary after change = %+v, want hygiene passed at 67%%", after)
	}
}

func TestTimezoneChangeLeavesSummariesAlone(t *testing.T) {
	ctx, _, out := setup(t)
	if err := (&SettingsCmd{Timezone: ptr("UTC")}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "Rebuilt") {
		t.Errorf("timezone change should not rebuild summaries:\n%s", out.String())
	}
}
