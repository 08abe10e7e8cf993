// Package testutil provides helpers shared by package tests: temp-dir
// SQLite stores, fixed clocks and Must* record inserts that fail the test
// on error.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage/sqlite"
)

// NewStore returns an initialized SQLite store in a temp dir, closed on cleanup.
func NewStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "lifetrack.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// Date parses a YYYY-MM-DD key at noon UTC.
func Date(t *testing.T, key string) time.Time {
	t.Helper()
	d, err := time.Parse(constants.DateFormat, key)
	if err != nil {
		t.Fatalf("bad test date %q: %v", key, err)
	}
	return d.Add(12 * time.Hour)
}

// Clock returns a clock fixed at noon UTC on key.
func Clock(t *testing.T, key string) func() time.Time {
	t.Helper()
	now := Date(t, key)
	return func() time.Time { return now }
}

// Shift moves a date key by days.
func Shift(t *testing.T, key string, days int) string {
	t.Helper()
	return Date(t, key).AddDate(0, 0, days).Format(constants.DateFormat)
}

func MustDopamine(t *testing.T, store *sqlite.Store, date string, status models.DopamineStatus) string {
	t.Helper()
	id, err := store.Dopamine().Add(context.Background(), models.DopamineEntry{Date: date, Status: status})
	if err != nil {
		t.Fatalf("failed to insert dopamine entry: %v", err)
	}
	return id
}

func MustWorkout(t *testing.T, store *sqlite.Store, date string, typ models.WorkoutType) string {
	t.Helper()
	id, err := store.WorkoutHistory().Add(context.Background(), models.WorkoutHistory{Date: date, Type: typ})
	if err != nil {
		t.Fatalf("failed to insert workout: %v", err)
	}
	return id
}

func MustHabit(t *testing.T, store *sqlite.Store, name string, order int) string {
	t.Helper()
	id, err := store.HygieneHabits().Add(context.Background(), models.HygieneHabit{Name: name, Order: order})
	if err != nil {
		t.Fatalf("failed to insert habit: %v", err)
	}
	return id
}

func MustCompletion(t *testing.T, store *sqlite.Store, habitID, date string, completed bool) string {
	t.Helper()
	id, err := store.HygieneCompletions().Add(context.Background(), models.HygieneCompletion{
		HabitID: habitID, Date: date, Completed: completed,
	})
	if err != nil {
		t.Fatalf("failed to insert completion: %v", err)
	}
	return id
}

func MustMood(t *testing.T, store *sqlite.Store, date string, mood, energy, numb int) string {
	t.Helper()
	id, err := store.Moods().Add(context.Background(), models.MoodEntry{Date: date, Mood: mood, Energy: energy, Numb: numb})
	if err != nil {
		t.Fatalf("failed to insert mood: %v", err)
	}
	return id
}

func MustFocus(t *testing.T, store *sqlite.Store, date string, minutes int) string {
	t.Helper()
	id, err := store.FocusSessions().Add(context.Background(), models.FocusSession{Date: date, Duration: minutes})
	if err != nil {
		t.Fatalf("failed to insert focus session: %v", err)
	}
	return id
}
