package storage

import (
	"context"

	"github.com/julianstephens/lifetrack/internal/models"
)

// Collection is the minimal per-entity contract the core depends on.
// Field names in queries and updates are column names; unknown names are rejected.
type Collection[T any] interface {
	// Add inserts rec and returns its id. An empty id is filled with a new UUID.
	Add(ctx context.Context, rec T) (string, error)
	// Update applies a partial update. Returns errors.ErrNotFound if no row matched.
	Update(ctx context.Context, id string, fields Fields) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (T, error)
	Find(ctx context.Context, q Query) ([]T, error)
	// First returns the first match of q, or errors.ErrNotFound.
	First(ctx context.Context, q Query) (T, error)
	DeleteWhere(ctx context.Context, q Query) (int64, error)
	Count(ctx context.Context, q Query) (int, error)
}

// Collections groups every entity collection.
type Collections interface {
	Dopamine() Collection[models.DopamineEntry]
	HygieneHabits() Collection[models.HygieneHabit]
	HygieneCompletions() Collection[models.HygieneCompletion]
	WorkoutTemplates() Collection[models.WorkoutTemplate]
	WorkoutExercises() Collection[models.WorkoutExercise]
	WorkoutHistory() Collection[models.WorkoutHistory]
	Moods() Collection[models.MoodEntry]
	FocusSessions() Collection[models.FocusSession]
	Goals() Collection[models.Goal]
	DailyCompletions() Collection[models.DailyCompletion]
}

// Transactor runs fn against collections bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithTx(ctx context.Context, fn func(tx Collections) error) error
}

// Store is what the mutation path needs: reads, writes and transactions.
type Store interface {
	Collections
	Transactor
}

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings(ctx context.Context) (models.Settings, error)
	SaveSettings(ctx context.Context, settings models.Settings) error

	Store

	// Utils
	GetConfigPath() string
}
