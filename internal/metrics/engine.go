// Package metrics derives streaks, completion rates and daily summaries
// from the event store. Every call recomputes from stored records.
package metrics

import (
	"math"
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/utils"
)

type Options struct {
	// HygieneThreshold is the percentage at which a hygiene day passes.
	HygieneThreshold int
	// WorkoutStreak selects which history entries extend the current workout streak.
	WorkoutStreak models.WorkoutStreakMode
}

func DefaultOptions() Options {
	return Options{
		HygieneThreshold: constants.HygienePassThreshold,
		WorkoutStreak:    models.WorkoutStreakLogged,
	}
}

// OptionsFromSettings maps persisted settings onto engine options,
// falling back to defaults for unset values.
func OptionsFromSettings(s models.Settings) Options {
	opts := DefaultOptions()
	if s.HygieneThreshold > 0 {
		opts.HygieneThreshold = s.HygieneThreshold
	}
	if s.WorkoutStreakMode != "" {
		opts.WorkoutStreak = s.WorkoutStreakMode
	}
	return opts
}

type Engine struct {
	store storage.Collections
	now   func() time.Time
	opts  Options
}

func New(store storage.Collections, now func() time.Time, opts Options) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{store: store, now: now, opts: opts}
}

// With returns an engine reading from store, typically a transaction.
func (e *Engine) With(store storage.Collections) *Engine {
	return &Engine{store: store, now: e.now, opts: e.opts}
}

func (e *Engine) Options() Options {
	return e.opts
}

// Today returns the current date key.
func (e *Engine) Today() string {
	return utils.DateKey(e.now())
}

func (e *Engine) dateOrToday(date string) string {
	if date == "" {
		return e.Today()
	}
	return date
}

// percent returns round(part/whole*100), or 0 when whole is 0.
func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
