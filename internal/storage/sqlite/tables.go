package sqlite

import (
	"time"

	"github.com/julianstephens/lifetrack/internal/models"
)

var dopamineTable = &table[models.DopamineEntry]{
	name:    "dopamine_entries",
	columns: []string{"id", "date", "status", "notes", "created_at"},
	values: func(e models.DopamineEntry) []interface{} {
		return []interface{}{e.ID, e.Date, string(e.Status), e.Notes, formatTime(e.CreatedAt)}
	},
	scan: func(row scanner) (models.DopamineEntry, error) {
		var e models.DopamineEntry
		var status, created string
		if err := row.Scan(&e.ID, &e.Date, &status, &e.Notes, &created); err != nil {
			return e, err
		}
		e.Status = models.DopamineStatus(status)
		var err error
		e.CreatedAt, err = parseTime(created)
		return e, err
	},
	identity: func(e *models.DopamineEntry) (*string, *time.Time) { return &e.ID, &e.CreatedAt },
}

var habitTable = &table[models.HygieneHabit]{
	name:    "hygiene_habits",
	columns: []string{"id", "name", "description", "sort_order", "created_at"},
	values: func(h models.HygieneHabit) []interface{} {
		return []interface{}{h.ID, h.Name, h.Description, h.Order, formatTime(h.CreatedAt)}
	},
	scan: func(row scanner) (models.HygieneHabit, error) {
		var h models.HygieneHabit
		var created string
		if err := row.Scan(&h.ID, &h.Name, &h.Description, &h.Order, &created); err != nil {
			return h, err
		}
		var err error
		h.CreatedAt, err = parseTime(created)
		return h, err
	},
	identity: func(h *models.HygieneHabit) (*string, *time.Time) { return &h.ID, &h.CreatedAt },
}

var habitCompletionTable = &table[models.HygieneCompletion]{
	name:    "hygiene_completions",
	columns: []string{"id", "habit_id", "date", "completed", "created_at"},
	values: func(c models.HygieneCompletion) []interface{} {
		return []interface{}{c.ID, c.HabitID, c.Date, c.Completed, formatTime(c.CreatedAt)}
	},
	scan: func(row scanner) (models.HygieneCompletion, error) {
		var c models.HygieneCompletion
		var created string
		if err := row.Scan(&c.ID, &c.HabitID, &c.Date, &c.Completed, &created); err != nil {
			return c, err
		}
		var err error
		c.CreatedAt, err = parseTime(created)
		return c, err
	},
	identity: func(c *models.HygieneCompletion) (*string, *time.Time) { return &c.ID, &c.CreatedAt },
}

var templateTable = &table[models.WorkoutTemplate]{
	name:    "workout_templates",
	columns: []string{"id", "name", "created_at"},
	values: func(t models.WorkoutTemplate) []interface{} {
		return []interface{}{t.ID, t.Name, formatTime(t.CreatedAt)}
	},
	scan: func(row scanner) (models.WorkoutTemplate, error) {
		var t models.WorkoutTemplate
		var created string
		if err := row.Scan(&t.ID, &t.Name, &created); err != nil {
			return t, err
		}
		var err error
		t.CreatedAt, err = parseTime(created)
		return t, err
	},
	identity: func(t *models.WorkoutTemplate) (*string, *time.Time) { return &t.ID, &t.CreatedAt },
}

var exerciseTable = &table[models.WorkoutExercise]{
	name:    "workout_exercises",
	columns: []string{"id", "template_id", "name", "pr", "sort_order", "target_sets", "target_reps", "created_at"},
	values: func(e models.WorkoutExercise) []interface{} {
		return []interface{}{e.ID, e.TemplateID, e.Name, e.PR, e.Order, e.TargetSets, e.TargetReps, formatTime(e.CreatedAt)}
	},
	scan: func(row scanner) (models.WorkoutExercise, error) {
		var e models.WorkoutExercise
		var created string
		if err := row.Scan(&e.ID, &e.TemplateID, &e.Name, &e.PR, &e.Order, &e.TargetSets, &e.TargetReps, &created); err != nil {
			return e, err
		}
		var err error
		e.CreatedAt, err = parseTime(created)
		return e, err
	},
	identity: func(e *models.WorkoutExercise) (*string, *time.Time) { return &e.ID, &e.CreatedAt },
}

var workoutTable = &table[models.WorkoutHistory]{
	name:    "workout_history",
	columns: []string{"id", "date", "type", "created_at"},
	values: func(w models.WorkoutHistory) []interface{} {
		return []interface{}{w.ID, w.Date, string(w.Type), formatTime(w.CreatedAt)}
	},
	scan: func(row scanner) (models.WorkoutHistory, error) {
		var w models.WorkoutHistory
		var typ, created string
		if err := row.Scan(&w.ID, &w.Date, &typ, &created); err != nil {
			return w, err
		}
		w.Type = models.WorkoutType(typ)
		var err error
		w.CreatedAt, err = parseTime(created)
		return w, err
	},
	identity: func(w *models.WorkoutHistory) (*string, *time.Time) { return &w.ID, &w.CreatedAt },
}

var moodTable = &table[models.MoodEntry]{
	name:    "mood_entries",
	columns: []string{"id", "date", "mood", "energy", "numb", "notes", "created_at"},
	values: func(m models.MoodEntry) []interface{} {
		return []interface{}{m.ID, m.Date, m.Mood, m.Energy, m.Numb, m.Notes, formatTime(m.CreatedAt)}
	},
	scan: func(row scanner) (models.MoodEntry, error) {
		var m models.MoodEntry
		var created string
		if err := row.Scan(&m.ID, &m.Date, &m.Mood, &m.Energy, &m.Numb, &m.Notes, &created); err != nil {
			return m, err
		}
		var err error
		m.CreatedAt, err = parseTime(created)
		return m, err
	},
	identity: func(m *models.MoodEntry) (*string, *time.Time) { return &m.ID, &m.CreatedAt },
}

var focusTable = &table[models.FocusSession]{
	name:    "focus_sessions",
	columns: []string{"id", "date", "duration", "created_at"},
	values: func(f models.FocusSession) []interface{} {
		return []interface{}{f.ID, f.Date, f.Duration, formatTime(f.CreatedAt)}
	},
	scan: func(row scanner) (models.FocusSession, error) {
		var f models.FocusSession
		var created string
		if err := row.Scan(&f.ID, &f.Date, &f.Duration, &created); err != nil {
			return f, err
		}
		var err error
		f.CreatedAt, err = parseTime(created)
		return f, err
	},
	identity: func(f *models.FocusSession) (*string, *time.Time) { return &f.ID, &f.CreatedAt },
}

var goalTable = &table[models.Goal]{
	name:    "goals",
	columns: []string{"id", "title", "description", "type", "target_value", "current_value", "deadline", "completed", "created_at"},
	values: func(g models.Goal) []interface{} {
		return []interface{}{g.ID, g.Title, g.Description, string(g.Type), g.TargetValue, g.CurrentValue, formatTime(g.Deadline), g.Completed, formatTime(g.CreatedAt)}
	},
	scan: func(row scanner) (models.Goal, error) {
		var g models.Goal
		var typ, deadline, created string
		if err := row.Scan(&g.ID, &g.Title, &g.Description, &typ, &g.TargetValue, &g.CurrentValue, &deadline, &g.Completed, &created); err != nil {
			return g, err
		}
		g.Type = models.GoalType(typ)
		var err error
		if g.Deadline, err = parseTime(deadline); err != nil {
			return g, err
		}
		g.CreatedAt, err = parseTime(created)
		return g, err
	},
	identity: func(g *models.Goal) (*string, *time.Time) { return &g.ID, &g.CreatedAt },
}

var dailyCompletionTable = &table[models.DailyCompletion]{
	name: "daily_completions",
	columns: []string{
		"id", "date", "dopamine_completed", "workout_completed", "hygiene_completed", "total_completion", "created_at",
	},
	values: func(d models.DailyCompletion) []interface{} {
		return []interface{}{d.ID, d.Date, d.DopamineCompleted, d.WorkoutCompleted, d.HygieneCompleted, d.TotalCompletion, formatTime(d.CreatedAt)}
	},
	scan: func(row scanner) (models.DailyCompletion, error) {
		var d models.DailyCompletion
		var created string
		if err := row.Scan(&d.ID, &d.Date, &d.DopamineCompleted, &d.WorkoutCompleted, &d.HygieneCompleted, &d.TotalCompletion, &created); err != nil {
			return d, err
		}
		var err error
		d.CreatedAt, err = parseTime(created)
		return d, err
	},
	identity: func(d *models.DailyCompletion) (*string, *time.Time) { return &d.ID, &d.CreatedAt },
}
