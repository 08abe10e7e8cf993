package models

import "time"

// DailyCompletion is the derived per-date summary. It is rebuilt from the
// other entities and never edited by hand.
type DailyCompletion struct {
	ID                string    `json:"id"`
	Date              string    `json:"date"` // YYYY-MM-DD format
	DopamineCompleted bool      `json:"dopamine_completed"`
	WorkoutCompleted  bool      `json:"workout_completed"`
	HygieneCompleted  bool      `json:"hygiene_completed"`
	TotalCompletion   int       `json:"total_completion"` // 0-100
	CreatedAt         time.Time `json:"created_at"`
}

// SameStatus reports whether two records carry the same derived values.
func (d DailyCompletion) SameStatus(o DailyCompletion) bool {
	return d.Date == o.Date &&
		d.DopamineCompleted == o.DopamineCompleted &&
		d.WorkoutCompleted == o.WorkoutCompleted &&
		d.HygieneCompleted == o.HygieneCompleted &&
		d.TotalCompletion == o.TotalCompletion
}
