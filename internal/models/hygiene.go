package models

import "time"

// HygieneHabit is a user-defined daily hygiene item.
type HygieneHabit struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
}

// HygieneCompletion records whether a habit was done on a day.
// There is at most one per (HabitID, Date).
type HygieneCompletion struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habit_id" validate:"required"`
	Date      string    `json:"date" validate:"required,datekey"` // YYYY-MM-DD format
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}
