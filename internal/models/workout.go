package models

import "time"

type WorkoutType string

const (
	WorkoutCompleted WorkoutType = "completed"
	WorkoutRest      WorkoutType = "rest"
	WorkoutMissed    WorkoutType = "missed"
)

// Satisfied reports whether the day counts toward daily completion.
// Rest days are planned and count the same as a finished workout.
func (t WorkoutType) Satisfied() bool {
	return t == WorkoutCompleted || t == WorkoutRest
}

type WorkoutTemplate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

type WorkoutExercise struct {
	ID         string    `json:"id"`
	TemplateID string    `json:"template_id" validate:"required"`
	Name       string    `json:"name" validate:"required"`
	PR         string    `json:"pr"`
	Order      int       `json:"order"`
	TargetSets int       `json:"target_sets" validate:"gte=0"`
	TargetReps int       `json:"target_reps" validate:"gte=0"`
	CreatedAt  time.Time `json:"created_at"`
}

// WorkoutHistory is the workout outcome for a day. One per date.
type WorkoutHistory struct {
	ID        string      `json:"id"`
	Date      string      `json:"date" validate:"required,datekey"` // YYYY-MM-DD format
	Type      WorkoutType `json:"type" validate:"required,oneof=completed rest missed"`
	CreatedAt time.Time   `json:"created_at"`
}

// WorkoutStats summarises workout history relative to today.
type WorkoutStats struct {
	WeeklyCompleted  int `json:"weekly_completed"`
	MonthlyCompleted int `json:"monthly_completed"`
	TotalCompleted   int `json:"total_completed"`
	Consistency      int `json:"consistency"` // percent of elapsed days this month
	CurrentStreak    int `json:"current_streak"`
	LongestStreak    int `json:"longest_streak"`
}
