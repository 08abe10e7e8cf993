package models

import "time"

type GoalType string

const (
	GoalStreak     GoalType = "streak"
	GoalCompletion GoalType = "completion"
)

type Goal struct {
	ID           string    `json:"id"`
	Title        string    `json:"title" validate:"required"`
	Description  string    `json:"description"`
	Type         GoalType  `json:"type" validate:"required,oneof=streak completion"`
	TargetValue  int       `json:"target_value" validate:"gt=0"`
	CurrentValue int       `json:"current_value" validate:"gte=0"`
	Deadline     time.Time `json:"deadline"`
	Completed    bool      `json:"completed"`
	CreatedAt    time.Time `json:"created_at"`
}

// Progress returns the completion percentage, capped at 100.
func (g Goal) Progress() int {
	if g.TargetValue <= 0 {
		return 0
	}
	if g.CurrentValue >= g.TargetValue {
		return 100
	}
	return g.CurrentValue * 100 / g.TargetValue
}
