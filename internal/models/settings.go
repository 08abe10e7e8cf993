package models

type WorkoutStreakMode string

const (
	// WorkoutStreakLogged counts any logged workout day toward the current streak.
	WorkoutStreakLogged WorkoutStreakMode = "logged"
	// WorkoutStreakCompleted only counts days whose type is completed.
	WorkoutStreakCompleted WorkoutStreakMode = "completed"
)

// Settings represents application-wide settings
type Settings struct {
	Timezone          string            `json:"timezone" validate:"required"`                          // IANA timezone name or "Local"
	HygieneThreshold  int               `json:"hygiene_threshold" validate:"min=1,max=100"`            // percent needed for a hygiene day to pass
	WorkoutStreakMode WorkoutStreakMode `json:"workout_streak_mode" validate:"oneof=logged completed"` // which workout days extend the streak
}
