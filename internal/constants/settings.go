package constants

const (
	SettingTimezone          = "timezone"
	SettingHygieneThreshold  = "hygiene_threshold"
	SettingWorkoutStreakMode = "workout_streak_mode"

	DefaultTimezone          = "Local" // Use system local timezone by default
	DefaultHygieneThreshold  = HygienePassThreshold
	DefaultWorkoutStreakMode = "logged"
)
