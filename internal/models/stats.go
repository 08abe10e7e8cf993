package models

// DailyStats is the one-day snapshot consumed by reports.
type DailyStats struct {
	Date              string         `json:"date"`
	Dopamine          *DopamineStats `json:"dopamine"`
	Workout           *WorkoutDay    `json:"workout"`
	Hygiene           HygieneStats   `json:"hygiene"`
	Mood              *MoodStats     `json:"mood"`
	Focus             FocusStats     `json:"focus"`
	OverallCompletion int            `json:"overall_completion"`
}

type DopamineStats struct {
	Status DopamineStatus `json:"status"`
	Notes  string         `json:"notes"`
}

type WorkoutDay struct {
	Type WorkoutType `json:"type"`
}

type HygieneStats struct {
	Completion  int `json:"completion"`
	TotalHabits int `json:"total_habits"`
}

type MoodStats struct {
	Mood   int `json:"mood"`
	Energy int `json:"energy"`
	Numb   int `json:"numb"`
}

type FocusStats struct {
	Sessions      int `json:"sessions"`
	TotalDuration int `json:"total_duration"` // minutes
}

// DaySeries is one day of the weekly productivity view.
type DaySeries struct {
	Date     string `json:"date"`
	Weekday  string `json:"weekday"`
	Dopamine int    `json:"dopamine"`
	Workout  int    `json:"workout"`
	Hygiene  int    `json:"hygiene"`
}

// HabitRate is one habit's completion rate over a trailing window.
type HabitRate struct {
	HabitID string `json:"habit_id"`
	Name    string `json:"name"`
	Rate    int    `json:"rate"`
}

// WeekCount is the number of completed workouts in the Sunday-first week
// starting on WeekStart.
type WeekCount struct {
	WeekStart string `json:"week_start"`
	Completed int    `json:"completed"`
}

// MoodPoint pairs a day's energy with its mood.
type MoodPoint struct {
	Date   string `json:"date"`
	Energy int    `json:"energy"`
	Mood   int    `json:"mood"`
}
