package models

import "time"

// MoodEntry holds the 1-5 self ratings for a day. One per date.
type MoodEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date" validate:"required,datekey"` // YYYY-MM-DD format
	Mood      int       `json:"mood" validate:"min=1,max=5"`
	Energy    int       `json:"energy" validate:"min=1,max=5"`
	Numb      int       `json:"numb" validate:"min=1,max=5"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
