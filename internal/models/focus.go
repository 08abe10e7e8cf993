package models

import "time"

// FocusSession is one block of focused work. A day may have many.
type FocusSession struct {
	ID        string    `json:"id"`
	Date      string    `json:"date" validate:"required,datekey"` // YYYY-MM-DD format
	Duration  int       `json:"duration" validate:"gt=0"`         // minutes
	CreatedAt time.Time `json:"created_at"`
}
