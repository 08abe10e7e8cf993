package models

import "time"

type DopamineStatus string

const (
	DopaminePassed DopamineStatus = "passed"
	DopamineFailed DopamineStatus = "failed"
)

// DopamineEntry is the single behavioral-control verdict for a day.
type DopamineEntry struct {
	ID        string         `json:"id"`
	Date      string         `json:"date" validate:"required,datekey"` // YYYY-MM-DD format
	Status    DopamineStatus `json:"status" validate:"required,oneof=passed failed"`
	Notes     string         `json:"notes"`
	CreatedAt time.Time      `json:"created_at"`
}

func (e DopamineEntry) Passed() bool {
	return e.Status == DopaminePassed
}
