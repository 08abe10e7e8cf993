// Package calendar projects per-day domain outcomes onto a month grid.
package calendar

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/julianstephens/lifetrack/internal/errors"
	"github.com/julianstephens/lifetrack/internal/metrics"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/utils"
)

type Status string

const (
	StatusNone    Status = ""
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusPartial Status = "partial"
)

// DayCell is one square of the month grid. Blank cells pad the first week
// and carry no date.
type DayCell struct {
	Date         string `json:"date,omitempty"`
	Day          int    `json:"day,omitempty"`
	IsCurrentDay bool   `json:"is_current_day,omitempty"`
	Status       Status `json:"status,omitempty"`
	Blank        bool   `json:"blank,omitempty"`
}

type Projector struct {
	store  storage.Collections
	engine *metrics.Engine
}

func NewProjector(store storage.Collections, engine *metrics.Engine) *Projector {
	return &Projector{store: store, engine: engine}
}

// ProjectMonth returns the cells for month, Sunday-first, starting with the
// blanks that align the 1st with its weekday.
func (p *Projector) ProjectMonth(ctx context.Context, year int, month time.Month, domain models.Domain) ([]DayCell, error) {
	if month < time.January || month > time.December {
		return nil, apperrors.Validationf("month must be between 1 and 12 (got %d)", month)
	}
	status, err := p.statusFunc(ctx, domain)
	if err != nil {
		return nil, err
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := utils.DaysInMonth(year, month)
	today := p.engine.Today()

	cells := make([]DayCell, 0, int(first.Weekday())+days)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, DayCell{Blank: true})
	}
	for d := 1; d <= days; d++ {
		key := fmt.Sprintf("%04d-%02d-%02d", year, int(month), d)
		cells = append(cells, DayCell{
			Date:         key,
			Day:          d,
			IsCurrentDay: key == today,
			Status:       status(key),
		})
	}
	return cells, nil
}

func (p *Projector) statusFunc(ctx context.Context, domain models.Domain) (func(string) Status, error) {
	switch domain {
	case models.DomainDopamine:
		entries, err := p.store.Dopamine().Find(ctx, storage.All())
		if err != nil {
			return nil, err
		}
		byDate := make(map[string]Status, len(entries))
		for _, e := range entries {
			if e.Passed() {
				byDate[e.Date] = StatusPassed
			} else {
				byDate[e.Date] = StatusFailed
			}
		}
		return func(d string) Status { return byDate[d] }, nil

	case models.DomainWorkout:
		history, err := p.store.WorkoutHistory().Find(ctx, storage.All())
		if err != nil {
			return nil, err
		}
		byDate := make(map[string]Status, len(history))
		for _, w := range history {
			if w.Type == models.WorkoutCompleted {
				byDate[w.Date] = StatusPassed
			} else {
				byDate[w.Date] = StatusFailed
			}
		}
		return func(d string) Status { return byDate[d] }, nil

	case models.DomainHygiene:
		rates, err := p.engine.With(p.store).HygieneRates(ctx)
		if err != nil {
			return nil, err
		}
		threshold := p.engine.Options().HygieneThreshold
		return func(d string) Status {
			switch r := rates[d]; {
			case r >= threshold:
				return StatusPassed
			case r > 0:
				return StatusPartial
			}
			return StatusNone
		}, nil
	}
	return nil, apperrors.Validationf("calendar is not available for %q", domain)
}
