package calendar

import (
	"time"

	"github.com/julianstephens/lifetrack/internal/models"
)

// ViewState tracks which month is shown for each domain. The zero offset
// is the current month.
type ViewState struct {
	now     func() time.Time
	offsets map[models.Domain]int
}

func NewViewState(now func() time.Time) *ViewState {
	if now == nil {
		now = time.Now
	}
	return &ViewState{now: now, offsets: make(map[models.Domain]int)}
}

// Month returns the year and month currently shown for domain.
func (v *ViewState) Month(domain models.Domain) (int, time.Month) {
	now := v.now()
	t := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, v.offsets[domain], 0)
	return t.Year(), t.Month()
}

func (v *ViewState) Next(domain models.Domain) {
	v.offsets[domain]++
}

func (v *ViewState) Prev(domain models.Domain) {
	v.offsets[domain]--
}

// Reset returns domain to the current month.
func (v *ViewState) Reset(domain models.Domain) {
	delete(v.offsets, domain)
}
