package models

// Domain is one tracked behavioral category.
type Domain string

const (
	DomainDopamine Domain = "dopamine"
	DomainHygiene  Domain = "hygiene"
	DomainWorkout  Domain = "workout"
	DomainMood     Domain = "mood"
	DomainFocus    Domain = "focus"
)

// CalendarDomains are the domains that can be projected onto a month grid.
var CalendarDomains = []Domain{DomainDopamine, DomainHygiene, DomainWorkout}

func (d Domain) Valid() bool {
	switch d {
	case DomainDopamine, DomainHygiene, DomainWorkout, DomainMood, DomainFocus:
		return true
	}
	return false
}
