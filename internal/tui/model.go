// Package tui is the interactive lifetrack dashboard.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifetrack/internal/calendar"
	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/tracker"
	"github.com/julianstephens/lifetrack/internal/tui/components/habits"
	"github.com/julianstephens/lifetrack/internal/tui/components/today"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateHabits
	StateCalendar
	StateTrends
	StateMoodForm
	StateAddHabit
	StateConfirmDelete
)

var tabTitles = []string{"Today", "Habits", "Calendar", "Trends"}

// calendarDomains are the domains with a per-day pass/fail outcome.
var calendarDomains = []models.Domain{models.DomainDopamine, models.DomainWorkout, models.DomainHygiene}

type MoodFormModel struct {
	Mood   int
	Energy int
	Numb   int
	Notes  string
}

type HabitFormModel struct {
	Name        string
	Description string
}

type Model struct {
	ctx           context.Context
	svc           *tracker.Service
	state         SessionState
	keys          KeyMap
	help          help.Model
	todayModel    today.Model
	habitsModel   habits.Model
	months        *calendar.ViewState
	domainIdx     int
	cells         []calendar.DayCell
	trends        trends
	form          *huh.Form
	moodForm      *MoodFormModel
	habitForm     *HabitFormModel
	habitToDelete habits.DeleteHabitMsg
	status        string
	statusErr     bool
	quitting      bool
	width         int
	height        int
}

type trends struct {
	weekly      []models.DaySeries
	consistency []models.HabitRate
	moods       []models.MoodEntry
	frequency   []models.WeekCount
	moodEnergy  []models.MoodPoint
}

func NewModel(ctx context.Context, svc *tracker.Service, now func() time.Time) Model {
	m := Model{
		ctx:         ctx,
		svc:         svc,
		state:       StateToday,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		todayModel:  today.New(),
		habitsModel: habits.New(0, 0),
		months:      calendar.NewViewState(now),
	}
	m.reload()
	return m
}

func (m Model) domain() models.Domain {
	return calendarDomains[m.domainIdx]
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateToday:
		keys = append(keys, m.keys.Passed, m.keys.Workout, m.keys.Mood)
	case StateCalendar:
		keys = append(keys, m.keys.Prev, m.keys.Next, m.keys.Domain)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Refresh}

	var actions []key.Binding
	switch m.state {
	case StateToday:
		actions = []key.Binding{m.keys.Passed, m.keys.Failed, m.keys.Workout, m.keys.Rest, m.keys.Mood}
	case StateCalendar:
		actions = []key.Binding{m.keys.Prev, m.keys.Next, m.keys.Reset, m.keys.Domain}
	}
	return [][]key.Binding{global, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// reload reads everything the views show. Read errors are surfaced in the
// status line rather than aborting the dashboard.
func (m *Model) reload() {
	if err := m.load(); err != nil {
		m.setError(err)
	}
}

func (m *Model) load() error {
	ctx := m.ctx
	engine := m.svc.Engine()
	date := engine.Today()

	stats, err := engine.DailyStats(ctx, date)
	if err != nil {
		return err
	}
	streaks := make(map[models.Domain]int, len(calendarDomains))
	for _, d := range calendarDomains {
		n, err := engine.CurrentStreak(ctx, d)
		if err != nil {
			return err
		}
		streaks[d] = n
	}
	workout, err := engine.WorkoutStats(ctx)
	if err != nil {
		return err
	}
	goals, err := m.svc.Goals(ctx)
	if err != nil {
		return err
	}
	m.todayModel.SetData(today.Data{Stats: stats, Streaks: streaks, Workout: workout, Goals: goals})

	list, err := m.svc.Habits(ctx)
	if err != nil {
		return err
	}
	done := make(map[string]bool, len(list))
	for _, h := range list {
		ok, err := m.svc.HabitCompleted(ctx, h.ID, date)
		if err != nil {
			return err
		}
		done[h.ID] = ok
	}
	m.habitsModel.SetHabits(list, done)

	if err := m.loadCalendar(); err != nil {
		return err
	}

	weekly, err := engine.WeeklyProductivity(ctx)
	if err != nil {
		return err
	}
	consistency, err := engine.HabitConsistency(ctx, constants.ConsistencyDays)
	if err != nil {
		return err
	}
	moods, err := engine.MoodTrend(ctx, constants.MoodTrendLimit)
	if err != nil {
		return err
	}
	frequency, err := engine.WorkoutFrequency(ctx, constants.FrequencyWeeks)
	if err != nil {
		return err
	}
	moodEnergy, err := engine.MoodEnergy(ctx, constants.MoodEnergyLimit)
	if err != nil {
		return err
	}
	m.trends = trends{
		weekly:      weekly,
		consistency: consistency,
		moods:       moods,
		frequency:   frequency,
		moodEnergy:  moodEnergy,
	}
	return nil
}

func (m *Model) loadCalendar() error {
	year, month := m.months.Month(m.domain())
	cells, err := m.svc.Calendar().ProjectMonth(m.ctx, year, month, m.domain())
	if err != nil {
		return err
	}
	m.cells = cells
	return nil
}

func (m *Model) setStatus(format string, args ...interface{}) {
	m.status = fmt.Sprintf(format, args...)
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}
