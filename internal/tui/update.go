package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	apperrors "github.com/julianstephens/lifetrack/internal/errors"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/tui/components/habits"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
		m.help.Width = size.Width
		m.habitsModel.SetSize(size.Width-4, size.Height-8)
		m.todayModel.SetSize(size.Width - 4)
		return m, nil
	}

	switch m.state {
	case StateMoodForm, StateAddHabit:
		return m.updateForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	switch msg := msg.(type) {
	case habits.AddHabitMsg:
		return m.openHabitForm()
	case habits.ToggleHabitMsg:
		_, err := m.svc.SetHabitCompletion(m.ctx, msg.ID, m.svc.Engine().Today(), msg.Completed)
		m.applied(err, "habit updated")
		return m, nil
	case habits.DeleteHabitMsg:
		m.habitToDelete = msg
		m.state = StateConfirmDelete
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % SessionState(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state + SessionState(len(tabTitles)) - 1) % SessionState(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.reload()
			m.setStatus("refreshed")
			return m, nil
		}

		switch m.state {
		case StateToday:
			return m.updateToday(msg)
		case StateCalendar:
			return m.updateCalendar(msg)
		}
	}

	if m.state == StateHabits {
		var cmd tea.Cmd
		m.habitsModel, cmd = m.habitsModel.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateToday(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	date := m.svc.Engine().Today()
	var err error
	switch {
	case key.Matches(msg, m.keys.Passed):
		_, err = m.svc.LogDopamine(m.ctx, models.DopamineEntry{Date: date, Status: models.DopaminePassed})
	case key.Matches(msg, m.keys.Failed):
		_, err = m.svc.LogDopamine(m.ctx, models.DopamineEntry{Date: date, Status: models.DopamineFailed})
	case key.Matches(msg, m.keys.Workout):
		_, err = m.svc.LogWorkout(m.ctx, date, models.WorkoutCompleted)
	case key.Matches(msg, m.keys.Rest):
		_, err = m.svc.LogWorkout(m.ctx, date, models.WorkoutRest)
	case key.Matches(msg, m.keys.Mood):
		return m.openMoodForm()
	default:
		return m, nil
	}
	m.applied(err, "logged for "+date)
	return m, nil
}

func (m Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Prev):
		m.months.Prev(m.domain())
	case key.Matches(msg, m.keys.Next):
		m.months.Next(m.domain())
	case key.Matches(msg, m.keys.Reset):
		m.months.Reset(m.domain())
	case key.Matches(msg, m.keys.Domain):
		m.domainIdx = (m.domainIdx + 1) % len(calendarDomains)
	default:
		return m, nil
	}
	if err := m.loadCalendar(); err != nil {
		m.setError(err)
	}
	return m, nil
}

func (m Model) openMoodForm() (tea.Model, tea.Cmd) {
	m.moodForm = &MoodFormModel{Mood: 3, Energy: 3, Numb: 3}
	scale := huh.NewOptions(1, 2, 3, 4, 5)
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().Title("Mood").Description("1 = low, 5 = great").Options(scale...).Value(&m.moodForm.Mood),
			huh.NewSelect[int]().Title("Energy").Options(scale...).Value(&m.moodForm.Energy),
			huh.NewSelect[int]().Title("Numbness").Description("1 = present, 5 = numb").Options(scale...).Value(&m.moodForm.Numb),
			huh.NewInput().Title("Notes").Value(&m.moodForm.Notes),
		),
	)
	m.state = StateMoodForm
	return m, m.form.Init()
}

func (m Model) openHabitForm() (tea.Model, tea.Cmd) {
	m.habitForm = &HabitFormModel{}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&m.habitForm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return apperrors.Validationf("name is required")
					}
					return nil
				}),
			huh.NewInput().Title("Description").Value(&m.habitForm.Description),
		),
	)
	m.state = StateAddHabit
	return m, m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	back := StateToday
	if m.state == StateAddHabit {
		back = StateHabits
	}

	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = back
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.state == StateMoodForm {
			_, err := m.svc.LogMood(m.ctx, models.MoodEntry{
				Date:   m.svc.Engine().Today(),
				Mood:   m.moodForm.Mood,
				Energy: m.moodForm.Energy,
				Numb:   m.moodForm.Numb,
				Notes:  strings.TrimSpace(m.moodForm.Notes),
			})
			m.applied(err, "mood logged")
		} else {
			_, err := m.svc.AddHabit(m.ctx, strings.TrimSpace(m.habitForm.Name), strings.TrimSpace(m.habitForm.Description))
			m.applied(err, "habit added")
		}
		m.state = back
		m.form = nil
		return m, nil
	case huh.StateAborted:
		m.state = back
		m.form = nil
		return m, nil
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(k, m.keys.Confirm):
		err := m.svc.DeleteHabit(m.ctx, m.habitToDelete.ID)
		m.applied(err, "deleted "+m.habitToDelete.Name)
	case key.Matches(k, m.keys.Cancel):
	default:
		return m, nil
	}
	m.habitToDelete = habits.DeleteHabitMsg{}
	m.state = StateHabits
	return m, nil
}

// applied reports the outcome of a write and reloads the views when the
// write was committed.
func (m *Model) applied(err error, success string) {
	switch {
	case err == nil:
		m.setStatus("%s", success)
	case apperrors.IsWarning(err):
		m.status = success + " (" + err.Error() + ")"
		m.statusErr = true
	default:
		m.setError(err)
		return
	}
	m.reload()
}
