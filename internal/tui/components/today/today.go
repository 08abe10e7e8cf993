package today

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/report"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	barFull  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	barEmpty = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
)

const barWidth = 30

// Data is everything the today panel shows.
type Data struct {
	Stats   models.DailyStats
	Streaks map[models.Domain]int
	Workout models.WorkoutStats
	Goals   []models.Goal
}

type Model struct {
	data  Data
	width int
}

func New() Model {
	return Model{}
}

func (m *Model) SetData(d Data) {
	m.data = d
}

func (m *Model) SetSize(width int) {
	m.width = width
}

func (m Model) View() string {
	d := m.data
	head := lipgloss.JoinVertical(lipgloss.Left,
		valueStyle.Render(d.Stats.Date),
		Bar(d.Stats.OverallCompletion, barWidth)+" "+valueStyle.Render(fmt.Sprintf("%d%%", d.Stats.OverallCompletion)),
	)

	streaks := panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Current streaks"),
		line("dopamine", fmt.Sprintf("%d days", d.Streaks[models.DomainDopamine])),
		line("workout", fmt.Sprintf("%d days", d.Streaks[models.DomainWorkout])),
		line("hygiene", fmt.Sprintf("%d days", d.Streaks[models.DomainHygiene])),
	))

	workout := panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("Workouts"),
		line("this week", fmt.Sprintf("%d", d.Workout.WeeklyCompleted)),
		line("this month", fmt.Sprintf("%d", d.Workout.MonthlyCompleted)),
		line("consistency", fmt.Sprintf("%d%%", d.Workout.Consistency)),
		line("longest", fmt.Sprintf("%d days", d.Workout.LongestStreak)),
	))

	side := lipgloss.JoinHorizontal(lipgloss.Top, streaks, " ", workout)
	parts := []string{head, "", report.Table(d.Stats), side}
	if g := goals(d.Goals); g != "" {
		parts = append(parts, g)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func goals(gs []models.Goal) string {
	if len(gs) == 0 {
		return ""
	}
	lines := []string{labelStyle.Render("Goals")}
	for _, g := range gs {
		lines = append(lines, fmt.Sprintf("%s %s %d/%d", Bar(g.Progress(), 10), g.Title, g.CurrentValue, g.TargetValue))
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func line(label, value string) string {
	return labelStyle.Render(fmt.Sprintf("%-12s", label)) + value
}

// Bar renders pct (0-100) as a fixed-width progress bar.
func Bar(pct, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * width / 100
	return barFull.Render(strings.Repeat("█", filled)) + barEmpty.Render(strings.Repeat("░", width-filled))
}
