package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/report"
	calendarview "github.com/julianstephens/lifetrack/internal/tui/components/calendar"
	"github.com/julianstephens/lifetrack/internal/tui/components/today"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = docStyle.Render(m.todayModel.View())
	case StateHabits:
		content = docStyle.Render(m.habitsModel.View())
	case StateCalendar:
		content = docStyle.Render(m.viewCalendar())
	case StateTrends:
		content = docStyle.Render(m.viewTrends())
	case StateMoodForm, StateAddHabit:
		content = docStyle.Render(m.form.View())
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return warningStyle.Render(m.status)
	}
	return successStyle.Render("✓ " + m.status)
}

func (m Model) viewCalendar() string {
	year, month := m.months.Month(m.domain())
	return calendarview.Render(calendarview.Title(m.domain(), year, month), m.cells)
}

func (m Model) viewTrends() string {
	sections := []string{report.WeeklyTable(m.trends.weekly)}

	if len(m.trends.consistency) > 0 {
		lines := []string{subtleStyle.Render("Habit consistency (7 days)")}
		for _, r := range m.trends.consistency {
			lines = append(lines, fmt.Sprintf("%s %3d%% %s", today.Bar(r.Rate, 20), r.Rate, r.Name))
		}
		sections = append(sections, "", strings.Join(lines, "\n"))
	}

	if len(m.trends.moods) > 0 {
		var spark strings.Builder
		for _, e := range m.trends.moods {
			spark.WriteString(moodGlyph(e.Mood))
		}
		sections = append(sections, "", subtleStyle.Render("Mood trend")+"  "+spark.String())
	}

	if len(m.trends.frequency) > 0 {
		lines := []string{subtleStyle.Render("Workouts per week")}
		for _, w := range m.trends.frequency {
			lines = append(lines, fmt.Sprintf("%s %s %d", w.WeekStart[5:], strings.Repeat("■", w.Completed), w.Completed))
		}
		sections = append(sections, "", strings.Join(lines, "\n"))
	}

	if len(m.trends.moodEnergy) > 0 {
		sections = append(sections, "", subtleStyle.Render("Mood by energy"), moodEnergyGrid(m.trends.moodEnergy))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// moodEnergyGrid plots mood (rows, 5 at the top) against energy (columns).
// Each cell shows how many entries fall on that pair.
func moodEnergyGrid(points []models.MoodPoint) string {
	var counts [5][5]int
	for _, p := range points {
		if p.Mood >= 1 && p.Mood <= 5 && p.Energy >= 1 && p.Energy <= 5 {
			counts[p.Mood-1][p.Energy-1]++
		}
	}
	var b strings.Builder
	for mood := 5; mood >= 1; mood-- {
		fmt.Fprintf(&b, "%d │", mood)
		for energy := 1; energy <= 5; energy++ {
			if n := counts[mood-1][energy-1]; n > 0 {
				fmt.Fprintf(&b, " %d", n)
			} else {
				b.WriteString(" ·")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("  └──────────\n")
	b.WriteString("    1 2 3 4 5  energy")
	return b.String()
}

var moodGlyphs = []string{"▁", "▃", "▄", "▆", "█"}

func moodGlyph(v int) string {
	if v < 1 || v > len(moodGlyphs) {
		return " "
	}
	return moodGlyphs[v-1]
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %q and all of its history?", m.habitToDelete.Name)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
