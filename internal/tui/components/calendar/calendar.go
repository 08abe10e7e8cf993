package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifetrack/internal/calendar"
	"github.com/julianstephens/lifetrack/internal/models"
)

var weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

var (
	cellStyle    = lipgloss.NewStyle().Width(5).Align(lipgloss.Center)
	headerStyle  = cellStyle.Foreground(lipgloss.Color("240")).Bold(true)
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).MarginBottom(1)
	passedStyle  = cellStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("42"))
	failedStyle  = cellStyle.Foreground(lipgloss.Color("255")).Background(lipgloss.Color("196"))
	partialStyle = cellStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214"))
	noneStyle    = cellStyle.Foreground(lipgloss.Color("250"))
	legendStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

func statusStyle(s calendar.Status) lipgloss.Style {
	switch s {
	case calendar.StatusPassed:
		return passedStyle
	case calendar.StatusFailed:
		return failedStyle
	case calendar.StatusPartial:
		return partialStyle
	default:
		return noneStyle
	}
}

// Title formats the heading shown above a month grid.
func Title(domain models.Domain, year int, month time.Month) string {
	return fmt.Sprintf("%s · %s %d", strings.ToUpper(string(domain)), month, year)
}

// Render draws cells as a Sunday-first grid of weeks.
func Render(title string, cells []calendar.DayCell) string {
	header := make([]string, len(weekdays))
	for i, d := range weekdays {
		header[i] = headerStyle.Render(d)
	}
	rows := []string{titleStyle.Render(title), lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	var week []string
	for _, c := range cells {
		week = append(week, renderCell(c))
		if len(week) == len(weekdays) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, week...))
			week = nil
		}
	}
	if len(week) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, week...))
	}

	legend := strings.Join([]string{
		passedStyle.Width(0).Render(" done "),
		partialStyle.Width(0).Render(" partial "),
		failedStyle.Width(0).Render(" missed "),
		"[ ] today",
	}, "  ")
	rows = append(rows, legendStyle.Render(legend))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCell(c calendar.DayCell) string {
	if c.Blank {
		return cellStyle.Render("")
	}
	label := fmt.Sprintf("%d", c.Day)
	if c.IsCurrentDay {
		label = "[" + label + "]"
	}
	return statusStyle(c.Status).Render(label)
}
