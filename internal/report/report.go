// Package report renders daily stats as a terminal table or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/lifetrack/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

const none = "-"

// Rows returns the label/value pairs shown for stats.
func Rows(stats models.DailyStats) [][]string {
	dopamine, workout, mood := none, none, none
	if stats.Dopamine != nil {
		dopamine = string(stats.Dopamine.Status)
		if stats.Dopamine.Notes != "" {
			dopamine += " (" + stats.Dopamine.Notes + ")"
		}
	}
	if stats.Workout != nil {
		workout = string(stats.Workout.Type)
	}
	if stats.Mood != nil {
		mood = fmt.Sprintf("mood %d, energy %d, numb %d", stats.Mood.Mood, stats.Mood.Energy, stats.Mood.Numb)
	}

	return [][]string{
		{"Dopamine", dopamine},
		{"Workout", workout},
		{"Hygiene", fmt.Sprintf("%d%% of %d habits", stats.Hygiene.Completion, stats.Hygiene.TotalHabits)},
		{"Mood", mood},
		{"Focus", fmt.Sprintf("%d min in %d sessions", stats.Focus.TotalDuration, stats.Focus.Sessions)},
		{"Overall", strconv.Itoa(stats.OverallCompletion) + "%"},
	}
}

// Table renders stats as a bordered two-column table.
func Table(stats models.DailyStats) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("Daily report", stats.Date).
		Rows(Rows(stats)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.Render()
}

// WeeklyTable renders one row per day of the productivity series.
func WeeklyTable(days []models.DaySeries) string {
	rows := make([][]string, 0, len(days))
	for _, d := range days {
		rows = append(rows, []string{
			d.Weekday + " " + d.Date,
			strconv.Itoa(d.Dopamine) + "%",
			strconv.Itoa(d.Workout) + "%",
			strconv.Itoa(d.Hygiene) + "%",
		})
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("Day", "Dopamine", "Workout", "Hygiene").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.Render()
}

// JSON writes stats as indented JSON.
func JSON(w io.Writer, stats models.DailyStats) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(stats)
}
