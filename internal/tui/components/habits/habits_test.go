package habits

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lifetrack/internal/models"
)

func newModel() Model {
	m := New(80, 20)
	m.SetHabits([]models.HygieneHabit{
		{ID: "h1", Name: "Brush teeth"},
		{ID: "h2", Name: "Shower"},
	}, map[string]bool{"h1": true})
	return m
}

func TestItemTitle(t *testing.T) {
	if got := (Item{Habit: models.HygieneHabit{Name: "Floss"}, IsMarked: true}).Title(); got != "✓ Floss" {
		t.Errorf("marked title = %q", got)
	}
	if got := (Item{Habit: models.HygieneHabit{Name: "Floss"}}).Title(); got != "○ Floss" {
		t.Errorf("unmarked title = %q", got)
	}
}

func TestToggleEmitsInvertedState(t *testing.T) {
	m := newModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(ToggleHabitMsg)
	if !ok {
		t.Fatalf("expected ToggleHabitMsg, got %T", cmd())
	}
	if msg.ID != "h1" || msg.Completed {
		t.Errorf("unexpected toggle: %+v", msg)
	}
}

func TestAddAndDelete(t *testing.T) {
	m := newModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	if _, ok := cmd().(AddHabitMsg); !ok {
		t.Error("expected AddHabitMsg")
	}
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	if msg, ok := cmd().(DeleteHabitMsg); !ok || msg.Name != "Brush teeth" {
		t.Errorf("expected DeleteHabitMsg for first habit, got %+v", msg)
	}
}

func TestEmptyView(t *testing.T) {
	m := New(80, 20)
	if !strings.Contains(m.View(), "No habits yet") {
		t.Errorf("unexpected empty view: %q", m.View())
	}
}
