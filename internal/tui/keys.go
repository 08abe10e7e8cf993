package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Quit     key.Binding
	Help     key.Binding
	Refresh  key.Binding

	Passed  key.Binding
	Failed  key.Binding
	Workout key.Binding
	Rest    key.Binding
	Mood    key.Binding

	Prev   key.Binding
	Next   key.Binding
	Reset  key.Binding
	Domain key.Binding

	Confirm key.Binding
	Cancel  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev view"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Passed: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "dopamine passed"),
		),
		Failed: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "dopamine failed"),
		),
		Workout: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "workout done"),
		),
		Rest: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "rest day"),
		),
		Mood: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "log mood"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev month"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next month"),
		),
		Reset: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "this month"),
		),
		Domain: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cycle domain"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yes"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "no"),
		),
	}
}
