package ui

import "github.com/charmbracelet/bubbles/key"

// watchKeyMap defines the watch view bindings.
type watchKeyMap struct {
	Quit       key.Binding
	Refresh    key.Binding
	ToggleLogs key.Binding
	CycleTheme key.Binding
	Help       key.Binding
}

func defaultWatchKeys() watchKeyMap {
	return watchKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Refresh now"),
		),
		ToggleLogs: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Toggle log pane"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
	}
}

// hints returns the bindings shown in the footer.
func (k watchKeyMap) hints() []key.Binding {
	return []key.Binding{k.Refresh, k.ToggleLogs, k.CycleTheme, k.Help, k.Quit}
}

// setupKeyMap defines the setup form bindings.
type setupKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

func defaultSetupKeys() setupKeyMap {
	return setupKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "Next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "Cancel"),
		),
	}
}

func (k setupKeyMap) hints() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit, k.Cancel}
}
