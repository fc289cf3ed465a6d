package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// renderHints renders a one-line key hint bar.
func renderHints(styles Styles, bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, styles.Key.Render(h.Key)+" "+styles.MutedText.Render(h.Desc))
	}
	return styles.Footer.Render(strings.Join(parts, styles.FaintText.Render("  ·  ")))
}

// renderHelp draws the shortcut list as a centered modal.
func (m WatchModel) renderHelp() string {
	styles := m.theme.Styles()

	rows := []string{
		styles.Text.Bold(true).Render("Keyboard shortcuts"),
		styles.FaintText.Render(strings.Repeat("─", 30)),
		"",
	}
	for _, binding := range m.keys.hints() {
		h := binding.Help()
		rows = append(rows, styles.Key.Width(12).Render(h.Key)+styles.Text.Render(h.Desc))
	}
	rows = append(rows, "", styles.FaintText.Render("Theme: "+m.theme.Name))

	modal := styles.Panel.
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(40).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	if m.width <= 0 || m.height <= 0 {
		return modal
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
