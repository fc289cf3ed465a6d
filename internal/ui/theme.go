package ui

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a named set of colors for the terminal views.
type Theme struct {
	Name string

	Background, Surface, Border string
	Text, Muted, Faint          string
	Accent, Info                string
	Success, Warning, Danger    string

	// StatusColors is keyed by the category returned by statusCategory.
	StatusColors map[string]string
}

// Styles holds the lipgloss styles derived from a Theme.
type Styles struct {
	Text, MutedText, FaintText           lipgloss.Style
	AccentText, InfoText                 lipgloss.Style
	SuccessText, WarningText, DangerText lipgloss.Style

	Header, Footer, Panel, Key lipgloss.Style

	statusColors      map[string]string
	background, muted string
}

// Styles builds the lipgloss styles for t.
func (t Theme) Styles() Styles {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Styles{
		Text:        fg(t.Text),
		MutedText:   fg(t.Muted),
		FaintText:   fg(t.Faint),
		AccentText:  fg(t.Accent),
		SuccessText: fg(t.Success).Bold(true),
		WarningText: fg(t.Warning),
		DangerText:  fg(t.Danger).Bold(true),
		InfoText:    fg(t.Info),
		Key:         fg(t.Warning),

		Header: fg(t.Text).Background(lipgloss.Color(t.Surface)).Padding(0, 1),
		Footer: fg(t.Muted).Padding(0, 1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		statusColors: t.StatusColors,
		background:   t.Background,
		muted:        t.Muted,
	}
}

// StatusStyle renders a filled badge in the color of a status category.
func (s Styles) StatusStyle(category string) lipgloss.Style {
	color, ok := s.statusColors[category]
	if !ok || color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(color))
}

// palette lists status colors in category order: login, ready, error,
// offline, done, printing, unknown, other.
type palette [8]string

func (p palette) statusColors() map[string]string {
	categories := [...]string{
		categoryLogin, categoryReady, categoryError, categoryOffline,
		categoryDone, categoryPrinting, categoryUnknown, categoryOther,
	}
	out := make(map[string]string, len(categories))
	for i, c := range categories {
		out[c] = p[i]
	}
	return out
}

// themeList is the cycle order for NextTheme; the first entry is the default.
var themeList = []Theme{
	{
		// https://github.com/EdenEast/nightfox.nvim
		Name: "Nightfox",
		Background: "#131a24", Surface: "#192330", Border: "#39506d",
		Text: "#cdcecf", Muted: "#738091", Faint: "#71839b",
		Accent: "#719cd6", Success: "#81b29a", Warning: "#dbc074", Danger: "#c94f6d", Info: "#63cdcf",
		StatusColors: palette{"#dbc074", "#738091", "#f4a261", "#c94f6d", "#81b29a", "#719cd6", "#9d79d6", "#63cdcf"}.statusColors(),
	},
	{
		// https://github.com/rebelot/kanagawa.nvim
		Name: "Kanagawa",
		Background: "#16161D", Surface: "#1F1F28", Border: "#54546D",
		Text: "#DCD7BA", Muted: "#C8C093", Faint: "#727169",
		Accent: "#7E9CD8", Success: "#98BB6C", Warning: "#E6C384", Danger: "#E46876", Info: "#7FB4CA",
		StatusColors: palette{"#E6C384", "#727169", "#FFA066", "#E46876", "#98BB6C", "#7E9CD8", "#957FB8", "#7FB4CA"}.statusColors(),
	},
	{
		// Tailwind slate and sky
		Name: "Slate",
		Background: "#020617", Surface: "#0f172a", Border: "#334155",
		Text: "#f1f5f9", Muted: "#94a3b8", Faint: "#64748b",
		Accent: "#38bdf8", Success: "#22c55e", Warning: "#f59e0b", Danger: "#ef4444", Info: "#06b6d4",
		StatusColors: palette{"#f59e0b", "#64748b", "#fb923c", "#dc2626", "#16a34a", "#0ea5e9", "#a855f7", "#06b6d4"}.statusColors(),
	},
}

// GetTheme looks a theme up by name; unknown names get the default.
func GetTheme(name string) Theme {
	for _, t := range themeList {
		if t.Name == name {
			return t
		}
	}
	return themeList[0]
}

// NextTheme returns the theme after current, wrapping around.
func NextTheme(current string) string {
	names := ThemeNames()
	i := slices.Index(names, current)
	return names[(i+1)%len(names)]
}

// ThemeNames lists themes in cycle order.
func ThemeNames() []string {
	names := make([]string, len(themeList))
	for i, t := range themeList {
		names[i] = t.Name
	}
	return names
}
