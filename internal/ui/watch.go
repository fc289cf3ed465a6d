package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/bambubar/internal/bambu"
	"github.com/five82/bambubar/internal/display"
	"github.com/five82/bambubar/internal/logtail"
	"github.com/five82/bambubar/internal/prefs"
	"github.com/five82/bambubar/internal/state"
)

const defaultWatchTick = time.Second

// Status categories used for badge colours.
const (
	categoryLogin    = "login"
	categoryReady    = "ready"
	categoryError    = "error"
	categoryOffline  = "offline"
	categoryDone     = "done"
	categoryPrinting = "printing"
	categoryUnknown  = "unknown"
	categoryOther    = "other"
)

// WatchOptions configure the watch view.
type WatchOptions struct {
	Store     *state.Store
	Trigger   func() // requests an immediate poll
	Address   string
	LogPath   string
	PrefsPath string
	Prefs     prefs.Prefs
	Tick      time.Duration
}

// WatchModel is the live terminal status view.
type WatchModel struct {
	store     *state.Store
	trigger   func()
	address   string
	logPath   string
	prefsPath string
	prefs     prefs.Prefs
	tick      time.Duration
	now       func() time.Time

	theme    Theme
	keys     watchKeyMap
	width    int
	height   int
	showHelp bool

	snapshot state.Snapshot
	logLines []string
	logErr   error
}

// NewWatchModel returns a watch view over opts.Store.
func NewWatchModel(opts WatchOptions) WatchModel {
	tick := opts.Tick
	if tick <= 0 {
		tick = defaultWatchTick
	}
	p := opts.Prefs
	if p.Theme == "" {
		p.Theme = prefs.Default().Theme
	}
	if p.LogLines <= 0 {
		p.LogLines = prefs.Default().LogLines
	}
	return WatchModel{
		store:     opts.Store,
		trigger:   opts.Trigger,
		address:   opts.Address,
		logPath:   opts.LogPath,
		prefsPath: opts.PrefsPath,
		prefs:     p,
		tick:      tick,
		now:       time.Now,
		theme:     GetTheme(p.Theme),
		keys:      defaultWatchKeys(),
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type logLinesMsg struct {
	lines []string
	err   error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func readLogsCmd(path string, n int) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, n)
		return logLinesMsg{lines: lines, err: err}
	}
}

// Init implements tea.Model.
func (m WatchModel) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.tick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	if cmd := m.refreshLogs(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		if cmd := m.refreshLogs(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, tickCmd(m.tick))
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil

	case logLinesMsg:
		m.logLines, m.logErr = msg.lines, msg.err
		return m, nil
	}
	return m, nil
}

func (m WatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.trigger != nil {
			m.trigger()
		}
		if m.store != nil {
			return m, fetchSnapshotCmd(m.store)
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleLogs):
		m.prefs.ShowLogs = !m.prefs.ShowLogs
		m.savePrefs()
		return m, m.refreshLogs()

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		return m, nil
	}
	return m, nil
}

func (m WatchModel) refreshLogs() tea.Cmd {
	if !m.prefs.ShowLogs || m.logPath == "" {
		return nil
	}
	return readLogsCmd(m.logPath, m.prefs.LogLines)
}

func (m WatchModel) savePrefs() {
	if m.prefsPath != "" {
		_ = prefs.Save(m.prefsPath, m.prefs)
	}
}

// View implements tea.Model.
func (m WatchModel) View() string {
	if m.showHelp {
		return m.renderHelp()
	}

	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(m.renderHeader(styles))
	b.WriteString("\n\n")

	for _, line := range display.Details(m.snapshot, m.now()) {
		b.WriteString("  ")
		b.WriteString(styles.Text.Render(line))
		b.WriteString("\n")
	}

	if m.prefs.ShowLogs {
		b.WriteString("\n")
		b.WriteString(m.renderLogs(styles))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderHints(styles, m.keys.hints()))
	return b.String()
}

func (m WatchModel) renderHeader(styles Styles) string {
	title := display.Title(m.snapshot)
	badge := styles.StatusStyle(statusCategory(m.snapshot)).Render(title)

	parts := []string{badge, styles.AccentText.Bold(true).Render("bambubar")}
	if m.address != "" {
		parts = append(parts, styles.MutedText.Render(m.address))
	}
	header := strings.Join(parts, "  ")
	if m.width > 0 {
		return lipgloss.NewStyle().Width(m.width).Render(header)
	}
	return header
}

func (m WatchModel) renderLogs(styles Styles) string {
	var body string
	switch {
	case m.logErr != nil:
		body = styles.DangerText.Render(fmt.Sprintf("Could not read log: %v", m.logErr))
	case len(m.logLines) == 0:
		body = styles.FaintText.Render("No log output yet")
	default:
		rendered := make([]string, len(m.logLines))
		for i, line := range m.logLines {
			rendered[i] = logLineStyle(styles, logtail.LineLevel(line)).Render(line)
		}
		body = strings.Join(rendered, "\n")
	}

	panel := styles.Panel
	if m.width > 4 {
		panel = panel.Width(m.width - 2)
	}
	return panel.Render(body)
}

func logLineStyle(styles Styles, level logtail.Level) lipgloss.Style {
	switch level {
	case logtail.LevelError:
		return styles.DangerText
	case logtail.LevelWarn:
		return styles.WarningText
	case logtail.LevelDebug:
		return styles.FaintText
	case logtail.LevelInfo:
		return styles.Text
	default:
		return styles.MutedText
	}
}

// statusCategory buckets a snapshot the same way display.Title does.
func statusCategory(snap state.Snapshot) string {
	switch {
	case !snap.Configured:
		return categoryLogin
	case snap.LastError != nil && snap.IsOffline():
		return categoryOffline
	case snap.LastError != nil:
		return categoryError
	case !snap.HasStatus:
		return categoryReady
	}
	switch snap.Status.Kind() {
	case bambu.KindDone:
		return categoryDone
	case bambu.KindPrinting:
		return categoryPrinting
	case bambu.KindUnknown:
		return categoryUnknown
	default:
		return categoryOther
	}
}

// RunWatch shows the watch view until the user quits or ctx is cancelled.
func RunWatch(ctx context.Context, opts WatchOptions) error {
	if opts.Store == nil {
		return fmt.Errorf("watch view requires a data store")
	}
	_, err := tea.NewProgram(NewWatchModel(opts), tea.WithContext(ctx), tea.WithAltScreen()).Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
