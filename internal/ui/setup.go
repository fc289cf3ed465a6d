package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/bambubar/internal/settings"
)

// ErrSetupCanceled is returned by RunSetup when the user leaves the form
// without saving.
var ErrSetupCanceled = errors.New("setup canceled")

// SaveFunc persists a validated printer record.
type SaveFunc func(settings.Printer) error

// SetupModel is the Bubble Tea form that collects the printer record.
type SetupModel struct {
	fields []settings.Field
	inputs []textinput.Model
	errs   []string
	focus  int

	save    SaveFunc
	formErr string

	keys  setupKeyMap
	theme Theme

	saved    bool
	canceled bool
	result   settings.Printer
}

// NewSetupModel returns a form pre-filled with current.
func NewSetupModel(current settings.Printer, save SaveFunc, theme Theme) SetupModel {
	fields := settings.Fields()
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Prompt = "› "
		in.CharLimit = 128
		in.Width = 40
		in.Placeholder = placeholderFor(f)
		in.SetValue(current.Get(f))
		if f.Secret() {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		inputs[i] = in
	}

	m := SetupModel{
		fields: fields,
		inputs: inputs,
		errs:   make([]string, len(fields)),
		save:   save,
		keys:   defaultSetupKeys(),
		theme:  theme,
	}
	// Start on the first blank field.
	if missing := current.Missing(); len(missing) > 0 {
		for i, f := range fields {
			if f == missing[0] {
				m.focus = i
				break
			}
		}
	}
	m.focusInputs()
	return m
}

func placeholderFor(f settings.Field) string {
	switch f {
	case settings.FieldAddress:
		return "192.168.1.20"
	case settings.FieldSerial:
		return "01S00C123456789"
	case settings.FieldAccessCode:
		return "8-digit code from the printer screen"
	default:
		return ""
	}
}

// Result returns the saved record and whether the form was saved.
func (m SetupModel) Result() (settings.Printer, bool) {
	return m.result, m.saved
}

// Init implements tea.Model.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch {
		case key.Matches(keyMsg, m.keys.Cancel):
			m.canceled = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Next):
			m.focus = (m.focus + 1) % len(m.inputs)
			return m, m.focusInputs()
		case key.Matches(keyMsg, m.keys.Prev):
			m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
			return m, m.focusInputs()
		case key.Matches(keyMsg, m.keys.Submit):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if isKey {
		m.errs[m.focus] = ""
		m.formErr = ""
	}
	return m, cmd
}

func (m SetupModel) submit() (tea.Model, tea.Cmd) {
	var printer settings.Printer
	firstBad := -1
	for i, f := range m.fields {
		value := m.inputs[i].Value()
		if err := settings.Validate(f, value); err != nil {
			m.errs[i] = err.Error()
			if firstBad < 0 {
				firstBad = i
			}
			continue
		}
		m.errs[i] = ""
		printer.Set(f, value)
	}
	if firstBad >= 0 {
		m.focus = firstBad
		return m, m.focusInputs()
	}

	if m.save != nil {
		if err := m.save(printer); err != nil {
			m.formErr = "Could not save settings: " + err.Error()
			return m, nil
		}
	}
	m.result = printer
	m.saved = true
	return m, tea.Quit
}

func (m *SetupModel) focusInputs() tea.Cmd {
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == m.focus {
			cmd = m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}
	return cmd
}

// View implements tea.Model.
func (m SetupModel) View() string {
	if m.saved || m.canceled {
		return ""
	}
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Bambu printer setup"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Find these under Settings → Network on the printer (LAN mode)."))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		label := f.Label()
		if i == m.focus {
			b.WriteString(styles.WarningText.Bold(true).Render(label))
		} else {
			b.WriteString(styles.Text.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if m.errs[i] != "" {
			b.WriteString(styles.DangerText.Render("  " + m.errs[i]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.formErr != "" {
		b.WriteString(styles.DangerText.Render(m.formErr))
		b.WriteString("\n\n")
	}

	b.WriteString(renderHints(styles, m.keys.hints()))
	b.WriteString("\n")
	return b.String()
}

// RunSetup shows the form until the user saves or cancels.
func RunSetup(ctx context.Context, current settings.Printer, save SaveFunc, themeName string) (settings.Printer, error) {
	m := NewSetupModel(current, save, GetTheme(themeName))
	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return settings.Printer{}, fmt.Errorf("run setup form: %w", err)
	}
	sm, ok := final.(SetupModel)
	if !ok {
		return settings.Printer{}, fmt.Errorf("setup form returned %T", final)
	}
	printer, saved := sm.Result()
	if !saved {
		return settings.Printer{}, ErrSetupCanceled
	}
	return printer, nil
}
