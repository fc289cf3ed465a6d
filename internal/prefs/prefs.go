// Package prefs stores terminal view preferences in ~/.config/bambubar/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/bambubar/internal/config"
)

// Prefs holds watch view preferences.
type Prefs struct {
	Theme    string `toml:"theme"`
	ShowLogs bool   `toml:"show_logs"`
	LogLines int    `toml:"log_lines"`
}

const (
	defaultPrefsPath = "~/.config/bambubar/prefs.toml"
	defaultTheme     = "Nightfox"
	defaultLogLines  = 12
	maxLogLines      = 200
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Default returns the preferences used when no file exists.
func Default() Prefs {
	return Prefs{Theme: defaultTheme, LogLines: defaultLogLines}
}

// Load reads preferences from path. Preferences are cosmetic, so a missing,
// unreadable or malformed file degrades to defaults instead of failing.
func Load(path string) Prefs {
	p := Default()

	resolved, err := config.ExpandPath(path, defaultPrefsPath)
	if err != nil {
		return p
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return p
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return Default()
	}
	return p.normalize()
}

func (p Prefs) normalize() Prefs {
	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	if p.LogLines <= 0 {
		p.LogLines = defaultLogLines
	}
	if p.LogLines > maxLogLines {
		p.LogLines = maxLogLines
	}
	return p
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := config.ExpandPath(path, defaultPrefsPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p.normalize())
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}
