// Package settings persists the printer connection record.
// The record is stored in ~/.config/bambubar/printer.toml.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/bambubar/internal/config"
)

// Printer holds what bambubar needs to reach a printer on the LAN.
type Printer struct {
	Address    string `toml:"address"`
	Serial     string `toml:"serial"`
	AccessCode string `toml:"access_code"`
}

const defaultPrinterPath = "~/.config/bambubar/printer.toml"

// Complete reports whether every field needed for polling is present.
func (p Printer) Complete() bool {
	return len(p.Missing()) == 0
}

// Missing lists the fields that are still blank, in prompt order.
func (p Printer) Missing() []Field {
	var missing []Field
	for _, f := range Fields() {
		if strings.TrimSpace(p.Get(f)) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// Redacted returns a copy safe for logging.
func (p Printer) Redacted() Printer {
	if p.AccessCode != "" {
		p.AccessCode = "****"
	}
	return p
}

// Load reads the printer record from path. A missing file yields an empty
// record and no error; an unreadable or malformed file yields an empty record
// and an error so the caller can fall back to the setup prompt.
func Load(path string) (Printer, error) {
	resolved, err := config.ExpandPath(path, defaultPrinterPath)
	if err != nil {
		return Printer{}, err
	}

	data, err := os.ReadFile(resolved)
	if errors.Is(err, os.ErrNotExist) {
		return Printer{}, nil
	}
	if err != nil {
		return Printer{}, fmt.Errorf("read settings: %w", err)
	}

	var p Printer
	if err := toml.Unmarshal(data, &p); err != nil {
		return Printer{}, fmt.Errorf("parse settings: %w", err)
	}

	p.Address = strings.TrimSpace(p.Address)
	p.Serial = strings.TrimSpace(p.Serial)
	p.AccessCode = strings.TrimSpace(p.AccessCode)
	return p, nil
}

// Save writes the printer record to path, creating directories as needed.
// The file holds the access code, so it is written owner-only.
func Save(path string, p Printer) error {
	resolved, err := config.ExpandPath(path, defaultPrinterPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o600); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(resolved, 0o600); err != nil {
		return fmt.Errorf("chmod settings: %w", err)
	}

	return nil
}
