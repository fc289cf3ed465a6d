package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures bambubar's runtime options.
type Config struct {
	PollInterval time.Duration
	Timeout      time.Duration
	LogLevel     string
	LogFile      string
	PrinterPath  string
}

const (
	defaultConfigPath   = "~/.config/bambubar/config.toml"
	defaultPrinterPath  = "~/.config/bambubar/printer.toml"
	defaultLogFile      = "~/.local/state/bambubar/bambubar.log"
	defaultLogLevel     = "info"
	defaultPollInterval = 60 * time.Second
	defaultTimeout      = 10 * time.Second
	minPollInterval     = 5 * time.Second
)

// fileConfig mirrors config.toml. Zero values mean "not set".
type fileConfig struct {
	PollSeconds    int    `toml:"poll_seconds"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	LogLevel       string `toml:"log_level"`
	LogFile        string `toml:"log_file"`
	PrinterFile    string `toml:"printer_file"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		PollInterval: defaultPollInterval,
		Timeout:      defaultTimeout,
		LogLevel:     defaultLogLevel,
		LogFile:      expandOrKeep(defaultLogFile),
		PrinterPath:  expandOrKeep(defaultPrinterPath),
	}
}

// Load reads the config at path (or the default location). A missing file
// yields Default().
func Load(path string) (Config, error) {
	resolved, err := ExpandPath(path, defaultConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	data, err := os.ReadFile(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return cfg, nil
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", resolved, err)
	}
	cfg.ApplyOverrides(fc.PollSeconds, fc.TimeoutSeconds, fc.LogLevel, fc.PrinterFile)
	if logFile := strings.TrimSpace(fc.LogFile); logFile != "" {
		cfg.LogFile = expandOrKeep(logFile)
	}
	return cfg, nil
}

// ApplyOverrides layers explicit values on top of c. Zero values leave the
// matching field alone.
func (c *Config) ApplyOverrides(pollSeconds, timeoutSeconds int, logLevel, printerPath string) {
	if pollSeconds > 0 {
		c.PollInterval = max(time.Duration(pollSeconds)*time.Second, minPollInterval)
	}
	if timeoutSeconds > 0 {
		c.Timeout = time.Duration(timeoutSeconds) * time.Second
	}
	if level := strings.TrimSpace(logLevel); level != "" {
		c.LogLevel = strings.ToLower(level)
	}
	if p := strings.TrimSpace(printerPath); p != "" {
		c.PrinterPath = expandOrKeep(p)
	}
}

// ExpandPath resolves path to an absolute path, expanding a leading "~" to
// the home directory. A blank path resolves fallback instead.
func ExpandPath(path, fallback string) (string, error) {
	p := strings.TrimSpace(path)
	if p == "" {
		p = strings.TrimSpace(fallback)
	}
	if p == "" {
		return "", errors.New("path is empty")
	}
	if rest, ok := strings.CutPrefix(p, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		p = filepath.Join(home, rest)
	}
	return filepath.Abs(p)
}

func expandOrKeep(path string) string {
	if expanded, err := ExpandPath(path, ""); err == nil {
		return expanded
	}
	return path
}
