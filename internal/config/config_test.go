package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("PollInterval = %v, want %v", cfg.PollInterval, defaultPollInterval)
	}
	if cfg.Timeout != defaultTimeout {
		t.Fatalf("Timeout = %v, want %v", cfg.Timeout, defaultTimeout)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("LogLevel = %q, want %q", cfg.LogLevel, defaultLogLevel)
	}

	wantPrinter, err := ExpandPath("", defaultPrinterPath)
	if err != nil {
		t.Fatalf("ExpandPath(default printer) returned error: %v", err)
	}
	if cfg.PrinterPath != wantPrinter {
		t.Fatalf("PrinterPath = %q, want %q", cfg.PrinterPath, wantPrinter)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
poll_seconds = 30
timeout_seconds = 4
log_level = "  DEBUG "
log_file = "  ~/logs/bambubar.log  "
printer_file = "~/printers/x1c.toml"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PollInterval != 30*time.Second {
		t.Fatalf("PollInterval = %v, want 30s", cfg.PollInterval)
	}
	if cfg.Timeout != 4*time.Second {
		t.Fatalf("Timeout = %v, want 4s", cfg.Timeout)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.LogFile != filepath.Join(home, "logs", "bambubar.log") {
		t.Fatalf("LogFile = %q, want it expanded under HOME", cfg.LogFile)
	}
	if cfg.PrinterPath != filepath.Join(home, "printers", "x1c.toml") {
		t.Fatalf("PrinterPath = %q, want it expanded under HOME", cfg.PrinterPath)
	}
}

func TestLoad_ClampsPollInterval(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("poll_seconds = 1\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PollInterval != minPollInterval {
		t.Fatalf("PollInterval = %v, want clamped to %v", cfg.PollInterval, minPollInterval)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`poll_seconds = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestApplyOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Default()
	cfg.ApplyOverrides(0, 0, "", "")
	if cfg != Default() {
		t.Fatalf("zero overrides changed config: %#v", cfg)
	}

	cfg.ApplyOverrides(120, 3, "WARN", "~/p.toml")
	if cfg.PollInterval != 2*time.Minute || cfg.Timeout != 3*time.Second {
		t.Fatalf("durations = %v/%v, want 2m/3s", cfg.PollInterval, cfg.Timeout)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if cfg.PrinterPath != filepath.Join(home, "p.toml") {
		t.Fatalf("PrinterPath = %q, want %q", cfg.PrinterPath, filepath.Join(home, "p.toml"))
	}

	cfg.ApplyOverrides(1, 0, "", "")
	if cfg.PollInterval != minPollInterval {
		t.Fatalf("PollInterval = %v, want clamped to %v", cfg.PollInterval, minPollInterval)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name, path, fallback, want string
	}{
		{"tilde", "~/a/b", "", filepath.Join(home, "a", "b")},
		{"trimmed tilde", "  ~/bambu.log ", "", filepath.Join(home, "bambu.log")},
		{"blank uses fallback", "  ", "~/fallback.toml", filepath.Join(home, "fallback.toml")},
		{"relative made absolute", "printer.toml", "~/ignored", filepath.Join(cwd, "printer.toml")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.path, tt.fallback)
			if err != nil {
				t.Fatalf("ExpandPath(%q, %q) returned error: %v", tt.path, tt.fallback, err)
			}
			if got != tt.want {
				t.Fatalf("ExpandPath(%q, %q) = %q, want %q", tt.path, tt.fallback, got, tt.want)
			}
		})
	}

	if _, err := ExpandPath("   ", ""); err == nil {
		t.Fatalf("ExpandPath with nothing to resolve returned nil error")
	}
}
