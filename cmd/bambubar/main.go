package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/five82/bambubar/internal/app"
	"github.com/five82/bambubar/internal/config"
	"github.com/five82/bambubar/internal/logging"
)

var (
	rootCmd = &cobra.Command{
		Use:          "bambubar",
		Short:        "Bambu Lab printer status in the menu bar",
		SilenceUsage: true,
		RunE:         runTray,
	}

	configFile     = pflag.String("config", "", "config file (default ~/.config/bambubar/config.toml)")
	printerFile    = pflag.String("printer", "", "printer settings file (default ~/.config/bambubar/printer.toml)")
	pollSeconds    = pflag.Int("poll", 0, "poll interval in seconds (default 60)")
	timeoutSeconds = pflag.Int("timeout", 0, "per-poll timeout in seconds (default 10)")
	logLevel       = pflag.String("log-level", "", "log level: debug, info, warn, error")
)

func init() {
	// The menu bar must be driven from the main OS thread.
	runtime.LockOSThread()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func appOptions() app.Options {
	return app.Options{
		ConfigPath:     *configFile,
		PrinterPath:    *printerFile,
		PollSeconds:    *pollSeconds,
		TimeoutSeconds: *timeoutSeconds,
		LogLevel:       *logLevel,
	}
}

// bootstrap loads config, installs the logger and builds the app. Terminal
// and menu-bar modes log to the configured file; toStderr is for one-shot
// commands.
func bootstrap(toStderr bool) (*app.App, config.Config, io.Closer, error) {
	cfg, err := app.LoadConfig(appOptions())
	if err != nil {
		return nil, config.Config{}, nil, err
	}

	logPath := cfg.LogFile
	if toStderr {
		logPath = ""
	}
	logger, closer, err := logging.Setup(logPath, cfg.LogLevel)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	logger.Debug("configuration loaded",
		slog.Duration("poll_interval", cfg.PollInterval),
		slog.Duration("timeout", cfg.Timeout),
		slog.String("printer_file", cfg.PrinterPath),
	)

	return app.New(cfg, "", logger), cfg, closer, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
