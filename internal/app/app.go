package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/five82/bambubar/internal/bambu"
	"github.com/five82/bambubar/internal/config"
	"github.com/five82/bambubar/internal/prefs"
	"github.com/five82/bambubar/internal/prompt"
	"github.com/five82/bambubar/internal/settings"
	"github.com/five82/bambubar/internal/state"
	"github.com/five82/bambubar/internal/tray"
	"github.com/five82/bambubar/internal/ui"
)

// Options carry command-line overrides.
type Options struct {
	ConfigPath     string
	PrinterPath    string // empty uses the config value
	PrefsPath      string // empty uses ~/.config/bambubar/prefs.toml
	PollSeconds    int    // zero uses the config value
	TimeoutSeconds int    // zero uses the config value
	LogLevel       string // empty uses the config value
}

// LoadConfig reads the config file and applies opts on top.
func LoadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg.ApplyOverrides(opts.PollSeconds, opts.TimeoutSeconds, opts.LogLevel, opts.PrinterPath)
	return cfg, nil
}

// App owns the store and poller shared by every front end.
type App struct {
	cfg       config.Config
	prefsPath string
	store     *state.Store
	poller    *Poller
	logger    *slog.Logger
}

// New loads the printer record and builds the poller. An unreadable record
// is logged and treated as unconfigured so the user can re-enter it.
func New(cfg config.Config, prefsPath string, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return newApp(cfg, prefsPath, logger, clientFactory(cfg.Timeout, logger))
}

func newApp(cfg config.Config, prefsPath string, logger *slog.Logger, factory FetcherFactory) *App {
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	printer, err := settings.Load(cfg.PrinterPath)
	if err != nil {
		logger.Warn("could not read printer settings; treating as unconfigured", "path", cfg.PrinterPath, "err", err)
		printer = settings.Printer{}
	}

	store := &state.Store{}
	return &App{
		cfg:       cfg,
		prefsPath: prefsPath,
		store:     store,
		poller:    NewPoller(store, printer, factory, cfg.PollInterval, logger),
		logger:    logger,
	}
}

func clientFactory(timeout time.Duration, logger *slog.Logger) FetcherFactory {
	return func(p settings.Printer) (bambu.StatusFetcher, error) {
		return bambu.NewClient(p.Address, p.Serial, p.AccessCode,
			bambu.WithTimeout(timeout),
			bambu.WithLogger(logger),
		)
	}
}

// Store exposes the shared snapshot store.
func (a *App) Store() *state.Store {
	return a.store
}

// RunTray shows the menu-bar app until the user quits or ctx is cancelled.
// Missing settings are collected through prompter on launch.
func (a *App) RunTray(ctx context.Context, prompter prompt.Prompter) error {
	a.logger.Info("starting menu bar app",
		"poll_interval", a.cfg.PollInterval,
		"timeout", a.cfg.Timeout,
		"printer", a.poller.Printer().Redacted(),
	)
	a.poller.Start(ctx)
	editor := NewEditor(a.poller, prompter, a.cfg.PrinterPath, a.logger)
	return tray.Run(ctx, tray.Options{
		Store:      a.store,
		Controller: a.poller,
		Editor:     editor,
		Logger:     a.logger,
	})
}

// RunWatch shows the terminal status view. An incomplete record is
// completed through the setup form before polling starts.
func (a *App) RunWatch(ctx context.Context) error {
	if !a.poller.Printer().Complete() {
		if err := a.Setup(ctx); err != nil {
			return err
		}
	}
	a.poller.Start(ctx)

	return ui.RunWatch(ctx, ui.WatchOptions{
		Store:     a.store,
		Trigger:   a.poller.Trigger,
		Address:   a.poller.Printer().Address,
		LogPath:   a.cfg.LogFile,
		PrefsPath: a.prefsPath,
		Prefs:     prefs.Load(a.prefsPath),
	})
}

// Setup runs the terminal form, saves the record and applies it.
func (a *App) Setup(ctx context.Context) error {
	save := func(p settings.Printer) error {
		return settings.Save(a.cfg.PrinterPath, p)
	}
	printer, err := ui.RunSetup(ctx, a.poller.Printer(), save, prefs.Load(a.prefsPath).Theme)
	if err != nil {
		return err
	}
	a.logger.Info("printer settings saved", "path", a.cfg.PrinterPath, "printer", printer.Redacted())
	a.poller.SetPrinter(printer)
	return nil
}

// Status polls once and returns the resulting snapshot. The error is
// bambu.ErrNotConfigured when no complete record exists.
func (a *App) Status(ctx context.Context) (state.Snapshot, error) {
	err := a.poller.Refresh(ctx)
	return a.store.Snapshot(), err
}
