// Package tray renders the printer status in the menu bar.
package tray

import (
	"context"
	_ "embed"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"fyne.io/systray"

	"github.com/five82/bambubar/internal/prompt"
	"github.com/five82/bambubar/internal/settings"
	"github.com/five82/bambubar/internal/state"
)

// relativeRefresh re-renders so "Updated: ... (Nm ago)" stays current
// between polls.
const relativeRefresh = 30 * time.Second

//go:embed assets/icon.png
var iconData []byte

// Controller is the poller surface the tray drives.
type Controller interface {
	Trigger()
}

// Editor changes printer settings through dialogs.
type Editor interface {
	Edit(ctx context.Context, field settings.Field) error
	FirstRun(ctx context.Context) error
}

// Options configure the tray.
type Options struct {
	Store      *state.Store
	Controller Controller
	Editor     Editor
	Logger     *slog.Logger
}

type trayApp struct {
	ctx    context.Context
	opts   Options
	logger *slog.Logger

	mDetails [detailSlots]*systray.MenuItem
	mEdit    map[settings.Field]*systray.MenuItem
	mRefresh *systray.MenuItem
	mQuit    *systray.MenuItem

	// noDialogs is set once a dialog reports prompt.ErrUnsupported.
	noDialogs atomic.Bool

	done chan struct{}
}

// Run shows the menu-bar item and blocks until Quit is chosen or ctx is
// cancelled. It must be called from the main goroutine.
func Run(ctx context.Context, opts Options) error {
	if opts.Store == nil || opts.Controller == nil || opts.Editor == nil {
		return errors.New("tray requires a store, controller and editor")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	a := &trayApp{
		ctx:    ctx,
		opts:   opts,
		logger: logger,
		mEdit:  make(map[settings.Field]*systray.MenuItem),
		done:   make(chan struct{}),
	}
	systray.Run(a.onReady, a.onExit)
	return nil
}

func (a *trayApp) onReady() {
	systray.SetTemplateIcon(iconData, iconData)
	systray.SetTitle(render(a.opts.Store.Snapshot(), time.Now(), a.noDialogs.Load()).title)
	systray.SetTooltip("bambubar")

	for i := range a.mDetails {
		item := systray.AddMenuItem("", "")
		item.Disable()
		item.Hide()
		a.mDetails[i] = item
	}

	systray.AddSeparator()
	for _, f := range settings.Fields() {
		a.mEdit[f] = systray.AddMenuItem("Set "+f.Label()+"...", "Change the printer "+f.Label())
	}
	systray.AddSeparator()
	a.mRefresh = systray.AddMenuItem("Refresh Now", "Poll the printer immediately")
	systray.AddSeparator()
	a.mQuit = systray.AddMenuItem("Quit", "Quit bambubar")

	go a.redrawLoop()
	go a.handleMenuClicks()
	go func() {
		select {
		case <-a.ctx.Done():
			systray.Quit()
		case <-a.done:
		}
	}()
	a.logger.Info("menu bar ready")
}

func (a *trayApp) onExit() {
	close(a.done)
	a.logger.Info("menu bar closed")
}

// redrawLoop re-renders on every store change.
func (a *trayApp) redrawLoop() {
	updates := a.opts.Store.Subscribe()
	ticker := time.NewTicker(relativeRefresh)
	defer ticker.Stop()

	a.redraw()
	for {
		select {
		case <-a.done:
			return
		case <-updates:
		case <-ticker.C:
		}
		a.redraw()
	}
}

func (a *trayApp) redraw() {
	v := render(a.opts.Store.Snapshot(), time.Now(), a.noDialogs.Load())
	systray.SetTitle(v.title)
	systray.SetTooltip(v.tooltip)
	for i, item := range a.mDetails {
		if i < len(v.details) {
			item.SetTitle(v.details[i])
			item.Show()
			continue
		}
		item.Hide()
	}
}

// handleMenuClicks processes menu item clicks. Dialogs are modal, so clicks
// are handled one at a time.
func (a *trayApp) handleMenuClicks() {
	if !a.opts.Store.Snapshot().Configured {
		a.report("first launch", a.opts.Editor.FirstRun(a.ctx))
	}

	for {
		select {
		case <-a.mEdit[settings.FieldAddress].ClickedCh:
			a.edit(settings.FieldAddress)
		case <-a.mEdit[settings.FieldSerial].ClickedCh:
			a.edit(settings.FieldSerial)
		case <-a.mEdit[settings.FieldAccessCode].ClickedCh:
			a.edit(settings.FieldAccessCode)
		case <-a.mRefresh.ClickedCh:
			a.logger.Info("manual refresh requested")
			a.opts.Controller.Trigger()
		case <-a.mQuit.ClickedCh:
			a.logger.Info("quit requested")
			systray.Quit()
			return
		case <-a.done:
			return
		}
	}
}

func (a *trayApp) edit(field settings.Field) {
	a.report(field.Label(), a.opts.Editor.Edit(a.ctx, field))
}

func (a *trayApp) report(name string, err error) {
	switch {
	case err == nil, errors.Is(err, prompt.ErrCanceled):
	case errors.Is(err, prompt.ErrUnsupported):
		a.logger.Warn("native dialogs unavailable; run `bambubar setup` in a terminal", "field", name)
		a.noDialogs.Store(true)
		a.redraw()
	default:
		// The editor has already alerted the user.
		a.logger.Debug("edit finished with error", "field", name, "err", err)
	}
}
