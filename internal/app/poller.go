package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/five82/bambubar/internal/bambu"
	"github.com/five82/bambubar/internal/settings"
	"github.com/five82/bambubar/internal/state"
)

const (
	defaultPollInterval = 60 * time.Second
	maxBackoff          = 5 * time.Minute
)

// FetcherFactory builds a status fetcher for a complete printer record.
type FetcherFactory func(settings.Printer) (bambu.StatusFetcher, error)

// Poller refreshes the store on a fixed cadence. It never contacts the
// printer while the record is incomplete or while paused.
type Poller struct {
	store      *state.Store
	newFetcher FetcherFactory
	interval   time.Duration
	logger     *slog.Logger

	mu      sync.Mutex
	printer settings.Printer
	fetcher bambu.StatusFetcher
	gen     uint64 // bumped on every SetPrinter
	paused  bool

	trigger chan struct{}
}

// NewPoller returns a Poller for the given record. It does not start polling.
func NewPoller(store *state.Store, printer settings.Printer, newFetcher FetcherFactory, interval time.Duration, logger *slog.Logger) *Poller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	p := &Poller{
		store:      store,
		newFetcher: newFetcher,
		interval:   interval,
		logger:     logger,
		trigger:    make(chan struct{}, 1),
	}
	p.SetPrinter(printer)
	return p
}

// Printer returns the record currently in use.
func (p *Poller) Printer() settings.Printer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.printer
}

// SetPrinter swaps the printer record. A complete record triggers an
// immediate refresh; an incomplete one stops contact with the printer.
func (p *Poller) SetPrinter(printer settings.Printer) {
	var fetcher bambu.StatusFetcher
	if printer.Complete() {
		f, err := p.newFetcher(printer)
		if err != nil {
			p.logger.Error("failed to build printer client", "printer", printer.Address, "err", err)
		} else {
			fetcher = f
		}
	}

	p.mu.Lock()
	p.printer = printer
	p.fetcher = fetcher
	p.gen++
	p.mu.Unlock()

	p.store.SetConfigured(fetcher != nil)
	if fetcher != nil {
		p.logger.Info("printer configured; status updates enabled", "printer", printer.Address, "serial", printer.Serial)
		p.Trigger()
	} else {
		p.logger.Info("printer settings incomplete; status updates disabled")
	}
}

// Pause suspends polling, e.g. while a settings dialog is open.
func (p *Poller) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paused = true
}

// Resume re-enables polling and refreshes right away.
func (p *Poller) Resume() {
	p.mu.Lock()
	p.paused = false
	configured := p.fetcher != nil
	p.mu.Unlock()
	if configured {
		p.Trigger()
	}
}

// Trigger requests a refresh without waiting for the next tick.
func (p *Poller) Trigger() {
	select {
	case p.trigger <- struct{}{}:
	default:
	}
}

// Start launches the background goroutine. It returns immediately.
func (p *Poller) Start(ctx context.Context) {
	go p.run(ctx)
}

func (p *Poller) run(ctx context.Context) {
	timer := time.NewTimer(p.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		case <-p.trigger:
		}

		_ = p.Refresh(ctx)
		failures := p.store.Snapshot().ConsecutiveFailures
		timer.Reset(calculateBackoff(failures, p.interval))
	}
}

// errPaused is returned by Refresh while polling is paused.
var errPaused = errors.New("polling paused")

// Refresh performs one poll and records the outcome in the store.
func (p *Poller) Refresh(ctx context.Context) error {
	p.mu.Lock()
	paused, fetcher, address, gen := p.paused, p.fetcher, p.printer.Address, p.gen
	p.mu.Unlock()

	if paused {
		return errPaused
	}
	if fetcher == nil {
		return bambu.ErrNotConfigured
	}

	p.logger.Debug("fetching status", "printer", address)
	status, err := fetcher.FetchStatus(ctx)
	if ctx.Err() != nil {
		// Shutting down; don't record a failure for the cancelled poll.
		return ctx.Err()
	}
	if p.stale(gen) {
		// The record changed mid-poll; this result belongs to the old printer.
		return nil
	}
	if err != nil {
		p.store.Update(nil, err)
		p.logger.Warn("status poll failed", "printer", address, "err", err)
		return err
	}
	p.store.Update(status, nil)
	p.logger.Info("status updated", "printer", address, "state", status.GcodeState, "summary", status.Summary())
	return nil
}

func (p *Poller) stale(gen uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gen != gen
}

// calculateBackoff doubles the wait for every consecutive failure, capped at
// maxBackoff and never shorter than the base interval.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 || base >= maxBackoff {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}
