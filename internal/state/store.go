package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/bambubar/internal/bambu"
)

// offlineAfter is how many failed polls in a row mark the printer offline.
const offlineAfter = 2

// Snapshot is a point-in-time copy of everything the renderers draw from.
type Snapshot struct {
	Configured bool

	// Status is the last successful report; valid only when HasStatus.
	Status    bambu.Status
	HasStatus bool

	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline reports whether the printer missed enough polls in a row to be
// considered gone rather than briefly unreachable.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= offlineAfter
}

// Store holds the current Snapshot behind a lock and fans out change
// signals. The zero value is ready to use.
type Store struct {
	mu       sync.RWMutex
	current  Snapshot
	watchers []chan struct{}
}

// Update applies the outcome of one poll. A failed poll keeps the previous
// status and only bumps the failure count.
func (s *Store) Update(status *bambu.Status, err error) {
	s.mutate(func(snap *Snapshot) {
		snap.LastUpdated = time.Now()
		if err != nil {
			snap.LastError = err
			snap.ConsecutiveFailures++
			return
		}
		snap.LastError = nil
		snap.ConsecutiveFailures = 0
		snap.HasStatus = status != nil
		if status != nil {
			snap.Status = *status
		}
	})
}

// SetConfigured records whether a complete printer record exists and
// forgets whatever was known about the previous printer.
func (s *Store) SetConfigured(configured bool) {
	s.mutate(func(snap *Snapshot) {
		*snap = Snapshot{Configured: configured}
	})
}

// Snapshot returns a copy that callers may keep. The error is rewrapped so
// holders never share the stored instance.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.current
	if out.LastError != nil {
		out.LastError = fmt.Errorf("%w", out.LastError)
	}
	return out
}

// Subscribe registers a watcher. The channel has room for one signal, so
// bursts of changes collapse into a single wakeup.
func (s *Store) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)

	s.mu.Lock()
	s.watchers = append(s.watchers, ch)
	s.mu.Unlock()

	return ch
}

func (s *Store) mutate(fn func(*Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.current)
	for _, ch := range s.watchers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
