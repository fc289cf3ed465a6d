// Package state holds the latest poll outcome shared between the poller and
// the renderers.
//
// The poller is the only writer. The menu bar and the watch view wait on a
// Subscribe channel and then read a Snapshot:
//
//	Poller                       tray / watch
//	  FetchStatus()                <-Subscribe()
//	  store.Update(status, err) ─→ store.Snapshot()
//	                               redraw
//
// A successful Update replaces the status and clears the error. A failed
// Update keeps the last status, records the error and bumps
// ConsecutiveFailures; two in a row make IsOffline true.
//
// SetConfigured resets the snapshot, so a status fetched for one printer is
// never shown after the record is edited to point at another.
//
// Subscribe channels hold one pending signal. Writers never block and a
// burst of changes wakes a slow reader once.
package state
