// Package app is the composition root for bambubar.
//
// # Overview
//
// It wires configuration, the saved printer record, the shared state.Store
// and the background Poller together, then hands them to one of the front
// ends: the menu bar (tray), the terminal watch view (ui) or a one-shot
// status check.
//
// # Components
//
//   - app.go: LoadConfig, New and the RunTray / RunWatch / Setup / Status modes
//   - poller.go: background goroutine that refreshes the store on a timer
//   - editor.go: dialog-driven edits of one settings field at a time
//
// # Data Flow
//
//	┌──────────────┐
//	│ LoadConfig() │ config.toml + CLI overrides
//	└──────┬───────┘
//	       │
//	       ├─────> settings.Load()   printer.toml (empty record if missing)
//	       ├─────> state.Store{}     shared snapshot
//	       ├─────> NewPoller()       builds a bambu.Client when the record is complete
//	       └─────> RunTray / RunWatch / Status
//
//	Background Poller Loop:
//	┌─────────────────────────────────────────┐
//	│ Poller.run() goroutine                  │
//	│  ├─> wait for timer or Trigger()        │
//	│  ├─> skip while paused or unconfigured  │
//	│  ├─> FetchStatus()  (one MQTT session)  │
//	│  └─> store.Update()                     │
//	│      └─> subscribers redraw             │
//	└─────────────────────────────────────────┘
//
// # Polling Behavior
//
// The poll interval defaults to 60 seconds. Every consecutive failure
// doubles the wait, capped at five minutes; the first success resets it.
// SetPrinter, Resume and the "Refresh Now" menu item trigger an immediate
// poll. A result that arrives after the record changed is discarded so a
// slow reply from the old printer cannot overwrite the new one's state.
//
// The poller never dials the printer while any of address, serial or access
// code is blank, and it is paused while a settings dialog is open.
//
// # Editing Settings
//
// Editor.Edit pauses polling, asks for one field with the current value as
// default (masked for the access code), validates, saves printer.toml with
// 0600 permissions and applies the new record. Blank input raises an
// "Input Error" alert and changes nothing. A failed save raises "Could not
// save settings." but the new value is still applied in memory.
//
// FirstRun walks the missing fields in order on the first launch and stops
// at the first cancel.
//
// # Error Handling
//
// Fatal (returned to the CLI):
//   - malformed config.toml
//   - setup form cancelled or failed
//
// Recoverable (logged, app keeps running):
//   - unreadable printer.toml (treated as unconfigured)
//   - poll failures (recorded in the store, shown as Error / Offline)
//   - save failures (alerted, value kept in memory)
package app
