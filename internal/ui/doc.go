// Package ui provides the terminal views for bambubar.
//
// # Overview
//
// The menu-bar app is the primary interface. This package covers the two
// terminal paths: the setup form used by `bambubar setup` (and by `watch`
// when no printer is configured), and the live watch view used by
// `bambubar watch`. Both are Bubble Tea programs styled with Lipgloss.
//
// # Setup Form
//
// SetupModel holds one bubbles textinput per settings.Field, in prompt order
// (IP address, serial number, access code). The access code is masked.
//
//   - tab / shift+tab (or down / up) move between fields
//   - enter validates every field; problems render under the field and
//     focus jumps to the first bad one
//   - a valid submit calls the SaveFunc; a save error renders below the
//     form and the form stays open
//   - esc / ctrl+c cancels; RunSetup then returns ErrSetupCanceled
//
// # Watch View
//
// WatchModel never talks to the printer. It reads state.Store snapshots on a
// one second tick, the same pattern the poller and store use everywhere
// else:
//
//	┌──────────┐  tickMsg  ┌──────────────────┐  snapshotMsg  ┌──────────┐
//	│ tea.Tick │ ────────> │ fetchSnapshotCmd │ ────────────> │  Update  │
//	└──────────┘           └──────────────────┘               └──────────┘
//
// The header shows display.Title in a badge coloured by statusCategory;
// the body shows display.Details. Key bindings:
//
//   - r: ask the poller for an immediate refresh
//   - l: toggle the log pane (tail of the log file via logtail)
//   - T: cycle theme (Nightfox, Kanagawa, Slate)
//   - h / ?: help overlay
//   - q / ctrl+c: quit
//
// Theme and log pane visibility persist to prefs.toml on change.
//
// # Testing
//
// Models are plain values, so tests drive Update with tea.KeyMsg values and
// inspect the returned model without starting a program.
package ui
