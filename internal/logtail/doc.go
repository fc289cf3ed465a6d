// Package logtail reads the tail of bambubar's own log file.
//
// # Overview
//
// The tray and watch modes log to a file (the menu-bar app has no terminal).
// The watch view shows the last few lines of that file in a pane toggled
// with `l`; this package supplies those lines and a level classifier so the
// view can colour them.
//
// # Reading
//
// Read keeps a ring buffer of maxLines entries and scans the file once, so
// memory stays O(maxLines) however large the log grows:
//
//	lines, err := logtail.Read("~/.local/state/bambubar/bambubar.log", 200)
//
// A non-positive maxLines returns the whole file. A missing file yields no
// lines and no error; other I/O errors are wrapped.
//
// # Levels
//
// The log file is written by tint with colour disabled, so each record
// starts with a timestamp followed by a three-letter level:
//
//	2026-10-17 09:00:01 INF status updated printer=192.168.1.20 state=RUNNING
//	2026-10-17 09:01:01 WRN status poll failed err="connect 192.168.1.20: ..."
//
// LineLevel maps DBG, INF, WRN and ERR to Level values. Anything else
// (continuation lines, panics) is LevelNone and rendered unstyled.
//
// # Scope
//
// No file watching and no rotation handling. The watch view re-reads the
// tail on every tick while the pane is open.
package logtail
