package tray

import (
	"strings"
	"time"

	"github.com/five82/bambubar/internal/display"
	"github.com/five82/bambubar/internal/state"
)

// detailSlots is the number of disabled menu rows reserved for status facts.
const detailSlots = 8

// setupHint points users at the terminal form when native dialogs are missing.
const setupHint = "Run `bambubar setup` in a terminal to configure the printer"

// view is what the tray shows for one snapshot.
type view struct {
	title   string
	tooltip string
	details []string
}

// render builds the view for snap. With needsTerminal set, the tooltip
// always carries setupHint and an unconfigured printer also lists it as a
// detail row.
func render(snap state.Snapshot, now time.Time, needsTerminal bool) view {
	details := display.Details(snap, now)
	if needsTerminal && !snap.Configured {
		details = append(details, setupHint)
	}
	if len(details) > detailSlots {
		details = details[:detailSlots]
	}
	tooltip := "bambubar"
	if len(details) > 0 {
		tooltip += "\n" + strings.Join(details, "\n")
	}
	if needsTerminal && !strings.Contains(tooltip, setupHint) {
		tooltip += "\n" + setupHint
	}
	return view{
		title:   display.Title(snap),
		tooltip: tooltip,
		details: details,
	}
}
