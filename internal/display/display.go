// Package display turns a state snapshot into menu-bar text.
package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/five82/bambubar/internal/bambu"
	"github.com/five82/bambubar/internal/state"
)

const (
	TitleLoginNeeded = "3D ❓ Login needed"
	TitleReady       = "3D Bambu: Ready"
	TitleError       = "3D Bambu: Error"
	TitleOffline     = "3D ⚠️ Offline"
)

// Title renders the menu-bar title for snap.
func Title(snap state.Snapshot) string {
	if !snap.Configured {
		return TitleLoginNeeded
	}
	if snap.LastError != nil {
		if snap.IsOffline() {
			return TitleOffline
		}
		return TitleError
	}
	if !snap.HasStatus {
		return TitleReady
	}
	summary := snap.Status.Summary()
	return fmt.Sprintf("3D %s %s", Icon(snap.Status.Kind()), summary)
}

// Icon is the glyph shown in front of a summary.
func Icon(kind bambu.Kind) string {
	switch kind {
	case bambu.KindDone:
		return "✅"
	case bambu.KindPrinting:
		return "⏳"
	case bambu.KindUnknown:
		return "❓"
	default:
		return "ℹ️"
	}
}

// Details returns the secondary lines shown under the title, one per fact
// the printer reported. now is used for relative timestamps.
func Details(snap state.Snapshot, now time.Time) []string {
	if !snap.Configured {
		return []string{"Printer not configured"}
	}

	var lines []string
	if snap.HasStatus {
		st := snap.Status
		if st.GcodeState != "" {
			lines = append(lines, "State: "+titleCase(st.GcodeState))
		}
		if st.JobName != "" {
			lines = append(lines, "Job: "+truncate(st.JobName, 40))
		}
		if st.Percent >= 0 {
			lines = append(lines, fmt.Sprintf("Progress: %d%%", st.Percent))
		}
		if st.TotalLayers > 0 {
			lines = append(lines, fmt.Sprintf("Layer: %d/%d", st.Layer, st.TotalLayers))
		}
		if temps := formatTemps(st); temps != "" {
			lines = append(lines, temps)
		}
	}
	if !snap.LastUpdated.IsZero() {
		lines = append(lines, "Updated: "+relativeTime(snap.LastUpdated, now))
	}
	if snap.LastError != nil {
		lines = append(lines, "Error: "+truncate(snap.LastError.Error(), 60))
	}
	if len(lines) == 0 {
		lines = append(lines, "Waiting for first status...")
	}
	return lines
}

func formatTemps(st bambu.Status) string {
	var parts []string
	if st.NozzleTemp != nil {
		parts = append(parts, fmt.Sprintf("Nozzle %.0f°C", *st.NozzleTemp))
	}
	if st.BedTemp != nil {
		parts = append(parts, fmt.Sprintf("Bed %.0f°C", *st.BedTemp))
	}
	return strings.Join(parts, " • ")
}

func relativeTime(at, now time.Time) string {
	stamp := at.Format("15:04:05")
	since := now.Sub(at)
	switch {
	case since < time.Minute:
		return stamp + " (now)"
	case since < time.Hour:
		return fmt.Sprintf("%s (%dm ago)", stamp, int(since.Minutes()))
	case since < 24*time.Hour:
		return fmt.Sprintf("%s (%dh ago)", stamp, int(since.Hours()))
	}
	return stamp
}

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// titleCase converts an underscore-separated string to title case.
func titleCase(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	parts := strings.Split(value, "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		lower := strings.ToLower(part)
		parts[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(parts, " ")
}
