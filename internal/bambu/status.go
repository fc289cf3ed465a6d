package bambu

import "fmt"

// Kind groups summaries for icon selection.
type Kind int

const (
	KindUnknown Kind = iota
	KindDone
	KindPrinting
	KindOther
)

const (
	SummaryDone    = "Done"
	SummaryUnknown = "Unknown"
)

// Summary renders the short status text shown in the menu bar.
//
// A finished, failed or idle printer is "Done", as is a running job with no
// time left. A running job with time left shows "1h 5m" or "42 minutes".
// Anything else, paused and preparing jobs included, is "Unknown".
func (s Status) Summary() string {
	switch s.GcodeState {
	case StateFinish, StateFailed, StateIdle:
		return SummaryDone
	case StateRunning:
		switch {
		case s.RemainingMinutes == 0:
			return SummaryDone
		case s.RemainingMinutes > 0:
			return formatRemaining(s.RemainingMinutes)
		}
	}
	return SummaryUnknown
}

// Kind classifies the summary.
func (s Status) Kind() Kind {
	switch s.Summary() {
	case SummaryDone:
		return KindDone
	case SummaryUnknown:
		return KindUnknown
	}
	if s.GcodeState == StateRunning {
		return KindPrinting
	}
	return KindOther
}

func formatRemaining(minutes int) string {
	hours := minutes / 60
	rem := minutes % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, rem)
	}
	return fmt.Sprintf("%d minutes", rem)
}
