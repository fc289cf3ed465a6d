package bambu

import (
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func TestStatusSummary(t *testing.T) {
	tests := []struct {
		name      string
		state     string
		remaining int
		want      string
		kind      Kind
	}{
		{"finished", StateFinish, -1, "Done", KindDone},
		{"failed", StateFailed, 30, "Done", KindDone},
		{"idle", StateIdle, -1, "Done", KindDone},
		{"running no time left", StateRunning, 0, "Done", KindDone},
		{"running minutes", StateRunning, 42, "42 minutes", KindPrinting},
		{"running exactly an hour", StateRunning, 60, "1h 0m", KindPrinting},
		{"running hours", StateRunning, 185, "3h 5m", KindPrinting},
		{"running without time", StateRunning, -1, "Unknown", KindUnknown},
		{"paused", StatePause, 10, "Unknown", KindUnknown},
		{"preparing", StatePrepare, -1, "Unknown", KindUnknown},
		{"unexpected", "SLICING", 10, "Unknown", KindUnknown},
		{"empty", "", -1, "Unknown", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Status{GcodeState: tt.state, RemainingMinutes: tt.remaining}
			if got := s.Summary(); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
			if got := s.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v, want %v", got, tt.kind)
			}
		})
	}
}

func TestDecodeReport(t *testing.T) {
	report, ok, err := DecodeReport([]byte(`{"print":{"gcode_state":" running ","mc_remaining_time":5,"mc_percent":97}}`))
	if err != nil || !ok {
		t.Fatalf("DecodeReport = ok %v err %v, want ok", ok, err)
	}
	at := time.Unix(100, 0)
	s := report.Status(at)
	if s.GcodeState != StateRunning {
		t.Fatalf("GcodeState = %q, want normalised RUNNING", s.GcodeState)
	}
	if s.RemainingMinutes != 5 || s.Percent != 97 {
		t.Fatalf("remaining/percent = %d/%d, want 5/97", s.RemainingMinutes, s.Percent)
	}
	if !s.ReceivedAt.Equal(at) {
		t.Fatalf("ReceivedAt = %v, want %v", s.ReceivedAt, at)
	}

	if _, ok, err := DecodeReport([]byte(`{"pushing":{"command":"pushall"}}`)); err != nil || ok {
		t.Fatalf("pushing echo: ok %v err %v, want not ok and no error", ok, err)
	}
	if _, _, err := DecodeReport([]byte(`{`)); err == nil {
		t.Fatalf("DecodeReport returned nil error for bad JSON")
	}
}

func TestPrintReportStatus_MissingNumbersAreNegative(t *testing.T) {
	s := PrintReport{GcodeState: "IDLE"}.Status(time.Time{})
	if s.RemainingMinutes != -1 || s.Percent != -1 {
		t.Fatalf("remaining/percent = %d/%d, want -1/-1", s.RemainingMinutes, s.Percent)
	}
	s = PrintReport{RemainingTime: intPtr(0), Percent: intPtr(0)}.Status(time.Time{})
	if s.RemainingMinutes != 0 || s.Percent != 0 {
		t.Fatalf("explicit zeros lost: %d/%d", s.RemainingMinutes, s.Percent)
	}
}

func TestPushAllPayload(t *testing.T) {
	want := `{"pushing":{"sequence_id":"0","command":"pushall"}}`
	if got := string(pushAllPayload()); got != want {
		t.Fatalf("pushAllPayload = %s, want %s", got, want)
	}
}
