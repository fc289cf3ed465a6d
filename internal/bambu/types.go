package bambu

import (
	"encoding/json"
	"strings"
	"time"
)

// Gcode states reported in print.gcode_state.
const (
	StateIdle    = "IDLE"
	StatePrepare = "PREPARE"
	StateRunning = "RUNNING"
	StatePause   = "PAUSE"
	StateFinish  = "FINISH"
	StateFailed  = "FAILED"
)

// Report mirrors the JSON envelope published on device/<serial>/report.
// Only messages carrying a print object are status reports.
type Report struct {
	Print *PrintReport `json:"print"`
}

// PrintReport is the subset of the print object bambubar reads.
type PrintReport struct {
	Command       string   `json:"command"`
	GcodeState    string   `json:"gcode_state"`
	RemainingTime *int     `json:"mc_remaining_time"`
	Percent       *int     `json:"mc_percent"`
	SubtaskName   string   `json:"subtask_name"`
	LayerNum      int      `json:"layer_num"`
	TotalLayerNum int      `json:"total_layer_num"`
	NozzleTemper  *float64 `json:"nozzle_temper"`
	BedTemper     *float64 `json:"bed_temper"`
}

// Status is the decoded printer state handed to the rest of the app.
type Status struct {
	GcodeState       string
	RemainingMinutes int // -1 when the printer did not report it
	Percent          int // -1 when the printer did not report it
	JobName          string
	Layer            int
	TotalLayers      int
	NozzleTemp       *float64
	BedTemp          *float64
	ReceivedAt       time.Time
}

// pushAllRequest asks the printer to publish its full state.
type pushAllRequest struct {
	Pushing pushing `json:"pushing"`
}

type pushing struct {
	SequenceID string `json:"sequence_id"`
	Command    string `json:"command"`
}

func pushAllPayload() []byte {
	// Marshal cannot fail on this fixed shape.
	payload, _ := json.Marshal(pushAllRequest{Pushing: pushing{SequenceID: "0", Command: "pushall"}})
	return payload
}

// DecodeReport parses a report payload. ok is false for valid JSON that is not
// a status report (command echoes, system messages).
func DecodeReport(payload []byte) (report PrintReport, ok bool, err error) {
	var envelope Report
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return PrintReport{}, false, err
	}
	if envelope.Print == nil {
		return PrintReport{}, false, nil
	}
	return *envelope.Print, true, nil
}

// Status converts the wire report into a Status stamped with at.
func (r PrintReport) Status(at time.Time) Status {
	s := Status{
		GcodeState:       strings.ToUpper(strings.TrimSpace(r.GcodeState)),
		RemainingMinutes: -1,
		Percent:          -1,
		JobName:          strings.TrimSpace(r.SubtaskName),
		Layer:            r.LayerNum,
		TotalLayers:      r.TotalLayerNum,
		NozzleTemp:       r.NozzleTemper,
		BedTemp:          r.BedTemper,
		ReceivedAt:       at,
	}
	if r.RemainingTime != nil {
		s.RemainingMinutes = *r.RemainingTime
	}
	if r.Percent != nil {
		s.Percent = *r.Percent
	}
	return s
}
