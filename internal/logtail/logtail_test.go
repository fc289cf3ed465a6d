package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

// writeLog writes n numbered records and returns the path and the records.
func writeLog(t *testing.T, n int) (string, []string) {
	t.Helper()
	records := make([]string, n)
	for i := range records {
		records[i] = fmt.Sprintf("2026-10-17 09:00:%02d INF poll %d printer=192.168.1.20", i, i+1)
	}
	path := filepath.Join(t.TempDir(), "bambubar.log")
	data := strings.Join(records, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	return path, records
}

func TestRead_Tail(t *testing.T) {
	path, records := writeLog(t, 10)

	cases := map[string]struct {
		limit int
		want  []string
	}{
		"zero means whole file":     {0, records},
		"negative means whole file": {-3, records},
		"last three":                {3, records[7:]},
		"exact length":              {10, records},
		"limit beyond length":       {25, records},
		"single line":               {1, records[9:]},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Read(path, tc.limit)
			if err != nil {
				t.Fatalf("Read(%d): %v", tc.limit, err)
			}
			if !slices.Equal(got, tc.want) {
				t.Fatalf("Read(%d) = %q, want %q", tc.limit, got, tc.want)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "absent.log"), 50)
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("missing file returned %d lines", len(got))
	}
}

func TestRead_Directory(t *testing.T) {
	if _, err := Read(t.TempDir(), 5); err == nil {
		t.Fatalf("reading a directory should fail")
	}
}

func TestLineLevel(t *testing.T) {
	cases := map[string]Level{
		"2026-10-17 09:00:01 DBG fetching status printer=192.168.1.20":  LevelDebug,
		"2026-10-17 09:00:01 INF status updated state=RUNNING":          LevelInfo,
		"2026-10-17 09:00:01 WRN status poll failed err=\"refused\"":    LevelWarn,
		"2026-10-17 09:00:01 ERR failed to save settings":               LevelError,
		"2026-10-17 09:00:01 INF+2 chatty":                              LevelInfo,
		"2026-10-17 09:00:01 WRN-1 quieter warning":                     LevelWarn,
		"panic: runtime error":                                          LevelNone,
		"":                                                              LevelNone,
	}
	for line, want := range cases {
		if got := LineLevel(line); got != want {
			t.Errorf("LineLevel(%q) = %d, want %d", line, got, want)
		}
	}
}
