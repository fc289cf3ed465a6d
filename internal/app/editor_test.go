package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/bambubar/internal/prompt"
	"github.com/five82/bambubar/internal/settings"
)

type fakeController struct {
	printer settings.Printer
	paused  bool
	pauses  int
	resumes int
	sets    int
}

func (c *fakeController) Printer() settings.Printer { return c.printer }

func (c *fakeController) SetPrinter(p settings.Printer) {
	c.sets++
	c.printer = p
}

func (c *fakeController) Pause() {
	c.pauses++
	c.paused = true
}

func (c *fakeController) Resume() {
	c.resumes++
	c.paused = false
}

type alert struct{ title, message string }

type fakePrompter struct {
	answers  []string
	errs     []error
	requests []prompt.Request
	alerts   []alert
	sawPause func() bool
}

func (f *fakePrompter) Ask(_ context.Context, req prompt.Request) (string, error) {
	if f.sawPause != nil && !f.sawPause() {
		return "", errors.New("asked while polling was running")
	}
	i := len(f.requests)
	f.requests = append(f.requests, req)
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.answers) {
		return f.answers[i], nil
	}
	return "", prompt.ErrCanceled
}

func (f *fakePrompter) Alert(_ context.Context, title, message string) error {
	f.alerts = append(f.alerts, alert{title, message})
	return nil
}

func TestEditor_SavesAndApplies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "printer.toml")
	ctrl := &fakeController{printer: settings.Printer{Address: "192.168.1.20"}}
	pr := &fakePrompter{answers: []string{"  01S00C123456789 "}}
	pr.sawPause = func() bool { return ctrl.paused }

	if err := NewEditor(ctrl, pr, path, quietLogger()).Edit(context.Background(), settings.FieldSerial); err != nil {
		t.Fatalf("Edit returned error: %v", err)
	}
	if ctrl.pauses != 1 || ctrl.resumes != 1 || ctrl.paused {
		t.Fatalf("pause/resume = %d/%d, want 1/1", ctrl.pauses, ctrl.resumes)
	}
	if ctrl.printer.Serial != "01S00C123456789" || ctrl.printer.Address != "192.168.1.20" {
		t.Fatalf("applied printer = %+v", ctrl.printer)
	}

	saved, err := settings.Load(path)
	if err != nil {
		t.Fatalf("Load saved settings: %v", err)
	}
	if saved != ctrl.printer {
		t.Fatalf("saved %+v, applied %+v", saved, ctrl.printer)
	}

	req := pr.requests[0]
	if req.Title != "Set Serial Number" || req.Message != "Enter Printer Serial Number:" || req.Hidden {
		t.Fatalf("unexpected request %+v", req)
	}
}

func TestEditor_AccessCodeIsHidden(t *testing.T) {
	path := filepath.Join(t.TempDir(), "printer.toml")
	ctrl := &fakeController{printer: settings.Printer{AccessCode: "old"}}
	pr := &fakePrompter{answers: []string{"12345678"}}

	if err := NewEditor(ctrl, pr, path, quietLogger()).Edit(context.Background(), settings.FieldAccessCode); err != nil {
		t.Fatalf("Edit returned error: %v", err)
	}
	req := pr.requests[0]
	if !req.Hidden || req.Default != "old" {
		t.Fatalf("access code request = %+v, want hidden with current default", req)
	}
}

func TestEditor_CancelLeavesRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "printer.toml")
	ctrl := &fakeController{printer: settings.Printer{Address: "192.168.1.20"}}
	pr := &fakePrompter{}

	err := NewEditor(ctrl, pr, path, quietLogger()).Edit(context.Background(), settings.FieldAddress)
	if !errors.Is(err, prompt.ErrCanceled) {
		t.Fatalf("Edit error = %v, want ErrCanceled", err)
	}
	if ctrl.sets != 0 || ctrl.resumes != 1 {
		t.Fatalf("sets=%d resumes=%d, want 0 and 1", ctrl.sets, ctrl.resumes)
	}
	if len(pr.alerts) != 0 {
		t.Fatalf("cancel should not alert: %+v", pr.alerts)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("settings file should not be written on cancel")
	}
}

func TestEditor_EmptyInputAlerts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "printer.toml")
	ctrl := &fakeController{}
	pr := &fakePrompter{answers: []string{"   "}}

	err := NewEditor(ctrl, pr, path, quietLogger()).Edit(context.Background(), settings.FieldAddress)
	if !errors.Is(err, ErrInvalidInput) || !errors.Is(err, settings.ErrEmpty) {
		t.Fatalf("Edit error = %v, want ErrInvalidInput wrapping ErrEmpty", err)
	}
	if len(pr.alerts) != 1 || pr.alerts[0].title != "Input Error" {
		t.Fatalf("alerts = %+v, want one Input Error", pr.alerts)
	}
	if ctrl.sets != 0 {
		t.Fatalf("invalid input should not be applied")
	}
}

func TestEditor_SaveFailureStillApplies(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(blocker, "printer.toml")

	ctrl := &fakeController{}
	pr := &fakePrompter{answers: []string{"192.168.1.20"}}

	err := NewEditor(ctrl, pr, path, quietLogger()).Edit(context.Background(), settings.FieldAddress)
	if err == nil {
		t.Fatalf("Edit should report the save failure")
	}
	if ctrl.printer.Address != "192.168.1.20" {
		t.Fatalf("address not applied in memory: %+v", ctrl.printer)
	}
	if len(pr.alerts) != 1 || pr.alerts[0].title != "Save Error" || !strings.HasPrefix(pr.alerts[0].message, "Could not save settings.") {
		t.Fatalf("alerts = %+v, want Save Error", pr.alerts)
	}
}

func TestEditor_PromptFailure(t *testing.T) {
	ctrl := &fakeController{}
	pr := &fakePrompter{errs: []error{prompt.ErrUnsupported}}

	err := NewEditor(ctrl, pr, filepath.Join(t.TempDir(), "p.toml"), quietLogger()).Edit(context.Background(), settings.FieldAddress)
	if !errors.Is(err, prompt.ErrUnsupported) {
		t.Fatalf("Edit error = %v, want ErrUnsupported", err)
	}
	if ctrl.resumes != 1 {
		t.Fatalf("polling must resume after a failed prompt")
	}
}

func TestEditor_FirstRunAsksMissingFieldsInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "printer.toml")
	ctrl := &fakeController{printer: settings.Printer{Serial: "01S00C123456789"}}
	pr := &fakePrompter{answers: []string{"", "192.168.1.20", "12345678"}}

	if err := NewEditor(ctrl, pr, path, quietLogger()).FirstRun(context.Background()); err != nil {
		t.Fatalf("FirstRun returned error: %v", err)
	}
	if !ctrl.printer.Complete() {
		t.Fatalf("record incomplete after first run: %+v", ctrl.printer)
	}

	var titles []string
	for _, r := range pr.requests {
		titles = append(titles, r.Title)
	}
	want := []string{"Set IP Address", "Set IP Address", "Set Access Code"}
	if strings.Join(titles, ",") != strings.Join(want, ",") {
		t.Fatalf("prompts = %v, want %v", titles, want)
	}
}

func TestEditor_FirstRunStopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "printer.toml")
	ctrl := &fakeController{}
	pr := &fakePrompter{answers: []string{"192.168.1.20"}}

	err := NewEditor(ctrl, pr, path, quietLogger()).FirstRun(context.Background())
	if !errors.Is(err, prompt.ErrCanceled) {
		t.Fatalf("FirstRun error = %v, want ErrCanceled", err)
	}
	if len(pr.requests) != 2 {
		t.Fatalf("asked %d times, want 2", len(pr.requests))
	}
	if ctrl.printer.Address != "192.168.1.20" || ctrl.printer.Serial != "" {
		t.Fatalf("printer = %+v", ctrl.printer)
	}
}
