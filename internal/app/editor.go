package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/five82/bambubar/internal/prompt"
	"github.com/five82/bambubar/internal/settings"
)

// ErrInvalidInput wraps validation failures from Edit.
var ErrInvalidInput = errors.New("invalid input")

// PrinterController is the slice of Poller the editor drives.
type PrinterController interface {
	Printer() settings.Printer
	SetPrinter(settings.Printer)
	Pause()
	Resume()
}

// Editor changes one field of the printer record through a dialog. Polling
// is paused for the duration of the dialog.
type Editor struct {
	controller PrinterController
	prompter   prompt.Prompter
	path       string
	logger     *slog.Logger
}

// NewEditor returns an Editor that persists to path.
func NewEditor(controller PrinterController, prompter prompt.Prompter, path string, logger *slog.Logger) *Editor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Editor{controller: controller, prompter: prompter, path: path, logger: logger}
}

// Edit prompts for field and applies the answer. It returns prompt.ErrCanceled
// when the user backs out and an ErrInvalidInput error for rejected input.
func (e *Editor) Edit(ctx context.Context, field settings.Field) error {
	e.logger.Info("editing printer setting", "field", field.Label())
	e.controller.Pause()
	defer e.controller.Resume()

	current := e.controller.Printer()
	value, err := e.prompter.Ask(ctx, prompt.Request{
		Title:   "Set " + field.Label(),
		Message: "Enter Printer " + field.Label() + ":",
		Default: current.Get(field),
		Hidden:  field.Secret(),
	})
	if errors.Is(err, prompt.ErrCanceled) {
		e.logger.Info("user cancelled dialog", "field", field.Label())
		return err
	}
	if err != nil {
		e.logger.Error("could not get input", "field", field.Label(), "err", err)
		_ = e.prompter.Alert(ctx, "Error", "Could not get input.")
		return fmt.Errorf("prompt %s: %w", field.Label(), err)
	}

	if verr := settings.Validate(field, value); verr != nil {
		e.logger.Warn("rejected printer setting", "field", field.Label(), "err", verr)
		_ = e.prompter.Alert(ctx, "Input Error", verr.Error()+".")
		return fmt.Errorf("%w: %w", ErrInvalidInput, verr)
	}

	updated := current
	updated.Set(field, value)

	var saveErr error
	if err := settings.Save(e.path, updated); err != nil {
		// Keep the new value in memory so polling can still proceed.
		e.logger.Error("failed to save settings", "path", e.path, "err", err)
		_ = e.prompter.Alert(ctx, "Save Error", "Could not save settings.\n"+err.Error())
		saveErr = fmt.Errorf("save settings: %w", err)
	} else {
		e.logger.Info("printer setting updated", "field", field.Label())
	}

	e.controller.SetPrinter(updated)
	return saveErr
}

// FirstRun asks for every missing field in order, re-asking after rejected
// input. It stops at the first cancel.
func (e *Editor) FirstRun(ctx context.Context) error {
	for _, field := range e.controller.Printer().Missing() {
		for {
			err := e.Edit(ctx, field)
			if errors.Is(err, ErrInvalidInput) {
				continue
			}
			if err != nil {
				return err
			}
			break
		}
	}
	return nil
}
