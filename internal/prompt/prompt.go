// Package prompt asks the user for single values through native dialogs.
package prompt

import (
	"context"
	"errors"
	"runtime"
)

var (
	// ErrCanceled is returned when the user dismisses the dialog.
	ErrCanceled = errors.New("prompt canceled")
	// ErrUnsupported is returned on platforms without a native dialog.
	ErrUnsupported = errors.New("native prompts are not supported on this platform; run `bambubar setup`")
)

// Request describes a single-value input dialog.
type Request struct {
	Title   string
	Message string
	Default string
	Hidden  bool
}

// Prompter asks for input and shows alerts.
type Prompter interface {
	Ask(ctx context.Context, req Request) (string, error)
	Alert(ctx context.Context, title, message string) error
}

// New returns the native prompter for the running platform.
func New() Prompter {
	if runtime.GOOS == "darwin" {
		return NewAppleScript()
	}
	return Unsupported{}
}

// Unsupported is the Prompter used where no native dialog exists.
type Unsupported struct{}

func (Unsupported) Ask(context.Context, Request) (string, error) { return "", ErrUnsupported }

func (Unsupported) Alert(context.Context, string, string) error { return ErrUnsupported }
