package prompt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const cancelMarker = "__CANCEL__"

// runner executes a command and returns its stdout and stderr.
type runner func(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)

// AppleScript shows dialogs through osascript.
type AppleScript struct {
	command string
	run     runner
}

// NewAppleScript returns a Prompter backed by /usr/bin/osascript.
func NewAppleScript() *AppleScript {
	return &AppleScript{command: "osascript", run: execRunner}
}

// Ask shows a text input dialog with OK and Cancel buttons.
func (a *AppleScript) Ask(ctx context.Context, req Request) (string, error) {
	stdout, stderr, err := a.run(ctx, a.command, "-e", askScript(req))
	out := strings.TrimSpace(string(stdout))
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("osascript not found: %w", err)
		}
		if isCancel(out, string(stderr)) {
			return "", ErrCanceled
		}
		return "", fmt.Errorf("osascript: %w: %s", err, strings.TrimSpace(string(stderr)))
	}
	if out == cancelMarker {
		return "", ErrCanceled
	}
	return out, nil
}

// Alert shows a modal message.
func (a *AppleScript) Alert(ctx context.Context, title, message string) error {
	script := fmt.Sprintf(`display alert "%s" message "%s"`, escape(title), escape(message))
	_, stderr, err := a.run(ctx, a.command, "-e", script)
	if err != nil {
		return fmt.Errorf("osascript: %w: %s", err, strings.TrimSpace(string(stderr)))
	}
	return nil
}

func askScript(req Request) string {
	hidden := ""
	if req.Hidden {
		hidden = " with hidden answer"
	}
	return fmt.Sprintf(`tell application "System Events"
	activate
	try
		set theResponse to text returned of (display dialog "%s" default answer "%s" with title "%s" buttons {"Cancel", "OK"} default button "OK" cancel button "Cancel"%s)
	on error number -128
		return "%s"
	end try
end tell
return theResponse`, escape(req.Message), escape(req.Default), escape(req.Title), hidden, cancelMarker)
}

// escape quotes a value for an AppleScript string literal.
func escape(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	return strings.ReplaceAll(value, `"`, `\"`)
}

// isCancel spots the -128 "User canceled" error when it escapes the try block.
func isCancel(stdout, stderr string) bool {
	return stdout == cancelMarker || strings.Contains(stderr, "(-128)") || strings.Contains(stderr, cancelMarker)
}

func execRunner(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
