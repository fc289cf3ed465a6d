package settings

import (
	"errors"
	"fmt"
	"net"
	"regexp"
	"strings"
)

// Field identifies one editable entry of the printer record.
type Field int

const (
	FieldAddress Field = iota
	FieldSerial
	FieldAccessCode
)

// Fields returns every field in prompt order.
func Fields() []Field {
	return []Field{FieldAddress, FieldSerial, FieldAccessCode}
}

// Label is the human name used in menus and prompts.
func (f Field) Label() string {
	switch f {
	case FieldAddress:
		return "IP Address"
	case FieldSerial:
		return "Serial Number"
	case FieldAccessCode:
		return "Access Code"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Secret reports whether the value should be masked on screen.
func (f Field) Secret() bool {
	return f == FieldAccessCode
}

// Get returns the value of f.
func (p Printer) Get(f Field) string {
	switch f {
	case FieldAddress:
		return p.Address
	case FieldSerial:
		return p.Serial
	case FieldAccessCode:
		return p.AccessCode
	}
	return ""
}

// Set assigns a trimmed value to f.
func (p *Printer) Set(f Field, value string) {
	value = strings.TrimSpace(value)
	switch f {
	case FieldAddress:
		p.Address = value
	case FieldSerial:
		p.Serial = value
	case FieldAccessCode:
		p.AccessCode = value
	}
}

// ErrEmpty is returned by Validate for blank input.
var ErrEmpty = errors.New("cannot be empty")

var hostnamePattern = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?(\.[A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?)*$`)

// Validate checks a candidate value for f.
func Validate(f Field, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%s %w", f.Label(), ErrEmpty)
	}
	switch f {
	case FieldAddress:
		if net.ParseIP(value) != nil {
			return nil
		}
		if strings.Contains(value, "://") || strings.Contains(value, ":") {
			return fmt.Errorf("%s must be a bare IP or hostname without scheme or port", f.Label())
		}
		if !hostnamePattern.MatchString(value) {
			return fmt.Errorf("%s %q is not a valid IP or hostname", f.Label(), value)
		}
	case FieldSerial:
		// The serial becomes part of an MQTT topic.
		if strings.ContainsAny(value, " \t/#+") {
			return fmt.Errorf("%s must not contain spaces or MQTT wildcard characters", f.Label())
		}
	case FieldAccessCode:
		if strings.ContainsAny(value, " \t") {
			return fmt.Errorf("%s must not contain spaces", f.Label())
		}
	}
	return nil
}

// Validate checks every field and returns the first problem found.
func (p Printer) Validate() error {
	for _, f := range Fields() {
		if err := Validate(f, p.Get(f)); err != nil {
			return err
		}
	}
	return nil
}
