/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package addon

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for add-on configuration problems.
var (
	// ErrMissingSection indicates a required section is absent.
	ErrMissingSection = errors.New("missing section")

	// ErrDuplicateSection indicates a section title appears more than once.
	ErrDuplicateSection = errors.New("duplicate section")

	// ErrUnresolvedFieldType indicates a type hint matches no field kind.
	ErrUnresolvedFieldType = errors.New("unresolved field type")

	// ErrInvalidField indicates a field line has no display name.
	ErrInvalidField = errors.New("invalid field")

	// ErrDuplicateFieldID indicates two fields normalize to the same id.
	ErrDuplicateFieldID = errors.New("duplicate field id")

	// ErrDuplicateGroupName indicates two groups resolve to the same name.
	ErrDuplicateGroupName = errors.New("duplicate group name")

	// ErrDuplicateCommand indicates a command id appears in more than one group.
	ErrDuplicateCommand = errors.New("duplicate command")

	// ErrUnlistedCommand indicates a group command missing from the flat command list.
	ErrUnlistedCommand = errors.New("command missing from command list")

	// ErrDanglingFieldReference indicates a panel item references an undeclared field.
	ErrDanglingFieldReference = errors.New("dangling field reference")

	// ErrMalformedShortcut indicates a shortcut line with zero or several keys.
	// Reported as a warning unless parsing is strict.
	ErrMalformedShortcut = errors.New("malformed shortcut")

	// ErrStrayLines indicates content before the first section header.
	// Reported as a warning unless parsing is strict.
	ErrStrayLines = errors.New("lines outside any section")
)

// ConfigError is a fatal configuration problem.
// It wraps one of the sentinel errors above.
type ConfigError struct {
	// Err is the sentinel describing the kind of problem.
	Err error
	// Section is the section the problem was found in, if known.
	Section string
	// Name is the offending name (section, field id, group name...).
	Name string
	// Line is the offending source line, if any.
	Line string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	var sb strings.Builder
	if e.Section != "" {
		sb.WriteString(e.Section)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Err.Error())
	if e.Name != "" {
		fmt.Fprintf(&sb, " %q", e.Name)
	}
	if e.Line != "" {
		fmt.Fprintf(&sb, " (line %q)", e.Line)
	}
	return sb.String()
}

// Unwrap returns the sentinel error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// WarningKind classifies recoverable problems.
type WarningKind int

const (
	// WarnMalformedShortcut marks a shortcut with zero or several key tokens.
	WarnMalformedShortcut WarningKind = iota
	// WarnStrayLines marks lines found before the first section header.
	WarnStrayLines
)

func (k WarningKind) String() string {
	switch k {
	case WarnMalformedShortcut:
		return "malformed-shortcut"
	case WarnStrayLines:
		return "stray-lines"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k WarningKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Sentinel returns the error a warning of this kind becomes in strict mode.
func (k WarningKind) Sentinel() error {
	if k == WarnStrayLines {
		return ErrStrayLines
	}
	return ErrMalformedShortcut
}

// Warning is a recoverable problem reported alongside a valid Definition.
type Warning struct {
	Kind    WarningKind `json:"kind" yaml:"kind"`
	Line    string      `json:"line" yaml:"line"`
	Message string      `json:"message" yaml:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s (line %q)", w.Kind, w.Message, w.Line)
}

// Err promotes the warning to a fatal ConfigError.
func (w Warning) Err(section string) *ConfigError {
	return &ConfigError{Err: w.Kind.Sentinel(), Section: section, Name: w.Message, Line: w.Line}
}
