/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package addon

import "strings"

// Modifiers is the set of modifier flags held for a shortcut.
type Modifiers struct {
	Shift bool `json:"shift,omitempty" yaml:"shift,omitempty"`
	Alt   bool `json:"alt,omitempty" yaml:"alt,omitempty"`
	Ctrl  bool `json:"ctrl,omitempty" yaml:"ctrl,omitempty"`
	OSKey bool `json:"oskey,omitempty" yaml:"oskey,omitempty"`
}

// Names returns the set modifiers in a fixed order.
func (m Modifiers) Names() []string {
	var names []string
	if m.Ctrl {
		names = append(names, "ctrl")
	}
	if m.Shift {
		names = append(names, "shift")
	}
	if m.Alt {
		names = append(names, "alt")
	}
	if m.OSKey {
		names = append(names, "oskey")
	}
	return names
}

// KeyKind discriminates Key variants.
type KeyKind int

const (
	// KeyLetter is a single letter A-Z.
	KeyLetter KeyKind = iota
	// KeyDigit is a digit spelled as a word, e.g. THREE.
	KeyDigit
	// KeyNamed is an uppercased key word, e.g. LEFT_ARROW.
	KeyNamed
	// KeyGlyph is a literal non-alphanumeric token.
	KeyGlyph
)

func (k KeyKind) String() string {
	switch k {
	case KeyLetter:
		return "letter"
	case KeyDigit:
		return "digit"
	case KeyNamed:
		return "named"
	case KeyGlyph:
		return "glyph"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k KeyKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Key is the primary key of a shortcut.
type Key struct {
	Kind  KeyKind `json:"kind" yaml:"kind"`
	Value string  `json:"value" yaml:"value"`
}

// ShortcutDef is one keyboard binding.
type ShortcutDef struct {
	Modifiers Modifiers `json:"modifiers" yaml:"modifiers"`
	Key       Key       `json:"key" yaml:"key"`

	// Source is the line as written, kept for diagnostics.
	Source string `json:"source" yaml:"source"`
}

// String renders the shortcut in canonical order, e.g. "ctrl-shift-A".
func (s ShortcutDef) String() string {
	return strings.Join(append(s.Modifiers.Names(), s.Key.Value), "-")
}
