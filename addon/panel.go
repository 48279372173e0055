/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package addon

// CommandRef is a unit of invokable behavior.
type CommandRef struct {
	// ID is the normalized identifier.
	ID string `json:"id" yaml:"id"`
	// Label is the display text as written.
	Label string `json:"label" yaml:"label"`
}

// Group bundles commands that share one generated module.
type Group struct {
	// Name is the module key, unique within a Definition.
	Name string `json:"name" yaml:"name"`
	// Items are the group's commands in layout order.
	Items []CommandRef `json:"items" yaml:"items"`
}

// PanelKind discriminates PanelItem variants.
type PanelKind int

const (
	PanelLabel PanelKind = iota
	PanelSeparator
	PanelField
	PanelCommand
)

func (k PanelKind) String() string {
	switch k {
	case PanelLabel:
		return "label"
	case PanelSeparator:
		return "separator"
	case PanelField:
		return "field"
	case PanelCommand:
		return "command"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k PanelKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// PanelItem is one entry of the rendered UI, in layout order.
// Which payload fields are set depends on Kind.
type PanelItem struct {
	Kind PanelKind `json:"kind" yaml:"kind"`

	// Text is the label text, or the command's display text.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// FieldID is set for PanelField items.
	FieldID string `json:"fieldId,omitempty" yaml:"fieldId,omitempty"`

	// CommandID is set for PanelCommand items.
	CommandID string `json:"commandId,omitempty" yaml:"commandId,omitempty"`
}

// Label returns a label panel item.
func Label(text string) PanelItem {
	return PanelItem{Kind: PanelLabel, Text: text}
}

// Separator returns a separator panel item.
func Separator() PanelItem {
	return PanelItem{Kind: PanelSeparator}
}

// FieldReference returns a panel item editing the field with the given id.
func FieldReference(id string) PanelItem {
	return PanelItem{Kind: PanelField, FieldID: id}
}

// CommandReference returns a panel item invoking a command.
func CommandReference(id, text string) PanelItem {
	return PanelItem{Kind: PanelCommand, CommandID: id, Text: text}
}

// Command returns the CommandRef for a PanelCommand item.
func (p PanelItem) Command() (CommandRef, bool) {
	if p.Kind != PanelCommand {
		return CommandRef{}, false
	}
	return CommandRef{ID: p.CommandID, Label: p.Text}, true
}
