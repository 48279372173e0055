/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package addon provides the intermediate representation of a Blender add-on
// definition, as produced by the parser and consumed by renderers.
package addon

// Definition is the assembled add-on IR.
// It is built once by the parser and must not be mutated afterwards.
type Definition struct {
	// Fields are the declared data fields in declaration order.
	Fields []FieldDef `json:"fields" yaml:"fields"`

	// Groups are the command modules in layout order.
	Groups []Group `json:"groups" yaml:"groups"`

	// Commands is every command id across Groups, in order, without repeats.
	Commands []string `json:"commands" yaml:"commands"`

	// Imports are the group names, one generated module each.
	Imports []string `json:"imports" yaml:"imports"`

	// Panel is the UI layout, mirroring the layout section line by line.
	Panel []PanelItem `json:"panel" yaml:"panel"`

	// Shortcuts are the keyboard bindings in declaration order.
	Shortcuts []ShortcutDef `json:"shortcuts" yaml:"shortcuts"`
}

// Field looks up a field by id.
func (d *Definition) Field(id string) (FieldDef, bool) {
	for _, f := range d.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return FieldDef{}, false
}

// Group looks up a group by name.
func (d *Definition) Group(name string) (Group, bool) {
	for _, g := range d.Groups {
		if g.Name == name {
			return g, true
		}
	}
	return Group{}, false
}
