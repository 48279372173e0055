/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"slices"

	"bennypowers.dev/addonc/addon"
)

// Assemble builds the Definition from classified parts and checks the
// cross-references between them.
//
// Groups without commands are dropped. A group without a header is named
// after its first command.
func Assemble(fields []addon.FieldDef, groups []RawGroup, panel []addon.PanelItem, shortcuts []addon.ShortcutDef) (*addon.Definition, error) {
	idx := NewFieldIndex(fields)
	def := &addon.Definition{
		Fields:    fields,
		Groups:    []addon.Group{},
		Commands:  []string{},
		Imports:   []string{},
		Panel:     panel,
		Shortcuts: shortcuts,
	}

	owners := make(map[string]bool)
	for _, raw := range groups {
		group, ok := buildGroup(raw, idx)
		if !ok {
			continue
		}
		if slices.Contains(def.Imports, group.Name) {
			return nil, &addon.ConfigError{Err: addon.ErrDuplicateGroupName, Section: SectionLayout, Name: group.Name}
		}
		for _, cmd := range group.Items {
			if owners[cmd.ID] {
				return nil, &addon.ConfigError{
					Err:     addon.ErrDuplicateCommand,
					Section: SectionLayout,
					Name:    cmd.ID,
					Line:    cmd.Label,
				}
			}
			owners[cmd.ID] = true
			def.Commands = append(def.Commands, cmd.ID)
		}
		def.Groups = append(def.Groups, group)
		def.Imports = append(def.Imports, group.Name)
	}

	if err := checkReferences(def, idx); err != nil {
		return nil, err
	}
	return def, nil
}

// buildGroup keeps the commands of a raw group, in order, without repeats.
// Field references stay panel-only. Reports false for a group with no
// commands.
func buildGroup(raw RawGroup, idx *FieldIndex) (addon.Group, bool) {
	group := addon.Group{Name: raw.Declared}
	for _, line := range raw.Lines {
		cmd, ok := ClassifyItem(line, idx).Command()
		if !ok {
			continue
		}
		if slices.ContainsFunc(group.Items, func(c addon.CommandRef) bool { return c.ID == cmd.ID }) {
			continue
		}
		group.Items = append(group.Items, cmd)
	}
	if len(group.Items) == 0 {
		return addon.Group{}, false
	}
	if group.Name == "" {
		group.Name = group.Items[0].ID
	}
	return group, true
}

func checkReferences(def *addon.Definition, idx *FieldIndex) error {
	for _, group := range def.Groups {
		for _, cmd := range group.Items {
			if !slices.Contains(def.Commands, cmd.ID) {
				return &addon.ConfigError{Err: addon.ErrUnlistedCommand, Section: SectionLayout, Name: cmd.ID, Line: cmd.Label}
			}
		}
	}
	for _, item := range def.Panel {
		if item.Kind == addon.PanelField && !idx.Has(item.FieldID) {
			return &addon.ConfigError{Err: addon.ErrDanglingFieldReference, Section: SectionLayout, Name: item.FieldID}
		}
	}
	return nil
}
