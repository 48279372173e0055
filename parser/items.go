/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"strings"

	"bennypowers.dev/addonc/addon"
	"bennypowers.dev/addonc/parser/common"
)

// FieldIndex looks up declared fields by normalized id and by lowercased
// display name. Build it once per document.
type FieldIndex struct {
	byID   map[string]string
	byName map[string]string
}

// NewFieldIndex indexes fields.
func NewFieldIndex(fields []addon.FieldDef) *FieldIndex {
	idx := &FieldIndex{
		byID:   make(map[string]string, len(fields)),
		byName: make(map[string]string, len(fields)),
	}
	for _, f := range fields {
		idx.byID[f.ID] = f.ID
		idx.byName[addon.Lower(f.Name)] = f.ID
	}
	return idx
}

// Lookup returns the id of the field a layout line refers to.
func (idx *FieldIndex) Lookup(line string) (string, bool) {
	if id, ok := idx.byID[addon.Normalize(line)]; ok {
		return id, true
	}
	id, ok := idx.byName[addon.Lower(line)]
	return id, ok
}

// Has reports whether a field with the given id exists.
func (idx *FieldIndex) Has(id string) bool {
	_, ok := idx.byID[id]
	return ok
}

// ClassifyItem decides what a layout line denotes. First match wins:
// label, separator, field reference, command.
func ClassifyItem(line string, idx *FieldIndex) addon.PanelItem {
	if strings.HasPrefix(line, common.LabelMarker) {
		return addon.Label(strings.TrimSpace(strings.TrimPrefix(line, common.LabelMarker)))
	}
	if common.SeparatorPattern.MatchString(line) {
		return addon.Separator()
	}
	if id, ok := idx.Lookup(line); ok {
		return addon.FieldReference(id)
	}
	return addon.CommandReference(addon.Normalize(line), line)
}

// ClassifyPanel classifies every layout line, in order.
func ClassifyPanel(lines []string, idx *FieldIndex) []addon.PanelItem {
	panel := make([]addon.PanelItem, 0, len(lines))
	for _, line := range lines {
		panel = append(panel, ClassifyItem(line, idx))
	}
	return panel
}
