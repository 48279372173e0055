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

// defaultTypeHint applies when a field line gives no type.
const defaultTypeHint = "string"

// ClassifyField parses one field declaration:
//
//	Name | TypeHint | Options # Description
//
// Everything after the name is optional.
func ClassifyField(line string) (addon.FieldDef, error) {
	decl, description := line, ""
	if loc := common.DescriptionPattern.FindStringIndex(line); loc != nil {
		decl, description = line[:loc[0]], strings.TrimSpace(line[loc[1]:])
	}

	parts := [3]string{"", defaultTypeHint, ""}
	for i, part := range common.PipePattern.Split(strings.TrimSpace(decl), len(parts)) {
		if part = strings.TrimSpace(part); part != "" {
			parts[i] = part
		}
	}
	name, hint, options := parts[0], parts[1], parts[2]

	if name == "" {
		return addon.FieldDef{}, &addon.ConfigError{
			Err:     addon.ErrInvalidField,
			Section: SectionFields,
			Line:    line,
		}
	}

	kind, ok := addon.ResolveKind(hint)
	if !ok {
		return addon.FieldDef{}, &addon.ConfigError{
			Err:     addon.ErrUnresolvedFieldType,
			Section: SectionFields,
			Name:    hint,
			Line:    line,
		}
	}

	if description == "" {
		description = addon.DefaultDescription(name)
	}

	return addon.FieldDef{
		Name:        name,
		ID:          addon.Normalize(name),
		Description: description,
		Kind:        kind,
		Options:     options,
	}, nil
}

// ClassifyFields parses every line of the fields section and checks that
// field ids are unique.
func ClassifyFields(lines []string) ([]addon.FieldDef, error) {
	fields := make([]addon.FieldDef, 0, len(lines))
	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		field, err := ClassifyField(line)
		if err != nil {
			return nil, err
		}
		if seen[field.ID] {
			return nil, &addon.ConfigError{
				Err:     addon.ErrDuplicateFieldID,
				Section: SectionFields,
				Name:    field.ID,
				Line:    line,
			}
		}
		seen[field.ID] = true
		fields = append(fields, field)
	}
	return fields, nil
}
