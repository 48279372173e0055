/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/addonc/addon"
)

func TestClassifyField(t *testing.T) {
	tests := []struct {
		line     string
		expected addon.FieldDef
	}{
		{
			line: "Target Count | Int # How many",
			expected: addon.FieldDef{
				Name: "Target Count", ID: "target_count", Description: "How many", Kind: addon.KindInteger,
			},
		},
		{
			line: "Label Text",
			expected: addon.FieldDef{
				Name: "Label Text", ID: "label_text", Description: "Enter label text", Kind: addon.KindString,
			},
		},
		{
			line: "Enabled | bool",
			expected: addon.FieldDef{
				Name: "Enabled", ID: "enabled", Description: "Enter enabled", Kind: addon.KindBoolean,
			},
		},
		{
			line: "Size | Float | min=0.0, max=1.0 # Relative size",
			expected: addon.FieldDef{
				Name: "Size", ID: "size", Description: "Relative size", Kind: addon.KindFloat, Options: "min=0.0, max=1.0",
			},
		},
		{
			line: "Offset | FloatVector | size=3",
			expected: addon.FieldDef{
				Name: "Offset", ID: "offset", Description: "Enter offset", Kind: addon.KindFloatVector, Options: "size=3",
			},
		},
		{
			line: "Target | Pointer | type=bpy.types.Object",
			expected: addon.FieldDef{
				Name: "Target", ID: "target", Description: "Enter target", Kind: addon.KindReference, Options: "type=bpy.types.Object",
			},
		},
		{
			line: "Mode | Enum | items=[('A', 'a', '') | ('B', 'b', '')]",
			expected: addon.FieldDef{
				Name: "Mode", ID: "mode", Description: "Enter mode", Kind: addon.KindEnumeration,
				Options: "items=[('A', 'a', '') | ('B', 'b', '')]",
			},
		},
		{
			line: `Tint | String | default="#ff0000" # Hex color`,
			expected: addon.FieldDef{
				Name: "Tint", ID: "tint", Description: "Hex color", Kind: addon.KindString, Options: `default="#ff0000"`,
			},
		},
		{
			line: "Note |  | maxlen=10",
			expected: addon.FieldDef{
				Name: "Note", ID: "note", Description: "Enter note", Kind: addon.KindString, Options: "maxlen=10",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			field, err := ClassifyField(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, field)
		})
	}
}

func TestClassifyField_Errors(t *testing.T) {
	tests := []struct {
		line     string
		sentinel error
	}{
		{"Target Count | xyz", addon.ErrUnresolvedFieldType},
		{"| Int", addon.ErrInvalidField},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := ClassifyField(tt.line)
			require.ErrorIs(t, err, tt.sentinel)
			assert.Contains(t, err.Error(), tt.line)
		})
	}
}

func TestClassifyFields_DuplicateID(t *testing.T) {
	_, err := ClassifyFields([]string{"Target Count | Int", "target   count | Float"})
	require.ErrorIs(t, err, addon.ErrDuplicateFieldID)
	assert.Contains(t, err.Error(), "target_count")
}

func TestClassifyField_IDIsNormalizedName(t *testing.T) {
	for _, line := range []string{"Target Count", "  Mixed\tCase  Name | Int", "already_normal"} {
		field, err := ClassifyField(line)
		require.NoError(t, err)
		assert.Equal(t, addon.Normalize(field.Name), field.ID)
		assert.Equal(t, field.ID, addon.Normalize(field.ID))
	}
}
