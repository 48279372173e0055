/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/addonc/addon"
	"bennypowers.dev/addonc/internal/mapfs"
	"bennypowers.dev/addonc/parser"
	"bennypowers.dev/addonc/testutil"
)

func TestParse_Fixture(t *testing.T) {
	data := testutil.LoadFixtureFile(t, "definitions/bevel.addon")

	result, err := parser.Parse(data, parser.Options{})
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)

	def := result.Definition

	expectedFields := []addon.FieldDef{
		{Name: "Target Count", ID: "target_count", Description: "How many", Kind: addon.KindInteger, Options: "min=0, max=64"},
		{Name: "Enabled", ID: "enabled", Description: "Enter enabled", Kind: addon.KindBoolean},
		{Name: "Profile", ID: "profile", Description: "Enter profile", Kind: addon.KindEnumeration, Options: `items=[("A", "Arc", ""), ("L", "Line", "")]`},
		{Name: "Tint", ID: "tint", Description: "Enter tint", Kind: addon.KindFloatVector, Options: `subtype="COLOR", default=(1.0, 0.0, 0.0)`},
		{Name: "Label Text", ID: "label_text", Description: "Enter label text", Kind: addon.KindString},
	}
	if diff := cmp.Diff(expectedFields, def.Fields); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}

	expectedGroups := []addon.Group{
		{Name: "setup", Items: []addon.CommandRef{{ID: "run", Label: "Run"}, {ID: "reset_count", Label: "Reset Count"}}},
		{Name: "clean_up", Items: []addon.CommandRef{{ID: "clean_up", Label: "Clean Up"}}},
		{Name: "export", Items: []addon.CommandRef{{ID: "export_selected", Label: "Export Selected"}}},
	}
	if diff := cmp.Diff(expectedGroups, def.Groups); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []string{"run", "reset_count", "clean_up", "export_selected"}, def.Commands)
	assert.Equal(t, []string{"setup", "clean_up", "export"}, def.Imports)

	expectedPanel := []addon.PanelItem{
		addon.Label("Setup"),
		addon.FieldReference("target_count"),
		addon.CommandReference("run", "Run"),
		addon.CommandReference("reset_count", "Reset Count"),
		addon.Separator(),
		addon.FieldReference("enabled"),
		addon.CommandReference("clean_up", "Clean Up"),
		addon.Separator(),
		addon.FieldReference("profile"),
		addon.Label("Export"),
		addon.CommandReference("export_selected", "Export Selected"),
	}
	if diff := cmp.Diff(expectedPanel, def.Panel); diff != "" {
		t.Errorf("panel mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, def.Shortcuts, 3)
	assert.Equal(t, "ctrl-shift-A", def.Shortcuts[0].String())
	assert.Equal(t, "alt-THREE", def.Shortcuts[1].String())
	assert.Equal(t, "oskey-LEFT_ARROW", def.Shortcuts[2].String())
	assert.Equal(t, "Cmd - Left_Arrow", def.Shortcuts[2].Source)
}

func TestParse_Deterministic(t *testing.T) {
	data := testutil.LoadFixtureFile(t, "definitions/bevel.addon")

	first, err := parser.Parse(data, parser.Options{})
	require.NoError(t, err)
	second, err := parser.Parse(data, parser.Options{})
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("re-parse differs (-first +second):\n%s", diff)
	}
}

func TestParse_SetupExample(t *testing.T) {
	doc := `
# Vars
Target Count | Int # How many

# Ops
## Setup
Target Count
Run

# Shortcuts
`
	result, err := parser.Parse([]byte(doc), parser.Options{})
	require.NoError(t, err)

	def := result.Definition
	field, ok := def.Field("target_count")
	require.True(t, ok)
	assert.Equal(t, addon.KindInteger, field.Kind)
	assert.Equal(t, "How many", field.Description)

	group, ok := def.Group("setup")
	require.True(t, ok)
	assert.Equal(t, []addon.CommandRef{{ID: "run", Label: "Run"}}, group.Items)

	assert.Equal(t, []addon.PanelItem{
		addon.Label("Setup"),
		addon.FieldReference("target_count"),
		addon.CommandReference("run", "Run"),
	}, def.Panel)
	assert.Empty(t, def.Shortcuts)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		fixture  string
		sentinel error
		contains string
	}{
		{"missing shortcuts", "definitions/missing-shortcuts.addon", addon.ErrMissingSection, "shortcuts"},
		{"unresolved type", "definitions/bad-type.addon", addon.ErrUnresolvedFieldType, "xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parser.Parse(testutil.LoadFixtureFile(t, tt.fixture), parser.Options{})
			assert.Nil(t, result)
			require.ErrorIs(t, err, tt.sentinel)

			var cfgErr *addon.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Contains(t, cfgErr.Error(), tt.contains)
		})
	}
}

func TestParse_DuplicateImplicitGroups(t *testing.T) {
	doc := "# Vars\n# Ops\nRun\n--\nRun\n# Shortcuts\n"
	_, err := parser.Parse([]byte(doc), parser.Options{})
	require.ErrorIs(t, err, addon.ErrDuplicateGroupName)
}

func TestParse_Warnings(t *testing.T) {
	doc := "stray\n# Vars\n# Ops\nRun\n# Shortcuts\nCtrl - Shift\nA - B\n"

	result, err := parser.Parse([]byte(doc), parser.Options{})
	require.NoError(t, err)

	require.Len(t, result.Warnings, 3)
	assert.Equal(t, addon.WarnStrayLines, result.Warnings[0].Kind)
	assert.Equal(t, addon.WarnMalformedShortcut, result.Warnings[1].Kind)
	assert.Equal(t, "Ctrl - Shift", result.Warnings[1].Line)
	assert.Equal(t, addon.WarnMalformedShortcut, result.Warnings[2].Kind)

	// The keyless line is dropped, the ambiguous one kept.
	require.Len(t, result.Definition.Shortcuts, 1)
	assert.Equal(t, "B", result.Definition.Shortcuts[0].Key.Value)
}

func TestParse_Strict(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		sentinel error
	}{
		{"malformed shortcut", "# Vars\n# Ops\n# Shortcuts\nCtrl\n", addon.ErrMalformedShortcut},
		{"stray lines", "hello\n# Vars\n# Ops\n# Shortcuts\n", addon.ErrStrayLines},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parser.Parse([]byte(tt.doc), parser.Options{Strict: true})
			assert.Nil(t, result)
			require.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestParseFile(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/tool.addon", "# Vars\nSize | Float\n# Ops\nRun\n# Shortcuts\nR\n", 0644)

	result, err := parser.ParseFile(mfs, "/project/tool.addon", parser.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"run"}, result.Definition.Commands)

	_, err = parser.ParseFile(mfs, "/project/missing.addon", parser.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/project/missing.addon")

	mfs.AddFile("/project/broken.addon", "# Vars\n", 0644)
	_, err = parser.ParseFile(mfs, "/project/broken.addon", parser.Options{})
	require.ErrorIs(t, err, addon.ErrMissingSection)
	assert.Contains(t, err.Error(), "/project/broken.addon")
}
