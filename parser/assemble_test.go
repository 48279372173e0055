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

func assembleLayout(t *testing.T, fields []addon.FieldDef, layout []string) (*addon.Definition, error) {
	t.Helper()
	panel := ClassifyPanel(layout, NewFieldIndex(fields))
	return Assemble(fields, SplitGroups(layout), panel, nil)
}

func TestAssemble_FieldsStayOnPanel(t *testing.T) {
	fields := []addon.FieldDef{{Name: "Target Count", ID: "target_count", Kind: addon.KindInteger}}

	def, err := assembleLayout(t, fields, []string{"## Setup", "Target Count", "Run"})
	require.NoError(t, err)

	require.Len(t, def.Groups, 1)
	assert.Equal(t, addon.Group{Name: "setup", Items: []addon.CommandRef{{ID: "run", Label: "Run"}}}, def.Groups[0])
	assert.Equal(t, []string{"run"}, def.Commands)
	assert.Equal(t, []string{"setup"}, def.Imports)
	assert.Equal(t, []addon.PanelItem{
		addon.Label("Setup"),
		addon.FieldReference("target_count"),
		addon.CommandReference("run", "Run"),
	}, def.Panel)
}

func TestAssemble_ImplicitNames(t *testing.T) {
	def, err := assembleLayout(t, nil, []string{"Bevel", "Chamfer", "--", "Clean Up", "-- tail", "## Export", "Save"})
	require.NoError(t, err)

	assert.Equal(t, []string{"bevel", "clean_up", "export"}, def.Imports)
	assert.Equal(t, []string{"bevel", "chamfer", "clean_up", "save"}, def.Commands)
}

func TestAssemble_DropsGroupsWithoutCommands(t *testing.T) {
	fields := []addon.FieldDef{{Name: "Size", ID: "size", Kind: addon.KindFloat}}

	def, err := assembleLayout(t, fields, []string{"## Empty", "--", "Size", "## Tools", "Run"})
	require.NoError(t, err)

	assert.Equal(t, []string{"tools"}, def.Imports)
	assert.Len(t, def.Panel, 5)
}

func TestAssemble_RepeatedCommandInGroup(t *testing.T) {
	def, err := assembleLayout(t, nil, []string{"Run", "Run"})
	require.NoError(t, err)

	assert.Equal(t, []string{"run"}, def.Commands)
	assert.Len(t, def.Groups[0].Items, 1)
	assert.Len(t, def.Panel, 2)
}

func TestAssemble_Errors(t *testing.T) {
	tests := []struct {
		name     string
		layout   []string
		sentinel error
		named    string
	}{
		{"implicit names collide", []string{"Run", "--", "Run"}, addon.ErrDuplicateGroupName, "run"},
		{"declared names collide", []string{"## Tools", "Bevel", "## tools", "Chamfer"}, addon.ErrDuplicateGroupName, "tools"},
		{"command in two groups", []string{"## A", "Run", "## B", "Stop", "Run"}, addon.ErrDuplicateCommand, "run"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := assembleLayout(t, nil, tt.layout)
			assert.Nil(t, def)
			require.ErrorIs(t, err, tt.sentinel)
			assert.Contains(t, err.Error(), tt.named)
		})
	}
}

func TestAssemble_DanglingFieldReference(t *testing.T) {
	panel := []addon.PanelItem{addon.FieldReference("ghost")}
	_, err := Assemble(nil, nil, panel, nil)
	require.ErrorIs(t, err, addon.ErrDanglingFieldReference)
	assert.Contains(t, err.Error(), "ghost")
}

func TestAssemble_EmptyLayout(t *testing.T) {
	def, err := Assemble(nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, def.Groups)
	assert.Empty(t, def.Commands)
	assert.Empty(t, def.Imports)
}
