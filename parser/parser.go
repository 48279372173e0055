/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser compiles add-on definition documents into an addon.Definition.
//
// A document has three sections: fields, layout and shortcuts.
//
//	# Vars
//	Target Count | Int | min=0 # How many
//
//	# Ops
//	## Setup
//	Target Count
//	Run
//
//	# Shortcuts
//	Ctrl - Shift - A
//
// Parsing is a pure function of the document; documents may be parsed
// concurrently.
package parser

import (
	"fmt"

	"bennypowers.dev/addonc/addon"
	"bennypowers.dev/addonc/fs"
)

// Options configures parsing.
type Options struct {
	// Strict turns warnings into errors.
	Strict bool
}

// Result is a parsed definition and the warnings raised while parsing it.
type Result struct {
	Definition *addon.Definition
	Warnings   []addon.Warning
}

// Parse compiles a definition document.
// On error no partial Definition is returned.
func Parse(data []byte, opts Options) (*Result, error) {
	blocks, warnings, err := SplitBlocks(NormalizeLines(string(data)))
	if err != nil {
		return nil, err
	}
	if opts.Strict && len(warnings) > 0 {
		return nil, warnings[0].Err("")
	}

	fields, err := ClassifyFields(blocks.Fields())
	if err != nil {
		return nil, err
	}

	panel := ClassifyPanel(blocks.Layout(), NewFieldIndex(fields))

	shortcuts := []addon.ShortcutDef{}
	for _, line := range blocks.Shortcuts() {
		sc, warn := ClassifyShortcut(line)
		if warn != nil {
			if opts.Strict {
				return nil, warn.Err(SectionShortcuts)
			}
			warnings = append(warnings, *warn)
		}
		if sc != nil {
			shortcuts = append(shortcuts, *sc)
		}
	}

	def, err := Assemble(fields, SplitGroups(blocks.Layout()), panel, shortcuts)
	if err != nil {
		return nil, err
	}

	return &Result{Definition: def, Warnings: warnings}, nil
}

// ParseFile reads and compiles a definition file.
func ParseFile(filesystem fs.FileSystem, path string, opts Options) (*Result, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	result, err := Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}
	return result, nil
}
