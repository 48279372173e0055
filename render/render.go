/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render generates Blender add-on Python modules from an
// addon.Definition.
package render

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/flosch/pongo2/v6"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/addonc/addon"
	"bennypowers.dev/addonc/fs"
)

var (
	// ErrMissingName indicates the add-on name is empty or has no identifier characters.
	ErrMissingName = errors.New("add-on name is required")

	// ErrInvalidName indicates the add-on name does not start with a letter.
	ErrInvalidName = errors.New("add-on name must start with a letter")
)

// Defaults for bl_info metadata.
const (
	DefaultAuthor   = "addonc"
	DefaultCategory = "Object"
	DefaultVersion  = "0.0.1"
)

// Options configures rendering.
type Options struct {
	// Name is the add-on name, e.g. "Bevel Helper".
	Name     string
	Author   string
	Category string
	// Version is a dotted version, e.g. "1.2.0".
	Version string
}

// File is one generated module, relative to the add-on folder.
type File struct {
	Path    string
	Content string
}

var (
	nonIdentChars = regexp.MustCompile(`[^a-z0-9_]`)
	nonClassChars = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// Render produces the add-on modules: one per group, followed by
// Properties.py, Panel.py, Modal.py and __init__.py.
func Render(def *addon.Definition, opts Options) ([]File, error) {
	view, err := newAddonView(def, opts)
	if err != nil {
		return nil, err
	}

	files := make([]File, 0, len(def.Groups)+4)
	for _, group := range view.Groups {
		content, err := execute("operator.py", pongo2.Context{"addon": view, "group": group})
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: group.Name + ".py", Content: content})
	}

	for _, module := range []struct{ path, template string }{
		{"Properties.py", "properties.py"},
		{"Panel.py", "panel.py"},
		{"Modal.py", "modal.py"},
		{"__init__.py", "init.py"},
	} {
		content, err := execute(module.template, pongo2.Context{"addon": view})
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: module.path, Content: content})
	}

	return files, nil
}

// Write writes files under dir, creating it if needed.
func Write(filesystem fs.FileSystem, dir string, files []File) error {
	if err := filesystem.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	for _, f := range files {
		path := filepath.Join(dir, f.Path)
		if err := filesystem.WriteFile(path, []byte(f.Content), 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", path, err)
		}
	}
	return nil
}

func execute(name string, ctx pongo2.Context) (string, error) {
	tmpl, ok := registry[name]
	if !ok {
		return "", fmt.Errorf("render: unknown template %q", name)
	}

	var sb strings.Builder
	if err := tmpl.ExecuteWriter(ctx, &sb); err != nil {
		return "", fmt.Errorf("render: execute template %q: %w", name, err)
	}
	return strings.TrimSpace(sb.String()) + "\n", nil
}

// ModuleName returns the add-on package folder name for name,
// e.g. "Bevel Helper" yields "bevel_helper".
func ModuleName(name string) (string, error) {
	id, _, err := identifiers(name)
	return id, err
}

// identifiers derives the Python identifiers used for an add-on name.
// "Bevel Helper" yields ("bevel_helper", "BevelHelper").
func identifiers(name string) (id, class string, err error) {
	id = nonIdentChars.ReplaceAllString(addon.Normalize(name), "")
	class = nonClassChars.ReplaceAllString(cases.Title(language.Und, cases.NoLower).String(name), "")
	if id == "" || class == "" {
		return "", "", ErrMissingName
	}
	if c := class[0]; c >= '0' && c <= '9' {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return id, class, nil
}
