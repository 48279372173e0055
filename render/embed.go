/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package render

import (
	"embed"
	"io/fs"
	"slices"
	"strings"

	"github.com/flosch/pongo2/v6"
)

const templateExt = ".tmpl"

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// registry holds every embedded template, compiled once. It is read-only
// after init.
var registry = mustCompile()

// TemplatesFS exposes the embedded template bundle.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

// Names lists the compiled template names in lexical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func mustCompile() map[string]*pongo2.Template {
	registerFilters()

	fsys := TemplatesFS()
	set := pongo2.NewSet("addonc", pongo2.NewFSLoader(fsys))

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		panic(err)
	}

	templates := make(map[string]*pongo2.Template, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), templateExt) {
			continue
		}
		tmpl, err := set.FromFile(entry.Name())
		if err != nil {
			panic("render: compile template " + entry.Name() + ": " + err.Error())
		}
		templates[strings.TrimSuffix(entry.Name(), templateExt)] = tmpl
	}
	return templates
}

func registerFilters() {
	if !pongo2.FilterExists("pystr") {
		_ = pongo2.RegisterFilter("pystr", filterPyString)
	}
}

var pyStringReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// filterPyString escapes a value for use inside a double-quoted Python string.
func filterPyString(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(pyStringReplacer.Replace(in.String())), nil
}
