/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package render

import (
	"fmt"
	"regexp"
	"strings"

	"bennypowers.dev/addonc/addon"
)

// Template views. Every value the templates print is precomputed here so
// the templates only iterate and substitute.

type addonView struct {
	Name     string
	ID       string
	UpperID  string
	Class    string
	Author   string
	Category string
	Version  string

	Fields    []fieldView
	Groups    []groupView
	Operators []string
	Imports   []string
	Panel     []panelView
	Shortcuts []shortcutView
}

type fieldView struct {
	ID          string
	Name        string
	Description string
	Type        string
	Options     string
}

type groupView struct {
	Name  string
	Items []commandView
}

type commandView struct {
	ID    string
	Label string
}

type panelView struct {
	Kind string
	Text string
	ID   string
}

type shortcutView struct {
	Label string
	Type  string
	Shift string
	Alt   string
	Ctrl  string
	OSKey string
}

var leadingDigits = regexp.MustCompile(`^[0-9]+`)

// glyphEvents maps literal key glyphs to Blender event types.
var glyphEvents = map[string]string{
	".": "PERIOD",
	",": "COMMA",
	";": "SEMI_COLON",
	"'": "QUOTE",
	"`": "ACCENT_GRAVE",
	"/": "SLASH",
	`\`: "BACK_SLASH",
	"=": "EQUAL",
	"[": "LEFT_BRACKET",
	"]": "RIGHT_BRACKET",
	"+": "NUMPAD_PLUS",
	"*": "NUMPAD_ASTERIX",
}

func newAddonView(def *addon.Definition, opts Options) (*addonView, error) {
	id, class, err := identifiers(opts.Name)
	if err != nil {
		return nil, err
	}

	view := &addonView{
		Name:     strings.TrimSpace(opts.Name),
		ID:       id,
		UpperID:  strings.ToUpper(id),
		Class:    class,
		Author:   valueOr(opts.Author, DefaultAuthor),
		Category: valueOr(opts.Category, DefaultCategory),
		Version:  versionTuple(valueOr(opts.Version, DefaultVersion)),
	}

	for _, id := range def.Commands {
		view.Operators = append(view.Operators, pyIdent(id))
	}
	for _, name := range def.Imports {
		view.Imports = append(view.Imports, pyIdent(name))
	}

	for _, f := range def.Fields {
		options := f.Options
		if f.Kind == addon.KindFloatVector {
			if options, err = expandColors(options); err != nil {
				return nil, fmt.Errorf("field %s: %w", f.ID, err)
			}
		}
		view.Fields = append(view.Fields, fieldView{
			ID:          pyIdent(f.ID),
			Name:        f.Name,
			Description: f.Description,
			Type:        f.Kind.PropertyType(),
			Options:     options,
		})
	}

	for _, g := range def.Groups {
		gv := groupView{Name: pyIdent(g.Name)}
		for _, item := range g.Items {
			gv.Items = append(gv.Items, commandView{ID: pyIdent(item.ID), Label: item.Label})
		}
		view.Groups = append(view.Groups, gv)
	}

	for _, item := range def.Panel {
		pv := panelView{Kind: item.Kind.String(), Text: item.Text}
		switch item.Kind {
		case addon.PanelField:
			pv.ID = pyIdent(item.FieldID)
		case addon.PanelCommand:
			pv.ID = pyIdent(item.CommandID)
		}
		view.Panel = append(view.Panel, pv)
	}

	for _, sc := range def.Shortcuts {
		view.Shortcuts = append(view.Shortcuts, shortcutView{
			Label: sc.String(),
			Type:  eventType(sc.Key),
			Shift: pyBool(sc.Modifiers.Shift),
			Alt:   pyBool(sc.Modifiers.Alt),
			Ctrl:  pyBool(sc.Modifiers.Ctrl),
			OSKey: pyBool(sc.Modifiers.OSKey),
		})
	}

	return view, nil
}

func eventType(key addon.Key) string {
	if key.Kind == addon.KeyGlyph {
		if event, ok := glyphEvents[key.Value]; ok {
			return event
		}
	}
	return key.Value
}

// pyIdent makes a normalized id safe as a Python identifier.
func pyIdent(id string) string {
	id = nonIdentChars.ReplaceAllString(id, "_")
	if id == "" || (id[0] >= '0' && id[0] <= '9') {
		id = "_" + id
	}
	return id
}

// versionTuple turns "1.2.0" into "1, 2, 0". Components are truncated to
// their leading digits and missing ones are zero, so "v2.1-rc1" yields "2, 1, 0".
func versionTuple(version string) string {
	parts := strings.Split(strings.TrimPrefix(strings.TrimSpace(version), "v"), ".")
	tuple := []string{"0", "0", "0"}
	for i := 0; i < len(parts) && i < len(tuple); i++ {
		if digits := leadingDigits.FindString(parts[i]); digits != "" {
			tuple[i] = digits
		}
	}
	return strings.Join(tuple, ", ")
}

func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func valueOr(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
