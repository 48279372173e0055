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

// Required section names.
const (
	SectionFields    = "fields"
	SectionLayout    = "layout"
	SectionShortcuts = "shortcuts"
)

// requiredSections maps each required section to the title prefixes that
// select it.
var requiredSections = []struct {
	name     string
	prefixes []string
}{
	{SectionFields, []string{"fields", "vars", "properties"}},
	{SectionLayout, []string{"layout", "ops", "operators", "commands"}},
	{SectionShortcuts, []string{"shortcuts", "keys"}},
}

// Blocks is a definition document split into titled sections.
type Blocks struct {
	// Order lists the lowercased section titles as they appear.
	Order []string

	// Sections maps lowercased title to the lines under it.
	Sections map[string][]string

	// required maps a required section name to the title selecting it.
	required map[string]string
}

// Fields returns the lines of the fields section.
func (b *Blocks) Fields() []string {
	return b.Sections[b.required[SectionFields]]
}

// Layout returns the lines of the layout section.
func (b *Blocks) Layout() []string {
	return b.Sections[b.required[SectionLayout]]
}

// Shortcuts returns the lines of the shortcuts section.
func (b *Blocks) Shortcuts() []string {
	return b.Sections[b.required[SectionShortcuts]]
}

// Title returns the document title selecting a required section.
func (b *Blocks) Title(section string) string {
	return b.required[section]
}

// SplitBlocks partitions normalized lines into sections at header lines.
// Lines before the first header are reported as warnings and dropped.
func SplitBlocks(lines []string) (*Blocks, []addon.Warning, error) {
	blocks := &Blocks{
		Sections: make(map[string][]string),
		required: make(map[string]string),
	}
	var warnings []addon.Warning

	current := ""
	for _, line := range lines {
		if title, ok := sectionTitle(line); ok {
			if _, seen := blocks.Sections[title]; seen {
				return nil, nil, &addon.ConfigError{Err: addon.ErrDuplicateSection, Name: title, Line: line}
			}
			blocks.Sections[title] = []string{}
			blocks.Order = append(blocks.Order, title)
			current = title
			continue
		}
		if current == "" {
			warnings = append(warnings, addon.Warning{
				Kind:    addon.WarnStrayLines,
				Line:    line,
				Message: "ignored before the first section",
			})
			continue
		}
		blocks.Sections[current] = append(blocks.Sections[current], line)
	}

	for _, req := range requiredSections {
		var matches []string
		for _, title := range blocks.Order {
			if hasAnyPrefix(title, req.prefixes) {
				matches = append(matches, title)
			}
		}
		switch len(matches) {
		case 0:
			return nil, nil, &addon.ConfigError{Err: addon.ErrMissingSection, Name: req.name}
		case 1:
			blocks.required[req.name] = matches[0]
		default:
			return nil, nil, &addon.ConfigError{
				Err:  addon.ErrDuplicateSection,
				Name: req.name,
				Line: common.SectionMarker + matches[1],
			}
		}
	}

	return blocks, warnings, nil
}

// sectionTitle returns the lowercased title of a header line.
func sectionTitle(line string) (string, bool) {
	if !strings.HasPrefix(line, common.SectionMarker) {
		return "", false
	}
	return addon.Lower(strings.TrimSpace(strings.TrimPrefix(line, common.SectionMarker))), true
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
