/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package common provides the markers and patterns shared by the add-on
// definition classifiers.
package common

import (
	"fmt"
	"regexp"
)

// SectionMarker starts a section header line: "# Vars".
const SectionMarker = "# "

// GroupMarker starts a group header line in the layout section: "## Setup".
// Inside the panel the same line renders as a label.
const GroupMarker = "## "

// LabelMarker starts a label line.
const LabelMarker = GroupMarker

// MinSeparatorDashes is the shortest dash run that counts as a separator.
const MinSeparatorDashes = 2

// SeparatorPattern matches a visual separator: a run of dashes at line start,
// optionally followed by unrelated text.
// e.g., "--", "-----", "-- tools"
var SeparatorPattern = regexp.MustCompile(fmt.Sprintf(`^-{%d,}`, MinSeparatorDashes))

// CommentPattern matches an inline comment: "//" at line start or after
// whitespace, through end of line. "http://..." is not a comment.
var CommentPattern = regexp.MustCompile(`(^|\s)//.*$`)

// DescriptionPattern matches the separator between a field declaration and
// its description: "Count | Int # How many". The "#" must follow whitespace,
// so option values like default="#ff0000" are left alone.
var DescriptionPattern = regexp.MustCompile(`\s+#\s*`)

// PipePattern matches the delimiter between field declaration parts.
var PipePattern = regexp.MustCompile(`\s*\|\s*`)

// ShortcutDelimiter separates the tokens of a shortcut descriptor.
const ShortcutDelimiter = "-"

// BareWordPattern matches a named key token such as "Left_Arrow" or "F5".
var BareWordPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
