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

// RawGroup is a run of layout lines between group boundaries.
type RawGroup struct {
	// Declared is the normalized header title, empty for groups started by a
	// separator or by the first layout line.
	Declared string

	// Lines are the member lines, boundaries excluded.
	Lines []string
}

// SplitGroups partitions layout lines into groups. A group starts at the
// first line and at every group header or separator.
// Groups may be empty.
func SplitGroups(lines []string) []RawGroup {
	var groups []RawGroup
	for _, line := range lines {
		if isGroupHeader(line) {
			title := strings.TrimPrefix(line, common.GroupMarker)
			groups = append(groups, RawGroup{Declared: addon.Normalize(title)})
			continue
		}
		if common.SeparatorPattern.MatchString(line) {
			groups = append(groups, RawGroup{})
			continue
		}
		if len(groups) == 0 {
			groups = append(groups, RawGroup{})
		}
		last := &groups[len(groups)-1]
		last.Lines = append(last.Lines, line)
	}
	return groups
}

func isGroupHeader(line string) bool {
	return strings.HasPrefix(line, common.GroupMarker)
}
