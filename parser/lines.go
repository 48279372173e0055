/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"strings"

	"bennypowers.dev/addonc/parser/common"
)

// NormalizeLines splits a definition document into logical lines.
// Comments are stripped, lines trimmed, and empty lines dropped.
func NormalizeLines(text string) []string {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(common.CommentPattern.ReplaceAllString(raw, ""))
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
