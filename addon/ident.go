/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package addon

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize converts display text into an identifier: lowercased, with every
// run of whitespace replaced by a single underscore.
// e.g., "Target Count" -> "target_count"
//
// Normalize is idempotent.
func Normalize(text string) string {
	return whitespaceRun.ReplaceAllString(Lower(strings.TrimSpace(text)), "_")
}

// Lower lowercases display text for case-insensitive comparisons.
// A Caser is stateful, so each call builds its own.
func Lower(text string) string {
	return cases.Lower(language.Und).String(text)
}
