/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"fmt"
	"strings"

	"bennypowers.dev/addonc/addon"
	"bennypowers.dev/addonc/parser/common"
)

var digitNames = [10]string{
	"ZERO", "ONE", "TWO", "THREE", "FOUR",
	"FIVE", "SIX", "SEVEN", "EIGHT", "NINE",
}

var modifierTokens = map[string]func(*addon.Modifiers){
	"shift":   func(m *addon.Modifiers) { m.Shift = true },
	"alt":     func(m *addon.Modifiers) { m.Alt = true },
	"opt":     func(m *addon.Modifiers) { m.Alt = true },
	"option":  func(m *addon.Modifiers) { m.Alt = true },
	"ctrl":    func(m *addon.Modifiers) { m.Ctrl = true },
	"control": func(m *addon.Modifiers) { m.Ctrl = true },
	"oskey":   func(m *addon.Modifiers) { m.OSKey = true },
	"os":      func(m *addon.Modifiers) { m.OSKey = true },
	"cmd":     func(m *addon.Modifiers) { m.OSKey = true },
	"super":   func(m *addon.Modifiers) { m.OSKey = true },
}

// ClassifyShortcut parses a hyphen-joined shortcut descriptor such as
// "Ctrl - Shift - A".
//
// Tokens are read right to left since the key is conventionally last. When
// several non-modifier tokens are present the rightmost one is the key and
// the rest are reported in a warning. A line without a key yields no
// ShortcutDef, only a warning.
func ClassifyShortcut(line string) (*addon.ShortcutDef, *addon.Warning) {
	tokens := shortcutTokens(line)
	def := &addon.ShortcutDef{Source: line}

	var keys []string
	for i := len(tokens) - 1; i >= 0; i-- {
		tok := tokens[i]
		if set, ok := modifierTokens[strings.ToLower(tok)]; ok {
			set(&def.Modifiers)
			continue
		}
		if len(keys) == 0 {
			def.Key = classifyKey(tok)
		}
		keys = append(keys, tok)
	}

	switch {
	case len(keys) == 0:
		return nil, &addon.Warning{
			Kind:    addon.WarnMalformedShortcut,
			Line:    line,
			Message: "no key token",
		}
	case len(keys) > 1:
		return def, &addon.Warning{
			Kind:    addon.WarnMalformedShortcut,
			Line:    line,
			Message: fmt.Sprintf("several key tokens, using %q and ignoring %q", keys[0], keys[1:]),
		}
	}
	return def, nil
}

func shortcutTokens(line string) []string {
	var tokens []string
	for _, part := range strings.Split(line, common.ShortcutDelimiter) {
		if part = strings.TrimSpace(part); part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}

func classifyKey(tok string) addon.Key {
	if len(tok) == 1 {
		c := tok[0]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
			return addon.Key{Kind: addon.KeyLetter, Value: strings.ToUpper(tok)}
		case '0' <= c && c <= '9':
			return addon.Key{Kind: addon.KeyDigit, Value: digitNames[c-'0']}
		}
	}
	if common.BareWordPattern.MatchString(tok) {
		return addon.Key{Kind: addon.KeyNamed, Value: strings.ToUpper(tok)}
	}
	return addon.Key{Kind: addon.KeyGlyph, Value: tok}
}
