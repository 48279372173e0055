/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// ErrInvalidColor indicates a color(...) literal that is not a CSS color.
var ErrInvalidColor = errors.New("invalid color")

const colorCall = "color("

// expandColors rewrites color(<css color>) literals in float-vector options
// into linear RGB tuples, the space Blender stores COLOR properties in.
// The CSS color may be a name, hex digits with or without '#', or a functional
// notation such as rgb(255, 99, 71). Alpha is dropped.
func expandColors(options string) (string, error) {
	var b strings.Builder
	rest := options
	for {
		start := findColorCall(rest)
		if start < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}

		open := start + len(colorCall)
		body, end, ok := balanced(rest[open:])
		if !ok {
			return "", fmt.Errorf("%w: unclosed %s", ErrInvalidColor, rest[start:])
		}
		tuple, err := linearTuple(body)
		if err != nil {
			return "", err
		}
		b.WriteString(rest[:start])
		b.WriteString(tuple)
		rest = rest[open+end:]
	}
}

// findColorCall finds color( where it is not the tail of a longer name.
func findColorCall(s string) int {
	offset := 0
	for {
		i := strings.Index(s[offset:], colorCall)
		if i < 0 {
			return -1
		}
		i += offset
		if i == 0 || !isIdentByte(s[i-1]) {
			return i
		}
		offset = i + len(colorCall)
	}
}

// balanced returns the text up to the parenthesis closing an already opened
// one, and the offset just past it.
func balanced(s string) (string, int, bool) {
	depth := 1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[:i], i + 1, true
			}
		}
	}
	return "", 0, false
}

func linearTuple(css string) (string, error) {
	css = strings.TrimSpace(css)
	if isHexDigits(css) {
		css = "#" + css
	}
	c, err := csscolorparser.Parse(css)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, css)
	}
	r, g, b := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().LinearRgb()
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", r, g, b), nil
}

func isIdentByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isHexDigits(s string) bool {
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}
