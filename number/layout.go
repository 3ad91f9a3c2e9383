// SPDX-License-Identifier: MIT

// Package number: numeric layouts.
//
// A Layout is a parsed .NET-style custom numeric pattern restricted to digit
// placeholders:
//
//	[#...][0...][.0...#...]
//
//	'0' before the point  : a mandatory integer digit (left-padded with 0)
//	'#' before the point  : an optional integer digit
//	'0' after the point   : a mandatory fraction digit
//	'#' after the point   : an optional fraction digit (trailing zeros trimmed)
//
// "#0.###" (the default) prints at most three decimals with trailing zeros
// trimmed; "0.00" always prints two; "#.#" drops a lone leading zero.
package number

import (
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultPattern is the pattern behind DefaultLayout.
	DefaultPattern = "#0.###"

	// maxFractionDigits bounds fraction placeholders; float64 carries no
	// more than 17 significant decimal digits.
	maxFractionDigits = 17

	symInf = "∞"
	symNaN = "?"
)

// Layout is a parsed numeric pattern. The zero Layout is invalid; obtain one
// from ParseLayout, MustParseLayout or DefaultLayout.
type Layout struct {
	pattern string
	minInt  int // mandatory integer digits
	minFrac int // mandatory fraction digits
	maxFrac int // mandatory + optional fraction digits
}

// defaultLayout is parsed once; the pattern is a constant so it cannot fail.
var defaultLayout = MustParseLayout(DefaultPattern)

// DefaultLayout returns the "#0.###" layout.
func DefaultLayout() Layout { return defaultLayout }

// ParseLayout parses pattern into a Layout.
//
// Errors:
//   - ErrBadLayout (wrapped with the pattern) for an empty pattern, any
//     character other than '#', '0' or a single '.', a '#' after a '0' in the
//     integer part, a '0' after a '#' in the fraction part, or more than 17
//     fraction placeholders.
//
// Complexity: O(len(pattern)).
func ParseLayout(pattern string) (Layout, error) {
	if pattern == "" {
		return Layout{}, numberErrorf("ParseLayout", pattern, ErrBadLayout)
	}

	intPart, fracPart, _ := strings.Cut(pattern, ".")
	if intPart == "" && fracPart == "" {
		return Layout{}, numberErrorf("ParseLayout", pattern, ErrBadLayout)
	}

	l := Layout{pattern: pattern}
	seenZero := false
	for _, ch := range intPart {
		switch {
		case ch == '0':
			seenZero = true
			l.minInt++
		case ch == '#' && !seenZero:
		default:
			return Layout{}, numberErrorf("ParseLayout", pattern, ErrBadLayout)
		}
	}

	seenHash := false
	for _, ch := range fracPart {
		switch {
		case ch == '0' && !seenHash:
			l.minFrac++
		case ch == '#':
			seenHash = true
		default:
			return Layout{}, numberErrorf("ParseLayout", pattern, ErrBadLayout)
		}
		l.maxFrac++
	}
	if l.maxFrac > maxFractionDigits {
		return Layout{}, numberErrorf("ParseLayout", pattern, ErrBadLayout)
	}

	return l, nil
}

// MustParseLayout is ParseLayout that panics on error. Intended for
// package-level variables initialized from constant patterns.
func MustParseLayout(pattern string) Layout {
	l, err := ParseLayout(pattern)
	if err != nil {
		panic(err)
	}

	return l
}

// String returns the source pattern.
func (l Layout) String() string { return l.pattern }

// Decimals returns the maximum number of fraction digits the layout prints.
func (l Layout) Decimals() int { return l.maxFrac }

func (l Layout) valid() bool { return l.pattern != "" }

// render formats a finite x under the layout.
// Implementation:
//   - Stage 1: fixed-point |x| with maxFrac decimals.
//   - Stage 2: trim optional trailing fraction zeros down to minFrac.
//   - Stage 3: pad or drop the integer part according to minInt.
//   - Stage 4: prefix "-" unless every printed digit is zero.
func (l Layout) render(x float64) string {
	digits := strconv.FormatFloat(math.Abs(x), 'f', l.maxFrac, 64)
	intPart, fracPart, _ := strings.Cut(digits, ".")

	fracPart = strings.TrimRight(fracPart, "0")
	if len(fracPart) < l.minFrac {
		fracPart += strings.Repeat("0", l.minFrac-len(fracPart))
	}

	if intPart == "0" && l.minInt == 0 {
		intPart = ""
	}
	if len(intPart) < l.minInt {
		intPart = strings.Repeat("0", l.minInt-len(intPart)) + intPart
	}

	var b strings.Builder
	if x < 0 && strings.Trim(intPart+fracPart, "0") != "" {
		b.WriteByte('-')
	}
	b.WriteString(intPart)
	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	if b.Len() == 0 {
		return "0"
	}

	return b.String()
}
