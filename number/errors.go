// SPDX-License-Identifier: MIT

// Package number: sentinel error set.
// Arithmetic and comparison never fail; only text-facing entry points
// (Parse, ParseLayout, Value decoding) return errors. Callers match them with
// errors.Is; context is attached with numberErrorf.
package number

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a blank string is parsed.
	ErrEmptyInput = errors.New("number: empty input")

	// ErrSyntax is returned when text does not follow the number grammar
	// ("5", "-0.25", "1+2i", "-i", "∞", "?").
	ErrSyntax = errors.New("number: invalid syntax")

	// ErrBadLayout is returned when a layout pattern is not of the form
	// [#...][0...][.0...#...].
	ErrBadLayout = errors.New("number: invalid layout pattern")
)

// numberErrorf wraps an underlying sentinel with an operation tag and the
// offending input, keeping errors.Is matching intact.
func numberErrorf(tag, input string, err error) error {
	return fmt.Errorf("%s %q: %w", tag, input, err)
}
