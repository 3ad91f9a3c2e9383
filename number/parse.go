// SPDX-License-Identifier: MIT

package number

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvnum/internal/approx"
)

// Parse reads a Number written in the formatting grammar.
//
// Accepted forms (whitespace anywhere is ignored):
//
//	5   -0.25   2e3          real
//	i   -i   3.5i   -2e-3i    pure imaginary
//	1+2i   1-i   2e3-1e-2i    real and imaginary
//	∞   -∞   ?                +Inf, -Inf, NaN (as Real)
//
// The result is canonicalized, so "3+0i" parses to Real(3).
//
// Errors:
//   - ErrEmptyInput for blank text.
//   - ErrSyntax (wrapped with the input) for anything else that is not in the
//     grammar.
//
// Complexity: O(len(s)).
func Parse(s string) (Number, error) {
	text := strings.Join(strings.Fields(s), "")
	if text == "" {
		return nil, numberErrorf("Parse", s, ErrEmptyInput)
	}

	switch text {
	case symInf, "+" + symInf:
		return Real(math.Inf(1)), nil
	case "-" + symInf:
		return Real(math.Inf(-1)), nil
	case symNaN:
		return Real(math.NaN()), nil
	}

	body, isImag := strings.CutSuffix(text, "i")
	if !isImag {
		re, err := parseComponent(body)
		if err != nil {
			return nil, numberErrorf("Parse", s, ErrSyntax)
		}

		return Real(re), nil
	}

	reText, imText := splitImaginary(body)
	re := 0.0
	if reText != "" {
		v, err := parseComponent(reText)
		if err != nil {
			return nil, numberErrorf("Parse", s, ErrSyntax)
		}
		re = v
	}
	im, err := parseCoefficient(imText)
	if err != nil {
		return nil, numberErrorf("Parse", s, ErrSyntax)
	}

	return Canonicalize(re, im), nil
}

// MustParse is Parse that panics on error. Intended for tests and constants.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return n
}

// splitImaginary splits "<re><sign><im>" at the last sign that is neither the
// leading character nor part of an exponent ("1e-3"). Without such a sign the
// whole body is the imaginary coefficient.
func splitImaginary(body string) (reText, imText string) {
	for k := len(body) - 1; k > 0; k-- {
		if body[k] != '+' && body[k] != '-' {
			continue
		}
		if prev := body[k-1]; prev == 'e' || prev == 'E' {
			continue
		}

		return body[:k], body[k:]
	}

	return "", body
}

// parseCoefficient parses an imaginary coefficient; a bare sign means ±1.
func parseCoefficient(text string) (float64, error) {
	switch text {
	case "", "+":
		return 1, nil
	case "-":
		return -1, nil
	}

	return parseComponent(text)
}

// parseComponent parses one decimal component. Textual specials accepted by
// strconv ("inf", "nan") are rejected; the grammar spells them ∞ and ?.
func parseComponent(text string) (float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}
	if !approx.IsFinite(v) {
		return 0, strconv.ErrSyntax
	}

	return v, nil
}
