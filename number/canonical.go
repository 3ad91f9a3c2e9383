// SPDX-License-Identifier: MIT

package number

import "github.com/katalvlaran/lvnum/internal/approx"

// Canonicalize returns Real(re) when im is within 10^-DefaultAccuracy of zero,
// otherwise Complex{re, im} with both components untouched.
//
// It is the single choke point that keeps "fake" complex numbers (imaginary
// part lost to rounding noise) from travelling through arithmetic chains.
// Complexity: O(1).
func Canonicalize(re, im float64) Number {
	if approx.NearZero(im, DefaultAccuracy) {
		return Real(re)
	}

	return Complex{Re: re, Im: im}
}

// NewReal constructs a Real.
func NewReal(v float64) Real { return Real(v) }

// FromFloat converts a float64 into a Number (always a Real).
func FromFloat(v float64) Number { return Real(v) }

// FromInt converts an int64 into a Number (always a Real).
func FromInt(v int64) Number { return Real(float64(v)) }

// NewComplex constructs a Complex WITHOUT canonicalization. The result may
// carry a negligible imaginary part; use FromPair for canonical results.
func NewComplex(re, im float64) Complex { return Complex{Re: re, Im: im} }

// FromPair builds a canonical Number from a real/imaginary pair.
func FromPair(re, im float64) Number { return Canonicalize(re, im) }

// FromIntPair builds a canonical Number from an integer pair.
func FromIntPair(re, im int64) Number { return Canonicalize(float64(re), float64(im)) }

// FromComplex128 builds a canonical Number from Go's builtin complex type.
func FromComplex128(z complex128) Number { return Canonicalize(real(z), imag(z)) }

// Zero returns 0+0i.
func Zero() Complex { return Complex{} }

// One returns 1+0i.
func One() Complex { return Complex{Re: 1} }

// I returns the imaginary unit 0+1i.
func I() Complex { return Complex{Im: 1} }
