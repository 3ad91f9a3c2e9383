// SPDX-License-Identifier: MIT

// Package number: binary kernels and their package-level entry points.
//
// Every kernel switches over the (Kind, Kind) pair of its operands. The left
// operand's variant owns the pairs it knows how to compute; the remaining
// pair (Real, Complex) is retried with operands swapped. This keeps each
// variant pair in exactly one place while guaranteeing symmetry.
package number

import (
	"cmp"

	"github.com/katalvlaran/lvnum/internal/approx"
)

// pair encodes (left Kind, right Kind) as a switch key.
type pair uint8

const (
	realReal       = pair(KindReal)<<1 | pair(KindReal)
	realComplex    = pair(KindReal)<<1 | pair(KindComplex)
	complexReal    = pair(KindComplex)<<1 | pair(KindReal)
	complexComplex = pair(KindComplex)<<1 | pair(KindComplex)
)

func pairOf(x, y Number) pair {
	return pair(x.Kind())<<1 | pair(y.Kind())
}

// add is the addition kernel.
func add(x, y Number) Number {
	switch pairOf(x, y) {
	case realReal:
		return x.(Real) + y.(Real)
	case complexReal:
		a := x.(Complex)
		return Canonicalize(a.Re+float64(y.(Real)), a.Im)
	case complexComplex:
		a, b := x.(Complex), y.(Complex)
		return Canonicalize(a.Re+b.Re, a.Im+b.Im)
	default: // realComplex
		return add(y, x)
	}
}

// mul is the multiplication kernel.
func mul(x, y Number) Number {
	switch pairOf(x, y) {
	case realReal:
		return x.(Real) * y.(Real)
	case complexReal:
		a, r := x.(Complex), float64(y.(Real))
		return Canonicalize(a.Re*r, a.Im*r)
	case complexComplex:
		a, b := x.(Complex), y.(Complex)
		return Canonicalize(a.Re*b.Re-a.Im*b.Im, a.Im*b.Re+a.Re*b.Im)
	default: // realComplex
		return mul(y, x)
	}
}

// equal is the tolerance-equality kernel. Cross-variant pairs require the
// imaginary part to be near zero AND the real parts to be near-equal.
func equal(x, y Number, accuracy int) bool {
	switch pairOf(x, y) {
	case realReal:
		return approx.NearEqual(float64(x.(Real)), float64(y.(Real)), accuracy)
	case complexReal:
		a := x.(Complex)
		return approx.NearZero(a.Im, accuracy) && approx.NearEqual(a.Re, float64(y.(Real)), accuracy)
	case complexComplex:
		a, b := x.(Complex), y.(Complex)
		return approx.NearEqual(a.Re, b.Re, accuracy) && approx.NearEqual(a.Im, b.Im, accuracy)
	default: // realComplex
		return equal(y, x, accuracy)
	}
}

// compare is the total-order kernel. It is NOT routed through the swap
// fallback: swapping would flip the sign of the result.
//
// Policy:
//   - Real vs Real: signed values.
//   - Complex vs Complex: real parts, ties broken by imaginary parts.
//   - mixed: magnitudes.
//
// NaN orders before every other value and equal to itself (cmp.Compare).
func compare(x, y Number) int {
	switch pairOf(x, y) {
	case realReal:
		return cmp.Compare(float64(x.(Real)), float64(y.(Real)))
	case complexComplex:
		a, b := x.(Complex), y.(Complex)
		if c := cmp.Compare(a.Re, b.Re); c != 0 {
			return c
		}
		return cmp.Compare(a.Im, b.Im)
	default:
		return cmp.Compare(x.Magnitude(), y.Magnitude())
	}
}

// comparableValues returns the scalars Less/Greater compare.
func comparableValues(x, y Number) (float64, float64) {
	if pairOf(x, y) == realReal {
		return float64(x.(Real)), float64(y.(Real))
	}

	return x.Magnitude(), y.Magnitude()
}

// Add returns x+y. A nil operand is the additive identity; Add(nil, nil) is nil.
func Add(x, y Number) Number {
	switch {
	case x == nil:
		return y
	case y == nil:
		return x
	}

	return add(x, y)
}

// Sub returns x-y, computed as x + (-y). Nil operands follow Add and Neg.
func Sub(x, y Number) Number {
	return Add(x, Neg(y))
}

// Neg returns -x, or nil for nil.
func Neg(x Number) Number {
	if x == nil {
		return nil
	}

	return x.Negate()
}

// Mul returns x·y, or nil when either operand is nil.
func Mul(x, y Number) Number {
	if x == nil || y == nil {
		return nil
	}

	return mul(x, y)
}

// Div returns x·y⁻¹, or nil when either operand is nil. Division by zero
// follows floating point (±Inf/NaN components).
func Div(x, y Number) Number {
	if x == nil || y == nil {
		return nil
	}

	return mul(x, y.Inverse())
}

// Equal reports tolerance equality at EqualityAccuracy. Nil is equal only to nil.
func Equal(x, y Number) bool {
	return EqualWithin(x, y)
}

// NotEqual is !Equal(x, y).
func NotEqual(x, y Number) bool {
	return !Equal(x, y)
}

// Compare returns -1, 0 or +1 under the total order documented on compare.
// Nil orders before every non-nil value. Suitable for slices.SortFunc.
func Compare(x, y Number) int {
	switch {
	case x == nil && y == nil:
		return 0
	case x == nil:
		return -1
	case y == nil:
		return 1
	}

	return compare(x, y)
}

// Less reports x < y on ComparableValue (signed values for two Reals,
// magnitudes otherwise). Nil is less than any non-nil value.
func Less(x, y Number) bool {
	switch {
	case x == nil && y == nil:
		return false
	case x == nil:
		return true
	case y == nil:
		return false
	}
	a, b := x.ComparableValue(y)

	return a < b
}

// Greater reports x > y on ComparableValue. Any non-nil value is greater than nil.
func Greater(x, y Number) bool {
	switch {
	case x == nil:
		return false
	case y == nil:
		return true
	}
	a, b := x.ComparableValue(y)

	return a > b
}

// LessOrEqual is Equal(x, y) || Less(x, y).
func LessOrEqual(x, y Number) bool {
	return Equal(x, y) || Less(x, y)
}

// GreaterOrEqual is Equal(x, y) || Greater(x, y).
func GreaterOrEqual(x, y Number) bool {
	return Equal(x, y) || Greater(x, y)
}

// Max returns x when Greater(x, y), otherwise y.
func Max(x, y Number) Number {
	if Greater(x, y) {
		return x
	}

	return y
}

// Min returns x when Less(x, y), otherwise y.
func Min(x, y Number) Number {
	if Less(x, y) {
		return x
	}

	return y
}

// MinMax orders the pair so that the first result is not Greater than the second.
func MinMax(a, b Number) (lo, hi Number) {
	if Less(a, b) {
		return a, b
	}

	return b, a
}

// IsWithin reports whether x lies in the closed range spanned by a and b
// (in either order) under LessOrEqual.
func IsWithin(x, a, b Number) bool {
	lo, hi := MinMax(a, b)

	return GreaterOrEqual(x, lo) && LessOrEqual(x, hi)
}
