// SPDX-License-Identifier: MIT

package number

import (
	"math"

	"github.com/katalvlaran/lvnum/internal/approx"
)

// Real is the real variant: a single float64 with zero imaginary part.
// Real(d) == Real(d) holds for every non-NaN d; Float64 returns d unchanged.
type Real float64

func (Real) sealed() {}

// Kind implements Number.
func (Real) Kind() Kind { return KindReal }

// Float64 returns the underlying value.
func (r Real) Float64() float64 { return float64(r) }

// Complex128 returns r+0i.
func (r Real) Complex128() complex128 { return complex(float64(r), 0) }

// Add implements Number.
func (r Real) Add(other Number) Number { return add(r, other) }

// Multiply implements Number.
func (r Real) Multiply(other Number) Number { return mul(r, other) }

// Equals implements Number: |r-other| < 1e-9, or for a Complex other, a
// near-zero imaginary part and a near-equal real part.
func (r Real) Equals(other Number) bool { return equal(r, other, EqualityAccuracy) }

// CompareTo implements Number.
func (r Real) CompareTo(other Number) int { return compare(r, other) }

// ComparableValue implements Number.
func (r Real) ComparableValue(other Number) (float64, float64) { return comparableValues(r, other) }

// Negate implements Number.
func (r Real) Negate() Number { return -r }

// Inverse returns 1/r; Real(0).Inverse() is +Inf.
func (r Real) Inverse() Number { return 1 / r }

// Magnitude returns |r|.
func (r Real) Magnitude() float64 { return math.Abs(float64(r)) }

// Abs returns |r|.
func (r Real) Abs() Number { return Real(math.Abs(float64(r))) }

// Sqrt returns the real root for r ≥ 0 and the pure imaginary root
// 0+√|r|i for r < 0.
func (r Real) Sqrt() Number {
	if r < 0 {
		return Complex{Im: math.Sqrt(-float64(r))}
	}

	return Real(math.Sqrt(float64(r)))
}

// RaiseTo computes r^exponent through polar form: modulus |r| and argument
// 0° (r ≥ 0) or 180° (r < 0). A non-negative base never leaves the real axis;
// a negative base with a fractional exponent yields the principal complex
// root, e.g. (-8)^(1/3) = 1+1.732i.
func (r Real) RaiseTo(exponent float64) Number {
	if !(r < 0) {
		// argument 0: sin term vanishes exactly
		return Real(math.Pow(float64(r), exponent))
	}

	return FromPolar(math.Pow(-float64(r), exponent), 180*exponent)
}

// Exp returns e^r.
func (r Real) Exp() Number { return Real(math.Exp(float64(r))) }

// Log returns ln r. Non-positive inputs follow floating point (-Inf, NaN).
func (r Real) Log() Number { return Real(math.Log(float64(r))) }

// Round rounds r to accuracy decimals, ties to even.
func (r Real) Round(accuracy int) Number { return Real(approx.Round(float64(r), accuracy)) }

// SmartRound snaps r to a nearby integer or simple fraction.
func (r Real) SmartRound() Number { return Real(approx.SmartRound(float64(r))) }

// NearZero reports |r| < 10^-accuracy.
func (r Real) NearZero(accuracy int) bool { return approx.NearZero(float64(r), accuracy) }

// Clone implements Number.
func (r Real) Clone() Number { return r }

// String renders r with DefaultLayout.
func (r Real) String() string { return r.Format(DefaultLayout()) }

// Format renders r: "0" when r equals zero at EqualityAccuracy, "?" for NaN,
// "∞" / "-∞" for infinities, otherwise the layout rendering.
func (r Real) Format(l Layout) string {
	v := float64(r)
	switch {
	case approx.NearZero(v, EqualityAccuracy):
		return "0"
	case math.IsNaN(v):
		return symNaN
	case math.IsInf(v, 1):
		return symInf
	case math.IsInf(v, -1):
		return "-" + symInf
	}

	return l.render(v)
}
