// SPDX-License-Identifier: MIT

package number

import (
	"math"

	"github.com/katalvlaran/lvnum/internal/approx"
)

// Complex is the complex variant: a real/imaginary pair.
//
// Values built through FromPair, FromPolar or arithmetic are canonical (Im is
// not negligible). A literal Complex{} or NewComplex may still carry a
// near-zero Im; every operation treats it correctly anyway.
type Complex struct {
	Re float64 // real part
	Im float64 // imaginary part
}

func (Complex) sealed() {}

// Kind implements Number.
func (Complex) Kind() Kind { return KindComplex }

// Float64 returns the real part.
func (c Complex) Float64() float64 { return c.Re }

// Complex128 returns complex(c.Re, c.Im).
func (c Complex) Complex128() complex128 { return complex(c.Re, c.Im) }

// Add implements Number.
func (c Complex) Add(other Number) Number { return add(c, other) }

// Multiply implements Number: (a+bi)(c+di) = (ac−bd) + (ad+bc)i.
func (c Complex) Multiply(other Number) Number { return mul(c, other) }

// Equals implements Number: both components near-equal at 9 decimals, or for
// a Real other, a near-zero imaginary part and a near-equal real part.
func (c Complex) Equals(other Number) bool { return equal(c, other, EqualityAccuracy) }

// CompareTo implements Number. Against another Complex it compares real
// parts, then imaginary parts; against a Real it compares magnitudes.
// This is an ordering for sorting and min/max, not a mathematical one.
func (c Complex) CompareTo(other Number) int { return compare(c, other) }

// ComparableValue implements Number (magnitudes).
func (c Complex) ComparableValue(other Number) (float64, float64) {
	return comparableValues(c, other)
}

// Negate implements Number.
func (c Complex) Negate() Number { return Complex{Re: -c.Re, Im: -c.Im} }

// Conjugate returns c.Re − c.Im·i.
func (c Complex) Conjugate() Complex { return Complex{Re: c.Re, Im: -c.Im} }

// sumOfSquares returns re² + im².
func (c Complex) sumOfSquares() float64 { return c.Re*c.Re + c.Im*c.Im }

// Modulus returns the Euclidean length √(re² + im²).
func (c Complex) Modulus() float64 { return math.Hypot(c.Re, c.Im) }

// Argument returns the angle of c in degrees, normalized into [0, 360).
func (c Complex) Argument() float64 { return approx.Atan3(c.Im, c.Re) }

// ToPolar returns (Modulus, Argument in degrees).
func (c Complex) ToPolar() (modulus, argumentDegrees float64) {
	return c.Modulus(), c.Argument()
}

// IsReal reports whether the imaginary part is near zero at DefaultAccuracy.
func (c Complex) IsReal() bool { return approx.NearZero(c.Im, DefaultAccuracy) }

// IsImaginary reports whether the real part is near zero at DefaultAccuracy.
func (c Complex) IsImaginary() bool { return approx.NearZero(c.Re, DefaultAccuracy) }

// Inverse returns conj(c) / |c|². The zero value yields NaN components.
// The result is not canonicalized.
func (c Complex) Inverse() Number {
	div := c.sumOfSquares()
	conj := c.Conjugate()

	return Complex{Re: conj.Re / div, Im: conj.Im / div}
}

// Magnitude returns the modulus.
func (c Complex) Magnitude() float64 { return c.Modulus() }

// Abs returns |re| + |im|·i, component-wise. This is deliberately NOT the
// modulus; use Magnitude for |c|.
func (c Complex) Abs() Number { return Complex{Re: math.Abs(c.Re), Im: math.Abs(c.Im)} }

// Sqrt returns the principal root via polar form: √modulus at half the argument.
func (c Complex) Sqrt() Number {
	return FromPolar(math.Sqrt(c.Modulus()), c.Argument()/2)
}

// RaiseTo returns c^exponent via polar form: modulus^exponent at
// argument·exponent, canonicalized.
func (c Complex) RaiseTo(exponent float64) Number {
	return FromPolar(math.Pow(c.Modulus(), exponent), c.Argument()*exponent)
}

// Exp returns e^re · (cos im + i·sin im). The result is not canonicalized.
func (c Complex) Exp() Number {
	scale := math.Exp(c.Re)

	return Complex{Re: scale * math.Cos(c.Im), Im: scale * math.Sin(c.Im)}
}

// Log returns ln(modulus) + (argument·π/180)·i. Argument is measured in
// degrees over [0, 360), so the imaginary part lies in [0, 2π) rather than
// the (−π, π] branch of math/cmplx.Log. The result is not canonicalized.
func (c Complex) Log() Number {
	return Complex{Re: math.Log(c.Modulus()), Im: approx.DegToRad(c.Argument())}
}

// Round rounds both components to accuracy decimals and canonicalizes.
func (c Complex) Round(accuracy int) Number {
	return Canonicalize(approx.Round(c.Re, accuracy), approx.Round(c.Im, accuracy))
}

// SmartRound snaps both components and canonicalizes.
func (c Complex) SmartRound() Number {
	return Canonicalize(approx.SmartRound(c.Re), approx.SmartRound(c.Im))
}

// NearZero reports whether both components are within 10^-accuracy of zero.
func (c Complex) NearZero(accuracy int) bool {
	return approx.NearZero(c.Re, accuracy) && approx.NearZero(c.Im, accuracy)
}

// Clone implements Number.
func (c Complex) Clone() Number { return c }

// String renders c with DefaultLayout.
func (c Complex) String() string { return c.Format(DefaultLayout()) }

// Format renders c following the grammar:
//   - "0" when c equals zero at EqualityAccuracy;
//   - "∞" when either component is infinite, "?" when either is NaN;
//   - otherwise real part (omitted when near zero) followed by the imaginary
//     part (omitted when near zero), "+" between them when both are present
//     and Im > 0, a leading "-" when Im < 0, and a bare "i" for |Im| ≈ 1.
//
// Examples: 1+2i, 0.333+2i, i, -i, 5, 3-4.5i.
func (c Complex) Format(l Layout) string {
	switch {
	case c.NearZero(EqualityAccuracy):
		return "0"
	case math.IsInf(c.Re, 0) || math.IsInf(c.Im, 0):
		return symInf
	case math.IsNaN(c.Re) || math.IsNaN(c.Im):
		return symNaN
	}

	reZero := approx.NearZero(c.Re, DefaultAccuracy)
	imZero := approx.NearZero(c.Im, DefaultAccuracy)

	var re, sign, im string
	if !reZero {
		re = l.render(c.Re)
	}
	if !imZero {
		switch {
		case c.Im < 0:
			sign = "-"
		case !reZero:
			sign = "+"
		}
		if approx.NearEqual(math.Abs(c.Im), 1, DefaultAccuracy) {
			im = "i"
		} else {
			im = l.render(math.Abs(c.Im)) + "i"
		}
	}

	return re + sign + im
}
