// SPDX-License-Identifier: MIT

// Package number: domain types. This file contains ONLY the variant tag and
// the Number contract; variants live in real.go and complex.go.
package number

import "fmt"

// Kind tags the concrete variant behind a Number.
type Kind uint8

const (
	// KindReal marks a Real value.
	KindReal Kind = iota
	// KindComplex marks a Complex value.
	KindComplex
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindReal:
		return "real"
	case KindComplex:
		return "complex"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Number is the polymorphic numeric contract implemented by Real and Complex.
//
// The interface is sealed: only this package can add variants, which keeps
// every (Kind, Kind) dispatch switch exhaustive.
//
// Binary methods require a non-nil other operand; the package-level functions
// (Add, Mul, Less, ...) additionally define nil handling.
type Number interface {
	fmt.Stringer

	// Kind reports the concrete variant.
	Kind() Kind

	// Add returns self+other. Commutative; Real+Real stays Real, any pair
	// touching a Complex is canonicalized.
	Add(other Number) Number

	// Negate flips the sign of every component; the variant is preserved.
	Negate() Number

	// Multiply returns self·other, canonicalized unless both are Real.
	Multiply(other Number) Number

	// Inverse returns 1/self. Zero yields ±Inf (Real) or NaN (Complex).
	Inverse() Number

	// Equals reports tolerance equality at EqualityAccuracy decimals.
	Equals(other Number) bool

	// CompareTo returns -1, 0 or +1 under the package's total order.
	CompareTo(other Number) int

	// ComparableValue returns the pair of scalars the relational helpers
	// (Less, Greater) compare: signed values for Real vs Real, magnitudes
	// otherwise.
	ComparableValue(other Number) (float64, float64)

	// Magnitude returns |self| (absolute value or Euclidean modulus).
	Magnitude() float64

	// Abs returns the component-wise absolute value. For Complex this is
	// |re|+|im|i, NOT the modulus.
	Abs() Number

	// Sqrt returns the principal square root.
	Sqrt() Number

	// RaiseTo returns self^exponent computed through polar form.
	RaiseTo(exponent float64) Number

	// Exp returns e^self.
	Exp() Number

	// Log returns the natural logarithm of self.
	Log() Number

	// Round rounds every component to accuracy decimals (ties to even) and
	// canonicalizes.
	Round(accuracy int) Number

	// SmartRound snaps every component to a nearby integer or simple
	// fraction and canonicalizes.
	SmartRound() Number

	// NearZero reports whether every component is within 10^-accuracy of 0.
	NearZero(accuracy int) bool

	// Float64 returns the real part.
	Float64() float64

	// Complex128 converts to Go's builtin complex type.
	Complex128() complex128

	// Clone returns a copy. Values are immutable, so this is the value itself.
	Clone() Number

	// Format renders the value with the given layout.
	Format(l Layout) string

	sealed()
}

// Compile-time contract checks.
var (
	_ Number = Real(0)
	_ Number = Complex{}
)
