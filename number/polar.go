// SPDX-License-Identifier: MIT

package number

import (
	"math"

	"github.com/katalvlaran/lvnum/internal/approx"
)

// FromPolar converts a modulus and an argument in degrees into a canonical Number.
// Implementation:
//   - Stage 1: degrees → radians.
//   - Stage 2: (modulus·cos θ, modulus·sin θ).
//   - Stage 3: Canonicalize, so FromPolar(2, 0) and FromPolar(2, 360) are Real.
//
// Complexity: O(1).
func FromPolar(modulus, argumentDegrees float64) Number {
	theta := approx.DegToRad(argumentDegrees)

	return Canonicalize(modulus*math.Cos(theta), modulus*math.Sin(theta))
}

// Polar returns the polar form of any Number: modulus and argument in
// degrees over [0, 360). A negative Real has argument 180.
func Polar(n Number) (modulus, argumentDegrees float64) {
	switch v := n.(type) {
	case Real:
		return v.Magnitude(), approx.Atan3(0, float64(v))
	case Complex:
		return v.ToPolar()
	default:
		return 0, 0
	}
}
