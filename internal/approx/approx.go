// SPDX-License-Identifier: MIT

package approx

import "math"

// Tolerance policy defaults.
const (
	// DefaultAccuracy is the decimal-place accuracy for zero checks,
	// canonicalization and rounding.
	DefaultAccuracy = 12

	// EqualityAccuracy is the decimal-place accuracy used by value equality.
	EqualityAccuracy = 9

	// MaxAccuracy is the largest accuracy Round honors; float64 carries
	// ~15.9 significant decimal digits, so finer rounding is a no-op.
	MaxAccuracy = 15

	// MaxSnapDenominator bounds the denominators SmartRound tries when
	// snapping to a simple fraction.
	MaxSnapDenominator = 16
)

// pow10 caches 10^k for k in [0, MaxAccuracy].
var pow10 = func() [MaxAccuracy + 1]float64 {
	var t [MaxAccuracy + 1]float64
	t[0] = 1
	for k := 1; k <= MaxAccuracy; k++ {
		t[k] = t[k-1] * 10
	}

	return t
}()

// Tolerance returns the window 10^-accuracy.
// Negative accuracies widen the window (10^|accuracy|).
func Tolerance(accuracy int) float64 {
	if accuracy >= 0 && accuracy <= MaxAccuracy {
		return 1 / pow10[accuracy]
	}

	return math.Pow(10, -float64(accuracy))
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// NearZero reports |x| < 10^-accuracy.
// Complexity: O(1).
func NearZero(x float64, accuracy int) bool {
	return math.Abs(x) < Tolerance(accuracy)
}

// NearEqual reports |a-b| < 10^-accuracy. Bitwise-equal operands are always
// near-equal, so +Inf is near-equal to +Inf (their difference is NaN).
// Complexity: O(1).
func NearEqual(a, b float64, accuracy int) bool {
	if a == b {
		return true
	}

	return NearZero(a-b, accuracy)
}

// Round rounds x to the given number of decimal places, ties to even.
// Implementation:
//   - Stage 1: clamp accuracy into [0, MaxAccuracy].
//   - Stage 2: pass through non-finite values and values whose scaled
//     magnitude already exceeds the 2^52 integer grid.
//   - Stage 3: scale, RoundToEven, unscale.
//
// Complexity: O(1).
func Round(x float64, accuracy int) float64 {
	if accuracy < 0 {
		accuracy = 0
	}
	if accuracy > MaxAccuracy {
		accuracy = MaxAccuracy
	}
	if !IsFinite(x) {
		return x
	}

	p := pow10[accuracy]
	scaled := x * p
	if math.Abs(scaled) >= 1<<52 {
		// no fractional bits left at this scale
		return x
	}

	return math.RoundToEven(scaled) / p
}

// SmartRound snaps x to the nearest integer, or to the nearest fraction n/d
// with 2 ≤ d ≤ MaxSnapDenominator, when x lies within the equality window of
// it. Values that match neither are returned unchanged.
//
// Behavior highlights:
//   - Integers are tried first, then denominators in ascending order, so the
//     simplest fraction wins (0.5 snaps as 1/2, never 2/4).
//   - A snapped zero is always +0.
//
// Complexity: O(MaxSnapDenominator).
func SmartRound(x float64) float64 {
	if !IsFinite(x) {
		return x
	}

	if r := math.Round(x); NearEqual(x, r, EqualityAccuracy) {
		return r + 0 // drop negative zero
	}
	for d := 2.0; d <= MaxSnapDenominator; d++ {
		scaled := x * d
		n := math.Round(scaled)
		if NearEqual(scaled, n, EqualityAccuracy) {
			return n / d
		}
	}

	return x
}

// Atan3 returns the quadrant-aware angle of the point (x, y) in degrees,
// normalized into [0, 360).
// Complexity: O(1).
func Atan3(y, x float64) float64 {
	deg := math.Atan2(y, x) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		// -tiny + 360 rounds up to exactly 360
		deg -= 360
	}

	return deg
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
