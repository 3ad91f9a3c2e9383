// SPDX-License-Identifier: MIT

package numutil

import (
	"math"

	"github.com/katalvlaran/lvnum/internal/approx"
	"github.com/katalvlaran/lvnum/number"
)

// maxExactInt is 2^63 as a float64: the first value that no longer fits int64.
const maxExactInt = 1 << 63

// GCD returns the greatest common divisor of |left| and |right| by repeated
// remainder.
//
// Contract:
//   - Negative operands are folded to their absolute value.
//   - Whenever either operand is below 2 after folding the result is 1, so
//     GCD(a, 0) == 1 and GCD(1, a) == 1. Callers relying on GCD(a, 0) == a
//     must special-case zero themselves.
//   - math.MinInt64 has no absolute value in int64 and yields 1.
//
// Complexity: O(log min(|left|, |right|)).
func GCD(left, right int64) int64 {
	if left < 0 {
		left = -left
	}
	if right < 0 {
		right = -right
	}
	if left < 2 || right < 2 {
		return 1
	}

	for {
		if left < right {
			left, right = right, left
		}
		left %= right
		if left == 0 {
			return right
		}
	}
}

// IsWhole reports whether n is a Real whose fractional part is within
// 10^-DefaultAccuracy of zero. Complex values are never whole, even with a
// zero imaginary part. The fraction is measured toward zero, so 2.9999999
// is not whole while 3.0000000000001 is.
func IsWhole(n number.Number) bool {
	r, ok := n.(number.Real)
	if !ok {
		return false
	}
	v := r.Float64()

	return approx.NearZero(v-math.Trunc(v), approx.DefaultAccuracy)
}

// GCDOf returns GCD of the truncated values as a Real when both operands are
// whole Reals that fit in int64; for any other pair it returns right
// unchanged.
func GCDOf(left, right number.Number) number.Number {
	l, okL := wholeInt(left)
	r, okR := wholeInt(right)
	if !okL || !okR {
		return right
	}

	return number.FromInt(GCD(l, r))
}

// wholeInt truncates a whole Real into int64.
func wholeInt(n number.Number) (int64, bool) {
	if !IsWhole(n) {
		return 0, false
	}
	v := math.Trunc(n.Float64())
	if v >= maxExactInt || v < -maxExactInt {
		return 0, false
	}

	return int64(v), true
}
