// SPDX-License-Identifier: MIT

package numutil

import (
	"slices"

	"github.com/katalvlaran/lvnum/number"
)

// RealPart returns the real component of n (0 for nil).
func RealPart(n number.Number) float64 {
	if n == nil {
		return 0
	}

	return real(n.Complex128())
}

// Sqrt returns n.Sqrt(), or nil for nil.
func Sqrt(n number.Number) number.Number {
	if n == nil {
		return nil
	}

	return n.Sqrt()
}

// MinMax orders a pair with number.Less: lo is a when a < b, otherwise b.
func MinMax(a, b number.Number) (lo, hi number.Number) {
	return number.MinMax(a, b)
}

// Extremes returns the smallest and largest of values under number.Less
// (signed for Reals, magnitudes for mixed pairs). The first occurrence wins
// on ties.
//
// Errors:
//   - ErrEmptyInput when values is empty.
//
// Complexity: O(n).
func Extremes(values ...number.Number) (lo, hi number.Number, err error) {
	if len(values) == 0 {
		return nil, nil, ErrEmptyInput
	}

	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if number.Less(v, lo) {
			lo = v
		}
		if number.Greater(v, hi) {
			hi = v
		}
	}

	return lo, hi, nil
}

// Sort orders values in place with number.Compare. The sort is stable so
// values comparing equal keep their input order.
//
// Compare is not transitive across mixed Real/Complex sets (a Complex pair
// is ordered by components, a mixed pair by magnitude), so the result is
// only a total order when every pair of values is ordered consistently.
//
// Complexity: O(n log n).
func Sort(values []number.Number) {
	slices.SortStableFunc(values, number.Compare)
}

// Sum adds values left to right with number.Add; nil entries are skipped and
// an empty input sums to Real(0).
func Sum(values ...number.Number) number.Number {
	var acc number.Number = number.NewReal(0)
	for _, v := range values {
		acc = number.Add(acc, v)
	}

	return acc
}
