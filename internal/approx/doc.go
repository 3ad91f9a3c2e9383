// SPDX-License-Identifier: MIT

// Package approx holds the scalar tolerance policy shared by every lvnum
// package: "near zero" and "near equal" checks against a decimal-place
// accuracy, decimal rounding, snapping to simple fractions, and a
// quadrant-aware arctangent in degrees.
//
// Tolerance window:
//
//	|x| < 10^-accuracy
//
// DefaultAccuracy (12) governs zero/real classification and canonicalization,
// EqualityAccuracy (9) governs value equality.
//
// All helpers are pure functions of their float64 inputs. NaN is never near
// anything; infinities are only near-equal to an identical infinity.
package approx
