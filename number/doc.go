// SPDX-License-Identifier: MIT

// Package number provides a polymorphic numeric value that unifies real and
// complex numbers under one contract.
//
// 🚀 What is number.Number?
//
//	A sealed interface with exactly two variants:
//	  • Real    : one float64, zero imaginary part
//	  • Complex: a real/imaginary float64 pair
//
//	Every operation (Add, Multiply, Sqrt, RaiseTo, Log, ...) returns a NEW
//	value; nothing is ever mutated, so values are safe to share across
//	goroutines without locks.
//
// ✨ Key rules:
//   - Canonicalization: a result whose imaginary part is within 1e-12 of zero
//     collapses to a Real (see Canonicalize). Every operation whose result
//     variant is not fixed by its inputs routes through it.
//   - Dispatch: binary kernels switch explicitly over the (Kind, Kind) pair;
//     a pair the left operand does not handle is retried with the operands
//     swapped, so each variant pair is written exactly once.
//   - Tolerance: equality is |a-b| < 1e-9 per component, zero checks use
//     1e-12. Cross-variant equality is well defined (Real(2) equals 2+0i).
//   - Ordering: CompareTo is a TOTAL order meant for sorting and min/max,
//     not a mathematical one (complex numbers have none). Complex vs Complex
//     compares real parts, then imaginary parts; every other pair compares
//     magnitudes, except Real vs Real which compares signed values.
//   - Floating point edge cases (1/0, log of a negative, NaN) propagate as
//     ±Inf/NaN; no arithmetic operation returns an error.
//
// ⚙️ Usage:
//
//	a := number.FromPair(1, 2)      // 1+2i
//	b := number.NewReal(3)          // 3
//	c := number.Mul(a, b)           // 3+6i
//	r := number.FromPolar(2, 90)    // 2i (canonicalized Complex)
//	fmt.Println(c, r.Sqrt())        // "3+6i 1+i"
//
// Formatting follows the .NET-style layout "#0.###" by default: at most
// three decimals, trailing zeros trimmed, "∞" for infinities, "?" for NaN and
// a bare "i" for a unit imaginary part. Parse inverts that grammar and Value
// carries numbers through JSON and YAML documents.
package number
