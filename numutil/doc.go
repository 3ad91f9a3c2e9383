// SPDX-License-Identifier: MIT

// Package numutil collects helpers that operate on number.Number values
// without belonging to the Number contract itself.
//
// The numutil package provides:
//
//   - GCD over int64 and GCDOf over Numbers (whole Reals only).
//   - IsWhole, RealPart and Sqrt as free functions.
//   - MinMax, Extremes and Sort built on the number package ordering.
//
// All helpers are pure and safe for concurrent use.
package numutil
