// Package lvnum is a small numeric toolkit built around one value type that
// is either a real or a complex number, chosen automatically.
//
// 🚀 What is lvnum?
//
//	An immutable, allocation-light library that brings together:
//		• number/  : the Number contract, Real and Complex variants,
//		             canonicalization, polar form, layouts, parsing, JSON/YAML
//		• numutil/: GCD, whole-number checks, sorting and extremes
//		• cmd/lvnum: a calculator CLI (RPN evaluation, formatting, polar, gcd)
//
// ✨ Why choose lvnum?
//
//   - One type for both worlds: Real(-4).Sqrt() is simply 2i, and 2i·2i is -4
//     again, a Real.
//   - Tolerant by default: equality within 1e-9, zero checks within 1e-12.
//   - Safe to share: values never mutate, so goroutines need no locks.
//
// Quick example:
//
//	z := number.FromPair(1, 2)            // 1+2i
//	fmt.Println(number.Mul(z, z))         // -3+4i
//	fmt.Println(number.NewReal(-8).RaiseTo(1.0 / 3)) // 1+1.732i
//
//	go get github.com/katalvlaran/lvnum
package lvnum
