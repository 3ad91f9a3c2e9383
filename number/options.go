// SPDX-License-Identifier: MIT

// Package number: functional configuration for the option-driven entry
// points (FormatWith, EqualWithin, RoundWith, NearZeroWithin).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX constructors panic only on nonsensical
//     values (programmer error); the entry points themselves never fail.
//   - Each entry point owns its default accuracy (equality uses 9 decimals,
//     everything else 12), applied before user setters.
package number

import "github.com/katalvlaran/lvnum/internal/approx"

// Numeric policy defaults (single source of truth, re-exported from approx).
const (
	// DefaultAccuracy is the decimal accuracy for zero checks,
	// canonicalization and Round.
	DefaultAccuracy = approx.DefaultAccuracy

	// EqualityAccuracy is the decimal accuracy used by Equals.
	EqualityAccuracy = approx.EqualityAccuracy

	// MaxAccuracy is the largest accuracy accepted by WithAccuracy.
	MaxAccuracy = approx.MaxAccuracy
)

// Internal panic messages (no magic strings).
const (
	panicAccuracyInvalid = "number: WithAccuracy: accuracy must be in [0, MaxAccuracy]"
	panicLayoutInvalid   = "number: WithLayout: layout is not valid (use ParseLayout)"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	accuracy int    // decimal places of the tolerance window
	layout   Layout // formatting layout
}

// WithAccuracy sets the decimal-place accuracy of the tolerance window.
//
// Errors:
//   - Panics when accuracy is outside [0, MaxAccuracy].
func WithAccuracy(accuracy int) Option {
	if accuracy < 0 || accuracy > MaxAccuracy {
		panic(panicAccuracyInvalid)
	}

	return func(o *Options) { o.accuracy = accuracy }
}

// WithLayout sets the formatting layout.
//
// Errors:
//   - Panics when l was not produced by ParseLayout (zero Layout).
func WithLayout(l Layout) Option {
	if !l.valid() {
		panic(panicLayoutInvalid)
	}

	return func(o *Options) { o.layout = l }
}

// gatherOptions applies user setters on top of the entry point's defaults.
// Last writer wins.
func gatherOptions(defaultAccuracy int, user ...Option) Options {
	o := Options{
		accuracy: defaultAccuracy,
		layout:   DefaultLayout(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// FormatWith renders n using the configured layout (DefaultLayout unless
// WithLayout is given). n must be non-nil.
func FormatWith(n Number, opts ...Option) string {
	o := gatherOptions(DefaultAccuracy, opts...)

	return n.Format(o.layout)
}

// EqualWithin reports tolerance equality at the configured accuracy
// (EqualityAccuracy unless WithAccuracy is given). Nil operands are equal
// only to each other.
func EqualWithin(a, b Number, opts ...Option) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	o := gatherOptions(EqualityAccuracy, opts...)

	return equal(a, b, o.accuracy)
}

// RoundWith rounds n at the configured accuracy (DefaultAccuracy unless
// WithAccuracy is given). n must be non-nil.
func RoundWith(n Number, opts ...Option) Number {
	o := gatherOptions(DefaultAccuracy, opts...)

	return n.Round(o.accuracy)
}

// NearZeroWithin reports n.NearZero at the configured accuracy
// (DefaultAccuracy unless WithAccuracy is given). A nil n is treated as zero.
func NearZeroWithin(n Number, opts ...Option) bool {
	if n == nil {
		return true
	}
	o := gatherOptions(DefaultAccuracy, opts...)

	return n.NearZero(o.accuracy)
}
