// SPDX-License-Identifier: MIT

package rpn

import (
	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvnum/number"
)

// Option configures an Evaluator.
type Option func(*Evaluator)

const panicAccuracyInvalid = "rpn: WithAccuracy: accuracy must be in [0, number.MaxAccuracy]"

// WithLogger sets the logger used for the evaluation trace. Steps are logged
// at V(1); the default is logr.Discard().
func WithLogger(log logr.Logger) Option {
	return func(e *Evaluator) { e.log = log }
}

// WithAccuracy sets the decimals the final result is rounded to and that the
// round operator uses (number.DefaultAccuracy by default).
//
// Errors:
//   - Panics when accuracy is outside [0, number.MaxAccuracy].
func WithAccuracy(accuracy int) Option {
	if accuracy < 0 || accuracy > number.MaxAccuracy {
		panic(panicAccuracyInvalid)
	}

	return func(e *Evaluator) { e.accuracy = accuracy }
}

// WithSmartRound makes the evaluator snap the final result to a nearby
// integer or simple fraction.
func WithSmartRound(enabled bool) Option {
	return func(e *Evaluator) { e.smart = enabled }
}
