// SPDX-License-Identifier: MIT

package rpn

import (
	"context"
	"strings"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvnum/number"
)

// traceLevel is the logr verbosity of per-token evaluation steps.
const traceLevel = 1

// Evaluator evaluates RPN expressions. The zero value is not usable; build
// one with New.
type Evaluator struct {
	log      logr.Logger
	accuracy int
	smart    bool
}

// New returns an Evaluator with defaults (no logging, DefaultAccuracy, no
// smart rounding) overridden by opts.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		log:      logr.Discard(),
		accuracy: number.DefaultAccuracy,
	}
	for _, set := range opts {
		set(e)
	}

	return e
}

// Operators returns the names of all supported operators in no particular order.
func Operators() []string {
	names := make([]string, 0, len(operators))
	for name := range operators {
		names = append(names, name)
	}

	return names
}

// Eval evaluates expr and returns the single value left on the stack,
// rounded to the configured accuracy (and snapped when smart rounding is on).
//
// A logger carried by ctx (logr.NewContext) takes precedence over the one
// given with WithLogger. ctx is checked between tokens.
//
// Errors:
//   - ErrEmptyExpression for a blank expr.
//   - ErrUnknownToken, ErrStackUnderflow, ErrNotReal wrapped with the token
//     and its 1-based position.
//   - ErrLeftover when more than one value remains.
//   - ctx.Err() when the context is done.
//
// Complexity: O(tokens).
func (e *Evaluator) Eval(ctx context.Context, expr string) (number.Number, error) {
	log := e.log
	if l, err := logr.FromContext(ctx); err == nil {
		log = l
	}

	tokens := strings.Fields(expr)
	if len(tokens) == 0 {
		return nil, ErrEmptyExpression
	}

	stack := make([]number.Number, 0, len(tokens))
	for k, tok := range tokens {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pos := k + 1

		if op, ok := operators[tok]; ok {
			if len(stack) < op.arity {
				return nil, tokenErrorf(pos, tok, ErrStackUnderflow)
			}
			base := len(stack) - op.arity
			res, err := op.apply(e, stack[base:])
			if err != nil {
				return nil, tokenErrorf(pos, tok, err)
			}
			stack = append(stack[:base], res)
			log.V(traceLevel).Info("apply", "pos", pos, "op", tok, "result", res.String(), "depth", len(stack))
			continue
		}

		val, err := literal(tok)
		if err != nil {
			return nil, tokenErrorf(pos, tok, ErrUnknownToken)
		}
		stack = append(stack, val)
		log.V(traceLevel).Info("push", "pos", pos, "value", val.String(), "depth", len(stack))
	}

	if len(stack) != 1 {
		return nil, tokenErrorf(len(tokens), tokens[len(tokens)-1], ErrLeftover)
	}

	res := stack[0].Round(e.accuracy)
	if e.smart {
		res = res.SmartRound()
	}
	log.V(traceLevel).Info("result", "expr", expr, "value", res.String())

	return res, nil
}

// literal resolves a named constant or parses a number literal.
func literal(tok string) (number.Number, error) {
	if c, ok := constants[tok]; ok {
		return c, nil
	}

	return number.Parse(tok)
}
