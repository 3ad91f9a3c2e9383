// SPDX-License-Identifier: MIT
// Package rpn: sentinel error set. Evaluation errors wrap one of these with
// the offending token and its 1-based position.

package rpn

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyExpression is returned for a blank expression.
	ErrEmptyExpression = errors.New("rpn: empty expression")

	// ErrStackUnderflow is returned when an operator finds fewer operands
	// than it needs.
	ErrStackUnderflow = errors.New("rpn: stack underflow")

	// ErrUnknownToken is returned for a token that is neither an operator,
	// a constant nor a number literal.
	ErrUnknownToken = errors.New("rpn: unknown token")

	// ErrLeftover is returned when more than one value remains on the stack
	// after the last token.
	ErrLeftover = errors.New("rpn: values left on stack")

	// ErrNotReal is returned when an operator requiring a real operand
	// (exponent, polar modulus or angle) receives a complex one.
	ErrNotReal = errors.New("rpn: operand must be real")
)

// tokenErrorf attaches the token and its position to a sentinel.
func tokenErrorf(pos int, token string, err error) error {
	return fmt.Errorf("token %d %q: %w", pos, token, err)
}
