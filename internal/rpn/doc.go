// SPDX-License-Identifier: MIT

// Package rpn evaluates reverse-Polish expressions over number.Number.
//
// An expression is a whitespace separated token list. Every token is either
// an operator, a named constant (i, pi, e) or a literal in the number.Parse
// grammar ("3", "-0.5", "1+2i", "-i"). Literals push onto a stack; operators
// pop their operands and push the result:
//
//	"1+2i 3 *"          → 3+6i
//	"-4 sqrt"           → 2i
//	"2 90 polar 2 ^"    → -4
//
// Evaluation is synchronous and allocation-light; an Evaluator holds only
// immutable configuration and is safe for concurrent use.
package rpn
