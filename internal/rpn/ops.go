// SPDX-License-Identifier: MIT

package rpn

import (
	"math"

	"github.com/katalvlaran/lvnum/number"
	"github.com/katalvlaran/lvnum/numutil"
)

// operator pops arity operands (deepest first) and returns the result.
type operator struct {
	arity int
	apply func(e *Evaluator, args []number.Number) (number.Number, error)
}

func unary(fn func(number.Number) number.Number) operator {
	return operator{arity: 1, apply: func(_ *Evaluator, args []number.Number) (number.Number, error) {
		return fn(args[0]), nil
	}}
}

func binary(fn func(x, y number.Number) number.Number) operator {
	return operator{arity: 2, apply: func(_ *Evaluator, args []number.Number) (number.Number, error) {
		return fn(args[0], args[1]), nil
	}}
}

// operators is the fixed operator table.
var operators = map[string]operator{
	"+":   binary(number.Add),
	"-":   binary(number.Sub),
	"*":   binary(number.Mul),
	"/":   binary(number.Div),
	"min": binary(number.Min),
	"max": binary(number.Max),
	"gcd": binary(numutil.GCDOf),
	"^": {arity: 2, apply: func(_ *Evaluator, args []number.Number) (number.Number, error) {
		exp, ok := realValue(args[1])
		if !ok {
			return nil, ErrNotReal
		}
		return args[0].RaiseTo(exp), nil
	}},
	"polar": {arity: 2, apply: func(_ *Evaluator, args []number.Number) (number.Number, error) {
		mod, okM := realValue(args[0])
		deg, okD := realValue(args[1])
		if !okM || !okD {
			return nil, ErrNotReal
		}
		return number.FromPolar(mod, deg), nil
	}},

	"neg":   unary(number.Neg),
	"inv":   unary(func(n number.Number) number.Number { return n.Inverse() }),
	"sqrt":  unary(func(n number.Number) number.Number { return n.Sqrt() }),
	"exp":   unary(func(n number.Number) number.Number { return n.Exp() }),
	"log":   unary(func(n number.Number) number.Number { return n.Log() }),
	"abs":   unary(func(n number.Number) number.Number { return n.Abs() }),
	"smart": unary(func(n number.Number) number.Number { return n.SmartRound() }),
	"mag":   unary(func(n number.Number) number.Number { return number.NewReal(n.Magnitude()) }),
	"re":    unary(func(n number.Number) number.Number { return number.NewReal(numutil.RealPart(n)) }),
	"im":    unary(func(n number.Number) number.Number { return number.NewReal(imag(n.Complex128())) }),
	"arg": unary(func(n number.Number) number.Number {
		_, deg := number.Polar(n)
		return number.NewReal(deg)
	}),
	"conj": unary(func(n number.Number) number.Number {
		if c, ok := n.(number.Complex); ok {
			return c.Conjugate()
		}
		return n
	}),
	"round": {arity: 1, apply: func(e *Evaluator, args []number.Number) (number.Number, error) {
		return args[0].Round(e.accuracy), nil
	}},
}

// constants are named values pushed as-is.
var constants = map[string]number.Number{
	"i":  number.I(),
	"pi": number.NewReal(math.Pi),
	"e":  number.NewReal(math.E),
}

// realValue extracts a real scalar from a Real, or from a Complex whose
// imaginary part is near zero.
func realValue(n number.Number) (float64, bool) {
	switch v := n.(type) {
	case number.Real:
		return v.Float64(), true
	case number.Complex:
		if v.IsReal() {
			return v.Re, true
		}
	}

	return 0, false
}
