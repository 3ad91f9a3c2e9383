// SPDX-License-Identifier: MIT

package number_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvnum/number"
)

// TestCanonicalize_Boundary verifies the Real/Complex split sits exactly at
// |im| < 1e-12 and that Complex results keep both components untouched.
func TestCanonicalize_Boundary(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		re, im   float64
		wantReal bool
	}{
		{"zero imaginary", 3, 0, true},
		{"negative zero imaginary", 3, math.Copysign(0, -1), true},
		{"inside window", 3, 9e-13, true},
		{"inside window negative", 3, -9e-13, true},
		{"on boundary", 3, 1e-12, false},
		{"on boundary negative", 3, -1e-12, false},
		{"clearly complex", -7.5, 2, false},
		{"NaN imaginary", 1, math.NaN(), false},
		{"infinite imaginary", 1, math.Inf(1), false},
	}
	for _, tc := range cases {
		n := number.Canonicalize(tc.re, tc.im)
		if tc.wantReal {
			r := mustReal(t, n)
			assert.Equal(t, tc.re, r.Float64(), tc.name)
			continue
		}
		c := mustComplex(t, n)
		assert.Equal(t, tc.re, c.Re, tc.name)
		if math.IsNaN(tc.im) {
			assert.True(t, math.IsNaN(c.Im), tc.name)
		} else {
			assert.Equal(t, tc.im, c.Im, tc.name)
		}
	}
}

// TestCanonicalize_Grid sweeps imaginary parts around the window.
func TestCanonicalize_Grid(t *testing.T) {
	t.Parallel()

	for _, re := range []float64{-2, 0, 1.5, 1e9} {
		for _, im := range []float64{-1, -1e-11, -5e-13, 0, 5e-13, 1e-11, 1} {
			n := number.Canonicalize(re, im)
			wantKind := number.KindComplex
			if math.Abs(im) < 1e-12 {
				wantKind = number.KindReal
			}
			assert.Equal(t, wantKind, n.Kind(), "Canonicalize(%v, %v)", re, im)
			if wantKind == number.KindComplex {
				assert.Equal(t, number.NewComplex(re, im), n)
			}
		}
	}
}

// TestFromFloat_EqualsSource checks that a Real built from d compares equal
// to d, both by tolerance and by value.
func TestFromFloat_EqualsSource(t *testing.T) {
	t.Parallel()

	for _, d := range []float64{0, 1, 3.4, 4.6, -2.5, 1e300, -1e-300} {
		n := number.FromFloat(d)
		assert.Equal(t, d, n.Float64())
		assert.True(t, number.Equal(n, number.NewReal(d)), "Equal(%v)", d)
		assert.True(t, n == number.Number(number.Real(d)), "== %v", d)
	}
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, number.Real(7), number.FromInt(7))
	assert.Equal(t, number.NewComplex(3, -4), number.FromIntPair(3, -4))
	assert.Equal(t, number.Real(3), number.FromIntPair(3, 0))
	assert.Equal(t, number.NewComplex(1, 2), number.FromComplex128(complex(1, 2)))
	assert.Equal(t, number.Real(-1), number.FromComplex128(complex(-1, 1e-15)))
	assert.Equal(t, number.NewComplex(4, 1e-14), number.NewComplex(4, 1e-14), "NewComplex does not canonicalize")

	assert.Equal(t, number.Complex{}, number.Zero())
	assert.Equal(t, number.Complex{Re: 1}, number.One())
	assert.Equal(t, number.Complex{Im: 1}, number.I())
	assert.Equal(t, complex(0, 1), number.I().Complex128())
	assert.Equal(t, complex(2.5, 0), number.NewReal(2.5).Complex128())
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "real", number.KindReal.String())
	assert.Equal(t, "complex", number.KindComplex.String())
	assert.Equal(t, "Kind(9)", number.Kind(9).String())
}
