// SPDX-License-Identifier: MIT
// Package number_test contains shared test helpers.
//
// Purpose:
//   • Assert concrete variants without repeating type switches.
//   • Compare component pairs approximately through go-cmp.

package number_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/number"
)

// componentTol is the absolute tolerance used by assertParts.
const componentTol = 1e-9

// parts is the comparable (re, im) view of any Number.
type parts struct {
	Re, Im float64
}

func partsOf(n number.Number) parts {
	z := n.Complex128()

	return parts{Re: real(z), Im: imag(z)}
}

// assertParts fails the test when n's components differ from (re, im) by
// more than componentTol. NaNs compare equal to NaNs.
func assertParts(t *testing.T, n number.Number, re, im float64) {
	t.Helper()

	if diff := cmp.Diff(parts{Re: re, Im: im}, partsOf(n),
		cmpopts.EquateApprox(0, componentTol), cmpopts.EquateNaNs()); diff != "" {
		t.Fatalf("components mismatch (-want +got):\n%s", diff)
	}
}

// mustReal asserts n is a Real and returns it.
func mustReal(t *testing.T, n number.Number) number.Real {
	t.Helper()

	r, ok := n.(number.Real)
	require.Truef(t, ok, "want Real, got %T (%v)", n, n)

	return r
}

// mustComplex asserts n is a Complex and returns it.
func mustComplex(t *testing.T, n number.Number) number.Complex {
	t.Helper()

	c, ok := n.(number.Complex)
	require.Truef(t, ok, "want Complex, got %T (%v)", n, n)

	return c
}

// sampleValues spans every variant, signs, the unit constants and a
// non-canonical Complex with a negligible imaginary part.
func sampleValues() []number.Number {
	return []number.Number{
		number.NewReal(2),
		number.NewReal(-0.5),
		number.NewReal(0),
		number.NewComplex(1, 2),
		number.NewComplex(-3, 0.25),
		number.NewComplex(4, 1e-14),
		number.I(),
		number.Zero(),
		number.One(),
	}
}
