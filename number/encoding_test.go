// SPDX-License-Identifier: MIT

package number_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvnum/number"
)

type document struct {
	Z number.Value `json:"z" yaml:"z"`
}

func TestValue_JSON(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(document{Z: number.ValueOf(number.NewComplex(1, 2))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"z":"1+2i"}`, string(out))

	out, err = json.Marshal(document{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"z":"0"}`, string(out), "zero Value")

	var doc document
	require.NoError(t, json.Unmarshal([]byte(`{"z":"3-4i"}`), &doc))
	assert.Equal(t, number.NewComplex(3, -4), doc.Z.Get())
	assert.Equal(t, "3-4i", doc.Z.String())

	err = json.Unmarshal([]byte(`{"z":"x"}`), &doc)
	require.ErrorIs(t, err, number.ErrSyntax)
}

func TestValue_YAML(t *testing.T) {
	t.Parallel()

	out, err := yaml.Marshal(document{Z: number.ValueOf(number.NewComplex(1, 2))})
	require.NoError(t, err)
	assert.Equal(t, "z: 1+2i\n", string(out))

	var doc document
	require.NoError(t, yaml.Unmarshal([]byte("z: 0.5\n"), &doc))
	assert.Equal(t, number.Real(0.5), doc.Z.Get())

	require.NoError(t, yaml.Unmarshal([]byte("z: 2-i\n"), &doc))
	assert.Equal(t, number.NewComplex(2, -1), doc.Z.Get())

	err = yaml.Unmarshal([]byte("z: [1, 2]\n"), &doc)
	require.ErrorIs(t, err, number.ErrSyntax)
}

// TestValue_TextLossless checks that finite values survive encoding exactly,
// unlike String which rounds to the default layout.
func TestValue_TextLossless(t *testing.T) {
	t.Parallel()

	for _, n := range []number.Number{
		number.NewReal(1.0 / 3),
		number.NewReal(-1e-300),
		number.NewReal(6.02214076e23),
		number.NewComplex(0.1, -2.5e-7),
		number.NewComplex(-1.5, 1.0/7),
		number.NewComplex(0, 1e-9),
	} {
		text, err := number.ValueOf(n).MarshalText()
		require.NoError(t, err)

		var v number.Value
		require.NoError(t, v.UnmarshalText(text), string(text))
		assert.Equal(t, n, v.Get(), "decode(%q)", text)
	}

	text, err := number.ValueOf(number.NewComplex(0.1, -2.5e-7)).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "0.1-2.5e-07i", string(text))
}

func TestValue_TextSpecials(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   number.Number
		want string
	}{
		{number.NewReal(math.Inf(1)), "∞"},
		{number.NewReal(math.Inf(-1)), "-∞"},
		{number.NewReal(math.NaN()), "?"},
		{number.NewComplex(math.Inf(-1), 1), "∞"},
		{number.NewComplex(1, math.NaN()), "?"},
	}
	for _, tc := range cases {
		text, err := number.ValueOf(tc.in).MarshalText()
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(text))
	}
}
