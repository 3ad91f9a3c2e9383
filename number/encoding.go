// SPDX-License-Identifier: MIT

// Package number: text, JSON and YAML encoding.
//
// Number is an interface, so decoders cannot target it directly. Value wraps
// a Number and implements encoding.TextMarshaler/TextUnmarshaler (picked up
// by encoding/json) and yaml.Marshaler/Unmarshaler (gopkg.in/yaml.v3).
//
// The encoded text uses shortest round-trip digits for each component
// ("0.1+2.5e-07i"), so decode(encode(v)) equals v exactly for finite values.
// Any infinite component encodes as "∞" and any NaN as "?", which decode as
// Real values.
package number

import (
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Value is a decodable holder for a Number. The zero Value holds nil and
// encodes as "0". Value is not itself a Number; unwrap it with Get.
type Value struct {
	n Number
}

// ValueOf wraps n.
func ValueOf(n Number) Value { return Value{n: n} }

// Get returns the held Number, substituting Real(0) for nil.
func (v Value) Get() Number {
	if v.n == nil {
		return Real(0)
	}

	return v.n
}

// String renders the held Number with DefaultLayout.
func (v Value) String() string { return v.Get().String() }

// MarshalText implements encoding.TextMarshaler.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(encodeText(v.n)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Value) UnmarshalText(text []byte) error {
	n, err := Parse(string(text))
	if err != nil {
		return err
	}
	v.n = n

	return nil
}

// MarshalYAML implements yaml.Marshaler; the value is emitted as a scalar string.
func (v Value) MarshalYAML() (interface{}, error) {
	return encodeText(v.n), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Only scalar nodes are accepted.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return numberErrorf("UnmarshalYAML", node.Tag, ErrSyntax)
	}

	return v.UnmarshalText([]byte(node.Value))
}

// encodeText renders n losslessly in the Parse grammar.
func encodeText(n Number) string {
	switch v := n.(type) {
	case nil:
		return "0"
	case Real:
		return encodeSpecial(float64(v), 0, formatComponent(float64(v)))
	case Complex:
		sign := "+"
		if math.Signbit(v.Im) {
			sign = "-"
		}
		text := formatComponent(v.Re) + sign + formatComponent(math.Abs(v.Im)) + "i"

		return encodeSpecial(v.Re, v.Im, text)
	default:
		return n.String()
	}
}

// encodeSpecial substitutes the ∞ / ? symbols when a component is not finite.
func encodeSpecial(re, im float64, text string) string {
	switch {
	case math.IsInf(re, 0) || math.IsInf(im, 0):
		if math.IsInf(re, -1) && im == 0 {
			return "-" + symInf
		}
		return symInf
	case math.IsNaN(re) || math.IsNaN(im):
		return symNaN
	}

	return text
}

func formatComponent(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
