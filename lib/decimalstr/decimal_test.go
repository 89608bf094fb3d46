// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package decimalstr

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/ledgerwire/lib/codec"
	"github.com/bureau-foundation/ledgerwire/lib/wire"
)

func TestParseCanonicalForm(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"3.14", "3.14"},
		{"-3.1400", "-3.14"},
		{"1.0", "1"},
		{"1.00", "1"},
		{"0", "0"},
		{"-0", "0"},
		{"-0.00", "0"},
		{"007.50", "7.5"},
		{"0.0000000000000000000000000001", "0.0000000000000000000000000001"},
		{"79228162514264337593543950335", "79228162514264337593543950335"},
		{"-79228162514264337593543950335", "-79228162514264337593543950335"},
		{"7.9228162514264337593543950335", "7.9228162514264337593543950335"},
	}

	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			parsed, err := Parse(test.text)
			if err != nil {
				t.Fatalf("Parse(%q): %v", test.text, err)
			}
			if got := parsed.String(); got != test.want {
				t.Errorf("String() = %q, want %q", got, test.want)
			}

			// The canonical form is a fixed point.
			again, err := Parse(parsed.String())
			if err != nil {
				t.Fatalf("Parse(%q): %v", parsed.String(), err)
			}
			if !again.Equal(parsed) || again.String() != parsed.String() {
				t.Errorf("canonical form %q did not round-trip", parsed.String())
			}
		})
	}
}

func TestNegativeFractionRoundtrip(t *testing.T) {
	parsed := MustParse("-3.1400")
	if !parsed.Equal(MustParse("-3.14")) {
		t.Error("-3.1400 should equal -3.14")
	}
	if !parsed.Value().Equal(decimal.RequireFromString("-3.14")) {
		t.Errorf("Value() = %s, want -3.14", parsed.Value())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"sign only", "-"},
		{"leading plus", "+1"},
		{"double sign", "--1"},
		{"two points", "1.2.3"},
		{"bare point", "."},
		{"no integer digits", ".5"},
		{"no fraction digits", "5."},
		{"exponent", "1e5"},
		{"leading space", " 1"},
		{"trailing space", "1 "},
		{"letters", "abc"},
		{"comma", "1,5"},
		{"infinity", "Inf"},
		{"scale 29", "0." + strings.Repeat("0", 28) + "1"},
		{"coefficient 2^96", "79228162514264337593543950336"},
		{"coefficient 2^96 scaled", "7922816251426433759354395033.6"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, err := Parse(test.text)
			if err == nil {
				t.Fatalf("Parse(%q) = %s, want error", test.text, d)
			}
			if !errors.Is(err, wire.ErrInvalidNumber) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidNumber", test.text, err)
			}
		})
	}
}

func TestNewEnforcesBounds(t *testing.T) {
	if _, err := New(decimal.New(5, -MaxScale)); err != nil {
		t.Errorf("New at maximum scale: %v", err)
	}
	if _, err := New(decimal.New(5, -MaxScale-1)); !errors.Is(err, wire.ErrInvalidNumber) {
		t.Errorf("New past maximum scale: error = %v, want ErrInvalidNumber", err)
	}

	// 10^29 has a 97-bit coefficient once the exponent is applied.
	if _, err := New(decimal.New(1, 29)); !errors.Is(err, wire.ErrInvalidNumber) {
		t.Errorf("New(1e29): error = %v, want ErrInvalidNumber", err)
	}
	hundred, err := New(decimal.New(1, 2))
	if err != nil {
		t.Fatalf("New(1e2): %v", err)
	}
	if hundred.String() != "100" {
		t.Errorf("New(1e2).String() = %q, want 100", hundred.String())
	}
}

func TestCompareIsNumeric(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0", "1.00", 0},
		{"1.0", "1", 0},
		{"-0", "0", 0},
		{"2", "10", -1},
		{"-1", "-0.5", -1},
		{"0.30", "0.3", 0},
		{"100", "99.999", 1},
	}
	for _, test := range tests {
		got := MustParse(test.a).Compare(MustParse(test.b))
		if got != test.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", test.a, test.b, got, test.want)
		}
		if equal := MustParse(test.a).Equal(MustParse(test.b)); equal != (test.want == 0) {
			t.Errorf("Equal(%s, %s) = %v", test.a, test.b, equal)
		}
	}
}

func TestZeroValue(t *testing.T) {
	var zero Decimal
	if zero.String() != "0" {
		t.Errorf("zero value String() = %q, want 0", zero.String())
	}
	if !zero.Equal(MustParse("0.000")) {
		t.Error("zero value should equal 0.000")
	}
}

type quote struct {
	Price Decimal `json:"price" yaml:"price" cbor:"price"`
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal(quote{Price: MustParse("-3.1400")})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `{"price":"-3.14"}` {
		t.Errorf("JSON = %s", data)
	}

	var decoded quote
	if err := json.Unmarshal([]byte(`{"price":"12.500"}`), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Price.String() != "12.5" {
		t.Errorf("decoded price = %s, want 12.5", decoded.Price)
	}

	// A JSON number is not the string form.
	if err := json.Unmarshal([]byte(`{"price":12.5}`), &decoded); err == nil {
		t.Error("a bare JSON number should not decode")
	}
	if err := json.Unmarshal([]byte(`{"price":"1e3"}`), &decoded); !errors.Is(err, wire.ErrInvalidNumber) {
		t.Errorf("exponent form: error = %v, want ErrInvalidNumber", err)
	}
}

func TestYAMLAndCBOR(t *testing.T) {
	original := quote{Price: MustParse("0.0001")}

	yamlData, err := yaml.Marshal(original)
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}
	var fromYAML quote
	if err := yaml.Unmarshal(yamlData, &fromYAML); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	if !fromYAML.Price.Equal(original.Price) {
		t.Errorf("YAML roundtrip = %s, want %s", fromYAML.Price, original.Price)
	}

	cborData, err := codec.Marshal(original)
	if err != nil {
		t.Fatalf("codec.Marshal: %v", err)
	}
	var fromCBOR quote
	if err := codec.Unmarshal(cborData, &fromCBOR); err != nil {
		t.Fatalf("codec.Unmarshal: %v", err)
	}
	if !fromCBOR.Price.Equal(original.Price) {
		t.Errorf("CBOR roundtrip = %s, want %s", fromCBOR.Price, original.Price)
	}
}

func TestSchema(t *testing.T) {
	if got := (Decimal{}).Schema(); got.Name != "DecimalStr" || got.Description != "decimal serialized as a string" {
		t.Errorf("Schema() = %+v", got)
	}
}
