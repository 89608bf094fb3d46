// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package decimalstr

import (
	"fmt"
	"math/big"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/bureau-foundation/ledgerwire/lib/apischema"
	"github.com/bureau-foundation/ledgerwire/lib/wire"
)

// SchemaName is the API schema name of Decimal.
const SchemaName = "DecimalStr"

// MaxScale is the most fractional digits a Decimal may carry.
const MaxScale = 28

// MaxCoefficientBits bounds the magnitude of the unscaled integer.
const MaxCoefficientBits = 96

var grammar = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// Decimal is a signed decimal number. The zero value is 0.
type Decimal struct {
	value decimal.Decimal
}

// Parse decodes decimal text.
func Parse(text string) (Decimal, error) {
	if !grammar.MatchString(text) {
		return Decimal{}, wire.Number(SchemaName, text, `want -?digits[.digits]`, nil)
	}
	value, err := decimal.NewFromString(text)
	if err != nil {
		return Decimal{}, wire.Number(SchemaName, text, "", err)
	}
	if err := checkBounds(value); err != nil {
		return Decimal{}, wire.Number(SchemaName, text, err.Error(), nil)
	}
	return Decimal{value: value}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string) Decimal {
	d, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("decimalstr.MustParse(%q): %v", text, err))
	}
	return d
}

// New wraps a shopspring decimal, enforcing the same bounds as Parse.
func New(value decimal.Decimal) (Decimal, error) {
	if err := checkBounds(value); err != nil {
		return Decimal{}, wire.Number(SchemaName, value.String(), err.Error(), nil)
	}
	return Decimal{value: value}, nil
}

// checkBounds rejects values whose scale or coefficient exceeds what a
// 96-bit decimal holds. A positive exponent scales the coefficient up
// rather than adding fractional digits.
func checkBounds(value decimal.Decimal) error {
	coefficient := value.Coefficient()
	exponent := value.Exponent()
	if exponent < -MaxScale {
		return fmt.Errorf("scale %d exceeds %d fractional digits", -exponent, MaxScale)
	}
	if exponent > 0 {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exponent)), nil)
		coefficient.Mul(coefficient, scale)
	}
	if coefficient.BitLen() > MaxCoefficientBits {
		return fmt.Errorf("coefficient needs %d bits, maximum is %d", coefficient.BitLen(), MaxCoefficientBits)
	}
	return nil
}

// Value returns the underlying shopspring decimal.
func (d Decimal) Value() decimal.Decimal { return d.value }

// String returns the canonical text: no exponent, trailing fractional
// zeros trimmed.
func (d Decimal) String() string { return d.value.String() }

// Equal reports numeric equality.
func (d Decimal) Equal(other Decimal) bool { return d.value.Equal(other.value) }

// Compare returns -1, 0 or +1 by numeric value.
func (d Decimal) Compare(other Decimal) int { return d.value.Cmp(other.value) }

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Schema describes Decimal for API documentation.
func (Decimal) Schema() apischema.Descriptor {
	return apischema.String(SchemaName, "decimal serialized as a string")
}
