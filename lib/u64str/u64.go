// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package u64str provides U64, an unsigned 64-bit integer that
// serializes as a decimal string. JSON consumers that read numbers as
// IEEE doubles lose precision above 2^53; carrying the value as a
// string keeps all 64 bits.
//
// Parsing accepts one or more ASCII digits and nothing else: no sign,
// no whitespace, no underscores, no base prefix. Leading zeros are
// accepted and dropped on re-encode ("007" becomes "7").
package u64str

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/bureau-foundation/ledgerwire/lib/apischema"
	"github.com/bureau-foundation/ledgerwire/lib/wire"
)

// SchemaName is the API schema name of U64.
const SchemaName = "U64Str"

// U64 is a uint64 with a decimal text form.
type U64 uint64

// Parse decodes decimal digits. Out-of-range input fails with an
// InvalidNumber error wrapping strconv.ErrRange; anything else that is
// not all digits wraps strconv.ErrSyntax.
func Parse(text string) (U64, error) {
	value, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		detail := "want decimal digits"
		var numError *strconv.NumError
		if errors.As(err, &numError) {
			err = numError.Err
		}
		if errors.Is(err, strconv.ErrRange) {
			detail = "exceeds " + strconv.FormatUint(math.MaxUint64, 10)
		}
		return 0, wire.Number(SchemaName, text, detail, err)
	}
	return U64(value), nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string) U64 {
	v, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("u64str.MustParse(%q): %v", text, err))
	}
	return v
}

// Uint64 returns the value.
func (v U64) Uint64() uint64 { return uint64(v) }

func (v U64) String() string { return strconv.FormatUint(uint64(v), 10) }

// Compare returns -1, 0 or +1.
func (v U64) Compare(other U64) int { return cmp.Compare(v, other) }

// MarshalText implements encoding.TextMarshaler.
func (v U64) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(v), 10), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *U64) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Schema describes U64 for API documentation.
func (U64) Schema() apischema.Descriptor {
	return apischema.String(SchemaName, "unsigned 64-bit integer serialized as a string")
}
