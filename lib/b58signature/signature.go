// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package b58signature provides Signature, a 64-byte ledger signature
// that serializes as its base-58 text. It mirrors package b58pubkey:
// a defined type over [ledger.Signature], decoding that fails with
// [wire.ErrInvalidEncoding] on alphabet violations and with
// [wire.ErrInvalidLength] on anything that is not exactly 64 bytes.
package b58signature

import (
	"bytes"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/bureau-foundation/ledgerwire/lib/apischema"
	"github.com/bureau-foundation/ledgerwire/lib/ledger"
	"github.com/bureau-foundation/ledgerwire/lib/wire"
)

// Size is the decoded length of every Signature.
const Size = ledger.SignatureSize

// SchemaName is the API schema name of Signature.
const SchemaName = "B58Signature"

// Signature is a 64-byte signature with a base-58 text form. The zero
// value is the all-zero signature.
type Signature ledger.Signature

// New wraps a domain signature.
func New(signature ledger.Signature) Signature { return Signature(signature) }

// Parse decodes base-58 text into a Signature.
func Parse(text string) (Signature, error) {
	if text == "" {
		return Signature{}, wire.Length(SchemaName, text, 0, Size)
	}
	decoded, err := base58.Decode(text)
	if err != nil {
		return Signature{}, wire.Encoding(SchemaName, text, err)
	}
	if len(decoded) != Size {
		return Signature{}, wire.Length(SchemaName, text, len(decoded), Size)
	}
	var s Signature
	copy(s[:], decoded)
	return s, nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string) Signature {
	s, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("b58signature.MustParse(%q): %v", text, err))
	}
	return s
}

// Value returns the domain signature.
func (s Signature) Value() ledger.Signature { return ledger.Signature(s) }

func (s Signature) String() string { return base58.Encode(s[:]) }

// Compare orders signatures lexicographically by byte.
func (s Signature) Compare(other Signature) int { return bytes.Compare(s[:], other[:]) }

// MarshalText implements encoding.TextMarshaler.
func (s Signature) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty input fails
// with an InvalidLength error.
func (s *Signature) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Schema describes Signature for API documentation.
func (Signature) Schema() apischema.Descriptor {
	return apischema.String(SchemaName, "base-58 encoded signature")
}
