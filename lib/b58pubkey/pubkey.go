// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package b58pubkey

import (
	"bytes"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/bureau-foundation/ledgerwire/lib/apischema"
	"github.com/bureau-foundation/ledgerwire/lib/ledger"
	"github.com/bureau-foundation/ledgerwire/lib/wire"
)

// Size is the decoded length of every Pubkey.
const Size = ledger.PubkeySize

// SchemaName is the API schema name of Pubkey.
const SchemaName = "B58Pubkey"

// Pubkey is a 32-byte public key with a base-58 text form. The zero
// value is the all-zero key, which is valid and encodes as 32 '1'
// characters.
type Pubkey ledger.Pubkey

// New wraps a domain key.
func New(key ledger.Pubkey) Pubkey { return Pubkey(key) }

// Parse decodes base-58 text into a Pubkey.
func Parse(text string) (Pubkey, error) {
	// base58.Decode rejects "" outright; report it as zero decoded
	// bytes like any other wrong length.
	if text == "" {
		return Pubkey{}, wire.Length(SchemaName, text, 0, Size)
	}
	decoded, err := base58.Decode(text)
	if err != nil {
		return Pubkey{}, wire.Encoding(SchemaName, text, err)
	}
	if len(decoded) != Size {
		return Pubkey{}, wire.Length(SchemaName, text, len(decoded), Size)
	}
	var p Pubkey
	copy(p[:], decoded)
	return p, nil
}

// MustParse is like Parse but panics on error. Use in tests and static
// initialization where the input is known-valid.
func MustParse(text string) Pubkey {
	p, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("b58pubkey.MustParse(%q): %v", text, err))
	}
	return p
}

// Key returns the domain key.
func (p Pubkey) Key() ledger.Pubkey { return ledger.Pubkey(p) }

// String returns the base-58 encoding of the key.
func (p Pubkey) String() string { return base58.Encode(p[:]) }

// Compare orders keys lexicographically by byte.
func (p Pubkey) Compare(other Pubkey) int { return bytes.Compare(p[:], other[:]) }

// MarshalText implements encoding.TextMarshaler. It never fails.
func (p Pubkey) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unlike most
// optional text fields, empty input is not "unset": it decodes to zero
// bytes and fails with an InvalidLength error.
func (p *Pubkey) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Schema describes Pubkey for API documentation.
func (Pubkey) Schema() apischema.Descriptor {
	return apischema.String(SchemaName, "base-58 encoded pubkey")
}
