// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package b64tx

import (
	"fmt"

	"github.com/bureau-foundation/ledgerwire/lib/apischema"
	"github.com/bureau-foundation/ledgerwire/lib/b64buffer"
	"github.com/bureau-foundation/ledgerwire/lib/ledger"
	"github.com/bureau-foundation/ledgerwire/lib/wire"
)

// Schema names.
const (
	LegacySchemaName    = "B64LegacyTx"
	VersionedSchemaName = "B64VersionedTx"
)

// LegacyTx is a legacy transaction with a base-64 text form. The zero
// value holds an empty transaction, which fails validation and so
// cannot be marshaled.
type LegacyTx struct {
	tx ledger.Transaction
}

// NewLegacy validates tx and wraps a private copy of it.
func NewLegacy(tx ledger.Transaction) (LegacyTx, error) {
	data, err := ledger.EncodeTransaction(&tx)
	if err != nil {
		return LegacyTx{}, wire.Record(LegacySchemaName, "", "", err)
	}
	// Decoding the encoded form yields a copy that shares no slices
	// with the caller's value.
	owned, err := ledger.DecodeTransaction(data)
	if err != nil {
		return LegacyTx{}, wire.Record(LegacySchemaName, "", "", err)
	}
	return LegacyTx{tx: owned}, nil
}

// ParseLegacy decodes base-64 text holding a legacy transaction
// record.
func ParseLegacy(text string) (LegacyTx, error) {
	data, err := b64buffer.DecodeString(text)
	if err != nil {
		return LegacyTx{}, wire.Encoding(LegacySchemaName, text, err)
	}
	tx, err := ledger.DecodeTransaction(data)
	if err != nil {
		return LegacyTx{}, wire.Record(LegacySchemaName, text, "", err)
	}
	return LegacyTx{tx: tx}, nil
}

// MustParseLegacy is like ParseLegacy but panics on error.
func MustParseLegacy(text string) LegacyTx {
	tx, err := ParseLegacy(text)
	if err != nil {
		panic(fmt.Sprintf("b64tx.MustParseLegacy: %v", err))
	}
	return tx
}

// Transaction returns a deep copy of the wrapped transaction.
func (l LegacyTx) Transaction() ledger.Transaction {
	return cloneTransaction(l.tx)
}

// Encode returns the base-64 text, or an InvalidRecord error if the
// wrapped transaction is not valid (only possible for the zero value).
func (l LegacyTx) Encode() (string, error) {
	data, err := ledger.EncodeTransaction(&l.tx)
	if err != nil {
		return "", wire.Record(LegacySchemaName, "", "", err)
	}
	return b64buffer.EncodeToString(data), nil
}

// String returns the base-64 text, or a placeholder for a transaction
// that cannot be encoded.
func (l LegacyTx) String() string {
	text, err := l.Encode()
	if err != nil {
		return "<invalid " + LegacySchemaName + ">"
	}
	return text
}

// MarshalText implements encoding.TextMarshaler.
func (l LegacyTx) MarshalText() ([]byte, error) {
	text, err := l.Encode()
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *LegacyTx) UnmarshalText(data []byte) error {
	parsed, err := ParseLegacy(string(data))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Schema describes LegacyTx for API documentation.
func (LegacyTx) Schema() apischema.Descriptor {
	return apischema.String(LegacySchemaName, "base-64 encoded legacy transaction record")
}

// VersionedTx is a versioned transaction with a base-64 text form. The
// zero value cannot be marshaled.
type VersionedTx struct {
	tx ledger.VersionedTransaction
}

// NewVersioned validates tx and wraps a private copy of it.
func NewVersioned(tx ledger.VersionedTransaction) (VersionedTx, error) {
	data, err := ledger.EncodeVersionedTransaction(&tx)
	if err != nil {
		return VersionedTx{}, wire.Record(VersionedSchemaName, "", "", err)
	}
	owned, err := ledger.DecodeVersionedTransaction(data)
	if err != nil {
		return VersionedTx{}, wire.Record(VersionedSchemaName, "", "", err)
	}
	return VersionedTx{tx: owned}, nil
}

// ParseVersioned decodes base-64 text holding a versioned transaction
// record.
func ParseVersioned(text string) (VersionedTx, error) {
	data, err := b64buffer.DecodeString(text)
	if err != nil {
		return VersionedTx{}, wire.Encoding(VersionedSchemaName, text, err)
	}
	tx, err := ledger.DecodeVersionedTransaction(data)
	if err != nil {
		return VersionedTx{}, wire.Record(VersionedSchemaName, text, "", err)
	}
	return VersionedTx{tx: tx}, nil
}

// MustParseVersioned is like ParseVersioned but panics on error.
func MustParseVersioned(text string) VersionedTx {
	tx, err := ParseVersioned(text)
	if err != nil {
		panic(fmt.Sprintf("b64tx.MustParseVersioned: %v", err))
	}
	return tx
}

// Transaction returns a deep copy of the wrapped transaction.
func (v VersionedTx) Transaction() ledger.VersionedTransaction {
	return cloneVersionedTransaction(v.tx)
}

// Version returns the message version of the wrapped transaction.
func (v VersionedTx) Version() (ledger.MessageVersion, error) {
	return v.tx.Message.Version()
}

// Encode returns the base-64 text, or an InvalidRecord error if the
// wrapped transaction is not valid.
func (v VersionedTx) Encode() (string, error) {
	data, err := ledger.EncodeVersionedTransaction(&v.tx)
	if err != nil {
		return "", wire.Record(VersionedSchemaName, "", "", err)
	}
	return b64buffer.EncodeToString(data), nil
}

// String returns the base-64 text, or a placeholder for a transaction
// that cannot be encoded.
func (v VersionedTx) String() string {
	text, err := v.Encode()
	if err != nil {
		return "<invalid " + VersionedSchemaName + ">"
	}
	return text
}

// MarshalText implements encoding.TextMarshaler.
func (v VersionedTx) MarshalText() ([]byte, error) {
	text, err := v.Encode()
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *VersionedTx) UnmarshalText(data []byte) error {
	parsed, err := ParseVersioned(string(data))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Schema describes VersionedTx for API documentation.
func (VersionedTx) Schema() apischema.Descriptor {
	return apischema.String(VersionedSchemaName, "base-64 encoded versioned transaction record")
}
