// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ledger

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/bureau-foundation/ledgerwire/lib/codec"
)

// Transaction is a legacy transaction: signatures over a legacy
// message.
type Transaction struct {
	_ struct{} `cbor:",toarray"`

	Signatures []Signature
	Message    Message
}

// VersionedTransaction is a transaction whose message may be in any
// supported format.
type VersionedTransaction struct {
	_ struct{} `cbor:",toarray"`

	Signatures []Signature
	Message    VersionedMessage
}

// ErrNonCanonical is wrapped when record bytes decode successfully but
// are not the encoding this package would produce for that record
// (non-minimal integers, indefinite lengths, arrays where byte strings
// belong). Rejecting them keeps one byte sequence per record.
var ErrNonCanonical = errors.New("non-canonical record encoding")

// EncodeTransaction validates tx and returns its record bytes.
func EncodeTransaction(tx *Transaction) ([]byte, error) {
	if err := tx.Sanitize(); err != nil {
		return nil, err
	}
	return codec.Marshal(tx)
}

// DecodeTransaction parses record bytes produced by EncodeTransaction.
// It fails on empty, truncated, trailing, non-canonical or
// structurally invalid input.
func DecodeTransaction(data []byte) (Transaction, error) {
	var tx Transaction
	if err := decodeRecord(data, &tx); err != nil {
		return Transaction{}, err
	}
	if err := tx.Sanitize(); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// EncodeVersionedTransaction validates tx and returns its record
// bytes.
func EncodeVersionedTransaction(tx *VersionedTransaction) ([]byte, error) {
	if err := tx.Sanitize(); err != nil {
		return nil, err
	}
	return codec.Marshal(tx)
}

// DecodeVersionedTransaction parses record bytes produced by
// EncodeVersionedTransaction, with the same strictness as
// DecodeTransaction.
func DecodeVersionedTransaction(data []byte) (VersionedTransaction, error) {
	var tx VersionedTransaction
	if err := decodeRecord(data, &tx); err != nil {
		return VersionedTransaction{}, err
	}
	if err := tx.Sanitize(); err != nil {
		return VersionedTransaction{}, err
	}
	return tx, nil
}

// decodeRecord unmarshals data into record and confirms that
// re-encoding reproduces data exactly.
func decodeRecord(data []byte, record any) error {
	if err := codec.Unmarshal(data, record); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	canonical, err := codec.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: re-encoding decoded record: %w", ErrMalformed, err)
	}
	if !bytes.Equal(canonical, data) {
		return fmt.Errorf("%w: %w", ErrMalformed, ErrNonCanonical)
	}
	return nil
}
