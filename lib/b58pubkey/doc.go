// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package b58pubkey provides Pubkey, a 32-byte ledger public key that
// serializes as its base-58 text.
//
// Pubkey is a defined type over [ledger.Pubkey], so the key bytes are
// directly addressable (p[0], p[:]) and convert to the domain type with
// a plain conversion. Use it as a field type wherever a key crosses a
// text boundary: JSON and YAML documents, CBOR maps, command-line
// arguments. The domain packages keep using [ledger.Pubkey], which
// encodes as raw bytes in binary records.
//
// Decoding is total-or-fails: text that is not base-58 fails with
// [wire.ErrInvalidEncoding]; base-58 that decodes to anything other
// than exactly 32 bytes (including the empty string) fails with
// [wire.ErrInvalidLength].
package b58pubkey
