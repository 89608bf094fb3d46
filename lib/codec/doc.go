// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec is the binary record serializer behind ledgerwire's
// transaction envelopes.
//
// Transaction records are serialized as CBOR using Core Deterministic
// Encoding (RFC 8949 §4.2): smallest integer encoding, no
// indefinite-length items, sorted map keys. The same logical record
// always produces identical bytes, which is what makes the base-64
// envelope text canonical.
//
// Records are declared as Go structs with the `toarray` option, so
// each struct is a positional CBOR array. Field order is the wire
// order:
//
//	type MessageHeader struct {
//		_ struct{} `cbor:",toarray"`
//		NumRequiredSignatures uint8
//		...
//	}
//
// Fixed-size byte values (keys, signatures, hashes) implement
// encoding.BinaryMarshaler and encoding.BinaryUnmarshaler and travel as
// CBOR byte strings; their UnmarshalBinary is what rejects a 31-byte
// key, since plain array decoding would zero-fill it. Wrapper types
// that implement encoding.TextMarshaler travel as CBOR text strings.
//
//	data, err := codec.Marshal(record)
//	err = codec.Unmarshal(data, &record)
//
// Unmarshal is strict: empty input, truncated input, and trailing bytes
// after the first item are all errors.
package codec
