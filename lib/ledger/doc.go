// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package ledger defines the domain values that ledgerwire's text
// codecs wrap: 32-byte public keys, 64-byte signatures, 32-byte
// hashes, and transaction records in legacy and versioned form.
//
// Fixed-size values are byte arrays. Their native text form is base-58
// ([ParsePubkey], [Pubkey.String]); their binary form is the raw bytes
// ([Pubkey.MarshalBinary]), which is how they appear inside records.
//
// Transaction records are serialized by lib/codec as positional CBOR
// arrays. [EncodeTransaction] and [DecodeTransaction] (and their
// versioned counterparts) are the only entry points that produce or
// accept record bytes, and both enforce the structural rules in
// [Message.Sanitize] and [Transaction.Sanitize]. Decoding additionally
// requires the input to be the canonical encoding of the record it
// describes, so decode followed by encode reproduces the input
// byte-for-byte.
//
// Nothing in this package verifies signatures. A record that passes
// Sanitize is well-formed, not authorized.
package ledger
