// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package b64tx carries ledger transactions as base-64 text.
//
// The text form is two layers. The outer layer is standard padded
// base-64 (see package b64buffer). The inner layer is the transaction's
// binary record as produced by [ledger.EncodeTransaction] or
// [ledger.EncodeVersionedTransaction]. Decoding reports which layer
// failed: text that is not base-64 fails with
// [wire.ErrInvalidEncoding]; base-64 whose bytes are not a valid
// record (truncated, trailing bytes, wrong shape, unknown message
// version, inconsistent header) fails with [wire.ErrInvalidRecord].
//
// [LegacyTx] and [VersionedTx] are separate types because their
// records are not interchangeable: a versioned record carries a
// version tag the legacy format has no room for.
//
// A wrapper exclusively owns its transaction. Values returned by
// Transaction are deep copies, so callers may mutate them freely.
package b64tx
