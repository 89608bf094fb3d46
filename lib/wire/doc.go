// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package wire defines the error taxonomy shared by every ledgerwire
// text codec.
//
// A decode either returns a fully valid value or an [*Error] whose
// [Kind] says which rule the input broke:
//
//   - [InvalidEncoding]: the text is outside the codec's alphabet
//     (base-58, base-64).
//   - [InvalidLength]: the text decoded cleanly but to the wrong number
//     of bytes for a fixed-size value.
//   - [InvalidFormat]: the text does not match the codec's grammar.
//   - [InvalidNumber]: a numeric codec rejected the text (syntax, sign,
//     overflow, precision).
//   - [InvalidRecord]: the bytes under a transaction envelope are not a
//     structurally valid record.
//
// Callers match kinds with errors.Is against the sentinel values:
//
//	if errors.Is(err, wire.ErrInvalidLength) { ... }
//
// The underlying library error stays reachable through errors.Unwrap,
// so errors.Is(err, strconv.ErrRange) also works for integer overflow.
//
// This package depends on no other ledgerwire packages.
package wire
