// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package decimalstr provides Decimal, a bounded-precision signed
// decimal that serializes as its base-10 string.
//
// The accepted grammar is deliberately narrow:
//
//	-?[0-9]+(\.[0-9]+)?
//
// No leading '+', no exponent, no whitespace, no bare ".5" or "5.".
// Values are bounded the way a 96-bit-coefficient decimal is: at most
// [MaxScale] fractional digits and a coefficient magnitude below 2^96.
// Anything outside the grammar or the bounds fails with
// [wire.ErrInvalidNumber].
//
// The canonical text form trims trailing fractional zeros, so "-3.1400"
// decodes and re-encodes as "-3.14", "1.0" as "1", and "-0" as "0".
// Equality and ordering are numeric: "1.0" and "1.00" are Equal.
// Round trips are therefore value-preserving, not byte-preserving.
package decimalstr
