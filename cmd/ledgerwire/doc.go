// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// ledgerwire decodes, encodes and checks the text forms of ledger
// values: base-58 pubkeys and signatures, base-64 buffers and
// transactions, and decimal and u64 strings.
//
// Usage:
//
//	ledgerwire [--config path] [--format json|yaml] <command> [args...]
//
//	ledgerwire decode <type> <text>
//	ledgerwire encode <type> <input>
//	ledgerwire check <file.jsonc>
//	ledgerwire schema
//	ledgerwire types
//	ledgerwire version
//
// Types are pubkey, signature, buffer, decimal, u64, legacy-tx and
// versioned-tx. Reports are printed to stdout as JSON or YAML;
// diagnostics go to stderr through slog.
//
// Exit status is 0 on success, 1 when a value fails to decode or a
// check entry misses its expectation, and 2 for usage errors.
package main
