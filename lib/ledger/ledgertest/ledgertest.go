// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package ledgertest builds deterministic ledger records for tests.
//
// Every call returns a fresh, fully independent value, so tests may
// mutate the result to construct invalid variants.
package ledgertest

import "github.com/bureau-foundation/ledgerwire/lib/ledger"

// Pubkey returns a key whose every byte is fill.
func Pubkey(fill byte) ledger.Pubkey {
	var key ledger.Pubkey
	for i := range key {
		key[i] = fill
	}
	return key
}

// Signature returns a signature whose every byte is fill.
func Signature(fill byte) ledger.Signature {
	var signature ledger.Signature
	for i := range signature {
		signature[i] = fill
	}
	return signature
}

// Blockhash returns a hash whose every byte is fill.
func Blockhash(fill byte) ledger.Hash {
	var hash ledger.Hash
	for i := range hash {
		hash[i] = fill
	}
	return hash
}

// Message returns a valid legacy message: one writable signer (the fee
// payer), one writable recipient, and one read-only program invoked
// with a transfer-shaped instruction.
func Message() ledger.Message {
	return ledger.Message{
		Header: ledger.MessageHeader{
			NumRequiredSignatures: 1,
			NumReadonlySigned:     0,
			NumReadonlyUnsigned:   1,
		},
		AccountKeys:     []ledger.Pubkey{Pubkey(0x11), Pubkey(0x22), Pubkey(0x00)},
		RecentBlockhash: Blockhash(0x33),
		Instructions: []ledger.CompiledInstruction{
			{
				ProgramIDIndex: 2,
				Accounts:       []byte{0, 1},
				Data:           []byte{2, 0, 0, 0, 0x40, 0x42, 0x0f, 0, 0, 0, 0, 0},
			},
		},
	}
}

// Transaction returns a valid legacy transaction carrying Message.
func Transaction() ledger.Transaction {
	return ledger.Transaction{
		Signatures: []ledger.Signature{Signature(0x44)},
		Message:    Message(),
	}
}

// MessageV0 returns a valid v0 message: Message's accounts plus one
// address table lookup selecting one writable and two read-only
// entries, referenced by the instruction.
func MessageV0() ledger.MessageV0 {
	legacy := Message()
	return ledger.MessageV0{
		Header:          legacy.Header,
		AccountKeys:     legacy.AccountKeys,
		RecentBlockhash: legacy.RecentBlockhash,
		Instructions: []ledger.CompiledInstruction{
			{
				ProgramIDIndex: 2,
				// 3 is the first looked-up (writable) account,
				// 5 the last looked-up (read-only) account.
				Accounts: []byte{0, 1, 3, 5},
				Data:     []byte{9, 8, 7},
			},
		},
		AddressTableLookups: []ledger.MessageAddressTableLookup{
			{
				AccountKey:      Pubkey(0x55),
				WritableIndexes: []byte{4},
				ReadonlyIndexes: []byte{0, 7},
			},
		},
	}
}

// VersionedTransaction returns a valid versioned transaction carrying
// MessageV0.
func VersionedTransaction() ledger.VersionedTransaction {
	return ledger.VersionedTransaction{
		Signatures: []ledger.Signature{Signature(0x66)},
		Message:    ledger.NewV0Message(MessageV0()),
	}
}

// VersionedLegacyTransaction returns a valid versioned transaction
// carrying a legacy Message.
func VersionedLegacyTransaction() ledger.VersionedTransaction {
	return ledger.VersionedTransaction{
		Signatures: []ledger.Signature{Signature(0x44)},
		Message:    ledger.NewLegacyMessage(Message()),
	}
}
