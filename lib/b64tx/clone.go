// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package b64tx

import (
	"slices"

	"github.com/bureau-foundation/ledgerwire/lib/ledger"
)

// The clone helpers preserve nil versus empty slices: the two encode
// differently, and a clone must encode to the same bytes.

func cloneTransaction(tx ledger.Transaction) ledger.Transaction {
	return ledger.Transaction{
		Signatures: slices.Clone(tx.Signatures),
		Message:    cloneMessage(tx.Message),
	}
}

func cloneVersionedTransaction(tx ledger.VersionedTransaction) ledger.VersionedTransaction {
	clone := ledger.VersionedTransaction{Signatures: slices.Clone(tx.Signatures)}
	if tx.Message.Legacy != nil {
		message := cloneMessage(*tx.Message.Legacy)
		clone.Message.Legacy = &message
	}
	if tx.Message.V0 != nil {
		message := cloneMessageV0(*tx.Message.V0)
		clone.Message.V0 = &message
	}
	return clone
}

func cloneMessage(message ledger.Message) ledger.Message {
	return ledger.Message{
		Header:          message.Header,
		AccountKeys:     slices.Clone(message.AccountKeys),
		RecentBlockhash: message.RecentBlockhash,
		Instructions:    cloneInstructions(message.Instructions),
	}
}

func cloneMessageV0(message ledger.MessageV0) ledger.MessageV0 {
	clone := ledger.MessageV0{
		Header:          message.Header,
		AccountKeys:     slices.Clone(message.AccountKeys),
		RecentBlockhash: message.RecentBlockhash,
		Instructions:    cloneInstructions(message.Instructions),
	}
	if message.AddressTableLookups != nil {
		clone.AddressTableLookups = make([]ledger.MessageAddressTableLookup, len(message.AddressTableLookups))
		for i, lookup := range message.AddressTableLookups {
			clone.AddressTableLookups[i] = ledger.MessageAddressTableLookup{
				AccountKey:      lookup.AccountKey,
				WritableIndexes: slices.Clone(lookup.WritableIndexes),
				ReadonlyIndexes: slices.Clone(lookup.ReadonlyIndexes),
			}
		}
	}
	return clone
}

func cloneInstructions(instructions []ledger.CompiledInstruction) []ledger.CompiledInstruction {
	if instructions == nil {
		return nil
	}
	clone := make([]ledger.CompiledInstruction, len(instructions))
	for i, instruction := range instructions {
		clone[i] = ledger.CompiledInstruction{
			ProgramIDIndex: instruction.ProgramIDIndex,
			Accounts:       slices.Clone(instruction.Accounts),
			Data:           slices.Clone(instruction.Data),
		}
	}
	return clone
}
