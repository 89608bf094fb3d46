// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ledger

import (
	"errors"
	"fmt"
)

// MaxAccounts is the most accounts one message can address: account
// indexes are single bytes.
const MaxAccounts = 256

// ErrMalformed is wrapped by every structural validation failure.
var ErrMalformed = errors.New("malformed record")

// Sanitize checks that the message's header and instruction indexes
// are consistent with its account list.
func (m *Message) Sanitize() error {
	return sanitizeMessage(m.Header, len(m.AccountKeys), 0, m.Instructions)
}

// Sanitize checks the v0 message: the legacy rules, with instruction
// indexes allowed to reach into the looked-up accounts, and every
// lookup selecting at least one entry.
func (m *MessageV0) Sanitize() error {
	lookupKeys := 0
	for i, lookup := range m.AddressTableLookups {
		selected := len(lookup.WritableIndexes) + len(lookup.ReadonlyIndexes)
		if selected == 0 {
			return malformed("address table lookup %d (%s) selects no entries", i, lookup.AccountKey)
		}
		lookupKeys += selected
	}
	return sanitizeMessage(m.Header, len(m.AccountKeys), lookupKeys, m.Instructions)
}

// Sanitize checks whichever message body is set.
func (m *VersionedMessage) Sanitize() error {
	version, err := m.Version()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if version == MessageVersionLegacy {
		return m.Legacy.Sanitize()
	}
	return m.V0.Sanitize()
}

// Sanitize checks the message and that there is exactly one signature
// per required signer.
func (t *Transaction) Sanitize() error {
	if err := t.Message.Sanitize(); err != nil {
		return err
	}
	return checkSignatureCount(len(t.Signatures), t.Message.Header)
}

// Sanitize checks the message and that there is exactly one signature
// per required signer.
func (t *VersionedTransaction) Sanitize() error {
	if err := t.Message.Sanitize(); err != nil {
		return err
	}
	return checkSignatureCount(len(t.Signatures), t.Message.Header())
}

func checkSignatureCount(count int, header MessageHeader) error {
	if count != int(header.NumRequiredSignatures) {
		return malformed("transaction has %d signatures, header requires %d", count, header.NumRequiredSignatures)
	}
	return nil
}

// sanitizeMessage applies the rules shared by both message formats.
// staticKeys is the inline account count; lookupKeys is the number of
// accounts loaded from address tables (zero for legacy messages).
func sanitizeMessage(header MessageHeader, staticKeys, lookupKeys int, instructions []CompiledInstruction) error {
	required := int(header.NumRequiredSignatures)
	if required > staticKeys {
		return malformed("header requires %d signatures but message lists %d account keys", required, staticKeys)
	}
	// The fee payer is the first signer and must be writable, so at
	// least one signer is not read-only.
	if header.NumReadonlySigned >= header.NumRequiredSignatures {
		return malformed("%d read-only signers out of %d required signatures leaves no writable fee payer",
			header.NumReadonlySigned, header.NumRequiredSignatures)
	}
	if unsigned := staticKeys - required; int(header.NumReadonlyUnsigned) > unsigned {
		return malformed("header marks %d unsigned accounts read-only but message has %d unsigned account keys",
			header.NumReadonlyUnsigned, unsigned)
	}

	total := staticKeys + lookupKeys
	if total > MaxAccounts {
		return malformed("message addresses %d accounts, maximum is %d", total, MaxAccounts)
	}

	for i, instruction := range instructions {
		// Programs must be named inline: a lookup table cannot
		// supply the program being invoked.
		programIndex := int(instruction.ProgramIDIndex)
		if programIndex >= staticKeys {
			return malformed("instruction %d program index %d is outside the %d account keys", i, programIndex, staticKeys)
		}
		if programIndex == 0 {
			return malformed("instruction %d invokes the fee payer as a program", i)
		}
		for position, account := range instruction.Accounts {
			if int(account) >= total {
				return malformed("instruction %d account %d has index %d, message addresses %d accounts",
					i, position, account, total)
			}
		}
	}
	return nil
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}
