// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ledger_test

import (
	"errors"
	"testing"

	"github.com/bureau-foundation/ledgerwire/lib/ledger"
	"github.com/bureau-foundation/ledgerwire/lib/ledger/ledgertest"
)

func TestMessageSanitize(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ledger.Message)
	}{
		{"more signers than keys", func(m *ledger.Message) {
			m.Header.NumRequiredSignatures = 4
		}},
		{"no writable signer", func(m *ledger.Message) {
			m.Header.NumReadonlySigned = 1
		}},
		{"no signers", func(m *ledger.Message) {
			m.Header.NumRequiredSignatures = 0
		}},
		{"too many read-only unsigned", func(m *ledger.Message) {
			m.Header.NumReadonlyUnsigned = 3
		}},
		{"program index past keys", func(m *ledger.Message) {
			m.Instructions[0].ProgramIDIndex = 3
		}},
		{"program is fee payer", func(m *ledger.Message) {
			m.Instructions[0].ProgramIDIndex = 0
		}},
		{"account index past keys", func(m *ledger.Message) {
			m.Instructions[0].Accounts = []byte{0, 3}
		}},
		{"too many accounts", func(m *ledger.Message) {
			m.AccountKeys = make([]ledger.Pubkey, ledger.MaxAccounts+1)
		}},
	}

	valid := ledgertest.Message()
	if err := valid.Sanitize(); err != nil {
		t.Fatalf("fixture message should be valid: %v", err)
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			message := ledgertest.Message()
			test.mutate(&message)
			err := message.Sanitize()
			if err == nil {
				t.Fatal("Sanitize should fail")
			}
			if !errors.Is(err, ledger.ErrMalformed) {
				t.Errorf("expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestMessageSanitizeAcceptsMaxAccounts(t *testing.T) {
	message := ledgertest.Message()
	keys := make([]ledger.Pubkey, ledger.MaxAccounts)
	copy(keys, message.AccountKeys)
	message.AccountKeys = keys
	message.Header.NumReadonlyUnsigned = 1

	if err := message.Sanitize(); err != nil {
		t.Errorf("message with %d accounts should be valid: %v", ledger.MaxAccounts, err)
	}
}

func TestMessageV0Sanitize(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ledger.MessageV0)
	}{
		{"empty lookup", func(m *ledger.MessageV0) {
			m.AddressTableLookups[0].WritableIndexes = nil
			m.AddressTableLookups[0].ReadonlyIndexes = nil
		}},
		{"account index past lookups", func(m *ledger.MessageV0) {
			m.Instructions[0].Accounts = []byte{0, 6}
		}},
		{"program from lookup", func(m *ledger.MessageV0) {
			m.Instructions[0].ProgramIDIndex = 3
		}},
		{"lookups push past maximum", func(m *ledger.MessageV0) {
			m.AddressTableLookups[0].ReadonlyIndexes = make([]byte, ledger.MaxAccounts)
		}},
	}

	valid := ledgertest.MessageV0()
	if err := valid.Sanitize(); err != nil {
		t.Fatalf("fixture v0 message should be valid: %v", err)
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			message := ledgertest.MessageV0()
			test.mutate(&message)
			if err := message.Sanitize(); !errors.Is(err, ledger.ErrMalformed) {
				t.Errorf("Sanitize() = %v, want ErrMalformed", err)
			}
		})
	}
}

func TestTransactionSanitizeSignatureCount(t *testing.T) {
	tests := []struct {
		name       string
		signatures []ledger.Signature
	}{
		{"none", nil},
		{"too many", []ledger.Signature{ledgertest.Signature(1), ledgertest.Signature(2)}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tx := ledgertest.Transaction()
			tx.Signatures = test.signatures
			if err := tx.Sanitize(); !errors.Is(err, ledger.ErrMalformed) {
				t.Errorf("Transaction.Sanitize() = %v, want ErrMalformed", err)
			}

			versioned := ledgertest.VersionedTransaction()
			versioned.Signatures = test.signatures
			if err := versioned.Sanitize(); !errors.Is(err, ledger.ErrMalformed) {
				t.Errorf("VersionedTransaction.Sanitize() = %v, want ErrMalformed", err)
			}
		})
	}
}

func TestVersionedMessageVersion(t *testing.T) {
	var empty ledger.VersionedMessage
	if _, err := empty.Version(); err == nil {
		t.Error("Version() of an empty message should fail")
	}
	if header := empty.Header(); header != (ledger.MessageHeader{}) {
		t.Errorf("Header() of an empty message = %+v, want zero", header)
	}

	legacy := ledger.NewLegacyMessage(ledgertest.Message())
	if version, err := legacy.Version(); err != nil || version != ledger.MessageVersionLegacy {
		t.Errorf("legacy Version() = %v, %v", version, err)
	}

	v0 := ledger.NewV0Message(ledgertest.MessageV0())
	if version, err := v0.Version(); err != nil || version != ledger.MessageVersion0 {
		t.Errorf("v0 Version() = %v, %v", version, err)
	}
	if v0.Header().NumRequiredSignatures != 1 {
		t.Errorf("v0 Header() = %+v", v0.Header())
	}
}

func TestMessageVersionString(t *testing.T) {
	tests := []struct {
		version ledger.MessageVersion
		want    string
	}{
		{ledger.MessageVersionLegacy, "legacy"},
		{ledger.MessageVersion0, "v0"},
		{ledger.MessageVersion(3), "v3"},
	}
	for _, test := range tests {
		if got := test.version.String(); got != test.want {
			t.Errorf("MessageVersion(%d).String() = %q, want %q", int(test.version), got, test.want)
		}
	}
}
