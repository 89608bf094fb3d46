// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ledger

import (
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/ledgerwire/lib/codec"
)

// messageDomainKey separates message hashes from any other BLAKE3
// keyed hash over the same bytes. ASCII "ledgerwire.message",
// zero-padded to 32 bytes. Changing it changes every message hash.
var messageDomainKey = [32]byte{
	'l', 'e', 'd', 'g', 'e', 'r', 'w', 'i', 'r', 'e', '.', 'm', 'e', 's', 's', 'a',
	'g', 'e', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Hash returns the BLAKE3 keyed hash of the message's record bytes.
// Signers sign this value.
func (m *Message) Hash() (Hash, error) {
	return hashRecord(m)
}

// Hash returns the BLAKE3 keyed hash of the versioned message's record
// bytes, including the version tag. A legacy message therefore hashes
// differently in versioned form than bare.
func (m *VersionedMessage) Hash() (Hash, error) {
	return hashRecord(m)
}

func hashRecord(record any) (Hash, error) {
	data, err := codec.Marshal(record)
	if err != nil {
		return Hash{}, fmt.Errorf("encoding message for hashing: %w", err)
	}

	// NewKeyed only fails for keys that are not 32 bytes.
	hasher, err := blake3.NewKeyed(messageDomainKey[:])
	if err != nil {
		panic("ledger: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)

	var hash Hash
	copy(hash[:], hasher.Sum(nil))
	return hash, nil
}
