// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ledger

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

const (
	// PubkeySize is the length of a public key in bytes.
	PubkeySize = 32

	// SignatureSize is the length of a signature in bytes.
	SignatureSize = 64

	// HashSize is the length of a blockhash or message hash in bytes.
	HashSize = 32
)

// ErrInvalidBase58 is wrapped by every parse error caused by a
// character outside the base-58 alphabet.
var ErrInvalidBase58 = errors.New("invalid base-58 string")

// SizeError reports base-58 text that decoded cleanly to the wrong
// number of bytes.
type SizeError struct {
	// Name is the value being parsed ("pubkey", "signature", "hash").
	Name string
	Got  int
	Want int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%s is %d bytes, want %d", e.Name, e.Got, e.Want)
}

// Pubkey is a 32-byte public key.
type Pubkey [PubkeySize]byte

// Signature is a 64-byte signature.
type Signature [SignatureSize]byte

// Hash is a 32-byte digest: a recent blockhash inside a message, or
// the result of [Message.Hash].
type Hash [HashSize]byte

// ParsePubkey decodes a base-58 public key. The text must decode to
// exactly 32 bytes.
func ParsePubkey(text string) (Pubkey, error) {
	var key Pubkey
	err := decodeBase58Fixed(text, key[:], "pubkey")
	return key, err
}

// ParseSignature decodes a base-58 signature. The text must decode to
// exactly 64 bytes.
func ParseSignature(text string) (Signature, error) {
	var signature Signature
	err := decodeBase58Fixed(text, signature[:], "signature")
	return signature, err
}

// ParseHash decodes a base-58 hash. The text must decode to exactly 32
// bytes.
func ParseHash(text string) (Hash, error) {
	var hash Hash
	err := decodeBase58Fixed(text, hash[:], "hash")
	return hash, err
}

// decodeBase58Fixed decodes text into out, which must be filled
// exactly. The empty string decodes to zero bytes.
func decodeBase58Fixed(text string, out []byte, name string) error {
	if text == "" {
		return &SizeError{Name: name, Got: 0, Want: len(out)}
	}
	decoded, err := base58.Decode(text)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", name, ErrInvalidBase58, err)
	}
	if len(decoded) != len(out) {
		return &SizeError{Name: name, Got: len(decoded), Want: len(out)}
	}
	copy(out, decoded)
	return nil
}

// String returns the base-58 encoding of the key.
func (p Pubkey) String() string { return base58.Encode(p[:]) }

// IsZero reports whether every byte of the key is zero.
func (p Pubkey) IsZero() bool { return p == Pubkey{} }

// Compare orders keys lexicographically by byte.
func (p Pubkey) Compare(other Pubkey) int { return bytes.Compare(p[:], other[:]) }

// MarshalBinary returns a copy of the key bytes.
func (p Pubkey) MarshalBinary() ([]byte, error) { return bytes.Clone(p[:]), nil }

// UnmarshalBinary sets the key from exactly 32 bytes.
func (p *Pubkey) UnmarshalBinary(data []byte) error {
	return copyFixed(p[:], data, "pubkey")
}

// String returns the base-58 encoding of the signature.
func (s Signature) String() string { return base58.Encode(s[:]) }

// IsZero reports whether every byte of the signature is zero.
func (s Signature) IsZero() bool { return s == Signature{} }

// Compare orders signatures lexicographically by byte.
func (s Signature) Compare(other Signature) int { return bytes.Compare(s[:], other[:]) }

// MarshalBinary returns a copy of the signature bytes.
func (s Signature) MarshalBinary() ([]byte, error) { return bytes.Clone(s[:]), nil }

// UnmarshalBinary sets the signature from exactly 64 bytes.
func (s *Signature) UnmarshalBinary(data []byte) error {
	return copyFixed(s[:], data, "signature")
}

// String returns the base-58 encoding of the hash.
func (h Hash) String() string { return base58.Encode(h[:]) }

// MarshalBinary returns a copy of the hash bytes.
func (h Hash) MarshalBinary() ([]byte, error) { return bytes.Clone(h[:]), nil }

// UnmarshalBinary sets the hash from exactly 32 bytes.
func (h *Hash) UnmarshalBinary(data []byte) error {
	return copyFixed(h[:], data, "hash")
}

func copyFixed(out, data []byte, name string) error {
	if len(data) != len(out) {
		return &SizeError{Name: name, Got: len(data), Want: len(out)}
	}
	copy(out, data)
	return nil
}
