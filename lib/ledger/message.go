// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ledger

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/ledgerwire/lib/codec"
)

// MessageHeader counts the signer and read-only accounts at the front
// of a message's account key list. Keys are ordered: writable signers,
// read-only signers, writable non-signers, read-only non-signers.
type MessageHeader struct {
	_ struct{} `cbor:",toarray"`

	// NumRequiredSignatures is the number of leading account keys
	// that must sign. The first of them pays fees.
	NumRequiredSignatures uint8

	// NumReadonlySigned is how many of the signing keys are
	// read-only. Always less than NumRequiredSignatures.
	NumReadonlySigned uint8

	// NumReadonlyUnsigned is how many of the non-signing keys are
	// read-only.
	NumReadonlyUnsigned uint8
}

// CompiledInstruction invokes one program. All references to accounts
// are indexes into the message's account list.
type CompiledInstruction struct {
	_ struct{} `cbor:",toarray"`

	ProgramIDIndex uint8
	Accounts       []byte
	Data           []byte
}

// Message is the legacy message format: every account the
// transaction touches is listed inline.
type Message struct {
	_ struct{} `cbor:",toarray"`

	Header          MessageHeader
	AccountKeys     []Pubkey
	RecentBlockhash Hash
	Instructions    []CompiledInstruction
}

// MessageAddressTableLookup loads additional accounts from an
// on-chain address table. The indexes select entries of that table.
type MessageAddressTableLookup struct {
	_ struct{} `cbor:",toarray"`

	AccountKey      Pubkey
	WritableIndexes []byte
	ReadonlyIndexes []byte
}

// MessageV0 is the version 0 message format: a legacy message plus
// address table lookups. Instruction account indexes address the
// static keys first, then the writable lookup entries, then the
// read-only lookup entries.
type MessageV0 struct {
	_ struct{} `cbor:",toarray"`

	Header              MessageHeader
	AccountKeys         []Pubkey
	RecentBlockhash     Hash
	Instructions        []CompiledInstruction
	AddressTableLookups []MessageAddressTableLookup
}

// MessageVersion identifies the body carried by a [VersionedMessage].
type MessageVersion int

const (
	// MessageVersionLegacy marks a legacy [Message] carried in
	// versioned form.
	MessageVersionLegacy MessageVersion = -1

	// MessageVersion0 marks a [MessageV0].
	MessageVersion0 MessageVersion = 0
)

// String returns "legacy" or "v0".
func (v MessageVersion) String() string {
	switch v {
	case MessageVersionLegacy:
		return "legacy"
	case MessageVersion0:
		return "v0"
	default:
		return fmt.Sprintf("v%d", int(v))
	}
}

// ErrUnsupportedVersion is wrapped when a versioned message names a
// version this package does not know.
var ErrUnsupportedVersion = errors.New("unsupported message version")

// VersionedMessage is a tagged union over the message formats. Exactly
// one of Legacy and V0 is set; use [NewLegacyMessage] or
// [NewV0Message] to construct one.
//
// On the wire it is a two-element array: the version number, then the
// message body.
type VersionedMessage struct {
	Legacy *Message
	V0     *MessageV0
}

// NewLegacyMessage wraps a legacy message.
func NewLegacyMessage(message Message) VersionedMessage {
	return VersionedMessage{Legacy: &message}
}

// NewV0Message wraps a version 0 message.
func NewV0Message(message MessageV0) VersionedMessage {
	return VersionedMessage{V0: &message}
}

// Version returns the version of the carried message. It returns an
// error when neither or both bodies are set.
func (m VersionedMessage) Version() (MessageVersion, error) {
	switch {
	case m.Legacy != nil && m.V0 != nil:
		return 0, errors.New("versioned message has both legacy and v0 bodies")
	case m.Legacy != nil:
		return MessageVersionLegacy, nil
	case m.V0 != nil:
		return MessageVersion0, nil
	default:
		return 0, errors.New("versioned message has no body")
	}
}

// Header returns the header of the carried message, or the zero header
// if no body is set.
func (m VersionedMessage) Header() MessageHeader {
	switch {
	case m.Legacy != nil:
		return m.Legacy.Header
	case m.V0 != nil:
		return m.V0.Header
	default:
		return MessageHeader{}
	}
}

// versionedMessageWire is the on-wire shape of a VersionedMessage.
type versionedMessageWire struct {
	_ struct{} `cbor:",toarray"`

	Version MessageVersion
	Body    codec.RawMessage
}

// MarshalCBOR implements cbor.Marshaler.
func (m VersionedMessage) MarshalCBOR() ([]byte, error) {
	version, err := m.Version()
	if err != nil {
		return nil, err
	}

	var body []byte
	if version == MessageVersionLegacy {
		body, err = codec.Marshal(m.Legacy)
	} else {
		body, err = codec.Marshal(m.V0)
	}
	if err != nil {
		return nil, fmt.Errorf("encoding %s message: %w", version, err)
	}

	return codec.Marshal(versionedMessageWire{Version: version, Body: body})
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (m *VersionedMessage) UnmarshalCBOR(data []byte) error {
	var wire versionedMessageWire
	if err := codec.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("decoding versioned message: %w", err)
	}

	switch wire.Version {
	case MessageVersionLegacy:
		var message Message
		if err := codec.Unmarshal(wire.Body, &message); err != nil {
			return fmt.Errorf("decoding legacy message: %w", err)
		}
		*m = VersionedMessage{Legacy: &message}
	case MessageVersion0:
		var message MessageV0
		if err := codec.Unmarshal(wire.Body, &message); err != nil {
			return fmt.Errorf("decoding v0 message: %w", err)
		}
		*m = VersionedMessage{V0: &message}
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, int(wire.Version))
	}
	return nil
}
