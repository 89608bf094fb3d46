// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"github.com/fxamacker/cbor/v2"
)

// maxArrayElements bounds the element count any CBOR array in a
// record may declare. A ledger transaction addresses at most 256
// accounts and carries far fewer instructions.
const maxArrayElements = 65536

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding. Same logical record always produces identical bytes.
var encMode cbor.EncMode

// decMode is the CBOR decoder used for untrusted record bytes.
var decMode cbor.DecMode

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	// Keys, signatures and hashes marshal through MarshalBinary as
	// byte strings. Text wrappers (b58pubkey.Pubkey and friends)
	// marshal through MarshalText as text strings when a caller
	// embeds them in a CBOR document.
	encOptions.BinaryMarshaler = cbor.BinaryMarshalerByteString
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// UnmarshalBinary enforces exact sizes for fixed-length
		// values. Without it a short byte string would silently
		// zero-fill a [32]byte.
		BinaryUnmarshaler: cbor.BinaryUnmarshalerByteString,
		TextUnmarshaler:   cbor.TextUnmarshalerTextString,
		MaxArrayElements:  maxArrayElements,
		// Records are arrays, but a caller may decode a document
		// with maps through this package; reject duplicated keys
		// rather than keeping the last one.
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v to CBOR using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes exactly one CBOR item from data into v. Empty
// data, truncated items, and trailing bytes are errors.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// RawMessage is a raw encoded CBOR item. It delays decoding of one
// part of a record until its shape is known (the body of a versioned
// message, for example). Type alias so consumers import only
// lib/codec, not fxamacker/cbor directly.
type RawMessage = cbor.RawMessage

// Diagnose returns the CBOR diagnostic notation (RFC 8949 §8) for the
// entire contents of data. The CLI prints it when inspecting
// transaction envelopes.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}
