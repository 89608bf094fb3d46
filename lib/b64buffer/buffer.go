// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package b64buffer provides Buffer, a variable-length byte buffer
// that serializes as standard padded base-64 (RFC 4648 section 4).
package b64buffer

import (
	"bytes"
	"encoding/base64"
	"strings"

	"github.com/bureau-foundation/ledgerwire/lib/apischema"
	"github.com/bureau-foundation/ledgerwire/lib/wire"
)

// SchemaName is the API schema name of Buffer.
const SchemaName = "B64Buffer"

// encoding rejects non-zero trailing padding bits, so every accepted
// text is the one String would produce for the decoded bytes.
var encoding = base64.StdEncoding.Strict()

// Buffer is a byte buffer with a base-64 text form. It is a []byte, so
// indexing, slicing, len and range work directly. A nil Buffer encodes
// as "".
type Buffer []byte

// Parse decodes standard padded base-64. The empty string decodes to
// an empty, non-nil Buffer.
func Parse(text string) (Buffer, error) {
	decoded, err := DecodeString(text)
	if err != nil {
		return nil, wire.Encoding(SchemaName, text, err)
	}
	return Buffer(decoded), nil
}

// DecodeString decodes standard padded base-64 into a fresh slice,
// with the same strictness as Parse but returning the raw library
// error. Packages that layer their own codec over base-64 use it to
// report failures under their own type name.
func DecodeString(text string) ([]byte, error) {
	// The library decoder skips CR and LF, which are outside the
	// alphabet and would break the canonical round trip.
	if offset := strings.IndexAny(text, "\r\n"); offset >= 0 {
		return nil, base64.CorruptInputError(offset)
	}
	decoded := make([]byte, encoding.DecodedLen(len(text)))
	n, err := encoding.Decode(decoded, []byte(text))
	if err != nil {
		return nil, err
	}
	return decoded[:n], nil
}

// EncodeToString returns the standard padded base-64 of data.
func EncodeToString(data []byte) string {
	return encoding.EncodeToString(data)
}

// String returns the base-64 encoding of the buffer.
func (b Buffer) String() string { return EncodeToString(b) }

// Bytes returns the buffer's bytes. The result aliases the buffer.
func (b Buffer) Bytes() []byte { return b }

// Len returns the number of bytes in the buffer.
func (b Buffer) Len() int { return len(b) }

// Equal reports whether two buffers hold the same bytes. A nil buffer
// equals an empty one.
func (b Buffer) Equal(other Buffer) bool { return bytes.Equal(b, other) }

// MarshalText implements encoding.TextMarshaler.
func (b Buffer) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The decoded bytes
// are a fresh allocation; data is not retained.
func (b *Buffer) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Schema describes Buffer for API documentation.
func (Buffer) Schema() apischema.Descriptor {
	return apischema.String(SchemaName, "base-64 encoded byte buffer")
}
