// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"errors"
	"fmt"
)

// Kind classifies a codec failure so that callers can decide how to
// report it without parsing error text.
type Kind int

const (
	// InvalidEncoding indicates a character outside the expected
	// alphabet, or invalid padding.
	InvalidEncoding Kind = iota + 1

	// InvalidLength indicates decoded bytes of the wrong size for a
	// fixed-length value (32-byte pubkey, 64-byte signature).
	InvalidLength

	// InvalidFormat indicates text that does not match the expected
	// grammar, or that a native parser rejected.
	InvalidFormat

	// InvalidNumber indicates a rejected decimal or integer: empty,
	// bad characters, a sign where none is allowed, or overflow.
	InvalidNumber

	// InvalidRecord indicates bytes that do not form a structurally
	// valid transaction record: wrong shape, truncation, trailing
	// data, or inconsistent fields.
	InvalidRecord
)

// Sentinel errors, one per Kind. An *Error matches the sentinel of its
// own kind under errors.Is.
var (
	ErrInvalidEncoding = errors.New("invalid encoding")
	ErrInvalidLength   = errors.New("invalid length")
	ErrInvalidFormat   = errors.New("invalid format")
	ErrInvalidNumber   = errors.New("invalid number")
	ErrInvalidRecord   = errors.New("invalid record")
)

// String returns the kind name used in error messages and CLI reports.
func (k Kind) String() string {
	switch k {
	case InvalidEncoding:
		return "invalid_encoding"
	case InvalidLength:
		return "invalid_length"
	case InvalidFormat:
		return "invalid_format"
	case InvalidNumber:
		return "invalid_number"
	case InvalidRecord:
		return "invalid_record"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// sentinel returns the package-level error value for the kind, or nil
// for an unknown kind.
func (k Kind) sentinel() error {
	switch k {
	case InvalidEncoding:
		return ErrInvalidEncoding
	case InvalidLength:
		return ErrInvalidLength
	case InvalidFormat:
		return ErrInvalidFormat
	case InvalidNumber:
		return ErrInvalidNumber
	case InvalidRecord:
		return ErrInvalidRecord
	default:
		return nil
	}
}

// maxInputPreview bounds how much of the offending input is quoted in
// Error(). Transaction envelopes can be kilobytes of base-64.
const maxInputPreview = 64

// Error is a codec failure. Construct it with the kind-specific
// helpers ([Encoding], [Length], [Number], [Record], [Format]) rather
// than directly.
type Error struct {
	// Kind classifies the failure.
	Kind Kind

	// Type is the schema name of the codec that failed, e.g.
	// "B58Pubkey" or "B64LegacyTx".
	Type string

	// Input is the complete text that was being decoded. Empty for
	// failures on the encode side.
	Input string

	// Detail describes what was expected, e.g. "decoded 31 bytes,
	// want 32".
	Detail string

	// Err is the underlying library error, if any.
	Err error
}

// Error formats as "<type>: <kind>: <detail> (input "<preview>"): <cause>",
// omitting the parts that are empty.
func (e *Error) Error() string {
	message := e.Type + ": " + e.Kind.String()
	if e.Detail != "" {
		message += ": " + e.Detail
	}
	if e.Input != "" {
		message += fmt.Sprintf(" (input %q)", preview(e.Input))
	}
	if e.Err != nil {
		message += ": " + e.Err.Error()
	}
	return message
}

// Unwrap returns the underlying library error so that errors.Is and
// errors.As can reach it.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	sentinel := e.Kind.sentinel()
	return sentinel != nil && target == sentinel
}

// KindOf returns the Kind of the first *Error in err's chain, or 0 if
// there is none.
func KindOf(err error) Kind {
	var codecError *Error
	if errors.As(err, &codecError) {
		return codecError.Kind
	}
	return 0
}

// Encoding returns an InvalidEncoding error.
func Encoding(typeName, input string, cause error) *Error {
	return &Error{Kind: InvalidEncoding, Type: typeName, Input: input, Err: cause}
}

// Length returns an InvalidLength error for a fixed-size value that
// decoded to got bytes instead of want.
func Length(typeName, input string, got, want int) *Error {
	return &Error{
		Kind:   InvalidLength,
		Type:   typeName,
		Input:  input,
		Detail: fmt.Sprintf("decoded %d bytes, want %d", got, want),
	}
}

// Format returns an InvalidFormat error.
func Format(typeName, input, detail string, cause error) *Error {
	return &Error{Kind: InvalidFormat, Type: typeName, Input: input, Detail: detail, Err: cause}
}

// Number returns an InvalidNumber error.
func Number(typeName, input, detail string, cause error) *Error {
	return &Error{Kind: InvalidNumber, Type: typeName, Input: input, Detail: detail, Err: cause}
}

// Record returns an InvalidRecord error. Input is empty when the
// failure happened while encoding.
func Record(typeName, input, detail string, cause error) *Error {
	return &Error{Kind: InvalidRecord, Type: typeName, Input: input, Detail: detail, Err: cause}
}

func preview(input string) string {
	if len(input) <= maxInputPreview {
		return input
	}
	return input[:maxInputPreview] + "..."
}
