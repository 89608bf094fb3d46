// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
)

func TestErrorMatchesOwnKindOnly(t *testing.T) {
	sentinels := map[Kind]error{
		InvalidEncoding: ErrInvalidEncoding,
		InvalidLength:   ErrInvalidLength,
		InvalidFormat:   ErrInvalidFormat,
		InvalidNumber:   ErrInvalidNumber,
		InvalidRecord:   ErrInvalidRecord,
	}

	for kind := range sentinels {
		err := &Error{Kind: kind, Type: "Test"}
		for otherKind, sentinel := range sentinels {
			got := errors.Is(err, sentinel)
			want := kind == otherKind
			if got != want {
				t.Errorf("errors.Is(%s error, %v) = %v, want %v", kind, sentinel, got, want)
			}
		}
	}
}

func TestErrorUnwrapReachesCause(t *testing.T) {
	_, parseErr := strconv.ParseUint("18446744073709551616", 10, 64)
	err := Number("U64Str", "18446744073709551616", "overflow", parseErr)

	if !errors.Is(err, ErrInvalidNumber) {
		t.Error("expected ErrInvalidNumber")
	}
	if !errors.Is(err, strconv.ErrRange) {
		t.Error("expected strconv.ErrRange through Unwrap")
	}
}

func TestErrorThroughWrapping(t *testing.T) {
	inner := Length("B58Pubkey", "abc", 2, 32)
	wrapped := fmt.Errorf("field payer: %w", inner)

	if !errors.Is(wrapped, ErrInvalidLength) {
		t.Error("expected ErrInvalidLength through fmt.Errorf wrapping")
	}
	if got := KindOf(wrapped); got != InvalidLength {
		t.Errorf("KindOf = %v, want %v", got, InvalidLength)
	}
	if got := KindOf(errors.New("plain")); got != 0 {
		t.Errorf("KindOf(plain error) = %v, want 0", got)
	}
}

func TestErrorMessage(t *testing.T) {
	err := Length("B58Pubkey", "4uQeVj5tqViQh7yWWGStvkEG1Zmhx6uasJtWCJziofL", 31, 32)
	want := `B58Pubkey: invalid_length: decoded 31 bytes, want 32 (input "4uQeVj5tqViQh7yWWGStvkEG1Zmhx6uasJtWCJziofL")`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	cause := errors.New("boom")
	recordErr := Record("B64LegacyTx", "", "encoding record", cause)
	want = "B64LegacyTx: invalid_record: encoding record: boom"
	if got := recordErr.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorMessageTruncatesLongInput(t *testing.T) {
	input := strings.Repeat("A", 500)
	err := Encoding("B64Buffer", input, nil)

	message := err.Error()
	if strings.Contains(message, input) {
		t.Error("error message should not quote the full 500-character input")
	}
	if !strings.Contains(message, strings.Repeat("A", maxInputPreview)+"...") {
		t.Errorf("error message should contain a %d-character preview, got %q", maxInputPreview, message)
	}
	if err.Input != input {
		t.Error("Input field should retain the complete input")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{InvalidEncoding, "invalid_encoding"},
		{InvalidLength, "invalid_length"},
		{InvalidFormat, "invalid_format"},
		{InvalidNumber, "invalid_number"},
		{InvalidRecord, "invalid_record"},
		{Kind(99), "kind(99)"},
	}
	for _, test := range tests {
		if got := test.kind.String(); got != test.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(test.kind), got, test.want)
		}
	}
}
