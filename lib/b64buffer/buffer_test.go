// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package b64buffer

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/ledgerwire/lib/codec"
	"github.com/bureau-foundation/ledgerwire/lib/wire"
)

func TestKnownVectors(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		text  string
	}{
		{"ascii", []byte("hello, ledger"), "aGVsbG8sIGxlZGdlcg=="},
		{"deadbeef", []byte{0xde, 0xad, 0xbe, 0xef}, "3q2+7w=="},
		{"one byte", []byte{0xff}, "/w=="},
		{"three bytes", []byte{0, 0, 0}, "AAAA"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Buffer(test.bytes).String(); got != test.text {
				t.Errorf("String() = %q, want %q", got, test.text)
			}
			parsed, err := Parse(test.text)
			if err != nil {
				t.Fatalf("Parse(%q): %v", test.text, err)
			}
			if !parsed.Equal(test.bytes) {
				t.Errorf("Parse(%q) = %s, want %s", test.text, hex.EncodeToString(parsed), hex.EncodeToString(test.bytes))
			}
		})
	}
}

func TestEmpty(t *testing.T) {
	parsed, err := Parse("")
	if err != nil {
		t.Fatalf("Parse(\"\"): %v", err)
	}
	if parsed == nil {
		t.Error("Parse(\"\") should return a non-nil empty buffer")
	}
	if parsed.Len() != 0 {
		t.Errorf("Len() = %d, want 0", parsed.Len())
	}

	if got := Buffer(nil).String(); got != "" {
		t.Errorf("nil buffer String() = %q, want empty", got)
	}
	if !Buffer(nil).Equal(Buffer{}) {
		t.Error("nil and empty buffers should be equal")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"invalid character", "!"},
		{"url alphabet", "-_-_"},
		{"missing padding", "3q2+7w"},
		{"excess padding", "3q2+7w==="},
		{"non-zero padding bits", "3q2+7x=="},
		{"embedded space", "3q2+ 7w=="},
		{"single character", "A"},
		{"trailing newline", "AAAA\n"},
		{"embedded CRLF", "AA\r\nAA"},
		{"leading newline", "\nQQ==\r"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(test.text)
			if !errors.Is(err, wire.ErrInvalidEncoding) {
				t.Fatalf("Parse(%q) error = %v, want ErrInvalidEncoding", test.text, err)
			}
			var corrupt base64.CorruptInputError
			if !errors.As(err, &corrupt) {
				t.Errorf("error should unwrap to base64.CorruptInputError, got %v", err)
			}
		})
	}
}

func TestLineBreakOffset(t *testing.T) {
	_, err := DecodeString("AAAA\r\nAAAA")
	var corrupt base64.CorruptInputError
	if !errors.As(err, &corrupt) {
		t.Fatalf("DecodeString error = %v, want base64.CorruptInputError", err)
	}
	if corrupt != 4 {
		t.Errorf("corrupt offset = %d, want 4", int64(corrupt))
	}
}

func TestCanonicalRoundtrip(t *testing.T) {
	// Every accepted text re-encodes to itself.
	for _, text := range []string{"", "AA==", "AAA=", "AAAA", "aGVsbG8sIGxlZGdlcg==", "+/+/"} {
		parsed, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q): %v", text, err)
		}
		if got := parsed.String(); got != text {
			t.Errorf("Parse(%q).String() = %q", text, got)
		}
	}
}

func TestViewIsWritable(t *testing.T) {
	buffer := mustParse(t, "AAAA")
	buffer.Bytes()[1] = 0xff
	if buffer[1] != 0xff {
		t.Error("writes through Bytes() should be visible in the buffer")
	}

	var sum int
	for _, b := range buffer {
		sum += int(b)
	}
	if sum != 0xff {
		t.Errorf("range over buffer summed to %d, want 255", sum)
	}
}

func mustParse(t *testing.T, text string) Buffer {
	t.Helper()
	buffer, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	return buffer
}

type attachment struct {
	Name string `json:"name" yaml:"name" cbor:"name"`
	Data Buffer `json:"data" yaml:"data" cbor:"data"`
}

func TestJSON(t *testing.T) {
	original := attachment{Name: "greeting", Data: Buffer("hello, ledger")}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"name":"greeting","data":"aGVsbG8sIGxlZGdlcg=="}`
	if string(data) != want {
		t.Errorf("JSON = %s, want %s", data, want)
	}

	var decoded attachment
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Name != original.Name || !decoded.Data.Equal(original.Data) {
		t.Errorf("roundtrip mismatch: %+v", decoded)
	}

	err = json.Unmarshal([]byte(`{"data":"!"}`), &decoded)
	if !errors.Is(err, wire.ErrInvalidEncoding) {
		t.Errorf("invalid base-64 in JSON: error = %v, want ErrInvalidEncoding", err)
	}
}

func TestYAMLAndCBOR(t *testing.T) {
	original := attachment{Name: "beef", Data: Buffer{0xde, 0xad, 0xbe, 0xef}}

	yamlData, err := yaml.Marshal(original)
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}
	var fromYAML attachment
	if err := yaml.Unmarshal(yamlData, &fromYAML); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	if !fromYAML.Data.Equal(original.Data) {
		t.Errorf("YAML roundtrip = %x, want %x", []byte(fromYAML.Data), []byte(original.Data))
	}

	cborData, err := codec.Marshal(original)
	if err != nil {
		t.Fatalf("codec.Marshal: %v", err)
	}
	var fromCBOR attachment
	if err := codec.Unmarshal(cborData, &fromCBOR); err != nil {
		t.Fatalf("codec.Unmarshal: %v", err)
	}
	if !fromCBOR.Data.Equal(original.Data) {
		t.Errorf("CBOR roundtrip = %x, want %x", []byte(fromCBOR.Data), []byte(original.Data))
	}

	// The buffer is a CBOR text string holding base-64, not a byte
	// string.
	diagnostic, err := codec.Diagnose(cborData)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if want := `"3q2+7w=="`; !strings.Contains(diagnostic, want) {
		t.Errorf("diagnostic %s should contain %s", diagnostic, want)
	}
}

func TestSchema(t *testing.T) {
	if got := Buffer(nil).Schema(); got.Name != "B64Buffer" || got.Description != "base-64 encoded byte buffer" {
		t.Errorf("Schema() = %+v", got)
	}
}
