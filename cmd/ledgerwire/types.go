// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/bureau-foundation/ledgerwire/lib/apischema"
	"github.com/bureau-foundation/ledgerwire/lib/b58pubkey"
	"github.com/bureau-foundation/ledgerwire/lib/b58signature"
	"github.com/bureau-foundation/ledgerwire/lib/b64buffer"
	"github.com/bureau-foundation/ledgerwire/lib/b64tx"
	"github.com/bureau-foundation/ledgerwire/lib/codec"
	"github.com/bureau-foundation/ledgerwire/lib/decimalstr"
	"github.com/bureau-foundation/ledgerwire/lib/ledger"
	"github.com/bureau-foundation/ledgerwire/lib/u64str"
	"github.com/bureau-foundation/ledgerwire/lib/wire"
)

// valueType is one codec as the command line sees it.
type valueType struct {
	// name is the command-line spelling.
	name string

	// describer supplies the API schema descriptor.
	describer apischema.Describer

	// document is true when encode reads a JSONC transaction document
	// from a file instead of taking the value inline.
	document bool

	// decode parses a text token and describes the result.
	decode func(text string) (*report, error)

	// encode turns command-line input (or document bytes) into the
	// canonical text token.
	encode func(input []byte) (string, error)
}

// report is the output of decode and of each check entry.
type report struct {
	Type      string     `json:"type" yaml:"type"`
	Canonical string     `json:"canonical" yaml:"canonical"`
	Hex       string     `json:"hex,omitempty" yaml:"hex,omitempty"`
	Length    int        `json:"length,omitempty" yaml:"length,omitempty"`
	TX        *txReport  `json:"transaction,omitempty" yaml:"transaction,omitempty"`
	Number    *numReport `json:"number,omitempty" yaml:"number,omitempty"`
}

// numReport describes a decoded number.
type numReport struct {
	Sign  int    `json:"sign" yaml:"sign"`
	Scale int32  `json:"scale" yaml:"scale"`
	Hex   string `json:"hex,omitempty" yaml:"hex,omitempty"`
}

// txReport describes a decoded transaction.
type txReport struct {
	Version     string     `json:"version" yaml:"version"`
	Signatures  int        `json:"signatures" yaml:"signatures"`
	MessageHash string     `json:"message_hash" yaml:"message_hash"`
	Diagnostic  string     `json:"diagnostic" yaml:"diagnostic"`
	Document    txDocument `json:"document" yaml:"document"`
}

var valueTypes = []valueType{
	{
		name:      "pubkey",
		describer: b58pubkey.Pubkey{},
		decode: func(text string) (*report, error) {
			key, err := b58pubkey.Parse(text)
			if err != nil {
				return nil, err
			}
			return bytesReport(b58pubkey.SchemaName, key.String(), key[:]), nil
		},
		encode: func(input []byte) (string, error) {
			data, err := decodeHex(input)
			if err != nil {
				return "", err
			}
			if len(data) != b58pubkey.Size {
				return "", wire.Length(b58pubkey.SchemaName, string(input), len(data), b58pubkey.Size)
			}
			return b58pubkey.Pubkey(data).String(), nil
		},
	},
	{
		name:      "signature",
		describer: b58signature.Signature{},
		decode: func(text string) (*report, error) {
			signature, err := b58signature.Parse(text)
			if err != nil {
				return nil, err
			}
			return bytesReport(b58signature.SchemaName, signature.String(), signature[:]), nil
		},
		encode: func(input []byte) (string, error) {
			data, err := decodeHex(input)
			if err != nil {
				return "", err
			}
			if len(data) != b58signature.Size {
				return "", wire.Length(b58signature.SchemaName, string(input), len(data), b58signature.Size)
			}
			return b58signature.Signature(data).String(), nil
		},
	},
	{
		name:      "buffer",
		describer: b64buffer.Buffer{},
		decode: func(text string) (*report, error) {
			buffer, err := b64buffer.Parse(text)
			if err != nil {
				return nil, err
			}
			return bytesReport(b64buffer.SchemaName, buffer.String(), buffer), nil
		},
		encode: func(input []byte) (string, error) {
			data, err := decodeHex(input)
			if err != nil {
				return "", err
			}
			return b64buffer.Buffer(data).String(), nil
		},
	},
	{
		name:      "decimal",
		describer: decimalstr.Decimal{},
		decode: func(text string) (*report, error) {
			value, err := decimalstr.Parse(text)
			if err != nil {
				return nil, err
			}
			canonical := value.String()
			scale := 0
			if _, fraction, found := strings.Cut(canonical, "."); found {
				scale = len(fraction)
			}
			return &report{
				Type:      decimalstr.SchemaName,
				Canonical: canonical,
				Number:    &numReport{Sign: value.Value().Sign(), Scale: int32(scale)},
			}, nil
		},
		encode: func(input []byte) (string, error) {
			value, err := decimalstr.Parse(string(input))
			if err != nil {
				return "", err
			}
			return value.String(), nil
		},
	},
	{
		name:      "u64",
		describer: u64str.U64(0),
		decode: func(text string) (*report, error) {
			value, err := u64str.Parse(text)
			if err != nil {
				return nil, err
			}
			sign := 0
			if value > 0 {
				sign = 1
			}
			return &report{
				Type:      u64str.SchemaName,
				Canonical: value.String(),
				Number:    &numReport{Sign: sign, Hex: fmt.Sprintf("%#x", value.Uint64())},
			}, nil
		},
		encode: func(input []byte) (string, error) {
			value, err := u64str.Parse(string(input))
			if err != nil {
				return "", err
			}
			return value.String(), nil
		},
	},
	{
		name:      "legacy-tx",
		describer: b64tx.LegacyTx{},
		document:  true,
		decode: func(text string) (*report, error) {
			wrapped, err := b64tx.ParseLegacy(text)
			if err != nil {
				return nil, err
			}
			tx := wrapped.Transaction()
			hash, err := tx.Message.Hash()
			if err != nil {
				return nil, err
			}
			return txDecodeReport(b64tx.LegacySchemaName, wrapped.String(), ledger.MessageVersionLegacy,
				len(tx.Signatures), hash, legacyDocument(tx))
		},
		encode: func(input []byte) (string, error) {
			document, err := parseDocument(input)
			if err != nil {
				return "", err
			}
			tx, err := document.legacy()
			if err != nil {
				return "", err
			}
			wrapped, err := b64tx.NewLegacy(tx)
			if err != nil {
				return "", err
			}
			return wrapped.Encode()
		},
	},
	{
		name:      "versioned-tx",
		describer: b64tx.VersionedTx{},
		document:  true,
		decode: func(text string) (*report, error) {
			wrapped, err := b64tx.ParseVersioned(text)
			if err != nil {
				return nil, err
			}
			tx := wrapped.Transaction()
			version, err := tx.Message.Version()
			if err != nil {
				return nil, err
			}
			hash, err := tx.Message.Hash()
			if err != nil {
				return nil, err
			}
			return txDecodeReport(b64tx.VersionedSchemaName, wrapped.String(), version,
				len(tx.Signatures), hash, versionedDocument(tx))
		},
		encode: func(input []byte) (string, error) {
			document, err := parseDocument(input)
			if err != nil {
				return "", err
			}
			tx, err := document.versioned()
			if err != nil {
				return "", err
			}
			wrapped, err := b64tx.NewVersioned(tx)
			if err != nil {
				return "", err
			}
			return wrapped.Encode()
		},
	},
}

// lookupType finds a value type by command-line name.
func lookupType(name string) (*valueType, error) {
	for i := range valueTypes {
		if valueTypes[i].name == name {
			return &valueTypes[i], nil
		}
	}
	return nil, usage("unknown type %q (want one of: %s)", name, strings.Join(typeNames(), ", "))
}

func typeNames() []string {
	names := make([]string, len(valueTypes))
	for i, valueType := range valueTypes {
		names[i] = valueType.name
	}
	return names
}

func bytesReport(typeName, canonical string, data []byte) *report {
	return &report{
		Type:      typeName,
		Canonical: canonical,
		Hex:       hex.EncodeToString(data),
		Length:    len(data),
	}
}

func txDecodeReport(typeName, canonical string, version ledger.MessageVersion, signatures int, hash ledger.Hash, document txDocument) (*report, error) {
	record, err := b64buffer.DecodeString(canonical)
	if err != nil {
		return nil, fmt.Errorf("re-reading canonical text: %w", err)
	}
	diagnostic, err := codec.Diagnose(record)
	if err != nil {
		return nil, fmt.Errorf("rendering record: %w", err)
	}
	return &report{
		Type:      typeName,
		Canonical: canonical,
		Length:    len(record),
		TX: &txReport{
			Version:     version.String(),
			Signatures:  signatures,
			MessageHash: hash.String(),
			Diagnostic:  diagnostic,
			Document:    document,
		},
	}, nil
}

// decodeHex accepts hex with an optional 0x prefix and surrounding
// whitespace, so "$(xxd -p file)" works as an argument.
func decodeHex(input []byte) ([]byte, error) {
	text := strings.TrimSpace(string(input))
	text = strings.TrimPrefix(strings.TrimPrefix(text, "0x"), "0X")
	text = strings.Join(strings.Fields(text), "")
	data, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("input is not hex: %w", err)
	}
	return data, nil
}

// describers returns every type's schema describer in table order.
func describers() []apischema.Describer {
	result := make([]apischema.Describer, 0, len(valueTypes))
	for _, valueType := range valueTypes {
		result = append(result, valueType.describer)
	}
	return result
}
