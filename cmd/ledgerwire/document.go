// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/ledgerwire/lib/b58pubkey"
	"github.com/bureau-foundation/ledgerwire/lib/b58signature"
	"github.com/bureau-foundation/ledgerwire/lib/b64buffer"
	"github.com/bureau-foundation/ledgerwire/lib/ledger"
)

// txDocument is the human-authored form of a transaction: keys and
// signatures in base-58, instruction data in base-64, indexes as
// plain numbers. The encode command reads it (as JSONC) and the decode
// command prints it, so a decoded transaction can be edited and
// re-encoded.
type txDocument struct {
	Signatures []b58signature.Signature `json:"signatures" yaml:"signatures"`
	Message    messageDocument          `json:"message" yaml:"message"`
}

type messageDocument struct {
	// Version is "legacy" or "v0". Empty means legacy.
	Version             string                `json:"version,omitempty" yaml:"version,omitempty"`
	Header              headerDocument        `json:"header" yaml:"header"`
	AccountKeys         []b58pubkey.Pubkey    `json:"account_keys" yaml:"account_keys"`
	RecentBlockhash     string                `json:"recent_blockhash" yaml:"recent_blockhash"`
	Instructions        []instructionDocument `json:"instructions" yaml:"instructions"`
	AddressTableLookups []lookupDocument      `json:"address_table_lookups,omitempty" yaml:"address_table_lookups,omitempty"`
}

type headerDocument struct {
	NumRequiredSignatures int `json:"num_required_signatures" yaml:"num_required_signatures"`
	NumReadonlySigned     int `json:"num_readonly_signed" yaml:"num_readonly_signed"`
	NumReadonlyUnsigned   int `json:"num_readonly_unsigned" yaml:"num_readonly_unsigned"`
}

type instructionDocument struct {
	ProgramIDIndex int              `json:"program_id_index" yaml:"program_id_index"`
	Accounts       []int            `json:"accounts" yaml:"accounts"`
	Data           b64buffer.Buffer `json:"data" yaml:"data"`
}

type lookupDocument struct {
	AccountKey      b58pubkey.Pubkey `json:"account_key" yaml:"account_key"`
	WritableIndexes []int            `json:"writable_indexes" yaml:"writable_indexes"`
	ReadonlyIndexes []int            `json:"readonly_indexes" yaml:"readonly_indexes"`
}

// parseDocument strips JSONC comments and trailing commas, then
// decodes a transaction document. Unknown fields are an error.
func parseDocument(data []byte) (txDocument, error) {
	decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	decoder.DisallowUnknownFields()

	var document txDocument
	if err := decoder.Decode(&document); err != nil {
		return txDocument{}, fmt.Errorf("parsing transaction document: %w", err)
	}
	return document, nil
}

// legacy converts the document to a legacy transaction. The document
// must not name a version other than legacy or carry lookups.
func (d txDocument) legacy() (ledger.Transaction, error) {
	if d.Message.Version != "" && d.Message.Version != ledger.MessageVersionLegacy.String() {
		return ledger.Transaction{}, fmt.Errorf("message.version: legacy-tx requires a legacy message, got %q", d.Message.Version)
	}
	message, err := d.Message.legacy()
	if err != nil {
		return ledger.Transaction{}, err
	}
	return ledger.Transaction{
		Signatures: signatureValues(d.Signatures),
		Message:    message,
	}, nil
}

// versioned converts the document to a versioned transaction.
func (d txDocument) versioned() (ledger.VersionedTransaction, error) {
	tx := ledger.VersionedTransaction{Signatures: signatureValues(d.Signatures)}
	switch d.Message.Version {
	case "", ledger.MessageVersionLegacy.String():
		message, err := d.Message.legacy()
		if err != nil {
			return ledger.VersionedTransaction{}, err
		}
		tx.Message = ledger.NewLegacyMessage(message)
	case ledger.MessageVersion0.String():
		message, err := d.Message.v0()
		if err != nil {
			return ledger.VersionedTransaction{}, err
		}
		tx.Message = ledger.NewV0Message(message)
	default:
		return ledger.VersionedTransaction{}, fmt.Errorf("message.version: %w: %q", ledger.ErrUnsupportedVersion, d.Message.Version)
	}
	return tx, nil
}

func (m messageDocument) legacy() (ledger.Message, error) {
	if len(m.AddressTableLookups) > 0 {
		return ledger.Message{}, fmt.Errorf("message.address_table_lookups: only v0 messages carry lookups")
	}
	header, blockhash, instructions, err := m.common()
	if err != nil {
		return ledger.Message{}, err
	}
	return ledger.Message{
		Header:          header,
		AccountKeys:     pubkeyValues(m.AccountKeys),
		RecentBlockhash: blockhash,
		Instructions:    instructions,
	}, nil
}

func (m messageDocument) v0() (ledger.MessageV0, error) {
	header, blockhash, instructions, err := m.common()
	if err != nil {
		return ledger.MessageV0{}, err
	}
	lookups := make([]ledger.MessageAddressTableLookup, len(m.AddressTableLookups))
	for i, lookup := range m.AddressTableLookups {
		writable, err := indexBytes(fmt.Sprintf("message.address_table_lookups[%d].writable_indexes", i), lookup.WritableIndexes)
		if err != nil {
			return ledger.MessageV0{}, err
		}
		readonly, err := indexBytes(fmt.Sprintf("message.address_table_lookups[%d].readonly_indexes", i), lookup.ReadonlyIndexes)
		if err != nil {
			return ledger.MessageV0{}, err
		}
		lookups[i] = ledger.MessageAddressTableLookup{
			AccountKey:      lookup.AccountKey.Key(),
			WritableIndexes: writable,
			ReadonlyIndexes: readonly,
		}
	}
	return ledger.MessageV0{
		Header:              header,
		AccountKeys:         pubkeyValues(m.AccountKeys),
		RecentBlockhash:     blockhash,
		Instructions:        instructions,
		AddressTableLookups: lookups,
	}, nil
}

// common converts the fields both message formats share.
func (m messageDocument) common() (ledger.MessageHeader, ledger.Hash, []ledger.CompiledInstruction, error) {
	var header ledger.MessageHeader
	counts := []struct {
		field string
		value int
		out   *uint8
	}{
		{"message.header.num_required_signatures", m.Header.NumRequiredSignatures, &header.NumRequiredSignatures},
		{"message.header.num_readonly_signed", m.Header.NumReadonlySigned, &header.NumReadonlySigned},
		{"message.header.num_readonly_unsigned", m.Header.NumReadonlyUnsigned, &header.NumReadonlyUnsigned},
	}
	for _, count := range counts {
		value, err := indexByte(count.field, count.value)
		if err != nil {
			return ledger.MessageHeader{}, ledger.Hash{}, nil, err
		}
		*count.out = value
	}

	blockhash, err := ledger.ParseHash(m.RecentBlockhash)
	if err != nil {
		return ledger.MessageHeader{}, ledger.Hash{}, nil, fmt.Errorf("message.recent_blockhash: %w", err)
	}

	instructions := make([]ledger.CompiledInstruction, len(m.Instructions))
	for i, instruction := range m.Instructions {
		field := fmt.Sprintf("message.instructions[%d]", i)
		program, err := indexByte(field+".program_id_index", instruction.ProgramIDIndex)
		if err != nil {
			return ledger.MessageHeader{}, ledger.Hash{}, nil, err
		}
		accounts, err := indexBytes(field+".accounts", instruction.Accounts)
		if err != nil {
			return ledger.MessageHeader{}, ledger.Hash{}, nil, err
		}
		data := instruction.Data.Bytes()
		if data == nil {
			data = []byte{}
		}
		instructions[i] = ledger.CompiledInstruction{
			ProgramIDIndex: program,
			Accounts:       accounts,
			Data:           data,
		}
	}
	return header, blockhash, instructions, nil
}

func indexByte(field string, value int) (uint8, error) {
	if value < 0 || value > 255 {
		return 0, fmt.Errorf("%s: %d is outside 0..255", field, value)
	}
	return uint8(value), nil
}

func indexBytes(field string, values []int) ([]byte, error) {
	result := make([]byte, len(values))
	for i, value := range values {
		b, err := indexByte(fmt.Sprintf("%s[%d]", field, i), value)
		if err != nil {
			return nil, err
		}
		result[i] = b
	}
	return result, nil
}

func signatureValues(signatures []b58signature.Signature) []ledger.Signature {
	result := make([]ledger.Signature, len(signatures))
	for i, signature := range signatures {
		result[i] = signature.Value()
	}
	return result
}

func pubkeyValues(keys []b58pubkey.Pubkey) []ledger.Pubkey {
	result := make([]ledger.Pubkey, len(keys))
	for i, key := range keys {
		result[i] = key.Key()
	}
	return result
}

// legacyDocument renders a legacy transaction as a document.
func legacyDocument(tx ledger.Transaction) txDocument {
	message := tx.Message
	return txDocument{
		Signatures: signatureTexts(tx.Signatures),
		Message: messageDocument{
			Header:          headerDocumentOf(message.Header),
			AccountKeys:     pubkeyTexts(message.AccountKeys),
			RecentBlockhash: message.RecentBlockhash.String(),
			Instructions:    instructionDocuments(message.Instructions),
		},
	}
}

// versionedDocument renders a versioned transaction as a document
// with an explicit version.
func versionedDocument(tx ledger.VersionedTransaction) txDocument {
	document := txDocument{Signatures: signatureTexts(tx.Signatures)}
	switch {
	case tx.Message.Legacy != nil:
		message := tx.Message.Legacy
		document.Message = messageDocument{
			Version:         ledger.MessageVersionLegacy.String(),
			Header:          headerDocumentOf(message.Header),
			AccountKeys:     pubkeyTexts(message.AccountKeys),
			RecentBlockhash: message.RecentBlockhash.String(),
			Instructions:    instructionDocuments(message.Instructions),
		}
	case tx.Message.V0 != nil:
		message := tx.Message.V0
		lookups := make([]lookupDocument, len(message.AddressTableLookups))
		for i, lookup := range message.AddressTableLookups {
			lookups[i] = lookupDocument{
				AccountKey:      b58pubkey.New(lookup.AccountKey),
				WritableIndexes: indexInts(lookup.WritableIndexes),
				ReadonlyIndexes: indexInts(lookup.ReadonlyIndexes),
			}
		}
		document.Message = messageDocument{
			Version:             ledger.MessageVersion0.String(),
			Header:              headerDocumentOf(message.Header),
			AccountKeys:         pubkeyTexts(message.AccountKeys),
			RecentBlockhash:     message.RecentBlockhash.String(),
			Instructions:        instructionDocuments(message.Instructions),
			AddressTableLookups: lookups,
		}
	}
	return document
}

func headerDocumentOf(header ledger.MessageHeader) headerDocument {
	return headerDocument{
		NumRequiredSignatures: int(header.NumRequiredSignatures),
		NumReadonlySigned:     int(header.NumReadonlySigned),
		NumReadonlyUnsigned:   int(header.NumReadonlyUnsigned),
	}
}

func instructionDocuments(instructions []ledger.CompiledInstruction) []instructionDocument {
	result := make([]instructionDocument, len(instructions))
	for i, instruction := range instructions {
		result[i] = instructionDocument{
			ProgramIDIndex: int(instruction.ProgramIDIndex),
			Accounts:       indexInts(instruction.Accounts),
			Data:           b64buffer.Buffer(instruction.Data),
		}
	}
	return result
}

func indexInts(indexes []byte) []int {
	result := make([]int, len(indexes))
	for i, index := range indexes {
		result[i] = int(index)
	}
	return result
}

func signatureTexts(signatures []ledger.Signature) []b58signature.Signature {
	result := make([]b58signature.Signature, len(signatures))
	for i, signature := range signatures {
		result[i] = b58signature.New(signature)
	}
	return result
}

func pubkeyTexts(keys []ledger.Pubkey) []b58pubkey.Pubkey {
	result := make([]b58pubkey.Pubkey, len(keys))
	for i, key := range keys {
		result[i] = b58pubkey.New(key)
	}
	return result
}
