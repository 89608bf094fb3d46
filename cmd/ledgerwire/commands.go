// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/ledgerwire/lib/apischema"
)

// decodeCmd implements "decode <type> <text>". It takes no flags, so
// a text beginning with '-' (a negative decimal) needs no "--".
func decodeCmd(env *environment, args []string) error {
	if len(args) != 2 {
		return usage("decode takes <type> <text>, got %d arguments", len(args))
	}

	valueType, err := lookupType(args[0])
	if err != nil {
		return err
	}
	text := args[1]

	result, err := valueType.decode(text)
	if err != nil {
		return err
	}
	env.logger.Debug("decoded", "type", valueType.name, "canonical_length", len(result.Canonical))
	if result.Canonical != text {
		env.logger.Info("input is not in canonical form", "type", valueType.name, "canonical", result.Canonical)
	}
	return writeReport(env.stdout, env.config.Output, result)
}

// encodeResult is printed by encode.
type encodeResult struct {
	Type string `json:"type" yaml:"type"`
	Text string `json:"text" yaml:"text"`
}

// encodeCmd implements "encode <type> <input>".
func encodeCmd(env *environment, args []string) error {
	flagSet := pflag.NewFlagSet("encode", pflag.ContinueOnError)
	flagSet.SetOutput(env.stderr)
	raw := flagSet.Bool("raw", false, "print only the encoded text, without a report")
	if err := flagSet.Parse(args); err != nil {
		return usage("encode: %v", err)
	}
	if flagSet.NArg() != 2 {
		return usage("encode takes <type> <input>, got %d arguments", flagSet.NArg())
	}

	valueType, err := lookupType(flagSet.Arg(0))
	if err != nil {
		return err
	}

	input := []byte(flagSet.Arg(1))
	if valueType.document {
		input, err = readInput(env.stdin, flagSet.Arg(1))
		if err != nil {
			return err
		}
	}

	text, err := valueType.encode(input)
	if err != nil {
		return err
	}
	env.logger.Debug("encoded", "type", valueType.name, "length", len(text))

	if *raw {
		_, err := fmt.Fprintln(env.stdout, text)
		return err
	}
	return writeReport(env.stdout, env.config.Output, encodeResult{
		Type: valueType.describer.Schema().Name,
		Text: text,
	})
}

// schemaCmd implements "schema".
func schemaCmd(env *environment, args []string) error {
	if len(args) != 0 {
		return usage("schema takes no arguments")
	}
	schemas, err := apischema.Components(describers()...)
	if err != nil {
		return err
	}
	document := map[string]any{
		"components": map[string]any{"schemas": schemas},
	}
	return writeReport(env.stdout, env.config.Output, document)
}

// typeEntry is one row of the types listing.
type typeEntry struct {
	Name        string `json:"name" yaml:"name"`
	Schema      string `json:"schema" yaml:"schema"`
	Description string `json:"description" yaml:"description"`
}

// typesCmd implements "types".
func typesCmd(env *environment, args []string) error {
	if len(args) != 0 {
		return usage("types takes no arguments")
	}
	entries := make([]typeEntry, len(valueTypes))
	for i, valueType := range valueTypes {
		descriptor := valueType.describer.Schema()
		entries[i] = typeEntry{
			Name:        valueType.name,
			Schema:      descriptor.Name,
			Description: descriptor.Description,
		}
	}
	return writeReport(env.stdout, env.config.Output, entries)
}

// readInput reads a file, or stdin when path is "-".
func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
