// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package apischema describes ledgerwire wrapper types for API
// documentation generators. Every wrapper serializes as a single
// string scalar, so every descriptor has type "string"; the
// description states the text format.
//
// Descriptors are metadata only. Nothing in the codecs consults them.
package apischema

import (
	"fmt"
	"sort"
)

// TypeString is the only schema type ledgerwire wrappers produce.
const TypeString = "string"

// Descriptor names one wrapper type in an API schema.
type Descriptor struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
}

// String returns a Descriptor for a string-typed wrapper.
func String(name, description string) Descriptor {
	return Descriptor{Name: name, Type: TypeString, Description: description}
}

// Describer is implemented by every wrapper type. The method works on
// the zero value.
type Describer interface {
	Schema() Descriptor
}

// Schema is the per-type body of an OpenAPI components entry.
type Schema struct {
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
}

// Components returns the OpenAPI "components.schemas" map for the
// given wrappers, keyed by descriptor name. Two describers with the
// same name are an error: an API document cannot hold both.
func Components(describers ...Describer) (map[string]Schema, error) {
	schemas := make(map[string]Schema, len(describers))
	for _, describer := range describers {
		descriptor := describer.Schema()
		if descriptor.Name == "" {
			return nil, fmt.Errorf("schema descriptor for %T has no name", describer)
		}
		if _, exists := schemas[descriptor.Name]; exists {
			return nil, fmt.Errorf("duplicate schema name %q (from %T)", descriptor.Name, describer)
		}
		schemas[descriptor.Name] = Schema{Type: descriptor.Type, Description: descriptor.Description}
	}
	return schemas, nil
}

// Names returns the sorted keys of a components map.
func Names(schemas map[string]Schema) []string {
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
