// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/ledgerwire/lib/config"
)

// writeReport prints value in the configured output format.
func writeReport(w io.Writer, output config.OutputConfig, value any) error {
	switch output.Format {
	case config.OutputYAML:
		encoder := yaml.NewEncoder(w)
		if output.Indent > 0 {
			encoder.SetIndent(output.Indent)
		}
		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("writing YAML report: %w", err)
		}
		return encoder.Close()
	default:
		encoder := json.NewEncoder(w)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", strings.Repeat(" ", output.Indent))
		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("writing JSON report: %w", err)
		}
		return nil
	}
}
