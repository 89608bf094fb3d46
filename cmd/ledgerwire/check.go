// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/ledgerwire/lib/wire"
)

// outcomeOK is the expectation for an entry that must decode.
const outcomeOK = "ok"

// checkEntry is one fixture in a check file:
//
//	[
//	  // The all-zero key.
//	  {"type": "pubkey", "value": "11111111111111111111111111111111"},
//	  {"type": "decimal", "value": "-3.1400", "canonical": "-3.14"},
//	  {"type": "u64", "value": "18446744073709551616", "expect": "invalid_number"},
//	]
type checkEntry struct {
	Type  string `json:"type"`
	Value string `json:"value"`

	// Expect is "ok" (the default) or an error kind such as
	// "invalid_length".
	Expect string `json:"expect,omitempty"`

	// Canonical, when set, is the text the value must re-encode to.
	Canonical string `json:"canonical,omitempty"`
}

type checkResult struct {
	Index     int    `json:"index" yaml:"index"`
	Type      string `json:"type" yaml:"type"`
	Expect    string `json:"expect" yaml:"expect"`
	Outcome   string `json:"outcome" yaml:"outcome"`
	Canonical string `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
	Pass      bool   `json:"pass" yaml:"pass"`
}

type checkSummary struct {
	File    string        `json:"file" yaml:"file"`
	Passed  int           `json:"passed" yaml:"passed"`
	Failed  int           `json:"failed" yaml:"failed"`
	Results []checkResult `json:"results" yaml:"results"`
}

// checkCmd implements "check <file.jsonc>". It prints a summary and
// exits 1 when any entry misses its expectation.
func checkCmd(env *environment, args []string) error {
	if len(args) != 1 {
		return usage("check takes <file.jsonc>, got %d arguments", len(args))
	}
	path := args[0]

	data, err := readInput(env.stdin, path)
	if err != nil {
		return err
	}
	var entries []checkEntry
	if err := json.Unmarshal(jsonc.ToJSON(data), &entries); err != nil {
		return fmt.Errorf("%s: parsing check entries: %w", path, err)
	}

	summary := checkSummary{File: path, Results: make([]checkResult, 0, len(entries))}
	for i, entry := range entries {
		result := runCheck(i, entry)
		if result.Pass {
			summary.Passed++
		} else {
			summary.Failed++
			env.logger.Warn("check failed",
				"index", i,
				"type", entry.Type,
				"expect", result.Expect,
				"outcome", result.Outcome,
			)
		}
		summary.Results = append(summary.Results, result)
	}

	if err := writeReport(env.stdout, env.config.Output, summary); err != nil {
		return err
	}
	if summary.Failed > 0 {
		return &exitError{Code: 1}
	}
	return nil
}

func runCheck(index int, entry checkEntry) checkResult {
	result := checkResult{Index: index, Type: entry.Type, Expect: entry.Expect}
	if result.Expect == "" {
		result.Expect = outcomeOK
	}

	valueType, err := lookupType(entry.Type)
	if err != nil {
		result.Outcome = "unknown_type"
		result.Error = err.Error()
		return result
	}

	decoded, err := valueType.decode(entry.Value)
	if err != nil {
		result.Outcome = outcomeOf(err)
		result.Error = err.Error()
		result.Pass = result.Outcome == result.Expect
		return result
	}

	result.Outcome = outcomeOK
	result.Canonical = decoded.Canonical
	result.Pass = result.Expect == outcomeOK
	if entry.Canonical != "" && decoded.Canonical != entry.Canonical {
		result.Pass = false
		result.Error = fmt.Sprintf("canonical form %q, want %q", decoded.Canonical, entry.Canonical)
	}
	return result
}

// outcomeOf names a decode failure by its wire kind.
func outcomeOf(err error) string {
	if kind := wire.KindOf(err); kind != 0 {
		return kind.String()
	}
	return "error"
}
