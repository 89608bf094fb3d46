// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/bureau-foundation/ledgerwire/lib/config"
)

// newLogger builds the command logger from the log section. With
// format auto, a terminal gets slog.TextHandler and anything else
// (pipes, CI, files) gets slog.JSONHandler. LEDGERWIRE_DEBUG forces
// debug level. The returned function closes the log file, if any, and
// reports a failed final write.
func newLogger(logConfig config.LogConfig, stderr io.Writer) (*slog.Logger, func() error, error) {
	level := slog.LevelInfo
	if err := level.UnmarshalText([]byte(logConfig.Level)); err != nil {
		return nil, nil, fmt.Errorf("log.level: %w", err)
	}
	if os.Getenv("LEDGERWIRE_DEBUG") != "" {
		level = slog.LevelDebug
	}

	output := stderr
	closeOutput := func() error { return nil }
	if logConfig.File != "" {
		file, err := os.OpenFile(logConfig.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		output = file
		closeOutput = func() error {
			if err := file.Close(); err != nil {
				return fmt.Errorf("closing log file: %w", err)
			}
			return nil
		}
	}

	options := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch logConfig.Format {
	case config.LogFormatText:
		handler = slog.NewTextHandler(output, options)
	case config.LogFormatJSON:
		handler = slog.NewJSONHandler(output, options)
	default:
		if isTerminal(output) {
			handler = slog.NewTextHandler(output, options)
		} else {
			handler = slog.NewJSONHandler(output, options)
		}
	}
	return slog.New(handler), closeOutput, nil
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
