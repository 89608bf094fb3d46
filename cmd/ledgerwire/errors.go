// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import "fmt"

// exitError signals a non-zero exit code without printing an extra
// error message: the command has already written its own output.
type exitError struct {
	Code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *exitError) ExitCode() int { return e.Code }

// usageError is bad command-line input. It exits with status 2.
type usageError struct {
	err error
}

func usage(format string, args ...any) *usageError {
	return &usageError{err: fmt.Errorf(format, args...)}
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func (e *usageError) ExitCode() int { return 2 }
