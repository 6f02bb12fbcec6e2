// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package disasm

import (
	"errors"
	"strings"
)

var (
	// ErrToolNotConfigured is returned if no disassembler is set for a
	// supported architecture.
	ErrToolNotConfigured = errors.New("no disassembler configured")

	// ErrNoInput is returned if a [Spec] has no input file.
	ErrNoInput = errors.New("no input file")

	// ErrNoOutput is returned if a [Spec] has no output file.
	ErrNoOutput = errors.New("no output file")
)

// ExecError is returned if the disassembler could not be run or returned with
// a non-zero exit code.
type ExecError struct {
	Tool   string
	Err    error
	Stderr string
}

// Error implements the [error] interface.
func (e *ExecError) Error() string {
	msg := e.Tool + ": " + e.Err.Error()

	stderr := strings.TrimSpace(e.Stderr)
	if stderr != "" {
		msg += ": " + stderr
	}

	return msg
}

// Is implements the [errors.Is] interface.
func (*ExecError) Is(other error) bool {
	_, ok := other.(*ExecError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ExecError) Unwrap() error {
	return e.Err
}
