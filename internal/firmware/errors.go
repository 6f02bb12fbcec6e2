// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package firmware

import (
	"errors"
	"fmt"
)

var (
	// ErrNoInput is returned if no firmware files are found.
	ErrNoInput = errors.New("no firmware files found")

	// ErrOutputConflict is returned if multiple inputs would be written to
	// the same output file.
	ErrOutputConflict = errors.New("conflicting output files")
)

// Step is a single step of the firmware workflow.
type Step string

// Workflow steps in the order they run.
const (
	StepDetect      Step = "detect architecture"
	StepDisassemble Step = "disassemble"
	StepArchive     Step = "archive"
	StepCleanup     Step = "clean up"
)

// StepError wraps errors occurring in a workflow step for a single input.
type StepError struct {
	Input string
	Step  Step
	Err   error
}

// Error implements the [error] interface.
func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Input, e.Step, e.Err)
}

// Is implements the [errors.Is] interface.
func (*StepError) Is(other error) bool {
	_, ok := other.(*StepError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *StepError) Unwrap() error {
	return e.Err
}
