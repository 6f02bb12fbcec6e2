// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import "errors"

var (
	// ErrNotELFFile is returned if the file does not have an ELF magic number.
	ErrNotELFFile = errors.New("is not an ELF file")

	// ErrArchNotSupported is returned if no disassembler is known for the
	// requested architecture.
	ErrArchNotSupported = errors.New("architecture not supported")

	// ErrEmptyPath is returned if an empty path is given.
	ErrEmptyPath = errors.New("path must not be empty")

	// ErrNotRegularFile is returned if a path does not point to a regular
	// file.
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrNotExecutable is returned if a file exists but can not be executed
	// by the current user.
	ErrNotExecutable = errors.New("not executable")
)
