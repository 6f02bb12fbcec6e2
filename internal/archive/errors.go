// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import "errors"

var (
	// ErrFormatUnknown is returned if an archive format is not supported.
	ErrFormatUnknown = errors.New("unknown archive format")

	// ErrEmptyName is returned if the name of the archive entry is empty.
	ErrEmptyName = errors.New("archive entry name must not be empty")
)
