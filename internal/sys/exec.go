// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"fmt"
	"os/exec"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// Executable resolves the given executable and checks that it can be run by
// the current user.
//
// Names without a path separator are looked up in PATH like the shell does.
// Paths are checked with access(2), so permission denied and missing files
// are detected before any process is started.
func Executable(name string) (string, error) {
	if name == "" {
		return "", ErrEmptyPath
	}

	if filepath.Base(name) == name {
		path, err := exec.LookPath(name)
		if err != nil {
			return "", fmt.Errorf("lookup: %w", err)
		}

		return path, nil
	}

	err := ValidateFilePath(name)
	if err != nil {
		return "", err
	}

	err = unix.Access(name, unix.X_OK)
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", name, ErrNotExecutable, err)
	}

	return name, nil
}
