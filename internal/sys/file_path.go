// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AbsolutePath returns the absolute path as resolved by [filepath.Abs].
//
// It returns [ErrEmptyPath] if the given path is empty.
func AbsolutePath(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}

	path, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}

	return path, nil
}

// MustAbsolutePath calls [AbsolutePath] and panics in case of errors.
func MustAbsolutePath(path string) string {
	abs, err := AbsolutePath(path)
	if err != nil {
		panic(err)
	}

	return abs
}

// ValidateFilePath returns an error if the given path does not exist or is
// not a regular file.
func ValidateFilePath(path string) error {
	stat, err := os.Stat(path)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !stat.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}

	return nil
}

// FileExists reports whether a regular file exists at the given path.
func FileExists(path string) bool {
	return ValidateFilePath(path) == nil
}

// TrimExt returns the base name of the given path without its extension.
func TrimExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
