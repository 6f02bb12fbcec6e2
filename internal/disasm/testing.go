// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package disasm

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFakeTool writes an executable shell script with the given body into
// dir and returns its path. It can be used in place of a real disassembler.
func WriteFakeTool(tb testing.TB, dir, name, body string) string {
	tb.Helper()

	path := filepath.Join(dir, name)

	err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o700)
	if err != nil {
		tb.Fatalf("write fake tool %s: %v", path, err)
	}

	return path
}
