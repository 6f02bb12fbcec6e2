// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package disasm_test

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/aibor/fwdisasm/internal/disasm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRunTest(t *testing.T) (string, string, string) {
	t.Helper()

	toolDir := t.TempDir()
	outDir := t.TempDir()

	input := filepath.Join(toolDir, "firmware.elf")
	require.NoError(t, os.WriteFile(input, []byte("\x7fELF"), 0o600))

	return toolDir, outDir, input
}

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no leftover files expected")
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "default args",
			args:     disasm.DefaultArgs,
			expected: "-D %s\n",
		},
		{
			name:     "custom args",
			args:     []string{"-d", "-M", "force-thumb"},
			expected: "-d -M force-thumb %s\n",
		},
		{
			name:     "no args",
			expected: "%s\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toolDir, outDir, input := setupRunTest(t)
			output := filepath.Join(outDir, "firmware.asm")

			err := disasm.Run(t.Context(), disasm.Spec{
				Tool:   disasm.WriteFakeTool(t, toolDir, "objdump", `echo "$@"`),
				Args:   tt.args,
				Input:  input,
				Output: output,
			})
			require.NoError(t, err)

			content, err := os.ReadFile(output)
			require.NoError(t, err)
			assert.Equal(t, []string{"firmware.asm"}, dirNames(t, outDir))

			expected := []byte(fmt.Sprintf(tt.expected, input))
			assert.Equal(t, expected, content)

			info, err := os.Stat(output)
			require.NoError(t, err)
			assert.Equal(t, fs.FileMode(0o644), info.Mode().Perm())
		})
	}
}

func TestRun_ReplacesExisting(t *testing.T) {
	toolDir, outDir, input := setupRunTest(t)
	output := filepath.Join(outDir, "firmware.asm")

	require.NoError(t, os.WriteFile(output, []byte("stale"), 0o600))

	err := disasm.Run(t.Context(), disasm.Spec{
		Tool:   disasm.WriteFakeTool(t, toolDir, "objdump", `echo fresh`),
		Input:  input,
		Output: output,
	})
	require.NoError(t, err)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "fresh\n", string(content))
}

func TestRun_BareOutputName(t *testing.T) {
	toolDir, outDir, input := setupRunTest(t)
	tmpDir := t.TempDir()

	t.Chdir(outDir)
	t.Setenv("TMPDIR", tmpDir)

	err := disasm.Run(t.Context(), disasm.Spec{
		Tool:   disasm.WriteFakeTool(t, toolDir, "objdump", `echo "$@"`),
		Input:  input,
		Output: "firmware.asm",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"firmware.asm"}, dirNames(t, outDir))
	assertDirEmpty(t, tmpDir)
}

func TestRun_Errors(t *testing.T) {
	t.Run("invalid spec", func(t *testing.T) {
		tests := []struct {
			name        string
			spec        disasm.Spec
			expectedErr error
		}{
			{
				name:        "no tool",
				spec:        disasm.Spec{Input: "in", Output: "out"},
				expectedErr: disasm.ErrToolNotConfigured,
			},
			{
				name:        "no input",
				spec:        disasm.Spec{Tool: "objdump", Output: "out"},
				expectedErr: disasm.ErrNoInput,
			},
			{
				name:        "no output",
				spec:        disasm.Spec{Tool: "objdump", Input: "in"},
				expectedErr: disasm.ErrNoOutput,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := disasm.Run(t.Context(), tt.spec)
				require.ErrorIs(t, err, tt.expectedErr)
			})
		}
	})

	t.Run("non-zero exit code", func(t *testing.T) {
		toolDir, outDir, input := setupRunTest(t)
		body := `echo "00000000 <__vectors>:"
echo "objdump: can't disassemble for architecture UNKNOWN!" >&2
exit 1`

		err := disasm.Run(t.Context(), disasm.Spec{
			Tool:   disasm.WriteFakeTool(t, toolDir, "objdump", body),
			Input:  input,
			Output: filepath.Join(outDir, "firmware.asm"),
		})

		var (
			execErr *disasm.ExecError
			exitErr *exec.ExitError
		)

		require.ErrorAs(t, err, &execErr)
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 1, exitErr.ExitCode())
		assert.Contains(t, execErr.Stderr, "can't disassemble")

		assertDirEmpty(t, outDir)
	})

	t.Run("tool not existing", func(t *testing.T) {
		toolDir, outDir, input := setupRunTest(t)

		err := disasm.Run(t.Context(), disasm.Spec{
			Tool:   filepath.Join(toolDir, "nonexistent"),
			Input:  input,
			Output: filepath.Join(outDir, "firmware.asm"),
		})
		require.ErrorIs(t, err, &disasm.ExecError{})
		require.ErrorIs(t, err, fs.ErrNotExist)

		assertDirEmpty(t, outDir)
	})

	t.Run("tool not in PATH", func(t *testing.T) {
		_, outDir, input := setupRunTest(t)
		t.Setenv("PATH", "")

		err := disasm.Run(t.Context(), disasm.Spec{
			Tool:   "avr-objdump",
			Input:  input,
			Output: filepath.Join(outDir, "firmware.asm"),
		})
		require.ErrorIs(t, err, &disasm.ExecError{})
		require.ErrorIs(t, err, exec.ErrNotFound)

		assertDirEmpty(t, outDir)
	})

	t.Run("output dir not existing", func(t *testing.T) {
		toolDir, outDir, input := setupRunTest(t)

		err := disasm.Run(t.Context(), disasm.Spec{
			Tool:   disasm.WriteFakeTool(t, toolDir, "objdump", `echo`),
			Input:  input,
			Output: filepath.Join(outDir, "missing", "firmware.asm"),
		})
		require.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("timeout", func(t *testing.T) {
		toolDir, outDir, input := setupRunTest(t)

		err := disasm.Run(t.Context(), disasm.Spec{
			Tool:    disasm.WriteFakeTool(t, toolDir, "objdump", `exec sleep 10`),
			Input:   input,
			Output:  filepath.Join(outDir, "firmware.asm"),
			Timeout: 50 * time.Millisecond,
		})
		require.ErrorIs(t, err, &disasm.ExecError{})

		assertDirEmpty(t, outDir)
	})
}

func dirNames(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	return names
}
