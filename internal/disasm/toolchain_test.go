// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package disasm_test

import (
	"testing"

	"github.com/aibor/fwdisasm/internal/disasm"
	"github.com/aibor/fwdisasm/internal/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolchain_ToolFor(t *testing.T) {
	toolchain := disasm.Toolchain{
		ARM: "/opt/arm/bin/arm-none-eabi-objdump",
		AVR: "/opt/avr/bin/avr-objdump",
	}

	tests := []struct {
		name        string
		toolchain   disasm.Toolchain
		arch        sys.Arch
		expected    string
		expectedErr error
	}{
		{
			name:      "arm",
			toolchain: toolchain,
			arch:      sys.ARM,
			expected:  "/opt/arm/bin/arm-none-eabi-objdump",
		},
		{
			name:      "avr",
			toolchain: toolchain,
			arch:      sys.AVR,
			expected:  "/opt/avr/bin/avr-objdump",
		},
		{
			name:        "unknown",
			toolchain:   toolchain,
			arch:        sys.Unknown,
			expectedErr: sys.ErrArchNotSupported,
		},
		{
			name:        "arm not configured",
			toolchain:   disasm.Toolchain{AVR: "avr-objdump"},
			arch:        sys.ARM,
			expectedErr: disasm.ErrToolNotConfigured,
		},
		{
			name:        "avr not configured",
			toolchain:   disasm.Toolchain{ARM: "arm-none-eabi-objdump"},
			arch:        sys.AVR,
			expectedErr: disasm.ErrToolNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := tt.toolchain.ToolFor(tt.arch)
			require.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestDefaultToolchain(t *testing.T) {
	toolchain := disasm.DefaultToolchain()

	assert.Equal(t, "arm-none-eabi-objdump", toolchain.ARM)
	assert.Equal(t, "avr-objdump", toolchain.AVR)
	assert.Equal(t, []string{"-D"}, toolchain.Args)
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  []string
		assertErr require.ErrorAssertionFunc
	}{
		{
			name:      "empty",
			assertErr: require.NoError,
		},
		{
			name:      "single",
			input:     "-D",
			expected:  []string{"-D"},
			assertErr: require.NoError,
		},
		{
			name:      "multiple",
			input:     "-d -C  --no-show-raw-insn",
			expected:  []string{"-d", "-C", "--no-show-raw-insn"},
			assertErr: require.NoError,
		},
		{
			name:      "quoted",
			input:     `-D -M 'force-thumb,reg-names-std' --prefix="/opt/src dir"`,
			expected:  []string{"-D", "-M", "force-thumb,reg-names-std", "--prefix=/opt/src dir"},
			assertErr: require.NoError,
		},
		{
			name:      "unterminated quote",
			input:     `-M "force-thumb`,
			assertErr: require.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := disasm.SplitArgs(tt.input)
			tt.assertErr(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}
