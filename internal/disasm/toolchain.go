// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package disasm

import (
	"fmt"

	"github.com/aibor/fwdisasm/internal/sys"
	"github.com/kballard/go-shellquote"
)

// Default disassemblers as shipped by the GNU ARM embedded toolchain and the
// avr-gcc toolchain.
const (
	DefaultARMTool = "arm-none-eabi-objdump"
	DefaultAVRTool = "avr-objdump"
)

// DefaultArgs makes objdump disassemble all sections, not only the ones
// expected to contain instructions. Firmware images often place code in
// sections objdump would otherwise skip.
var DefaultArgs = []string{"-D"}

// Toolchain holds the disassembler executables per architecture.
type Toolchain struct {
	ARM  string
	AVR  string
	Args []string
}

// DefaultToolchain returns a [Toolchain] that relies on the disassemblers
// being present in PATH.
func DefaultToolchain() Toolchain {
	return Toolchain{
		ARM:  DefaultARMTool,
		AVR:  DefaultAVRTool,
		Args: DefaultArgs,
	}
}

// ToolFor returns the disassembler to use for the given architecture.
func (t Toolchain) ToolFor(arch sys.Arch) (string, error) {
	var tool string

	switch arch {
	case sys.ARM:
		tool = t.ARM
	case sys.AVR:
		tool = t.AVR
	default:
		return "", fmt.Errorf("%w: %s", sys.ErrArchNotSupported, arch)
	}

	if tool == "" {
		return "", fmt.Errorf("%w: %s", ErrToolNotConfigured, arch)
	}

	return tool, nil
}

// SplitArgs splits the given string into tool arguments the way a POSIX
// shell does. It returns nil for a blank string.
func SplitArgs(s string) ([]string, error) {
	args, err := shellquote.Split(s)
	if err != nil {
		return nil, fmt.Errorf("split tool args: %w", err)
	}

	if len(args) == 0 {
		return nil, nil
	}

	return args, nil
}
