// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"debug/elf"
	"fmt"
	"strings"
)

// ReadELFArch reads the machine type from the header of the ELF file with the
// given path and returns the matching [Arch] along with the raw machine type.
//
// If the file does not have an ELF magic number, [ErrNotELFFile] is returned.
// Machine types without a known disassembler are not an error. They result
// in [Unknown], so the caller can decide how to handle them.
func ReadELFArch(path string) (Arch, elf.Machine, error) {
	elfFile, err := elf.Open(path)
	if err != nil {
		if strings.Contains(err.Error(), "bad magic number") {
			return Unknown, elf.EM_NONE, fmt.Errorf("%s: %w", path, ErrNotELFFile)
		}

		return Unknown, elf.EM_NONE, fmt.Errorf("open ELF file: %w", err)
	}
	defer elfFile.Close()

	return ArchForMachine(elfFile.Machine), elfFile.Machine, nil
}
