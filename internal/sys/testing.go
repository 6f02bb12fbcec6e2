// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

const elf32HeaderSize = 52

// WriteTestELF writes a minimal 32 bit little endian ELF file with the given
// machine type into dir and returns its path. The file has neither program
// nor section headers, which is enough for reading the machine type.
func WriteTestELF(tb testing.TB, dir, name string, machine elf.Machine) string {
	tb.Helper()

	var buf bytes.Buffer

	ident := [elf.EI_NIDENT]byte{
		0x7f, 'E', 'L', 'F',
		byte(elf.ELFCLASS32),
		byte(elf.ELFDATA2LSB),
		byte(elf.EV_CURRENT),
		byte(elf.ELFOSABI_NONE),
	}

	hdr := elf.Header32{
		Ident:   ident,
		Type:    uint16(elf.ET_EXEC),
		Machine: uint16(machine),
		Version: uint32(elf.EV_CURRENT),
		Ehsize:  elf32HeaderSize,
	}

	err := binary.Write(&buf, binary.LittleEndian, &hdr)
	if err != nil {
		tb.Fatalf("encode ELF header: %v", err)
	}

	path := filepath.Join(dir, name)

	err = os.WriteFile(path, buf.Bytes(), 0o600)
	if err != nil {
		tb.Fatalf("write ELF file %s: %v", path, err)
	}

	return path
}
