// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"debug/elf"
	"slices"
)

// Arch is a firmware architecture a disassembler is available for.
type Arch string

// Supported firmware architectures.
const (
	ARM     Arch = "arm"
	AVR     Arch = "avr"
	Unknown Arch = "unknown"
)

// ArchForMachine returns the [Arch] for the given ELF machine type. All machine
// types except [elf.EM_ARM] and [elf.EM_AVR] result in [Unknown].
func ArchForMachine(machine elf.Machine) Arch {
	switch machine {
	case elf.EM_ARM:
		return ARM
	case elf.EM_AVR:
		return AVR
	default:
		return Unknown
	}
}

func (a Arch) isKnown() bool {
	return slices.Contains([]Arch{ARM, AVR}, a)
}

// String implements [fmt.Stringer].
func (a Arch) String() string {
	if !a.isKnown() {
		return string(Unknown)
	}

	return string(a)
}

// Label returns a human readable description of the architecture.
func (a Arch) Label() string {
	switch a {
	case ARM:
		return "ARM Cortex-M (e.g., STM32)"
	case AVR:
		return "AVR (Atmel/Microchip)"
	default:
		return "Unknown architecture"
	}
}
