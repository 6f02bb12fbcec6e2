// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package disasm runs external architecture specific disassemblers, usually
// binutils objdump builds, and stores their output as text listing.
package disasm
