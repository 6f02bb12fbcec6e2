// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package firmware implements the disassembly workflow for ELF firmware
// images.
//
// For each image the architecture is read from the ELF header, the matching
// disassembler writes a text listing and the listing is optionally packed
// into an archive. A failing step skips all following steps of the same
// image, but does not affect other images.
package firmware
