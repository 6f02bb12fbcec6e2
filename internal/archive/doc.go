// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package archive packs disassembly listings into compressed archives.
//
// Tar and zip based formats are written with [github.com/mholt/archives]. The
// cpio formats are written with [github.com/cavaliergopher/cpio] in "newc"
// format and optionally compressed.
package archive
