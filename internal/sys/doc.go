// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package sys provides helpers for inspecting files on the host system: the
// architecture of ELF firmware images, path handling and lookup of external
// executables.
package sys
