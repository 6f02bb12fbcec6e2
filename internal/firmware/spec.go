// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package firmware

import (
	"debug/elf"
	"path/filepath"
	"time"

	"github.com/aibor/fwdisasm/internal/archive"
	"github.com/aibor/fwdisasm/internal/disasm"
	"github.com/aibor/fwdisasm/internal/sys"
)

// ListingExt is the file extension of disassembly listings.
const ListingExt = ".asm"

// Archive describes if and how the listing is archived.
type Archive struct {
	// Enabled packs the listing into an archive.
	Enabled bool
	// Format of the archive.
	Format archive.Format
	// KeepListing prevents removal of the listing once it is archived.
	KeepListing bool
}

// Spec describes the processing of a single firmware file.
type Spec struct {
	// Input is the ELF firmware file.
	Input string
	// OutputDir is the directory listing and archive are written to. If
	// empty, the directory of the input file is used.
	OutputDir string
	// Toolchain provides the disassemblers.
	Toolchain disasm.Toolchain
	// Timeout for a single disassembler run. Zero means no timeout.
	Timeout time.Duration
	// Archive settings.
	Archive Archive
	// Force regenerates listing and archive even if they exist already.
	Force bool
}

func (s *Spec) outputDir() string {
	if s.OutputDir != "" {
		return s.OutputDir
	}

	return filepath.Dir(s.Input)
}

// ListingName returns the file name of the listing, which is the input's
// base name with [ListingExt].
func (s *Spec) ListingName() string {
	return sys.TrimExt(s.Input) + ListingExt
}

// ListingPath returns the path the listing is written to.
func (s *Spec) ListingPath() string {
	return filepath.Join(s.outputDir(), s.ListingName())
}

// ArchivePath returns the path the archive is written to.
func (s *Spec) ArchivePath() string {
	format := s.Archive.Format
	if format == "" {
		format = archive.DefaultFormat
	}

	return filepath.Join(s.outputDir(), sys.TrimExt(s.Input)+format.Extension())
}

// Result describes the outcome of processing a single firmware file.
type Result struct {
	// Input is the processed firmware file.
	Input string
	// Arch is the detected architecture. It is empty if detection did not
	// run because existing output was reused.
	Arch sys.Arch
	// Machine is the raw ELF machine type.
	Machine elf.Machine
	// Listing is the path of the listing, if it is present after processing.
	Listing string
	// Archive is the path of the archive, if one was written or reused.
	Archive string
	// Skipped is true if all output existed already and nothing was done.
	Skipped bool
}
