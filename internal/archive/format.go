// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"slices"
	"strings"

	"github.com/mholt/archives"
)

// Supported archive formats. The format name is also used as file extension.
const (
	FormatTarXz  Format = "tar.xz"
	FormatTarGz  Format = "tar.gz"
	FormatTarZst Format = "tar.zst"
	FormatTarBz2 Format = "tar.bz2"
	FormatZip    Format = "zip"
	FormatCPIO   Format = "cpio"
	FormatCPIOGz Format = "cpio.gz"
	FormatCPIOXz Format = "cpio.xz"
)

// DefaultFormat is used if no format is given. Like 7z, xz uses LZMA2, which
// suits large, repetitive text listings best.
const DefaultFormat = FormatTarXz

// Format is an archive format.
type Format string

// Formats returns all supported formats.
func Formats() []Format {
	return []Format{
		FormatTarXz,
		FormatTarGz,
		FormatTarZst,
		FormatTarBz2,
		FormatZip,
		FormatCPIO,
		FormatCPIOGz,
		FormatCPIOXz,
	}
}

// FormatNames returns the names of all supported formats, comma separated.
func FormatNames() string {
	names := make([]string, 0, len(Formats()))
	for _, format := range Formats() {
		names = append(names, string(format))
	}

	return strings.Join(names, ", ")
}

func (f Format) isKnown() bool {
	return slices.Contains(Formats(), f)
}

// String implements [fmt.Stringer].
func (f Format) String() string {
	if !f.isKnown() {
		return ""
	}

	return string(f)
}

// Extension returns the file name extension for the format including the
// leading dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// IsCPIO returns true for the cpio based formats.
func (f Format) IsCPIO() bool {
	return strings.HasPrefix(string(f), string(FormatCPIO))
}

// MarshalText implements [encoding.TextMarshaler].
func (f Format) MarshalText() ([]byte, error) {
	s := f.String()
	if s == "" {
		return nil, ErrFormatUnknown
	}

	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Format) UnmarshalText(text []byte) error {
	format := Format(strings.TrimPrefix(string(text), "."))

	if !format.isKnown() {
		return ErrFormatUnknown
	}

	*f = format

	return nil
}

// compression returns the compressor for the format. It is nil for
// uncompressed formats.
func (f Format) compression() archives.Compression {
	switch f {
	case FormatTarXz, FormatCPIOXz:
		return archives.Xz{}
	case FormatTarGz, FormatCPIOGz:
		return archives.Gz{}
	case FormatTarZst:
		return archives.Zstd{}
	case FormatTarBz2:
		return archives.Bz2{}
	default:
		return nil
	}
}

// archiver returns the archiver for tar and zip based formats.
func (f Format) archiver() archives.Archiver {
	if f == FormatZip {
		return archives.Zip{}
	}

	return archives.CompressedArchive{
		Compression: f.compression(),
		Archival:    archives.Tar{},
	}
}
