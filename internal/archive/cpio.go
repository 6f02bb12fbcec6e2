// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/cavaliergopher/cpio"
)

// CPIOWriter writes regular files into a cpio archive.
type CPIOWriter struct {
	cpioWriter *cpio.Writer
}

// NewCPIOWriter creates a new archive writer.
func NewCPIOWriter(w io.Writer) *CPIOWriter {
	return &CPIOWriter{cpio.NewWriter(w)}
}

// Close closes the [CPIOWriter]. Flush is called by the underlying closer.
func (w *CPIOWriter) Close() error {
	err := w.cpioWriter.Close()
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return nil
}

// WriteRegular copies the existing file from source into the archive. If
// mode is 0, the permissions of the source file are used.
func (w *CPIOWriter) WriteRegular(name string, source fs.File, mode fs.FileMode) error {
	info, err := source.Stat()
	if err != nil {
		return fmt.Errorf("read info: %w", err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", info.Name(), fs.ErrInvalid)
	}

	cpioHdr, err := cpio.FileInfoHeader(info, "")
	if err != nil {
		return fmt.Errorf("create header: %w", err)
	}

	cpioHdr.Name = name
	if mode != 0 {
		cpioHdr.Mode = cpio.TypeReg | cpio.FileMode(mode.Perm())
	}

	err = w.cpioWriter.WriteHeader(cpioHdr)
	if err != nil {
		return fmt.Errorf("write header for %s: %w", name, err)
	}

	_, err = io.Copy(w.cpioWriter, source)
	if err != nil {
		return fmt.Errorf("write body for %s: %w", name, err)
	}

	return nil
}
