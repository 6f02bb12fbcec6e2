// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mholt/archives"
)

const (
	archiveFileMode = 0o644
	entryFileMode   = 0o644
)

// Write writes an archive in the given format into w. It contains the single
// file at path stored with the given name.
func Write(
	ctx context.Context,
	w io.Writer,
	format Format,
	path string,
	name string,
) error {
	if !format.isKnown() {
		return fmt.Errorf("%w: %s", ErrFormatUnknown, format)
	}

	if name == "" {
		return ErrEmptyName
	}

	if format.IsCPIO() {
		return writeCPIO(w, format, path, name)
	}

	files, err := archives.FilesFromDisk(ctx, nil, map[string]string{
		path: name,
	})
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	err = format.archiver().Archive(ctx, w, files)
	if err != nil {
		return fmt.Errorf("write %s archive: %w", format, err)
	}

	return nil
}

func writeCPIO(w io.Writer, format Format, path, name string) (err error) {
	source, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	defer source.Close()

	if compression := format.compression(); compression != nil {
		compressor, openErr := compression.OpenWriter(w)
		if openErr != nil {
			return fmt.Errorf("open %s compressor: %w", format, openErr)
		}

		defer func() {
			closeErr := compressor.Close()
			if closeErr != nil {
				err = errors.Join(err, fmt.Errorf("close compressor: %w", closeErr))
			}
		}()

		w = compressor
	}

	writer := NewCPIOWriter(w)

	err = writer.WriteRegular(name, source, entryFileMode)
	if err != nil {
		_ = writer.Close()
		return err
	}

	return writer.Close()
}

// CreateFile writes an archive as described for [Write] into a new file at
// dst. An existing file at dst is replaced.
//
// The archive is written into a temporary file in the target directory
// first, so no incomplete archive is left behind in case of errors.
func CreateFile(
	ctx context.Context,
	dst string,
	format Format,
	path string,
	name string,
) error {
	dir, base := filepath.Dir(dst), filepath.Base(dst)

	file, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return fmt.Errorf("create archive file: %w", err)
	}

	slog.Debug("Writing archive",
		slog.String("path", file.Name()),
		slog.String("format", string(format)))

	err = writeFile(ctx, file, format, path, name)
	if err == nil {
		err = os.Rename(file.Name(), dst)
	}

	if err != nil {
		_ = os.Remove(file.Name())
		return err
	}

	return nil
}

func writeFile(
	ctx context.Context,
	file *os.File,
	format Format,
	path string,
	name string,
) error {
	err := Write(ctx, file, format, path, name)
	if err != nil {
		_ = file.Close()
		return err
	}

	err = file.Chmod(archiveFileMode)
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("chmod archive file: %w", err)
	}

	err = file.Close()
	if err != nil {
		return fmt.Errorf("close archive file: %w", err)
	}

	return nil
}
