// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package firmware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// FirmwareExt is the file extension directories are searched for.
const FirmwareExt = ".elf"

// ProcessAll runs [Process] for all given specs with up to jobs files being
// processed concurrently.
//
// A failure for one file does not stop processing of the other files. Each
// failure is logged and all of them are returned joined. The results are in
// the same order as the specs.
func ProcessAll(ctx context.Context, specs []Spec, jobs int) ([]Result, error) {
	results := make([]Result, len(specs))
	errs := make([]error, len(specs))

	var group errgroup.Group

	group.SetLimit(max(jobs, 1))

	for idx, spec := range specs {
		group.Go(func() error {
			results[idx], errs[idx] = Process(ctx, spec)
			if errs[idx] != nil {
				slog.Error("Processing failed",
					slog.String("input", spec.Input),
					slog.Any("error", errs[idx]))
			}

			return nil
		})
	}

	_ = group.Wait()

	return results, errors.Join(errs...)
}

// Collect returns the firmware files for the given paths. Files are used as
// they are. Directories are searched, non-recursively, for files with
// [FirmwareExt] in any case. Symlinks to regular files are included.
func Collect(paths ...string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("read dir: %w", err)
		}

		for _, entry := range entries {
			if !strings.EqualFold(filepath.Ext(entry.Name()), FirmwareExt) {
				continue
			}

			file := filepath.Join(path, entry.Name())

			// Stat follows symlinks.
			info, err := os.Stat(file)
			if err != nil || !info.Mode().IsRegular() {
				slog.Debug("Skipping non-regular file",
					slog.String("path", file),
					slog.Any("error", err))

				continue
			}

			files = append(files, file)
		}
	}

	if len(files) == 0 {
		return nil, ErrNoInput
	}

	return files, nil
}

// CheckConflicts returns [ErrOutputConflict] if two specs would write the
// same listing file.
func CheckConflicts(specs []Spec) error {
	inputs := make(map[string]string, len(specs))

	for _, spec := range specs {
		listing := filepath.Clean(spec.ListingPath())

		other, exists := inputs[listing]
		if exists {
			return fmt.Errorf("%w: %s and %s write %s",
				ErrOutputConflict, other, spec.Input, listing)
		}

		inputs[listing] = spec.Input
	}

	return nil
}
