// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package firmware

import (
	"context"
	"debug/elf"
	"fmt"
	"log/slog"
	"os"

	"github.com/aibor/fwdisasm/internal/archive"
	"github.com/aibor/fwdisasm/internal/disasm"
	"github.com/aibor/fwdisasm/internal/sys"
)

const outputDirMode = 0o755

// Process runs the workflow for a single firmware file as described by the
// given [Spec].
//
// Existing output is reused unless [Spec.Force] is set: an existing archive
// skips the file completely, an existing listing skips the disassembly. Errors
// are returned as [StepError] naming the step that failed. No further steps
// are run after a failed one.
func Process(ctx context.Context, spec Spec) (Result, error) {
	result := Result{Input: spec.Input}

	err := ctx.Err()
	if err != nil {
		return result, fmt.Errorf("%s: %w", spec.Input, err)
	}

	logger := slog.With(slog.String("input", spec.Input))
	listingPath := spec.ListingPath()
	archivePath := spec.ArchivePath()

	if spec.Archive.Enabled && !spec.Force && sys.FileExists(archivePath) {
		logger.Info("Archive already exists",
			slog.String("archive", archivePath))

		result.Archive = archivePath
		result.Skipped = true

		return result, nil
	}

	if !spec.Force && sys.FileExists(listingPath) {
		logger.Info("Disassembly file already exists",
			slog.String("listing", listingPath))

		result.Skipped = !spec.Archive.Enabled
	} else {
		err := disassemble(ctx, spec, &result, listingPath)
		if err != nil {
			return result, err
		}
	}

	result.Listing = listingPath

	if !spec.Archive.Enabled {
		return result, nil
	}

	return compress(ctx, spec, result, archivePath)
}

func disassemble(
	ctx context.Context,
	spec Spec,
	result *Result,
	listingPath string,
) error {
	stepErr := func(step Step, err error) error {
		return &StepError{Input: spec.Input, Step: step, Err: err}
	}

	arch, machine, err := sys.ReadELFArch(spec.Input)
	if err != nil {
		return stepErr(StepDetect, err)
	}

	result.Arch = arch
	result.Machine = machine

	slog.Info("Inferred architecture",
		slog.String("input", spec.Input),
		slog.String("arch", archLabel(arch, machine)))

	tool, err := spec.Toolchain.ToolFor(arch)
	if err != nil {
		return stepErr(StepDisassemble, err)
	}

	tool, err = sys.Executable(tool)
	if err != nil {
		return stepErr(StepDisassemble, fmt.Errorf("disassembler: %w", err))
	}

	err = os.MkdirAll(spec.outputDir(), outputDirMode)
	if err != nil {
		return stepErr(StepDisassemble, fmt.Errorf("create output dir: %w", err))
	}

	args := spec.Toolchain.Args
	if args == nil {
		args = disasm.DefaultArgs
	}

	err = disasm.Run(ctx, disasm.Spec{
		Tool:    tool,
		Args:    args,
		Input:   spec.Input,
		Output:  listingPath,
		Timeout: spec.Timeout,
	})
	if err != nil {
		return stepErr(StepDisassemble, err)
	}

	slog.Info("Disassembled",
		slog.String("input", spec.Input),
		slog.String("listing", listingPath))

	return nil
}

func compress(
	ctx context.Context,
	spec Spec,
	result Result,
	archivePath string,
) (Result, error) {
	format := spec.Archive.Format
	if format == "" {
		format = archive.DefaultFormat
	}

	err := archive.CreateFile(ctx, archivePath, format, result.Listing, spec.ListingName())
	if err != nil {
		return result, &StepError{Input: spec.Input, Step: StepArchive, Err: err}
	}

	result.Archive = archivePath

	if spec.Archive.KeepListing {
		slog.Info("Assembly file compressed",
			slog.String("input", spec.Input),
			slog.String("archive", archivePath))

		return result, nil
	}

	err = os.Remove(result.Listing)
	if err != nil {
		return result, &StepError{Input: spec.Input, Step: StepCleanup, Err: err}
	}

	result.Listing = ""

	slog.Info("Assembly file compressed and cleaned up",
		slog.String("input", spec.Input),
		slog.String("archive", archivePath))

	return result, nil
}

func archLabel(arch sys.Arch, machine elf.Machine) string {
	if arch == sys.Unknown {
		return fmt.Sprintf("%s (e_machine=%s)", arch.Label(), machine)
	}

	return arch.Label()
}
