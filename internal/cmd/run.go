// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	"github.com/aibor/fwdisasm/internal/firmware"
)

// Exit codes of [Run].
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// IO provides output details for the command.
type IO struct {
	Stdout io.Writer
	Stderr io.Writer
}

func newFlags(args []string, cfg IO) (*flags, error) {
	conf, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	args, err = MergedArgs(args)
	if err != nil {
		return nil, err
	}

	return parseArgs(args, conf, cfg.Stderr)
}

func run(ctx context.Context, flags *flags) error {
	files, err := firmware.Collect(flags.inputs...)
	if err != nil {
		return fmt.Errorf("collect firmware files: %w", err)
	}

	specs, err := flags.specs(files)
	if err != nil {
		return err
	}

	err = firmware.CheckConflicts(specs)
	if err != nil {
		return err //nolint:wrapcheck
	}

	slog.Debug("Processing firmware files",
		slog.Int("count", len(specs)),
		slog.Uint64("jobs", flags.jobs))

	results, err := firmware.ProcessAll(ctx, specs, int(flags.jobs))
	if err != nil {
		return fmt.Errorf("%d of %d files: %w",
			countErrors(err), len(specs), ErrProcessingFailed)
	}

	skipped := 0

	for _, result := range results {
		if result.Skipped {
			skipped++
		}
	}

	slog.Info("Done",
		slog.Int("files", len(results)),
		slog.Int("skipped", skipped))

	return nil
}

func countErrors(err error) int {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return 1
	}

	return len(joined.Unwrap())
}

func handleParseArgsError(err error) int {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return ExitOK
	}

	// ParseArgs already prints errors, so we just exit with an error.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return ExitUsage
}

// Failures of single files are already logged, so only the summary is
// printed.
func handleRunError(err error) int {
	slog.Error(err.Error())

	return ExitFailure
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	setupLogging(cfg.Stderr, slog.LevelInfo)

	flags, err := newFlags(args, cfg)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.logLevel())

	if flags.version {
		buildInfo, err := getBuildInfo()
		if err != nil {
			slog.Error(err.Error())
			return ExitFailure
		}

		fmt.Fprintf(cfg.Stdout, "Version: %s\n", buildInfo.Main.Version)

		return ExitOK
	}

	err = run(ctx, flags)
	if err != nil {
		return handleRunError(err)
	}

	return ExitOK
}

func getBuildInfo() (*debug.BuildInfo, error) {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, ErrReadBuildInfo
	}

	return buildInfo, nil
}
