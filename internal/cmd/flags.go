// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aibor/fwdisasm/internal/archive"
	"github.com/aibor/fwdisasm/internal/config"
	"github.com/aibor/fwdisasm/internal/disasm"
	"github.com/aibor/fwdisasm/internal/firmware"
	"github.com/aibor/fwdisasm/internal/sys"
)

const (
	name = "fwdisasm"

	jobsDefault = 1
	jobsMin     = 1
	jobsMax     = 64

	usageMessage = `Usage of 'fwdisasm':
    fwdisasm [flags...] firmware [firmware...]

Disassembles ELF firmware files with the objdump matching their architecture
(ARM or AVR) and optionally packs the listings into archives. Directories are
searched for *.elf files.

Example:
	fwdisasm -archive -outdir output/assemblies input/firmwares

All flags can also be provided via environment variable FWDISASM_ARGS:
	FWDISASM_ARGS="-archive -format zip" fwdisasm blink.elf

Defaults can be set in the YAML file .fwdisasm.yaml in the working directory
or in the file given by environment variable FWDISASM_CONFIG.
`
)

type flags struct {
	toolchain disasm.Toolchain
	toolArgs  string
	outputDir string
	archive   firmware.Archive
	force     bool
	jobs      uint64
	timeout   time.Duration
	inputs    []string

	quiet   bool
	debug   bool
	version bool

	flagSet *flag.FlagSet
}

func flagsFromConfig(cfg *config.Config, output io.Writer) *flags {
	flags := &flags{
		toolchain: disasm.DefaultToolchain(),
		toolArgs:  strings.Join(disasm.DefaultArgs, " "),
		outputDir: cfg.Output,
		archive: firmware.Archive{
			Enabled:     cfg.Archive.Enabled,
			Format:      archive.DefaultFormat,
			KeepListing: cfg.Archive.Keep,
		},
		jobs:    jobsDefault,
		timeout: cfg.Timeout,
	}

	if cfg.Toolchain.ARM != "" {
		flags.toolchain.ARM = cfg.Toolchain.ARM
	}

	if cfg.Toolchain.AVR != "" {
		flags.toolchain.AVR = cfg.Toolchain.AVR
	}

	if cfg.Toolchain.Args != "" {
		flags.toolArgs = cfg.Toolchain.Args
	}

	if cfg.Archive.Format != "" {
		flags.archive.Format = cfg.Archive.Format
	}

	if cfg.Jobs != 0 {
		flags.jobs = cfg.Jobs
	}

	flags.initFlagset(output)

	return flags
}

// parseArgs parses the given arguments. The first one is the program name.
// Values of cfg are used as defaults.
func parseArgs(args []string, cfg *config.Config, output io.Writer) (*flags, error) {
	flags := flagsFromConfig(cfg, output)

	if len(args) > 0 {
		args = args[1:]
	}

	err := flags.ParseArgs(args)
	if err != nil {
		return nil, err
	}

	return flags, nil
}

func (f *flags) ParseArgs(args []string) error {
	// Parses arguments up to the first one that is not prefixed with a "-" or
	// is "--".
	err := f.flagSet.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	if f.version {
		return nil
	}

	jobs := LimitedUintValue{Lower: jobsMin, Upper: jobsMax}

	err = jobs.check(f.jobs)
	if err != nil {
		return f.fail("jobs", err)
	}

	toolArgs, err := disasm.SplitArgs(f.toolArgs)
	if err != nil {
		return f.fail("objdump args", err)
	}

	f.toolchain.Args = toolArgs

	f.inputs = f.flagSet.Args()
	if len(f.inputs) < 1 {
		return f.fail("no firmware given", nil)
	}

	return nil
}

func (f *flags) initFlagset(output io.Writer) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage

	flagSet.StringVar(
		&f.toolchain.ARM,
		"arm-objdump",
		f.toolchain.ARM,
		"objdump for ARM firmware (name in PATH or path)",
	)

	flagSet.StringVar(
		&f.toolchain.AVR,
		"avr-objdump",
		f.toolchain.AVR,
		"objdump for AVR firmware (name in PATH or path)",
	)

	flagSet.StringVar(
		&f.toolArgs,
		"objdump-args",
		f.toolArgs,
		"objdump arguments, quoted like in a shell. The firmware file is "+
			"appended. Empty uses the default.",
	)

	flagSet.StringVar(
		&f.outputDir,
		"outdir",
		f.outputDir,
		"directory for listings and archives (default is the firmware's "+
			"directory)",
	)

	flagSet.BoolVar(
		&f.archive.Enabled,
		"archive",
		f.archive.Enabled,
		"pack listings into archives and delete them",
	)

	flagSet.TextVar(
		&f.archive.Format,
		"format",
		f.archive.Format,
		"archive format: "+archive.FormatNames(),
	)

	flagSet.BoolVar(
		&f.archive.KeepListing,
		"keep",
		f.archive.KeepListing,
		"keep listings once archived",
	)

	flagSet.BoolVar(
		&f.force,
		"force",
		f.force,
		"regenerate listings and archives that exist already",
	)

	flagSet.Var(
		&LimitedUintValue{
			Value: &f.jobs,
			Lower: jobsMin,
			Upper: jobsMax,
		},
		"jobs",
		"number of firmware files processed in parallel",
	)

	flagSet.DurationVar(
		&f.timeout,
		"timeout",
		f.timeout,
		"timeout for a single objdump run (0 means none)",
	)

	flagSet.BoolVar(
		&f.quiet,
		"quiet",
		f.quiet,
		"only print warnings and errors",
	)

	flagSet.BoolVar(
		&f.debug,
		"debug",
		f.debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.version,
		"version",
		f.version,
		"show version and exit",
	)

	f.flagSet = flagSet
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *flags) usage() {
	fmt.Fprint(f.flagSet.Output(), usageMessage)
	fmt.Fprintln(f.flagSet.Output(), "\nFlags:")
	f.flagSet.PrintDefaults()
}

func (f *flags) logLevel() slog.Level {
	switch {
	case f.debug:
		return slog.LevelDebug
	case f.quiet:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// specs returns a [firmware.Spec] for each file. Input and output paths are
// absolute, so output files are always created in a known directory.
func (f *flags) specs(files []string) ([]firmware.Spec, error) {
	outputDir := f.outputDir
	if outputDir != "" {
		var err error

		outputDir, err = sys.AbsolutePath(outputDir)
		if err != nil {
			return nil, fmt.Errorf("output dir: %w", err)
		}
	}

	specs := make([]firmware.Spec, len(files))

	for idx, file := range files {
		input, err := sys.AbsolutePath(file)
		if err != nil {
			return nil, fmt.Errorf("firmware path: %w", err)
		}

		specs[idx] = firmware.Spec{
			Input:     input,
			OutputDir: outputDir,
			Toolchain: f.toolchain,
			Timeout:   f.timeout,
			Archive:   f.archive,
			Force:     f.force,
		}
	}

	return specs, nil
}
