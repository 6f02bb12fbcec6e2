// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package disasm

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"time"
)

const (
	listingFileMode = 0o644

	// Time to wait for the output pipes to be closed once the process is
	// killed on context cancellation.
	waitDelay = time.Second
)

// Spec describes a single disassembler run.
type Spec struct {
	// Tool is the disassembler executable.
	Tool string
	// Args are passed to the tool before the input file.
	Args []string
	// Input is the ELF file to disassemble.
	Input string
	// Output is the path the listing is written to.
	Output string
	// Timeout for the tool. Zero means no timeout.
	Timeout time.Duration
}

func (s *Spec) validate() error {
	switch {
	case s.Tool == "":
		return ErrToolNotConfigured
	case s.Input == "":
		return ErrNoInput
	case s.Output == "":
		return ErrNoOutput
	default:
		return nil
	}
}

// Run runs the disassembler as described by the given [Spec].
//
// The tool's stdout is written into a temporary file next to [Spec.Output]
// that is renamed to [Spec.Output] once the tool succeeded. So, the output
// file only exists if the tool returned successfully. It returns an
// [ExecError] in case the tool is not available or returned with a non-zero
// exit code.
func Run(ctx context.Context, spec Spec) error {
	err := spec.validate()
	if err != nil {
		return err
	}

	if spec.Timeout > 0 {
		var stop context.CancelFunc

		ctx, stop = context.WithTimeout(ctx, spec.Timeout)
		defer stop()
	}

	dir, name := filepath.Dir(spec.Output), filepath.Base(spec.Output)

	listing, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return fmt.Errorf("create listing file: %w", err)
	}

	err = writeListing(ctx, spec, listing)
	if err != nil {
		_ = os.Remove(listing.Name())
		return err
	}

	err = os.Rename(listing.Name(), spec.Output)
	if err != nil {
		_ = os.Remove(listing.Name())
		return fmt.Errorf("move listing file: %w", err)
	}

	return nil
}

func writeListing(ctx context.Context, spec Spec, listing *os.File) error {
	err := runTool(ctx, spec, listing)
	if err != nil {
		_ = listing.Close()
		return err
	}

	err = listing.Chmod(listingFileMode)
	if err != nil {
		_ = listing.Close()
		return fmt.Errorf("chmod listing file: %w", err)
	}

	err = listing.Close()
	if err != nil {
		return fmt.Errorf("close listing file: %w", err)
	}

	return nil
}

func runTool(ctx context.Context, spec Spec, outW io.Writer) error {
	var stderrBuf bytes.Buffer

	args := append(slices.Clone(spec.Args), spec.Input)

	cmd := exec.CommandContext(ctx, spec.Tool, args...)
	cmd.Stdout = outW
	cmd.Stderr = &stderrBuf
	cmd.WaitDelay = waitDelay

	slog.Debug("Run disassembler", slog.String("command", cmd.String()))

	err := cmd.Run()
	if err != nil {
		return &ExecError{
			Tool:   spec.Tool,
			Err:    err,
			Stderr: stderrBuf.String(),
		}
	}

	return nil
}
