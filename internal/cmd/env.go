// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aibor/fwdisasm/internal/config"
	"github.com/kballard/go-shellquote"
)

const (
	// EnvArgs is the environment variable holding additional arguments.
	EnvArgs = "FWDISASM_ARGS"

	// EnvConfig is the environment variable holding the config file path.
	EnvConfig = "FWDISASM_CONFIG"
)

// ArgsFromEnv returns fwdisasm arguments from the environment. The value is
// split like a POSIX shell would do, so quoted arguments may contain spaces.
func ArgsFromEnv() ([]string, error) {
	args, err := shellquote.Split(os.Getenv(EnvArgs))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvArgs, err)
	}

	return args, nil
}

// MergedArgs inserts the arguments from the environment right after the
// program name, so arguments given on the command line take precedence.
func MergedArgs(args []string) ([]string, error) {
	envArgs, err := ArgsFromEnv()
	if err != nil {
		return nil, err
	}

	if len(args) == 0 {
		return envArgs, nil
	}

	merged := make([]string, 0, len(args)+len(envArgs))
	merged = append(merged, args[0])
	merged = append(merged, envArgs...)
	merged = append(merged, args[1:]...)

	return merged, nil
}

// LoadConfig reads the config file named by [EnvConfig]. If unset, the
// optional [config.DefaultFile] in the working directory is read.
func LoadConfig() (*config.Config, error) {
	path, explicit := os.LookupEnv(EnvConfig)
	if !explicit || path == "" {
		return config.Load(os.DirFS("."), config.DefaultFile, false) //nolint:wrapcheck
	}

	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	return config.Load(os.DirFS(dir), name, true) //nolint:wrapcheck
}
