// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config reads the optional YAML configuration file. Its values are
// used as defaults for the command line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/aibor/fwdisasm/internal/archive"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = ".fwdisasm.yaml"

// Toolchain configures the disassemblers.
type Toolchain struct {
	ARM  string `yaml:"arm"`
	AVR  string `yaml:"avr"`
	Args string `yaml:"args"`
}

// Archive configures archiving of the listings.
type Archive struct {
	Enabled bool           `yaml:"enabled"`
	Format  archive.Format `yaml:"format"`
	Keep    bool           `yaml:"keep"`
}

// Config is the content of the configuration file. Zero values mean the
// built-in default is used.
type Config struct {
	Toolchain Toolchain     `yaml:"toolchain"`
	Output    string        `yaml:"output"`
	Archive   Archive       `yaml:"archive"`
	Jobs      uint64        `yaml:"jobs"`
	Timeout   time.Duration `yaml:"timeout"`
}

// Load reads the config file with the given name from fsys.
//
// If the file does not exist and required is false, an empty [Config] is
// returned. Unknown keys are rejected, so typos do not go unnoticed.
func Load(fsys fs.FS, name string, required bool) (*Config, error) {
	var cfg Config

	file, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return &cfg, nil
		}

		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	err = decoder.Decode(&cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config %s: %w", name, err)
	}

	return &cfg, nil
}
