// Copyright 2026 The Muse Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides user configuration loading for the muse CLI.
//
// Configuration is loaded from a single YAML file, located by:
//   - the --config flag passed to the command, or
//   - the MUSE_CONFIG environment variable, or
//   - $XDG_CONFIG_HOME/muse/muse.yaml (via os.UserConfigDir).
//
// A missing file at the default location is not an error: muse is a
// client tool and works out of the box with [Default] values. An
// explicitly named file that does not exist is an error, since the
// user asked for it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the user configuration for muse.
type Config struct {
	// TickRateMilliseconds is the UI tick rate: the lower the number,
	// the higher the refresh rate, at a CPU cost. Bounded [10,1000].
	TickRateMilliseconds int `yaml:"tick_rate_milliseconds"`

	// VolumeIncrement is the step used by volume up/down keys,
	// bounded [1,100].
	VolumeIncrement int `yaml:"volume_increment"`

	// Device is the playback device used when a command names none.
	Device string `yaml:"device"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		TickRateMilliseconds: 250,
		VolumeIncrement:      10,
	}
}

// Load loads configuration from MUSE_CONFIG or the default path.
func Load() (*Config, error) {
	if path := os.Getenv("MUSE_CONFIG"); path != "" {
		return LoadFile(path)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		// No config directory means no config file; defaults apply.
		return Default(), nil
	}

	cfg := Default()
	data, err := os.ReadFile(filepath.Join(configDir, "muse", "muse.yaml"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// LoadFile loads configuration from a specific file path. Unlike
// [Load], the file must exist.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration bounds.
func (c *Config) Validate() error {
	var errs []error

	if c.TickRateMilliseconds < 10 || c.TickRateMilliseconds > 1000 {
		errs = append(errs, fmt.Errorf(
			"tick_rate_milliseconds must be between 10 and 1000, got %d",
			c.TickRateMilliseconds))
	}
	if c.VolumeIncrement < 1 || c.VolumeIncrement > 100 {
		errs = append(errs, fmt.Errorf(
			"volume_increment must be between 1 and 100, got %d",
			c.VolumeIncrement))
	}

	return errors.Join(errs...)
}
