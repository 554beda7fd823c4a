// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/snowball/snowball"
)

// Validate checks a configuration for a sampling run. Every failure wraps
// snowball.ErrInvalidParameter.
func (c *Config) Validate() error {
	if err := c.validateInputs(); err != nil {
		return err
	}
	if err := c.validateCounts(); err != nil {
		return err
	}
	if err := c.validateRuntime(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateInputs() error {
	if c.Network == "" {
		return fmt.Errorf("%w: network is required", snowball.ErrInvalidParameter)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir is required", snowball.ErrInvalidParameter)
	}

	return nil
}

func (c *Config) validateCounts() error {
	if c.NumSamples < 1 {
		return fmt.Errorf("%w: num_samples must be at least 1, got %d", snowball.ErrInvalidParameter, c.NumSamples)
	}
	if c.NumSeeds < 1 {
		return fmt.Errorf("%w: num_seeds must be at least 1, got %d", snowball.ErrInvalidParameter, c.NumSeeds)
	}
	if c.NumWaves < 0 {
		return fmt.Errorf("%w: num_waves must not be negative, got %d", snowball.ErrInvalidParameter, c.NumWaves)
	}

	return nil
}

func (c *Config) validateRuntime() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", snowball.ErrInvalidParameter, c.Workers)
	}
	if c.SampleTimeout < 0 {
		return fmt.Errorf("%w: sample_timeout must not be negative", snowball.ErrInvalidParameter)
	}

	return nil
}

func (c *Config) validateLogging() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", snowball.ErrInvalidParameter, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format must be text or json, got %q", snowball.ErrInvalidParameter, c.LogFormat)
	}

	return nil
}
