// Copyright 2026 The Jina Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the tools.
//
// Configuration is loaded from a single file specified by:
//   - JINA_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery. This keeps
// configuration deterministic and auditable with no hidden overrides.
//
// The config file may contain environment-specific sections
// (development, staging, production) that override base values when
// the environment matches.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/serguk89/jina/lib/compress"
)

// EnvConfigPath is the environment variable naming the config file.
const EnvConfigPath = "JINA_CONFIG"

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local development machines.
	Development Environment = "development"
	// Staging is for pre-production testing.
	Staging Environment = "staging"
	// Production is for production deployments.
	Production Environment = "production"
)

// Config is the master configuration for the tools.
type Config struct {
	// Environment identifies the deployment type.
	Environment Environment `yaml:"environment"`

	// Wire configures codec and compression behavior.
	Wire WireConfig `yaml:"wire"`

	// EnvironmentOverrides contains per-environment overrides,
	// applied after the base config is loaded.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Staging     *ConfigOverrides `yaml:"staging,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per
// environment.
type ConfigOverrides struct {
	Wire *WireConfig `yaml:"wire,omitempty"`
}

// WireConfig configures codec and compression behavior.
type WireConfig struct {
	// DefaultAlgorithm is the compression applied by senders when a
	// message exceeds MinCompressBytes. Must name a supported
	// algorithm ("none", "lz4", "bz2", "lzma", "zlib", "gzip").
	DefaultAlgorithm string `yaml:"default_algorithm"`

	// MinCompressBytes is the payload size below which senders skip
	// compression entirely.
	MinCompressBytes int `yaml:"min_compress_bytes"`

	// MaxDecodedBytes caps how large a decompressed message may be
	// before tooling refuses to parse it. Zero means no cap.
	MaxDecodedBytes int `yaml:"max_decoded_bytes"`
}

// Default returns the configuration used when no config file is
// given.
func Default() *Config {
	return &Config{
		Environment: Development,
		Wire: WireConfig{
			DefaultAlgorithm: "none",
			MinCompressBytes: 1024,
		},
	}
}

// Load reads the config file at path, applies the overrides for its
// environment, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	config.applyOverrides()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

// LoadFromEnv loads the config file named by the JINA_CONFIG
// environment variable, or returns the default configuration when the
// variable is unset.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) applyOverrides() {
	var overrides *ConfigOverrides
	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
	}
	if overrides == nil {
		return
	}
	if overrides.Wire != nil {
		c.Wire = *overrides.Wire
	}
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	switch c.Environment {
	case Development, Staging, Production:
	default:
		return fmt.Errorf("unknown environment %q", c.Environment)
	}
	if _, err := compress.ParseAlgorithm(c.Wire.DefaultAlgorithm); err != nil {
		return fmt.Errorf("wire.default_algorithm: %w", err)
	}
	if c.Wire.MinCompressBytes < 0 {
		return fmt.Errorf("wire.min_compress_bytes must not be negative")
	}
	if c.Wire.MaxDecodedBytes < 0 {
		return fmt.Errorf("wire.max_decoded_bytes must not be negative")
	}
	return nil
}
