// Copyright 2026 The Jina Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadBase(t *testing.T) {
	path := writeConfig(t, `
environment: production
wire:
  default_algorithm: lz4
  min_compress_bytes: 4096
  max_decoded_bytes: 1048576
`)

	config, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if config.Environment != Production {
		t.Errorf("environment = %q", config.Environment)
	}
	if config.Wire.DefaultAlgorithm != "lz4" {
		t.Errorf("default_algorithm = %q", config.Wire.DefaultAlgorithm)
	}
	if config.Wire.MinCompressBytes != 4096 {
		t.Errorf("min_compress_bytes = %d", config.Wire.MinCompressBytes)
	}
}

func TestLoadAppliesEnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, `
environment: staging
wire:
  default_algorithm: gzip
staging:
  wire:
    default_algorithm: zlib
    min_compress_bytes: 512
production:
  wire:
    default_algorithm: lzma
`)

	config, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if config.Wire.DefaultAlgorithm != "zlib" {
		t.Errorf("default_algorithm = %q, want staging override \"zlib\"", config.Wire.DefaultAlgorithm)
	}
	if config.Wire.MinCompressBytes != 512 {
		t.Errorf("min_compress_bytes = %d, want 512", config.Wire.MinCompressBytes)
	}
}

func TestLoadRejectsUnknownAlgorithm(t *testing.T) {
	path := writeConfig(t, `
environment: development
wire:
  default_algorithm: zstd
`)

	if _, err := Load(path); err == nil {
		t.Error("Load should reject an unsupported default algorithm")
	}
}

func TestLoadRejectsUnknownEnvironment(t *testing.T) {
	path := writeConfig(t, `environment: sandbox`)
	if _, err := Load(path); err == nil {
		t.Error("Load should reject an unknown environment")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}

func TestLoadFromEnvUnset(t *testing.T) {
	t.Setenv(EnvConfigPath, "")

	config, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv: %v", err)
	}
	if config.Wire.DefaultAlgorithm != "none" {
		t.Errorf("default config algorithm = %q, want \"none\"", config.Wire.DefaultAlgorithm)
	}
}

func TestLoadFromEnvSet(t *testing.T) {
	path := writeConfig(t, `
environment: development
wire:
  default_algorithm: bz2
`)
	t.Setenv(EnvConfigPath, path)

	config, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv: %v", err)
	}
	if config.Wire.DefaultAlgorithm != "bz2" {
		t.Errorf("default_algorithm = %q, want \"bz2\"", config.Wire.DefaultAlgorithm)
	}
}
