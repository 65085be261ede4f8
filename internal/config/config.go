// SPDX-License-Identifier: MIT

// Package config loads command-line configuration: defaults, then an
// optional YAML file, then POSET_* environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/poset/internal/logging"
)

// Config is the command-line configuration.
type Config struct {
	// Logging contains logging configuration.
	Logging logging.Config `yaml:"logging"`

	// Output contains output configuration.
	Output OutputConfig `yaml:"output"`
}

// OutputConfig contains output-related settings.
type OutputConfig struct {
	// Format is the default output encoding (text, yaml).
	Format string `yaml:"format" env:"POSET_OUTPUT_FORMAT"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: logging.DefaultConfig(),
		Output:  OutputConfig{Format: "text"},
	}
}

// Load returns Default overlaid by the YAML file at path (skipped when path
// is empty) and then by environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ParseEnv overlays environment variables onto target. Unset variables
// leave the current values in place.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
