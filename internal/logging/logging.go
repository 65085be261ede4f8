// SPDX-License-Identifier: MIT

// Package logging builds the zap loggers used by the command-line front end.
// The poset engine itself never logs.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config contains logging configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level" env:"POSET_LOG_LEVEL"`

	// Format is the output format (console, json).
	Format string `yaml:"format" env:"POSET_LOG_FORMAT"`

	// Output is the destination (stderr, stdout, or a file path).
	Output string `yaml:"output" env:"POSET_LOG_OUTPUT"`
}

// DefaultConfig returns the defaults: warnings and above, console, stderr.
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: "console",
		Output: "stderr",
	}
}

// New builds a logger writing to cfg.Output. The returned cleanup closes a
// file destination; it is a no-op for stdout/stderr.
func New(cfg Config) (*zap.Logger, func() error, error) {
	var (
		w       io.Writer
		cleanup = func() error { return nil }
	)
	switch cfg.Output {
	case "", "stderr":
		w = os.Stderr
	case "stdout":
		w = os.Stdout
	default:
		f, err := os.OpenFile(cfg.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log output: %w", err)
		}
		w = f
		cleanup = f.Close
	}

	logger, err := NewWithWriter(cfg, w)
	if err != nil {
		_ = cleanup()
		return nil, nil, err
	}

	return logger, cleanup, nil
}

// NewWithWriter builds a logger writing to w.
// An unparsable level is an error; an empty level means the default.
func NewWithWriter(cfg Config, w io.Writer) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch cfg.Format {
	case "", "console":
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)

	return zap.New(core), nil
}
