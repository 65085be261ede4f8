// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "poset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "logging:\n  level: debug\n  format: json\noutput:\n  format: yaml\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output, "unset keys keep defaults")
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "logging:\n  level: debug\n")
	t.Setenv("POSET_LOG_LEVEL", "error")
	t.Setenv("POSET_OUTPUT_FORMAT", "yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Load(writeFile(t, "logging: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
