// SPDX-License-Identifier: MIT

package logging

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(Config{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("built poset", zap.Int("elements", 4))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "built poset", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.EqualValues(t, 4, entry["elements"])
	assert.Contains(t, entry, "timestamp")
}

func TestNewWithWriter_DefaultLevelIsWarn(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(Config{}, &buf)
	require.NoError(t, err)

	logger.Info("quiet")
	assert.Empty(t, buf.String())

	logger.Warn("loud")
	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "loud")
}

func TestNewWithWriter_Errors(t *testing.T) {
	_, err := NewWithWriter(Config{Level: "chatty"}, &bytes.Buffer{})
	require.Error(t, err)

	_, err = NewWithWriter(Config{Format: "xml"}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poset.log")
	logger, cleanup, err := New(Config{Level: "debug", Format: "json", Output: path})
	require.NoError(t, err)
	logger.Debug("to file")
	require.NoError(t, logger.Sync())
	require.NoError(t, cleanup())
	assert.FileExists(t, path)

	_, _, err = New(Config{Output: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	require.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, "console", cfg.Format)
	assert.Equal(t, "stderr", cfg.Output)
}
