package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSONToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "rfm.log")
	logger, err := New(Config{Level: "info", File: file})
	require.NoError(t, err)

	logger.Info("listed")
	logger.Debug("hidden")
	_ = logger.Sync()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"listed"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNewOffIsNop(t *testing.T) {
	logger, err := New(Config{File: "OFF"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(-1))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Config{Level: "chatty", File: filepath.Join(t.TempDir(), "x.log")})
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, DefaultFile(), cfg.File)
}
