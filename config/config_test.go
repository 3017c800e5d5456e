package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[detection]
confidence_threshold = 0.4
max_detections = 10

[runtime]
log_level = "debug"
`), 0o644))

	cfg, err := Unmarshal(path)
	require.NoError(t, err)

	assert.InDelta(t, 0.4, cfg.Detection.ConfidenceThreshold, 1e-6)
	assert.Equal(t, 10, cfg.Detection.MaxDetections)
	// Unset fields keep defaults.
	assert.InDelta(t, 0.5, cfg.Detection.IOUThreshold, 1e-6)
	assert.Equal(t, 0, cfg.Runtime.Workers)
	assert.Equal(t, slog.LevelDebug, cfg.Runtime.Level())
}

func TestUnmarshalMissingFile(t *testing.T) {
	_, err := Unmarshal(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestUnmarshalInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("=== not toml"), 0o644))

	_, err := Unmarshal(path)
	assert.Error(t, err)
}

func TestLevelFallback(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, RuntimeConfig{LogLevel: "verbose"}.Level())
	assert.Equal(t, slog.LevelError, RuntimeConfig{LogLevel: "error"}.Level())
}
