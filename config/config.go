// Package config - TOML configuration for the detection CLI.
package config

import (
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// ConfigFile is the full configuration surface. Fields absent from the
// file keep the defaults.
type ConfigFile struct {
	Detection DetectionConfig
	Runtime   RuntimeConfig
}

type DetectionConfig struct {
	// Minimal combined score for a decoded box, in [0,1].
	ConfidenceThreshold float32 `toml:"confidence_threshold"`
	// Overlap above which the lower-confidence box is suppressed.
	IOUThreshold float32 `toml:"iou_threshold"`
	// Boxes returned per image.
	MaxDetections int `toml:"max_detections"`
}

type RuntimeConfig struct {
	// Decode workers; 0 means one per CPU.
	Workers int `toml:"workers"`
	// Logging level: debug, info, warn or error.
	LogLevel string `toml:"log_level"`
}

// Default returns the reference configuration.
func Default() *ConfigFile {
	return &ConfigFile{
		Detection: DetectionConfig{
			ConfidenceThreshold: 0.3,
			IOUThreshold:        0.5,
			MaxDetections:       5,
		},
		Runtime: RuntimeConfig{
			Workers:  0,
			LogLevel: "info",
		},
	}
}

// Unmarshal reads a TOML file over the defaults.
func Unmarshal(path string) (*ConfigFile, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", path)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "unable to unmarshal %s", path)
	}
	return cfg, nil
}

// Level maps the configured log level to slog. Unknown values fall
// back to info.
func (r RuntimeConfig) Level() slog.Level {
	switch r.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
