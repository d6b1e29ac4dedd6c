package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// logConfig is the optional logging override file. When the file exists it
// adjusts the default production configuration, much like dropping a config
// file next to the binary always has.
type logConfig struct {
	Level       string `yaml:"level"`
	Encoding    string `yaml:"encoding"`
	Development bool   `yaml:"development"`
}

// buildLogger builds the zap logger, applying the YAML override at path
// when present. The verbose flag forces debug level either way.
func buildLogger(path string, verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()

	if data, err := os.ReadFile(path); err == nil {
		var override logConfig
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("parse log config %s: %w", path, err)
		}
		if override.Development {
			cfg = zap.NewDevelopmentConfig()
		}
		if override.Encoding != "" {
			cfg.Encoding = override.Encoding
		}
		if override.Level != "" {
			level, err := zapcore.ParseLevel(override.Level)
			if err != nil {
				return nil, fmt.Errorf("parse log level %q: %w", override.Level, err)
			}
			cfg.Level = zap.NewAtomicLevelAt(level)
		}
	}

	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
