// Package config loads the bot configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime configuration. The character-store path is
// injected everywhere it is needed rather than read from a process-wide
// constant.
type Config struct {
	// DataPath is the character-store JSON file.
	DataPath string `env:"DICEBOT_DATA_PATH" envDefault:"data.json"`
	// MeritsDir holds merit reference images, one <merit_name>.png each.
	MeritsDir string `env:"DICEBOT_MERITS_DIR" envDefault:"merits"`
	// HistoryPath is the roll-history SQLite database. Empty disables
	// history.
	HistoryPath string `env:"DICEBOT_HISTORY_PATH"`
	// Player is the default character name for commands.
	Player string `env:"DICEBOT_PLAYER"`
	// LogConfigPath optionally overrides the logging configuration.
	LogConfigPath string `env:"DICEBOT_LOG_CONFIG" envDefault:"logging.yml"`
}

// Parse loads configuration from environment variables.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
