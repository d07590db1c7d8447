// Package storage persists user settings as JSON in the user config dir.
package storage

import (
	"errors"
	"os"
)

// LoadConfig loads the configuration from config.json.
// If the file doesn't exist, it returns default configuration.
// If the file is corrupted, it returns an error.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	config := &Config{}
	if err := ReadJSON(path, config); err != nil {
		return nil, err
	}

	return migrateConfig(config), nil
}

// SaveConfig saves the configuration to config.json atomically
func SaveConfig(config *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	return AtomicWriteJSON(path, config)
}

// CreateConfigIfMissing creates a default config.json if it doesn't exist
func CreateConfigIfMissing() error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return SaveConfig(DefaultConfig())
	}

	return nil
}

// migrateConfig fills fields an older or hand-edited file left unset
func migrateConfig(config *Config) *Config {
	if config.Version == 0 {
		config.Version = 1
	}

	def := DefaultConfig()
	// zero delay is a valid choice, only a negative one is repaired
	if config.Game.Delay < 0 {
		config.Game.Delay = def.Game.Delay
	}
	if config.Game.Lives <= 0 {
		config.Game.Lives = def.Game.Lives
	}
	if config.Game.EnemyQuota <= 0 {
		config.Game.EnemyQuota = def.Game.EnemyQuota
	}
	if config.Window.Width <= 0 {
		config.Window.Width = def.Window.Width
	}
	if config.Window.Height <= 0 {
		config.Window.Height = def.Window.Height
	}

	return config
}
