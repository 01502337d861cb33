// Package config loads editor settings from an optional JSON config
// file and provides typed accessors with sensible defaults.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Load reads configuration from brickyard.cfg.json in configDir and
// sets default values. A missing config file is fine, the defaults
// carry a fresh install; any other read failure is reported.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("snap.grid", true)

	viper.SetDefault("catalog.path", "")

	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 800)
	viper.SetDefault("window.title", "Brickyard")

	viper.SetConfigName("brickyard.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
