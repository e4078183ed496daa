// Package config loads the application configuration from the environment and
// an optional config file. The binary itself takes no command-line arguments.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime settings of the inventory application.
type Config struct {
	// Environment selects the logger profile ("development" or "production").
	Environment string    `mapstructure:"environment"`
	Input       Input     `mapstructure:"input"`
	Inventory   Inventory `mapstructure:"inventory"`
	Log         Log       `mapstructure:"log"`
}

// Input controls how operator input is read.
type Input struct {
	// Strict rejects malformed numeric input and re-prompts. When false the
	// legacy behavior is kept: a malformed number silently reads as zero.
	Strict bool `mapstructure:"strict"`
}

// Inventory controls the backing collection.
type Inventory struct {
	// Capacity is a pre-allocation hint for the item slice, not a hard limit.
	Capacity int `mapstructure:"capacity"`
}

// Log controls where structured logs are written.
type Log struct {
	// Path is the log file; logging is kept off the interactive terminal.
	Path string `mapstructure:"path"`
}

// Load reads configuration from INVENTORY_* environment variables and, if
// present, an inventory.yml file in the working directory.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("environment", "development")
	v.SetDefault("input.strict", true)
	v.SetDefault("inventory.capacity", 30)
	v.SetDefault("log.path", "inventory.log")

	v.SetEnvPrefix("INVENTORY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("inventory")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
		// The config file is optional.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
