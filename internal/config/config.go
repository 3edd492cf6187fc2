package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for a warden invocation.
// Values are populated from .warden.yaml, WARDEN_* env vars, and CLI
// flags.
type Config struct {
	DataDir       string `mapstructure:"data_dir"`       // history database directory
	TelemetryPath string `mapstructure:"telemetry_path"` // JSONL solve-event log; empty disables
	Verbose       bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for
// any values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("data_dir", ".warden")
	viper.SetDefault("telemetry_path", "")
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}
