// Package config holds process-level configuration: where the data lives
// and how the process logs. User-facing tracker settings (target hours,
// lunch duration) are application data and live in the store instead.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the resolved process configuration.
type Config struct {
	DataDir string    `mapstructure:"data_dir"`
	Log     LogConfig `mapstructure:"log"`
}

// LogConfig controls the JSON debug log.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
	// File is the log file name inside the data directory; empty logs
	// to stderr.
	File string `mapstructure:"file"`
}

// SetDefaults registers defaults so configuration works without a config
// file.
func SetDefaults() {
	viper.SetDefault("data_dir", defaultDataDir())
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.file", "hourbank.log")
}

// Load resolves the configuration from viper's current state.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LogPath returns the absolute log file path, or empty when file logging
// is disabled.
func (c *Config) LogPath() string {
	if c.Log.File == "" {
		return ""
	}
	if filepath.IsAbs(c.Log.File) {
		return c.Log.File
	}
	return filepath.Join(c.DataDir, c.Log.File)
}

// ConfigDir returns the directory searched for config.yaml.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "hourbank")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hourbank"
	}
	return filepath.Join(home, ".hourbank")
}
