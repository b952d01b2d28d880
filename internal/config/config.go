// Package config loads the CLI configuration from an optional file with
// environment variable overrides.
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/viper"
)

// Config is the CLI configuration.
type Config struct {
	// ReadmePath is the teaching document the verify command checks.
	ReadmePath string `mapstructure:"readme_path" yaml:"readme_path"`
	// LogLevel is the minimum level runtime logging emits (zap level names).
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// NoColor disables table decorations in command output.
	NoColor bool `mapstructure:"no_color" yaml:"no_color"`
}

// Default returns the configuration used when no file or env overrides are set.
func Default() *Config {
	return &Config{
		ReadmePath: "README.md",
		LogLevel:   "info",
	}
}

// Load loads the config from the file path, falling back to env vars if the
// file does not exist. If the file exists, any env vars that are set will
// override the values loaded from the file.
func Load(filePath string) (*Config, error) {
	v := newViper()

	if filePath != "" {
		v.SetConfigFile(filePath)
		if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		}
	}

	cfg := Default()
	err := v.Unmarshal(cfg)

	return cfg, err
}

// LoadEnv loads the config from the environment variables only.
func LoadEnv() (*Config, error) {
	cfg := Default()
	err := newViper().Unmarshal(cfg)

	return cfg, err
}

// envBindings maps config keys to the environment variables that can provide
// their values.
var envBindings = map[string]string{
	"readme_path": "SOLID_README_PATH",
	"log_level":   "SOLID_LOG_LEVEL",
	"no_color":    "SOLID_NO_COLOR",
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, env := range envBindings {
		// BindEnv only fails on an empty key.
		_ = v.BindEnv(key, env)
	}

	return v
}
