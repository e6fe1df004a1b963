package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Log        LogConfig        `mapstructure:"log"`
	Validation ValidationConfig `mapstructure:"validation"`
	Export     ExportConfig     `mapstructure:"export"`
	Assets     AssetsConfig     `mapstructure:"assets"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text or json
}

// ValidationConfig controls how path findings are treated
type ValidationConfig struct {
	Strict bool `mapstructure:"strict"`
}

type ExportConfig struct {
	Format string `mapstructure:"format"`
}

// AssetsConfig holds settings for the display asset check
type AssetsConfig struct {
	BaseURL              string `mapstructure:"base_url"`
	Mode                 string `mapstructure:"mode"` // probe or index
	IndexPath            string `mapstructure:"index_path"`
	Timeout              int    `mapstructure:"timeout"`
	MaxRetries           int    `mapstructure:"max_retries"`
	MaxWorkers           int    `mapstructure:"max_workers"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`
}

// Load loads configuration from a YAML file with environment variable overrides.
// An empty path searches the current directory for config.yaml and falls back to
// defaults when none exists.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.SetEnvPrefix("inventory")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("validation.strict", true)

	v.SetDefault("export.format", "json")

	v.SetDefault("assets.base_url", "http://localhost:5173/images")
	v.SetDefault("assets.mode", "probe")
	v.SetDefault("assets.index_path", "")
	v.SetDefault("assets.timeout", 10)
	v.SetDefault("assets.max_retries", 2)
	v.SetDefault("assets.max_workers", 4)
	v.SetDefault("assets.max_requests_per_second", 20)
}
