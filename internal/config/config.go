package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Config is the mro CLI configuration.
type Config struct {
	// File is the hierarchy YAML loaded by order/resolve. Empty means the
	// built-in greetings hierarchy.
	File     string `mapstructure:"file"`
	LogLevel string `mapstructure:"log_level"`
	NoColor  bool   `mapstructure:"no_color"`
}

var levels = []string{"debug", "info", "warn", "error"}

// Load reads mro.yaml (or the explicit path) and MRO_* environment variables
// on top of the defaults. v may already carry bound flags; nil creates a
// fresh instance.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	v.SetDefault("file", "")
	v.SetDefault("log_level", "warn")
	v.SetDefault("no_color", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("mro")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("MRO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// no config file: defaults and env only
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if !slices.Contains(levels, cfg.LogLevel) {
		return fmt.Errorf("invalid log_level %q (want one of %s)", cfg.LogLevel, strings.Join(levels, ", "))
	}
	return nil
}
