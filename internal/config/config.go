package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable scrutey reads
const EnvPrefix = "SCRUTEY"

// Config holds the settings that shape a run
type Config struct {
	// Format is the output format (text, json)
	Format string `mapstructure:"format"`
	// Color controls styling (auto, always, never)
	Color string `mapstructure:"color"`
	// All prints every ranked record instead of the rendered input
	All bool `mapstructure:"all"`
	// MinConfidence is the score the top record needs; below it the input
	// renders as nonsense. Zero keeps every top record.
	MinConfidence float64 `mapstructure:"min_confidence"`
	// Disable lists strategy ids to leave out of the registry
	Disable []string `mapstructure:"disable"`
	// LogLevel is a logrus level name
	LogLevel string `mapstructure:"log_level"`
}

// SetDefaults registers the default value of every key
func SetDefaults(v *viper.Viper) {
	v.SetDefault("format", "text")
	v.SetDefault("color", "auto")
	v.SetDefault("all", false)
	v.SetDefault("min_confidence", 0.0)
	v.SetDefault("disable", []string{})
	v.SetDefault("log_level", "warn")
}

// Load reads .env (if present), the config file and SCRUTEY_* environment
// variables into v and returns the merged Config. An empty file means the
// default location, which may be absent.
func Load(v *viper.Viper, file string) (*Config, error) {
	// Best-effort: load .env from current directory
	_ = godotenv.Load()

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(dir, "scrutey"))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field holds an accepted value
func (c *Config) Validate() error {
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid format %q (want text or json)", c.Format)
	}

	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q (want auto, always or never)", c.Color)
	}

	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		return fmt.Errorf("invalid min confidence %v (want 0 to 1)", c.MinConfidence)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	return nil
}

// Level returns the configured logrus level, defaulting to warn
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}
