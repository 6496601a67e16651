package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Holidays HolidaysConfig `mapstructure:"holidays"`
	Log      LogConfig      `mapstructure:"log"`
}

// HolidaysConfig selects and tunes the holiday provider
type HolidaysConfig struct {
	Provider       string `mapstructure:"provider"` // "embedded" or "nager"
	DefaultCountry string `mapstructure:"default_country"`
	NagerURL       string `mapstructure:"nager_url"` // For nager type; empty selects the public API
	CacheTTL       string `mapstructure:"cache_ttl"`
	OverridesFile  string `mapstructure:"overrides_file"` // Optional local holiday file for uncovered countries
}

// LogConfig controls the zap logger
type LogConfig struct {
	File  string `mapstructure:"file"` // Empty logs to stderr
	Level string `mapstructure:"level"`
}

// Load loads configuration from file. A missing file is not an error:
// the CLI works with defaults and no setup.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("holidays.provider", "embedded")
	v.SetDefault("holidays.default_country", "US")
	v.SetDefault("holidays.cache_ttl", "24h")
	v.SetDefault("log.level", "info")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.datecalc")
		v.AddConfigPath("/etc/datecalc")
	}

	// Read environment variables
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Holidays.Provider {
	case "embedded", "nager":
	default:
		return fmt.Errorf("holidays.provider must be 'embedded' or 'nager', got '%s'", c.Holidays.Provider)
	}

	if len(c.Holidays.DefaultCountry) != 2 {
		return fmt.Errorf("holidays.default_country must be a 2-letter code, got '%s'", c.Holidays.DefaultCountry)
	}

	if c.Holidays.CacheTTL != "" {
		if _, err := time.ParseDuration(c.Holidays.CacheTTL); err != nil {
			return fmt.Errorf("holidays.cache_ttl is not a duration: %w", err)
		}
	}

	return nil
}

// GetCacheTTL returns the holiday cache TTL duration
func (c *HolidaysConfig) GetCacheTTL() time.Duration {
	if c.CacheTTL == "" {
		return 24 * time.Hour
	}
	duration, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 24 * time.Hour
	}
	return duration
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Holidays.OverridesFile = os.ExpandEnv(c.Holidays.OverridesFile)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
