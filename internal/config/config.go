// Package config provides configuration management for the hedge
// analysis application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Cache    CacheConfig    `mapstructure:"cache"`
	UI       UIConfig       `mapstructure:"ui"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// AnalysisConfig holds payoff analysis defaults. Grid bounds are
// fractions of spot.
type AnalysisConfig struct {
	GridPoints    int     `mapstructure:"grid_points"`
	LowFrac       float64 `mapstructure:"low_frac"`
	HighFrac      float64 `mapstructure:"high_frac"`
	CrossLowFrac  float64 `mapstructure:"cross_low_frac"`
	CrossHighFrac float64 `mapstructure:"cross_high_frac"`
}

// CacheConfig holds series cache configuration.
type CacheConfig struct {
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	ColorEnabled   bool   `mapstructure:"color_enabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
	File    bool   `mapstructure:"file"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/hedge-analyzer"
	}
	return filepath.Join(home, ".config", "hedge-analyzer")
}

// Load loads configuration from the specified directory, falling back
// to built-in defaults when no config file exists. Environment
// variables prefixed HEDGE_ override file values.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	v.SetEnvPrefix("HEDGE")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Single-stock protective puts chart +-25% of spot; cross hedges on
	// an index use the tighter +-15% band.
	v.SetDefault("analysis.grid_points", 100)
	v.SetDefault("analysis.low_frac", 0.75)
	v.SetDefault("analysis.high_frac", 1.25)
	v.SetDefault("analysis.cross_low_frac", 0.85)
	v.SetDefault("analysis.cross_high_frac", 1.15)

	v.SetDefault("cache.ttl", 15*time.Minute)
	v.SetDefault("cache.cleanup_interval", 5*time.Minute)

	v.SetDefault("ui.currency_symbol", "₹")
	v.SetDefault("ui.color_enabled", true)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("logging.file", true)
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.Analysis.GridPoints < 2 {
		return fmt.Errorf("analysis.grid_points must be at least 2, got %d", c.Analysis.GridPoints)
	}
	if c.Analysis.LowFrac >= c.Analysis.HighFrac {
		return fmt.Errorf("analysis.low_frac (%g) must be below analysis.high_frac (%g)", c.Analysis.LowFrac, c.Analysis.HighFrac)
	}
	if c.Analysis.CrossLowFrac >= c.Analysis.CrossHighFrac {
		return fmt.Errorf("analysis.cross_low_frac (%g) must be below analysis.cross_high_frac (%g)", c.Analysis.CrossLowFrac, c.Analysis.CrossHighFrac)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got %s", c.Cache.TTL)
	}
	return nil
}
