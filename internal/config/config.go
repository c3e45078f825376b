package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the history fetcher application.
type Config struct {
	// Base URL for the download endpoint (configurable for testing)
	YahooBaseURL string `mapstructure:"yahoo_base_url"`

	// Symbols to fetch history for
	Symbols []string `mapstructure:"symbols"`

	// Scan range and granularity. Dates are YYYY-MM-DD; the interval must be
	// one of the provider's supported labels (1d, 5d, 1wk, 1mo, 3mo).
	FromDate string `mapstructure:"from_date"`
	ToDate   string `mapstructure:"to_date"`
	Interval string `mapstructure:"interval"`
}

// Load reads configuration from environment variables and optional config file.
// Environment variables take precedence over config file values.
//
// Expected environment variables:
//   - FROM_DATE
//   - TO_DATE
//   - INTERVAL (optional, defaults to 1d)
//   - YAHOO_BASE_URL (optional, defaults to production)
//
// Symbols are read from the config file's "symbols" list.
func Load() (*Config, error) {
	v := viper.New()

	// Set up environment variable support
	v.SetEnvPrefix("") // No prefix, use full names
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("yahoo_base_url", "https://query1.finance.yahoo.com/v7/finance/download")
	v.SetDefault("interval", "1d")

	// Optionally read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.historyfetcher")

	// Read config file (ignore if not found)
	_ = v.ReadInConfig()

	// Bind environment variables
	v.BindEnv("yahoo_base_url", "YAHOO_BASE_URL")
	v.BindEnv("from_date", "FROM_DATE")
	v.BindEnv("to_date", "TO_DATE")
	v.BindEnv("interval", "INTERVAL")

	// Unmarshal config into struct (handles both simple and complex fields)
	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	var missing []string
	if len(config.Symbols) == 0 {
		missing = append(missing, "symbols")
	}
	if config.FromDate == "" {
		missing = append(missing, "FROM_DATE")
	}
	if config.ToDate == "" {
		missing = append(missing, "TO_DATE")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return config, nil
}
