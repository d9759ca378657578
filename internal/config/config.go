package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the macrotrends application.
type Config struct {
	// Base URL for the World Bank API (configurable for testing)
	WorldBankBaseURL string `mapstructure:"worldbank_base_url"`

	// Cache location and freshness
	CacheDir string        `mapstructure:"cache_dir"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`

	// HTTP client behavior
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	RetryCount     int           `mapstructure:"retry_count"`
	RetryWait      time.Duration `mapstructure:"retry_wait"`
	RetryMaxWait   time.Duration `mapstructure:"retry_max_wait"`
	RateLimitRPS   float64       `mapstructure:"rate_limit_rps"`
	PerPage        int           `mapstructure:"per_page"`
}

// Load reads configuration from environment variables and optional config file.
// Environment variables take precedence over config file values. Every knob
// has a working default, so Load succeeds with no environment at all.
//
// Recognized environment variables:
//   - WORLDBANK_BASE_URL (optional, defaults to production)
//   - CACHE_DIR (optional, defaults to .macrotrends)
//   - CACHE_TTL (optional, Go duration, defaults to 24h)
//   - REQUEST_TIMEOUT (optional, Go duration, defaults to 30s)
//   - RETRY_COUNT (optional, defaults to 3)
//   - RETRY_WAIT (optional, Go duration, defaults to 1s)
//   - RETRY_MAX_WAIT (optional, Go duration, defaults to 10s)
//   - RATE_LIMIT_RPS (optional, defaults to 10)
//   - PER_PAGE (optional, defaults to 1000)
func Load() (*Config, error) {
	v := viper.New()

	// Set up environment variable support
	v.SetEnvPrefix("") // No prefix, use full names
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("worldbank_base_url", "https://api.worldbank.org/v2")
	v.SetDefault("cache_dir", ".macrotrends")
	v.SetDefault("cache_ttl", 24*time.Hour)
	v.SetDefault("request_timeout", 30*time.Second)
	v.SetDefault("retry_count", 3)
	v.SetDefault("retry_wait", time.Second)
	v.SetDefault("retry_max_wait", 10*time.Second)
	v.SetDefault("rate_limit_rps", 10.0)
	v.SetDefault("per_page", 1000)

	// Optionally read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.macrotrends")

	// Read config file (ignore if not found)
	_ = v.ReadInConfig()

	// Bind environment variables
	v.BindEnv("worldbank_base_url", "WORLDBANK_BASE_URL")
	v.BindEnv("cache_dir", "CACHE_DIR")
	v.BindEnv("cache_ttl", "CACHE_TTL")
	v.BindEnv("request_timeout", "REQUEST_TIMEOUT")
	v.BindEnv("retry_count", "RETRY_COUNT")
	v.BindEnv("retry_wait", "RETRY_WAIT")
	v.BindEnv("retry_max_wait", "RETRY_MAX_WAIT")
	v.BindEnv("rate_limit_rps", "RATE_LIMIT_RPS")
	v.BindEnv("per_page", "PER_PAGE")

	// Unmarshal config into struct
	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate value ranges
	var invalid []string
	if config.WorldBankBaseURL == "" {
		invalid = append(invalid, "WORLDBANK_BASE_URL must not be empty")
	}
	if config.CacheDir == "" {
		invalid = append(invalid, "CACHE_DIR must not be empty")
	}
	if config.CacheTTL <= 0 {
		invalid = append(invalid, "CACHE_TTL must be positive")
	}
	if config.RequestTimeout <= 0 {
		invalid = append(invalid, "REQUEST_TIMEOUT must be positive")
	}
	if config.RetryCount < 0 {
		invalid = append(invalid, "RETRY_COUNT must not be negative")
	}
	if config.RetryWait <= 0 {
		invalid = append(invalid, "RETRY_WAIT must be positive")
	}
	if config.RetryMaxWait < config.RetryWait {
		invalid = append(invalid, "RETRY_MAX_WAIT must not be less than RETRY_WAIT")
	}
	if config.RateLimitRPS <= 0 {
		invalid = append(invalid, "RATE_LIMIT_RPS must be positive")
	}
	if config.PerPage < 1 {
		invalid = append(invalid, "PER_PAGE must be at least 1")
	}

	if len(invalid) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(invalid, "; "))
	}

	return config, nil
}
