package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "RFM"

// Config holds all application configuration.
type Config struct {
	StartPath   string `envconfig:"START"`
	ShowHidden  bool   `envconfig:"SHOW_HIDDEN" default:"false"`
	SortBy      string `envconfig:"SORT_BY" default:"name"`
	SortOrder   string `envconfig:"SORT_ORDER" default:"asc"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogDev      bool   `envconfig:"LOG_DEV" default:"false"`
	LogFile     string `envconfig:"LOG_FILE"`
	MetricsAddr string `envconfig:"METRICS_ADDR"`
	PlacesFile  string `envconfig:"PLACES_FILE"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.SortBy = strings.ToLower(strings.TrimSpace(cfg.SortBy))
	cfg.SortOrder = strings.ToLower(strings.TrimSpace(cfg.SortOrder))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		SortBy:    "name",
		SortOrder: "asc",
		LogLevel:  "info",
	}
}

// Validate rejects unknown sort settings.
func (c *Config) Validate() error {
	switch c.SortBy {
	case "name", "size", "modified":
	default:
		return fmt.Errorf("invalid %s_SORT_BY %q: want name, size or modified", Prefix, c.SortBy)
	}
	switch c.SortOrder {
	case "asc", "desc":
	default:
		return fmt.Errorf("invalid %s_SORT_ORDER %q: want asc or desc", Prefix, c.SortOrder)
	}
	return nil
}

// Usage returns a description of every recognised variable.
func Usage() string {
	var b strings.Builder
	_ = envconfig.Usagef(Prefix, &Config{}, &b, "  {{range .}}{{usage_key .}}\t{{usage_type .}}\t{{usage_default .}}\n{{end}}")
	return b.String()
}
