// Package config loads application configuration from environment variables
// and an optional YAML file. Environment variables hold deployment settings;
// the YAML file holds operator-curated data tables (country aliases and the
// sensitive document origin allowlist).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the corresponding setting is absent.
const (
	DefaultAddr         = ":8080"
	DefaultDatasetPath  = "data/entities.csv"
	DefaultBaseURL      = "http://localhost:8080"
	DefaultProxyTimeout = 30 * time.Second
)

// defaultSensitivePrefixes are the document origins whose URLs are rewritten
// to the internal proxy path when no allowlist is configured.
var defaultSensitivePrefixes = []string{
	"https://www.acurisriskintelligence.com/",
	"https://secure.c6-intelligence.com/",
}

// Config holds the full application configuration.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string

	// DatasetPath is the line-delimited JSON dataset file.
	DatasetPath string

	// BaseURL is the externally visible origin, used for sitemap URLs.
	BaseURL string

	// DisableCache forces a dataset re-read on every request.
	DisableCache bool

	// RefreshSchedule is an optional cron expression for cache warming.
	// Empty disables the refresher.
	RefreshSchedule string

	// ProxyTimeout bounds the outbound document fetch.
	ProxyTimeout time.Duration

	// AllowedOrigins restricts CORS; empty allows every origin.
	AllowedOrigins []string

	// SensitivePrefixes is the allowlist of document origins rewritten to
	// the proxy path.
	SensitivePrefixes []string

	// CountryAliases extends the built-in country alias table.
	CountryAliases map[string]string
}

// fileConfig is the YAML file shape.
type fileConfig struct {
	SensitivePrefixes []string          `yaml:"sensitive_prefixes"`
	CountryAliases    map[string]string `yaml:"country_aliases"`
}

// Load builds the configuration from the environment, merging the YAML file
// named by CONFIG_FILE when set. Invalid values fail loading rather than
// silently falling back, since a wrong allowlist would leak source URLs.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:              envString("ADDR", DefaultAddr),
		DatasetPath:       envString("DATASET_PATH", DefaultDatasetPath),
		BaseURL:           envString("BASE_URL", DefaultBaseURL),
		RefreshSchedule:   os.Getenv("REFRESH_SCHEDULE"),
		ProxyTimeout:      DefaultProxyTimeout,
		SensitivePrefixes: defaultSensitivePrefixes,
	}

	if v := os.Getenv("DISABLE_CACHE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DISABLE_CACHE %q: %w", v, err)
		}
		cfg.DisableCache = b
	}

	if v := os.Getenv("PROXY_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PROXY_TIMEOUT %q: %w", v, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("PROXY_TIMEOUT must be positive, got %q", v)
		}
		cfg.ProxyTimeout = d
	}

	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitAndTrim(v)
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// mergeFile overlays the YAML file onto the config. Lists in the file
// replace defaults entirely so operators can drop a default prefix.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if len(fc.SensitivePrefixes) > 0 {
		c.SensitivePrefixes = fc.SensitivePrefixes
	}
	if len(fc.CountryAliases) > 0 {
		c.CountryAliases = fc.CountryAliases
	}
	return nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
