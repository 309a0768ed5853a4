package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DBURL            string
	OFFBaseURL       string
	OFFTimeout       time.Duration
	OFFUserAgent     string
	CatalogPath      string
	CatalogLocale    string
	SuggestThreshold float64
}

// Load reads configuration from the environment, after loading a .env file
// from the working directory when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to read .env file", "error", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an environment lookup function.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Port:          get("PORT", "8080"),
		DBURL:         get("DB_URL", ""),
		OFFBaseURL:    get("OFF_BASE_URL", "https://world.openfoodfacts.net"),
		OFFUserAgent:  get("OFF_USER_AGENT", "woodpantry-scan/1.0"),
		CatalogPath:   get("CATALOG_PATH", ""),
		CatalogLocale: get("CATALOG_LOCALE", "en"),
	}
	if cfg.DBURL == "" {
		return nil, errors.New("DB_URL is required")
	}

	timeout, err := time.ParseDuration(get("OFF_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid OFF_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid OFF_TIMEOUT: must be positive, got %s", timeout)
	}
	cfg.OFFTimeout = timeout

	threshold, err := strconv.ParseFloat(get("SUGGEST_THRESHOLD", "0.6"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SUGGEST_THRESHOLD: %w", err)
	}
	if threshold <= 0 || threshold > 1 {
		return nil, fmt.Errorf("invalid SUGGEST_THRESHOLD: %v not in (0, 1]", threshold)
	}
	cfg.SuggestThreshold = threshold

	return cfg, nil
}
