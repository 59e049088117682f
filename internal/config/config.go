// Package config handles loading, parsing, and validating the YAML
// configuration file of the live game service. Secrets are overlaid from
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Guliveer/livegame-go/internal/constants"
)

// DefaultConfigPath is the default configuration file location.
const DefaultConfigPath = "configs/livegame.yaml"

// Load reads the configuration at path, applies defaults and then overlays
// environment variables. A missing file is not an error: the defaults plus
// the environment make a complete configuration.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30 * time.Second
	}

	if cfg.Riot.BaseURLTemplate == "" {
		cfg.Riot.BaseURLTemplate = constants.RiotBaseURLTemplate
	}
	if cfg.Riot.Timeout == 0 {
		cfg.Riot.Timeout = constants.DefaultHTTPTimeout
	}
	if cfg.Riot.MaxRetries == nil {
		retries := constants.DefaultMaxRetries
		cfg.Riot.MaxRetries = &retries
	}
	if cfg.Riot.RateLimit == 0 {
		cfg.Riot.RateLimit = constants.DefaultRateLimit
	}
	if cfg.Riot.Burst == 0 {
		cfg.Riot.Burst = constants.DefaultRateBurst
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = "livegame.db"
	}

	if cfg.LiveCache.TTL == 0 {
		cfg.LiveCache.TTL = constants.DefaultLiveCacheTTL
	}
	if cfg.LiveCache.SweepInterval == 0 {
		cfg.LiveCache.SweepInterval = constants.DefaultLiveCacheSweepInterval
	}
	if cfg.LiveFeed.PollInterval == 0 {
		cfg.LiveFeed.PollInterval = constants.DefaultLiveFeedInterval
	}

	if cfg.Stats.RankedQueueID == 0 {
		cfg.Stats.RankedQueueID = constants.RankedSoloQueueID
	}
	if cfg.Stats.Cutoff.IsZero() {
		cfg.Stats.Cutoff, _ = time.Parse(time.RFC3339, constants.DefaultStatsCutoff)
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "INFO"
	}
}

// applyEnvOverrides overlays environment variables for secrets and
// deployment-specific values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RIOT_API_KEY"); v != "" {
		cfg.Riot.APIKey = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LIVE_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.LiveCache.TTL = d
		}
	}
}

// Validate checks the configuration for common errors.
func Validate(cfg *Config) error {
	if cfg.Riot.APIKey == "" {
		return fmt.Errorf("riot api key is required (use env var RIOT_API_KEY)")
	}
	if cfg.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if cfg.LiveCache.TTL <= 0 {
		return fmt.Errorf("live_cache.ttl must be positive, got %s", cfg.LiveCache.TTL)
	}
	if cfg.LiveCache.SweepInterval <= 0 {
		return fmt.Errorf("live_cache.sweep_interval must be positive, got %s", cfg.LiveCache.SweepInterval)
	}
	if cfg.LiveCache.SweepInterval > 10*cfg.LiveCache.TTL {
		return fmt.Errorf("live_cache.sweep_interval %s is more than ten times the ttl %s",
			cfg.LiveCache.SweepInterval, cfg.LiveCache.TTL)
	}
	if cfg.Riot.RateLimit < 0 || cfg.Riot.Burst < 0 {
		return fmt.Errorf("riot.rate_limit and riot.burst must not be negative")
	}
	if cfg.Riot.Retries() < 0 {
		return fmt.Errorf("riot.max_retries must not be negative")
	}
	if cfg.LiveFeed.PollInterval < time.Second {
		return fmt.Errorf("live_feed.poll_interval must be at least 1s, got %s", cfg.LiveFeed.PollInterval)
	}
	return nil
}
