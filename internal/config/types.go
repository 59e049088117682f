package config

import "time"

// Config is the full service configuration. It is loaded from a YAML file
// and optionally overlaid with environment variables.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Riot      RiotConfig      `yaml:"riot"`
	Database  DatabaseConfig  `yaml:"database"`
	LiveCache LiveCacheConfig `yaml:"live_cache"`
	LiveFeed  LiveFeedConfig  `yaml:"live_feed"`
	Stats     StatsConfig     `yaml:"stats"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// RiotConfig holds upstream API settings.
type RiotConfig struct {
	APIKey          string        `yaml:"-"`
	BaseURLTemplate string        `yaml:"base_url_template"`
	Timeout         time.Duration `yaml:"timeout"`
	MaxRetries      *int          `yaml:"max_retries,omitempty"`
	RateLimit       float64       `yaml:"rate_limit"`
	Burst           int           `yaml:"burst"`
}

// DatabaseConfig holds the player/match store location.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// LiveCacheConfig holds the live game cache lifetimes.
type LiveCacheConfig struct {
	TTL           time.Duration `yaml:"ttl"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// LiveFeedConfig holds settings for websocket live feeds.
type LiveFeedConfig struct {
	PollInterval time.Duration `yaml:"poll_interval"`
}

// StatsConfig holds the historical stats window policy.
type StatsConfig struct {
	RankedQueueID int       `yaml:"ranked_queue_id"`
	Cutoff        time.Time `yaml:"cutoff"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

// Retries returns the configured upstream retry count.
func (rc RiotConfig) Retries() int {
	if rc.MaxRetries == nil {
		return 0
	}
	return *rc.MaxRetries
}
