package config

import (
	"github.com/footballhub/cli/internal/logger"
)

// APIConfig points the client at the Hub backend.
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=0"`
}

// CacheConfig locates the local sqlite store (session cookie + workflow
// bundle cache).
type CacheConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// WatchConfig tunes the notification poller.
type WatchConfig struct {
	IntervalSeconds int `mapstructure:"interval_seconds" validate:"gte=5"`
}

type Config struct {
	API   APIConfig   `mapstructure:"api"`
	Cache CacheConfig `mapstructure:"cache"`
	Watch WatchConfig `mapstructure:"watch"`
	// The logger section is optional and validates itself in logger.New
	// after its own defaults are applied, so config-level validation must
	// not dive into it: its oneof tags would reject the empty strings an
	// absent section leaves behind.
	Logger logger.LoggerConfig `mapstructure:"logger" validate:"-"`
}
