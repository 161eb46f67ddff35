// Package logger builds the application's zerolog root logger from a
// validated config. The CLI writes logs to stderr so screen output on
// stdout stays clean.
package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type LoggerConfig struct {
	Level      string `json:"level,omitempty" mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Format     string `json:"format,omitempty" mapstructure:"format" validate:"oneof=json console"`
	TimeField  string `json:"timeField,omitempty" mapstructure:"time_field"`
	TimeFormat string `json:"timeFormat,omitempty" mapstructure:"time_format" validate:"oneof=rfc3339 rfc3339nano unix unix_ms"`
	AppName    string `json:"appName,omitempty" mapstructure:"app_name"`
	AppVersion string `json:"appVersion,omitempty" mapstructure:"app_version"`
	WithCaller bool   `json:"withCaller,omitempty" mapstructure:"with_caller"`
}

func New(cfg *LoggerConfig) (logger zerolog.Logger, err error) {
	cfg.setDefaults()

	v := validator.New()
	if err = v.Struct(cfg); err != nil {
		return logger, fmt.Errorf("logger config validation error: %w", err)
	}

	zerolog.TimestampFieldName = cfg.TimeField
	zerolog.TimeFieldFormat = timeFormat(cfg.TimeFormat)

	var writer zerolog.LevelWriter
	switch cfg.Format {
	case "console":
		writer = zerolog.MultiLevelWriter(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: timeFormat(cfg.TimeFormat),
		})
	default:
		writer = zerolog.MultiLevelWriter(os.Stderr)
	}

	logger = zerolog.New(writer).
		With().
		Timestamp().
		Str("app", cfg.AppName).
		Str("version", cfg.AppVersion).
		Logger()

	if cfg.WithCaller {
		logger = logger.With().Caller().Logger()
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return logger, err
	}
	zerolog.SetGlobalLevel(level)

	return logger, nil
}

func timeFormat(name string) string {
	switch name {
	case "rfc3339nano":
		return time.RFC3339Nano
	case "unix":
		return zerolog.TimeFormatUnix
	case "unix_ms":
		return zerolog.TimeFormatUnixMs
	default:
		return time.RFC3339
	}
}

func (c *LoggerConfig) setDefaults() {
	if c.Level == "" {
		c.Level = "warn" // a CLI stays quiet unless asked
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.TimeField == "" {
		c.TimeField = "ts"
	}
	if c.TimeFormat == "" {
		c.TimeFormat = "rfc3339"
	}
	if c.AppName == "" {
		c.AppName = "football-hub"
	}
	if c.AppVersion == "" {
		c.AppVersion = "0.1.0"
	}
}
