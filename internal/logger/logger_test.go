package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_AppliesDefaults(t *testing.T) {
	cfg := LoggerConfig{}
	_, err := New(&cfg)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, "console", cfg.Format)
	assert.Equal(t, "ts", cfg.TimeField)
	assert.Equal(t, "rfc3339", cfg.TimeFormat)
	assert.Equal(t, "football-hub", cfg.AppName)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  LoggerConfig
	}{
		{name: "unknown level", cfg: LoggerConfig{Level: "verbose"}},
		{name: "unknown format", cfg: LoggerConfig{Format: "xml"}},
		{name: "unknown time format", cfg: LoggerConfig{TimeFormat: "rfc822"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(&tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestNew_AcceptsJSONFormat(t *testing.T) {
	cfg := LoggerConfig{Level: "debug", Format: "json", TimeFormat: "unix_ms"}
	_, err := New(&cfg)
	assert.NoError(t, err)
}
