package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "data/startup_funding.csv", cfg.Paths.RawFile)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 100.0, cfg.RateLimit.RPS)
}

func TestLoadFromFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9000
logging:
  level: debug
paths:
  raw_file: /srv/funding/raw.csv
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	cfg, err := LoadFrom(configFile)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/srv/funding/raw.csv", cfg.Paths.RawFile)
}

func TestEnvOverridesFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("server:\n  port: 9000\n"), 0644))

	t.Setenv("FUND_SERVER_PORT", "9100")

	cfg, err := LoadFrom(configFile)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Server.Port)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"invalid port", map[string]string{"FUND_SERVER_PORT": "70000"}},
		{"invalid log level", map[string]string{"FUND_LOGGING_LEVEL": "verbose"}},
		{"invalid log output", map[string]string{"FUND_LOGGING_OUTPUT": "syslog"}},
		{"invalid rate limit", map[string]string{"FUND_RATE_LIMIT_RPS": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}
			_, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
			require.Error(t, err)
		})
	}
}

func TestLoadBadYAML(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("server: [not a map"), 0644))

	_, err := LoadFrom(configFile)
	require.Error(t, err)
}
