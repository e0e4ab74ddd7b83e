package gateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	for _, key := range []string{"PERCH_HOST", "PERCH_PORT", "PERCH_REQUEST_TIMEOUT", "PERCH_SHUTDOWN_TIMEOUT", "PERCH_CORS_ORIGINS", "PERCH_METRICS_PATH"} {
		t.Setenv(key, "")
	}

	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
		assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
		assert.Equal(t, "/metrics", cfg.MetricsPath)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PERCH_HOST", "127.0.0.1")
		t.Setenv("PERCH_PORT", "9000")
		t.Setenv("PERCH_REQUEST_TIMEOUT", "5")
		t.Setenv("PERCH_CORS_ORIGINS", "https://a.example, https://b.example,")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:9000", cfg.Addr())
		assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	})

	t.Run("invalid", func(t *testing.T) {
		tests := map[string]string{
			"PERCH_PORT":             "http",
			"PERCH_REQUEST_TIMEOUT":  "soon",
			"PERCH_SHUTDOWN_TIMEOUT": "later",
		}
		for key, value := range tests {
			t.Run(key, func(t *testing.T) {
				t.Setenv(key, value)
				_, err := LoadConfig()
				require.Error(t, err)
				assert.Contains(t, err.Error(), key)
			})
		}

		t.Setenv("PERCH_PORT", "70000")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
