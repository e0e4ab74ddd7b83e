package drift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearDriftEnv(t *testing.T) {
	for _, key := range []string{
		"NATS_URL", "NATS_NAME", "NATS_USER", "NATS_PASSWORD",
		"DRIFT_SUBJECT", "DRIFT_STREAM_NAME", "DRIFT_STREAM_MAX_AGE",
		"DRIFT_STREAM_MAX_MSGS", "DRIFT_STREAM_REPLICAS",
		"DRIFT_BUFFER_SIZE", "DRIFT_PUBLISH_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestNewConfigFromEnv_Defaults(t *testing.T) {
	clearDriftEnv(t)

	cfg, err := NewConfigFromEnv()
	require.NoError(t, err)

	assert.False(t, cfg.Enabled())
	assert.Equal(t, "perch", cfg.Name)
	assert.Equal(t, DefaultSubject, cfg.Subject)
	assert.Equal(t, DefaultStreamName, cfg.StreamName)
	assert.Equal(t, 168*time.Hour, cfg.StreamMaxAge)
	assert.Equal(t, int64(100000), cfg.StreamMaxMsgs)
	assert.Equal(t, 1, cfg.StreamReplicas)
	assert.Equal(t, 256, cfg.BufferSize)
	assert.Equal(t, 5*time.Second, cfg.PublishTimeout)
}

func TestNewConfigFromEnv_Overrides(t *testing.T) {
	clearDriftEnv(t)
	t.Setenv("NATS_URL", "nats://nats:4222")
	t.Setenv("NATS_USER", "perch")
	t.Setenv("NATS_PASSWORD", "secret")
	t.Setenv("DRIFT_SUBJECT", "drift.test")
	t.Setenv("DRIFT_BUFFER_SIZE", "8")
	t.Setenv("DRIFT_PUBLISH_TIMEOUT", "250ms")

	cfg, err := NewConfigFromEnv()
	require.NoError(t, err)

	assert.True(t, cfg.Enabled())
	assert.Equal(t, "nats://nats:4222", cfg.URL)
	assert.Equal(t, "perch", cfg.User)
	assert.Equal(t, "secret", cfg.Password)
	assert.Equal(t, "drift.test", cfg.Subject)
	assert.Equal(t, 8, cfg.BufferSize)
	assert.Equal(t, 250*time.Millisecond, cfg.PublishTimeout)
}

func TestNewConfigFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"DRIFT_STREAM_MAX_MSGS", "lots"},
		{"DRIFT_STREAM_REPLICAS", "three"},
		{"DRIFT_BUFFER_SIZE", "0"},
		{"DRIFT_BUFFER_SIZE", "big"},
		{"DRIFT_STREAM_MAX_AGE", "a week"},
		{"DRIFT_PUBLISH_TIMEOUT", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearDriftEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := NewConfigFromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
