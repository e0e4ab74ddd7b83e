package telemetry

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestFileHook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "perch.json")
	hook, err := NewFileHook(path)
	require.NoError(t, err)

	l := logrus.New()
	l.SetOutput(io.Discard)
	l.AddHook(hook)

	l.WithField("endpoint", "GET site").WithError(errors.New("boom")).Error("Lemmy request failed")
	l.Info("second")
	require.NoError(t, hook.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []map[string]interface{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var line map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		lines = append(lines, line)
	}
	require.Len(t, lines, 2)

	assert.Equal(t, "Lemmy request failed", lines[0]["message"])
	assert.Equal(t, "error", lines[0]["level"])
	assert.Equal(t, "GET site", lines[0]["endpoint"])
	assert.Equal(t, "boom", lines[0]["error"])
	assert.NotEmpty(t, lines[0]["@timestamp"])
	assert.Equal(t, "info", lines[1]["level"])
}

func TestServiceHook(t *testing.T) {
	l, hook := test.NewNullLogger()
	l.AddHook(&serviceHook{fields: logrus.Fields{"service.name": "perch-api"}})

	l.Info("hello")
	l.WithField("service.name", "override").Info("again")

	require.Len(t, hook.Entries, 2)
	assert.Equal(t, "perch-api", hook.Entries[0].Data["service.name"])
	assert.Equal(t, "override", hook.Entries[1].Data["service.name"])
}

func TestWithContext(t *testing.T) {
	t.Run("without span", func(t *testing.T) {
		entry := WithContext(context.Background())
		_, ok := entry.Data["trace.id"]
		assert.False(t, ok)
	})

	t.Run("with span", func(t *testing.T) {
		recordSpans(t)
		ctx, span := otel.Tracer("test").Start(context.Background(), "op")
		defer span.End()

		entry := WithContext(ctx)
		assert.Equal(t, span.SpanContext().TraceID().String(), entry.Data["trace.id"])
		assert.Equal(t, span.SpanContext().SpanID().String(), entry.Data["span.id"])
	})
}

func TestL_DefaultsToStandardLogger(t *testing.T) {
	if logger != nil {
		t.Skip("logger already initialized")
	}
	assert.Same(t, logrus.StandardLogger(), L())
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "")
	t.Setenv("ENABLE_TRACING", "true")
	t.Setenv("OTEL_SAMPLING_RATE", "0.25")
	t.Setenv("METRICS_INTERVAL", "not-a-number")
	t.Setenv("ENABLE_METRICS", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := NewConfigFromEnv("perchctl")
	assert.Equal(t, "perchctl", cfg.ServiceName)
	assert.True(t, cfg.EnableTracing)
	assert.False(t, cfg.EnableMetrics)
	assert.Equal(t, 0.25, cfg.SamplingRate)
	assert.Equal(t, 10, cfg.MetricsInterval)
	assert.Equal(t, "info", cfg.LogLevel)
}
