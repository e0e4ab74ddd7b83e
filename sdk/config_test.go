package sdk

import (
	"net/http"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Empty(t, config.BaseURL)
	assert.Equal(t, "v3", config.APIVersion)
	assert.Equal(t, 30*time.Second, config.Timeout)
	assert.Equal(t, 100, config.TransportConfig.MaxIdleConns)
	assert.Equal(t, 10, config.TransportConfig.MaxConnsPerHost)
	assert.Equal(t, 90*time.Second, config.TransportConfig.IdleConnTimeout)
	assert.NotNil(t, config.Headers)
	assert.IsType(t, &NoopObserver{}, config.Observer)

	err := config.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfigBuilders(t *testing.T) {
	logger := logrus.New()
	policy := NewFieldPolicy()
	metrics := NewMetricsCollector()
	wrap := func(rt http.RoundTripper) http.RoundTripper { return rt }

	config := DefaultConfig().
		WithBaseURL("https://lemmy.test").
		WithAPIVersion("v4").
		WithTimeout(5*time.Second).
		WithHeader("Accept-Language", "de").
		WithObserver(metrics).
		WithLogger(logger).
		WithFieldPolicy(policy).
		WithRoundTripper(wrap)

	require.NoError(t, config.Validate())
	assert.Equal(t, "https://lemmy.test", config.BaseURL)
	assert.Equal(t, "v4", config.APIVersion)
	assert.Equal(t, 5*time.Second, config.Timeout)
	assert.Equal(t, "de", config.Headers["Accept-Language"])
	assert.Same(t, metrics, config.Observer)
	assert.Same(t, logger, config.Logger)
	assert.Same(t, policy, config.FieldPolicy)
	assert.NotNil(t, config.RoundTripper)

	base, version := config.base().BaseURLAndVersion()
	assert.Equal(t, "https://lemmy.test", base)
	assert.Equal(t, "v4", version)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{"base url", DefaultConfig().WithBaseURL("https://lemmy.ml"), false},
		{"instance only", DefaultConfig().WithInstance(StaticBase{URL: "https://lemmy.ml", APIVersion: "v3"}), false},
		{"no location", DefaultConfig(), true},
		{"blank base url", DefaultConfig().WithBaseURL("   "), true},
		{"not a url", DefaultConfig().WithBaseURL("lemmy dot ml"), true},
		{"bad version", DefaultConfig().WithBaseURL("https://lemmy.ml").WithAPIVersion("3"), true},
		{"negative timeout", DefaultConfig().WithBaseURL("https://lemmy.ml").WithTimeout(-time.Second), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
				assert.Equal(t, ErrorTypeValidation, TypeOf(err))
			} else {
				require.NoError(t, err)
			}
		})
	}

	t.Run("fills defaults", func(t *testing.T) {
		config := &Config{BaseURL: "https://lemmy.ml"}
		require.NoError(t, config.Validate())
		assert.Equal(t, DefaultAPIVersion, config.APIVersion)
		assert.NotNil(t, config.Headers)
		assert.NotNil(t, config.Observer)
		assert.Same(t, logrus.StandardLogger(), config.Logger)
	})

	t.Run("instance wins over base url", func(t *testing.T) {
		config := DefaultConfig().
			WithBaseURL("https://ignored.test").
			WithInstance(StaticBase{URL: "https://lemmy.test", APIVersion: "v3"})
		require.NoError(t, config.Validate())
		base, _ := config.base().BaseURLAndVersion()
		assert.Equal(t, "https://lemmy.test", base)
	})
}
