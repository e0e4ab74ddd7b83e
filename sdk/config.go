package sdk

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// DefaultAPIVersion is the Lemmy API version used when none is configured.
const DefaultAPIVersion = "v3"

// BaseURLProvider supplies the instance base URL and API version. The
// instance details loaded from Instance.toml implement it, and so does a
// Config built with WithBaseURL.
type BaseURLProvider interface {
	BaseURLAndVersion() (baseURL, apiVersion string)
}

// StaticBase is a fixed BaseURLProvider.
type StaticBase struct {
	URL        string
	APIVersion string
}

// BaseURLAndVersion implements BaseURLProvider.
func (s StaticBase) BaseURLAndVersion() (string, string) { return s.URL, s.APIVersion }

// Config holds the configuration for the Lemmy client.
// All fields except the instance location have sensible defaults.
//
// Configuration can be built using the fluent builder pattern:
//
//	config := sdk.DefaultConfig().
//	    WithBaseURL("https://lemmy.example").
//	    WithTimeout(10 * time.Second).
//	    WithHeader("Accept-Language", "en")
//
//	client, err := sdk.NewClient(config)
type Config struct {
	// BaseURL is the instance root, e.g. "https://lemmy.ml".
	// Ignored when Instance is set.
	BaseURL string `validate:"omitempty,url"`

	// APIVersion is the path segment after /api/.
	// Default: "v3"
	APIVersion string `validate:"omitempty,startswith=v"`

	// Instance supplies the base URL and version, usually from the
	// instance details file. Takes precedence over BaseURL.
	Instance BaseURLProvider `validate:"-"`

	// Timeout bounds a whole request including reading the body.
	// Zero disables the timeout.
	// Default: 30s
	Timeout time.Duration `validate:"gte=0"`

	// TransportConfig holds HTTP transport settings.
	// Configures connection pooling and keep-alive behavior.
	TransportConfig TransportConfig

	// Headers are custom headers to include in all requests.
	Headers map[string]string

	// Observer for monitoring operations.
	// If nil, NoopObserver is used.
	Observer Observer `validate:"-"`

	// Logger receives decode and serialize failures.
	// Default: logrus.StandardLogger()
	Logger logrus.FieldLogger `validate:"-"`

	// FieldPolicy overrides the declared optionality of response fields.
	// If nil, declared optionality is used.
	FieldPolicy *FieldPolicy `validate:"-"`

	// RoundTripper wraps the native HTTP transport, e.g. for tracing.
	// Ignored in browser builds.
	RoundTripper func(http.RoundTripper) http.RoundTripper `validate:"-"`
}

// TransportConfig holds HTTP transport configuration for connection pooling.
//
// Example:
//
//	config.TransportConfig = sdk.TransportConfig{
//	    MaxIdleConns:    200,
//	    MaxConnsPerHost: 50,
//	    IdleConnTimeout: 120 * time.Second,
//	}
type TransportConfig struct {
	// MaxIdleConns controls the maximum number of idle connections
	// across all hosts. Zero means no limit.
	// Default: 100
	MaxIdleConns int `validate:"gte=0"`

	// MaxConnsPerHost controls the maximum connections per host.
	// Default: 10
	MaxConnsPerHost int `validate:"gte=0"`

	// IdleConnTimeout is the maximum time an idle connection will remain idle
	// before closing itself. Zero means no limit.
	// Default: 90s
	IdleConnTimeout time.Duration `validate:"gte=0"`
}

// DefaultConfig returns a Config with sensible defaults. The instance
// location must still be set with WithBaseURL or WithInstance.
//
// Example:
//
//	config := sdk.DefaultConfig().WithBaseURL("https://lemmy.ml")
//	client, err := sdk.NewClient(config)
func DefaultConfig() *Config {
	return &Config{
		APIVersion: DefaultAPIVersion,
		Timeout:    30 * time.Second,
		TransportConfig: TransportConfig{
			MaxIdleConns:    100,
			MaxConnsPerHost: 10,
			IdleConnTimeout: 90 * time.Second,
		},
		Headers:  make(map[string]string),
		Observer: &NoopObserver{},
	}
}

// WithBaseURL sets the instance root URL. A trailing slash is trimmed when
// URLs are built.
//
// Example:
//
//	config := sdk.DefaultConfig().
//	    WithBaseURL("https://lemmy.ml")
func (c *Config) WithBaseURL(url string) *Config {
	c.BaseURL = url
	return c
}

// WithAPIVersion sets the API version path segment.
func (c *Config) WithAPIVersion(version string) *Config {
	c.APIVersion = version
	return c
}

// WithInstance takes the base URL and version from p.
func (c *Config) WithInstance(p BaseURLProvider) *Config {
	c.Instance = p
	return c
}

// WithTimeout sets the request timeout for all operations.
//
// Example:
//
//	config := sdk.DefaultConfig().
//	    WithTimeout(10 * time.Second)
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithHeader adds a custom header to be sent with all requests.
//
// Example:
//
//	config := sdk.DefaultConfig().
//	    WithHeader("Accept-Language", "de")
func (c *Config) WithHeader(key, value string) *Config {
	if c.Headers == nil {
		c.Headers = make(map[string]string)
	}
	c.Headers[key] = value
	return c
}

// WithObserver sets a custom observer for monitoring SDK operations.
//
// Example:
//
//	config := sdk.DefaultConfig().
//	    WithObserver(sdk.NewMetricsCollector())
func (c *Config) WithObserver(observer Observer) *Config {
	c.Observer = observer
	return c
}

// WithLogger sets the logger used for decode and serialize failures.
func (c *Config) WithLogger(logger logrus.FieldLogger) *Config {
	c.Logger = logger
	return c
}

// WithFieldPolicy sets response field optionality overrides.
//
// Example:
//
//	policy := sdk.NewFieldPolicy()
//	_ = policy.Relax("PostAggregates.newest_comment_time_necro")
//	config := sdk.DefaultConfig().WithFieldPolicy(policy)
func (c *Config) WithFieldPolicy(policy *FieldPolicy) *Config {
	c.FieldPolicy = policy
	return c
}

// WithRoundTripper wraps the native HTTP transport.
//
// Example:
//
//	config := sdk.DefaultConfig().
//	    WithRoundTripper(telemetry.NewTracingRoundTripper)
func (c *Config) WithRoundTripper(wrap func(http.RoundTripper) http.RoundTripper) *Config {
	c.RoundTripper = wrap
	return c
}

var configValidator = validator.New()

// Validate validates the configuration and sets defaults for missing values.
// This is called automatically by NewClient.
//
// Returns an error wrapping ErrInvalidConfig if the configuration is
// invalid (e.g., no instance location).
func (c *Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Instance == nil {
		if strings.TrimSpace(c.BaseURL) == "" {
			return fmt.Errorf("%w: base URL or instance is required", ErrInvalidConfig)
		}
		if c.APIVersion == "" {
			c.APIVersion = DefaultAPIVersion
		}
	}
	if c.Headers == nil {
		c.Headers = make(map[string]string)
	}
	if c.Observer == nil {
		c.Observer = &NoopObserver{}
	}
	if c.Logger == nil {
		c.Logger = logrus.StandardLogger()
	}
	return nil
}

// base returns the provider URLs are built against.
func (c *Config) base() BaseURLProvider {
	if c.Instance != nil {
		return c.Instance
	}
	return StaticBase{URL: c.BaseURL, APIVersion: c.APIVersion}
}
