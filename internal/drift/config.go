package drift

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Default stream layout
const (
	DefaultSubject    = "perch.schema.drift"
	DefaultStreamName = "PERCH_DRIFT"
)

// Config holds drift reporting configuration
type Config struct {
	// NATS connection settings. An empty URL disables reporting.
	URL      string
	Name     string
	User     string
	Password string

	// JetStream settings
	Subject        string
	StreamName     string
	StreamMaxAge   time.Duration
	StreamMaxMsgs  int64
	StreamReplicas int

	// Reporter settings
	BufferSize     int
	PublishTimeout time.Duration
}

// NewConfigFromEnv creates a new Config from environment variables
func NewConfigFromEnv() (*Config, error) {
	maxMsgs, err := strconv.ParseInt(getEnvOrDefault("DRIFT_STREAM_MAX_MSGS", "100000"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DRIFT_STREAM_MAX_MSGS: %w", err)
	}

	replicas, err := strconv.Atoi(getEnvOrDefault("DRIFT_STREAM_REPLICAS", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid DRIFT_STREAM_REPLICAS: %w", err)
	}

	bufferSize, err := strconv.Atoi(getEnvOrDefault("DRIFT_BUFFER_SIZE", "256"))
	if err != nil {
		return nil, fmt.Errorf("invalid DRIFT_BUFFER_SIZE: %w", err)
	}
	if bufferSize < 1 {
		return nil, fmt.Errorf("invalid DRIFT_BUFFER_SIZE: must be positive, got %d", bufferSize)
	}

	maxAge, err := time.ParseDuration(getEnvOrDefault("DRIFT_STREAM_MAX_AGE", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid DRIFT_STREAM_MAX_AGE: %w", err)
	}

	publishTimeout, err := time.ParseDuration(getEnvOrDefault("DRIFT_PUBLISH_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DRIFT_PUBLISH_TIMEOUT: %w", err)
	}

	return &Config{
		URL:            os.Getenv("NATS_URL"),
		Name:           getEnvOrDefault("NATS_NAME", "perch"),
		User:           os.Getenv("NATS_USER"),
		Password:       os.Getenv("NATS_PASSWORD"),
		Subject:        getEnvOrDefault("DRIFT_SUBJECT", DefaultSubject),
		StreamName:     getEnvOrDefault("DRIFT_STREAM_NAME", DefaultStreamName),
		StreamMaxAge:   maxAge,
		StreamMaxMsgs:  maxMsgs,
		StreamReplicas: replicas,
		BufferSize:     bufferSize,
		PublishTimeout: publishTimeout,
	}, nil
}

// Enabled reports whether a NATS server is configured.
func (c *Config) Enabled() bool {
	return c.URL != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
