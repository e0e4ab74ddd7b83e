// Package gateway serves a read-only JSON view of one Lemmy instance over
// fiber, backed by an sdk.Client.
package gateway

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the gateway configuration
type Config struct {
	// Server configuration
	Host string
	Port int

	// RequestTimeout bounds each upstream Lemmy call made for a request.
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration

	CORSOrigins []string
	MetricsPath string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	port, err := strconv.Atoi(getEnvOrDefault("PERCH_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PERCH_PORT: %w", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid PERCH_PORT: %d out of range", port)
	}

	requestTimeout, err := strconv.Atoi(getEnvOrDefault("PERCH_REQUEST_TIMEOUT", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid PERCH_REQUEST_TIMEOUT: %w", err)
	}

	shutdownTimeout, err := strconv.Atoi(getEnvOrDefault("PERCH_SHUTDOWN_TIMEOUT", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid PERCH_SHUTDOWN_TIMEOUT: %w", err)
	}

	var origins []string
	for _, o := range strings.Split(getEnvOrDefault("PERCH_CORS_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return &Config{
		Host:            getEnvOrDefault("PERCH_HOST", "0.0.0.0"),
		Port:            port,
		RequestTimeout:  time.Duration(requestTimeout) * time.Second,
		ShutdownTimeout: time.Duration(shutdownTimeout) * time.Second,
		CORSOrigins:     origins,
		MetricsPath:     getEnvOrDefault("PERCH_METRICS_PATH", "/metrics"),
	}, nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
