//go:build !(js && wasm)

package sdk

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// newHTTPTransport creates a native HTTP transport
func newHTTPTransport(config *Config) (*httpTransport, error) {
	var rt http.RoundTripper = &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        config.TransportConfig.MaxIdleConns,
		MaxConnsPerHost:     config.TransportConfig.MaxConnsPerHost,
		IdleConnTimeout:     config.TransportConfig.IdleConnTimeout,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	if config.RoundTripper != nil {
		rt = config.RoundTripper(rt)
		if rt == nil {
			return nil, fmt.Errorf("%w: round tripper wrapper returned nil", ErrInvalidConfig)
		}
	}

	return &httpTransport{
		client: &http.Client{
			Transport: rt,
			Timeout:   config.Timeout,
		},
		config: config,
	}, nil
}

// get performs a single GET request and reads the whole body
func (t *httpTransport) get(ctx context.Context, rawURL, requestID string) (*rawResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &TransportError{Op: "request", URL: rawURL, Err: err}
	}
	for k, v := range t.requestHeaders(requestID) {
		req.Header.Set(k, v)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "request", URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "read", URL: rawURL, Err: err}
	}
	return &rawResponse{status: resp.StatusCode, body: body}, nil
}

// close closes the transport
func (t *httpTransport) close() error {
	t.client.CloseIdleConnections()
	return nil
}
