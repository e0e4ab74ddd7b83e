package sdk

import (
	"net/http"
)

// Version is the SDK release, sent in the User-Agent header.
const Version = "0.4.0"

const userAgent = "perch-go/" + Version

// httpTransport performs GET requests against a Lemmy instance.
//
// The actual implementation is split between:
//   - native.go: Standard Go HTTP client for regular builds
//   - wasm.go: Fetch API wrapper for browser builds
//
// Both return the status and the whole body; status mapping and decoding
// happen in the caller so the two builds behave identically.
type httpTransport struct {
	// client is the underlying HTTP client (native Go only)
	client *http.Client
	// config holds the SDK configuration
	config *Config
}

// rawResponse is an answer that arrived, whatever its status.
type rawResponse struct {
	status int
	body   []byte
}

// requestHeaders returns the headers sent with every request. Configured
// headers win over the defaults.
func (t *httpTransport) requestHeaders(requestID string) map[string]string {
	h := map[string]string{
		"Accept":       "application/json",
		"User-Agent":   userAgent,
		"X-Request-ID": requestID,
	}
	for k, v := range t.config.Headers {
		h[k] = v
	}
	return h
}
