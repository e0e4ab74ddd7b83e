package sdk

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/tidwall/gjson"
)

// Common errors returned by the SDK. Every typed error below matches one or
// more of these through errors.Is.
//
// Example:
//
//	resp, err := client.GetPosts(ctx, url)
//	if errors.Is(err, sdk.ErrNotFound) {
//	    // Handle a missing object
//	} else if errors.Is(err, sdk.ErrTimeout) {
//	    // Handle timeout
//	} else if errors.Is(err, sdk.ErrDecode) {
//	    // The instance speaks a different schema version
//	}
var (
	// ErrInvalidConfig is returned when the configuration is invalid
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrTransport is returned when the request could not be delivered
	ErrTransport = errors.New("transport failure")

	// ErrTimeout is returned when a request times out
	ErrTimeout = errors.New("request timeout")

	// ErrContextCanceled is returned when the context is canceled before completion
	ErrContextCanceled = errors.New("context canceled")

	// ErrHTTPStatus is returned when the server answers with a non-2xx status
	ErrHTTPStatus = errors.New("unexpected http status")

	// ErrNotFound is returned for 404 answers
	ErrNotFound = errors.New("not found")

	// ErrDecode is returned when a response body does not match the expected schema
	ErrDecode = errors.New("response decode failed")

	// ErrSerialize marks a request record that could not be query-encoded.
	// It is only ever observed through logs and Observer.OnSerializeFallback.
	ErrSerialize = errors.New("query serialization failed")
)

// ErrorType represents the kind of failure for categorization and metrics.
//
// Example:
//
//	switch sdk.TypeOf(err) {
//	case sdk.ErrorTypeTransport:
//	    // Instance unreachable
//	case sdk.ErrorTypeHTTPStatus:
//	    // Instance answered with an error
//	case sdk.ErrorTypeDecode:
//	    // Schema drift
//	}
type ErrorType int

const (
	// ErrorTypeUnknown represents an unknown or unclassified error
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeTransport represents network-related errors (connection refused, DNS, etc.)
	ErrorTypeTransport
	// ErrorTypeTimeout represents timeout errors (request timeout, context deadline)
	ErrorTypeTimeout
	// ErrorTypeHTTPStatus represents a non-2xx answer
	ErrorTypeHTTPStatus
	// ErrorTypeDecode represents a body that did not fit the response record
	ErrorTypeDecode
	// ErrorTypeSerialize represents a request record that could not be encoded
	ErrorTypeSerialize
	// ErrorTypeValidation represents validation errors (invalid input, config, etc.)
	ErrorTypeValidation
	// ErrorTypeCanceled represents a request abandoned by its caller
	ErrorTypeCanceled
)

// String returns the string representation of the error type
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeTransport:
		return "transport"
	case ErrorTypeTimeout:
		return "timeout"
	case ErrorTypeHTTPStatus:
		return "http_status"
	case ErrorTypeDecode:
		return "decode"
	case ErrorTypeSerialize:
		return "serialize"
	case ErrorTypeValidation:
		return "validation"
	case ErrorTypeCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// TransportError represents a request that never produced an HTTP answer:
// connection refused, DNS failure, timeout, or cancellation.
//
// Example:
//
//	var tErr *sdk.TransportError
//	if errors.As(err, &tErr) {
//	    log.Printf("request to %s failed during %s: %v", tErr.URL, tErr.Op, tErr.Err)
//	}
type TransportError struct {
	// Op is the phase that failed ("request", "read", "fetch")
	Op string
	// URL is the full request URL
	URL string
	// Err is the underlying error
	Err error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error during %s %s: %v", e.Op, e.URL, e.Err)
}

// Unwrap returns the underlying error
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is
func (e *TransportError) Is(target error) bool {
	switch target {
	case ErrTransport:
		return true
	case ErrTimeout:
		return e.Timeout()
	case ErrContextCanceled:
		return errors.Is(e.Err, context.Canceled)
	}
	return false
}

// Timeout reports whether the failure was a deadline or client timeout.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}

// HTTPStatusError represents a non-2xx answer from the instance. Lemmy puts
// a machine-readable reason in the body's "error" field, which is copied to
// Message when present.
//
// Example:
//
//	var sErr *sdk.HTTPStatusError
//	if errors.As(err, &sErr) && sErr.Message == "couldnt_find_post" {
//	    // Handle a deleted post
//	}
type HTTPStatusError struct {
	// StatusCode is the HTTP status code from the response
	StatusCode int
	// Body is the start of the response body
	Body string
	// Message is Lemmy's error code, if the body carried one
	Message string
	// RequestID is the X-Request-ID sent with the request
	RequestID string
}

func newHTTPStatusError(status int, body []byte, requestID string) *HTTPStatusError {
	snippet, _ := snippetOf(body)
	e := &HTTPStatusError{StatusCode: status, Body: snippet, RequestID: requestID}
	if gjson.ValidBytes(body) {
		e.Message = gjson.GetBytes(body, "error").String()
	}
	return e
}

// Error implements the error interface
func (e *HTTPStatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("http status %d", e.StatusCode)
}

// Is implements errors.Is
func (e *HTTPStatusError) Is(target error) bool {
	switch target {
	case ErrHTTPStatus:
		return true
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// DecodeError represents a body that could not be read into the expected
// response record: malformed JSON, a wrong value type, an unknown enum
// literal, or a missing mandatory field.
//
// Example:
//
//	var dErr *sdk.DecodeError
//	if errors.As(err, &dErr) {
//	    log.Printf("%s.%s did not decode: %v", dErr.Type, dErr.Field, dErr.Err)
//	}
type DecodeError struct {
	// Type is the Go name of the response record
	Type string
	// Field is the JSON path of the offending field, when known
	Field string
	// Snippet is the start of the body
	Snippet string
	// Truncated is set when Snippet is shorter than the body
	Truncated bool
	// Err is the underlying error
	Err error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("decode %s: field %s: %v", e.Type, e.Field, e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Type, e.Err)
}

// Unwrap returns the underlying error
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// SerializeError describes a request record that could not be encoded into
// a query string. The URL builder never returns it; it falls back to the
// bare endpoint path and reports this error to the logger and observers.
type SerializeError struct {
	Endpoint Endpoint
	FormType string
	Err      error
}

// Error implements the error interface
func (e *SerializeError) Error() string {
	return fmt.Sprintf("serialize %s for %s: %v", e.FormType, e.Endpoint, e.Err)
}

// Unwrap returns the underlying error
func (e *SerializeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is
func (e *SerializeError) Is(target error) bool {
	return target == ErrSerialize
}

// TypeOf classifies err. Nil yields ErrorTypeUnknown.
func TypeOf(err error) ErrorType {
	if err == nil {
		return ErrorTypeUnknown
	}
	var tErr *TransportError
	if errors.As(err, &tErr) {
		switch {
		case tErr.Timeout():
			return ErrorTypeTimeout
		case errors.Is(tErr.Err, context.Canceled):
			return ErrorTypeCanceled
		}
		return ErrorTypeTransport
	}
	switch {
	case errors.Is(err, ErrHTTPStatus):
		return ErrorTypeHTTPStatus
	case errors.Is(err, ErrDecode):
		return ErrorTypeDecode
	case errors.Is(err, ErrSerialize):
		return ErrorTypeSerialize
	case errors.Is(err, ErrInvalidConfig):
		return ErrorTypeValidation
	case errors.Is(err, context.DeadlineExceeded):
		return ErrorTypeTimeout
	case errors.Is(err, context.Canceled):
		return ErrorTypeCanceled
	}
	return ErrorTypeUnknown
}

// IsNotFound checks if the error represents a 404 from the instance.
//
// Example:
//
//	post, err := client.GetPost(ctx, url)
//	if sdk.IsNotFound(err) {
//	    // Render a "post gone" page
//	}
func IsNotFound(err error) bool {
	return err != nil && errors.Is(err, ErrNotFound)
}

// IsDecode checks if the error is a schema mismatch.
func IsDecode(err error) bool {
	return err != nil && errors.Is(err, ErrDecode)
}

// IsTransport checks if the request failed before an answer arrived.
func IsTransport(err error) bool {
	return err != nil && errors.Is(err, ErrTransport)
}
