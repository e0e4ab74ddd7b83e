// Package instance loads the details of the Lemmy instance perch talks to
// and carries them through request contexts.
package instance

import (
	"context"
)

// contextKey is used for storing instance details in context.Context
type contextKey struct{}

// WithDetails injects instance details into a Go context
func WithDetails(ctx context.Context, d *Details) context.Context {
	return context.WithValue(ctx, contextKey{}, d)
}

// FromContext extracts instance details from a Go context
func FromContext(ctx context.Context) (*Details, bool) {
	d, ok := ctx.Value(contextKey{}).(*Details)
	return d, ok && d != nil
}

// NameFromContext is a convenience function to get just the instance name
// from context. It returns "" when no details are attached.
func NameFromContext(ctx context.Context) string {
	if d, ok := FromContext(ctx); ok {
		return d.Name
	}
	return ""
}

// Errors for instance details operations
var (
	ErrDetailsNotFound    = &InstanceError{Code: "DETAILS_NOT_FOUND", Message: "instance details file not found"}
	ErrInvalidDetails     = &InstanceError{Code: "INVALID_DETAILS", Message: "invalid instance details"}
	ErrUnsupportedFormat  = &InstanceError{Code: "UNSUPPORTED_FORMAT", Message: "unsupported instance details format"}
	ErrInvalidSchemaEntry = &InstanceError{Code: "INVALID_SCHEMA_ENTRY", Message: "invalid schema override"}
)

// InstanceError represents an instance-details error. Errors returned by
// this package match the sentinels above with errors.Is by Code.
type InstanceError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *InstanceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *InstanceError) Unwrap() error {
	return e.Err
}

// Is matches any InstanceError with the same Code
func (e *InstanceError) Is(target error) bool {
	t, ok := target.(*InstanceError)
	return ok && t.Code == e.Code
}

func wrapErr(base *InstanceError, err error) *InstanceError {
	return &InstanceError{Code: base.Code, Message: base.Message, Err: err}
}
