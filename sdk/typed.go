package sdk

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Ptr returns a pointer to v. It is the usual way to set optional request
// fields.
//
// Example:
//
//	form := sdk.GetPosts{Page: sdk.Ptr[int32](2), Sort: sdk.Ptr(sdk.SortNew)}
func Ptr[T any](v T) *T { return &v }

// Execute performs a GET on rawURL and decodes the answer into a T. The
// operation methods on Client are thin wrappers around it; call it
// directly for endpoints or response shapes the SDK does not know.
//
// Example:
//
//	type versionOnly struct {
//	    Version string `json:"version"`
//	}
//	v, err := sdk.Execute[versionOnly](ctx, client, client.BuildURL(sdk.GetOps().Site, sdk.GetSite{}))
func Execute[T any](ctx context.Context, c *Client, rawURL string) (*T, error) {
	return execute[T](ctx, c, Endpoint{}, rawURL)
}

func execute[T any](ctx context.Context, c *Client, ep Endpoint, rawURL string) (*T, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	c.observer.OnRequestStart(ep, rawURL)
	start := time.Now()

	status := 0
	out, err := func() (*T, error) {
		raw, err := c.transport.get(ctx, rawURL, requestID)
		if err != nil {
			return nil, err
		}
		status = raw.status
		if raw.status < 200 || raw.status >= 300 {
			return nil, newHTTPStatusError(raw.status, raw.body, requestID)
		}
		return decodeResponse[T](raw.body, c.policy)
	}()

	var dErr *DecodeError
	if errors.As(err, &dErr) {
		c.logger.WithFields(logrus.Fields{
			"endpoint":   ep.String(),
			"url":        rawURL,
			"request_id": requestID,
			"type":       dErr.Type,
			"field":      dErr.Field,
			"snippet":    dErr.Snippet,
			"truncated":  dErr.Truncated,
		}).WithError(dErr.Err).Error("response did not match schema")
		c.observer.OnDecodeError(ep, dErr)
	}

	c.observer.OnRequestEnd(ep, rawURL, status, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}
