package sdk

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Client is a typed Lemmy API client. It is safe for concurrent use by
// multiple goroutines and holds no per-request state: there is no caching,
// no retrying and no coalescing of identical requests.
//
// Example:
//
//	client, err := sdk.NewClient(sdk.DefaultConfig().WithBaseURL("https://lemmy.ml"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	url := client.BuildURL(sdk.GetOps().PostList, sdk.GetPosts{Sort: sdk.Ptr(sdk.SortHot)})
//	resp, err := client.GetPosts(ctx, url)
//	if err != nil {
//	    if sdk.IsNotFound(err) {
//	        log.Println("no such listing")
//	    }
//	    return err
//	}
//	for _, pv := range resp.Posts {
//	    fmt.Println(pv.Post.Name)
//	}
type Client struct {
	transport *httpTransport
	config    *Config
	base      BaseURLProvider
	observer  Observer
	logger    logrus.FieldLogger
	policy    *FieldPolicy

	mu     sync.RWMutex
	closed bool
}

// NewClient creates a new Lemmy client with the provided configuration.
// If config is nil, DefaultConfig is used, which fails validation because
// it names no instance.
//
// Example:
//
//	details, _ := instance.Default()
//	client, err := sdk.NewClient(sdk.DefaultConfig().WithInstance(details))
func NewClient(config *Config) (*Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	transport, err := newHTTPTransport(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create transport: %w", err)
	}

	observer := config.Observer
	if co, ok := observer.(*CompositeObserver); ok {
		observer = co.WithLogger(config.Logger)
	}

	return &Client{
		transport: transport,
		config:    config,
		base:      config.base(),
		observer:  observer,
		logger:    config.Logger,
		policy:    config.FieldPolicy,
	}, nil
}

// BuildURL composes the request URL for ep and form against the client's
// instance. Serialization failures fall back to the endpoint path, as with
// the package-level BuildURL, and are reported to the configured logger
// and observer.
func (c *Client) BuildURL(ep Endpoint, form any) string {
	return buildURL(c.base, ep, form, c.logger, c.observer)
}

// Instance returns the base URL provider the client builds URLs against.
func (c *Client) Instance() BaseURLProvider { return c.base }

// Close releases idle connections. Close is safe to call multiple times.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true
	return c.transport.close()
}

// checkClosed checks if the client is closed
func (c *Client) checkClosed() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return fmt.Errorf("client is closed")
	}
	return nil
}
