//go:build js && wasm

package sdk

import (
	"context"
	"errors"
	"syscall/js"
)

// newHTTPTransport creates a fetch-based transport for browser builds
func newHTTPTransport(config *Config) (*httpTransport, error) {
	return &httpTransport{config: config}, nil
}

type fetchResult struct {
	status int
	body   string
}

// get performs the request through the browser fetch API. The request is
// aborted when ctx ends, when the configured timeout elapses, or when the
// scope carried by ctx is disposed.
func (t *httpTransport) get(ctx context.Context, rawURL, requestID string) (*rawResponse, error) {
	fetchFunc := js.Global().Get("fetch")
	if !fetchFunc.Truthy() {
		return nil, &TransportError{Op: "fetch", URL: rawURL, Err: errors.New("fetch API not available")}
	}

	if t.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.config.Timeout)
		defer cancel()
	}

	controller := js.Global().Get("AbortController").New()
	abort := func() { controller.Call("abort") }
	if scope, ok := ScopeFrom(ctx); ok {
		unregister := scope.OnCleanup(abort)
		defer unregister()
	}

	headers := js.Global().Get("Object").New()
	for k, v := range t.requestHeaders(requestID) {
		headers.Set(k, v)
	}
	opts := js.Global().Get("Object").New()
	opts.Set("method", "GET")
	opts.Set("headers", headers)
	opts.Set("mode", "cors")
	opts.Set("credentials", "same-origin")
	opts.Set("signal", controller.Get("signal"))

	resultChan := make(chan fetchResult, 1)
	errChan := make(chan error, 1)

	// The callbacks may fire after get has returned (an aborted fetch still
	// rejects), so they are never released and never block.
	var status int
	onText := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		select {
		case resultChan <- fetchResult{status: status, body: args[0].String()}:
		default:
		}
		return nil
	})
	onError := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		msg := "network error"
		if len(args) > 0 && args[0].Get("message").Truthy() {
			msg = args[0].Get("message").String()
		}
		select {
		case errChan <- errors.New(msg):
		default:
		}
		return nil
	})
	onResponse := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		status = args[0].Get("status").Int()
		args[0].Call("text").Call("then", onText).Call("catch", onError)
		return nil
	})

	fetchFunc.Invoke(rawURL, opts).Call("then", onResponse).Call("catch", onError)

	select {
	case <-ctx.Done():
		abort()
		return nil, &TransportError{Op: "fetch", URL: rawURL, Err: ctx.Err()}
	case res := <-resultChan:
		return &rawResponse{status: res.status, body: []byte(res.body)}, nil
	case err := <-errChan:
		return nil, &TransportError{Op: "fetch", URL: rawURL, Err: err}
	}
}

// close closes the transport (no-op for WASM)
func (t *httpTransport) close() error {
	return nil
}
