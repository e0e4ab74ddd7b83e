//go:build js && wasm

package main

import (
	"context"
	"encoding/json"
	"fmt"

	"syscall/js"

	"github.com/birbparty/perch/sdk"
)

// view is one mounted page component. Disposing it aborts its in-flight
// requests and drops late results.
type view struct {
	client *sdk.Client
	scope  *sdk.Scope
}

func main() {
	global := js.Global()
	perch := make(map[string]interface{})
	perch["newClient"] = js.FuncOf(newClient)
	global.Set("perch", perch)

	fmt.Println("perch WASM loaded")

	select {}
}

// newClient creates a client from a JavaScript config object:
// { baseURL: "https://lemmy.ml", apiVersion: "v3" }
func newClient(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return jsError("newClient requires exactly one argument")
	}

	configObj := args[0]
	config := sdk.DefaultConfig()
	if baseURL := configObj.Get("baseURL"); !baseURL.IsUndefined() {
		config.WithBaseURL(baseURL.String())
	}
	if version := configObj.Get("apiVersion"); !version.IsUndefined() {
		config.WithAPIVersion(version.String())
	}

	client, err := sdk.NewClient(config)
	if err != nil {
		return jsError(fmt.Sprintf("failed to create client: %v", err))
	}

	clientObj := make(map[string]interface{})
	clientObj["mount"] = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return mount(client)
	})
	return clientObj
}

// mount returns { feed(source, page), sidebar(source), dispose() }.
func mount(client *sdk.Client) interface{} {
	v := &view{client: client, scope: sdk.NewScope(context.Background())}

	obj := make(map[string]interface{})
	obj["feed"] = js.FuncOf(v.feed)
	obj["sidebar"] = js.FuncOf(v.sidebar)
	obj["dispose"] = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		v.scope.Dispose()
		return nil
	})
	return obj
}

func (v *view) feed(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return jsError("feed requires a source")
	}
	src, err := sdk.ParseSource(args[0].String())
	if err != nil {
		return jsError(err.Error())
	}
	var page int32
	if len(args) > 1 && args[1].Type() == js.TypeNumber {
		page = int32(args[1].Int())
	}
	return scoped(v.scope, func(ctx context.Context) (*[]sdk.PostView, error) {
		posts, err := v.client.LoadFeed(ctx, src, page)
		return &posts, err
	})
}

func (v *view) sidebar(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return jsError("sidebar requires a source")
	}
	src, err := sdk.ParseSource(args[0].String())
	if err != nil {
		return jsError(err.Error())
	}
	return scoped(v.scope, func(ctx context.Context) (*sdk.Sidebar, error) {
		return v.client.LoadSidebar(ctx, src)
	})
}

// scoped wraps fetch in a Promise that settles only while the scope is
// live. After dispose it stays pending forever.
func scoped[T any](scope *sdk.Scope, fetch func(context.Context) (*T, error)) js.Value {
	return js.Global().Get("Promise").New(js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		resolve := args[0]
		reject := args[1]

		sdk.Load(scope, fetch, func(result *T, err error) {
			if err != nil {
				reject.Invoke(jsError(err.Error()))
				return
			}
			resolve.Invoke(goValueToJS(result))
		})
		return nil
	}))
}

// jsError creates a JavaScript Error object
func jsError(message string) js.Value {
	return js.Global().Get("Error").New(message)
}

// goValueToJS converts a Go value to a JavaScript value through JSON
func goValueToJS(val interface{}) js.Value {
	if val == nil {
		return js.Null()
	}
	jsonBytes, err := json.Marshal(val)
	if err != nil {
		return js.Null()
	}
	return js.Global().Get("JSON").Call("parse", string(jsonBytes))
}
