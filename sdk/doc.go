// Package sdk is a typed client for the Lemmy HTTP API. It describes every
// request and response record of the API, builds request URLs from those
// records, and performs GET requests that decode into them.
//
// # Features
//
// The SDK provides:
//   - Request and response records for posts, comments, communities,
//     people, the site, moderation, private messages and federation
//   - A closed set of endpoints (GetOps, PostOps, PutOps) so URLs are never
//     assembled from strings
//   - Query encoding with sorted keys, omitted absent fields and enum wire
//     literals
//   - Strict decoding: missing mandatory fields are errors, with per-field
//     overrides through FieldPolicy
//   - Observer hooks for metrics, tracing and schema drift reporting
//   - Scope, which aborts requests of a disposed view in browser builds
//
// # Basic Usage
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    "github.com/birbparty/perch/sdk"
//	)
//
//	func main() {
//	    client, err := sdk.NewClient(sdk.DefaultConfig().WithBaseURL("https://lemmy.ml"))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer client.Close()
//
//	    url := client.BuildURL(sdk.GetOps().PostList, sdk.GetPosts{
//	        Sort:  sdk.Ptr(sdk.SortTopDay),
//	        Limit: sdk.Ptr[int32](10),
//	    })
//	    resp, err := client.GetPosts(context.Background(), url)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    for _, pv := range resp.Posts {
//	        fmt.Println(pv.Post.Name)
//	    }
//	}
//
// # URLs
//
// URLs have the form {base}/api/{version}/{path}?{query}. The query may be
// empty, leaving a trailing "?". BuildURL never fails: if a record cannot
// be encoded, the query is replaced by the endpoint path and the failure
// is logged and reported to Observer.OnSerializeFallback.
//
// # Error Handling
//
// Operations return one of TransportError, HTTPStatusError or DecodeError.
// Sentinels allow errors.Is checks:
//
//	resp, err := client.GetPost(ctx, url)
//	switch {
//	case sdk.IsNotFound(err):
//	    // The post is gone
//	case errors.Is(err, sdk.ErrTimeout):
//	    // The instance is slow
//	case sdk.IsDecode(err):
//	    // The instance runs a release with a different schema
//	}
//
// # Schema Drift
//
// Instances run different Lemmy releases. When a field one release always
// sends is missing on another, relax it instead of failing:
//
//	policy := sdk.NewFieldPolicy()
//	_ = policy.Relax("PostAggregates.newest_comment_time_necro")
//	client, err := sdk.NewClient(sdk.DefaultConfig().
//	    WithBaseURL("https://old.instance").
//	    WithFieldPolicy(policy))
//
// # Thread Safety
//
// The client is safe for concurrent use and keeps no per-request state.
//
// # WASM Support
//
// Under GOOS=js GOARCH=wasm requests go through the browser fetch API.
// Requests issued on a Scope's context are aborted when it is disposed:
//
//	GOOS=js GOARCH=wasm go build -o main.wasm ./sdk/examples/wasm
package sdk
