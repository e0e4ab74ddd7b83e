package testdata

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// MockServer is a configurable stand-in for a Lemmy instance. Handlers are
// registered per "METHOD /api/v3/path" and return a status and a value that
// is JSON-encoded, or a RawBody that is written verbatim.
type MockServer struct {
	*httptest.Server
	mu           sync.RWMutex
	handlers     map[string]HandlerFunc
	requestCount atomic.Int32
	requests     []RecordedRequest
}

// HandlerFunc is a custom handler function type
type HandlerFunc func(w http.ResponseWriter, r *http.Request) (int, interface{})

// RawBody is written to the response as is.
type RawBody string

// RecordedRequest stores information about a received request
type RecordedRequest struct {
	Method  string
	Path    string
	Query   url.Values
	Headers http.Header
	Time    time.Time
}

// NewMockServer creates a mock instance that already answers the read
// endpoints used by feeds and sidebars with small fixtures.
func NewMockServer() *MockServer {
	ms := &MockServer{
		handlers: make(map[string]HandlerFunc),
		requests: make([]RecordedRequest, 0),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", ms.handleRequest)

	ms.Server = httptest.NewServer(mux)
	ms.setupDefaultHandlers()

	return ms
}

func ok(v interface{}) HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) (int, interface{}) {
		return http.StatusOK, v
	}
}

// setupDefaultHandlers sets up the common read endpoints
func (ms *MockServer) setupDefaultHandlers() {
	ms.RegisterHandler("GET /api/v3/site", ok(SiteResponse()))
	ms.RegisterHandler("GET /api/v3/post/list", func(w http.ResponseWriter, r *http.Request) (int, interface{}) {
		community := r.URL.Query().Get("community_name")
		if community == "" {
			community = "main"
		}
		return http.StatusOK, Object{"posts": []Object{
			PostView(1, "First post", community),
			PostView(2, "Second post", community),
		}}
	})
	ms.RegisterHandler("GET /api/v3/post", func(w http.ResponseWriter, r *http.Request) (int, interface{}) {
		return http.StatusOK, PostResponse(1, "First post", "main")
	})
	ms.RegisterHandler("GET /api/v3/comment/list", ok(Object{"comments": []Object{
		CommentView(10, 1, "0.10", "Nice post"),
		CommentView(11, 1, "0.10.11", "Agreed"),
	}}))
	ms.RegisterHandler("GET /api/v3/community", func(w http.ResponseWriter, r *http.Request) (int, interface{}) {
		name := r.URL.Query().Get("name")
		if name == "" {
			name = "main"
		}
		return http.StatusOK, CommunityResponse(name)
	})
	ms.RegisterHandler("GET /api/v3/community/list", ok(Object{"communities": []Object{
		CommunityView(1, "main"),
		CommunityView(2, "golang"),
	}}))
	ms.RegisterHandler("GET /api/v3/user", func(w http.ResponseWriter, r *http.Request) (int, interface{}) {
		name := r.URL.Query().Get("username")
		if name == "" {
			name = "alice"
		}
		return http.StatusOK, PersonDetailsResponse(name)
	})
	ms.RegisterHandler("GET /api/v3/modlog", ok(ModlogResponse()))
	ms.RegisterHandler("GET /api/v3/federated_instances", ok(FederatedInstancesResponse()))
	ms.RegisterHandler("GET /api/v3/search", func(w http.ResponseWriter, r *http.Request) (int, interface{}) {
		typ := r.URL.Query().Get("type_")
		if typ == "" {
			typ = "All"
		}
		return http.StatusOK, SearchResponse(typ)
	})
}

// RegisterHandler registers a custom handler for a specific method and path
func (ms *MockServer) RegisterHandler(pattern string, handler HandlerFunc) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.handlers[pattern] = handler
}

// handleRequest routes requests to appropriate handlers
func (ms *MockServer) handleRequest(w http.ResponseWriter, r *http.Request) {
	ms.mu.Lock()
	ms.requests = append(ms.requests, RecordedRequest{
		Method:  r.Method,
		Path:    r.URL.Path,
		Query:   r.URL.Query(),
		Headers: r.Header.Clone(),
		Time:    time.Now(),
	})
	ms.mu.Unlock()

	ms.requestCount.Add(1)

	pattern := r.Method + " " + strings.TrimSuffix(r.URL.Path, "/")
	ms.mu.RLock()
	handler := ms.handlers[pattern]
	ms.mu.RUnlock()

	if handler == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "couldnt_find_object"})
		return
	}

	status, response := handler(w, r)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	switch body := response.(type) {
	case nil:
	case RawBody:
		w.Write([]byte(body))
	default:
		json.NewEncoder(w).Encode(body)
	}
}

// GetRequestCount returns the total number of requests received
func (ms *MockServer) GetRequestCount() int {
	return int(ms.requestCount.Load())
}

// GetRequests returns all recorded requests
func (ms *MockServer) GetRequests() []RecordedRequest {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	result := make([]RecordedRequest, len(ms.requests))
	copy(result, ms.requests)
	return result
}

// LastRequest returns the most recent request, or the zero value.
func (ms *MockServer) LastRequest() RecordedRequest {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	if len(ms.requests) == 0 {
		return RecordedRequest{}
	}
	return ms.requests[len(ms.requests)-1]
}

// Reset clears all recorded requests
func (ms *MockServer) Reset() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.requestCount.Store(0)
	ms.requests = ms.requests[:0]
}

// WithErrorResponse makes pattern answer with a Lemmy-style error body
func (ms *MockServer) WithErrorResponse(pattern string, statusCode int, errorCode string) {
	ms.RegisterHandler(pattern, func(w http.ResponseWriter, r *http.Request) (int, interface{}) {
		return statusCode, map[string]string{"error": errorCode}
	})
}

// WithRawResponse makes pattern answer 200 with body written verbatim
func (ms *MockServer) WithRawResponse(pattern string, body string) {
	ms.RegisterHandler(pattern, func(w http.ResponseWriter, r *http.Request) (int, interface{}) {
		return http.StatusOK, RawBody(body)
	})
}

// WithDelayedResponse sets up a handler that delays before responding. The
// delay ends early when the client goes away.
func (ms *MockServer) WithDelayedResponse(pattern string, delay time.Duration, handler HandlerFunc) {
	ms.RegisterHandler(pattern, func(w http.ResponseWriter, r *http.Request) (int, interface{}) {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
		}
		return handler(w, r)
	})
}

// Close shuts down the mock server
func (ms *MockServer) Close() {
	if ms.Server != nil {
		ms.Server.Close()
	}
}
