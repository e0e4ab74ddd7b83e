package sdk

import (
	"context"
	"sync"
)

// Scope is the lifetime of an interactive view, such as a page component in
// a browser build. Requests issued on Scope.Context are aborted when the
// scope is disposed, and results arriving afterwards are dropped.
//
// Server code does not need a Scope: a plain request context is enough.
//
// Example:
//
//	scope := sdk.NewScope(context.Background())
//	defer scope.Dispose()
//
//	sdk.Load(scope, func(ctx context.Context) (*sdk.GetPostsResponse, error) {
//	    return client.GetPosts(ctx, client.BuildURL(sdk.GetOps().PostList, sdk.GetPosts{}))
//	}, func(resp *sdk.GetPostsResponse, err error) {
//	    render(resp, err)
//	})
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	disposed bool
	cleanups []*cleanupHook
}

type cleanupHook struct {
	fn func()
}

type scopeKey struct{}

// NewScope creates a live scope whose context derives from parent.
func NewScope(parent context.Context) *Scope {
	s := &Scope{}
	ctx, cancel := context.WithCancel(parent)
	s.ctx = context.WithValue(ctx, scopeKey{}, s)
	s.cancel = cancel
	return s
}

// ScopeFrom returns the scope carried by ctx, if any.
func ScopeFrom(ctx context.Context) (*Scope, bool) {
	s, ok := ctx.Value(scopeKey{}).(*Scope)
	return s, ok
}

// Context returns the scope's context. It is canceled on Dispose.
func (s *Scope) Context() context.Context { return s.ctx }

// OnCleanup registers fn to run on Dispose. Callbacks run in reverse
// registration order. If the scope is already disposed, fn runs
// immediately. The returned function unregisters fn.
func (s *Scope) OnCleanup(fn func()) (unregister func()) {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		fn()
		return func() {}
	}
	h := &cleanupHook{fn: fn}
	s.cleanups = append(s.cleanups, h)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		h.fn = nil
		for len(s.cleanups) > 0 && s.cleanups[len(s.cleanups)-1].fn == nil {
			s.cleanups = s.cleanups[:len(s.cleanups)-1]
		}
	}
}

// Dispose cancels the context and runs the cleanups. It is idempotent.
func (s *Scope) Dispose() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	fns := make([]func(), 0, len(s.cleanups))
	for _, h := range s.cleanups {
		if h.fn != nil {
			fns = append(fns, h.fn)
		}
	}
	s.cleanups = nil
	s.mu.Unlock()

	s.cancel()
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}

// Disposed reports whether Dispose has been called.
func (s *Scope) Disposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

// Apply runs fn if the scope is still live and reports whether it ran.
// Dispose waits for a running Apply, so fn never overlaps teardown. fn must
// not call back into the scope.
func (s *Scope) Apply(fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return false
	}
	fn()
	return true
}

// Load runs fetch on the scope's context in a new goroutine and hands the
// outcome to apply while the scope is live. If the scope is disposed first,
// apply is never called. The returned channel closes when the goroutine
// finishes.
func Load[T any](s *Scope, fetch func(context.Context) (*T, error), apply func(*T, error)) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		v, err := fetch(s.Context())
		s.Apply(func() { apply(v, err) })
	}()
	return done
}
