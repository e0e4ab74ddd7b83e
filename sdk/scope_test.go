package sdk

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/birbparty/perch/sdk/testdata"
)

func TestScopeLifecycle(t *testing.T) {
	t.Run("context carries scope", func(t *testing.T) {
		scope := NewScope(context.Background())
		defer scope.Dispose()

		got, ok := ScopeFrom(scope.Context())
		require.True(t, ok)
		assert.Same(t, scope, got)

		_, ok = ScopeFrom(context.Background())
		assert.False(t, ok)
	})

	t.Run("dispose cancels and runs cleanups in reverse", func(t *testing.T) {
		scope := NewScope(context.Background())
		var order []int
		scope.OnCleanup(func() { order = append(order, 1) })
		scope.OnCleanup(func() { order = append(order, 2) })
		scope.OnCleanup(func() { order = append(order, 3) })

		assert.False(t, scope.Disposed())
		scope.Dispose()
		scope.Dispose()

		assert.True(t, scope.Disposed())
		assert.Equal(t, []int{3, 2, 1}, order)
		assert.ErrorIs(t, scope.Context().Err(), context.Canceled)
	})

	t.Run("unregistered cleanup does not run", func(t *testing.T) {
		scope := NewScope(context.Background())
		var ran []string
		scope.OnCleanup(func() { ran = append(ran, "kept") })
		unregister := scope.OnCleanup(func() { ran = append(ran, "dropped") })
		unregister()
		unregister()

		scope.Dispose()
		assert.Equal(t, []string{"kept"}, ran)
	})

	t.Run("cleanup after dispose runs immediately", func(t *testing.T) {
		scope := NewScope(context.Background())
		scope.Dispose()

		ran := false
		unregister := scope.OnCleanup(func() { ran = true })
		assert.True(t, ran)
		assert.NotPanics(t, unregister)
	})

	t.Run("parent cancellation reaches scope context", func(t *testing.T) {
		parent, cancel := context.WithCancel(context.Background())
		scope := NewScope(parent)
		cancel()
		<-scope.Context().Done()
		assert.False(t, scope.Disposed())
	})

	t.Run("apply only while live", func(t *testing.T) {
		scope := NewScope(context.Background())
		calls := 0
		assert.True(t, scope.Apply(func() { calls++ }))
		scope.Dispose()
		assert.False(t, scope.Apply(func() { calls++ }))
		assert.Equal(t, 1, calls)
	})
}

func TestLoad(t *testing.T) {
	t.Run("applies result while live", func(t *testing.T) {
		scope := NewScope(context.Background())
		defer scope.Dispose()

		var got *string
		done := Load(scope, func(ctx context.Context) (*string, error) {
			return Ptr("hello"), nil
		}, func(v *string, err error) {
			require.NoError(t, err)
			got = v
		})
		<-done
		require.NotNil(t, got)
		assert.Equal(t, "hello", *got)
	})

	t.Run("drops result after dispose", func(t *testing.T) {
		scope := NewScope(context.Background())
		release := make(chan struct{})
		var applied atomic.Bool

		done := Load(scope, func(ctx context.Context) (*string, error) {
			<-release
			return Ptr("late"), nil
		}, func(*string, error) {
			applied.Store(true)
		})

		scope.Dispose()
		close(release)
		<-done
		assert.False(t, applied.Load())
	})

	t.Run("dispose races with completion", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			scope := NewScope(context.Background())
			var mu sync.Mutex
			disposed := false
			appliedAfterDispose := false

			done := Load(scope, func(ctx context.Context) (*int, error) {
				return Ptr(i), nil
			}, func(*int, error) {
				mu.Lock()
				appliedAfterDispose = disposed
				mu.Unlock()
			})

			scope.Dispose()
			mu.Lock()
			disposed = true
			mu.Unlock()
			<-done

			assert.False(t, appliedAfterDispose)
		}
	})
}

func TestScopeAbortsRequests(t *testing.T) {
	ms := testdata.NewMockServer()
	defer ms.Close()
	ms.WithDelayedResponse("GET /api/v3/post/list", 5*time.Second, func(w http.ResponseWriter, r *http.Request) (int, interface{}) {
		return http.StatusOK, testdata.Object{"posts": []any{}}
	})
	client := newTestClient(t, ms, func(c *Config) { c.WithTimeout(10 * time.Second) })

	scope := NewScope(context.Background())
	var applied atomic.Bool
	fetchErr := make(chan error, 1)

	done := Load(scope, func(ctx context.Context) (*GetPostsResponse, error) {
		resp, err := client.GetPosts(ctx, client.BuildURL(GetOps().PostList, GetPosts{}))
		fetchErr <- err
		return resp, err
	}, func(*GetPostsResponse, error) {
		applied.Store(true)
	})

	require.Eventually(t, func() bool { return ms.GetRequestCount() == 1 }, time.Second, 5*time.Millisecond)
	start := time.Now()
	scope.Dispose()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("request was not aborted by dispose")
	}
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.False(t, applied.Load())

	err := <-fetchErr
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrContextCanceled))
}

func TestScopeDisposeRacesUnregister(t *testing.T) {
	for i := 0; i < 200; i++ {
		scope := NewScope(context.Background())
		var ran atomic.Int32
		unregister := scope.OnCleanup(func() { ran.Add(1) })

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			scope.Dispose()
		}()
		go func() {
			defer wg.Done()
			unregister()
		}()
		wg.Wait()

		require.True(t, scope.Disposed())
		assert.LessOrEqual(t, ran.Load(), int32(1))
	}
}
