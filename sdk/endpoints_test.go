package sdk

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointTables(t *testing.T) {
	t.Run("sizes", func(t *testing.T) {
		assert.Len(t, GetEndpoints(), 25)
		assert.Len(t, PostEndpoints(), 46)
		assert.Len(t, PutEndpoints(), 14)
		assert.Len(t, Endpoints(), 85)
	})

	t.Run("verbs match table", func(t *testing.T) {
		for _, ep := range GetEndpoints() {
			assert.Equal(t, http.MethodGet, ep.Method(), ep.Path())
		}
		for _, ep := range PostEndpoints() {
			assert.Equal(t, http.MethodPost, ep.Method(), ep.Path())
		}
		for _, ep := range PutEndpoints() {
			assert.Equal(t, http.MethodPut, ep.Method(), ep.Path())
		}
	})

	t.Run("verb and path are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, ep := range Endpoints() {
			require.False(t, ep.IsZero())
			assert.False(t, seen[ep.String()], "duplicate %s", ep)
			seen[ep.String()] = true
		}
	})

	t.Run("same path under several verbs", func(t *testing.T) {
		assert.Equal(t, "post", GetOps().Post.Path())
		assert.Equal(t, "post", PostOps().CreatePost.Path())
		assert.Equal(t, "post", PutOps().EditPost.Path())
		assert.NotEqual(t, GetOps().Post, PutOps().EditPost)
	})
}

func TestEndpointString(t *testing.T) {
	assert.Equal(t, "GET post/list", GetOps().PostList.String())
	assert.Equal(t, "POST comment/like", PostOps().CommentLike.String())
	assert.Equal(t, "PUT user/save_user_settings", PutOps().SaveUserSettings.String())
	assert.Equal(t, "unknown", Endpoint{}.String())
	assert.True(t, Endpoint{}.IsZero())
}

func TestLookupEndpoint(t *testing.T) {
	ep, ok := LookupEndpoint(http.MethodGet, "admin/registration_application/count")
	require.True(t, ok)
	assert.Equal(t, GetOps().RegistrationApplicationCount, ep)

	ep, ok = LookupEndpoint(http.MethodPut, "comment/save")
	require.True(t, ok)
	assert.Equal(t, PutOps().SaveComment, ep)

	_, ok = LookupEndpoint(http.MethodDelete, "post")
	assert.False(t, ok)

	_, ok = LookupEndpoint(http.MethodGet, "post/like")
	assert.False(t, ok)
}

func TestEndpointTablesAreCopies(t *testing.T) {
	ops := GetOps()
	ops.PostList = ops.Site

	assert.Equal(t, "GET post/list", GetOps().PostList.String())
	ep, ok := LookupEndpoint(http.MethodGet, "post/list")
	require.True(t, ok)
	assert.Equal(t, GetOps().PostList, ep)

	put := PutOps()
	put.EditPost = Endpoint{}
	assert.False(t, PutOps().EditPost.IsZero())
}
