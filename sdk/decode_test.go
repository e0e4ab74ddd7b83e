package sdk

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/birbparty/perch/sdk/testdata"
)

func postsBody(posts ...testdata.Object) []byte {
	return []byte(testdata.JSON(testdata.Object{"posts": posts}))
}

func TestDecodeResponse(t *testing.T) {
	t.Run("complete body", func(t *testing.T) {
		body := postsBody(testdata.PostView(1, "Hello", "main"), testdata.PostView(2, "World", "golang"))

		resp, err := decodeResponse[GetPostsResponse](body, nil)
		require.NoError(t, err)
		require.Len(t, resp.Posts, 2)
		assert.Equal(t, "Hello", resp.Posts[0].Post.Name)
		assert.Equal(t, "golang", resp.Posts[1].Community.Name)
		assert.Equal(t, NotSubscribed, resp.Posts[0].Subscribed)
		assert.Equal(t, int64(45), resp.Posts[0].Counts.Upvotes)
		assert.Nil(t, resp.Posts[0].MyVote)
		require.NotNil(t, resp.Posts[0].Post.Body)
		assert.Equal(t, "Body of Hello", *resp.Posts[0].Post.Body)
	})

	t.Run("unknown fields are ignored", func(t *testing.T) {
		pv := testdata.PostView(1, "Hello", "main")
		pv["image_details"] = testdata.Object{"width": 10}
		_, err := decodeResponse[GetPostsResponse](postsBody(pv), nil)
		require.NoError(t, err)
	})

	t.Run("missing mandatory nested field", func(t *testing.T) {
		pv := testdata.Without(testdata.PostView(1, "Hello", "main"), "counts", "hot_rank")
		_, err := decodeResponse[GetPostsResponse](postsBody(testdata.PostView(0, "ok", "main"), pv), nil)
		require.Error(t, err)

		var dErr *DecodeError
		require.True(t, errors.As(err, &dErr))
		assert.Equal(t, "GetPostsResponse", dErr.Type)
		assert.Equal(t, "posts[1].counts.hot_rank", dErr.Field)
		assert.True(t, errors.Is(err, ErrDecode))
	})

	t.Run("null mandatory field", func(t *testing.T) {
		body := []byte(`{"posts":null}`)
		_, err := decodeResponse[GetPostsResponse](body, nil)

		var dErr *DecodeError
		require.True(t, errors.As(err, &dErr))
		assert.Equal(t, "posts", dErr.Field)
	})

	t.Run("missing mandatory list", func(t *testing.T) {
		_, err := decodeResponse[GetPostsResponse]([]byte(`{}`), nil)
		var dErr *DecodeError
		require.True(t, errors.As(err, &dErr))
		assert.Equal(t, "posts", dErr.Field)
	})

	t.Run("absent optional record", func(t *testing.T) {
		resp, err := decodeResponse[GetFederatedInstancesResponse]([]byte(`{}`), nil)
		require.NoError(t, err)
		assert.Nil(t, resp.FederatedInstances)
	})

	t.Run("optional record is still checked when present", func(t *testing.T) {
		body := []byte(`{"federated_instances":{"linked":[],"allowed":[]}}`)
		_, err := decodeResponse[GetFederatedInstancesResponse](body, nil)
		var dErr *DecodeError
		require.True(t, errors.As(err, &dErr))
		assert.Equal(t, "federated_instances.blocked", dErr.Field)
	})

	t.Run("wrong value type", func(t *testing.T) {
		pv := testdata.PostView(1, "Hello", "main")
		pv["post"].(testdata.Object)["id"] = "one"
		_, err := decodeResponse[GetPostsResponse](postsBody(pv), nil)

		var dErr *DecodeError
		require.True(t, errors.As(err, &dErr))
		assert.Contains(t, dErr.Field, "id")
	})

	t.Run("unknown enum literal", func(t *testing.T) {
		pv := testdata.PostView(1, "Hello", "main")
		pv["subscribed"] = "Maybe"
		_, err := decodeResponse[GetPostsResponse](postsBody(pv), nil)
		require.Error(t, err)
		assert.True(t, IsDecode(err))
		assert.Contains(t, err.Error(), "Maybe")
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := decodeResponse[GetSiteResponse]([]byte(`<html>502 Bad Gateway</html>`), nil)

		var dErr *DecodeError
		require.True(t, errors.As(err, &dErr))
		assert.Equal(t, "GetSiteResponse", dErr.Type)
		assert.Empty(t, dErr.Field)
		assert.ErrorIs(t, err, errInvalidJSON)
		assert.Equal(t, "<html>502 Bad Gateway</html>", dErr.Snippet)
		assert.False(t, dErr.Truncated)
	})

	t.Run("null body", func(t *testing.T) {
		resp, err := decodeResponse[GetCommentsResponse]([]byte(`null`), nil)
		assert.Nil(t, resp)

		var dErr *DecodeError
		require.True(t, errors.As(err, &dErr))
		assert.Equal(t, "GetCommentsResponse", dErr.Type)
		assert.ErrorIs(t, err, errNotObject)
	})

	t.Run("array body", func(t *testing.T) {
		_, err := decodeResponse[GetCommentsResponse]([]byte(`[]`), nil)
		assert.ErrorIs(t, err, errNotObject)
	})

	t.Run("null list element", func(t *testing.T) {
		resp, err := decodeResponse[GetCommentsResponse]([]byte(`{"comments":[null]}`), nil)
		assert.Nil(t, resp)

		var dErr *DecodeError
		require.True(t, errors.As(err, &dErr))
		assert.Equal(t, "comments[0]", dErr.Field)
	})

	t.Run("long body is truncated in snippet", func(t *testing.T) {
		body := []byte(`{"posts":"` + strings.Repeat("x", 2*snippetLimit) + `"}`)
		_, err := decodeResponse[GetPostsResponse](body, nil)

		var dErr *DecodeError
		require.True(t, errors.As(err, &dErr))
		assert.Len(t, dErr.Snippet, snippetLimit)
		assert.True(t, dErr.Truncated)
	})

	t.Run("when_ field", func(t *testing.T) {
		resp, err := decodeResponse[GetModlogResponse]([]byte(testdata.JSON(testdata.ModlogResponse())), nil)
		require.NoError(t, err)
		require.Len(t, resp.RemovedPosts, 1)
		assert.Equal(t, testdata.Published, resp.RemovedPosts[0].ModRemovePost.When)
		assert.Nil(t, resp.RemovedPosts[0].Moderator)
		assert.Equal(t, 2, resp.Len())
	})
}

func TestDecodeWithFieldPolicy(t *testing.T) {
	t.Run("relaxed field may be missing", func(t *testing.T) {
		policy := NewFieldPolicy()
		require.NoError(t, policy.Relax("PostAggregates.hot_rank"))

		pv := testdata.Without(testdata.PostView(1, "Hello", "main"), "counts", "hot_rank")
		resp, err := decodeResponse[GetPostsResponse](postsBody(pv), policy)
		require.NoError(t, err)
		assert.Zero(t, resp.Posts[0].Counts.HotRank)
	})

	t.Run("required field must be present", func(t *testing.T) {
		policy := NewFieldPolicy()
		require.NoError(t, policy.Require("PostView.my_vote"))

		_, err := decodeResponse[GetPostsResponse](postsBody(testdata.PostView(1, "Hello", "main")), policy)
		var dErr *DecodeError
		require.True(t, errors.As(err, &dErr))
		assert.Equal(t, "posts[0].my_vote", dErr.Field)

		pv := testdata.PostView(1, "Hello", "main")
		pv["my_vote"] = 1
		resp, err := decodeResponse[GetPostsResponse](postsBody(pv), policy)
		require.NoError(t, err)
		require.NotNil(t, resp.Posts[0].MyVote)
		assert.Equal(t, int32(1), *resp.Posts[0].MyVote)
	})

	t.Run("override applies to every occurrence of the type", func(t *testing.T) {
		policy := NewFieldPolicy()
		require.NoError(t, policy.Relax("Person.actor_id"))

		body := testdata.Without(testdata.PersonDetailsResponse("alice"), "person_view", "person", "actor_id")
		_, err := decodeResponse[GetPersonDetailsResponse]([]byte(testdata.JSON(body)), policy)
		require.NoError(t, err)
	})
}
