package sdk

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeQueryGolden(t *testing.T) {
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"))

	tests := []struct {
		name string
		form any
	}{
		{"get_posts", GetPosts{
			Type:          Ptr(ListingLocal),
			Sort:          Ptr(SortHot),
			Page:          Ptr[int32](2),
			Limit:         Ptr[int32](10),
			CommunityName: Ptr("golang"),
		}},
		{"get_comments", &GetComments{
			PostID:   Ptr[int32](7),
			Sort:     Ptr(CommentSortTop),
			MaxDepth: Ptr[int32](8),
		}},
		{"search", Search{
			Q:           "rust lang",
			Type:        Ptr(SearchCommunities),
			ListingType: Ptr(ListingAll),
		}},
		{"modlog", GetModlog{
			Type:        Ptr(ModlogModBan),
			CommunityID: Ptr[int32](3),
		}},
		{"zero_values_present", GetPosts{
			Page:      Ptr[int32](0),
			SavedOnly: Ptr(false),
		}},
		{"repeated_key", CreateCommunity{
			Name:                "go",
			Title:               "Go",
			DiscussionLanguages: []int32{37, 38},
			Auth:                "tok",
		}},
		{"feature_post", FeaturePost{
			PostID:      5,
			Featured:    true,
			FeatureType: FeatureCommunity,
			Auth:        "tok",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := EncodeQuery(tt.form)
			require.NoError(t, err)
			g.Assert(t, "query_"+tt.name, []byte(q))
		})
	}
}

func TestEncodeQuery(t *testing.T) {
	t.Run("no fields set", func(t *testing.T) {
		q, err := EncodeQuery(GetSite{})
		require.NoError(t, err)
		assert.Equal(t, "", q)
	})

	t.Run("nil form", func(t *testing.T) {
		q, err := EncodeQuery(nil)
		require.NoError(t, err)
		assert.Equal(t, "", q)

		q, err = EncodeQuery((*GetPosts)(nil))
		require.NoError(t, err)
		assert.Equal(t, "", q)
	})

	t.Run("not a record", func(t *testing.T) {
		_, err := EncodeQuery(42)
		require.ErrorIs(t, err, errNotRecord)
	})

	t.Run("out of range enum", func(t *testing.T) {
		_, err := EncodeQuery(GetPosts{Sort: Ptr(SortType(99))})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Sort")
	})

	t.Run("deterministic", func(t *testing.T) {
		form := Search{Q: "x", Page: Ptr[int32](3), Sort: Ptr(SortNew), CommunityID: Ptr[int32](1)}
		first, err := EncodeQuery(form)
		require.NoError(t, err)
		for i := 0; i < 20; i++ {
			again, err := EncodeQuery(form)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})
}

func TestBuildURL(t *testing.T) {
	base := StaticBase{URL: "https://lemmy.test", APIVersion: "v3"}

	t.Run("with query", func(t *testing.T) {
		url := BuildURL(base, GetOps().CommentList, GetComments{PostID: Ptr[int32](7)})
		assert.Equal(t, "https://lemmy.test/api/v3/comment/list?post_id=7", url)
	})

	t.Run("empty query keeps separator", func(t *testing.T) {
		url := BuildURL(base, GetOps().Site, GetSite{})
		assert.Equal(t, "https://lemmy.test/api/v3/site?", url)
	})

	t.Run("trailing slash on base", func(t *testing.T) {
		url := BuildURL(StaticBase{URL: "https://lemmy.test/", APIVersion: "v4"}, GetOps().Post, GetPost{ID: Ptr[int32](1)})
		assert.Equal(t, "https://lemmy.test/api/v4/post?id=1", url)
	})

	t.Run("serialization failure falls back to path", func(t *testing.T) {
		logger, hook := test.NewNullLogger()
		metrics := NewMetricsCollector()

		url := buildURL(base, GetOps().PostList, GetPosts{Sort: Ptr(SortType(99))}, logger, metrics)
		assert.Equal(t, "https://lemmy.test/api/v3/post/list?post/list", url)

		require.Len(t, hook.Entries, 1)
		entry := hook.LastEntry()
		assert.Equal(t, logrus.WarnLevel, entry.Level)
		assert.Equal(t, "GET post/list", entry.Data["endpoint"])
		assert.Equal(t, "sdk.GetPosts", entry.Data["form_type"])

		assert.Equal(t, int64(1), metrics.Snapshot().SerializeFallbacks["GET post/list"])
	})

	t.Run("package level logs to standard logger", func(t *testing.T) {
		var buf bytes.Buffer
		std := logrus.StandardLogger()
		prev := std.Out
		std.SetOutput(&buf)
		defer std.SetOutput(prev)

		url := BuildURL(base, GetOps().Community, "not a record")
		assert.Equal(t, "https://lemmy.test/api/v3/community?community", url)
		assert.Contains(t, buf.String(), "query serialization failed")
	})
}
