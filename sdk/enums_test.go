package sdk

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumWireLiterals(t *testing.T) {
	tests := []struct {
		name  string
		value wireEnum
		wire  string
	}{
		{"sort active", SortActive, "Active"},
		{"sort top six hour", SortTopSixHour, "TopSixHour"},
		{"sort top nine months", SortTopNineMonths, "TopNineMonths"},
		{"comment sort old", CommentSortOld, "Old"},
		{"listing subscribed", ListingSubscribed, "Subscribed"},
		{"modlog all", ModlogAll, "All"},
		{"modlog purge comment", ModlogAdminPurgeComment, "AdminPurgeComment"},
		{"feature community", FeatureCommunity, "Community"},
		{"registration require application", RegistrationRequireApplication, "RequireApplication"},
		{"search url", SearchURL, "Url"},
		{"subscription pending", SubscriptionPending, "Pending"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wire, tt.value.String())
			text, err := tt.value.MarshalText()
			require.NoError(t, err)
			assert.Equal(t, tt.wire, string(text))
		})
	}
}

func TestEnumRoundTrip(t *testing.T) {
	t.Run("every sort type", func(t *testing.T) {
		values := SortTypeValues()
		require.Len(t, values, 17)
		for _, v := range values {
			b, err := json.Marshal(v)
			require.NoError(t, err)

			var back SortType
			require.NoError(t, json.Unmarshal(b, &back))
			assert.Equal(t, v, back)

			parsed, ok := ParseSortType(v.String())
			assert.True(t, ok)
			assert.Equal(t, v, parsed)
		}
	})

	t.Run("variant counts", func(t *testing.T) {
		assert.Len(t, CommentSortTypeValues(), 4)
		assert.Len(t, ListingTypeValues(), 3)
		assert.Len(t, ModlogActionTypeValues(), 16)
		assert.Len(t, PostFeatureTypeValues(), 2)
		assert.Len(t, RegistrationModeValues(), 3)
		assert.Len(t, SearchTypeValues(), 6)
		assert.Len(t, SubscribedTypeValues(), 3)
	})

	t.Run("inside a record", func(t *testing.T) {
		var cv CommunityView
		require.NoError(t, json.Unmarshal([]byte(`{"subscribed":"Pending"}`), &cv))
		assert.Equal(t, SubscriptionPending, cv.Subscribed)
	})
}

func TestEnumRejectsUnknown(t *testing.T) {
	t.Run("unknown literal", func(t *testing.T) {
		var s SortType
		err := json.Unmarshal([]byte(`"Controversial"`), &s)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown SortType "Controversial"`)
	})

	t.Run("wrong case", func(t *testing.T) {
		_, ok := ParseListingType("local")
		assert.False(t, ok)
	})

	t.Run("out of range value", func(t *testing.T) {
		_, err := json.Marshal(SearchType(42))
		require.Error(t, err)
		assert.Equal(t, "SearchType(42)", SearchType(42).String())
	})
}
