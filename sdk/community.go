package sdk

// Community is a topic-scoped group that posts are submitted to.
type Community struct {
	ID                      int32   `json:"id"`
	Name                    string  `json:"name"`
	Title                   string  `json:"title"`
	Description             *string `json:"description,omitempty"`
	Removed                 bool    `json:"removed"`
	Published               string  `json:"published"`
	Updated                 *string `json:"updated,omitempty"`
	Deleted                 bool    `json:"deleted"`
	NSFW                    bool    `json:"nsfw"`
	ActorID                 string  `json:"actor_id"`
	Local                   bool    `json:"local"`
	Icon                    *string `json:"icon,omitempty"`
	Banner                  *string `json:"banner,omitempty"`
	FollowersURL            *string `json:"followers_url,omitempty"`
	InboxURL                *string `json:"inbox_url,omitempty"`
	Hidden                  bool    `json:"hidden"`
	PostingRestrictedToMods bool    `json:"posting_restricted_to_mods"`
	InstanceID              int32   `json:"instance_id"`
}

// CommunityAggregates holds the counters for a community.
type CommunityAggregates struct {
	ID                  int32   `json:"id"`
	CommunityID         int32   `json:"community_id"`
	Subscribers         int64   `json:"subscribers"`
	Posts               int64   `json:"posts"`
	Comments            int64   `json:"comments"`
	Published           string  `json:"published"`
	UsersActiveDay      int64   `json:"users_active_day"`
	UsersActiveWeek     int64   `json:"users_active_week"`
	UsersActiveMonth    int64   `json:"users_active_month"`
	UsersActiveHalfYear int64   `json:"users_active_half_year"`
	HotRank             float64 `json:"hot_rank"`
}

// CommunityView is a community with its counters and the viewer's
// subscription state.
type CommunityView struct {
	Community  Community           `json:"community"`
	Subscribed SubscribedType      `json:"subscribed"`
	Blocked    bool                `json:"blocked"`
	Counts     CommunityAggregates `json:"counts"`
}

// CommunityModeratorView pairs a community with one of its moderators.
type CommunityModeratorView struct {
	Community Community `json:"community"`
	Moderator Person    `json:"moderator"`
}

// CommunityFollowerView pairs a community with one follower.
type CommunityFollowerView struct {
	Community Community `json:"community"`
	Follower  Person    `json:"follower"`
}

// CommunityBlockView pairs a person with a community they blocked.
type CommunityBlockView struct {
	Person    Person    `json:"person"`
	Community Community `json:"community"`
}

// GetCommunity fetches a community by id or by name. Remote communities
// use "name@instance".
type GetCommunity struct {
	ID   *int32  `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	Auth *string `json:"auth,omitempty"`
}

// GetCommunityResponse is the reply to GetCommunity.
type GetCommunityResponse struct {
	CommunityView       CommunityView            `json:"community_view"`
	Site                *Site                    `json:"site,omitempty"`
	Moderators          []CommunityModeratorView `json:"moderators"`
	DiscussionLanguages []int32                  `json:"discussion_languages"`
}

// ListCommunities lists communities.
type ListCommunities struct {
	Type     *ListingType `json:"type_,omitempty"`
	Sort     *SortType    `json:"sort,omitempty"`
	ShowNSFW *bool        `json:"show_nsfw,omitempty"`
	Page     *int32       `json:"page,omitempty"`
	Limit    *int32       `json:"limit,omitempty"`
	Auth     *string      `json:"auth,omitempty"`
}

// ListCommunitiesResponse is the reply to ListCommunities.
type ListCommunitiesResponse struct {
	Communities []CommunityView `json:"communities"`
}

// CreateCommunity creates a community.
type CreateCommunity struct {
	Name                    string  `json:"name"`
	Title                   string  `json:"title"`
	Description             *string `json:"description,omitempty"`
	Icon                    *string `json:"icon,omitempty"`
	Banner                  *string `json:"banner,omitempty"`
	NSFW                    *bool   `json:"nsfw,omitempty"`
	PostingRestrictedToMods *bool   `json:"posting_restricted_to_mods,omitempty"`
	DiscussionLanguages     []int32 `json:"discussion_languages,omitempty"`
	Auth                    string  `json:"auth"`
}

// EditCommunity changes a community.
type EditCommunity struct {
	CommunityID             int32   `json:"community_id"`
	Title                   *string `json:"title,omitempty"`
	Description             *string `json:"description,omitempty"`
	Icon                    *string `json:"icon,omitempty"`
	Banner                  *string `json:"banner,omitempty"`
	NSFW                    *bool   `json:"nsfw,omitempty"`
	PostingRestrictedToMods *bool   `json:"posting_restricted_to_mods,omitempty"`
	DiscussionLanguages     []int32 `json:"discussion_languages,omitempty"`
	Auth                    string  `json:"auth"`
}

// DeleteCommunity deletes or restores a community as its owner.
type DeleteCommunity struct {
	CommunityID int32  `json:"community_id"`
	Deleted     bool   `json:"deleted"`
	Auth        string `json:"auth"`
}

// RemoveCommunity removes or restores a community as an admin.
type RemoveCommunity struct {
	CommunityID int32   `json:"community_id"`
	Removed     bool    `json:"removed"`
	Reason      *string `json:"reason,omitempty"`
	Expires     *string `json:"expires,omitempty"`
	Auth        string  `json:"auth"`
}

// HideCommunity hides a community from the all listing.
type HideCommunity struct {
	CommunityID int32   `json:"community_id"`
	Hidden      bool    `json:"hidden"`
	Reason      *string `json:"reason,omitempty"`
	Auth        string  `json:"auth"`
}

// FollowCommunity subscribes to or unsubscribes from a community.
type FollowCommunity struct {
	CommunityID int32  `json:"community_id"`
	Follow      bool   `json:"follow"`
	Auth        string `json:"auth"`
}

// BlockCommunity blocks or unblocks a community for the caller.
type BlockCommunity struct {
	CommunityID int32  `json:"community_id"`
	Block       bool   `json:"block"`
	Auth        string `json:"auth"`
}

// BlockCommunityResponse is the reply to BlockCommunity.
type BlockCommunityResponse struct {
	CommunityView CommunityView `json:"community_view"`
	Blocked       bool          `json:"blocked"`
}

// AddModToCommunity adds or removes a moderator.
type AddModToCommunity struct {
	CommunityID int32  `json:"community_id"`
	PersonID    int32  `json:"person_id"`
	Added       bool   `json:"added"`
	Auth        string `json:"auth"`
}

// AddModToCommunityResponse is the reply to AddModToCommunity.
type AddModToCommunityResponse struct {
	Moderators []CommunityModeratorView `json:"moderators"`
}

// BanFromCommunity bans or unbans a person from one community. Expires is
// a unix timestamp.
type BanFromCommunity struct {
	CommunityID int32   `json:"community_id"`
	PersonID    int32   `json:"person_id"`
	Ban         bool    `json:"ban"`
	RemoveData  *bool   `json:"remove_data,omitempty"`
	Reason      *string `json:"reason,omitempty"`
	Expires     *int64  `json:"expires,omitempty"`
	Auth        string  `json:"auth"`
}

// BanFromCommunityResponse is the reply to BanFromCommunity.
type BanFromCommunityResponse struct {
	PersonView *PersonView `json:"person_view,omitempty"`
	Banned     bool        `json:"banned"`
}

// TransferCommunity hands ownership of a community to another moderator.
type TransferCommunity struct {
	CommunityID int32  `json:"community_id"`
	PersonID    int32  `json:"person_id"`
	Auth        string `json:"auth"`
}

// CommunityResponse is returned by the community mutation endpoints.
type CommunityResponse struct {
	CommunityView       CommunityView `json:"community_view"`
	DiscussionLanguages []int32       `json:"discussion_languages"`
}
