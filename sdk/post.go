package sdk

// Post is a link or text submission to a community.
type Post struct {
	ID                int32   `json:"id"`
	Name              string  `json:"name"`
	URL               *string `json:"url,omitempty"`
	Body              *string `json:"body,omitempty"`
	CreatorID         int32   `json:"creator_id"`
	CommunityID       int32   `json:"community_id"`
	Removed           bool    `json:"removed"`
	Locked            bool    `json:"locked"`
	Published         string  `json:"published"`
	Updated           *string `json:"updated,omitempty"`
	Deleted           bool    `json:"deleted"`
	NSFW              bool    `json:"nsfw"`
	EmbedTitle        *string `json:"embed_title,omitempty"`
	EmbedDescription  *string `json:"embed_description,omitempty"`
	EmbedVideoURL     *string `json:"embed_video_url,omitempty"`
	ThumbnailURL      *string `json:"thumbnail_url,omitempty"`
	APID              string  `json:"ap_id"`
	Local             bool    `json:"local"`
	LanguageID        int32   `json:"language_id"`
	FeaturedCommunity bool    `json:"featured_community"`
	FeaturedLocal     bool    `json:"featured_local"`
}

// PostAggregates holds the counters for a post.
type PostAggregates struct {
	ID                     int32   `json:"id"`
	PostID                 *int32  `json:"post_id,omitempty"`
	Comments               *int64  `json:"comments,omitempty"`
	Score                  *int64  `json:"score,omitempty"`
	Upvotes                int64   `json:"upvotes"`
	Downvotes              int64   `json:"downvotes"`
	Published              *string `json:"published,omitempty"`
	NewestCommentTimeNecro string  `json:"newest_comment_time_necro"`
	NewestCommentTime      string  `json:"newest_comment_time"`
	FeaturedCommunity      bool    `json:"featured_community"`
	FeaturedLocal          bool    `json:"featured_local"`
	HotRank                float64 `json:"hot_rank"`
	HotRankActive          float64 `json:"hot_rank_active"`
}

// PostView is a post with its creator, community, counters and the
// viewer's relationship to it.
type PostView struct {
	Post                       Post           `json:"post"`
	Creator                    Person         `json:"creator"`
	Community                  Community      `json:"community"`
	CreatorBannedFromCommunity bool           `json:"creator_banned_from_community"`
	Counts                     PostAggregates `json:"counts"`
	Subscribed                 SubscribedType `json:"subscribed"`
	Saved                      bool           `json:"saved"`
	Read                       bool           `json:"read"`
	CreatorBlocked             bool           `json:"creator_blocked"`
	MyVote                     *int32         `json:"my_vote,omitempty"`
	UnreadComments             int64          `json:"unread_comments"`
}

// GetPost fetches one post by id, or the post owning a comment.
type GetPost struct {
	ID        *int32  `json:"id,omitempty"`
	CommentID *int32  `json:"comment_id,omitempty"`
	Auth      *string `json:"auth,omitempty"`
}

// GetPostResponse is the reply to GetPost.
type GetPostResponse struct {
	PostView      PostView                 `json:"post_view"`
	CommunityView CommunityView            `json:"community_view"`
	Moderators    []CommunityModeratorView `json:"moderators"`
	CrossPosts    []PostView               `json:"cross_posts"`
}

// GetPosts lists posts.
type GetPosts struct {
	Type          *ListingType `json:"type_,omitempty"`
	Sort          *SortType    `json:"sort,omitempty"`
	Page          *int32       `json:"page,omitempty"`
	Limit         *int32       `json:"limit,omitempty"`
	CommunityID   *int32       `json:"community_id,omitempty"`
	CommunityName *string      `json:"community_name,omitempty"`
	SavedOnly     *bool        `json:"saved_only,omitempty"`
	PostID        *int32       `json:"post_id,omitempty"`
	Auth          *string      `json:"auth,omitempty"`
}

// GetPostsResponse is the reply to GetPosts.
type GetPostsResponse struct {
	Posts []PostView `json:"posts"`
}

// CreatePost submits a new post.
type CreatePost struct {
	Name        string  `json:"name"`
	CommunityID int32   `json:"community_id"`
	URL         *string `json:"url,omitempty"`
	Body        *string `json:"body,omitempty"`
	Honeypot    *string `json:"honeypot,omitempty"`
	NSFW        *bool   `json:"nsfw,omitempty"`
	LanguageID  *int32  `json:"language_id,omitempty"`
	Auth        string  `json:"auth"`
}

// EditPost changes an existing post.
type EditPost struct {
	PostID     int32   `json:"post_id"`
	Name       *string `json:"name,omitempty"`
	URL        *string `json:"url,omitempty"`
	Body       *string `json:"body,omitempty"`
	NSFW       *bool   `json:"nsfw,omitempty"`
	LanguageID *int32  `json:"language_id,omitempty"`
	Auth       string  `json:"auth"`
}

// DeletePost deletes or restores the caller's own post.
type DeletePost struct {
	PostID  int32  `json:"post_id"`
	Deleted bool   `json:"deleted"`
	Auth    string `json:"auth"`
}

// RemovePost removes or restores a post as a moderator.
type RemovePost struct {
	PostID  int32   `json:"post_id"`
	Removed bool    `json:"removed"`
	Reason  *string `json:"reason,omitempty"`
	Auth    string  `json:"auth"`
}

// LockPost locks or unlocks comments on a post.
type LockPost struct {
	PostID int32  `json:"post_id"`
	Locked bool   `json:"locked"`
	Auth   string `json:"auth"`
}

// FeaturePost pins or unpins a post locally or in its community.
type FeaturePost struct {
	PostID      int32           `json:"post_id"`
	Featured    bool            `json:"featured"`
	FeatureType PostFeatureType `json:"feature_type"`
	Auth        string          `json:"auth"`
}

// CreatePostLike votes on a post. Score is -1, 0 or 1.
type CreatePostLike struct {
	PostID int32  `json:"post_id"`
	Score  int32  `json:"score"`
	Auth   string `json:"auth"`
}

// SavePost saves or unsaves a post for the caller.
type SavePost struct {
	PostID int32  `json:"post_id"`
	Save   bool   `json:"save"`
	Auth   string `json:"auth"`
}

// MarkPostAsRead marks a post read or unread.
type MarkPostAsRead struct {
	PostID int32  `json:"post_id"`
	Read   bool   `json:"read"`
	Auth   string `json:"auth"`
}

// PostResponse is returned by the post mutation endpoints.
type PostResponse struct {
	PostView PostView `json:"post_view"`
}

// GetSiteMetadata fetches the OpenGraph metadata of a URL.
type GetSiteMetadata struct {
	URL string `json:"url"`
}

// SiteMetadata is link preview data.
type SiteMetadata struct {
	Title         *string `json:"title,omitempty"`
	Description   *string `json:"description,omitempty"`
	Image         *string `json:"image,omitempty"`
	EmbedVideoURL *string `json:"embed_video_url,omitempty"`
}

// GetSiteMetadataResponse is the reply to GetSiteMetadata.
type GetSiteMetadataResponse struct {
	Metadata SiteMetadata `json:"metadata"`
}
