package sdk

import (
	"context"
)

// The methods below perform one GET operation each. url is usually built
// with BuildURL from the matching endpoint and request record:
//
//	url := client.BuildURL(sdk.GetOps().CommentList, sdk.GetComments{PostID: sdk.Ptr[int32](7)})
//	resp, err := client.GetComments(ctx, url)
//
// They pass their endpoint to the observer and otherwise behave exactly
// like Execute.

// GetPosts lists posts.
func (c *Client) GetPosts(ctx context.Context, url string) (*GetPostsResponse, error) {
	return execute[GetPostsResponse](ctx, c, GetOps().PostList, url)
}

// GetPost fetches one post with its community and cross-posts.
func (c *Client) GetPost(ctx context.Context, url string) (*GetPostResponse, error) {
	return execute[GetPostResponse](ctx, c, GetOps().Post, url)
}

// GetComments lists comments, usually those of one post.
func (c *Client) GetComments(ctx context.Context, url string) (*GetCommentsResponse, error) {
	return execute[GetCommentsResponse](ctx, c, GetOps().CommentList, url)
}

// GetComment fetches one comment.
func (c *Client) GetComment(ctx context.Context, url string) (*CommentResponse, error) {
	return execute[CommentResponse](ctx, c, GetOps().Comment, url)
}

// GetCommunity fetches a community with its moderators.
func (c *Client) GetCommunity(ctx context.Context, url string) (*GetCommunityResponse, error) {
	return execute[GetCommunityResponse](ctx, c, GetOps().Community, url)
}

// ListCommunities lists communities.
func (c *Client) ListCommunities(ctx context.Context, url string) (*ListCommunitiesResponse, error) {
	return execute[ListCommunitiesResponse](ctx, c, GetOps().CommunityList, url)
}

// GetPersonDetails fetches a profile with its posts and comments.
func (c *Client) GetPersonDetails(ctx context.Context, url string) (*GetPersonDetailsResponse, error) {
	return execute[GetPersonDetailsResponse](ctx, c, GetOps().PersonDetails, url)
}

// GetPersonMentions lists mentions of the caller.
func (c *Client) GetPersonMentions(ctx context.Context, url string) (*GetPersonMentionsResponse, error) {
	return execute[GetPersonMentionsResponse](ctx, c, GetOps().PersonMentions, url)
}

// GetReplies lists replies to the caller.
func (c *Client) GetReplies(ctx context.Context, url string) (*GetRepliesResponse, error) {
	return execute[GetRepliesResponse](ctx, c, GetOps().Replies, url)
}

// GetSite fetches the instance description.
func (c *Client) GetSite(ctx context.Context, url string) (*GetSiteResponse, error) {
	return execute[GetSiteResponse](ctx, c, GetOps().Site, url)
}

// GetModlog fetches the moderation log.
func (c *Client) GetModlog(ctx context.Context, url string) (*GetModlogResponse, error) {
	return execute[GetModlogResponse](ctx, c, GetOps().Modlog, url)
}

// GetFederatedInstances lists linked, allowed and blocked servers.
func (c *Client) GetFederatedInstances(ctx context.Context, url string) (*GetFederatedInstancesResponse, error) {
	return execute[GetFederatedInstancesResponse](ctx, c, GetOps().FederatedInstances, url)
}

// Search runs a full-text search.
func (c *Client) Search(ctx context.Context, url string) (*SearchResponse, error) {
	return execute[SearchResponse](ctx, c, GetOps().Search, url)
}

// ResolveObject resolves a federated URL or handle.
func (c *Client) ResolveObject(ctx context.Context, url string) (*ResolveObjectResponse, error) {
	return execute[ResolveObjectResponse](ctx, c, GetOps().ResolveObject, url)
}

// GetCaptcha fetches a sign-up captcha.
func (c *Client) GetCaptcha(ctx context.Context, url string) (*GetCaptchaResponse, error) {
	return execute[GetCaptchaResponse](ctx, c, GetOps().Captcha, url)
}

// GetBannedPersons lists site-banned people.
func (c *Client) GetBannedPersons(ctx context.Context, url string) (*BannedPersonsResponse, error) {
	return execute[BannedPersonsResponse](ctx, c, GetOps().BannedPersons, url)
}

// GetPrivateMessages lists the caller's private messages.
func (c *Client) GetPrivateMessages(ctx context.Context, url string) (*PrivateMessagesResponse, error) {
	return execute[PrivateMessagesResponse](ctx, c, GetOps().PrivateMessageList, url)
}

// GetReportCount counts open reports.
func (c *Client) GetReportCount(ctx context.Context, url string) (*GetReportCountResponse, error) {
	return execute[GetReportCountResponse](ctx, c, GetOps().ReportCount, url)
}

// GetUnreadCount counts unread notifications.
func (c *Client) GetUnreadCount(ctx context.Context, url string) (*GetUnreadCountResponse, error) {
	return execute[GetUnreadCountResponse](ctx, c, GetOps().UnreadCount, url)
}

// GetUnreadRegistrationApplicationCount counts sign-up requests awaiting review.
func (c *Client) GetUnreadRegistrationApplicationCount(ctx context.Context, url string) (*GetUnreadRegistrationApplicationCountResponse, error) {
	return execute[GetUnreadRegistrationApplicationCountResponse](ctx, c, GetOps().RegistrationApplicationCount, url)
}

// ListRegistrationApplications lists sign-up requests.
func (c *Client) ListRegistrationApplications(ctx context.Context, url string) (*ListRegistrationApplicationsResponse, error) {
	return execute[ListRegistrationApplicationsResponse](ctx, c, GetOps().RegistrationApplicationList, url)
}

// ListCommentReports lists comment reports.
func (c *Client) ListCommentReports(ctx context.Context, url string) (*ListCommentReportsResponse, error) {
	return execute[ListCommentReportsResponse](ctx, c, GetOps().CommentReportList, url)
}

// ListPostReports lists post reports.
func (c *Client) ListPostReports(ctx context.Context, url string) (*ListPostReportsResponse, error) {
	return execute[ListPostReportsResponse](ctx, c, GetOps().PostReportList, url)
}

// ListPrivateMessageReports lists private message reports.
func (c *Client) ListPrivateMessageReports(ctx context.Context, url string) (*ListPrivateMessageReportsResponse, error) {
	return execute[ListPrivateMessageReportsResponse](ctx, c, GetOps().PrivateMessageReportList, url)
}

// GetSiteMetadata fetches link preview data for a URL.
func (c *Client) GetSiteMetadata(ctx context.Context, url string) (*GetSiteMetadataResponse, error) {
	return execute[GetSiteMetadataResponse](ctx, c, GetOps().SiteMetadata, url)
}
