package sdk

// Comment is a reply to a post or to another comment. Path is the
// dot-separated chain of ancestor ids, starting with "0".
type Comment struct {
	ID            int32   `json:"id"`
	CreatorID     int32   `json:"creator_id"`
	PostID        int32   `json:"post_id"`
	Content       string  `json:"content"`
	Removed       bool    `json:"removed"`
	Published     string  `json:"published"`
	Updated       *string `json:"updated,omitempty"`
	Deleted       bool    `json:"deleted"`
	APID          string  `json:"ap_id"`
	Local         bool    `json:"local"`
	Path          string  `json:"path"`
	Distinguished bool    `json:"distinguished"`
	LanguageID    int32   `json:"language_id"`
}

// CommentAggregates holds the counters for a comment.
type CommentAggregates struct {
	ID         int32   `json:"id"`
	CommentID  *int32  `json:"comment_id,omitempty"`
	Score      int64   `json:"score"`
	Upvotes    int64   `json:"upvotes"`
	Downvotes  int64   `json:"downvotes"`
	Published  string  `json:"published"`
	ChildCount int32   `json:"child_count"`
	HotRank    float64 `json:"hot_rank"`
}

// CommentView is a comment with its context and the viewer's relationship
// to it.
type CommentView struct {
	Comment                    Comment           `json:"comment"`
	Creator                    Person            `json:"creator"`
	Post                       Post              `json:"post"`
	Community                  Community         `json:"community"`
	Counts                     CommentAggregates `json:"counts"`
	CreatorBannedFromCommunity bool              `json:"creator_banned_from_community"`
	Subscribed                 SubscribedType    `json:"subscribed"`
	Saved                      bool              `json:"saved"`
	CreatorBlocked             bool              `json:"creator_blocked"`
	MyVote                     *int32            `json:"my_vote,omitempty"`
}

// GetComment fetches one comment.
type GetComment struct {
	ID   int32   `json:"id"`
	Auth *string `json:"auth,omitempty"`
}

// GetComments lists comments, usually for one post.
type GetComments struct {
	Type          *ListingType     `json:"type_,omitempty"`
	Sort          *CommentSortType `json:"sort,omitempty"`
	MaxDepth      *int32           `json:"max_depth,omitempty"`
	Page          *int32           `json:"page,omitempty"`
	Limit         *int32           `json:"limit,omitempty"`
	CommunityID   *int32           `json:"community_id,omitempty"`
	CommunityName *string          `json:"community_name,omitempty"`
	PostID        *int32           `json:"post_id,omitempty"`
	ParentID      *int32           `json:"parent_id,omitempty"`
	SavedOnly     *bool            `json:"saved_only,omitempty"`
	Auth          *string          `json:"auth,omitempty"`
}

// GetCommentsResponse is the reply to GetComments.
type GetCommentsResponse struct {
	Comments []CommentView `json:"comments"`
}

// CreateComment posts a new comment.
type CreateComment struct {
	Content    string  `json:"content"`
	PostID     int32   `json:"post_id"`
	ParentID   *int32  `json:"parent_id,omitempty"`
	LanguageID *int32  `json:"language_id,omitempty"`
	FormID     *string `json:"form_id,omitempty"`
	Auth       string  `json:"auth"`
}

// EditComment changes an existing comment.
type EditComment struct {
	CommentID  int32   `json:"comment_id"`
	Content    *string `json:"content,omitempty"`
	LanguageID *int32  `json:"language_id,omitempty"`
	FormID     *string `json:"form_id,omitempty"`
	Auth       string  `json:"auth"`
}

// DeleteComment deletes or restores the caller's own comment.
type DeleteComment struct {
	CommentID int32  `json:"comment_id"`
	Deleted   bool   `json:"deleted"`
	Auth      string `json:"auth"`
}

// RemoveComment removes or restores a comment as a moderator.
type RemoveComment struct {
	CommentID int32   `json:"comment_id"`
	Removed   bool    `json:"removed"`
	Reason    *string `json:"reason,omitempty"`
	Auth      string  `json:"auth"`
}

// DistinguishComment marks a moderator comment as speaking for the team.
type DistinguishComment struct {
	CommentID     int32  `json:"comment_id"`
	Distinguished bool   `json:"distinguished"`
	Auth          string `json:"auth"`
}

// CreateCommentLike votes on a comment. Score is -1, 0 or 1.
type CreateCommentLike struct {
	CommentID int32  `json:"comment_id"`
	Score     int32  `json:"score"`
	Auth      string `json:"auth"`
}

// SaveComment saves or unsaves a comment for the caller.
type SaveComment struct {
	CommentID int32  `json:"comment_id"`
	Save      bool   `json:"save"`
	Auth      string `json:"auth"`
}

// CommentResponse is returned by the comment mutation endpoints.
type CommentResponse struct {
	CommentView  CommentView `json:"comment_view"`
	RecipientIDs []int32     `json:"recipient_ids"`
	FormID       *string     `json:"form_id,omitempty"`
}

// CommentReply is a notification that someone replied to the caller.
type CommentReply struct {
	ID          int32  `json:"id"`
	RecipientID int32  `json:"recipient_id"`
	CommentID   *int32 `json:"comment_id,omitempty"`
	Read        bool   `json:"read"`
	Published   string `json:"published"`
}

// CommentReplyView is a reply notification with its context.
type CommentReplyView struct {
	CommentReply               CommentReply      `json:"comment_reply"`
	Comment                    Comment           `json:"comment"`
	Creator                    Person            `json:"creator"`
	Post                       Post              `json:"post"`
	Community                  Community         `json:"community"`
	Recipient                  Person            `json:"recipient"`
	Counts                     CommentAggregates `json:"counts"`
	CreatorBannedFromCommunity bool              `json:"creator_banned_from_community"`
	Subscribed                 SubscribedType    `json:"subscribed"`
	Saved                      bool              `json:"saved"`
	CreatorBlocked             bool              `json:"creator_blocked"`
	MyVote                     *int32            `json:"my_vote,omitempty"`
}

// GetReplies lists reply notifications for the caller.
type GetReplies struct {
	Sort       *CommentSortType `json:"sort,omitempty"`
	Page       *int32           `json:"page,omitempty"`
	Limit      *int32           `json:"limit,omitempty"`
	UnreadOnly *bool            `json:"unread_only,omitempty"`
	Auth       string           `json:"auth"`
}

// GetRepliesResponse is the reply to GetReplies.
type GetRepliesResponse struct {
	Replies []CommentReplyView `json:"replies"`
}

// MarkCommentReplyAsRead marks a reply notification read or unread.
type MarkCommentReplyAsRead struct {
	CommentReplyID int32  `json:"comment_reply_id"`
	Read           bool   `json:"read"`
	Auth           string `json:"auth"`
}

// CommentReplyResponse is the reply to MarkCommentReplyAsRead.
type CommentReplyResponse struct {
	CommentReplyView CommentReplyView `json:"comment_reply_view"`
}
