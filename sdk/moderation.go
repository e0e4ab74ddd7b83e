package sdk

// CommentReport is a user report against a comment.
type CommentReport struct {
	ID                  int32   `json:"id"`
	CreatorID           int32   `json:"creator_id"`
	CommentID           int32   `json:"comment_id"`
	OriginalCommentText string  `json:"original_comment_text"`
	Reason              string  `json:"reason"`
	Resolved            bool    `json:"resolved"`
	ResolverID          *int32  `json:"resolver_id,omitempty"`
	Published           string  `json:"published"`
	Updated             *string `json:"updated,omitempty"`
}

// CommentReportView is a comment report with its context.
type CommentReportView struct {
	CommentReport              CommentReport     `json:"comment_report"`
	Comment                    Comment           `json:"comment"`
	Post                       Post              `json:"post"`
	Community                  Community         `json:"community"`
	Creator                    Person            `json:"creator"`
	CommentCreator             Person            `json:"comment_creator"`
	Counts                     CommentAggregates `json:"counts"`
	CreatorBannedFromCommunity bool              `json:"creator_banned_from_community"`
	MyVote                     *int32            `json:"my_vote,omitempty"`
	Resolver                   *Person           `json:"resolver,omitempty"`
}

type CreateCommentReport struct {
	CommentID int32  `json:"comment_id"`
	Reason    string `json:"reason"`
	Auth      string `json:"auth"`
}

type CommentReportResponse struct {
	CommentReportView CommentReportView `json:"comment_report_view"`
}

type ResolveCommentReport struct {
	ReportID int32  `json:"report_id"`
	Resolved bool   `json:"resolved"`
	Auth     string `json:"auth"`
}

// ListCommentReports lists comment reports the caller moderates.
type ListCommentReports struct {
	Page           *int32 `json:"page,omitempty"`
	Limit          *int32 `json:"limit,omitempty"`
	UnresolvedOnly *bool  `json:"unresolved_only,omitempty"`
	CommunityID    *int32 `json:"community_id,omitempty"`
	Auth           string `json:"auth"`
}

type ListCommentReportsResponse struct {
	CommentReports []CommentReportView `json:"comment_reports"`
}

// PostReport is a user report against a post. The original fields hold
// the post content at report time.
type PostReport struct {
	ID               int32   `json:"id"`
	CreatorID        int32   `json:"creator_id"`
	PostID           int32   `json:"post_id"`
	OriginalPostName string  `json:"original_post_name"`
	OriginalPostURL  *string `json:"original_post_url,omitempty"`
	OriginalPostBody *string `json:"original_post_body,omitempty"`
	Reason           string  `json:"reason"`
	Resolved         bool    `json:"resolved"`
	ResolverID       *int32  `json:"resolver_id,omitempty"`
	Published        string  `json:"published"`
	Updated          *string `json:"updated,omitempty"`
}

// PostReportView is a post report with its context.
type PostReportView struct {
	PostReport                 PostReport     `json:"post_report"`
	Post                       Post           `json:"post"`
	Community                  Community      `json:"community"`
	Creator                    Person         `json:"creator"`
	PostCreator                Person         `json:"post_creator"`
	CreatorBannedFromCommunity bool           `json:"creator_banned_from_community"`
	MyVote                     *int32         `json:"my_vote,omitempty"`
	Counts                     PostAggregates `json:"counts"`
	Resolver                   *Person        `json:"resolver,omitempty"`
}

type CreatePostReport struct {
	PostID int32  `json:"post_id"`
	Reason string `json:"reason"`
	Auth   string `json:"auth"`
}

type PostReportResponse struct {
	PostReportView PostReportView `json:"post_report_view"`
}

type ResolvePostReport struct {
	ReportID int32  `json:"report_id"`
	Resolved bool   `json:"resolved"`
	Auth     string `json:"auth"`
}

// ListPostReports lists post reports the caller moderates.
type ListPostReports struct {
	Page           *int32 `json:"page,omitempty"`
	Limit          *int32 `json:"limit,omitempty"`
	UnresolvedOnly *bool  `json:"unresolved_only,omitempty"`
	CommunityID    *int32 `json:"community_id,omitempty"`
	Auth           string `json:"auth"`
}

type ListPostReportsResponse struct {
	PostReports []PostReportView `json:"post_reports"`
}

// PrivateMessageReport is a user report against a private message.
type PrivateMessageReport struct {
	ID               int32   `json:"id"`
	CreatorID        int32   `json:"creator_id"`
	PrivateMessageID int32   `json:"private_message_id"`
	OriginalPMText   string  `json:"original_pm_text"`
	Reason           string  `json:"reason"`
	Resolved         bool    `json:"resolved"`
	ResolverID       *int32  `json:"resolver_id,omitempty"`
	Published        string  `json:"published"`
	Updated          *string `json:"updated,omitempty"`
}

type PrivateMessageReportView struct {
	PrivateMessageReport  PrivateMessageReport `json:"private_message_report"`
	PrivateMessage        PrivateMessage       `json:"private_message"`
	PrivateMessageCreator Person               `json:"private_message_creator"`
	Creator               Person               `json:"creator"`
	Resolver              *Person              `json:"resolver,omitempty"`
}

type CreatePrivateMessageReport struct {
	PrivateMessageID int32  `json:"private_message_id"`
	Reason           string `json:"reason"`
	Auth             string `json:"auth"`
}

type PrivateMessageReportResponse struct {
	PrivateMessageReportView PrivateMessageReportView `json:"private_message_report_view"`
}

type ResolvePrivateMessageReport struct {
	ReportID int32  `json:"report_id"`
	Resolved bool   `json:"resolved"`
	Auth     string `json:"auth"`
}

// ListPrivateMessageReports lists private message reports. Admin only.
type ListPrivateMessageReports struct {
	Page           *int32 `json:"page,omitempty"`
	Limit          *int32 `json:"limit,omitempty"`
	UnresolvedOnly *bool  `json:"unresolved_only,omitempty"`
	Auth           string `json:"auth"`
}

type ListPrivateMessageReportsResponse struct {
	PrivateMessageReports []PrivateMessageReportView `json:"private_message_reports"`
}

// RegistrationApplication is a sign-up request awaiting admin review.
type RegistrationApplication struct {
	ID          int32   `json:"id"`
	LocalUserID int32   `json:"local_user_id"`
	Answer      string  `json:"answer"`
	AdminID     *int32  `json:"admin_id,omitempty"`
	DenyReason  *string `json:"deny_reason,omitempty"`
	Published   string  `json:"published"`
}

type RegistrationApplicationView struct {
	RegistrationApplication RegistrationApplication `json:"registration_application"`
	CreatorLocalUser        LocalUser               `json:"creator_local_user"`
	Creator                 Person                  `json:"creator"`
	Admin                   *Person                 `json:"admin,omitempty"`
}

// ListRegistrationApplications lists sign-up requests. Admin only.
type ListRegistrationApplications struct {
	UnreadOnly *bool  `json:"unread_only,omitempty"`
	Page       *int32 `json:"page,omitempty"`
	Limit      *int32 `json:"limit,omitempty"`
	Auth       string `json:"auth"`
}

type ListRegistrationApplicationsResponse struct {
	RegistrationApplications []RegistrationApplicationView `json:"registration_applications"`
}

// ApproveRegistrationApplication approves or denies a sign-up request.
type ApproveRegistrationApplication struct {
	ID         int32   `json:"id"`
	Approve    bool    `json:"approve"`
	DenyReason *string `json:"deny_reason,omitempty"`
	Auth       string  `json:"auth"`
}

type RegistrationApplicationResponse struct {
	RegistrationApplication RegistrationApplicationView `json:"registration_application"`
}

type GetUnreadRegistrationApplicationCount struct {
	Auth string `json:"auth"`
}

type GetUnreadRegistrationApplicationCountResponse struct {
	RegistrationApplications int64 `json:"registration_applications"`
}
