package sdk

// Person is a user account, local or federated.
type Person struct {
	ID           int32   `json:"id"`
	Name         string  `json:"name"`
	DisplayName  *string `json:"display_name,omitempty"`
	Avatar       *string `json:"avatar,omitempty"`
	Banned       bool    `json:"banned"`
	Published    string  `json:"published"`
	Updated      *string `json:"updated,omitempty"`
	ActorID      string  `json:"actor_id"`
	Bio          *string `json:"bio,omitempty"`
	Local        bool    `json:"local"`
	Banner       *string `json:"banner,omitempty"`
	Deleted      bool    `json:"deleted"`
	InboxURL     *string `json:"inbox_url,omitempty"`
	MatrixUserID *string `json:"matrix_user_id,omitempty"`
	Admin        bool    `json:"admin"`
	BotAccount   bool    `json:"bot_account"`
	BanExpires   *string `json:"ban_expires,omitempty"`
	InstanceID   int32   `json:"instance_id"`
}

// PersonAggregates holds the counters for a person.
type PersonAggregates struct {
	ID           int32 `json:"id"`
	PersonID     int32 `json:"person_id"`
	PostCount    int64 `json:"post_count"`
	PostScore    int64 `json:"post_score"`
	CommentCount int64 `json:"comment_count"`
	CommentScore int64 `json:"comment_score"`
}

// PersonView is a person with their counters.
type PersonView struct {
	Person Person           `json:"person"`
	Counts PersonAggregates `json:"counts"`
}

// PersonBlockView pairs a person with someone they blocked.
type PersonBlockView struct {
	Person Person `json:"person"`
	Target Person `json:"target"`
}

// LocalUser holds the settings of an account registered on this instance.
type LocalUser struct {
	ID                       int32       `json:"id"`
	PersonID                 int32       `json:"person_id"`
	Email                    *string     `json:"email,omitempty"`
	ShowNSFW                 bool        `json:"show_nsfw"`
	Theme                    string      `json:"theme"`
	DefaultSortType          SortType    `json:"default_sort_type"`
	DefaultListingType       ListingType `json:"default_listing_type"`
	InterfaceLanguage        string      `json:"interface_language"`
	ShowAvatars              bool        `json:"show_avatars"`
	SendNotificationsToEmail bool        `json:"send_notifications_to_email"`
	ValidatorTime            string      `json:"validator_time"`
	ShowScores               bool        `json:"show_scores"`
	ShowBotAccounts          bool        `json:"show_bot_accounts"`
	ShowReadPosts            bool        `json:"show_read_posts"`
	ShowNewPostNotifs        bool        `json:"show_new_post_notifs"`
	EmailVerified            bool        `json:"email_verified"`
	AcceptedApplication      bool        `json:"accepted_application"`
	TOTP2FAURL               *string     `json:"totp_2fa_url,omitempty"`
	OpenLinksInNewTab        bool        `json:"open_links_in_new_tab"`
}

// LocalUserView is a local account with its person and counters.
type LocalUserView struct {
	LocalUser LocalUser        `json:"local_user"`
	Person    Person           `json:"person"`
	Counts    PersonAggregates `json:"counts"`
}

// GetPersonDetails fetches a person's profile with their posts and
// comments. Either PersonID or Username must be set.
type GetPersonDetails struct {
	PersonID    *int32    `json:"person_id,omitempty"`
	Username    *string   `json:"username,omitempty"`
	Sort        *SortType `json:"sort,omitempty"`
	Page        *int32    `json:"page,omitempty"`
	Limit       *int32    `json:"limit,omitempty"`
	CommunityID *int32    `json:"community_id,omitempty"`
	SavedOnly   *bool     `json:"saved_only,omitempty"`
	Auth        *string   `json:"auth,omitempty"`
}

// GetPersonDetailsResponse is the reply to GetPersonDetails.
type GetPersonDetailsResponse struct {
	PersonView PersonView               `json:"person_view"`
	Comments   []CommentView            `json:"comments"`
	Posts      []PostView               `json:"posts"`
	Moderates  []CommunityModeratorView `json:"moderates"`
}

// PersonMention is a notification that the caller was mentioned.
type PersonMention struct {
	ID          int32  `json:"id"`
	RecipientID int32  `json:"recipient_id"`
	CommentID   int32  `json:"comment_id"`
	Read        bool   `json:"read"`
	Published   string `json:"published"`
}

// PersonMentionView is a mention with its context.
type PersonMentionView struct {
	PersonMention              PersonMention     `json:"person_mention"`
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

// GetPersonMentions lists mentions of the caller.
type GetPersonMentions struct {
	Sort       *CommentSortType `json:"sort,omitempty"`
	Page       *int32           `json:"page,omitempty"`
	Limit      *int32           `json:"limit,omitempty"`
	UnreadOnly *bool            `json:"unread_only,omitempty"`
	Auth       string           `json:"auth"`
}

// GetPersonMentionsResponse is the reply to GetPersonMentions.
type GetPersonMentionsResponse struct {
	Mentions []PersonMentionView `json:"mentions"`
}

// MarkPersonMentionAsRead marks a mention read or unread.
type MarkPersonMentionAsRead struct {
	PersonMentionID int32  `json:"person_mention_id"`
	Read            bool   `json:"read"`
	Auth            string `json:"auth"`
}

// PersonMentionResponse is the reply to MarkPersonMentionAsRead.
type PersonMentionResponse struct {
	PersonMentionView PersonMentionView `json:"person_mention_view"`
}

// BlockPerson blocks or unblocks a person for the caller.
type BlockPerson struct {
	PersonID int32  `json:"person_id"`
	Block    bool   `json:"block"`
	Auth     string `json:"auth"`
}

// BlockPersonResponse is the reply to BlockPerson.
type BlockPersonResponse struct {
	PersonView PersonView `json:"person_view"`
	Blocked    bool       `json:"blocked"`
}

// BanPerson bans or unbans a person site-wide. Expires is a unix
// timestamp.
type BanPerson struct {
	PersonID   int32   `json:"person_id"`
	Ban        bool    `json:"ban"`
	RemoveData *bool   `json:"remove_data,omitempty"`
	Reason     *string `json:"reason,omitempty"`
	Expires    *int64  `json:"expires,omitempty"`
	Auth       string  `json:"auth"`
}

// BanPersonResponse is the reply to BanPerson.
type BanPersonResponse struct {
	PersonView *PersonView `json:"person_view,omitempty"`
	Banned     bool        `json:"banned"`
}

// GetBannedPersons lists site-banned people. Admin only.
type GetBannedPersons struct {
	Auth string `json:"auth"`
}

// BannedPersonsResponse is the reply to GetBannedPersons.
type BannedPersonsResponse struct {
	Banned []PersonView `json:"banned"`
}

// Login authenticates with a username or email.
type Login struct {
	UsernameOrEmail string  `json:"username_or_email"`
	Password        string  `json:"password"`
	TOTP2FAToken    *string `json:"totp_2fa_token,omitempty"`
}

// LoginResponse carries the session token. JWT is absent when the account
// still awaits email verification or application approval.
type LoginResponse struct {
	JWT                 *string `json:"jwt,omitempty"`
	RegistrationCreated bool    `json:"registration_created"`
	VerifyEmailSent     bool    `json:"verify_email_sent"`
}

// Register creates an account.
type Register struct {
	Username       string  `json:"username"`
	Password       string  `json:"password"`
	PasswordVerify string  `json:"password_verify"`
	ShowNSFW       bool    `json:"show_nsfw"`
	Email          *string `json:"email,omitempty"`
	CaptchaUUID    *string `json:"captcha_uuid,omitempty"`
	CaptchaAnswer  *string `json:"captcha_answer,omitempty"`
	Honeypot       *string `json:"honeypot,omitempty"`
	Answer         *string `json:"answer,omitempty"`
}

// GetCaptcha requests a sign-up captcha.
type GetCaptcha struct {
	Auth *string `json:"auth,omitempty"`
}

// CaptchaResponse is a captcha image and audio, both base64.
type CaptchaResponse struct {
	PNG  string `json:"png"`
	WAV  string `json:"wav"`
	UUID string `json:"uuid"`
}

// GetCaptchaResponse is the reply to GetCaptcha. Ok is absent when
// captchas are disabled.
type GetCaptchaResponse struct {
	Ok *CaptchaResponse `json:"ok,omitempty"`
}

// ChangePassword changes the caller's password.
type ChangePassword struct {
	NewPassword       string `json:"new_password"`
	NewPasswordVerify string `json:"new_password_verify"`
	OldPassword       string `json:"old_password"`
	Auth              string `json:"auth"`
}

// PasswordReset sends a reset link to an email address.
type PasswordReset struct {
	Email string `json:"email"`
}

// PasswordChangeAfterReset sets a new password using a reset token.
type PasswordChangeAfterReset struct {
	Token          string `json:"token"`
	Password       string `json:"password"`
	PasswordVerify string `json:"password_verify"`
}

// VerifyEmail confirms an email address.
type VerifyEmail struct {
	Token string `json:"token"`
}

// DeleteAccount permanently deletes the caller's account.
type DeleteAccount struct {
	Password string `json:"password"`
	Auth     string `json:"auth"`
}

// SaveUserSettings changes the caller's settings.
type SaveUserSettings struct {
	ShowNSFW                 *bool        `json:"show_nsfw,omitempty"`
	ShowScores               *bool        `json:"show_scores,omitempty"`
	Theme                    *string      `json:"theme,omitempty"`
	DefaultSortType          *SortType    `json:"default_sort_type,omitempty"`
	DefaultListingType       *ListingType `json:"default_listing_type,omitempty"`
	InterfaceLanguage        *string      `json:"interface_language,omitempty"`
	Avatar                   *string      `json:"avatar,omitempty"`
	Banner                   *string      `json:"banner,omitempty"`
	DisplayName              *string      `json:"display_name,omitempty"`
	Email                    *string      `json:"email,omitempty"`
	Bio                      *string      `json:"bio,omitempty"`
	MatrixUserID             *string      `json:"matrix_user_id,omitempty"`
	ShowAvatars              *bool        `json:"show_avatars,omitempty"`
	SendNotificationsToEmail *bool        `json:"send_notifications_to_email,omitempty"`
	BotAccount               *bool        `json:"bot_account,omitempty"`
	ShowBotAccounts          *bool        `json:"show_bot_accounts,omitempty"`
	ShowReadPosts            *bool        `json:"show_read_posts,omitempty"`
	ShowNewPostNotifs        *bool        `json:"show_new_post_notifs,omitempty"`
	DiscussionLanguages      []int32      `json:"discussion_languages,omitempty"`
	GenerateTOTP2FA          *bool        `json:"generate_totp_2fa,omitempty"`
	OpenLinksInNewTab        *bool        `json:"open_links_in_new_tab,omitempty"`
	Auth                     string       `json:"auth"`
}

// GetUnreadCount counts the caller's unread notifications.
type GetUnreadCount struct {
	Auth string `json:"auth"`
}

// GetUnreadCountResponse is the reply to GetUnreadCount.
type GetUnreadCountResponse struct {
	Replies         int64 `json:"replies"`
	Mentions        int64 `json:"mentions"`
	PrivateMessages int64 `json:"private_messages"`
}

// MarkAllAsRead marks every notification of the caller as read.
type MarkAllAsRead struct {
	Auth string `json:"auth"`
}

// GetReportCount counts open reports the caller can act on.
type GetReportCount struct {
	CommunityID *int32 `json:"community_id,omitempty"`
	Auth        string `json:"auth"`
}

// GetReportCountResponse is the reply to GetReportCount.
type GetReportCountResponse struct {
	CommunityID           *int32 `json:"community_id,omitempty"`
	CommentReports        int64  `json:"comment_reports"`
	PostReports           int64  `json:"post_reports"`
	PrivateMessageReports *int64 `json:"private_message_reports,omitempty"`
}
