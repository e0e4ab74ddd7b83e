package sdk

// Site is the instance's own federated actor.
type Site struct {
	ID              int32   `json:"id"`
	Name            string  `json:"name"`
	Sidebar         *string `json:"sidebar,omitempty"`
	Published       string  `json:"published"`
	Updated         *string `json:"updated,omitempty"`
	Icon            *string `json:"icon,omitempty"`
	Banner          *string `json:"banner,omitempty"`
	Description     *string `json:"description,omitempty"`
	ActorID         string  `json:"actor_id"`
	LastRefreshedAt string  `json:"last_refreshed_at"`
	InboxURL        string  `json:"inbox_url"`
	PrivateKey      *string `json:"private_key,omitempty"`
	PublicKey       string  `json:"public_key"`
	InstanceID      int32   `json:"instance_id"`
}

// SiteAggregates holds the instance-wide counters.
type SiteAggregates struct {
	ID                  int32  `json:"id"`
	SiteID              int32  `json:"site_id"`
	Users               int64  `json:"users"`
	Posts               int64  `json:"posts"`
	Comments            *int64 `json:"comments,omitempty"`
	Communities         int64  `json:"communities"`
	UsersActiveDay      int64  `json:"users_active_day"`
	UsersActiveWeek     int64  `json:"users_active_week"`
	UsersActiveMonth    int64  `json:"users_active_month"`
	UsersActiveHalfYear int64  `json:"users_active_half_year"`
}

// LocalSite holds the instance settings that are not federated.
type LocalSite struct {
	ID                         int32            `json:"id"`
	SiteID                     int32            `json:"site_id"`
	SiteSetup                  bool             `json:"site_setup"`
	EnableDownvotes            bool             `json:"enable_downvotes"`
	EnableNSFW                 bool             `json:"enable_nsfw"`
	CommunityCreationAdminOnly bool             `json:"community_creation_admin_only"`
	RequireEmailVerification   bool             `json:"require_email_verification"`
	ApplicationQuestion        *string          `json:"application_question,omitempty"`
	PrivateInstance            bool             `json:"private_instance"`
	DefaultTheme               string           `json:"default_theme"`
	DefaultPostListingType     ListingType      `json:"default_post_listing_type"`
	LegalInformation           *string          `json:"legal_information,omitempty"`
	HideModlogModNames         bool             `json:"hide_modlog_mod_names"`
	ApplicationEmailAdmins     bool             `json:"application_email_admins"`
	SlurFilterRegex            *string          `json:"slur_filter_regex,omitempty"`
	ActorNameMaxLength         int32            `json:"actor_name_max_length"`
	FederationEnabled          bool             `json:"federation_enabled"`
	CaptchaEnabled             bool             `json:"captcha_enabled"`
	CaptchaDifficulty          string           `json:"captcha_difficulty"`
	Published                  string           `json:"published"`
	Updated                    *string          `json:"updated,omitempty"`
	RegistrationMode           RegistrationMode `json:"registration_mode"`
	ReportsEmailAdmins         bool             `json:"reports_email_admins"`
}

// LocalSiteRateLimit holds per-action rate limits. Each limit is a count
// allowed per the matching PerSecond window.
type LocalSiteRateLimit struct {
	ID                int32   `json:"id"`
	LocalSiteID       int32   `json:"local_site_id"`
	Message           int32   `json:"message"`
	MessagePerSecond  int32   `json:"message_per_second"`
	Post              int32   `json:"post"`
	PostPerSecond     int32   `json:"post_per_second"`
	Register          int32   `json:"register"`
	RegisterPerSecond int32   `json:"register_per_second"`
	Image             int32   `json:"image"`
	ImagePerSecond    int32   `json:"image_per_second"`
	Comment           *int32  `json:"comment,omitempty"`
	CommentPerSecond  int32   `json:"comment_per_second"`
	Search            int32   `json:"search"`
	SearchPerSecond   int32   `json:"search_per_second"`
	Published         string  `json:"published"`
	Updated           *string `json:"updated,omitempty"`
}

// SiteView bundles everything describing the instance.
type SiteView struct {
	Site               Site               `json:"site"`
	LocalSite          LocalSite          `json:"local_site"`
	LocalSiteRateLimit LocalSiteRateLimit `json:"local_site_rate_limit"`
	Counts             SiteAggregates     `json:"counts"`
}

// Tagline is a rotating slogan shown in the UI.
type Tagline struct {
	ID          int32   `json:"id"`
	LocalSiteID int32   `json:"local_site_id"`
	Content     string  `json:"content"`
	Published   string  `json:"published"`
	Updated     *string `json:"updated,omitempty"`
}

// Language is a discussion language known to the instance.
type Language struct {
	ID   int32  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// MyUserInfo is the signed-in caller's account and relationships.
type MyUserInfo struct {
	LocalUserView       LocalUserView            `json:"local_user_view"`
	Follows             []CommunityFollowerView  `json:"follows"`
	Moderates           []CommunityModeratorView `json:"moderates"`
	CommunityBlocks     []CommunityBlockView     `json:"community_blocks"`
	PersonBlocks        []PersonBlockView        `json:"person_blocks"`
	DiscussionLanguages []int32                  `json:"discussion_languages"`
}

// GetSite fetches the instance description.
type GetSite struct {
	Auth *string `json:"auth,omitempty"`
}

// GetSiteResponse is the reply to GetSite.
type GetSiteResponse struct {
	SiteView            SiteView          `json:"site_view"`
	Admins              []PersonView      `json:"admins"`
	Version             string            `json:"version"`
	MyUser              *MyUserInfo       `json:"my_user,omitempty"`
	AllLanguages        []Language        `json:"all_languages"`
	DiscussionLanguages []int32           `json:"discussion_languages"`
	Taglines            []Tagline         `json:"taglines"`
	CustomEmojis        []CustomEmojiView `json:"custom_emojis"`
}

// CreateSite performs first-time instance setup.
type CreateSite struct {
	Name                       string            `json:"name"`
	Sidebar                    *string           `json:"sidebar,omitempty"`
	Description                *string           `json:"description,omitempty"`
	Icon                       *string           `json:"icon,omitempty"`
	Banner                     *string           `json:"banner,omitempty"`
	EnableDownvotes            *bool             `json:"enable_downvotes,omitempty"`
	EnableNSFW                 *bool             `json:"enable_nsfw,omitempty"`
	CommunityCreationAdminOnly *bool             `json:"community_creation_admin_only,omitempty"`
	RequireEmailVerification   *bool             `json:"require_email_verification,omitempty"`
	ApplicationQuestion        *string           `json:"application_question,omitempty"`
	PrivateInstance            *bool             `json:"private_instance,omitempty"`
	DefaultTheme               *string           `json:"default_theme,omitempty"`
	DefaultPostListingType     *ListingType      `json:"default_post_listing_type,omitempty"`
	LegalInformation           *string           `json:"legal_information,omitempty"`
	ApplicationEmailAdmins     *bool             `json:"application_email_admins,omitempty"`
	HideModlogModNames         *bool             `json:"hide_modlog_mod_names,omitempty"`
	DiscussionLanguages        []int32           `json:"discussion_languages,omitempty"`
	SlurFilterRegex            *string           `json:"slur_filter_regex,omitempty"`
	ActorNameMaxLength         *int32            `json:"actor_name_max_length,omitempty"`
	RateLimitMessage           *int32            `json:"rate_limit_message,omitempty"`
	RateLimitMessagePerSecond  *int32            `json:"rate_limit_message_per_second,omitempty"`
	RateLimitPost              *int32            `json:"rate_limit_post,omitempty"`
	RateLimitPostPerSecond     *int32            `json:"rate_limit_post_per_second,omitempty"`
	RateLimitRegister          *int32            `json:"rate_limit_register,omitempty"`
	RateLimitRegisterPerSecond *int32            `json:"rate_limit_register_per_second,omitempty"`
	RateLimitImage             *int32            `json:"rate_limit_image,omitempty"`
	RateLimitImagePerSecond    *int32            `json:"rate_limit_image_per_second,omitempty"`
	RateLimitComment           *int32            `json:"rate_limit_comment,omitempty"`
	RateLimitCommentPerSecond  *int32            `json:"rate_limit_comment_per_second,omitempty"`
	RateLimitSearch            *int32            `json:"rate_limit_search,omitempty"`
	RateLimitSearchPerSecond   *int32            `json:"rate_limit_search_per_second,omitempty"`
	FederationEnabled          *bool             `json:"federation_enabled,omitempty"`
	FederationDebug            *bool             `json:"federation_debug,omitempty"`
	CaptchaEnabled             *bool             `json:"captcha_enabled,omitempty"`
	CaptchaDifficulty          *string           `json:"captcha_difficulty,omitempty"`
	AllowedInstances           []string          `json:"allowed_instances,omitempty"`
	BlockedInstances           []string          `json:"blocked_instances,omitempty"`
	Taglines                   []string          `json:"taglines,omitempty"`
	RegistrationMode           *RegistrationMode `json:"registration_mode,omitempty"`
	Auth                       string            `json:"auth"`
}

// EditSite changes instance settings. Only set fields are changed.
type EditSite struct {
	Name                       *string           `json:"name,omitempty"`
	Sidebar                    *string           `json:"sidebar,omitempty"`
	Description                *string           `json:"description,omitempty"`
	Icon                       *string           `json:"icon,omitempty"`
	Banner                     *string           `json:"banner,omitempty"`
	EnableDownvotes            *bool             `json:"enable_downvotes,omitempty"`
	EnableNSFW                 *bool             `json:"enable_nsfw,omitempty"`
	CommunityCreationAdminOnly *bool             `json:"community_creation_admin_only,omitempty"`
	RequireEmailVerification   *bool             `json:"require_email_verification,omitempty"`
	ApplicationQuestion        *string           `json:"application_question,omitempty"`
	PrivateInstance            *bool             `json:"private_instance,omitempty"`
	DefaultTheme               *string           `json:"default_theme,omitempty"`
	DefaultPostListingType     *ListingType      `json:"default_post_listing_type,omitempty"`
	LegalInformation           *string           `json:"legal_information,omitempty"`
	ApplicationEmailAdmins     *bool             `json:"application_email_admins,omitempty"`
	HideModlogModNames         *bool             `json:"hide_modlog_mod_names,omitempty"`
	DiscussionLanguages        []int32           `json:"discussion_languages,omitempty"`
	SlurFilterRegex            *string           `json:"slur_filter_regex,omitempty"`
	ActorNameMaxLength         *int32            `json:"actor_name_max_length,omitempty"`
	RateLimitMessage           *int32            `json:"rate_limit_message,omitempty"`
	RateLimitMessagePerSecond  *int32            `json:"rate_limit_message_per_second,omitempty"`
	RateLimitPost              *int32            `json:"rate_limit_post,omitempty"`
	RateLimitPostPerSecond     *int32            `json:"rate_limit_post_per_second,omitempty"`
	RateLimitRegister          *int32            `json:"rate_limit_register,omitempty"`
	RateLimitRegisterPerSecond *int32            `json:"rate_limit_register_per_second,omitempty"`
	RateLimitImage             *int32            `json:"rate_limit_image,omitempty"`
	RateLimitImagePerSecond    *int32            `json:"rate_limit_image_per_second,omitempty"`
	RateLimitComment           *int32            `json:"rate_limit_comment,omitempty"`
	RateLimitCommentPerSecond  *int32            `json:"rate_limit_comment_per_second,omitempty"`
	RateLimitSearch            *int32            `json:"rate_limit_search,omitempty"`
	RateLimitSearchPerSecond   *int32            `json:"rate_limit_search_per_second,omitempty"`
	FederationEnabled          *bool             `json:"federation_enabled,omitempty"`
	FederationDebug            *bool             `json:"federation_debug,omitempty"`
	CaptchaEnabled             *bool             `json:"captcha_enabled,omitempty"`
	CaptchaDifficulty          *string           `json:"captcha_difficulty,omitempty"`
	AllowedInstances           []string          `json:"allowed_instances,omitempty"`
	BlockedInstances           []string          `json:"blocked_instances,omitempty"`
	Taglines                   []string          `json:"taglines,omitempty"`
	RegistrationMode           *RegistrationMode `json:"registration_mode,omitempty"`
	ReportsEmailAdmins         *bool             `json:"reports_email_admins,omitempty"`
	Auth                       string            `json:"auth"`
}

// SiteResponse is returned by CreateSite and EditSite.
type SiteResponse struct {
	SiteView SiteView  `json:"site_view"`
	Taglines []Tagline `json:"taglines"`
}

// LeaveAdmin drops the caller's admin role.
type LeaveAdmin struct {
	Auth string `json:"auth"`
}

// AddAdmin grants or revokes admin rights.
type AddAdmin struct {
	PersonID int32  `json:"person_id"`
	Added    bool   `json:"added"`
	Auth     string `json:"auth"`
}

// AddAdminResponse is the reply to AddAdmin.
type AddAdminResponse struct {
	Admins []PersonView `json:"admins"`
}

// CustomEmoji is an instance-defined emoji.
type CustomEmoji struct {
	ID          int32   `json:"id"`
	LocalSiteID int32   `json:"local_site_id"`
	Shortcode   string  `json:"shortcode"`
	ImageURL    string  `json:"image_url"`
	AltText     string  `json:"alt_text"`
	Category    string  `json:"category"`
	Published   string  `json:"published"`
	Updated     *string `json:"updated,omitempty"`
}

// CustomEmojiKeyword is a search keyword attached to a custom emoji.
type CustomEmojiKeyword struct {
	ID            int32  `json:"id"`
	CustomEmojiID int32  `json:"custom_emoji_id"`
	Keyword       string `json:"keyword"`
}

// CustomEmojiView is a custom emoji with its keywords.
type CustomEmojiView struct {
	CustomEmoji CustomEmoji          `json:"custom_emoji"`
	Keywords    []CustomEmojiKeyword `json:"keywords"`
}

// CreateCustomEmoji adds a custom emoji.
type CreateCustomEmoji struct {
	Category  string   `json:"category"`
	Shortcode string   `json:"shortcode"`
	ImageURL  string   `json:"image_url"`
	AltText   string   `json:"alt_text"`
	Keywords  []string `json:"keywords"`
	Auth      string   `json:"auth"`
}

// EditCustomEmoji changes a custom emoji.
type EditCustomEmoji struct {
	ID       int32    `json:"id"`
	Category string   `json:"category"`
	ImageURL string   `json:"image_url"`
	AltText  string   `json:"alt_text"`
	Keywords []string `json:"keywords"`
	Auth     string   `json:"auth"`
}

// DeleteCustomEmoji removes a custom emoji.
type DeleteCustomEmoji struct {
	ID   int32  `json:"id"`
	Auth string `json:"auth"`
}

// DeleteCustomEmojiResponse is the reply to DeleteCustomEmoji.
type DeleteCustomEmojiResponse struct {
	ID      int32 `json:"id"`
	Success bool  `json:"success"`
}

// CustomEmojiResponse is returned by CreateCustomEmoji and EditCustomEmoji.
type CustomEmojiResponse struct {
	CustomEmojiView CustomEmojiView `json:"custom_emoji_view"`
}
