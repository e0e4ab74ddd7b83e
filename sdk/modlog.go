package sdk

// GetModlog lists moderation actions. Every filter is optional.
type GetModlog struct {
	ModPersonID   *int32            `json:"mod_person_id,omitempty"`
	CommunityID   *int32            `json:"community_id,omitempty"`
	Page          *int32            `json:"page,omitempty"`
	Limit         *int32            `json:"limit,omitempty"`
	Type          *ModlogActionType `json:"type_,omitempty"`
	OtherPersonID *int32            `json:"other_person_id,omitempty"`
	Auth          *string           `json:"auth,omitempty"`
}

// GetModlogResponse holds one list per action kind. Lists are always
// present, possibly empty.
type GetModlogResponse struct {
	RemovedPosts           []ModRemovePostView        `json:"removed_posts"`
	LockedPosts            []ModLockPostView          `json:"locked_posts"`
	FeaturedPosts          []ModFeaturePostView       `json:"featured_posts"`
	RemovedComments        []ModRemoveCommentView     `json:"removed_comments"`
	RemovedCommunities     []ModRemoveCommunityView   `json:"removed_communities"`
	BannedFromCommunity    []ModBanFromCommunityView  `json:"banned_from_community"`
	Banned                 []ModBanView               `json:"banned"`
	AddedToCommunity       []ModAddCommunityView      `json:"added_to_community"`
	TransferredToCommunity []ModTransferCommunityView `json:"transferred_to_community"`
	Added                  []ModAddView               `json:"added"`
	AdminPurgedPersons     []AdminPurgePersonView     `json:"admin_purged_persons"`
	AdminPurgedCommunities []AdminPurgeCommunityView  `json:"admin_purged_communities"`
	AdminPurgedPosts       []AdminPurgePostView       `json:"admin_purged_posts"`
	AdminPurgedComments    []AdminPurgeCommentView    `json:"admin_purged_comments"`
	HiddenCommunities      []ModHideCommunityView     `json:"hidden_communities"`
}

// Len returns the total number of entries across every list.
func (r *GetModlogResponse) Len() int {
	return len(r.RemovedPosts) + len(r.LockedPosts) + len(r.FeaturedPosts) +
		len(r.RemovedComments) + len(r.RemovedCommunities) + len(r.BannedFromCommunity) +
		len(r.Banned) + len(r.AddedToCommunity) + len(r.TransferredToCommunity) +
		len(r.Added) + len(r.AdminPurgedPersons) + len(r.AdminPurgedCommunities) +
		len(r.AdminPurgedPosts) + len(r.AdminPurgedComments) + len(r.HiddenCommunities)
}

type ModRemovePost struct {
	ID          int32   `json:"id"`
	ModPersonID int32   `json:"mod_person_id"`
	PostID      int32   `json:"post_id"`
	Reason      *string `json:"reason,omitempty"`
	Removed     bool    `json:"removed"`
	When        string  `json:"when_"`
}

type ModRemovePostView struct {
	ModRemovePost ModRemovePost `json:"mod_remove_post"`
	Moderator     *Person       `json:"moderator,omitempty"`
	Post          Post          `json:"post"`
	Community     Community     `json:"community"`
}

type ModLockPost struct {
	ID          int32  `json:"id"`
	ModPersonID int32  `json:"mod_person_id"`
	PostID      int32  `json:"post_id"`
	Locked      bool   `json:"locked"`
	When        string `json:"when_"`
}

type ModLockPostView struct {
	ModLockPost ModLockPost `json:"mod_lock_post"`
	Moderator   *Person     `json:"moderator,omitempty"`
	Post        Post        `json:"post"`
	Community   Community   `json:"community"`
}

type ModFeaturePost struct {
	ID                  int32  `json:"id"`
	ModPersonID         int32  `json:"mod_person_id"`
	PostID              int32  `json:"post_id"`
	Featured            bool   `json:"featured"`
	When                string `json:"when_"`
	IsFeaturedCommunity bool   `json:"is_featured_community"`
}

type ModFeaturePostView struct {
	ModFeaturePost ModFeaturePost `json:"mod_feature_post"`
	Moderator      *Person        `json:"moderator,omitempty"`
	Post           Post           `json:"post"`
	Community      Community      `json:"community"`
}

type ModRemoveComment struct {
	ID          int32   `json:"id"`
	ModPersonID int32   `json:"mod_person_id"`
	CommentID   int32   `json:"comment_id"`
	Reason      *string `json:"reason,omitempty"`
	Removed     bool    `json:"removed"`
	When        string  `json:"when_"`
}

type ModRemoveCommentView struct {
	ModRemoveComment ModRemoveComment `json:"mod_remove_comment"`
	Moderator        *Person          `json:"moderator,omitempty"`
	Comment          Comment          `json:"comment"`
	Commenter        Person           `json:"commenter"`
	Post             Post             `json:"post"`
	Community        Community        `json:"community"`
}

type ModRemoveCommunity struct {
	ID          int32   `json:"id"`
	ModPersonID int32   `json:"mod_person_id"`
	CommunityID int32   `json:"community_id"`
	Reason      *string `json:"reason,omitempty"`
	Removed     bool    `json:"removed"`
	Expires     *string `json:"expires,omitempty"`
	When        string  `json:"when_"`
}

type ModRemoveCommunityView struct {
	ModRemoveCommunity ModRemoveCommunity `json:"mod_remove_community"`
	Moderator          *Person            `json:"moderator,omitempty"`
	Community          Community          `json:"community"`
}

type ModBanFromCommunity struct {
	ID            int32   `json:"id"`
	ModPersonID   int32   `json:"mod_person_id"`
	OtherPersonID int32   `json:"other_person_id"`
	CommunityID   int32   `json:"community_id"`
	Reason        *string `json:"reason,omitempty"`
	Banned        bool    `json:"banned"`
	Expires       *string `json:"expires,omitempty"`
	When          string  `json:"when_"`
}

type ModBanFromCommunityView struct {
	ModBanFromCommunity ModBanFromCommunity `json:"mod_ban_from_community"`
	Moderator           *Person             `json:"moderator,omitempty"`
	Community           Community           `json:"community"`
	BannedPerson        Person              `json:"banned_person"`
}

type ModBan struct {
	ID            int32   `json:"id"`
	ModPersonID   int32   `json:"mod_person_id"`
	OtherPersonID int32   `json:"other_person_id"`
	Reason        *string `json:"reason,omitempty"`
	Banned        bool    `json:"banned"`
	Expires       *string `json:"expires,omitempty"`
	When          string  `json:"when_"`
}

type ModBanView struct {
	ModBan       ModBan  `json:"mod_ban"`
	Moderator    *Person `json:"moderator,omitempty"`
	BannedPerson Person  `json:"banned_person"`
}

type ModAddCommunity struct {
	ID            int32  `json:"id"`
	ModPersonID   int32  `json:"mod_person_id"`
	OtherPersonID int32  `json:"other_person_id"`
	CommunityID   int32  `json:"community_id"`
	Removed       bool   `json:"removed"`
	When          string `json:"when_"`
}

type ModAddCommunityView struct {
	ModAddCommunity ModAddCommunity `json:"mod_add_community"`
	Moderator       *Person         `json:"moderator,omitempty"`
	Community       Community       `json:"community"`
	ModdedPerson    Person          `json:"modded_person"`
}

type ModTransferCommunity struct {
	ID            int32  `json:"id"`
	ModPersonID   int32  `json:"mod_person_id"`
	OtherPersonID int32  `json:"other_person_id"`
	CommunityID   int32  `json:"community_id"`
	When          string `json:"when_"`
}

type ModTransferCommunityView struct {
	ModTransferCommunity ModTransferCommunity `json:"mod_transfer_community"`
	Moderator            *Person              `json:"moderator,omitempty"`
	Community            Community            `json:"community"`
	ModdedPerson         Person               `json:"modded_person"`
}

type ModAdd struct {
	ID            int32  `json:"id"`
	ModPersonID   int32  `json:"mod_person_id"`
	OtherPersonID int32  `json:"other_person_id"`
	Removed       bool   `json:"removed"`
	When          string `json:"when_"`
}

type ModAddView struct {
	ModAdd       ModAdd  `json:"mod_add"`
	Moderator    *Person `json:"moderator,omitempty"`
	ModdedPerson Person  `json:"modded_person"`
}

type ModHideCommunity struct {
	ID          int32   `json:"id"`
	CommunityID int32   `json:"community_id"`
	ModPersonID int32   `json:"mod_person_id"`
	When        string  `json:"when_"`
	Reason      *string `json:"reason,omitempty"`
	Hidden      bool    `json:"hidden"`
}

type ModHideCommunityView struct {
	ModHideCommunity ModHideCommunity `json:"mod_hide_community"`
	Admin            *Person          `json:"admin,omitempty"`
	Community        Community        `json:"community"`
}

type AdminPurgePerson struct {
	ID            int32   `json:"id"`
	AdminPersonID int32   `json:"admin_person_id"`
	Reason        *string `json:"reason,omitempty"`
	When          string  `json:"when_"`
}

type AdminPurgePersonView struct {
	AdminPurgePerson AdminPurgePerson `json:"admin_purge_person"`
	Admin            *Person          `json:"admin,omitempty"`
}

// AdminPurgeCommunity only guarantees when_. Older servers omit the rest.
type AdminPurgeCommunity struct {
	ID            *int32  `json:"id,omitempty"`
	AdminPersonID *int32  `json:"admin_person_id,omitempty"`
	Reason        *string `json:"reason,omitempty"`
	When          string  `json:"when_"`
}

type AdminPurgeCommunityView struct {
	AdminPurgeCommunity AdminPurgeCommunity `json:"admin_purge_community"`
	Admin               *Person             `json:"admin,omitempty"`
}

type AdminPurgePost struct {
	ID            int32   `json:"id"`
	AdminPersonID int32   `json:"admin_person_id"`
	CommunityID   int32   `json:"community_id"`
	Reason        *string `json:"reason,omitempty"`
	When          string  `json:"when_"`
}

type AdminPurgePostView struct {
	AdminPurgePost AdminPurgePost `json:"admin_purge_post"`
	Admin          *Person        `json:"admin,omitempty"`
	Community      Community      `json:"community"`
}

type AdminPurgeComment struct {
	ID            int32   `json:"id"`
	AdminPersonID int32   `json:"admin_person_id"`
	PostID        int32   `json:"post_id"`
	Reason        *string `json:"reason,omitempty"`
	When          string  `json:"when_"`
}

type AdminPurgeCommentView struct {
	AdminPurgeComment AdminPurgeComment `json:"admin_purge_comment"`
	Admin             *Person           `json:"admin,omitempty"`
	Post              Post              `json:"post"`
}

// PurgePerson permanently erases a person and their content.
type PurgePerson struct {
	PersonID int32   `json:"person_id"`
	Reason   *string `json:"reason,omitempty"`
	Auth     string  `json:"auth"`
}

// PurgeCommunity permanently erases a community.
type PurgeCommunity struct {
	CommunityID int32   `json:"community_id"`
	Reason      *string `json:"reason,omitempty"`
	Auth        string  `json:"auth"`
}

// PurgePost permanently erases a post.
type PurgePost struct {
	PostID int32   `json:"post_id"`
	Reason *string `json:"reason,omitempty"`
	Auth   string  `json:"auth"`
}

// PurgeComment permanently erases a comment.
type PurgeComment struct {
	CommentID int32   `json:"comment_id"`
	Reason    *string `json:"reason,omitempty"`
	Auth      string  `json:"auth"`
}

// PurgeItemResponse is returned by every purge endpoint.
type PurgeItemResponse struct {
	Success bool `json:"success"`
}
