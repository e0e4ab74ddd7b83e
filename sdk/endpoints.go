package sdk

import (
	"net/http"
)

// Endpoint identifies one remote Lemmy API action: an HTTP verb and a path
// fragment relative to /api/{version}/. Endpoints are only created in this
// file, so a path can never be assembled from user input.
//
// Example:
//
//	url := client.BuildURL(sdk.GetOps().PostList, sdk.GetPosts{Page: sdk.Ptr[int32](2)})
//	// https://lemmy.example/api/v3/post/list?page=2
type Endpoint struct {
	method string
	path   string
}

func get(path string) Endpoint  { return Endpoint{method: http.MethodGet, path: path} }
func post(path string) Endpoint { return Endpoint{method: http.MethodPost, path: path} }
func put(path string) Endpoint  { return Endpoint{method: http.MethodPut, path: path} }

// Method returns the HTTP verb.
func (e Endpoint) Method() string { return e.method }

// Path returns the path fragment, e.g. "comment/list".
func (e Endpoint) Path() string { return e.path }

// String returns "VERB path".
func (e Endpoint) String() string {
	if e.method == "" {
		return "unknown"
	}
	return e.method + " " + e.path
}

// IsZero reports whether e is the zero Endpoint.
func (e Endpoint) IsZero() bool { return e.method == "" && e.path == "" }

// GetTable holds the GET endpoints.
type GetTable struct {
	BannedPersons                Endpoint
	Captcha                      Endpoint
	Comment                      Endpoint
	CommentList                  Endpoint
	Community                    Endpoint
	FederatedInstances           Endpoint
	Modlog                       Endpoint
	PersonDetails                Endpoint
	PersonMentions               Endpoint
	Post                         Endpoint
	PostList                     Endpoint
	PrivateMessageList           Endpoint
	Replies                      Endpoint
	ReportCount                  Endpoint
	Site                         Endpoint
	SiteMetadata                 Endpoint
	UnreadCount                  Endpoint
	RegistrationApplicationCount Endpoint
	CommentReportList            Endpoint
	CommunityList                Endpoint
	PostReportList               Endpoint
	PrivateMessageReportList     Endpoint
	RegistrationApplicationList  Endpoint
	ResolveObject                Endpoint
	Search                       Endpoint
}

var getOps = GetTable{
	BannedPersons:                get("user/banned"),
	Captcha:                      get("user/get_captcha"),
	Comment:                      get("comment"),
	CommentList:                  get("comment/list"),
	Community:                    get("community"),
	FederatedInstances:           get("federated_instances"),
	Modlog:                       get("modlog"),
	PersonDetails:                get("user"),
	PersonMentions:               get("user/mention"),
	Post:                         get("post"),
	PostList:                     get("post/list"),
	PrivateMessageList:           get("private_message/list"),
	Replies:                      get("user/replies"),
	ReportCount:                  get("user/report_count"),
	Site:                         get("site"),
	SiteMetadata:                 get("post/site_metadata"),
	UnreadCount:                  get("user/unread_count"),
	RegistrationApplicationCount: get("admin/registration_application/count"),
	CommentReportList:            get("comment/report/list"),
	CommunityList:                get("community/list"),
	PostReportList:               get("post/report/list"),
	PrivateMessageReportList:     get("private_message/report/list"),
	RegistrationApplicationList:  get("admin/registration_application/list"),
	ResolveObject:                get("resolve_object"),
	Search:                       get("search"),
}

func (t GetTable) all() []Endpoint {
	return []Endpoint{
		t.BannedPersons, t.Captcha, t.Comment, t.CommentList, t.Community, t.FederatedInstances,
		t.Modlog, t.PersonDetails, t.PersonMentions, t.Post, t.PostList, t.PrivateMessageList,
		t.Replies, t.ReportCount, t.Site, t.SiteMetadata, t.UnreadCount,
		t.RegistrationApplicationCount, t.CommentReportList, t.CommunityList, t.PostReportList,
		t.PrivateMessageReportList, t.RegistrationApplicationList, t.ResolveObject, t.Search,
	}
}

// PostTable holds the POST endpoints.
type PostTable struct {
	AddAdmin                   Endpoint
	AddModToCommunity          Endpoint
	BanFromCommunity           Endpoint
	BanPerson                  Endpoint
	BlockCommunity             Endpoint
	BlockPerson                Endpoint
	CreateComment              Endpoint
	CreateCommentReport        Endpoint
	CreateCommunity            Endpoint
	CreateCustomEmoji          Endpoint
	CreatePost                 Endpoint
	CreatePostReport           Endpoint
	CreatePrivateMessage       Endpoint
	CreatePrivateMessageReport Endpoint
	CreateSite                 Endpoint
	DeleteAccount              Endpoint
	DeleteComment              Endpoint
	DeleteCommunity            Endpoint
	DeleteCustomEmoji          Endpoint
	DeletePost                 Endpoint
	DeletePrivateMessage       Endpoint
	DistinguishComment         Endpoint
	FeaturePost                Endpoint
	FollowCommunity            Endpoint
	LeaveAdmin                 Endpoint
	CommentLike                Endpoint
	PostLike                   Endpoint
	LockPost                   Endpoint
	Login                      Endpoint
	MarkAllAsRead              Endpoint
	MarkCommentReplyAsRead     Endpoint
	MarkPersonMentionAsRead    Endpoint
	MarkPostAsRead             Endpoint
	MarkPrivateMessageAsRead   Endpoint
	PasswordChange             Endpoint
	PasswordReset              Endpoint
	PurgeComment               Endpoint
	PurgeCommunity             Endpoint
	PurgePerson                Endpoint
	PurgePost                  Endpoint
	Register                   Endpoint
	RemoveComment              Endpoint
	RemoveCommunity            Endpoint
	RemovePost                 Endpoint
	TransferCommunity          Endpoint
	VerifyEmail                Endpoint
}

var postOps = PostTable{
	AddAdmin:                   post("admin/add"),
	AddModToCommunity:          post("community/mod"),
	BanFromCommunity:           post("community/ban_user"),
	BanPerson:                  post("user/ban"),
	BlockCommunity:             post("community/block"),
	BlockPerson:                post("user/block"),
	CreateComment:              post("comment"),
	CreateCommentReport:        post("comment/report"),
	CreateCommunity:            post("community"),
	CreateCustomEmoji:          post("custom_emoji"),
	CreatePost:                 post("post"),
	CreatePostReport:           post("post/report"),
	CreatePrivateMessage:       post("private_message"),
	CreatePrivateMessageReport: post("private_message/report"),
	CreateSite:                 post("site"),
	DeleteAccount:              post("user/delete_account"),
	DeleteComment:              post("comment/delete"),
	DeleteCommunity:            post("community/delete"),
	DeleteCustomEmoji:          post("custom_emoji/delete"),
	DeletePost:                 post("post/delete"),
	DeletePrivateMessage:       post("private_message/delete"),
	DistinguishComment:         post("comment/distinguish"),
	FeaturePost:                post("post/feature"),
	FollowCommunity:            post("community/follow"),
	LeaveAdmin:                 post("user/leave_admin"),
	CommentLike:                post("comment/like"),
	PostLike:                   post("post/like"),
	LockPost:                   post("post/lock"),
	Login:                      post("user/login"),
	MarkAllAsRead:              post("user/mark_all_as_read"),
	MarkCommentReplyAsRead:     post("comment/mark_as_read"),
	MarkPersonMentionAsRead:    post("user/mention/mark_as_read"),
	MarkPostAsRead:             post("post/mark_as_read"),
	MarkPrivateMessageAsRead:   post("private_message/mark_as_read"),
	PasswordChange:             post("user/password_change"),
	PasswordReset:              post("user/password_reset"),
	PurgeComment:               post("admin/purge/comment"),
	PurgeCommunity:             post("admin/purge/community"),
	PurgePerson:                post("admin/purge/person"),
	PurgePost:                  post("admin/purge/post"),
	Register:                   post("user/register"),
	RemoveComment:              post("comment/remove"),
	RemoveCommunity:            post("community/remove"),
	RemovePost:                 post("post/remove"),
	TransferCommunity:          post("community/transfer"),
	VerifyEmail:                post("user/verify_email"),
}

func (t PostTable) all() []Endpoint {
	return []Endpoint{
		t.AddAdmin, t.AddModToCommunity, t.BanFromCommunity, t.BanPerson, t.BlockCommunity,
		t.BlockPerson, t.CreateComment, t.CreateCommentReport, t.CreateCommunity,
		t.CreateCustomEmoji, t.CreatePost, t.CreatePostReport, t.CreatePrivateMessage,
		t.CreatePrivateMessageReport, t.CreateSite, t.DeleteAccount, t.DeleteComment,
		t.DeleteCommunity, t.DeleteCustomEmoji, t.DeletePost, t.DeletePrivateMessage,
		t.DistinguishComment, t.FeaturePost, t.FollowCommunity, t.LeaveAdmin, t.CommentLike,
		t.PostLike, t.LockPost, t.Login, t.MarkAllAsRead, t.MarkCommentReplyAsRead,
		t.MarkPersonMentionAsRead, t.MarkPostAsRead, t.MarkPrivateMessageAsRead, t.PasswordChange,
		t.PasswordReset, t.PurgeComment, t.PurgeCommunity, t.PurgePerson, t.PurgePost, t.Register,
		t.RemoveComment, t.RemoveCommunity, t.RemovePost, t.TransferCommunity, t.VerifyEmail,
	}
}

// PutTable holds the PUT endpoints.
type PutTable struct {
	ApproveRegistrationApplication Endpoint
	ChangePassword                 Endpoint
	EditComment                    Endpoint
	EditCommunity                  Endpoint
	EditCustomEmoji                Endpoint
	EditPost                       Endpoint
	EditPrivateMessage             Endpoint
	EditSite                       Endpoint
	ResolveCommentReport           Endpoint
	ResolvePostReport              Endpoint
	ResolvePrivateMessageReport    Endpoint
	SaveComment                    Endpoint
	SavePost                       Endpoint
	SaveUserSettings               Endpoint
}

var putOps = PutTable{
	ApproveRegistrationApplication: put("admin/registration_application/approve"),
	ChangePassword:                 put("user/change_password"),
	EditComment:                    put("comment"),
	EditCommunity:                  put("community"),
	EditCustomEmoji:                put("custom_emoji"),
	EditPost:                       put("post"),
	EditPrivateMessage:             put("private_message"),
	EditSite:                       put("site"),
	ResolveCommentReport:           put("comment/report/resolve"),
	ResolvePostReport:              put("post/report/resolve"),
	ResolvePrivateMessageReport:    put("private_message/report/resolve"),
	SaveComment:                    put("comment/save"),
	SavePost:                       put("post/save"),
	SaveUserSettings:               put("user/save_user_settings"),
}

func (t PutTable) all() []Endpoint {
	return []Endpoint{
		t.ApproveRegistrationApplication, t.ChangePassword, t.EditComment, t.EditCommunity,
		t.EditCustomEmoji, t.EditPost, t.EditPrivateMessage, t.EditSite, t.ResolveCommentReport,
		t.ResolvePostReport, t.ResolvePrivateMessageReport, t.SaveComment, t.SavePost,
		t.SaveUserSettings,
	}
}

// GetOps returns the GET table. The registry is fixed at init; callers
// receive a copy.
func GetOps() GetTable { return getOps }

// PostOps returns the POST table.
func PostOps() PostTable { return postOps }

// PutOps returns the PUT table.
func PutOps() PutTable { return putOps }

// GetEndpoints lists the GET table.
func GetEndpoints() []Endpoint { return getOps.all() }

// PostEndpoints lists the POST table.
func PostEndpoints() []Endpoint { return postOps.all() }

// PutEndpoints lists the PUT table.
func PutEndpoints() []Endpoint { return putOps.all() }

// Endpoints returns every registered endpoint, GET first, then POST, then PUT.
func Endpoints() []Endpoint {
	all := getOps.all()
	all = append(all, postOps.all()...)
	return append(all, putOps.all()...)
}

// LookupEndpoint finds a registered endpoint by verb and path. It is meant
// for tooling such as the CLI; code should use the tables directly.
func LookupEndpoint(method, path string) (Endpoint, bool) {
	for _, e := range Endpoints() {
		if e.method == method && e.path == path {
			return e, true
		}
	}
	return Endpoint{}, false
}
