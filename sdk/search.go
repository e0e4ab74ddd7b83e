package sdk

// Search runs a full-text query. Q is required.
type Search struct {
	Q             string       `json:"q"`
	CommunityID   *int32       `json:"community_id,omitempty"`
	CommunityName *string      `json:"community_name,omitempty"`
	CreatorID     *int32       `json:"creator_id,omitempty"`
	Type          *SearchType  `json:"type_,omitempty"`
	Sort          *SortType    `json:"sort,omitempty"`
	ListingType   *ListingType `json:"listing_type,omitempty"`
	Page          *int32       `json:"page,omitempty"`
	Limit         *int32       `json:"limit,omitempty"`
	Auth          *string      `json:"auth,omitempty"`
}

// SearchResponse is the reply to Search. Only the lists matching Type are
// populated.
type SearchResponse struct {
	Type        SearchType      `json:"type_"`
	Comments    []CommentView   `json:"comments"`
	Posts       []PostView      `json:"posts"`
	Communities []CommunityView `json:"communities"`
	Users       []PersonView    `json:"users"`
}

// ResolveObject fetches a federated object by its URL or handle.
type ResolveObject struct {
	Q    string  `json:"q"`
	Auth *string `json:"auth,omitempty"`
}

// ResolveObjectResponse holds whichever kind of object Q resolved to.
type ResolveObjectResponse struct {
	Comment   *CommentView   `json:"comment,omitempty"`
	Post      *PostView      `json:"post,omitempty"`
	Community *CommunityView `json:"community,omitempty"`
	Person    *PersonView    `json:"person,omitempty"`
}
