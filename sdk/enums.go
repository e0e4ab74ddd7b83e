package sdk

import (
	"fmt"
)

// enumTable maps the variants of one enumeration to their wire literals.
// Variants are declared with iota, so the variant value is the index into
// wire.
type enumTable[E ~int] struct {
	name    string
	wire    []string
	reverse map[string]E
}

// newEnumTable builds the table and panics if two variants share a wire
// literal. Tables are package-level, so a bad table fails at init.
func newEnumTable[E ~int](name string, wire ...string) *enumTable[E] {
	reverse := make(map[string]E, len(wire))
	for i, w := range wire {
		if w == "" {
			panic(fmt.Sprintf("sdk: %s variant %d has an empty wire literal", name, i))
		}
		if prev, dup := reverse[w]; dup {
			panic(fmt.Sprintf("sdk: %s variants %d and %d share wire literal %q", name, prev, i, w))
		}
		reverse[w] = E(i)
	}
	return &enumTable[E]{name: name, wire: wire, reverse: reverse}
}

func (t *enumTable[E]) valid(e E) bool {
	return int(e) >= 0 && int(e) < len(t.wire)
}

func (t *enumTable[E]) toWire(e E) string {
	if !t.valid(e) {
		return fmt.Sprintf("%s(%d)", t.name, int(e))
	}
	return t.wire[e]
}

func (t *enumTable[E]) parse(s string) (E, bool) {
	e, ok := t.reverse[s]
	return e, ok
}

func (t *enumTable[E]) marshal(e E) ([]byte, error) {
	if !t.valid(e) {
		return nil, fmt.Errorf("invalid %s value %d", t.name, int(e))
	}
	return []byte(t.wire[e]), nil
}

func (t *enumTable[E]) unmarshal(b []byte) (E, error) {
	e, ok := t.reverse[string(b)]
	if !ok {
		return 0, fmt.Errorf("unknown %s %q", t.name, string(b))
	}
	return e, nil
}

func (t *enumTable[E]) values() []E {
	out := make([]E, len(t.wire))
	for i := range t.wire {
		out[i] = E(i)
	}
	return out
}

// SortType orders post listings.
type SortType int

const (
	SortActive SortType = iota
	SortHot
	SortNew
	SortOld
	SortTopDay
	SortTopWeek
	SortTopMonth
	SortTopYear
	SortTopAll
	SortMostComments
	SortNewComments
	SortTopHour
	SortTopSixHour
	SortTopTwelveHour
	SortTopThreeMonths
	SortTopSixMonths
	SortTopNineMonths
)

var sortTypes = newEnumTable[SortType]("SortType",
	"Active", "Hot", "New", "Old",
	"TopDay", "TopWeek", "TopMonth", "TopYear", "TopAll",
	"MostComments", "NewComments",
	"TopHour", "TopSixHour", "TopTwelveHour",
	"TopThreeMonths", "TopSixMonths", "TopNineMonths",
)

// ParseSortType returns the variant for a wire literal.
func ParseSortType(s string) (SortType, bool) { return sortTypes.parse(s) }

// SortTypeValues lists every variant in declaration order.
func SortTypeValues() []SortType { return sortTypes.values() }

func (s SortType) String() string                { return sortTypes.toWire(s) }
func (s SortType) MarshalText() ([]byte, error)  { return sortTypes.marshal(s) }
func (s *SortType) UnmarshalText(b []byte) error { return unmarshalEnum(sortTypes, s, b) }

// CommentSortType orders comment trees.
type CommentSortType int

const (
	CommentSortHot CommentSortType = iota
	CommentSortTop
	CommentSortNew
	CommentSortOld
)

var commentSortTypes = newEnumTable[CommentSortType]("CommentSortType", "Hot", "Top", "New", "Old")

// ParseCommentSortType returns the variant for a wire literal.
func ParseCommentSortType(s string) (CommentSortType, bool) { return commentSortTypes.parse(s) }

// CommentSortTypeValues lists every variant in declaration order.
func CommentSortTypeValues() []CommentSortType { return commentSortTypes.values() }

func (s CommentSortType) String() string                { return commentSortTypes.toWire(s) }
func (s CommentSortType) MarshalText() ([]byte, error)  { return commentSortTypes.marshal(s) }
func (s *CommentSortType) UnmarshalText(b []byte) error { return unmarshalEnum(commentSortTypes, s, b) }

// ListingType scopes a listing to all, local or subscribed content.
type ListingType int

const (
	ListingAll ListingType = iota
	ListingLocal
	ListingSubscribed
)

var listingTypes = newEnumTable[ListingType]("ListingType", "All", "Local", "Subscribed")

// ParseListingType returns the variant for a wire literal.
func ParseListingType(s string) (ListingType, bool) { return listingTypes.parse(s) }

// ListingTypeValues lists every variant in declaration order.
func ListingTypeValues() []ListingType { return listingTypes.values() }

func (l ListingType) String() string                { return listingTypes.toWire(l) }
func (l ListingType) MarshalText() ([]byte, error)  { return listingTypes.marshal(l) }
func (l *ListingType) UnmarshalText(b []byte) error { return unmarshalEnum(listingTypes, l, b) }

// ModlogActionType filters the moderation log.
type ModlogActionType int

const (
	ModlogAll ModlogActionType = iota
	ModlogModRemovePost
	ModlogModLockPost
	ModlogModFeaturePost
	ModlogModRemoveComment
	ModlogModRemoveCommunity
	ModlogModBanFromCommunity
	ModlogModAddCommunity
	ModlogModTransferCommunity
	ModlogModAdd
	ModlogModBan
	ModlogModHideCommunity
	ModlogAdminPurgePerson
	ModlogAdminPurgeCommunity
	ModlogAdminPurgePost
	ModlogAdminPurgeComment
)

var modlogActionTypes = newEnumTable[ModlogActionType]("ModlogActionType",
	"All",
	"ModRemovePost", "ModLockPost", "ModFeaturePost",
	"ModRemoveComment", "ModRemoveCommunity",
	"ModBanFromCommunity", "ModAddCommunity", "ModTransferCommunity",
	"ModAdd", "ModBan", "ModHideCommunity",
	"AdminPurgePerson", "AdminPurgeCommunity", "AdminPurgePost", "AdminPurgeComment",
)

// ParseModlogActionType returns the variant for a wire literal.
func ParseModlogActionType(s string) (ModlogActionType, bool) { return modlogActionTypes.parse(s) }

// ModlogActionTypeValues lists every variant in declaration order.
func ModlogActionTypeValues() []ModlogActionType { return modlogActionTypes.values() }

func (m ModlogActionType) String() string               { return modlogActionTypes.toWire(m) }
func (m ModlogActionType) MarshalText() ([]byte, error) { return modlogActionTypes.marshal(m) }
func (m *ModlogActionType) UnmarshalText(b []byte) error {
	return unmarshalEnum(modlogActionTypes, m, b)
}

// PostFeatureType says where a post is pinned.
type PostFeatureType int

const (
	FeatureLocal PostFeatureType = iota
	FeatureCommunity
)

var postFeatureTypes = newEnumTable[PostFeatureType]("PostFeatureType", "Local", "Community")

// ParsePostFeatureType returns the variant for a wire literal.
func ParsePostFeatureType(s string) (PostFeatureType, bool) { return postFeatureTypes.parse(s) }

// PostFeatureTypeValues lists every variant in declaration order.
func PostFeatureTypeValues() []PostFeatureType { return postFeatureTypes.values() }

func (p PostFeatureType) String() string                { return postFeatureTypes.toWire(p) }
func (p PostFeatureType) MarshalText() ([]byte, error)  { return postFeatureTypes.marshal(p) }
func (p *PostFeatureType) UnmarshalText(b []byte) error { return unmarshalEnum(postFeatureTypes, p, b) }

// RegistrationMode controls sign-ups on an instance.
type RegistrationMode int

const (
	RegistrationClosed RegistrationMode = iota
	RegistrationRequireApplication
	RegistrationOpen
)

var registrationModes = newEnumTable[RegistrationMode]("RegistrationMode", "Closed", "RequireApplication", "Open")

// ParseRegistrationMode returns the variant for a wire literal.
func ParseRegistrationMode(s string) (RegistrationMode, bool) { return registrationModes.parse(s) }

// RegistrationModeValues lists every variant in declaration order.
func RegistrationModeValues() []RegistrationMode { return registrationModes.values() }

func (r RegistrationMode) String() string               { return registrationModes.toWire(r) }
func (r RegistrationMode) MarshalText() ([]byte, error) { return registrationModes.marshal(r) }
func (r *RegistrationMode) UnmarshalText(b []byte) error {
	return unmarshalEnum(registrationModes, r, b)
}

// SearchType restricts search results to one kind of object.
type SearchType int

const (
	SearchAll SearchType = iota
	SearchComments
	SearchPosts
	SearchCommunities
	SearchUsers
	SearchURL
)

var searchTypes = newEnumTable[SearchType]("SearchType", "All", "Comments", "Posts", "Communities", "Users", "Url")

// ParseSearchType returns the variant for a wire literal.
func ParseSearchType(s string) (SearchType, bool) { return searchTypes.parse(s) }

// SearchTypeValues lists every variant in declaration order.
func SearchTypeValues() []SearchType { return searchTypes.values() }

func (s SearchType) String() string                { return searchTypes.toWire(s) }
func (s SearchType) MarshalText() ([]byte, error)  { return searchTypes.marshal(s) }
func (s *SearchType) UnmarshalText(b []byte) error { return unmarshalEnum(searchTypes, s, b) }

// SubscribedType is the viewer's subscription state for a community.
type SubscribedType int

const (
	Subscribed SubscribedType = iota
	NotSubscribed
	SubscriptionPending
)

var subscribedTypes = newEnumTable[SubscribedType]("SubscribedType", "Subscribed", "NotSubscribed", "Pending")

// ParseSubscribedType returns the variant for a wire literal.
func ParseSubscribedType(s string) (SubscribedType, bool) { return subscribedTypes.parse(s) }

// SubscribedTypeValues lists every variant in declaration order.
func SubscribedTypeValues() []SubscribedType { return subscribedTypes.values() }

func (s SubscribedType) String() string                { return subscribedTypes.toWire(s) }
func (s SubscribedType) MarshalText() ([]byte, error)  { return subscribedTypes.marshal(s) }
func (s *SubscribedType) UnmarshalText(b []byte) error { return unmarshalEnum(subscribedTypes, s, b) }

func unmarshalEnum[E ~int](t *enumTable[E], dst *E, b []byte) error {
	e, err := t.unmarshal(b)
	if err != nil {
		return err
	}
	*dst = e
	return nil
}

// wireEnum is satisfied by every enumeration above. The query encoder uses
// it to emit wire literals instead of integers.
type wireEnum interface {
	fmt.Stringer
	MarshalText() ([]byte, error)
}
