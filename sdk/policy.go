package sdk

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// Presence is the effective optionality of a response field.
type Presence int

const (
	// Declared keeps the optionality the record declares.
	Declared Presence = iota
	// Optional lets the field be absent or null.
	Optional
	// Mandatory makes absence or null a decode error.
	Mandatory
)

// FieldPolicy overrides the declared optionality of response record fields.
// Keys have the form "<Type>.<json_field>", e.g. "PostView.my_vote". It
// exists because instances run different Lemmy releases and a field one
// release always sends may be missing on another.
//
// A FieldPolicy is safe for concurrent use.
//
// Example:
//
//	policy := sdk.NewFieldPolicy()
//	if err := policy.Relax("LocalSite.reports_email_admins"); err != nil {
//	    log.Fatal(err)
//	}
type FieldPolicy struct {
	mu        sync.RWMutex
	overrides map[string]Presence
}

// NewFieldPolicy returns an empty policy.
func NewFieldPolicy() *FieldPolicy {
	return &FieldPolicy{overrides: make(map[string]Presence)}
}

// Relax marks a field optional.
func (p *FieldPolicy) Relax(key string) error { return p.set(key, Optional) }

// Require marks a field mandatory.
func (p *FieldPolicy) Require(key string) error { return p.set(key, Mandatory) }

func (p *FieldPolicy) set(key string, presence Presence) error {
	if !KnownField(key) {
		return fmt.Errorf("%w: unknown response field %q", ErrInvalidConfig, key)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.overrides[key] = presence
	return nil
}

// Mandatory reports whether typeName.field must be present, given the
// record's own declaration. A nil policy returns declared.
func (p *FieldPolicy) Mandatory(typeName, field string, declared bool) bool {
	if p == nil {
		return declared
	}
	p.mu.RLock()
	presence := p.overrides[typeName+"."+field]
	p.mu.RUnlock()
	switch presence {
	case Optional:
		return false
	case Mandatory:
		return true
	}
	return declared
}

// Overrides lists the configured keys, sorted, with their presence.
func (p *FieldPolicy) Overrides() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]string, 0, len(p.overrides))
	for k, v := range p.overrides {
		mark := "optional"
		if v == Mandatory {
			mark = "mandatory"
		}
		out = append(out, k+"="+mark)
	}
	sort.Strings(out)
	return out
}

// schemaRoots are the records reachable from the wire. Every struct nested
// in them is part of the schema too.
var schemaRoots = []any{
	GetPostResponse{}, GetPostsResponse{}, PostResponse{}, GetSiteMetadataResponse{},
	GetCommentsResponse{}, CommentResponse{}, GetRepliesResponse{}, CommentReplyResponse{},
	GetCommunityResponse{}, ListCommunitiesResponse{}, CommunityResponse{},
	BlockCommunityResponse{}, AddModToCommunityResponse{}, BanFromCommunityResponse{},
	GetPersonDetailsResponse{}, GetPersonMentionsResponse{}, PersonMentionResponse{},
	BlockPersonResponse{}, BanPersonResponse{}, BannedPersonsResponse{}, LoginResponse{},
	GetCaptchaResponse{}, GetUnreadCountResponse{}, GetReportCountResponse{},
	GetSiteResponse{}, SiteResponse{}, AddAdminResponse{}, CustomEmojiResponse{},
	DeleteCustomEmojiResponse{}, GetModlogResponse{}, PurgeItemResponse{},
	CommentReportResponse{}, ListCommentReportsResponse{}, PostReportResponse{},
	ListPostReportsResponse{}, PrivateMessageReportResponse{},
	ListPrivateMessageReportsResponse{}, ListRegistrationApplicationsResponse{},
	RegistrationApplicationResponse{}, GetUnreadRegistrationApplicationCountResponse{},
	PrivateMessagesResponse{}, PrivateMessageResponse{}, GetFederatedInstancesResponse{},
	SearchResponse{}, ResolveObjectResponse{},
}

var (
	schemaOnce   sync.Once
	schemaFields map[string]bool
)

// KnownField reports whether key names a field of a response record.
func KnownField(key string) bool {
	schemaOnce.Do(func() {
		schemaFields = make(map[string]bool)
		seen := make(map[reflect.Type]bool)
		for _, r := range schemaRoots {
			collectFields(reflect.TypeOf(r), seen)
		}
	})
	return schemaFields[key]
}

func collectFields(t reflect.Type, seen map[reflect.Type]bool) {
	t = indirectType(t)
	if t.Kind() != reflect.Struct || seen[t] {
		return
	}
	seen[t] = true
	for _, f := range fieldsOf(t) {
		schemaFields[t.Name()+"."+f.key] = true
		collectFields(f.typ, seen)
	}
}

func indirectType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	return t
}

// fieldInfo describes one JSON-mapped struct field.
type fieldInfo struct {
	key      string
	typ      reflect.Type
	optional bool
}

var fieldCache sync.Map // reflect.Type -> []fieldInfo

func fieldsOf(t reflect.Type) []fieldInfo {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]fieldInfo)
	}
	fields := make([]fieldInfo, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = sf.Name
		}
		fields = append(fields, fieldInfo{
			key:      name,
			typ:      sf.Type,
			optional: strings.Contains(opts, "omitempty"),
		})
	}
	actual, _ := fieldCache.LoadOrStore(t, fields)
	return actual.([]fieldInfo)
}
