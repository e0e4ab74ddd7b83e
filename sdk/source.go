package sdk

import (
	"context"
	"fmt"
	"strings"
)

// Source selects whose feed or sidebar to load. The set of sources is
// closed: HomeSource, CommunitySource and UserSource.
type Source interface {
	fmt.Stringer
	isSource()
}

// HomeSource is the instance front page.
type HomeSource struct{}

// CommunitySource is one community, by name. Remote communities use
// "name@instance".
type CommunitySource struct {
	Name string
}

// UserSource is one person, by username.
type UserSource struct {
	Username string
}

func (HomeSource) isSource()      {}
func (CommunitySource) isSource() {}
func (UserSource) isSource()      {}

func (HomeSource) String() string        { return "home" }
func (s CommunitySource) String() string { return "c/" + s.Name }
func (s UserSource) String() string      { return "u/" + s.Username }

// ParseSource accepts "home", "c/<name>" and "u/<name>".
func ParseSource(s string) (Source, error) {
	switch {
	case s == "home" || s == "":
		return HomeSource{}, nil
	case strings.HasPrefix(s, "c/") && len(s) > 2:
		return CommunitySource{Name: s[2:]}, nil
	case strings.HasPrefix(s, "u/") && len(s) > 2:
		return UserSource{Username: s[2:]}, nil
	}
	return nil, fmt.Errorf("unknown source %q: want home, c/<name> or u/<name>", s)
}

// Sidebar holds the description shown next to a feed. Exactly one field is
// set, matching the source kind.
type Sidebar struct {
	Site      *GetSiteResponse          `json:"site,omitempty"`
	Community *GetCommunityResponse     `json:"community,omitempty"`
	Person    *GetPersonDetailsResponse `json:"person,omitempty"`
}

// LoadSidebar fetches the sidebar for src: the site for home, the
// community for a community, the profile for a user.
func (c *Client) LoadSidebar(ctx context.Context, src Source) (*Sidebar, error) {
	switch s := src.(type) {
	case HomeSource:
		resp, err := c.GetSite(ctx, c.BuildURL(GetOps().Site, GetSite{}))
		if err != nil {
			return nil, err
		}
		return &Sidebar{Site: resp}, nil
	case CommunitySource:
		resp, err := c.GetCommunity(ctx, c.BuildURL(GetOps().Community, GetCommunity{Name: &s.Name}))
		if err != nil {
			return nil, err
		}
		return &Sidebar{Community: resp}, nil
	case UserSource:
		resp, err := c.GetPersonDetails(ctx, c.BuildURL(GetOps().PersonDetails, GetPersonDetails{Username: &s.Username}))
		if err != nil {
			return nil, err
		}
		return &Sidebar{Person: resp}, nil
	}
	return nil, fmt.Errorf("unsupported source %T", src)
}

// LoadFeed fetches one page of posts for src. A zero page is left to the
// server default.
func (c *Client) LoadFeed(ctx context.Context, src Source, page int32) ([]PostView, error) {
	var p *int32
	if page > 0 {
		p = &page
	}
	switch s := src.(type) {
	case HomeSource:
		resp, err := c.GetPosts(ctx, c.BuildURL(GetOps().PostList, GetPosts{Page: p}))
		if err != nil {
			return nil, err
		}
		return resp.Posts, nil
	case CommunitySource:
		resp, err := c.GetPosts(ctx, c.BuildURL(GetOps().PostList, GetPosts{CommunityName: &s.Name, Page: p}))
		if err != nil {
			return nil, err
		}
		return resp.Posts, nil
	case UserSource:
		resp, err := c.GetPersonDetails(ctx, c.BuildURL(GetOps().PersonDetails, GetPersonDetails{Username: &s.Username, Page: p}))
		if err != nil {
			return nil, err
		}
		return resp.Posts, nil
	}
	return nil, fmt.Errorf("unsupported source %T", src)
}
