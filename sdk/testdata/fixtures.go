// Package testdata provides a stub Lemmy instance and JSON fixtures shared
// by the tests of the client, the gateway and the command line tool.
package testdata

import (
	"encoding/json"
	"strconv"
)

// Object is a JSON object under construction.
type Object = map[string]any

// Published is the timestamp stamped on every fixture.
const Published = "2023-06-01T12:00:00.000000"

// Instance is the domain fixtures pretend to live on.
const Instance = "lemmy.test"

// Person returns a local, unbanned account with every mandatory field.
func Person(id int32, name string) Object {
	return Object{
		"id":          id,
		"name":        name,
		"banned":      false,
		"published":   Published,
		"actor_id":    "https://" + Instance + "/u/" + name,
		"local":       true,
		"deleted":     false,
		"admin":       false,
		"bot_account": false,
		"instance_id": 1,
	}
}

// PersonView wraps Person with counters.
func PersonView(id int32, name string) Object {
	return Object{
		"person": Person(id, name),
		"counts": Object{
			"id":            id,
			"person_id":     id,
			"post_count":    12,
			"post_score":    340,
			"comment_count": 56,
			"comment_score": 789,
		},
	}
}

// Community returns a local public community.
func Community(id int32, name string) Object {
	return Object{
		"id":                         id,
		"name":                       name,
		"title":                      "The " + name + " community",
		"description":                "All about " + name,
		"removed":                    false,
		"published":                  Published,
		"deleted":                    false,
		"nsfw":                       false,
		"actor_id":                   "https://" + Instance + "/c/" + name,
		"local":                      true,
		"hidden":                     false,
		"posting_restricted_to_mods": false,
		"instance_id":                1,
	}
}

// CommunityView wraps Community with counters.
func CommunityView(id int32, name string) Object {
	return Object{
		"community":  Community(id, name),
		"subscribed": "NotSubscribed",
		"blocked":    false,
		"counts": Object{
			"id":                     id,
			"community_id":           id,
			"subscribers":            1234,
			"posts":                  56,
			"comments":               789,
			"published":              Published,
			"users_active_day":       5,
			"users_active_week":      20,
			"users_active_month":     80,
			"users_active_half_year": 300,
			"hot_rank":               1728,
		},
	}
}

// Post returns a text post by person 1 in community id.
func Post(id int32, name string, communityID int32) Object {
	return Object{
		"id":                 id,
		"name":               name,
		"body":               "Body of " + name,
		"creator_id":         1,
		"community_id":       communityID,
		"removed":            false,
		"locked":             false,
		"published":          Published,
		"deleted":            false,
		"nsfw":               false,
		"ap_id":              "https://" + Instance + "/post/" + itoa(id),
		"local":              true,
		"language_id":        0,
		"featured_community": false,
		"featured_local":     false,
	}
}

// PostView returns a post in the named community with counters.
func PostView(id int32, name, community string) Object {
	return Object{
		"post":                          Post(id, name, 1),
		"creator":                       Person(1, "alice"),
		"community":                     Community(1, community),
		"creator_banned_from_community": false,
		"counts": Object{
			"id":                        id,
			"post_id":                   id,
			"comments":                  2,
			"score":                     42,
			"upvotes":                   45,
			"downvotes":                 3,
			"published":                 Published,
			"newest_comment_time_necro": Published,
			"newest_comment_time":       Published,
			"featured_community":        false,
			"featured_local":            false,
			"hot_rank":                  1500,
			"hot_rank_active":           1500,
		},
		"subscribed":      "NotSubscribed",
		"saved":           false,
		"read":            false,
		"creator_blocked": false,
		"unread_comments": 0,
	}
}

// PostResponse is the GetPost reply for one post.
func PostResponse(id int32, name, community string) Object {
	return Object{
		"post_view":      PostView(id, name, community),
		"community_view": CommunityView(1, community),
		"moderators": []Object{
			{"community": Community(1, community), "moderator": Person(1, "alice")},
		},
		"cross_posts": []Object{},
	}
}

// CommentView returns a comment on postID by person 2.
func CommentView(id, postID int32, path, content string) Object {
	return Object{
		"comment": Object{
			"id":            id,
			"creator_id":    2,
			"post_id":       postID,
			"content":       content,
			"removed":       false,
			"published":     Published,
			"deleted":       false,
			"ap_id":         "https://" + Instance + "/comment/" + itoa(id),
			"local":         true,
			"path":          path,
			"distinguished": false,
			"language_id":   0,
		},
		"creator":   Person(2, "bob"),
		"post":      Post(postID, "First post", 1),
		"community": Community(1, "main"),
		"counts": Object{
			"id":          id,
			"comment_id":  id,
			"score":       7,
			"upvotes":     8,
			"downvotes":   1,
			"published":   Published,
			"child_count": 0,
			"hot_rank":    900,
		},
		"creator_banned_from_community": false,
		"subscribed":                    "NotSubscribed",
		"saved":                         false,
		"creator_blocked":               false,
	}
}

// CommunityResponse is the GetCommunity reply for name.
func CommunityResponse(name string) Object {
	return Object{
		"community_view": CommunityView(1, name),
		"moderators": []Object{
			{"community": Community(1, name), "moderator": Person(1, "alice")},
		},
		"discussion_languages": []int{0, 37},
	}
}

// PersonDetailsResponse is the GetPersonDetails reply for name, with one
// post and one comment.
func PersonDetailsResponse(name string) Object {
	return Object{
		"person_view": PersonView(1, name),
		"comments":    []Object{CommentView(10, 1, "0.10", "Nice post")},
		"posts":       []Object{PostView(1, "First post", "main")},
		"moderates":   []Object{},
	}
}

// SiteView returns the instance description.
func SiteView() Object {
	return Object{
		"site": Object{
			"id":                1,
			"name":              "Lemmy Test",
			"sidebar":           "Welcome to the test instance",
			"published":         Published,
			"description":       "A place for tests",
			"actor_id":          "https://" + Instance + "/",
			"last_refreshed_at": Published,
			"inbox_url":         "https://" + Instance + "/site_inbox",
			"public_key":        "-----BEGIN PUBLIC KEY-----",
			"instance_id":       1,
		},
		"local_site": Object{
			"id":                            1,
			"site_id":                       1,
			"site_setup":                    true,
			"enable_downvotes":              true,
			"enable_nsfw":                   false,
			"community_creation_admin_only": false,
			"require_email_verification":    false,
			"private_instance":              false,
			"default_theme":                 "browser",
			"default_post_listing_type":     "Local",
			"hide_modlog_mod_names":         true,
			"application_email_admins":      false,
			"actor_name_max_length":         20,
			"federation_enabled":            true,
			"captcha_enabled":               false,
			"captcha_difficulty":            "medium",
			"published":                     Published,
			"registration_mode":             "RequireApplication",
			"reports_email_admins":          false,
		},
		"local_site_rate_limit": Object{
			"id":                  1,
			"local_site_id":       1,
			"message":             180,
			"message_per_second":  60,
			"post":                6,
			"post_per_second":     600,
			"register":            3,
			"register_per_second": 3600,
			"image":               6,
			"image_per_second":    3600,
			"comment":             6,
			"comment_per_second":  600,
			"search":              60,
			"search_per_second":   600,
			"published":           Published,
		},
		"counts": Object{
			"id":                     1,
			"site_id":                1,
			"users":                  1500,
			"posts":                  25000,
			"comments":               120000,
			"communities":            80,
			"users_active_day":       100,
			"users_active_week":      400,
			"users_active_month":     900,
			"users_active_half_year": 1300,
		},
	}
}

// SiteResponse is the anonymous GetSite reply.
func SiteResponse() Object {
	return Object{
		"site_view":            SiteView(),
		"admins":               []Object{PersonView(1, "alice")},
		"version":              "0.18.0",
		"all_languages":        []Object{{"id": 0, "code": "und", "name": "Undetermined"}, {"id": 37, "code": "en", "name": "English"}},
		"discussion_languages": []int{0, 37},
		"taglines":             []Object{},
		"custom_emojis":        []Object{},
	}
}

// ModlogResponse holds one removed post and one site ban; every other list
// is empty.
func ModlogResponse() Object {
	return Object{
		"removed_posts": []Object{{
			"mod_remove_post": Object{
				"id":            1,
				"mod_person_id": 1,
				"post_id":       2,
				"reason":        "spam",
				"removed":       true,
				"when_":         Published,
			},
			"post":      Post(2, "Buy now", 1),
			"community": Community(1, "main"),
		}},
		"locked_posts":          []Object{},
		"featured_posts":        []Object{},
		"removed_comments":      []Object{},
		"removed_communities":   []Object{},
		"banned_from_community": []Object{},
		"banned": []Object{{
			"mod_ban": Object{
				"id":              1,
				"mod_person_id":   1,
				"other_person_id": 3,
				"banned":          true,
				"when_":           Published,
			},
			"banned_person": Person(3, "spammer"),
		}},
		"added_to_community":       []Object{},
		"transferred_to_community": []Object{},
		"added":                    []Object{},
		"admin_purged_persons":     []Object{},
		"admin_purged_communities": []Object{},
		"admin_purged_posts":       []Object{},
		"admin_purged_comments":    []Object{},
		"hidden_communities":       []Object{},
	}
}

// FederatedInstancesResponse links two servers and blocks one.
func FederatedInstancesResponse() Object {
	instance := func(id int32, domain, software string) Object {
		return Object{"id": id, "domain": domain, "published": Published, "software": software}
	}
	return Object{
		"federated_instances": Object{
			"linked":  []Object{instance(2, "lemmy.ml", "lemmy"), instance(3, "mastodon.social", "mastodon")},
			"allowed": []Object{},
			"blocked": []Object{instance(4, "bad.example", "lemmy")},
		},
	}
}

// SearchResponse answers any query with one post and one community.
func SearchResponse(typ string) Object {
	return Object{
		"type_":       typ,
		"comments":    []Object{},
		"posts":       []Object{PostView(1, "First post", "main")},
		"communities": []Object{CommunityView(1, "main")},
		"users":       []Object{},
	}
}

// Without returns a copy of obj with the dotted path removed, for building
// responses that miss a mandatory field.
func Without(obj Object, path ...string) Object {
	out := clone(obj)
	cur := out
	for i, key := range path {
		if i == len(path)-1 {
			delete(cur, key)
			break
		}
		next, ok := cur[key].(Object)
		if !ok {
			break
		}
		cur = next
	}
	return out
}

// JSON encodes v, panicking on failure.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}

func clone(obj Object) Object {
	var out Object
	if err := json.Unmarshal([]byte(JSON(obj)), &out); err != nil {
		panic(err)
	}
	return out
}

func itoa(n int32) string {
	return strconv.FormatInt(int64(n), 10)
}
