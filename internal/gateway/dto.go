package gateway

import (
	"github.com/birbparty/perch/sdk"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string            `json:"status"`
	Service  string            `json:"service"`
	Version  string            `json:"version"`
	Uptime   string            `json:"uptime"`
	Instance string            `json:"instance"`
	Checks   map[string]string `json:"checks"`
}

// FeedResponse is one page of posts for a source
type FeedResponse struct {
	Source string         `json:"source"`
	Page   int32          `json:"page"`
	Posts  []sdk.PostView `json:"posts"`
}

// PostPageResponse is a post together with its comments
type PostPageResponse struct {
	Post     *sdk.GetPostResponse `json:"post"`
	Comments []sdk.CommentView    `json:"comments"`
}

// CommunitiesResponse is one page of the community directory
type CommunitiesResponse struct {
	Page        int32               `json:"page"`
	Communities []sdk.CommunityView `json:"communities"`
}

// Error codes
const (
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodeInternalError  = "INTERNAL_ERROR"
	ErrCodeUpstream       = "UPSTREAM_FAILED"
)

// msgFailedToLoad is the only detail given for upstream failures.
const msgFailedToLoad = "failed to load"

// NewErrorResponse creates a new error response
func NewErrorResponse(err string, code string) *ErrorResponse {
	return &ErrorResponse{
		Error: err,
		Code:  code,
	}
}
