package gateway

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/birbparty/perch/internal/instance"
	"github.com/birbparty/perch/internal/telemetry"
	"github.com/birbparty/perch/sdk"
)

// Listing sizes used by the directory and sidebar routes
const (
	communitiesPageSize = 50
	trendingSize        = 10
)

// HealthChecker is anything that can report its own health
type HealthChecker interface {
	Health() error
}

// Handler serves the gateway routes from one Lemmy client
type Handler struct {
	client  *sdk.Client
	timeout time.Duration
	started time.Time

	mu     sync.RWMutex
	checks map[string]HealthChecker
}

// NewHandler creates a new handler instance. timeout bounds every upstream
// call; zero leaves it to the client.
func NewHandler(client *sdk.Client, timeout time.Duration) *Handler {
	return &Handler{
		client:  client,
		timeout: timeout,
		started: time.Now(),
		checks:  make(map[string]HealthChecker),
	}
}

// AddHealthCheck registers a dependency reported by /healthz
func (h *Handler) AddHealthCheck(name string, hc HealthChecker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checks[name] = hc
}

func (h *Handler) upstreamContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.UserContext())
	}
	return context.WithTimeout(c.UserContext(), h.timeout)
}

// upstreamError logs a failed Lemmy call and hides its details from the
// caller.
func (h *Handler) upstreamError(ctx context.Context, op string, err error) error {
	telemetry.WithContext(ctx).WithError(err).WithFields(logrus.Fields{
		"op":         op,
		"error_type": sdk.TypeOf(err).String(),
		"instance":   instance.NameFromContext(ctx),
	}).Error("Lemmy request failed")
	return fiber.NewError(fiber.StatusBadGateway, msgFailedToLoad)
}

func pageParam(c *fiber.Ctx) (int32, error) {
	raw := c.Query("page")
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || n < 1 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "page must be a positive integer")
	}
	return int32(n), nil
}

func sourceParam(c *fiber.Ctx) (sdk.Source, error) {
	src, err := sdk.ParseSource(c.Query("source"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return src, nil
}

// Health handles GET /healthz
func (h *Handler) Health(c *fiber.Ctx) error {
	h.mu.RLock()
	checks := make(map[string]string, len(h.checks))
	status := "healthy"
	for name, hc := range h.checks {
		if err := hc.Health(); err != nil {
			checks[name] = "unhealthy: " + err.Error()
			status = "unhealthy"
		} else {
			checks[name] = "healthy"
		}
	}
	h.mu.RUnlock()

	code := fiber.StatusOK
	if status != "healthy" {
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(&HealthResponse{
		Status:   status,
		Service:  "perch-api",
		Version:  "1.0.0",
		Uptime:   time.Since(h.started).Round(time.Second).String(),
		Instance: instance.NameFromContext(c.UserContext()),
		Checks:   checks,
	})
}

// Instance handles GET /api/instance
func (h *Handler) Instance(c *fiber.Ctx) error {
	details, ok := instance.FromContext(c.UserContext())
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "instance details not configured")
	}
	return c.JSON(details)
}

// Feed handles GET /api/feed
func (h *Handler) Feed(c *fiber.Ctx) error {
	src, err := sourceParam(c)
	if err != nil {
		return err
	}
	page, err := pageParam(c)
	if err != nil {
		return err
	}

	ctx, cancel := h.upstreamContext(c)
	defer cancel()

	posts, err := h.client.LoadFeed(ctx, src, page)
	if err != nil {
		return h.upstreamError(ctx, "feed", err)
	}
	if posts == nil {
		posts = []sdk.PostView{}
	}

	return c.JSON(&FeedResponse{Source: src.String(), Page: page, Posts: posts})
}

// Sidebar handles GET /api/sidebar
func (h *Handler) Sidebar(c *fiber.Ctx) error {
	src, err := sourceParam(c)
	if err != nil {
		return err
	}

	ctx, cancel := h.upstreamContext(c)
	defer cancel()

	sidebar, err := h.client.LoadSidebar(ctx, src)
	if err != nil {
		return h.upstreamError(ctx, "sidebar", err)
	}
	return c.JSON(sidebar)
}

// Post handles GET /api/post/:id. The post and its comments are fetched
// concurrently; either failing fails the page.
func (h *Handler) Post(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 32)
	if err != nil || id < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "post id must be a positive integer")
	}
	postID := int32(id)

	ctx, cancel := h.upstreamContext(c)
	defer cancel()

	var (
		wg          sync.WaitGroup
		post        *sdk.GetPostResponse
		comments    *sdk.GetCommentsResponse
		postErr     error
		commentsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		post, postErr = h.client.GetPost(ctx, h.client.BuildURL(sdk.GetOps().Post, sdk.GetPost{ID: &postID}))
	}()
	go func() {
		defer wg.Done()
		comments, commentsErr = h.client.GetComments(ctx, h.client.BuildURL(sdk.GetOps().CommentList, sdk.GetComments{PostID: &postID}))
	}()
	wg.Wait()

	if postErr != nil {
		return h.upstreamError(ctx, "post", postErr)
	}
	if commentsErr != nil {
		return h.upstreamError(ctx, "comments", commentsErr)
	}

	resp := &PostPageResponse{Post: post, Comments: comments.Comments}
	if resp.Comments == nil {
		resp.Comments = []sdk.CommentView{}
	}
	return c.JSON(resp)
}

// Communities handles GET /api/communities
func (h *Handler) Communities(c *fiber.Ctx) error {
	page, err := pageParam(c)
	if err != nil {
		return err
	}

	ctx, cancel := h.upstreamContext(c)
	defer cancel()

	resp, err := h.client.ListCommunities(ctx, h.client.BuildURL(sdk.GetOps().CommunityList, sdk.ListCommunities{
		Type:  sdk.Ptr(sdk.ListingLocal),
		Sort:  sdk.Ptr(sdk.SortTopMonth),
		Page:  &page,
		Limit: sdk.Ptr[int32](communitiesPageSize),
	}))
	if err != nil {
		return h.upstreamError(ctx, "communities", err)
	}

	out := &CommunitiesResponse{Page: page, Communities: resp.Communities}
	if out.Communities == nil {
		out.Communities = []sdk.CommunityView{}
	}
	return c.JSON(out)
}

// Trending handles GET /api/trending
func (h *Handler) Trending(c *fiber.Ctx) error {
	ctx, cancel := h.upstreamContext(c)
	defer cancel()

	resp, err := h.client.ListCommunities(ctx, h.client.BuildURL(sdk.GetOps().CommunityList, sdk.ListCommunities{
		Type:  sdk.Ptr(sdk.ListingLocal),
		Sort:  sdk.Ptr(sdk.SortTopMonth),
		Page:  sdk.Ptr[int32](1),
		Limit: sdk.Ptr[int32](trendingSize),
	}))
	if err != nil {
		return h.upstreamError(ctx, "trending", err)
	}
	return c.JSON(resp)
}

// Modlog handles GET /api/modlog
func (h *Handler) Modlog(c *fiber.Ctx) error {
	page, err := pageParam(c)
	if err != nil {
		return err
	}

	ctx, cancel := h.upstreamContext(c)
	defer cancel()

	resp, err := h.client.GetModlog(ctx, h.client.BuildURL(sdk.GetOps().Modlog, sdk.GetModlog{Page: &page}))
	if err != nil {
		return h.upstreamError(ctx, "modlog", err)
	}
	return c.JSON(resp)
}

// Instances handles GET /api/instances
func (h *Handler) Instances(c *fiber.Ctx) error {
	ctx, cancel := h.upstreamContext(c)
	defer cancel()

	resp, err := h.client.GetFederatedInstances(ctx, h.client.BuildURL(sdk.GetOps().FederatedInstances, sdk.GetFederatedInstances{}))
	if err != nil {
		return h.upstreamError(ctx, "instances", err)
	}
	return c.JSON(resp)
}

// Search handles GET /api/search
func (h *Handler) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return fiber.NewError(fiber.StatusBadRequest, "q is required")
	}

	form := sdk.Search{Q: q}
	if raw := c.Query("type"); raw != "" {
		typ, ok := sdk.ParseSearchType(raw)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "unknown search type "+strconv.Quote(raw))
		}
		form.Type = &typ
	}
	if c.Query("page") != "" {
		page, err := pageParam(c)
		if err != nil {
			return err
		}
		form.Page = &page
	}

	ctx, cancel := h.upstreamContext(c)
	defer cancel()

	resp, err := h.client.Search(ctx, h.client.BuildURL(sdk.GetOps().Search, form))
	if err != nil {
		return h.upstreamError(ctx, "search", err)
	}
	return c.JSON(resp)
}
