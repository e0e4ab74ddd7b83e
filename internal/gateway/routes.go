package gateway

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/birbparty/perch/internal/instance"
	"github.com/birbparty/perch/internal/telemetry"
)

// NewApp builds the fiber app with middleware and routes installed.
// gatherer backs the metrics route; metrics may be nil.
func NewApp(cfg *Config, handler *Handler, details *instance.Details, metrics *telemetry.HTTPMetrics, gatherer prometheus.Gatherer) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "perch-api",
		ErrorHandler:          ErrorHandler,
		ReadTimeout:           cfg.RequestTimeout,
		WriteTimeout:          cfg.RequestTimeout,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: true,
	})

	SetupMiddleware(app, cfg, details, metrics)
	SetupRoutes(app, cfg, handler, gatherer)
	return app
}

// SetupRoutes configures all gateway routes
func SetupRoutes(app *fiber.App, cfg *Config, handler *Handler, gatherer prometheus.Gatherer) {
	app.Get("/healthz", handler.Health)
	if gatherer != nil {
		app.Get(cfg.MetricsPath, telemetry.PrometheusHandler(gatherer))
	}

	api := app.Group("/api")
	api.Get("/instance", handler.Instance)
	api.Get("/feed", handler.Feed)
	api.Get("/sidebar", handler.Sidebar)
	api.Get("/post/:id", handler.Post)
	api.Get("/communities", handler.Communities)
	api.Get("/trending", handler.Trending)
	api.Get("/modlog", handler.Modlog)
	api.Get("/instances", handler.Instances)
	api.Get("/search", handler.Search)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(
			NewErrorResponse("Endpoint not found", ErrCodeNotFound),
		)
	})
}
