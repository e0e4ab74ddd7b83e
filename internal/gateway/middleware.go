package gateway

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/birbparty/perch/internal/instance"
	"github.com/birbparty/perch/internal/telemetry"
)

// SetupMiddleware configures all middleware for the application. Logging
// and metrics sit outside recover.
func SetupMiddleware(app *fiber.App, cfg *Config, details *instance.Details, metrics *telemetry.HTTPMetrics) {
	// Request ID middleware
	app.Use(requestid.New())

	app.Use(telemetry.FiberLoggingMiddleware())

	if metrics != nil {
		app.Use(metrics.Middleware())
	}

	// Recover middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORSOrigins, ","),
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Use(instanceContext(details))

	// Custom error handler
	app.Use(errorHandler())

	// Timing middleware
	app.Use(timingMiddleware())
}

// instanceContext attaches the instance details to every request context
func instanceContext(details *instance.Details) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if details != nil {
			c.SetUserContext(instance.WithDetails(c.UserContext(), details))
		}
		return c.Next()
	}
}

// ErrorHandler renders err as a JSON ErrorResponse. It is used both as the
// app error handler and by the error middleware.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	errCode := ErrCodeInternalError
	switch code {
	case fiber.StatusNotFound:
		errCode = ErrCodeNotFound
	case fiber.StatusBadRequest:
		errCode = ErrCodeInvalidRequest
	case fiber.StatusBadGateway:
		errCode = ErrCodeUpstream
	}

	return c.Status(code).JSON(NewErrorResponse(message, errCode))
}

// errorHandler creates a custom error handling middleware
func errorHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			return ErrorHandler(c, err)
		}
		return nil
	}
}

// timingMiddleware adds request timing headers
func timingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		c.Set("X-Response-Time", fmt.Sprintf("%d ms", time.Since(start).Milliseconds()))
		return err
	}
}
