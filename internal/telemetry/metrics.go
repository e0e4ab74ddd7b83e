package telemetry

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/birbparty/perch/sdk"
)

var metricsOnce sync.Once

// InitMetrics installs the OTLP meter provider when metrics export is
// enabled. Prometheus series are registered by NewClientMetrics and
// NewHTTPMetrics and need no setup here.
func InitMetrics(cfg *Config) error {
	var err error
	metricsOnce.Do(func() {
		if !cfg.EnableMetrics {
			return
		}

		ctx := context.Background()
		res, resErr := newResource(ctx, cfg)
		if resErr != nil {
			err = fmt.Errorf("failed to create resource: %w", resErr)
			return
		}

		exporter, expErr := otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(cfg.OTLPEndpoint),
			otlpmetricgrpc.WithInsecure(),
		)
		if expErr != nil {
			err = fmt.Errorf("failed to create metrics exporter: %w", expErr)
			return
		}

		provider := sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(res),
			sdkmetric.WithReader(
				sdkmetric.NewPeriodicReader(
					exporter,
					sdkmetric.WithInterval(time.Duration(cfg.MetricsInterval)*time.Second),
				),
			),
		)
		otel.SetMeterProvider(provider)
	})
	return err
}

// CloseMetrics flushes and shuts down the meter provider
func CloseMetrics(ctx context.Context) error {
	if mp, ok := otel.GetMeterProvider().(*sdkmetric.MeterProvider); ok {
		return mp.Shutdown(ctx)
	}
	return nil
}

// outcome labels a finished client request.
func outcome(err error) string {
	if err == nil {
		return "success"
	}
	return sdk.TypeOf(err).String()
}

// ClientMetrics is an sdk.Observer that exports Lemmy client activity as
// prometheus series.
type ClientMetrics struct {
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	decodeErrors *prometheus.CounterVec
	fallbacks    *prometheus.CounterVec
}

// NewClientMetrics registers the client series on reg. Registering twice
// on the same registry panics, as with promauto.
func NewClientMetrics(reg prometheus.Registerer) *ClientMetrics {
	f := promauto.With(reg)
	return &ClientMetrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "perch_lemmy_requests_total",
			Help: "Total number of Lemmy API requests",
		}, []string{"endpoint", "outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "perch_lemmy_request_duration_seconds",
			Help:    "Duration of Lemmy API requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		decodeErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "perch_lemmy_decode_errors_total",
			Help: "Responses that did not fit the expected record",
		}, []string{"type"}),
		fallbacks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "perch_lemmy_serialize_fallbacks_total",
			Help: "Request URLs built without a query string after an encoding failure",
		}, []string{"endpoint"}),
	}
}

// OnRequestStart implements sdk.Observer.
func (m *ClientMetrics) OnRequestStart(ep sdk.Endpoint, url string) {}

// OnRequestEnd implements sdk.Observer.
func (m *ClientMetrics) OnRequestEnd(ep sdk.Endpoint, url string, status int, d time.Duration, err error) {
	key := ep.String()
	m.requests.WithLabelValues(key, outcome(err)).Inc()
	m.duration.WithLabelValues(key).Observe(d.Seconds())
}

// OnDecodeError implements sdk.Observer.
func (m *ClientMetrics) OnDecodeError(ep sdk.Endpoint, err *sdk.DecodeError) {
	m.decodeErrors.WithLabelValues(err.Type).Inc()
}

// OnSerializeFallback implements sdk.Observer.
func (m *ClientMetrics) OnSerializeFallback(ep sdk.Endpoint, err *sdk.SerializeError) {
	m.fallbacks.WithLabelValues(ep.String()).Inc()
}

// OTELObserver mirrors the client request counter and latency histogram
// into an OpenTelemetry meter.
type OTELObserver struct {
	sdk.NoopObserver
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

// NewOTELObserver creates the instruments on meter. A nil meter uses the
// global meter provider.
func NewOTELObserver(meter metric.Meter) (*OTELObserver, error) {
	if meter == nil {
		meter = otel.Meter(instrumentationName)
	}

	requests, err := meter.Int64Counter("perch.lemmy.requests",
		metric.WithDescription("Total number of Lemmy API requests"))
	if err != nil {
		return nil, fmt.Errorf("failed to create request counter: %w", err)
	}

	duration, err := meter.Float64Histogram("perch.lemmy.request.duration",
		metric.WithDescription("Duration of Lemmy API requests"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	return &OTELObserver{requests: requests, duration: duration}, nil
}

// OnRequestEnd implements sdk.Observer.
func (o *OTELObserver) OnRequestEnd(ep sdk.Endpoint, url string, status int, d time.Duration, err error) {
	ctx := context.Background()
	endpoint := attribute.String("endpoint", ep.String())
	o.requests.Add(ctx, 1, metric.WithAttributes(endpoint, attribute.String("outcome", outcome(err))))
	o.duration.Record(ctx, d.Seconds(), metric.WithAttributes(endpoint))
}

// HTTPMetrics records the gateway's own HTTP traffic.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewHTTPMetrics registers the gateway HTTP series on reg.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	f := promauto.With(reg)
	return &HTTPMetrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "perch_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "perch_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// Middleware returns a Fiber middleware that starts a server span per
// request and records the HTTP series. Routes are labelled by their
// pattern, not the raw path.
func (m *HTTPMetrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		ctx, span := StartSpan(c.UserContext(), c.Method()+" "+c.Path(),
			trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()
		c.SetUserContext(ctx)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path

		m.requests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.duration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())

		span.SetAttributes(
			semconv.HTTPMethodKey.String(c.Method()),
			semconv.HTTPRouteKey.String(route),
			semconv.HTTPTargetKey.String(c.OriginalURL()),
			semconv.HTTPStatusCodeKey.Int(status),
		)
		if err != nil {
			RecordError(ctx, err)
		} else if status >= 500 {
			span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", status))
		}
		return err
	}
}
