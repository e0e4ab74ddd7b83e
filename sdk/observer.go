package sdk

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Observer provides hooks for monitoring SDK operations.
// Implement this interface to track request rates, latencies and schema
// drift, or to integrate with your observability stack.
//
// Observer methods are called synchronously on the request goroutine and
// should be fast and non-blocking.
//
// Example implementation:
//
//	type LogObserver struct {
//	    logger *log.Logger
//	}
//
//	func (o *LogObserver) OnRequestStart(ep sdk.Endpoint, url string) {
//	    o.logger.Printf("[START] %s %s", ep, url)
//	}
//
//	func (o *LogObserver) OnRequestEnd(ep sdk.Endpoint, url string, status int, d time.Duration, err error) {
//	    o.logger.Printf("[END] %s %d %v (took %v)", ep, status, err, d)
//	}
//
//	// OnDecodeError and OnSerializeFallback omitted
type Observer interface {
	// OnRequestStart is called before a request is sent.
	//
	// Parameters:
	//   - ep: the operation, or the zero Endpoint for raw Execute calls
	//   - url: the full request URL
	OnRequestStart(ep Endpoint, url string)

	// OnRequestEnd is called when a request completes, successfully or not.
	//
	// Parameters:
	//   - ep: the operation
	//   - url: the full request URL
	//   - status: HTTP status, 0 when no answer arrived
	//   - duration: time from start to decoded value or error
	//   - err: nil on success
	OnRequestEnd(ep Endpoint, url string, status int, duration time.Duration, err error)

	// OnDecodeError is called when a body does not fit the expected record.
	// It fires before OnRequestEnd for the same request.
	OnDecodeError(ep Endpoint, err *DecodeError)

	// OnSerializeFallback is called when a request record could not be
	// query-encoded and the URL fell back to the bare endpoint path.
	OnSerializeFallback(ep Endpoint, err *SerializeError)
}

// NoopObserver is a no-op implementation of Observer that does nothing.
// This is the default observer used when none is configured.
type NoopObserver struct{}

// OnRequestStart does nothing
func (n *NoopObserver) OnRequestStart(ep Endpoint, url string) {}

// OnRequestEnd does nothing
func (n *NoopObserver) OnRequestEnd(ep Endpoint, url string, status int, duration time.Duration, err error) {
}

// OnDecodeError does nothing
func (n *NoopObserver) OnDecodeError(ep Endpoint, err *DecodeError) {}

// OnSerializeFallback does nothing
func (n *NoopObserver) OnSerializeFallback(ep Endpoint, err *SerializeError) {}

// MetricsCollector is a simple in-memory Observer. It is meant for tests
// and debugging; production binaries export through prometheus instead.
//
// Example:
//
//	metrics := sdk.NewMetricsCollector()
//	client, _ := sdk.NewClient(sdk.DefaultConfig().WithObserver(metrics))
//	// Use client...
//	snap := metrics.Snapshot()
//	fmt.Println(snap.Requests["GET post/list"])
type MetricsCollector struct {
	mu                sync.RWMutex
	requests          map[string]int64
	errors            map[string]int64
	latencies         map[string][]time.Duration
	statuses          map[int]int64
	decodeErrors      map[string]int64
	serializeFallback map[string]int64
}

// MetricsSnapshot is a copy of the collector state.
type MetricsSnapshot struct {
	Requests           map[string]int64
	Errors             map[string]int64
	Latencies          map[string][]time.Duration
	Statuses           map[int]int64
	DecodeErrors       map[string]int64
	SerializeFallbacks map[string]int64
}

// NewMetricsCollector creates a collector. It is safe for concurrent use.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		requests:          make(map[string]int64),
		errors:            make(map[string]int64),
		latencies:         make(map[string][]time.Duration),
		statuses:          make(map[int]int64),
		decodeErrors:      make(map[string]int64),
		serializeFallback: make(map[string]int64),
	}
}

// OnRequestStart increments the request count
func (m *MetricsCollector) OnRequestStart(ep Endpoint, url string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[ep.String()]++
}

// OnRequestEnd records duration, status and errors
func (m *MetricsCollector) OnRequestEnd(ep Endpoint, url string, status int, duration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := ep.String()
	m.latencies[key] = append(m.latencies[key], duration)
	m.statuses[status]++
	if err != nil {
		m.errors[key]++
	}
}

// OnDecodeError counts decode failures per response type
func (m *MetricsCollector) OnDecodeError(ep Endpoint, err *DecodeError) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.decodeErrors[err.Type]++
}

// OnSerializeFallback counts fallbacks per endpoint
func (m *MetricsCollector) OnSerializeFallback(ep Endpoint, err *SerializeError) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.serializeFallback[ep.String()]++
}

// Snapshot returns a copy of the current metrics.
func (m *MetricsCollector) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := MetricsSnapshot{
		Requests:           copyCounts(m.requests),
		Errors:             copyCounts(m.errors),
		Latencies:          make(map[string][]time.Duration, len(m.latencies)),
		Statuses:           make(map[int]int64, len(m.statuses)),
		DecodeErrors:       copyCounts(m.decodeErrors),
		SerializeFallbacks: copyCounts(m.serializeFallback),
	}
	for k, v := range m.latencies {
		snap.Latencies[k] = append([]time.Duration(nil), v...)
	}
	for k, v := range m.statuses {
		snap.Statuses[k] = v
	}
	return snap
}

func copyCounts(src map[string]int64) map[string]int64 {
	dst := make(map[string]int64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// CompositeObserver fans every call out to several observers in order.
// A panicking observer is skipped so it cannot affect the others or the
// request. The panic is logged at error level; a client installs its own
// logger here, otherwise the standard logrus logger is used.
//
// Example:
//
//	observer := sdk.NewCompositeObserver(
//	    telemetry.NewClientMetrics(prometheus.DefaultRegisterer),
//	    sdk.NewMetricsCollector(),
//	)
//	config := sdk.DefaultConfig().WithObserver(observer)
type CompositeObserver struct {
	observers []Observer
	log       logrus.FieldLogger
}

// NewCompositeObserver creates an observer that delegates to multiple
// observers. Nil entries are dropped.
func NewCompositeObserver(observers ...Observer) Observer {
	kept := make([]Observer, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			kept = append(kept, o)
		}
	}
	return &CompositeObserver{observers: kept, log: logrus.StandardLogger()}
}

// WithLogger returns a copy of c that reports observer panics to log.
func (c *CompositeObserver) WithLogger(log logrus.FieldLogger) *CompositeObserver {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &CompositeObserver{observers: c.observers, log: log}
}

func (c *CompositeObserver) each(hook string, fn func(Observer)) {
	for _, obs := range c.observers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					c.log.WithFields(logrus.Fields{
						"observer": fmt.Sprintf("%T", obs),
						"hook":     hook,
						"panic":    fmt.Sprint(r),
					}).Error("Observer panicked")
				}
			}()
			fn(obs)
		}()
	}
}

// OnRequestStart notifies all observers
func (c *CompositeObserver) OnRequestStart(ep Endpoint, url string) {
	c.each("OnRequestStart", func(o Observer) { o.OnRequestStart(ep, url) })
}

// OnRequestEnd notifies all observers
func (c *CompositeObserver) OnRequestEnd(ep Endpoint, url string, status int, duration time.Duration, err error) {
	c.each("OnRequestEnd", func(o Observer) { o.OnRequestEnd(ep, url, status, duration, err) })
}

// OnDecodeError notifies all observers
func (c *CompositeObserver) OnDecodeError(ep Endpoint, err *DecodeError) {
	c.each("OnDecodeError", func(o Observer) { o.OnDecodeError(ep, err) })
}

// OnSerializeFallback notifies all observers
func (c *CompositeObserver) OnSerializeFallback(ep Endpoint, err *SerializeError) {
	c.each("OnSerializeFallback", func(o Observer) { o.OnSerializeFallback(ep, err) })
}
