package drift

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/birbparty/perch/sdk"
)

// ReporterStats provides statistics about the reporter
type ReporterStats struct {
	QueueDepth    int   `json:"queue_depth"`
	QueueCapacity int   `json:"queue_capacity"`
	Published     int64 `json:"published"`
	Failed        int64 `json:"failed"`
	Dropped       int64 `json:"dropped"`
}

// Reporter is an sdk.Observer that turns decode failures into drift
// reports. Reports are queued and published by a background worker, so
// the request goroutine never waits on NATS. When the queue is full the
// report is dropped and counted.
type Reporter struct {
	sdk.NoopObserver

	publisher Publisher
	instance  string
	timeout   time.Duration
	log       logrus.FieldLogger

	mu     sync.RWMutex
	closed bool
	queue  chan *Report
	done   chan struct{}

	published atomic.Int64
	failed    atomic.Int64
	dropped   atomic.Int64
}

// NewReporter starts a reporter publishing through p. instance names the
// Lemmy instance in every report.
func NewReporter(p Publisher, instance string, bufferSize int, timeout time.Duration, log logrus.FieldLogger) *Reporter {
	if bufferSize < 1 {
		bufferSize = 1
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	r := &Reporter{
		publisher: p,
		instance:  instance,
		timeout:   timeout,
		log:       log.WithField("component", "drift"),
		queue:     make(chan *Report, bufferSize),
		done:      make(chan struct{}),
	}
	go r.worker()
	return r
}

// OnDecodeError implements sdk.Observer.
func (r *Reporter) OnDecodeError(ep sdk.Endpoint, err *sdk.DecodeError) {
	report := NewReport(r.instance, ep, err)

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		r.dropped.Add(1)
		return
	}

	select {
	case r.queue <- report:
	default:
		r.dropped.Add(1)
		r.log.WithFields(logrus.Fields{
			"endpoint": report.Endpoint,
			"type":     report.Type,
		}).Warn("Drift queue full, dropping report")
	}
}

// worker publishes queued reports until the queue is closed
func (r *Reporter) worker() {
	defer close(r.done)
	for report := range r.queue {
		ctx := context.Background()
		var cancel context.CancelFunc = func() {}
		if r.timeout > 0 {
			ctx, cancel = context.WithTimeout(ctx, r.timeout)
		}
		err := r.publisher.Publish(ctx, report)
		cancel()

		if err != nil {
			r.failed.Add(1)
			r.log.WithError(err).WithFields(logrus.Fields{
				"report_id": report.ID,
				"endpoint":  report.Endpoint,
				"type":      report.Type,
				"field":     report.Field,
			}).Error("Failed to publish drift report")
			continue
		}
		r.published.Add(1)
	}
}

// Stats returns current statistics
func (r *Reporter) Stats() ReporterStats {
	return ReporterStats{
		QueueDepth:    len(r.queue),
		QueueCapacity: cap(r.queue),
		Published:     r.published.Load(),
		Failed:        r.failed.Load(),
		Dropped:       r.dropped.Load(),
	}
}

// Close stops accepting reports and waits until the queued ones are
// published or ctx expires.
func (r *Reporter) Close(ctx context.Context) error {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.queue)
	}
	r.mu.Unlock()

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
