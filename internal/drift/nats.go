package drift

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/birbparty/perch/internal/telemetry"
)

// Consumer tuning
const (
	consumerAckWait    = 30 * time.Second
	consumerMaxDeliver = 5
	fetchBatchSize     = 32
	fetchMaxWait       = 2 * time.Second
)

// Publisher delivers drift reports.
type Publisher interface {
	Publish(ctx context.Context, r *Report) error
}

// Client publishes drift reports to NATS JetStream
type Client struct {
	nc     *nats.Conn
	js     nats.JetStreamContext
	config *Config
}

// NewClient connects to NATS and makes sure the drift stream exists
func NewClient(config *Config) (*Client, error) {
	log := telemetry.L().WithField("component", "drift")

	opts := []nats.Option{
		nats.Name(config.Name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				log.WithError(err).Warn("NATS disconnected")
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.WithField("url", nc.ConnectedUrl()).Info("NATS reconnected")
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			log.WithError(err).Error("NATS error")
		}),
	}

	if config.User != "" && config.Password != "" {
		opts = append(opts, nats.UserInfo(config.User, config.Password))
	}

	nc, err := nats.Connect(config.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	client := &Client{nc: nc, js: js, config: config}
	if err := client.ensureStream(); err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to initialize stream: %w", err)
	}

	log.WithFields(logrus.Fields{
		"stream":  config.StreamName,
		"subject": config.Subject,
	}).Info("Drift reporting connected")
	return client, nil
}

// streamConfig describes the drift stream
func (c *Client) streamConfig() *nats.StreamConfig {
	return &nats.StreamConfig{
		Name:        c.config.StreamName,
		Description: "perch schema drift reports",
		Subjects:    []string{c.config.Subject},
		Retention:   nats.LimitsPolicy,
		MaxAge:      c.config.StreamMaxAge,
		MaxMsgs:     c.config.StreamMaxMsgs,
		Replicas:    c.config.StreamReplicas,
		Duplicates:  5 * time.Minute,
		Storage:     nats.FileStorage,
	}
}

// ensureStream creates the drift stream or updates it in place
func (c *Client) ensureStream() error {
	cfg := c.streamConfig()
	if _, err := c.js.AddStream(cfg); err != nil {
		if _, err = c.js.UpdateStream(cfg); err != nil {
			return fmt.Errorf("failed to create/update drift stream: %w", err)
		}
	}
	return nil
}

// Publish sends a report and waits for the JetStream acknowledgment. The
// report id doubles as the message id so redeliveries are deduplicated.
func (c *Client) Publish(ctx context.Context, r *Report) error {
	data, err := r.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal drift report: %w", err)
	}

	msg := &nats.Msg{
		Subject: c.config.Subject,
		Data:    data,
		Header:  nats.Header{},
	}
	msg.Header.Set("X-Perch-Instance", r.Instance)
	msg.Header.Set("X-Perch-Type", r.Type)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(http.Header(msg.Header)))

	pubAck, err := c.js.PublishMsgAsync(msg, nats.MsgId(r.ID))
	if err != nil {
		return fmt.Errorf("failed to publish drift report: %w", err)
	}

	select {
	case <-pubAck.Ok():
		return nil
	case err := <-pubAck.Err():
		return fmt.Errorf("drift report publish failed: %w", err)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Health checks the NATS connection health
func (c *Client) Health() error {
	if !c.nc.IsConnected() {
		return fmt.Errorf("NATS is not connected")
	}
	if _, err := c.js.StreamInfo(c.config.StreamName); err != nil {
		return fmt.Errorf("drift stream check failed: %w", err)
	}
	return nil
}

// Close drains pending publishes and closes the NATS connection
func (c *Client) Close() error {
	if c.nc == nil {
		return nil
	}
	return c.nc.Drain()
}

// ensureConsumer creates a durable pull consumer on the drift stream
func (c *Client) ensureConsumer(name string) error {
	cfg := &nats.ConsumerConfig{
		Durable:       name,
		AckPolicy:     nats.AckExplicitPolicy,
		AckWait:       consumerAckWait,
		MaxDeliver:    consumerMaxDeliver,
		ReplayPolicy:  nats.ReplayInstantPolicy,
		DeliverPolicy: nats.DeliverAllPolicy,
		FilterSubject: c.config.Subject,
	}
	if _, err := c.js.AddConsumer(c.config.StreamName, cfg); err != nil {
		if _, err = c.js.UpdateConsumer(c.config.StreamName, cfg); err != nil {
			return fmt.Errorf("failed to create/update consumer: %w", err)
		}
	}
	return nil
}

// Consume delivers reports from the durable consumer name to handle until
// ctx is done. A report is acked when handle returns nil and redelivered
// otherwise; malformed messages are terminated.
func (c *Client) Consume(ctx context.Context, name string, handle func(context.Context, *Report) error) error {
	if err := c.ensureConsumer(name); err != nil {
		return err
	}

	sub, err := c.js.PullSubscribe("", name, nats.ManualAck(), nats.Bind(c.config.StreamName, name))
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Unsubscribe()

	log := telemetry.L().WithFields(logrus.Fields{"component": "drift", "consumer": name})
	for {
		if ctx.Err() != nil {
			return nil
		}

		fctx, cancel := context.WithTimeout(ctx, fetchMaxWait)
		msgs, err := sub.Fetch(fetchBatchSize, nats.Context(fctx))
		cancel()
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, nats.ErrConnectionClosed) {
				return nil
			}
			if !errors.Is(err, nats.ErrTimeout) && !errors.Is(err, context.DeadlineExceeded) {
				log.WithError(err).Warn("Failed to fetch drift reports")
			}
			continue
		}

		for _, msg := range msgs {
			c.handleMsg(ctx, msg, handle, log)
		}
	}
}

func (c *Client) handleMsg(ctx context.Context, msg *nats.Msg, handle func(context.Context, *Report) error, log logrus.FieldLogger) {
	report, msgCtx, span := decodeMsg(ctx, msg)
	defer span.End()

	if report == nil {
		log.WithField("subject", msg.Subject).Error("Malformed drift report, terminating")
		if err := msg.Term(); err != nil {
			log.WithError(err).Warn("Failed to terminate message")
		}
		return
	}

	if err := handle(msgCtx, report); err != nil {
		telemetry.RecordError(msgCtx, err)
		log.WithError(err).WithField("report_id", report.ID).Warn("Drift report handler failed, redelivering")
		if err := msg.Nak(); err != nil {
			log.WithError(err).Warn("Failed to nak message")
		}
		return
	}

	if err := msg.Ack(); err != nil {
		log.WithError(err).Warn("Failed to ack message")
	}
}

// decodeMsg parses a drift message and starts a consumer span continuing
// the publisher's trace. report is nil when the payload is malformed.
func decodeMsg(ctx context.Context, msg *nats.Msg) (*Report, context.Context, trace.Span) {
	if msg.Header != nil {
		ctx = otel.GetTextMapPropagator().Extract(ctx, propagation.HeaderCarrier(http.Header(msg.Header)))
	}
	ctx, span := telemetry.StartSpan(ctx, "drift consume",
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.system", "nats"),
			attribute.String("messaging.destination", msg.Subject),
		))

	report, err := UnmarshalReport(msg.Data)
	if err != nil {
		telemetry.RecordError(ctx, err)
		return nil, ctx, span
	}
	span.SetAttributes(
		attribute.String("perch.instance", report.Instance),
		attribute.String("perch.endpoint", report.Endpoint),
	)
	return report, ctx, span
}
