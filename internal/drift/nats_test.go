package drift

import (
	"context"
	"net/http"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/birbparty/perch/sdk"
)

func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	prevTP := otel.GetTracerProvider()
	prevProp := otel.GetTextMapPropagator()

	rec := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))
	otel.SetTextMapPropagator(propagation.TraceContext{})

	t.Cleanup(func() {
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})
	return rec
}

func TestDecodeMsg(t *testing.T) {
	t.Run("continues the publisher trace", func(t *testing.T) {
		rec := recordSpans(t)

		parentCtx, parent := otel.Tracer("test").Start(context.Background(), "publish")
		report := NewReport("lemmy.ml", sdk.GetOps().Site, decodeErr("version"))
		data, err := report.Marshal()
		require.NoError(t, err)

		msg := &nats.Msg{Subject: DefaultSubject, Data: data, Header: nats.Header{}}
		otel.GetTextMapPropagator().Inject(parentCtx, propagation.HeaderCarrier(http.Header(msg.Header)))
		parent.End()

		got, ctx, span := decodeMsg(context.Background(), msg)
		span.End()

		require.NotNil(t, got)
		assert.Equal(t, report.ID, got.ID)
		assert.Equal(t, parent.SpanContext().TraceID(), trace.SpanContextFromContext(ctx).TraceID())

		spans := rec.Ended()
		require.Len(t, spans, 2)
		consumer := spans[1]
		assert.Equal(t, "drift consume", consumer.Name())
		assert.Equal(t, trace.SpanKindConsumer, consumer.SpanKind())
		assert.Equal(t, parent.SpanContext().SpanID(), consumer.Parent().SpanID())
	})

	t.Run("malformed payload", func(t *testing.T) {
		rec := recordSpans(t)

		got, _, span := decodeMsg(context.Background(), &nats.Msg{Subject: DefaultSubject, Data: []byte("not json")})
		span.End()

		assert.Nil(t, got)
		spans := rec.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Error, spans[0].Status().Code)
	})
}
