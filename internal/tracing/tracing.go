package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// TraceParentKey is the message attribute carrying the W3C trace parent of the
// span that published the event.
const TraceParentKey = "traceparent"

const tracerName = "github.com/courtside/leaderboard-service"

var propagator = propagation.TraceContext{}

// ExtractParent reconstructs the publishing span's context from message
// attributes. A missing or unparsable traceparent leaves ctx unchanged, so the
// caller simply starts an unparented span.
func ExtractParent(ctx context.Context, attrs map[string]string) context.Context {
	if len(attrs) == 0 {
		return ctx
	}
	return propagator.Extract(ctx, propagation.MapCarrier(attrs))
}

// Inject writes the current span context into message attributes so a
// downstream consumer can link its work to ours.
func Inject(ctx context.Context, attrs map[string]string) {
	propagator.Inject(ctx, propagation.MapCarrier(attrs))
}

// StartConsumerSpan starts a consumer-kind span parented on whatever trace
// context the message attributes carry. Tracing degradation never blocks the
// caller: without a parent or a configured tracer provider this still returns
// a usable span.
func StartConsumerSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, trace.Span) {
	ctx = ExtractParent(ctx, attrs)
	return otel.Tracer(tracerName).Start(ctx, name, trace.WithSpanKind(trace.SpanKindConsumer))
}
