package tracing

import (
	"context"

	"github.com/viant/ident"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultKey is the attribute key used by IDAttribute.
const DefaultKey = "ident.id"

// TraceID converts id to an OpenTelemetry trace ID. Both are 16 bytes wide.
func TraceID(id ident.ID) trace.TraceID { return trace.TraceID(id) }

// FromTraceID converts an OpenTelemetry trace ID to an identifier.
func FromTraceID(traceID trace.TraceID) ident.ID { return ident.ID(traceID) }

// Attribute renders id in canonical form under key.
func Attribute(key string, id ident.ID) attribute.KeyValue {
	return attribute.String(key, id.String())
}

// IDAttribute renders id in canonical form under DefaultKey.
func IDAttribute(id ident.ID) attribute.KeyValue {
	return Attribute(DefaultKey, id)
}

// WithID returns a context carrying a remote sampled span context whose trace
// ID is id, so spans started from it join the trace of the identified entity.
// The span ID is taken from the last 8 bytes of id. Nil and unset identifiers
// leave ctx unchanged.
func WithID(ctx context.Context, id ident.ID) context.Context {
	if id.IsNil() || id.IsUnset() {
		return ctx
	}
	var spanID trace.SpanID
	copy(spanID[:], id[8:])
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    TraceID(id),
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
		Remote:     true,
	})
	return trace.ContextWithRemoteSpanContext(ctx, sc)
}

// IDFromContext returns the identifier behind the trace ID of the span
// context in ctx, if any.
func IDFromContext(ctx context.Context) (ident.ID, bool) {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.TraceID().IsValid() {
		return ident.Nil(), false
	}
	return FromTraceID(sc.TraceID()), true
}
