package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("iplt20-stats/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// startSpan opens handler spans under the request span. Helpers and
// untraced routes such as /healthz get a noop span.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, noopSpan
	}
	if !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}

// annotateSpan tags the current span with the query shape of a stats request.
func annotateSpan(ctx context.Context, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() || len(attrs) == 0 {
		return
	}
	span.SetAttributes(attrs...)
}

func exportAttrs(format string, extra ...attribute.KeyValue) []attribute.KeyValue {
	return append([]attribute.KeyValue{attribute.String("ipl.export.format", format)}, extra...)
}
