package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/iplt20-stats/internal/domain/season"
	"github.com/riskibarqy/iplt20-stats/internal/domain/stats"
)

var usecaseTracer = otel.Tracer("iplt20-stats/internal/usecase")
var usecaseNoopSpan = trace.SpanFromContext(context.Background())

// startUsecaseSpan only creates child spans; without a sampled parent it returns a noop span.
func startUsecaseSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" {
		return ctx, usecaseNoopSpan
	}
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name)
}

func annotateRange(ctx context.Context, r season.Range) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(
		attribute.Int("ipl.season.from", r.Min),
		attribute.Int("ipl.season.to", r.Max),
	)
}

func annotateDataset(span trace.Span, ds stats.Dataset) {
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(
		attribute.Int("ipl.dataset.matches", ds.Report.MatchRows),
		attribute.Int("ipl.dataset.deliveries", ds.Report.DeliveryRows),
		attribute.Bool("ipl.dataset.clean", ds.Report.Clean()),
	)
}
