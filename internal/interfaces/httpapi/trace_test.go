package httpapi

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestShouldCreateHTTPAPISpan(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "handler span", in: "httpapi.Handler.GetDashboard", want: true},
		{name: "middleware span", in: "httpapi.RequestLogging", want: false},
		{name: "helper span", in: "httpapi.writeError", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldCreateHTTPAPISpan(tt.in)
			if got != tt.want {
				t.Fatalf("shouldCreateHTTPAPISpan(%q)=%v want=%v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAnnotateSpan_NoopWithoutRecordingSpan(t *testing.T) {
	annotateSpan(context.Background(), exportAttrs(formatCSV, attribute.String("ipl.leaderboard.metric", "runs"))...)

	ctx, span := startSpan(context.Background(), "httpapi.Handler.GetPivot")
	defer span.End()
	if span.IsRecording() {
		t.Fatalf("expected noop span without a parent")
	}
	annotateSpan(ctx)
}

func TestExportAttrs(t *testing.T) {
	attrs := exportAttrs(formatJSON, attribute.Int("ipl.leaderboard.limit", 5))
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "ipl.export.format" || attrs[0].Value.AsString() != formatJSON {
		t.Fatalf("unexpected format attribute: %+v", attrs[0])
	}
}
