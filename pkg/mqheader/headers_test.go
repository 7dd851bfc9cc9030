package mqheader_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/fasia-660710731/CatfoodStore-FinalProject/pkg/correlationid"
	"github.com/fasia-660710731/CatfoodStore-FinalProject/pkg/mqheader"
)

func TestHeadersRoundTrip(t *testing.T) {
	ctx := correlationid.NewContext(context.Background(), "corr-1")

	headers := mqheader.BuildHeaders(ctx)
	assert.Equal(t, map[string]string{correlationid.Header: "corr-1"}, headers)

	got := mqheader.ExtractContextFromHeaders(context.Background(), headers)

	id, ok := correlationid.FromContext(got)
	assert.True(t, ok)
	assert.Equal(t, "corr-1", id)
}

func TestBuildHeadersLeavesTraceContextToClient(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	headers := mqheader.BuildHeaders(ctx)
	assert.NotContains(t, headers, "traceparent")
	assert.NotContains(t, headers, correlationid.Header)
}
