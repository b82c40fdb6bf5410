package otel

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodie/pkg/logger"
)

func TestDisabledTracingHasNoTraceID(t *testing.T) {
	tp, shutdown, err := InitTracing(logger.NewNop(), Config{ServiceName: "foodie"})
	require.NoError(t, err)
	defer shutdown(context.Background())

	ctx := InjectTracing(context.Background(), tp.Tracer("test"))
	ctx, span := AddSpan(ctx, "demo")
	defer span.End()

	assert.Empty(t, GetTraceID(ctx))
}

func TestEnabledTracingExportsSpans(t *testing.T) {
	var buf bytes.Buffer
	tp, shutdown, err := InitTracing(logger.NewNop(), Config{
		ServiceName: "foodie",
		Enabled:     true,
		Probability: 1.0,
		Writer:      &buf,
	})
	require.NoError(t, err)

	ctx := InjectTracing(context.Background(), tp.Tracer("test"))
	ctx, span := AddSpan(ctx, "observer")
	assert.Len(t, GetTraceID(ctx), 32)
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), `"Name":"observer"`)
}

func TestAddSpanWithoutTracer(t *testing.T) {
	ctx, span := AddSpan(context.Background(), "orphan")
	defer span.End()
	assert.Empty(t, GetTraceID(ctx))
}
