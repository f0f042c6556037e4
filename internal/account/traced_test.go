package account

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/tracing"
)

func newRecordingTracer(t *testing.T) (*tracetest.InMemoryExporter, *sdktrace.TracerProvider) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	return exporter, provider
}

func attrValue(attrs []attribute.KeyValue, key string) (string, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value.AsString(), true
		}
	}
	return "", false
}

func TestTraced_RecordsSuccess(t *testing.T) {
	exporter, provider := newRecordingTracer(t)
	inner := CreatorFunc(func(context.Context, registration.Input) (Receipt, error) {
		return Receipt{ID: "acc-1"}, nil
	})

	traced := NewTraced(inner, provider.Tracer("test"), BackendSimulated)
	receipt, err := traced.Create(context.Background(), sampleInput("a@example.com"))
	require.NoError(t, err)
	require.Equal(t, "acc-1", receipt.ID)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	require.Equal(t, tracing.SpanAccountCreate, spans[0].Name)
	require.Equal(t, codes.Ok, spans[0].Status.Code)

	backend, ok := attrValue(spans[0].Attributes, tracing.AttrAccountBackend)
	require.True(t, ok)
	require.Equal(t, BackendSimulated, backend)
	id, ok := attrValue(spans[0].Attributes, tracing.AttrAccountID)
	require.True(t, ok)
	require.Equal(t, "acc-1", id)
}

func TestTraced_RecordsFailure(t *testing.T) {
	exporter, provider := newRecordingTracer(t)
	boom := errors.New("boom")
	inner := CreatorFunc(func(context.Context, registration.Input) (Receipt, error) {
		return Receipt{}, boom
	})

	_, err := NewTraced(inner, provider.Tracer("test"), BackendSQLite).Create(context.Background(), sampleInput("a@example.com"))
	require.ErrorIs(t, err, boom)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	require.Equal(t, codes.Error, spans[0].Status.Code)
	require.Equal(t, "boom", spans[0].Status.Description)
	_, ok := attrValue(spans[0].Attributes, tracing.AttrAccountID)
	require.False(t, ok)
}
