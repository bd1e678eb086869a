package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/domain"
)

func newRecorder() (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	sr := tracetest.NewSpanRecorder()
	return sr, sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
}

func attrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestWithSpan_Success(t *testing.T) {
	sr, tp := newRecorder()
	var traceID string

	err := WithSpan(context.Background(), tp.Tracer("test"), "venue.catalog.register",
		func(ctx context.Context) error {
			traceID = TraceID(ctx)
			return nil
		},
		attribute.String(AttrDomain, "catalog"),
	)
	require.NoError(t, err)
	require.NotEmpty(t, traceID)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, "venue.catalog.register", spans[0].Name())
	require.Equal(t, codes.Ok, spans[0].Status().Code)
	require.Equal(t, "catalog", attrs(spans[0])[AttrDomain].AsString())
}

func TestWithSpan_DomainError(t *testing.T) {
	sr, tp := newRecorder()
	short := &domain.InsufficientQuantityError{Entity: domain.EntityStock, ItemID: 1, Available: 1, Requested: 2}

	err := WithSpan(context.Background(), tp.Tracer("test"), "venue.stock.issue",
		func(context.Context) error { return short })
	require.ErrorIs(t, err, domain.ErrInsufficientQuantity)

	span := sr.Ended()[0]
	require.Equal(t, codes.Error, span.Status().Code)
	require.Equal(t, string(domain.KindInsufficientQuantity), attrs(span)[AttrErrorKind].AsString())
	require.Len(t, span.Events(), 1, "error recorded as span event")
}

func TestWithSpan_NilTracer(t *testing.T) {
	called := false
	err := WithSpan(context.Background(), nil, "x", func(ctx context.Context) error {
		called = true
		require.Empty(t, TraceID(ctx))
		return nil
	})
	require.NoError(t, err)
	require.True(t, called)
}

func TestErrorKind(t *testing.T) {
	require.Equal(t, domain.KindValidation, ErrorKind(domain.Validation("bad")))
	require.Equal(t, domain.KindNotFound, ErrorKind(domain.NotFound(domain.EntityArtist, "gone")))
	require.Equal(t, domain.KindInsufficientQuantity, ErrorKind(&domain.InsufficientQuantityError{}))
	require.Equal(t, domain.Kind(""), ErrorKind(errors.New("plain")))
}
