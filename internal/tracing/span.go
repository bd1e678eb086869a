package tracing

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/domain"
)

// WithSpan runs fn inside a span named name and records its outcome: a domain
// error kind goes to AttrErrorKind, any error sets the span status to Error.
// A nil tracer runs fn with ctx unchanged.
func WithSpan(ctx context.Context, tracer trace.Tracer, name string, fn func(context.Context) error, attrs ...attribute.KeyValue) error {
	if tracer == nil {
		return fn(ctx)
	}

	ctx, span := tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
	defer span.End()

	err := fn(ctx)
	RecordResult(span, err)
	return err
}

// RecordResult sets span status from err.
func RecordResult(span trace.Span, err error) {
	if err == nil {
		span.SetStatus(codes.Ok, "")
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.SetAttributes(
		attribute.String(AttrErrorKind, string(ErrorKind(err))),
		attribute.String(AttrErrorMessage, err.Error()),
	)
}

// ErrorKind extracts the domain kind from err, or "" for foreign errors.
func ErrorKind(err error) domain.Kind {
	var short *domain.InsufficientQuantityError
	if errors.As(err, &short) {
		return domain.KindInsufficientQuantity
	}
	var de *domain.Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// TraceID returns the hex trace id of the span in ctx, or "" when there is
// no recording span.
func TraceID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return ""
	}
	return sc.TraceID().String()
}
