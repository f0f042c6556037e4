package account

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/tracing"
)

// Traced wraps a Creator in an account.create span.
type Traced struct {
	next    Creator
	tracer  trace.Tracer
	backend string
}

// NewTraced decorates next. backend labels the span.
func NewTraced(next Creator, tracer trace.Tracer, backend string) *Traced {
	return &Traced{next: next, tracer: tracer, backend: backend}
}

// Create implements Creator.
func (t *Traced) Create(ctx context.Context, in registration.Input) (Receipt, error) {
	ctx, span := t.tracer.Start(ctx, tracing.SpanAccountCreate,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String(tracing.AttrAccountBackend, t.backend)),
	)
	defer span.End()

	receipt, err := t.next.Create(ctx, in)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Receipt{}, err
	}
	span.SetAttributes(attribute.String(tracing.AttrAccountID, receipt.ID))
	span.SetStatus(codes.Ok, "")
	return receipt, nil
}
