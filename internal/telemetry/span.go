package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Span is a wrapper around a [trace.Span] that counts the operation it
// represents.
type Span struct {
	recorder *Recorder
	ctx      context.Context
	name     string
	span     trace.Span
}

// StartSpan starts a new span and records the start of an operation.
//
// The operation is considered finished when [Span.End] is called.
func (r *Recorder) StartSpan(
	ctx context.Context,
	name string,
	attrs ...Attr,
) (context.Context, *Span) {
	ctx, span := r.tracer.Start(
		ctx,
		name,
		trace.WithAttributes(asAttrKeyValues(attrs)...),
	)

	r.operationCount(ctx, 1, String("operation", name))
	r.operationsInFlightCount(ctx, 1, String("operation", name))

	return ctx, &Span{r, ctx, name, span}
}

// SetAttributes adds attributes to the span.
func (s *Span) SetAttributes(attrs ...Attr) {
	s.span.SetAttributes(asAttrKeyValues(attrs)...)
}

// End completes the span.
func (s *Span) End() {
	s.recorder.operationsInFlightCount(s.ctx, -1, String("operation", s.name))
	s.span.End()
}
