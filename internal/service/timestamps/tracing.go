package timestamps

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/heartmarshall/termstamps/internal/service/timestamps"

// startSpan starts a span for an audit event. The returned function ends
// the span and marks it failed when err is non-nil.
func startSpan(ctx context.Context, name string, termID int64, taxonomy string) (context.Context, func(error)) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.Int64("term.id", termID),
			attribute.String("term.taxonomy", taxonomy),
		),
	)

	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}
